package fileutil

import (
	"os"
	"path/filepath"
)

// SiblingPath returns a path in the same directory as ref with a different
// base name. Used to locate default resource files next to a known one.
func SiblingPath(ref, name string) string {
	return filepath.Join(filepath.Dir(ref), name)
}

// WriteFileAtomic writes data to path via a temporary file in the same
// directory followed by a rename. A crash mid-write leaves the original
// file intact rather than a truncated one.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
