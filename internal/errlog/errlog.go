// Package errlog appends validation failures to a per-run error log file.
package errlog

import (
	"fmt"
	"io"
	"os"
	"time"
)

const timeLayout = "2006-01-02T15:04:05Z"

// Log writes one timestamped line per validation failure. An unwritable log
// degrades to a stderr warning rather than aborting the run.
type Log struct {
	Path string

	// Now and Warn are overridable for tests.
	Now  func() time.Time
	Warn io.Writer
}

// New returns a Log appending to the file at path.
func New(path string) *Log {
	return &Log{Path: path, Now: time.Now, Warn: os.Stderr}
}

// Record appends "[<UTC timestamp>] <filename>: <message>" to the log.
func (l *Log) Record(filename, message string) {
	line := fmt.Sprintf("[%s] %s: %s\n", l.Now().UTC().Format(timeLayout), filename, message)

	f, err := os.OpenFile(l.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(l.Warn, "Warning: could not write to error log: %s\n", err)
		return
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		fmt.Fprintf(l.Warn, "Warning: could not write to error log: %s\n", err)
	}
}
