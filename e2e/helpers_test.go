package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// tempStore creates a store layout (tags.json, categories.yaml, agents dir)
// in a temp directory and returns its path. Cleaned up after the test.
func tempStore() string {
	dir, err := os.MkdirTemp("", "agentman-test-*")
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(func() { os.RemoveAll(dir) })

	writeFile(dir, "tags.json", `{
  "tags": {
    "programming": {"description": "Code-focused agents", "examples": ["Code Reviewer"]},
    "writing": {"description": "Writing and editing agents"}
  }
}`)
	writeFile(dir, "categories.yaml", `categories:
  development:
    description: Development agents
`)
	err = os.MkdirAll(filepath.Join(dir, "agents"), 0o755)
	Expect(err).NotTo(HaveOccurred())

	return dir
}

// agentman runs the binary in dir with its flags pointed at the store layout
// and returns combined output.
func agentman(dir string, args ...string) (string, error) {
	full := append([]string{
		"--tags", "tags.json",
		"--error-log", "sync_errors.log",
	}, args...)
	cmd := exec.Command(binaryPath, full...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

// agentmanOK runs the binary and expects success.
func agentmanOK(dir string, args ...string) string {
	out, err := agentman(dir, args...)
	ExpectWithOffset(1, err).NotTo(HaveOccurred(), "agentman %s failed: %s", strings.Join(args, " "), out)
	return out
}

// writeFile creates a file with the given content, creating parent dirs as needed.
func writeFile(dir, name, content string) {
	p := filepath.Join(dir, name)
	err := os.MkdirAll(filepath.Dir(p), 0o755)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	err = os.WriteFile(p, []byte(content), 0o644)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
}

// readFile reads a file and returns its content.
func readFile(dir, name string) string {
	data, err := os.ReadFile(filepath.Join(dir, name))
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return string(data)
}

// readFileErr returns the error from attempting to read a file.
func readFileErr(dir, name string) error {
	_, err := os.ReadFile(filepath.Join(dir, name))
	return err
}

// writeAgent writes a minimal valid agent definition named after the agent.
func writeAgent(dir, filename, name string) {
	writeFile(dir, filepath.Join("agents", filename), `name: `+name+`
emoji: A
description: Does `+name+` things.
system_message: |
  You are `+name+`.
label_color: '#112233'
text_color: '#FFFFFF'
is_default: false
tags:
  - programming
`)
}
