// Package engine orchestrates a run: validate every agent file in a
// directory, normalize the ones that pass, and regenerate the index.
package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucianoayres/chatty-ai-community-store/internal/agent"
	"github.com/lucianoayres/chatty-ai-community-store/internal/errlog"
	"github.com/lucianoayres/chatty-ai-community-store/internal/index"
)

// Engine applies the validator and writer to agent files and accumulates
// results. Files are processed one at a time in lexical filename order so
// index ordering and error-log ordering are reproducible.
type Engine struct {
	validator *agent.Validator
	errLog    *errlog.Log
	builder   *index.Builder
}

// New returns an Engine using the given validator and error log.
func New(validator *agent.Validator, errLog *errlog.Log) *Engine {
	return &Engine{
		validator: validator,
		errLog:    errLog,
		builder:   index.NewBuilder(),
	}
}

// Failure records one file that failed validation or normalization.
type Failure struct {
	Path string
	Err  error
}

// Result accumulates the outcome of a validation pass.
type Result struct {
	Records   []*agent.Record
	Filenames []string
	Failures  []Failure

	// Suggestions maps filenames of valid records without tags to
	// example-matched candidate tags. Advisory only.
	Suggestions map[string][]string
}

// ErrorCount returns the number of files that failed.
func (r *Result) ErrorCount() int {
	return len(r.Failures)
}

// Summary describes a completed sync run.
type Summary struct {
	Total   int
	Added   int
	Updated int
	Errors  int

	Result *Result
}

// ValidateDirectory validates every *.yaml file in dir in lexical order.
// A failing file is logged and counted; the loop always continues to the
// next file.
func (e *Engine) ValidateDirectory(dir string) (*Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading agents directory: %w", err)
	}

	res := &Result{Suggestions: make(map[string][]string)}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		e.processFile(dir, entry.Name(), res)
	}
	return res, nil
}

// ValidateFile validates a single agent file.
func (e *Engine) ValidateFile(path string) (*Result, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	res := &Result{Suggestions: make(map[string][]string)}
	e.processFile(filepath.Dir(path), filepath.Base(path), res)
	return res, nil
}

// processFile runs one file through load, validate, and normalize. Any
// failure is appended to the error log and recorded on the result.
func (e *Engine) processFile(dir, filename string, res *Result) {
	path := filepath.Join(dir, filename)

	fail := func(err error) {
		e.errLog.Record(path, err.Error())
		res.Failures = append(res.Failures, Failure{Path: path, Err: err})
	}

	rec, style, err := agent.Load(path)
	if err != nil {
		fail(err)
		return
	}

	if err := e.validator.Validate(rec); err != nil {
		fail(err)
		return
	}

	// Normalize the file in place now that it is known valid.
	if err := agent.Write(path, rec, style); err != nil {
		fail(err)
		return
	}

	if suggested := e.validator.SuggestTags(rec); len(suggested) > 0 {
		res.Suggestions[filename] = suggested
	}

	res.Records = append(res.Records, rec)
	res.Filenames = append(res.Filenames, filename)
}

// Sync validates dir and regenerates the index at indexPath. Per-file errors
// never abort the run; a failed index build does, before the index file is
// touched.
func (e *Engine) Sync(dir, indexPath string) (*Summary, error) {
	res, err := e.ValidateDirectory(dir)
	if err != nil {
		return nil, err
	}

	if len(res.Filenames) == 0 {
		return &Summary{Errors: res.ErrorCount(), Result: res},
			fmt.Errorf("no valid agent files found in %s", dir)
	}

	prior := index.LoadPrior(indexPath)
	idx, added, updated, err := e.builder.Build(res.Records, res.Filenames, prior)
	if err != nil {
		return nil, fmt.Errorf("generating index: %w", err)
	}

	if err := idx.Save(indexPath); err != nil {
		return nil, err
	}

	return &Summary{
		Total:   len(res.Filenames),
		Added:   added,
		Updated: updated,
		Errors:  res.ErrorCount(),
		Result:  res,
	}, nil
}
