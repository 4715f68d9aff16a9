// Package apperr defines the error categories shared across the tool.
//
// Per-file errors (parse, schema, write) are logged and recovered so a batch
// run continues; build errors abort the run before the index file is touched.
package apperr

import "errors"

var (
	ErrParse  = errors.New("parse error")
	ErrSchema = errors.New("schema error")
	ErrWrite  = errors.New("write error")
	ErrBuild  = errors.New("build error")
)
