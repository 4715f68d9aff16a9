// Package agent loads, validates, and rewrites agent definition files.
//
// The rewrite path is formatting-preserving: fields are emitted in a fixed
// canonical order, long or multiline strings use literal block style, and the
// style the author originally chose for system_message survives a re-save.
package agent

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lucianoayres/chatty-ai-community-store/internal/apperr"
)

// Style records how the system_message field was authored on disk. Both
// styles can represent the same string, so this cannot be recovered from the
// parsed value alone — it is captured at load time and threaded through to
// the writer.
type Style int

const (
	// StyleAuto lets the writer choose block or plain style by the
	// multiline/length rule.
	StyleAuto Style = iota
	// StyleLiteral forces literal block style (|).
	StyleLiteral
)

// Record is one agent definition. The json tags exist so validation errors
// report on-disk field names.
type Record struct {
	Name          string   `yaml:"name" json:"name"`
	Emoji         string   `yaml:"emoji" json:"emoji"`
	Description   string   `yaml:"description" json:"description"`
	SystemMessage string   `yaml:"system_message" json:"system_message"`
	LabelColor    string   `yaml:"label_color" json:"label_color"`
	TextColor     string   `yaml:"text_color" json:"text_color"`
	IsDefault     *bool    `yaml:"is_default" json:"is_default"`
	Tags          []string `yaml:"tags" json:"tags"`
	Author        string   `yaml:"author,omitempty" json:"author,omitempty"`
}

// fieldOrder is the canonical order fields appear in on disk.
var fieldOrder = []string{
	"name",
	"emoji",
	"description",
	"system_message",
	"label_color",
	"text_color",
	"is_default",
	"tags",
	"author",
}

var knownFields = func() map[string]bool {
	m := make(map[string]bool, len(fieldOrder))
	for _, f := range fieldOrder {
		m[f] = true
	}
	return m
}()

// Load reads an agent definition file and returns the parsed record along
// with the authored style of its system_message field.
func Load(path string) (*Record, Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, StyleAuto, fmt.Errorf("%w: reading file: %s", apperr.ErrParse, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, StyleAuto, fmt.Errorf("%w: %s", apperr.ErrParse, err)
	}
	if len(doc.Content) == 0 {
		return nil, StyleAuto, fmt.Errorf("%w: file is empty", apperr.ErrParse)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, StyleAuto, fmt.Errorf("%w: file must contain a mapping", apperr.ErrSchema)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		if !knownFields[key] {
			return nil, StyleAuto, fmt.Errorf("%w: unknown field %q", apperr.ErrSchema, key)
		}
	}

	var rec Record
	if err := root.Decode(&rec); err != nil {
		return nil, StyleAuto, fmt.Errorf("%w: %s", apperr.ErrSchema, err)
	}

	return &rec, detectStyle(root), nil
}

// detectStyle reports whether system_message was authored in literal block
// style.
func detectStyle(root *yaml.Node) Style {
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "system_message" {
			if root.Content[i+1].Style&yaml.LiteralStyle != 0 {
				return StyleLiteral
			}
			return StyleAuto
		}
	}
	return StyleAuto
}

// isZero reports whether the record carries no data at all.
func (r *Record) isZero() bool {
	return r.Name == "" &&
		r.Emoji == "" &&
		r.Description == "" &&
		r.SystemMessage == "" &&
		r.LabelColor == "" &&
		r.TextColor == "" &&
		r.IsDefault == nil &&
		len(r.Tags) == 0 &&
		r.Author == ""
}
