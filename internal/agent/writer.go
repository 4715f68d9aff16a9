package agent

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lucianoayres/chatty-ai-community-store/internal/apperr"
)

// Strings longer than this are rendered in literal block style even without
// an embedded line break.
const maxPlainLen = 80

// Render serializes a record to its canonical on-disk form: fields in
// canonical order, absent optional fields omitted, block or plain style per
// field, and the caller-supplied style honored for system_message.
//
// It works in two passes: build an ordered list of styled nodes, then encode
// the whole document once.
func Render(rec *Record, style Style) ([]byte, error) {
	if rec == nil || rec.isZero() {
		return nil, fmt.Errorf("%w: refusing to write an empty record", apperr.ErrWrite)
	}

	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, field := range fieldOrder {
		key, value := fieldNodes(rec, field, style)
		if value == nil {
			continue
		}
		root.Content = append(root.Content, key, value)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		enc.Close()
		return nil, fmt.Errorf("%w: encoding yaml: %s", apperr.ErrWrite, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: encoding yaml: %s", apperr.ErrWrite, err)
	}
	return buf.Bytes(), nil
}

// Write renders rec and replaces the file at path. A file whose content is
// already canonical is left untouched, so repeated runs do not churn
// modification times. Render failures never reach the file.
func Write(path string, rec *Record, style Style) error {
	data, err := Render(rec, style)
	if err != nil {
		return err
	}
	if current, err := os.ReadFile(path); err == nil && bytes.Equal(current, data) {
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s", apperr.ErrWrite, err)
	}
	return nil
}

// fieldNodes returns the key and value nodes for one field, or a nil value
// when the field is absent from the record.
func fieldNodes(rec *Record, field string, style Style) (*yaml.Node, *yaml.Node) {
	key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field}

	switch field {
	case "name":
		return key, stringNode(rec.Name, styleFor(rec.Name))
	case "emoji":
		return key, stringNode(rec.Emoji, styleFor(rec.Emoji))
	case "description":
		return key, stringNode(rec.Description, styleFor(rec.Description))
	case "system_message":
		if rec.SystemMessage == "" {
			return key, nil
		}
		normalized := normalizeBlankLines(rec.SystemMessage)
		st := styleFor(normalized)
		if style == StyleLiteral {
			st = yaml.LiteralStyle
		}
		return key, stringNode(normalized, st)
	case "label_color":
		return key, stringNode(rec.LabelColor, styleFor(rec.LabelColor))
	case "text_color":
		return key, stringNode(rec.TextColor, styleFor(rec.TextColor))
	case "is_default":
		if rec.IsDefault == nil {
			return key, nil
		}
		return key, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!bool",
			Value: strconv.FormatBool(*rec.IsDefault),
		}
	case "tags":
		if rec.Tags == nil {
			return key, nil
		}
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, t := range rec.Tags {
			seq.Content = append(seq.Content, stringNode(t, 0))
		}
		return key, seq
	case "author":
		return key, stringNode(rec.Author, styleFor(rec.Author))
	}
	return key, nil
}

// stringNode returns a string scalar node, or nil for the empty string so
// absent optional fields are dropped.
func stringNode(v string, st yaml.Style) *yaml.Node {
	if v == "" {
		return nil
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v, Style: st}
}

// styleFor applies the fixed rule: literal block style for multiline or long
// values, plain style otherwise.
func styleFor(v string) yaml.Style {
	if strings.Contains(v, "\n") || len(v) > maxPlainLen {
		return yaml.LiteralStyle
	}
	return 0
}

// normalizeBlankLines collapses every run of two or more blank lines to
// exactly one blank line. Single line breaks are kept as-is, and a trailing
// run of blank lines is reduced to a single trailing one.
func normalizeBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blanks := 0

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blanks++
			continue
		}
		if blanks > 0 {
			out = append(out, "")
		}
		blanks = 0
		out = append(out, line)
	}
	if blanks > 0 {
		out = append(out, "")
	}

	return strings.Join(out, "\n")
}
