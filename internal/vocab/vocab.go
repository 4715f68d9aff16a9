// Package vocab loads and queries the tag and category vocabularies that
// agent definitions are validated against.
package vocab

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Info describes a single vocabulary entry.
type Info struct {
	Description string   `json:"description" yaml:"description"`
	Examples    []string `json:"examples,omitempty" yaml:"examples,omitempty"`
}

// Set is an immutable vocabulary of identifiers, loaded once at startup.
type Set struct {
	entries map[string]Info
}

// New builds a Set from an in-memory mapping.
func New(entries map[string]Info) *Set {
	return &Set{entries: entries}
}

// LoadTags loads the tag vocabulary from a JSON file of the form
// {"tags": {"<id>": {"description": ..., "examples": [...]}}}.
func LoadTags(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tags file: %w", err)
	}

	var doc struct {
		Tags map[string]Info `json:"tags"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing tags file: %w", err)
	}
	if doc.Tags == nil {
		return nil, fmt.Errorf("tags file %s: missing top-level \"tags\" mapping", path)
	}

	return &Set{entries: doc.Tags}, nil
}

// LoadCategories loads the category vocabulary from a YAML file of the form
// categories: {<id>: {description: ..., examples: [...]}}.
func LoadCategories(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading categories file: %w", err)
	}

	var doc struct {
		Categories map[string]Info `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing categories file: %w", err)
	}
	if doc.Categories == nil {
		return nil, fmt.Errorf("categories file %s: missing top-level \"categories\" mapping", path)
	}

	return &Set{entries: doc.Categories}, nil
}

// Has reports whether id is in the vocabulary.
func (s *Set) Has(id string) bool {
	_, ok := s.entries[id]
	return ok
}

// Keys returns all identifiers in ascending order.
func (s *Set) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Info returns the metadata for id. The second return is false for unknown ids.
func (s *Set) Info(id string) (Info, bool) {
	info, ok := s.entries[id]
	return info, ok
}

// Unknown returns the subset of ids not present in the vocabulary,
// preserving input order.
func (s *Set) Unknown(ids []string) []string {
	var out []string
	for _, id := range ids {
		if !s.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

// ByExample returns the identifiers whose examples list contains name,
// in ascending order. Used for advisory suggestions only.
func (s *Set) ByExample(name string) []string {
	var out []string
	for id, info := range s.entries {
		for _, ex := range info.Examples {
			if ex == name {
				out = append(out, id)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}
