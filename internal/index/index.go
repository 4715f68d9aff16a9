// Package index builds and persists the searchable agent index. The index is
// a flat artifact, fully regenerated on every run; only creation timestamps
// carry over from the prior index.
package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/lucianoayres/chatty-ai-community-store/internal/agent"
	"github.com/lucianoayres/chatty-ai-community-store/internal/apperr"
	"github.com/lucianoayres/chatty-ai-community-store/internal/fileutil"
)

const (
	// Version is the index format version written to every index file.
	Version = "1.0"

	timeLayout = "2006-01-02T15:04:05Z"
)

// Entry is the summary record for one valid agent file.
type Entry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Filename    string   `json:"filename"`
	Description string   `json:"description"`
	Emoji       string   `json:"emoji"`
	CreatedAt   string   `json:"created_at"`
	Tags        []string `json:"tags,omitempty"`
	Author      string   `json:"author,omitempty"`
}

// equal reports whether two entries match in every field, including the
// creation timestamp.
func (e Entry) equal(o Entry) bool {
	return e.ID == o.ID &&
		e.Name == o.Name &&
		e.Filename == o.Filename &&
		e.Description == o.Description &&
		e.Emoji == o.Emoji &&
		e.CreatedAt == o.CreatedAt &&
		slices.Equal(e.Tags, o.Tags) &&
		e.Author == o.Author
}

// Index is the full index document.
type Index struct {
	Version     string  `json:"version"`
	TotalAgents int     `json:"total_agents"`
	Files       []Entry `json:"files"`
}

// Empty returns a valid index with no entries.
func Empty() *Index {
	return &Index{Version: Version, Files: []Entry{}}
}

// LoadPrior reads a previously written index. A missing or unparseable file
// is treated as an empty index, never an error.
func LoadPrior(path string) *Index {
	data, err := os.ReadFile(path)
	if err != nil {
		return Empty()
	}
	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return Empty()
	}
	return &idx
}

// Builder assembles a new index from validated records.
type Builder struct {
	// Now supplies creation timestamps for entries new to the index.
	Now func() time.Time
}

// NewBuilder returns a Builder using the wall clock.
func NewBuilder() *Builder {
	return &Builder{Now: time.Now}
}

// Build creates an index from validated records and their filenames, copying
// creation timestamps from prior where an entry already existed. It returns
// the counts of entries added since the prior index and of existing entries
// whose content changed. The result is checked against the index schema
// before being returned; a failed check is fatal.
func (b *Builder) Build(records []*agent.Record, filenames []string, prior *Index) (*Index, int, int, error) {
	if len(records) != len(filenames) {
		return nil, 0, 0, fmt.Errorf("%w: %d records for %d filenames", apperr.ErrBuild, len(records), len(filenames))
	}

	priorByID := make(map[string]Entry, len(prior.Files))
	for _, e := range prior.Files {
		priorByID[e.ID] = e
	}

	var added, updated int
	entries := make([]Entry, 0, len(records))

	for i, rec := range records {
		filename := filenames[i]
		entry := Entry{
			ID:          strings.TrimSuffix(filename, filepath.Ext(filename)),
			Name:        rec.Name,
			Filename:    filename,
			Description: rec.Description,
			Emoji:       rec.Emoji,
			Tags:        rec.Tags,
			Author:      rec.Author,
		}

		priorEntry, ok := priorByID[entry.ID]
		if !ok {
			entry.CreatedAt = b.Now().UTC().Format(timeLayout)
			added++
		} else {
			entry.CreatedAt = priorEntry.CreatedAt
			if !entry.equal(priorEntry) {
				updated++
			}
		}

		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

	idx := &Index{
		Version:     Version,
		TotalAgents: len(entries),
		Files:       entries,
	}
	if err := idx.check(); err != nil {
		return nil, 0, 0, err
	}

	return idx, added, updated, nil
}

// check validates the assembled index against the fixed index schema.
// A half-formed index must never reach disk.
func (idx *Index) check() error {
	if idx.Version == "" {
		return fmt.Errorf("%w: index version is empty", apperr.ErrBuild)
	}
	if idx.Files == nil {
		return fmt.Errorf("%w: index files list is missing", apperr.ErrBuild)
	}
	if idx.TotalAgents != len(idx.Files) {
		return fmt.Errorf("%w: total_agents %d does not match %d entries", apperr.ErrBuild, idx.TotalAgents, len(idx.Files))
	}
	for _, e := range idx.Files {
		if e.ID == "" || e.Name == "" || e.Filename == "" || e.Description == "" || e.Emoji == "" || e.CreatedAt == "" {
			return fmt.Errorf("%w: entry %q is missing required fields", apperr.ErrBuild, e.Filename)
		}
	}
	return nil
}

// Save writes the index to path atomically, via a temp file and rename, so a
// crash mid-write never leaves a truncated index behind.
func (idx *Index) Save(path string) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}
	data = append(data, '\n')
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("saving index: %w", err)
	}
	return nil
}
