package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/lucianoayres/chatty-ai-community-store/internal/agent"
	"github.com/lucianoayres/chatty-ai-community-store/internal/engine"
	"github.com/lucianoayres/chatty-ai-community-store/internal/errlog"
	"github.com/lucianoayres/chatty-ai-community-store/internal/fileutil"
	"github.com/lucianoayres/chatty-ai-community-store/internal/vocab"
)

// newEngine loads the tag vocabulary and wires up an engine. A malformed or
// missing vocabulary is fatal.
func newEngine() (*engine.Engine, error) {
	tags, err := vocab.LoadTags(tagsPath)
	if err != nil {
		return nil, err
	}
	return engine.New(agent.NewValidator(tags), errlog.New(errorLogPath)), nil
}

// resolvedCategoriesPath returns the --categories flag value, defaulting to
// a categories.yaml next to the tags file.
func resolvedCategoriesPath() string {
	if categoriesPath != "" {
		return categoriesPath
	}
	return fileutil.SiblingPath(tagsPath, "categories.yaml")
}

// reportFailures prints one line per failed file, as plain stderr text or as
// GitHub Actions error annotations depending on --format.
func reportFailures(failures []engine.Failure) {
	for _, f := range failures {
		if outputFormat == "github" {
			fmt.Printf("::error file=%s::%s\n", f.Path, f.Err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s: %s\n", f.Path, f.Err)
		}
	}
}

// reportSuggestions prints advisory tag suggestions for valid files that
// have no tags. Only shown with --verbose.
func reportSuggestions(res *engine.Result) {
	if !verbose || len(res.Suggestions) == 0 {
		return
	}
	files := make([]string, 0, len(res.Suggestions))
	for f := range res.Suggestions {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		fmt.Printf("Hint: %s has no tags; candidates from examples: %s\n",
			f, strings.Join(res.Suggestions[f], ", "))
	}
}

// printSummary prints the per-run summary block.
func printSummary(s *engine.Summary) {
	fmt.Println()
	fmt.Println("Agent management complete:")
	fmt.Printf("- Total agents: %d\n", s.Total)
	fmt.Printf("- New agents added: %d\n", s.Added)
	fmt.Printf("- Existing agents updated: %d\n", s.Updated)
	fmt.Printf("- Files with errors: %d\n", s.Errors)
	if s.Errors > 0 {
		fmt.Printf("  See %s for error details\n", errorLogPath)
	}
}
