package cli

import (
	"github.com/spf13/cobra"
)

var (
	tagsPath       string
	categoriesPath string
	errorLogPath   string
	outputFormat   string
	verbose        bool

	Version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "agentman",
	Short: "Validate, normalize, and index agent definition files",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&tagsPath, "tags", "tags.json", "path to the tag vocabulary file")
	pf.StringVar(&categoriesPath, "categories", "", "path to the category vocabulary file (default: categories.yaml next to the tags file)")
	pf.StringVar(&errorLogPath, "error-log", "sync_errors.log", "path to the validation error log")
	pf.StringVarP(&outputFormat, "format", "f", "plain", "error output format: plain or github")
	pf.BoolVarP(&verbose, "verbose", "v", false, "print tag suggestions and per-run detail")
}

func Execute() error {
	return rootCmd.Execute()
}
