package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var syncIndexPath string

var syncCmd = &cobra.Command{
	Use:   "sync <dir>",
	Short: "Validate a directory of agent files and regenerate the index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}

		summary, err := eng.Sync(args[0], syncIndexPath)
		if summary != nil && summary.Result != nil {
			reportFailures(summary.Result.Failures)
			reportSuggestions(summary.Result)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}

		printSummary(summary)
		if summary.Errors > 0 {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	syncCmd.Flags().StringVar(&syncIndexPath, "index", "index.json", "path to the index file")
	rootCmd.AddCommand(syncCmd)
}
