package cli

import (
	"fmt"
	"os"

	"github.com/lucianoayres/chatty-ai-community-store/internal/engine"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <dir|file>",
	Short: "Validate agent files and normalize their formatting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}

		info, err := os.Stat(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}

		var res *engine.Result
		if info.IsDir() {
			res, err = eng.ValidateDirectory(args[0])
		} else {
			res, err = eng.ValidateFile(args[0])
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}

		reportSuggestions(res)

		if res.ErrorCount() == 0 {
			fmt.Printf("valid (%d file(s))\n", len(res.Filenames))
			return nil
		}

		reportFailures(res.Failures)
		os.Exit(1)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
