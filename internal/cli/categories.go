package cli

import (
	"fmt"
	"os"

	"github.com/lucianoayres/chatty-ai-community-store/internal/vocab"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories [agent-name]",
	Short: "List the category vocabulary, or suggest categories for an agent name",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := vocab.LoadCategories(resolvedCategoriesPath())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		listVocab(set, args)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
