package cli

import (
	"fmt"
	"os"

	"github.com/lucianoayres/chatty-ai-community-store/internal/vocab"
	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags [agent-name]",
	Short: "List the tag vocabulary, or suggest tags for an agent name",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := vocab.LoadTags(tagsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		listVocab(set, args)
		return nil
	},
}

// listVocab prints the whole vocabulary, or example-matched suggestions when
// an agent name is given.
func listVocab(set *vocab.Set, args []string) {
	if len(args) == 1 {
		for _, id := range set.ByExample(args[0]) {
			fmt.Println(id)
		}
		return
	}
	for _, id := range set.Keys() {
		info, _ := set.Info(id)
		fmt.Printf("%-24s %s\n", id, info.Description)
	}
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}
