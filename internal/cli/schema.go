package cli

import (
	"fmt"

	"github.com/lucianoayres/chatty-ai-community-store/internal/agent"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Output JSON Schema for agent definition files",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(string(agent.Schema()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
