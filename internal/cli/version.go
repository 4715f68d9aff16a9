package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of agentman",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("agentman %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
