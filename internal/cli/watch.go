package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lucianoayres/chatty-ai-community-store/internal/watch"
	"github.com/spf13/cobra"
)

var watchIndexPath string

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Re-sync the index whenever agent files change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}

		dir := args[0]
		runSync := func() {
			summary, err := eng.Sync(dir, watchIndexPath)
			if summary != nil && summary.Result != nil {
				reportFailures(summary.Result.Failures)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s\n", err)
				return
			}
			fmt.Printf("synced: %d agents, %d added, %d updated, %d errors\n",
				summary.Total, summary.Added, summary.Updated, summary.Errors)
		}

		runSync()
		fmt.Printf("watching %s (Ctrl-C to stop)\n", dir)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return watch.Watch(ctx, dir, runSync)
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchIndexPath, "index", "index.json", "path to the index file")
	rootCmd.AddCommand(watchCmd)
}
