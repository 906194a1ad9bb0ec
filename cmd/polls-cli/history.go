package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourusername/polls-cli/pkg/config"
	"github.com/yourusername/polls-cli/pkg/history"
)

var historyFlags struct {
	limit int
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List transactions submitted by this client",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return err
		}

		store, err := history.NewStore(cfg.Database.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		subs, err := store.List(historyFlags.limit)
		if err != nil {
			return err
		}

		fmt.Println(infoStyle.Render("Submission History"))
		if len(subs) == 0 {
			fmt.Println("No transactions submitted yet.")
			return nil
		}

		for _, sub := range subs {
			pollRef := "-"
			if sub.PollID.Valid {
				pollRef = fmt.Sprintf("#%d", sub.PollID.Int64)
			}
			fmt.Printf("%s  %-14s %-6s %s\n",
				sub.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
				sub.Command, pollRef, sub.TxHash)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyFlags.limit, "limit", "n", 20, "maximum entries to show")

	rootCmd.AddCommand(historyCmd)
}
