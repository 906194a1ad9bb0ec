package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourusername/polls-cli/pkg/analytics"
	"github.com/yourusername/polls-cli/pkg/render"
)

var analyticsFlags struct {
	pollID int64
	format string
}

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Generate poll analytics",
	Long:  "Generate analytics for one poll, or a system-wide summary across all polls when no poll ID is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		renderer, err := render.New(analyticsFlags.format)
		if err != nil {
			return err
		}

		ctx := context.Background()
		client, _, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		now := time.Now()

		if analyticsFlags.pollID >= 0 {
			fmt.Printf("%s %d\n", infoStyle.Render("Generating analytics for poll"), analyticsFlags.pollID)
			snap, err := client.Snapshot(ctx, uint64(analyticsFlags.pollID))
			if err != nil {
				return err
			}
			return renderer.Analytics(os.Stdout, analytics.ComputeSingle(snap, now))
		}

		fmt.Println(infoStyle.Render("Generating analytics for all polls"))
		snaps, err := client.Snapshots(ctx)
		if err != nil {
			return err
		}
		return renderer.Summary(os.Stdout, analytics.ComputeAggregate(snaps, now))
	},
}

func init() {
	analyticsCmd.Flags().Int64VarP(&analyticsFlags.pollID, "poll-id", "p", -1, "poll ID for analytics (all polls if not provided)")
	analyticsCmd.Flags().StringVarP(&analyticsFlags.format, "format", "f", "text", "output format (text, json, csv, table)")

	rootCmd.AddCommand(analyticsCmd)
}
