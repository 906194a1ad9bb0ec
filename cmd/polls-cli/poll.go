package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourusername/polls-cli/pkg/analytics"
	"github.com/yourusername/polls-cli/pkg/polls"
	"github.com/yourusername/polls-cli/pkg/render"
)

var viewFlags struct {
	pollID uint64
}

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "View poll details",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		client, _, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		poll, err := client.GetPoll(ctx, viewFlags.pollID)
		if err != nil {
			return err
		}
		votes, total, _, err := client.GetPollResults(ctx, viewFlags.pollID)
		if err != nil {
			return err
		}

		fmt.Println(infoStyle.Render("Poll Details"))
		fmt.Printf("%s %d\n", labelStyle.Render("ID:"), poll.Id.Uint64())
		fmt.Printf("%s %s\n", labelStyle.Render("Question:"), poll.Question)
		fmt.Printf("%s %s\n", labelStyle.Render("Description:"), poll.Description)
		fmt.Printf("%s %s\n", labelStyle.Render("Type:"), polls.PollType(poll.PollType))
		fmt.Printf("%s %s\n", labelStyle.Render("Category:"), polls.Category(poll.Category))
		fmt.Printf("%s %s\n", labelStyle.Render("Status:"), polls.Status(poll.Status))
		fmt.Printf("%s %s\n", labelStyle.Render("Creator:"), poll.Creator.Hex())
		fmt.Printf("%s %s\n", labelStyle.Render("Created:"), render.FormatTimestamp(poll.CreatedAt.Int64()))
		fmt.Printf("%s %s\n", labelStyle.Render("End Time:"), render.FormatTimestamp(poll.EndTime.Int64()))
		if len(poll.Tags) > 0 {
			fmt.Printf("%s %s\n", labelStyle.Render("Tags:"), strings.Join(poll.Tags, ", "))
		}

		fmt.Println(infoStyle.Render("\nCurrent Results"))
		for i, option := range poll.Options {
			pct := 0.0
			if total > 0 {
				pct = float64(votes[i]) / float64(total) * 100
			}
			fmt.Printf("  %d: %s (%d votes, %.0f%%)\n", i, option, votes[i], pct)
		}
		fmt.Printf("%s %d\n", labelStyle.Render("Total votes:"), total)
		return nil
	},
}

var listFlags struct {
	category   string
	tag        string
	activeOnly bool
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List polls with filtering options",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		client, _, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		var ids []uint64
		switch {
		case listFlags.tag != "":
			ids, err = client.GetPollsByTag(ctx, listFlags.tag)
			if err != nil {
				return err
			}
			fmt.Printf("%s %q\n", infoStyle.Render("Polls with tag"), listFlags.tag)
		case listFlags.category != "":
			category, err := polls.ParseCategory(listFlags.category)
			if err != nil {
				return err
			}
			ids, err = client.GetPollsByCategory(ctx, category)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", infoStyle.Render("Category:"), category)
		default:
			count, err := client.PollCount(ctx)
			if err != nil {
				return err
			}
			for id := uint64(0); id < count; id++ {
				ids = append(ids, id)
			}
			if listFlags.activeOnly {
				active, err := client.GetActivePollsCount(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("%s (%d)\n", infoStyle.Render("Active Polls"), active)
			} else {
				fmt.Println(infoStyle.Render("All Polls"))
			}
		}

		if len(ids) == 0 {
			fmt.Println("No polls found.")
			return nil
		}
		fmt.Printf("%s %d\n", labelStyle.Render("Total polls:"), len(ids))

		for _, id := range ids {
			poll, err := client.GetPoll(ctx, id)
			if err != nil {
				return err
			}
			active, err := client.IsPollActive(ctx, id)
			if err != nil {
				return err
			}
			if listFlags.activeOnly && !active {
				continue
			}

			status := "Closed"
			if active {
				status = "Active"
			}
			fmt.Printf("\n%s #%d: %s\n", labelStyle.Render("Poll"), id, poll.Question)
			fmt.Printf("  Status: %s\n", status)
			fmt.Printf("  Type: %s\n", polls.PollType(poll.PollType))
			fmt.Printf("  Category: %s\n", polls.Category(poll.Category))
			fmt.Printf("  Options: %d\n", len(poll.Options))
			fmt.Printf("  Total Votes: %s\n", poll.TotalVotes)
			fmt.Printf("  Creator: %s\n", poll.Creator.Hex())
			if len(poll.Tags) > 0 {
				fmt.Printf("  Tags: %s\n", strings.Join(poll.Tags, ", "))
			}
		}
		return nil
	},
}

var resultsFlags struct {
	pollID uint64
}

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "View poll results",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		client, _, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		snap, err := client.Snapshot(ctx, resultsFlags.pollID)
		if err != nil {
			return err
		}
		report := analytics.ComputeSingle(snap, time.Now())

		fmt.Printf("%s %s\n", infoStyle.Render("Poll Results for:"), snap.Question)
		fmt.Println(strings.Repeat("=", 50))
		for _, d := range report.OptionsDetail {
			fmt.Printf("%s: %3d votes (%4.1f%%) %s\n", d.Option, d.Votes, d.Percentage, render.Bar(d.Percentage))
		}
		fmt.Println(strings.Repeat("=", 50))
		fmt.Printf("%s %d\n", labelStyle.Render("Total votes:"), snap.TotalVotes)
		return nil
	},
}

var closeFlags struct {
	pollID uint64
}

var closeCmd = &cobra.Command{
	Use:   "close",
	Short: "Close a poll (creator only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		client, cfg, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		fmt.Printf("%s %d\n", infoStyle.Render("Closing poll"), closeFlags.pollID)

		receipt, err := client.ClosePoll(ctx, closeFlags.pollID)
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render("Poll closed successfully!"))
		printTxHash(receipt.TxHash.Hex())
		recordSubmission(cfg, "close", int64(closeFlags.pollID), receipt.TxHash.Hex())
		return nil
	},
}

var extendFlags struct {
	pollID uint64
	hours  uint64
}

var extendCmd = &cobra.Command{
	Use:   "extend",
	Short: "Extend a poll duration (creator only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		client, cfg, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		fmt.Printf("%s %d %s %d %s\n",
			infoStyle.Render("Extending poll"), extendFlags.pollID,
			infoStyle.Render("by"), extendFlags.hours, infoStyle.Render("hours"))

		receipt, err := client.ExtendPoll(ctx, extendFlags.pollID, time.Duration(extendFlags.hours)*time.Hour)
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render("Poll extended successfully!"))
		printTxHash(receipt.TxHash.Hex())
		recordSubmission(cfg, "extend", int64(extendFlags.pollID), receipt.TxHash.Hex())
		return nil
	},
}

func init() {
	viewCmd.Flags().Uint64VarP(&viewFlags.pollID, "poll-id", "p", 0, "poll ID to view")
	cobra.CheckErr(viewCmd.MarkFlagRequired("poll-id"))

	listCmd.Flags().StringVarP(&listFlags.category, "category", "c", "", "filter by category")
	listCmd.Flags().StringVarP(&listFlags.tag, "tag", "t", "", "filter by tag")
	listCmd.Flags().BoolVar(&listFlags.activeOnly, "active-only", false, "show only active polls")

	resultsCmd.Flags().Uint64VarP(&resultsFlags.pollID, "poll-id", "p", 0, "poll ID to get results for")
	cobra.CheckErr(resultsCmd.MarkFlagRequired("poll-id"))

	closeCmd.Flags().Uint64VarP(&closeFlags.pollID, "poll-id", "p", 0, "poll ID to close")
	cobra.CheckErr(closeCmd.MarkFlagRequired("poll-id"))

	extendCmd.Flags().Uint64VarP(&extendFlags.pollID, "poll-id", "p", 0, "poll ID to extend")
	extendCmd.Flags().Uint64VarP(&extendFlags.hours, "hours", "H", 0, "additional hours to add")
	cobra.CheckErr(extendCmd.MarkFlagRequired("poll-id"))
	cobra.CheckErr(extendCmd.MarkFlagRequired("hours"))

	rootCmd.AddCommand(viewCmd, listCmd, resultsCmd, closeCmd, extendCmd)
}
