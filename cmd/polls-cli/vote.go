package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourusername/polls-cli/pkg/polls"
)

var voteFlags struct {
	pollID uint64
	option uint64
}

var voteCmd = &cobra.Command{
	Use:   "vote",
	Short: "Vote on a poll",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		client, cfg, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		fmt.Printf("%s %d %s %d\n", infoStyle.Render("Voting on poll"), voteFlags.pollID, infoStyle.Render("with option"), voteFlags.option)

		receipt, err := client.Vote(ctx, voteFlags.pollID, voteFlags.option)
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render("Vote cast successfully!"))
		printTxHash(receipt.TxHash.Hex())
		recordSubmission(cfg, "vote", int64(voteFlags.pollID), receipt.TxHash.Hex())
		return nil
	},
}

var voteDelegateFlags struct {
	pollID    uint64
	option    uint64
	delegator string
}

var voteDelegateCmd = &cobra.Command{
	Use:   "vote-delegate",
	Short: "Vote as a delegate for someone else",
	RunE: func(cmd *cobra.Command, args []string) error {
		delegator, err := polls.ParseAddress(voteDelegateFlags.delegator)
		if err != nil {
			return err
		}

		ctx := context.Background()
		client, cfg, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		fmt.Printf("%s %d %s %d %s %s\n",
			infoStyle.Render("Voting as delegate on poll"), voteDelegateFlags.pollID,
			infoStyle.Render("with option"), voteDelegateFlags.option,
			infoStyle.Render("for"), voteDelegateFlags.delegator)

		receipt, err := client.VoteAsDelegate(ctx, voteDelegateFlags.pollID, voteDelegateFlags.option, delegator)
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render("Delegate vote cast successfully!"))
		printTxHash(receipt.TxHash.Hex())
		recordSubmission(cfg, "vote-delegate", int64(voteDelegateFlags.pollID), receipt.TxHash.Hex())
		return nil
	},
}

func init() {
	voteCmd.Flags().Uint64VarP(&voteFlags.pollID, "poll-id", "p", 0, "poll ID to vote on")
	voteCmd.Flags().Uint64VarP(&voteFlags.option, "option", "o", 0, "option index to vote for")
	cobra.CheckErr(voteCmd.MarkFlagRequired("poll-id"))
	cobra.CheckErr(voteCmd.MarkFlagRequired("option"))

	voteDelegateCmd.Flags().Uint64VarP(&voteDelegateFlags.pollID, "poll-id", "p", 0, "poll ID to vote on")
	voteDelegateCmd.Flags().Uint64VarP(&voteDelegateFlags.option, "option", "o", 0, "option index to vote for")
	voteDelegateCmd.Flags().StringVarP(&voteDelegateFlags.delegator, "delegator", "D", "", "address of the person you're voting for")
	cobra.CheckErr(voteDelegateCmd.MarkFlagRequired("poll-id"))
	cobra.CheckErr(voteDelegateCmd.MarkFlagRequired("option"))
	cobra.CheckErr(voteDelegateCmd.MarkFlagRequired("delegator"))

	rootCmd.AddCommand(voteCmd, voteDelegateCmd)
}
