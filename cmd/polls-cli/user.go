package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourusername/polls-cli/pkg/polls"
)

var myPollsCmd = &cobra.Command{
	Use:   "my-polls",
	Short: "View your created polls",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		client, _, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		ids, err := client.GetUserCreatedPolls(ctx, client.From())
		if err != nil {
			return err
		}

		fmt.Println(infoStyle.Render("Your Created Polls"))
		if len(ids) == 0 {
			fmt.Println("You haven't created any polls yet.")
			return nil
		}

		for _, id := range ids {
			poll, err := client.GetPoll(ctx, id)
			if err != nil {
				return err
			}
			active, err := client.IsPollActive(ctx, id)
			if err != nil {
				return err
			}
			status := "Closed"
			if active {
				status = "Active"
			}
			fmt.Printf("\n%s #%d: %s\n", labelStyle.Render("Poll"), id, poll.Question)
			fmt.Printf("  Status: %s\n", status)
		}
		return nil
	},
}

var myVotesCmd = &cobra.Command{
	Use:   "my-votes",
	Short: "View polls you have voted on",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		client, _, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		ids, err := client.GetUserVotedPolls(ctx, client.From())
		if err != nil {
			return err
		}

		fmt.Println(infoStyle.Render("Polls You've Voted On"))
		if len(ids) == 0 {
			fmt.Println("You haven't voted on any polls yet.")
			return nil
		}

		for _, id := range ids {
			poll, err := client.GetPoll(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s #%d: %s\n", labelStyle.Render("Poll"), id, poll.Question)
		}
		return nil
	},
}

var myStatsCmd = &cobra.Command{
	Use:   "my-stats",
	Short: "View your user statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		client, _, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		stats, err := client.GetUserStats(ctx, client.From())
		if err != nil {
			return err
		}

		fmt.Println(infoStyle.Render("User Statistics"))
		fmt.Printf("%s %s\n", labelStyle.Render("Address:"), client.From().Hex())
		fmt.Printf("%s %d\n", labelStyle.Render("Polls Created:"), stats.PollsCreated)
		fmt.Printf("%s %d\n", labelStyle.Render("Polls Voted On:"), stats.PollsVoted)
		fmt.Printf("%s %s\n", labelStyle.Render("Total Voting Weight:"), stats.TotalVotingWeight)
		return nil
	},
}

var tokenBalanceFlags struct {
	token   string
	address string
}

var tokenBalanceCmd = &cobra.Command{
	Use:   "token-balance",
	Short: "Check token balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		client, _, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		account := client.From()
		if tokenBalanceFlags.address != "" {
			account, err = polls.ParseAddress(tokenBalanceFlags.address)
			if err != nil {
				return err
			}
		}

		token := client.GovernanceToken()
		if tokenBalanceFlags.token != "" {
			token, err = polls.ParseAddress(tokenBalanceFlags.token)
			if err != nil {
				return err
			}
		} else if !client.HasToken() {
			return fmt.Errorf("no token address provided and no governance token configured")
		}

		info, err := client.TokenInfo(ctx, token, account)
		if err != nil {
			return err
		}

		fmt.Println(infoStyle.Render("Token Balance Information"))
		fmt.Printf("%s %s (%s)\n", labelStyle.Render("Token:"), info.Name, info.Symbol)
		fmt.Printf("%s %s\n", labelStyle.Render("Balance:"), info.BalanceString())
		fmt.Printf("%s %s\n", labelStyle.Render("Total Supply:"), info.TotalSupplyString())
		if info.VotingPower != nil {
			fmt.Printf("%s %s\n", labelStyle.Render("Voting Power:"), info.VotingPowerString())
		}
		fmt.Printf("%s %s\n", labelStyle.Render("Address:"), account.Hex())
		return nil
	},
}

func init() {
	tokenBalanceCmd.Flags().StringVarP(&tokenBalanceFlags.token, "token", "t", "", "token contract address (defaults to the configured governance token)")
	tokenBalanceCmd.Flags().StringVarP(&tokenBalanceFlags.address, "address", "a", "", "address to check (defaults to your address)")

	rootCmd.AddCommand(myPollsCmd, myVotesCmd, myStatsCmd, tokenBalanceCmd)
}
