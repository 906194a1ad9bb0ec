package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourusername/polls-cli/pkg/polls"
)

var setDelegateFlags struct {
	delegate string
}

var setDelegateCmd = &cobra.Command{
	Use:   "set-delegate",
	Short: "Set a delegate for your votes",
	RunE: func(cmd *cobra.Command, args []string) error {
		delegate, err := polls.ParseAddress(setDelegateFlags.delegate)
		if err != nil {
			return err
		}

		ctx := context.Background()
		client, cfg, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		fmt.Printf("%s %s\n", infoStyle.Render("Setting delegate to"), setDelegateFlags.delegate)

		receipt, err := client.SetDelegate(ctx, delegate)
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render("Delegate set successfully!"))
		printTxHash(receipt.TxHash.Hex())
		recordSubmission(cfg, "set-delegate", -1, receipt.TxHash.Hex())
		return nil
	},
}

var removeDelegateCmd = &cobra.Command{
	Use:   "remove-delegate",
	Short: "Remove your current delegate",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		client, cfg, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		fmt.Println(infoStyle.Render("Removing current delegate"))

		receipt, err := client.RemoveDelegate(ctx)
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render("Delegate removed successfully!"))
		printTxHash(receipt.TxHash.Hex())
		recordSubmission(cfg, "remove-delegate", -1, receipt.TxHash.Hex())
		return nil
	},
}

var delegationFlags struct {
	address string
}

var delegationCmd = &cobra.Command{
	Use:   "delegation",
	Short: "View delegation information",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		client, _, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		address := client.From()
		if delegationFlags.address != "" {
			address, err = polls.ParseAddress(delegationFlags.address)
			if err != nil {
				return err
			}
		}

		info, err := client.GetDelegation(ctx, address)
		if err != nil {
			return err
		}

		fmt.Println(infoStyle.Render("Delegation Information"))
		fmt.Printf("%s %s\n", labelStyle.Render("Address:"), info.Address.Hex())
		if info.HasDelegate() {
			fmt.Printf("%s %s\n", labelStyle.Render("Delegated To:"), info.Delegate.Hex())
		} else {
			fmt.Printf("%s None\n", labelStyle.Render("Delegated To:"))
		}

		if len(info.Delegators) == 0 {
			fmt.Printf("%s None\n", labelStyle.Render("Delegators:"))
			return nil
		}
		fmt.Printf("%s %d\n", labelStyle.Render("Delegators Count:"), len(info.Delegators))
		fmt.Println(labelStyle.Render("Delegators:"))
		for i, delegator := range info.Delegators {
			fmt.Printf("  %d: %s\n", i+1, delegator.Hex())
		}
		return nil
	},
}

func init() {
	setDelegateCmd.Flags().StringVarP(&setDelegateFlags.delegate, "delegate", "D", "", "address of the delegate")
	cobra.CheckErr(setDelegateCmd.MarkFlagRequired("delegate"))

	delegationCmd.Flags().StringVarP(&delegationFlags.address, "address", "a", "", "address to check delegation for (defaults to your address)")

	rootCmd.AddCommand(setDelegateCmd, removeDelegateCmd, delegationCmd)
}
