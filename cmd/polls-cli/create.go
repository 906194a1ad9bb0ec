package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/yourusername/polls-cli/pkg/polls"
)

var createFlags struct {
	question         string
	options          string
	durationHours    uint64
	pollType         string
	category         string
	minParticipation uint64
	tokenAddress     string
	minTokenBalance  uint64
	description      string
	tags             string
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new poll",
	RunE: func(cmd *cobra.Command, args []string) error {
		options := splitList(createFlags.options)
		if len(options) < 2 {
			return fmt.Errorf("poll must have at least 2 options")
		}

		pollType, err := polls.ParsePollType(createFlags.pollType)
		if err != nil {
			return err
		}
		category, err := polls.ParseCategory(createFlags.category)
		if err != nil {
			return err
		}

		var tokenAddress common.Address
		if createFlags.tokenAddress != "" {
			tokenAddress, err = polls.ParseAddress(createFlags.tokenAddress)
			if err != nil {
				return err
			}
		}

		ctx := context.Background()
		client, cfg, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		fmt.Println(infoStyle.Render("Creating poll..."))
		fmt.Printf("%s %s\n", labelStyle.Render("Question:"), createFlags.question)
		fmt.Printf("%s %v\n", labelStyle.Render("Options:"), options)
		fmt.Printf("%s %d hours\n", labelStyle.Render("Duration:"), createFlags.durationHours)
		fmt.Printf("%s %s\n", labelStyle.Render("Type:"), pollType)
		fmt.Printf("%s %s\n", labelStyle.Render("Category:"), category)

		pollID, receipt, err := client.CreatePoll(ctx, polls.CreatePollParams{
			Question:         createFlags.question,
			Options:          options,
			Duration:         time.Duration(createFlags.durationHours) * time.Hour,
			Type:             pollType,
			Category:         category,
			MinParticipation: createFlags.minParticipation,
			TokenAddress:     tokenAddress,
			MinTokenBalance:  createFlags.minTokenBalance,
			Description:      createFlags.description,
			Tags:             splitList(createFlags.tags),
		})
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render("Poll created successfully!"))
		fmt.Printf("%s %d\n", labelStyle.Render("Poll ID:"), pollID)
		printTxHash(receipt.TxHash.Hex())
		recordSubmission(cfg, "create", int64(pollID), receipt.TxHash.Hex())
		return nil
	},
}

// splitList parses a comma-separated flag value, trimming whitespace
// and dropping empty entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func init() {
	createCmd.Flags().StringVarP(&createFlags.question, "question", "q", "", "question for the poll")
	createCmd.Flags().StringVarP(&createFlags.options, "options", "o", "", "poll options (comma-separated)")
	createCmd.Flags().Uint64VarP(&createFlags.durationHours, "duration", "d", 168, "duration in hours")
	createCmd.Flags().StringVarP(&createFlags.pollType, "type", "t", "standard", "poll type: standard, weighted, quadratic")
	createCmd.Flags().StringVarP(&createFlags.category, "category", "c", "general", "category: general, governance, technical, community, finance")
	createCmd.Flags().Uint64VarP(&createFlags.minParticipation, "min-participation", "m", 0, "minimum participation required")
	createCmd.Flags().StringVar(&createFlags.tokenAddress, "token-address", "", "token address for weighted/quadratic voting")
	createCmd.Flags().Uint64Var(&createFlags.minTokenBalance, "min-token-balance", 0, "minimum token balance required to vote, in whole tokens")
	createCmd.Flags().StringVar(&createFlags.description, "description", "", "extended description of the poll")
	createCmd.Flags().StringVar(&createFlags.tags, "tags", "", "tags for the poll (comma-separated)")

	cobra.CheckErr(createCmd.MarkFlagRequired("question"))
	cobra.CheckErr(createCmd.MarkFlagRequired("options"))

	rootCmd.AddCommand(createCmd)
}
