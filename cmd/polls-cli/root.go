// polls-cli is a command-line client for a deployed polls contract and
// its companion governance token. Each command performs one contract
// read or one transaction submission and renders the result.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yourusername/polls-cli/pkg/config"
	"github.com/yourusername/polls-cli/pkg/history"
	"github.com/yourusername/polls-cli/pkg/polls"
)

var cfgFile string

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
)

var rootCmd = &cobra.Command{
	Use:          "polls-cli",
	Short:        "A CLI for interacting with the DecentralizedPolls smart contract",
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is built-in defaults plus POLLS_* env vars)")
}

// newClient loads configuration and dials the EVM node. Callers own
// closing the returned client.
func newClient(ctx context.Context) (*polls.Client, *config.Config, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	client, err := polls.Dial(ctx, &cfg.Chain)
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}

// recordSubmission logs a sent transaction locally. History is best
// effort: a logging failure never fails the command that already
// landed on chain.
func recordSubmission(cfg *config.Config, command string, pollID int64, txHash string) {
	store, err := history.NewStore(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open history database: %v\n", err)
		return
	}
	defer store.Close()

	if err := store.Record(command, pollID, txHash); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record submission: %v\n", err)
	}
}

func printTxHash(hash string) {
	fmt.Printf("%s %s\n", labelStyle.Render("Transaction hash:"), hash)
}
