package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yourusername/polls-cli/pkg/render"
)

var exportFlags struct {
	pollID uint64
	format string
	output string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export poll data to various formats",
	RunE: func(cmd *cobra.Command, args []string) error {
		renderer, err := render.New(exportFlags.format)
		if err != nil {
			return err
		}

		ctx := context.Background()
		client, _, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		poll, err := client.GetPoll(ctx, exportFlags.pollID)
		if err != nil {
			return err
		}
		snap, err := client.Snapshot(ctx, exportFlags.pollID)
		if err != nil {
			return err
		}

		var w io.Writer = os.Stdout
		if exportFlags.output != "" {
			f, err := os.Create(exportFlags.output)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			w = f
		}

		if err := renderer.Export(w, render.NewPollExport(snap, poll.Creator.Hex())); err != nil {
			return err
		}
		if exportFlags.output != "" {
			fmt.Printf("%s %s\n", successStyle.Render("Exported to:"), exportFlags.output)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().Uint64VarP(&exportFlags.pollID, "poll-id", "p", 0, "poll ID to export")
	exportCmd.Flags().StringVarP(&exportFlags.format, "format", "f", "json", "export format (json, csv, table)")
	exportCmd.Flags().StringVarP(&exportFlags.output, "output", "O", "", "output file path (defaults to stdout)")
	cobra.CheckErr(exportCmd.MarkFlagRequired("poll-id"))

	rootCmd.AddCommand(exportCmd)
}
