package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mamipour/roundtable/internal/config"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show configured participants and moderator",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			fmt.Printf("Participants: %d\n\n", len(cfg.Participants))

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Label", "Model", "Base URL"})
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			for _, p := range cfg.Participants {
				table.Append([]string{p.Label, p.Model, p.BaseURL})
			}
			table.Render()

			if cfg.Moderator != nil {
				fmt.Printf("\nModerator: %s (%s)\n", cfg.Moderator.Model, cfg.Moderator.BaseURL)
			} else {
				fmt.Println("\nModerator: not configured")
			}
			return nil
		},
	}
}
