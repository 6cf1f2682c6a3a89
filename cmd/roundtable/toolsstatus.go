package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mamipour/roundtable/internal/config"
	"github.com/mamipour/roundtable/internal/output"
	"github.com/mamipour/roundtable/internal/tools"
)

func newToolsStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools-status",
		Short: "Show status of available external knowledge tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			fmt.Println("External knowledge tools:")
			fmt.Println()
			for _, s := range tools.Statuses(cfg.TavilyAPIKey) {
				output.PrintToolStatus(s)
			}
			fmt.Println()
			fmt.Println(`Enable tools with: roundtable discuss "question" --tools`)
			return nil
		},
	}
}
