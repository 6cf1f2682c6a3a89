package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mamipour/roundtable/internal/config"
	"github.com/mamipour/roundtable/internal/output"
	"github.com/mamipour/roundtable/internal/roundtable"
	"github.com/mamipour/roundtable/internal/tools"
)

func newDiscussCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discuss [question]",
		Short: "Conduct a roundtable discussion on a question",
		Args:  cobra.ExactArgs(1),
		RunE:  runDiscuss,
	}
	cmd.Flags().IntP("rounds", "r", 3, "Number of discussion rounds")
	cmd.Flags().Float64P("temperature", "t", 0.7, "Temperature for creativity (0.0-1.0)")
	cmd.Flags().Bool("no-moderator", false, "Disable moderator summary")
	cmd.Flags().BoolP("tools", "T", false, "Enable external knowledge tools (web, Wikipedia, arXiv)")
	cmd.Flags().BoolP("quiet", "q", false, "Minimal output (no progress)")
	cmd.Flags().StringP("export", "e", "", "Export format (markdown|json|text)")
	cmd.Flags().StringP("output", "o", "", "Output file path")
	return cmd
}

func runDiscuss(cmd *cobra.Command, args []string) error {
	question := args[0]
	rounds, _ := cmd.Flags().GetInt("rounds")
	temperature, _ := cmd.Flags().GetFloat64("temperature")
	noModerator, _ := cmd.Flags().GetBool("no-moderator")
	toolsEnabled, _ := cmd.Flags().GetBool("tools")
	quiet, _ := cmd.Flags().GetBool("quiet")
	exportFormat, _ := cmd.Flags().GetString("export")
	outputPath, _ := cmd.Flags().GetString("output")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	rt, err := roundtable.FromConfig(cfg, roundtable.Options{
		MaxRounds:        rounds,
		Temperature:      temperature,
		ModeratorEnabled: !noModerator,
		ToolsEnabled:     toolsEnabled,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if !quiet {
		participants := lo.Map(rt.Participants(), func(p *roundtable.Participant, _ int) string {
			return fmt.Sprintf("%s: %s", p.Label, p.Model)
		})
		toolNames := lo.Map(rt.Tools(), func(t tools.Tool, _ int) string {
			return t.Name
		})
		output.PrintBanner(question, participants, toolNames)

		rt.OnRoundStart = func(round int) { output.PrintRoundStart(round, rounds) }
		rt.OnContribution = func(_ int, c roundtable.Contribution) { output.PrintContribution(c) }
		rt.OnSummary = output.PrintSummary
	}

	discussion, err := rt.Discuss(ctx, question)
	if err != nil {
		return err
	}

	if exportFormat != "" {
		format, err := roundtable.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		content, err := roundtable.Export(discussion, format)
		if err != nil {
			return err
		}
		if outputPath != "" {
			if err := output.WriteFile(outputPath, content); err != nil {
				return err
			}
			fmt.Printf("Discussion exported to %s\n", outputPath)
		} else {
			fmt.Println(content)
		}
	}

	if !quiet {
		fmt.Println("Discussion complete.")
	}
	return nil
}
