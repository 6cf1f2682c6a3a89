package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "roundtable",
		Short: "Multi-agent brainstorming discussion system",
		Long: "Roundtable orchestrates discussions among multiple AI models. " +
			"Participants contribute in rounds, building on each other's ideas, " +
			"and an optional moderator synthesizes a final summary.",
	}

	root.AddCommand(newDiscussCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newToolsStatusCmd())
	root.AddCommand(newExampleCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
