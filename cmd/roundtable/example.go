package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const exampleEnv = `# Example .env configuration for Roundtable

# Participant 1: GPT-4o
MODEL1=gpt-4o
API_KEY1=your-openai-api-key
BASE_URL1=https://api.openai.com/v1

# Participant 2: Claude Sonnet
MODEL2=claude-sonnet-4.5
API_KEY2=your-anthropic-api-key
BASE_URL2=https://api.anthropic.com/v1

# Participant 3: Llama
MODEL3=meta-llama/Llama-3.3-70B-Instruct
API_KEY3=your-friendli-api-key
BASE_URL3=https://api.friendli.ai/serverless/v1

# Moderator (optional, falls back to DEFAULT_* if not set)
MODERATOR_MODEL=gpt-4o
MODERATOR_API_KEY=your-openai-api-key
MODERATOR_BASE_URL=https://api.openai.com/v1

# Fallback/Default
DEFAULT_MODEL=gpt-4o
DEFAULT_API_KEY=your-openai-api-key
DEFAULT_BASE_URL=https://api.openai.com/v1

# External Tools (optional)
TAVILY_API_KEY=your-tavily-api-key
`

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Show example .env configuration",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(exampleEnv)
		},
	}
}
