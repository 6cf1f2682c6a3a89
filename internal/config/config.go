package config

import (
	"fmt"
	"os"

	env "github.com/Netflix/go-env"
)

const defaultBaseURL = "https://api.openai.com/v1"

// ModelConfig is one resolved endpoint triple bound to a display label.
type ModelConfig struct {
	Label   string
	Model   string
	APIKey  string
	BaseURL string
}

// Config is the fully resolved configuration. It is built once by Load and
// passed explicitly; nothing reads the environment after that.
type Config struct {
	Participants []ModelConfig
	Moderator    *ModelConfig
	TavilyAPIKey string
}

type environment struct {
	DefaultModel     string `env:"DEFAULT_MODEL"`
	DefaultAPIKey    string `env:"DEFAULT_API_KEY"`
	DefaultBaseURL   string `env:"DEFAULT_BASE_URL"`
	ModeratorModel   string `env:"MODERATOR_MODEL"`
	ModeratorAPIKey  string `env:"MODERATOR_API_KEY"`
	ModeratorBaseURL string `env:"MODERATOR_BASE_URL"`
	TavilyAPIKey     string `env:"TAVILY_API_KEY"`
}

// Load resolves participants, the moderator, and tool credentials from the
// environment.
//
// Participants are discovered from numbered triples MODEL1/API_KEY1/BASE_URL1,
// MODEL2/..., stopping at the first index whose model or key is missing. When
// no numbered participant exists, the DEFAULT_* triple becomes the single
// participant. The moderator triple falls back to the DEFAULT_* triple;
// Moderator is nil when neither resolves completely.
func Load() (*Config, error) {
	var e environment
	if _, err := env.UnmarshalFromEnviron(&e); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := &Config{TavilyAPIKey: e.TavilyAPIKey}

	for i := 1; ; i++ {
		model := os.Getenv(fmt.Sprintf("MODEL%d", i))
		apiKey := os.Getenv(fmt.Sprintf("API_KEY%d", i))
		if model == "" || apiKey == "" {
			break
		}
		cfg.Participants = append(cfg.Participants, ModelConfig{
			Label:   fmt.Sprintf("Participant %d", i),
			Model:   model,
			APIKey:  apiKey,
			BaseURL: orDefault(os.Getenv(fmt.Sprintf("BASE_URL%d", i))),
		})
	}

	if len(cfg.Participants) == 0 && e.DefaultModel != "" && e.DefaultAPIKey != "" {
		cfg.Participants = append(cfg.Participants, ModelConfig{
			Label:   "Participant 1",
			Model:   e.DefaultModel,
			APIKey:  e.DefaultAPIKey,
			BaseURL: orDefault(e.DefaultBaseURL),
		})
	}

	moderator := ModelConfig{
		Label:   "Moderator",
		Model:   e.ModeratorModel,
		APIKey:  e.ModeratorAPIKey,
		BaseURL: e.ModeratorBaseURL,
	}
	if moderator.Model == "" || moderator.APIKey == "" {
		moderator.Model = e.DefaultModel
		moderator.APIKey = e.DefaultAPIKey
		moderator.BaseURL = e.DefaultBaseURL
	}
	if moderator.Model != "" && moderator.APIKey != "" {
		moderator.BaseURL = orDefault(moderator.BaseURL)
		cfg.Moderator = &moderator
	}

	return cfg, nil
}

func orDefault(baseURL string) string {
	if baseURL == "" {
		return defaultBaseURL
	}
	return baseURL
}
