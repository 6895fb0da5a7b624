// Package config loads the environment-driven configuration once at
// startup. Defaults keep the offline track working with no env set.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root application configuration.
type Config struct {
	// DBPath overrides the lexicon database location. Empty means the
	// per-user cache dir.
	DBPath string `env:"WORDLENS_DB_PATH"`
	// CorpusURL is fetched on first run when the lexicon is empty.
	CorpusURL     string `env:"WORDLENS_CORPUS_URL"`
	ClassifierURL string `env:"WORDLENS_CLASSIFIER_URL" env-default:"http://localhost:8093"`

	Log    LogConfig
	Online OnlineConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `env:"LOG_LEVEL" env-default:"info"`
}

// OnlineConfig holds the optional remote-model settings. The API key is
// read exclusively from the environment, never stored.
type OnlineConfig struct {
	Enabled    bool   `env:"WORDLENS_ONLINE_ENABLED" env-default:"false"`
	APIKey     string `env:"WORDLENS_API_KEY"`
	Endpoint   string `env:"WORDLENS_API_ENDPOINT"`
	Model      string `env:"WORDLENS_API_MODEL" env-default:"gpt-4o-mini"`
	PromptsDir string `env:"WORDLENS_PROMPTS_DIR" env-default:"prompts"`
}

// Ready reports whether the online track is fully configured. Anything
// missing means the offline track is used without comment.
func (c OnlineConfig) Ready() bool {
	return c.Enabled && c.APIKey != "" && c.Endpoint != ""
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config from env: %w", err)
	}
	return &cfg, nil
}
