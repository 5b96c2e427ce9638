package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type StoreConfig struct {
	Path string `toml:"path"`
}

type PipelineConfig struct {
	// ScanThreshold gates the bidirectional fuzzy dictionary scan.
	ScanThreshold float64 `toml:"scan_threshold"`
	// DefaultThreshold is the stricter general-purpose cutoff.
	DefaultThreshold float64 `toml:"default_threshold"`
	// CompletionTimeoutSeconds bounds the call to the completion service.
	CompletionTimeoutSeconds int `toml:"completion_timeout_seconds"`
}

type Config struct {
	LLM      LLMConfig      `toml:"llm"`
	Store    StoreConfig    `toml:"store"`
	Pipeline PipelineConfig `toml:"pipeline"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default builds a config with only defaults applied, for setups that rely
// entirely on environment overrides.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.LLM.Provider == "" {
		c.LLM.Provider = "gemini"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gemini-2.5-flash"
	}
	if c.Store.Path == "" {
		c.Store.Path = "translations.db"
	}
	if c.Pipeline.ScanThreshold == 0 {
		c.Pipeline.ScanThreshold = 0.65
	}
	if c.Pipeline.DefaultThreshold == 0 {
		c.Pipeline.DefaultThreshold = 0.8
	}
	if c.Pipeline.CompletionTimeoutSeconds == 0 {
		c.Pipeline.CompletionTimeoutSeconds = 60
	}
}

// CompletionTimeout returns the bounded timeout for one completion call.
func (c *Config) CompletionTimeout() time.Duration {
	return time.Duration(c.Pipeline.CompletionTimeoutSeconds) * time.Second
}
