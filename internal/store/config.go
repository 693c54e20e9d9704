package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Assistant struct {
		User         string   `yaml:"user"`
		ExitKeywords []string `yaml:"exit_keywords"`
		HelpKeywords []string `yaml:"help_keywords"`
	} `yaml:"assistant"`
	News struct {
		Enabled           bool    `yaml:"enabled"`
		Mode              string  `yaml:"mode"` // LIVE or FALLBACK
		BaseURL           string  `yaml:"base_url"`
		MaxItems          int     `yaml:"max_items"`
		TitleBudget       int     `yaml:"title_budget"`
		CacheMinutes      int     `yaml:"cache_minutes"`
		TimeoutSeconds    int     `yaml:"timeout_seconds"`
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		MaxRetrySeconds   int     `yaml:"max_retry_seconds"`
	} `yaml:"news"`
	Audit struct {
		Enabled       bool   `yaml:"enabled"`
		Dir           string `yaml:"dir"`
		Prefix        string `yaml:"prefix"`
		RetentionDays int    `yaml:"retention_days"`
	} `yaml:"audit"`
}

// DefaultConfig is used when no config file is present.
func DefaultConfig() *Config {
	var c Config
	c.News.Enabled = true
	c.Audit.Enabled = true
	c.applyDefaults()
	return &c
}

func (c *Config) applyDefaults() {
	if c.Assistant.User == "" {
		c.Assistant.User = "SYSTEM"
	}
	if len(c.Assistant.ExitKeywords) == 0 {
		c.Assistant.ExitKeywords = []string{"sair", "exit", "quit", "q"}
	}
	if len(c.Assistant.HelpKeywords) == 0 {
		c.Assistant.HelpKeywords = []string{"ajuda", "help", "?"}
	}
	if c.News.Mode == "" {
		c.News.Mode = "LIVE"
	}
	if c.News.BaseURL == "" {
		c.News.BaseURL = "https://news.google.com"
	}
	if c.News.MaxItems == 0 {
		c.News.MaxItems = 5
	}
	if c.News.TitleBudget == 0 {
		c.News.TitleBudget = 80
	}
	if c.News.CacheMinutes == 0 {
		c.News.CacheMinutes = 15
	}
	if c.News.TimeoutSeconds == 0 {
		c.News.TimeoutSeconds = 10
	}
	if c.News.RequestsPerSecond == 0 {
		c.News.RequestsPerSecond = 1
	}
	if c.News.MaxRetrySeconds == 0 {
		c.News.MaxRetrySeconds = 20
	}
	if c.Audit.Dir == "" {
		c.Audit.Dir = "logs"
	}
	if c.Audit.Prefix == "" {
		c.Audit.Prefix = "assistant"
	}
}

func (c *Config) Validate() error {
	if c.News.Mode != "LIVE" && c.News.Mode != "FALLBACK" {
		return fmt.Errorf("invalid news.mode '%s': must be 'LIVE' or 'FALLBACK'", c.News.Mode)
	}
	if c.News.MaxItems < 0 {
		return fmt.Errorf("news.max_items must be positive, got %d", c.News.MaxItems)
	}
	if c.News.TitleBudget < 4 {
		return fmt.Errorf("news.title_budget must be at least 4, got %d", c.News.TitleBudget)
	}
	if c.News.RequestsPerSecond < 0 {
		return fmt.Errorf("news.requests_per_second cannot be negative, got %.2f", c.News.RequestsPerSecond)
	}
	if c.Audit.RetentionDays < 0 {
		return fmt.Errorf("audit.retention_days cannot be negative, got %d", c.Audit.RetentionDays)
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// both switches default to on unless the file says otherwise
	c := Config{}
	c.News.Enabled = true
	c.Audit.Enabled = true
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &c, nil
}
