package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadConfigDefaults(t *testing.T) {
	p := writeFile(t, "config.yaml", "assistant:\n  user: mesa\n")

	cfg, err := LoadConfig(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Assistant.User != "mesa" {
		t.Errorf("Expected user mesa, got %s", cfg.Assistant.User)
	}
	if cfg.News.Mode != "LIVE" {
		t.Errorf("Expected LIVE news mode, got %s", cfg.News.Mode)
	}
	if cfg.News.MaxItems != 5 {
		t.Errorf("Expected 5 news items, got %d", cfg.News.MaxItems)
	}
	if cfg.News.TitleBudget != 80 {
		t.Errorf("Expected title budget 80, got %d", cfg.News.TitleBudget)
	}
	if !cfg.News.Enabled || !cfg.Audit.Enabled {
		t.Error("Expected news and audit to be enabled by default")
	}
	if len(cfg.Assistant.ExitKeywords) != 4 || cfg.Assistant.ExitKeywords[0] != "sair" {
		t.Errorf("Unexpected exit keywords %v", cfg.Assistant.ExitKeywords)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	p := writeFile(t, "config.yaml", `
news:
  enabled: false
  mode: FALLBACK
  max_items: 3
audit:
  enabled: false
  dir: /tmp/audit
  retention_days: 7
`)

	cfg, err := LoadConfig(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.News.Enabled || cfg.Audit.Enabled {
		t.Error("Expected news and audit to be disabled")
	}
	if cfg.News.Mode != "FALLBACK" || cfg.News.MaxItems != 3 {
		t.Errorf("Unexpected news config %+v", cfg.News)
	}
	if cfg.Audit.Dir != "/tmp/audit" || cfg.Audit.RetentionDays != 7 {
		t.Errorf("Unexpected audit config %+v", cfg.Audit)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{name: "bad mode", content: "news:\n  mode: SCRAPE\n", errPart: "news.mode"},
		{name: "tiny budget", content: "news:\n  title_budget: 2\n", errPart: "title_budget"},
		{name: "negative retention", content: "audit:\n  retention_days: -1\n", errPart: "retention_days"},
		{name: "broken yaml", content: "news: [", errPart: "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, "config.yaml", tt.content))
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("Expected error mentioning %q, got %v", tt.errPart, err)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); !os.IsNotExist(err) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}
}

func TestLoadOrder(t *testing.T) {
	p := writeFile(t, "order.yaml", "action: sell\nticker: VALE3\nquantity: 2.5\naccount: \"007\"\n")

	o, err := LoadOrder(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Action != "sell" || o.Ticker != "VALE3" || o.Account != "007" {
		t.Errorf("Unexpected order %+v", o)
	}
	if o.Quantity == nil || *o.Quantity != 2.5 {
		t.Errorf("Expected quantity 2.5, got %v", o.Quantity)
	}
}

func TestLoadOrderJSON(t *testing.T) {
	p := writeFile(t, "order.json", `{"action": "buy", "ticker": "PETR4", "quantity": 100}`)

	o, err := LoadOrder(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Ticker != "PETR4" || o.Quantity == nil || *o.Quantity != 100 {
		t.Errorf("Unexpected order %+v", o)
	}
}
