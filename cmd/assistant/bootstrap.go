package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"order-assistant/internal/assistant"
	"order-assistant/internal/assistant/assistantobs"
	"order-assistant/internal/auditlog"
	"order-assistant/internal/interfaces"
	"order-assistant/internal/logger"
	"order-assistant/internal/news"
	"order-assistant/internal/news/newsobs"
	"order-assistant/internal/store"
	"order-assistant/internal/trace"
)

// initializeSystem initializes logger and tracer
func initializeSystem() error {
	// Load environment variables
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}
	return nil
}

// loadConfig loads the config file, falling back to defaults when it does not exist
func loadConfig(ctx context.Context, path string) (*store.Config, error) {
	cfg, err := store.LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Info(ctx, "No config file found, using defaults", "path", path)
		return store.DefaultConfig(), nil
	}
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err, "path", path)
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// initializeAudit returns the audit log, compressing files past retention
func initializeAudit(ctx context.Context, cfg *store.Config) interfaces.AuditLogger {
	if !cfg.Audit.Enabled {
		logger.Info(ctx, "Audit log disabled")
		return auditlog.Nop{}
	}

	log := auditlog.New(cfg.Audit.Dir, cfg.Audit.Prefix)
	if err := log.CompressOlder(cfg.Audit.RetentionDays); err != nil {
		logger.Warn(ctx, "Failed to compress old audit logs", "error", err)
	}
	if err := log.Info("Assistant started"); err != nil {
		logger.ErrorWithErr(ctx, "Audit log not writable", err, "dir", cfg.Audit.Dir)
	}
	return log
}

// initializeNews returns the news fetcher with observability, or nil when disabled
func initializeNews(ctx context.Context, cfg *store.Config) interfaces.NewsFetcher {
	if !cfg.News.Enabled {
		logger.Info(ctx, "News lookups disabled")
		return nil
	}

	svcCfg := news.ServiceConfigFrom(cfg)
	if svcCfg.Mode == news.ModeFallback {
		logger.Warn(ctx, "News running in FALLBACK mode - headlines will be simulated")
	} else {
		logger.Info(ctx, "Using LIVE news", "base_url", svcCfg.BaseURL)
	}
	return newsobs.Wrap(news.NewService(svcCfg))
}

// initializeAssistant wires the command processor with observability
func initializeAssistant(cfg *store.Config, fetcher interfaces.NewsFetcher, audit interfaces.AuditLogger) interfaces.Assistant {
	return assistantobs.Wrap(assistant.New(cfg, fetcher, audit))
}
