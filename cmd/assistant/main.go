package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"order-assistant/internal/interfaces"
	"order-assistant/internal/logger"
	"order-assistant/internal/store"
	"order-assistant/internal/textutil"
	"order-assistant/internal/trace"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", envOr("ASSISTANT_CONFIG", "config.yaml"), "path to the YAML config file")
	orderPath := flag.String("order", "", "validate and render a structured order file (YAML or JSON), then exit")
	flag.Parse()

	if err := initializeSystem(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = trace.Shutdown(ctx)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(ctx, *configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	audit := initializeAudit(ctx, cfg)
	asst := initializeAssistant(cfg, initializeNews(ctx, cfg), audit)

	switch {
	case *orderPath != "":
		return runOrderFile(ctx, asst, *orderPath, os.Stdout)
	case flag.NArg() > 0:
		return runOnce(ctx, asst, strings.Join(flag.Args(), " "), os.Stdout, os.Stderr)
	default:
		runInteractive(ctx, asst, cfg, os.Stdin, os.Stdout)
		return 0
	}
}

func runOrderFile(ctx context.Context, asst interfaces.Assistant, path string, out io.Writer) int {
	o, err := store.LoadOrder(path)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load order file", err, "path", path)
		fmt.Fprintf(out, "❌ Could not read order file: %v\n", err)
		return 1
	}
	res, err := asst.ProcessOrder(ctx, o)
	if err != nil {
		return 1
	}
	fmt.Fprintln(out, res.Reply)
	if res.Verdict != nil && !res.Verdict.Valid {
		return 2
	}
	return 0
}

func runOnce(ctx context.Context, asst interfaces.Assistant, command string, out, progress io.Writer) int {
	fmt.Fprintf(out, "🚀 Testing command: '%s'\n%s\n", command, strings.Repeat("=", 50))
	fmt.Fprintln(progress, textutil.ProgressBar(1, 2, "Analysing"))

	res, err := asst.Process(ctx, command)
	if err != nil {
		return 1
	}
	fmt.Fprintln(progress, textutil.ProgressBar(2, 2, "Done"))
	fmt.Fprintln(out, res.Reply)
	return 0
}

// runInteractive reads commands line by line until an exit keyword, end of
// input or ctx is cancelled.
func runInteractive(ctx context.Context, asst interfaces.Assistant, cfg *store.Config, in io.Reader, out io.Writer) {
	exitKeyword := "sair"
	if len(cfg.Assistant.ExitKeywords) > 0 {
		exitKeyword = cfg.Assistant.ExitKeywords[0]
	}

	fmt.Fprintln(out, banner(exitKeyword))
	fmt.Fprintln(out, "\n🎯 INTERACTIVE MODE")
	fmt.Fprintf(out, "   Type '%s' to quit\n", exitKeyword)
	if len(cfg.Assistant.HelpKeywords) > 0 {
		fmt.Fprintf(out, "   Type '%s' for examples\n", cfg.Assistant.HelpKeywords[0])
	}
	fmt.Fprintln(out, strings.Repeat("=", 50))

	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Fprint(out, "\n💬 Enter a command: ")

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "\n\n⚠️  Interrupted. Shutting down...")
			return
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(out, "\n👋 Goodbye!")
				return
			}
			line = strings.TrimSpace(l)
		}

		lower := strings.ToLower(line)
		switch {
		case slices.Contains(cfg.Assistant.ExitKeywords, lower):
			fmt.Fprintln(out, "\n👋 Closing the assistant. Goodbye!")
			return
		case slices.Contains(cfg.Assistant.HelpKeywords, lower):
			fmt.Fprintln(out, banner(exitKeyword))
			continue
		case line == "":
			fmt.Fprintf(out, "⚠️  Type something or '%s' to quit\n", exitKeyword)
			continue
		}

		fmt.Fprintf(out, "\n🔍 Analysing: '%s'\n%s\n", line, strings.Repeat("-", 50))
		res, err := asst.Process(ctx, line)
		if err != nil {
			logger.ErrorWithErr(ctx, "Unexpected processing error", err)
			fmt.Fprintf(out, "❌ Unexpected error: %v\n💡 Try again or type '%s'\n", err, exitKeyword)
			continue
		}
		fmt.Fprintln(out, res.Reply)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
