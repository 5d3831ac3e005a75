// Command scaleup is the CLI entrypoint for the parallel video upscaler.
//
// It parses flags, validates configuration, and either runs system
// diagnostics (--check) or the extract → upscale → merge pipeline.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/backmassage/scaleup/internal/check"
	"github.com/backmassage/scaleup/internal/config"
	"github.com/backmassage/scaleup/internal/display"
	"github.com/backmassage/scaleup/internal/logging"
	"github.com/backmassage/scaleup/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build", these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "scaleup: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "scaleup: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scaleup: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	if _, err := os.Stat(cfg.InputVideo); err != nil {
		log.Error("Input video not found: %s", cfg.InputVideo)
		return 1
	}

	log.Info("=== scaleup v%s (%s) ===", version, commit)
	log.Info("In:  %s", cfg.InputVideo)
	log.Info("Out: %s", cfg.OutputVideo)
	log.Info("")

	if cfg.Reset {
		if !confirmReset(os.Stdin, &cfg, log) {
			log.Info("Reset canceled, nothing deleted")
			return 0
		}
		if err := pipeline.Reset(&cfg, log); err != nil {
			log.Error("%v", err)
			return 1
		}
	}

	// Fail fast if ffmpeg/ffprobe or the upscaler binary are unavailable.
	if err := check.CheckDeps(&cfg); err != nil {
		log.Error("%v", err)
		return 1
	}

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so the
	// worker pool can wind down after the in-flight frames complete.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing in-flight frames…")
		cancel()
	}()

	// Phase 4: Run pipeline (probe → extract → upscale → merge).
	if _, err := pipeline.Run(ctx, &cfg, log, pipeline.DefaultTools(&cfg)); err != nil {
		return 1
	}
	return 0
}

// confirmReset warns about the pending deletions and requires a literal
// "yes" on stdin. Anything else declines. When nothing would be deleted the
// prompt is skipped.
func confirmReset(in io.Reader, cfg *config.Config, log *logging.Logger) bool {
	if !anyResetTarget(cfg) {
		log.Info("No frames found to delete, proceeding")
		return true
	}

	log.Warn("Resetting deletes the extracted frames (%s), the upscaled frames (%s), and %s.",
		cfg.TmpFramesDir, cfg.OutFramesDir, cfg.OutputVideo)
	fmt.Fprint(os.Stdout, "Delete these and start over? This cannot be undone (yes/no): ")

	reader := bufio.NewReader(in)
	answer, err := reader.ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}

// anyResetTarget reports whether any of the reset paths currently exist.
func anyResetTarget(cfg *config.Config) bool {
	for _, path := range []string{cfg.OutputVideo, cfg.TmpFramesDir, cfg.OutFramesDir} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return true
		}
	}
	return false
}
