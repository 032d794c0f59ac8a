package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/kula-app/binarysearch/internal/config"
	"github.com/kula-app/binarysearch/internal/game"
	"github.com/kula-app/binarysearch/internal/highlight"
	"github.com/kula-app/binarysearch/internal/logging"
	"github.com/kula-app/binarysearch/internal/numbers"
)

// The run function is like the main function, except that it takes in operating system fundamentals as arguments, and returns an error.
//
// If the run function finishes without an error, the player quit.
// If the run function returns an error, input or output failed before that.
//
// The logic of the run function must stay isolated so it can be tested in parallel.
func run(ctx context.Context, _ []string, getenv func(key string) string, stdin io.ReadCloser, stdout, stderr io.Writer) error {
	// No signal handlers are installed: Ctrl+C and SIGTERM keep the runtime's
	// default behaviour and end the process even while it waits for input.
	cfg := config.DefaultConfig()
	if err := cfg.ApplyEnv(getenv); err != nil {
		_ = stdin.Close()
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Diagnostics go to stderr so they never mix with the game on stdout
	logger := slog.New(logging.NewTerminalHandler(stderr, cfg.LogLevel))
	logger.Debug("configuration loaded",
		"array_size", cfg.ArraySize,
		"min_num", cfg.MinNum,
		"max_num", cfg.MaxNum,
		"no_color", cfg.NoColor)

	g := game.New(game.Options{
		Input:       stdin,
		Output:      highlight.Writer(stdout),
		Source:      numbers.NewSource(),
		Highlighter: highlight.New(cfg.NoColor),
		Logger:      logger,
		Config:      cfg,
	})

	if err := g.Run(ctx); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}
