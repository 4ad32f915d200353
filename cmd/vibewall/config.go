package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fwojciec/vibewall"
)

// resolveAPIKey picks the credential for the image service. An explicit flag
// wins, then GEMINI_API_KEY, then API_KEY. Env values are passed in; env is
// only read in main().
func resolveAPIKey(flagKey, geminiEnvKey, apiEnvKey string) (string, error) {
	for _, k := range []string{flagKey, geminiEnvKey, apiEnvKey} {
		if k != "" {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: set GEMINI_API_KEY or API_KEY (or use -api-key)", vibewall.ErrMissingAPIKey)
}

// openLogger returns a text logger writing to path, or a discarding logger
// when path is empty. The TUI owns the terminal, so logs never go to stderr.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}
