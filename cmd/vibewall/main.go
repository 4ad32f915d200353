// Command vibewall generates phone wallpapers from a text prompt.
//
// Usage:
//
//	GEMINI_API_KEY=gk-... vibewall [flags]
//
// Flags:
//
//	-api-key string      API key (overrides GEMINI_API_KEY and API_KEY)
//	-out string          Directory downloads are written to (default ".")
//	-image-model string  Model for initial generation
//	-remix-model string  Model for remix
//	-log string          Path to a log file (default: logging disabled)
//	-prompt string       Initial prompt
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fwojciec/vibewall"
	bt "github.com/fwojciec/vibewall/bubbletea"
	"github.com/fwojciec/vibewall/fs"
	"github.com/fwojciec/vibewall/gemini"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vibewall: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		apiKey     = flag.String("api-key", "", "API key (overrides GEMINI_API_KEY and API_KEY)")
		outDir     = flag.String("out", ".", "Directory downloads are written to")
		imageModel = flag.String("image-model", "", "Model for initial generation (default: service default)")
		remixModel = flag.String("remix-model", "", "Model for remix (default: service default)")
		logPath    = flag.String("log", "", "Path to a log file (default: logging disabled)")
		prompt     = flag.String("prompt", "", "Initial prompt")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Env vars are read here and passed as values.
	key, err := resolveAPIKey(*apiKey, os.Getenv("GEMINI_API_KEY"), os.Getenv("API_KEY"))
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(*logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	client, err := gemini.New(ctx, key,
		gemini.WithImageModel(*imageModel),
		gemini.WithRemixModel(*remixModel),
	)
	if err != nil {
		return err
	}
	studio := vibewall.NewStudio(client, vibewall.WithLogger(logger))

	dir := *outDir
	save := func(prompt string, w vibewall.Wallpaper) (string, error) {
		path, err := fs.SaveWallpaper(dir, prompt, w)
		if err != nil {
			logger.Error("download failed", slog.String("wallpaper", w.ID), slog.Any("err", err))
			return "", err
		}
		logger.Info("download saved", slog.String("wallpaper", w.ID), slog.String("path", path))
		return path, nil
	}

	m := bt.New(studio.Run, save, vibewall.DefaultTheme(), bt.Config{Prompt: *prompt})
	if err := bt.Run(ctx, m); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}
