package vibewall

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Studio turns prompts into tagged wallpapers using an ImageGenerator.
// It is the boundary where service failures are logged and collapsed into
// ErrGeneration or ErrRemix. There are no retries: a failed call is the
// final outcome of the operation it belongs to.
type Studio struct {
	gen    ImageGenerator
	logger *slog.Logger
}

// StudioOption configures a Studio.
type StudioOption func(*Studio)

// WithLogger sets the logger. If not set, logs are discarded.
func WithLogger(l *slog.Logger) StudioOption {
	return func(s *Studio) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStudio creates a Studio backed by gen.
func NewStudio(gen ImageGenerator, opts ...StudioOption) *Studio {
	s := &Studio{gen: gen, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes job and returns its wallpapers.
func (s *Studio) Run(ctx context.Context, job Job) ([]Wallpaper, error) {
	if job.Kind == JobRemix {
		if job.Source == nil {
			return nil, fmt.Errorf("%w: %w", ErrRemix, ErrNoSelection)
		}
		return s.Remix(ctx, job.Prompt, *job.Source)
	}
	return s.Generate(ctx, job.Prompt)
}

// Generate requests WallpaperCount new wallpapers for prompt.
func (s *Studio) Generate(ctx context.Context, prompt string) ([]Wallpaper, error) {
	start := time.Now()
	log := s.logger.With(slog.String("op", JobGenerate.String()), slog.String("prompt", prompt))
	log.Info("request started")

	images, err := s.gen.Generate(ctx, prompt)
	if err == nil && len(images) == 0 {
		err = ErrNoImage
	}
	if err != nil {
		log.Error("request failed", slog.Any("err", err), slog.Duration("elapsed", time.Since(start)))
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	log.Info("request finished", slog.Int("images", len(images)), slog.Duration("elapsed", time.Since(start)))
	return NewWallpapers(images), nil
}

// Remix requests WallpaperCount variants of source, one service call per
// variant, issued concurrently. Any single failure fails the whole remix.
func (s *Studio) Remix(ctx context.Context, prompt string, source Wallpaper) ([]Wallpaper, error) {
	start := time.Now()
	log := s.logger.With(
		slog.String("op", JobRemix.String()),
		slog.String("prompt", prompt),
		slog.String("source", source.ID),
	)
	log.Info("request started")

	images, err := FanOut(ctx, WallpaperCount, func(ctx context.Context) ([]byte, error) {
		return s.gen.RemixOne(ctx, prompt, source.Image)
	})
	if err != nil {
		log.Error("request failed", slog.Any("err", err), slog.Duration("elapsed", time.Since(start)))
		return nil, fmt.Errorf("%w: %w", ErrRemix, err)
	}

	log.Info("request finished", slog.Int("images", len(images)), slog.Duration("elapsed", time.Since(start)))
	return NewWallpapers(images), nil
}
