// Package mock provides test doubles for vibewall interfaces using function fields.
package mock

import (
	"context"

	"github.com/fwojciec/vibewall"
)

// Interface compliance check.
var _ vibewall.ImageGenerator = (*ImageGenerator)(nil)

// ImageGenerator is a test double for vibewall.ImageGenerator.
// Set the function fields for the methods you need.
type ImageGenerator struct {
	GenerateFn func(ctx context.Context, prompt string) ([][]byte, error)
	RemixOneFn func(ctx context.Context, prompt string, source []byte) ([]byte, error)
}

// Generate delegates to GenerateFn.
func (g *ImageGenerator) Generate(ctx context.Context, prompt string) ([][]byte, error) {
	return g.GenerateFn(ctx, prompt)
}

// RemixOne delegates to RemixOneFn.
func (g *ImageGenerator) RemixOne(ctx context.Context, prompt string, source []byte) ([]byte, error) {
	return g.RemixOneFn(ctx, prompt, source)
}
