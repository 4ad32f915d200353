package vibewall

import (
	"context"

	"github.com/google/uuid"
)

// WallpaperCount is the number of wallpapers produced per generation or remix.
const WallpaperCount = 4

// Wallpaper is one generated image plus its locally assigned identifier.
// It is never mutated after creation.
type Wallpaper struct {
	ID    string
	Image []byte
}

// NewWallpapers tags each image with a fresh random identifier.
func NewWallpapers(images [][]byte) []Wallpaper {
	ws := make([]Wallpaper, len(images))
	for i, img := range images {
		ws[i] = Wallpaper{ID: uuid.NewString(), Image: img}
	}
	return ws
}

// ImageGenerator is the boundary to the external image-generation service.
type ImageGenerator interface {
	// Generate returns WallpaperCount independent images for prompt.
	Generate(ctx context.Context, prompt string) ([][]byte, error)
	// RemixOne returns a single image conditioned on source and prompt.
	RemixOne(ctx context.Context, prompt string, source []byte) ([]byte, error)
}
