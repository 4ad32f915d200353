package bubbletea

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	// Decoders for formats the image service may return.
	_ "image/jpeg"
	_ "image/png"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/vibewall"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// upperHalf is drawn with the foreground set to the top pixel and the
// background set to the bottom pixel, so each cell holds two square-ish
// pixels stacked vertically.
const upperHalf = "▀"

type renderKey struct {
	id         string
	cols, rows int
}

// pictureCache decodes wallpapers once and memoizes their rendered form per
// size. It is only touched from the Bubble Tea event loop.
type pictureCache struct {
	decoded  map[string]image.Image
	failed   map[string]error
	rendered map[renderKey]string
}

func newPictureCache() *pictureCache {
	return &pictureCache{
		decoded:  make(map[string]image.Image),
		failed:   make(map[string]error),
		rendered: make(map[renderKey]string),
	}
}

func (c *pictureCache) decode(w vibewall.Wallpaper) (image.Image, error) {
	if img, ok := c.decoded[w.ID]; ok {
		return img, nil
	}
	if err, ok := c.failed[w.ID]; ok {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(w.Image))
	if err != nil {
		err = fmt.Errorf("decode wallpaper %s: %w", w.ID, err)
		c.failed[w.ID] = err
		return nil, err
	}
	c.decoded[w.ID] = img
	return img, nil
}

// size returns the cell dimensions of w scaled to fit within maxCols×maxRows.
// Undecodable wallpapers fill the whole area.
func (c *pictureCache) size(w vibewall.Wallpaper, maxCols, maxRows int) (cols, rows int) {
	img, err := c.decode(w)
	if err != nil {
		return max(maxCols, 0), max(maxRows, 0)
	}
	b := img.Bounds()
	return fitCells(b.Dx(), b.Dy(), maxCols, maxRows)
}

// render draws w into exactly cols×rows cells.
func (c *pictureCache) render(w vibewall.Wallpaper, cols, rows int, styles Styles) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	key := renderKey{id: w.ID, cols: cols, rows: rows}
	if s, ok := c.rendered[key]; ok {
		return s
	}
	var s string
	if img, err := c.decode(w); err != nil {
		s = placeholder(cols, rows, styles)
	} else {
		s = halfBlocks(img, cols, rows)
	}
	c.rendered[key] = s
	return s
}

// retain drops cache entries for wallpapers not in ws.
func (c *pictureCache) retain(ws []vibewall.Wallpaper) {
	keep := make(map[string]bool, len(ws))
	for _, w := range ws {
		keep[w.ID] = true
	}
	for id := range c.decoded {
		if !keep[id] {
			delete(c.decoded, id)
		}
	}
	for id := range c.failed {
		if !keep[id] {
			delete(c.failed, id)
		}
	}
	for k := range c.rendered {
		if !keep[k.id] {
			delete(c.rendered, k)
		}
	}
}

// fitCells scales a w×h pixel image to fit within maxCols×maxRows cells,
// preserving aspect ratio. A cell is one pixel wide and two pixels tall.
func fitCells(w, h, maxCols, maxRows int) (cols, rows int) {
	if w <= 0 || h <= 0 || maxCols <= 0 || maxRows <= 0 {
		return 0, 0
	}
	maxPxH := maxRows * 2
	if maxCols*h <= maxPxH*w {
		cols = maxCols
		rows = (maxCols*h/w + 1) / 2
	} else {
		rows = maxRows
		cols = maxPxH * w / h
	}
	return max(cols, 1), max(rows, 1)
}

func halfBlocks(img image.Image, cols, rows int) string {
	dst := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	var b strings.Builder
	for y := range rows {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := range cols {
			top := dst.RGBAAt(x, 2*y)
			bottom := dst.RGBAAt(x, 2*y+1)
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(hex(top.R, top.G, top.B))).
				Background(lipgloss.Color(hex(bottom.R, bottom.G, bottom.B))).
				Render(upperHalf))
		}
	}
	return b.String()
}

func hex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func placeholder(cols, rows int, styles Styles) string {
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = strings.Repeat("░", cols)
	}
	if rows > 0 && cols >= 1 {
		mid := rows / 2
		lines[mid] = lipgloss.PlaceHorizontal(cols, lipgloss.Center, "?", lipgloss.WithWhitespaceChars("░"))
	}
	return styles.Muted.Render(strings.Join(lines, "\n"))
}
