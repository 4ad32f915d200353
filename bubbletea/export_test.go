package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/vibewall"
)

// Rect exposes rect for testing.
type Rect struct {
	X, Y, W, H int
}

func exportRect(r rect) Rect { return Rect{X: r.x, Y: r.y, W: r.w, H: r.h} }

// TileRects returns the on-screen area of each grid tile.
func TileRects(m Model) []Rect {
	var out []Rect
	for _, r := range m.tileRects() {
		out = append(out, exportRect(r))
	}
	return out
}

// ViewerImageRect returns where the selected wallpaper is drawn.
func ViewerImageRect(m Model) Rect {
	sel, _ := m.session.Selected()
	return exportRect(m.viewerImageRect(sel))
}

// CloseButton returns the viewer's close button area.
func CloseButton(m Model) Rect { return exportRect(m.closeButton()) }

// ActionButtons returns the viewer's download and remix button areas.
func ActionButtons(m Model) (download, remix Rect) {
	d, r := m.actionButtons()
	return exportRect(d), exportRect(r)
}

// GenerateButton returns the generate button area.
func GenerateButton(m Model) Rect { return exportRect(m.generateButton()) }

// WithPick replaces the random loading message picker.
func WithPick(m Model, pick func(n int) int) Model {
	m.pick = pick
	return m
}

// LoadingTick returns a loading tick for job seq.
func LoadingTick(seq uint64) tea.Msg { return loadingTickMsg{seq: seq} }

// LoadingMessages exports loadingMessages for testing.
func LoadingMessages() []string { return loadingMessages }

// FitCells exports fitCells for testing.
func FitCells(w, h, maxCols, maxRows int) (int, int) { return fitCells(w, h, maxCols, maxRows) }

// Place exports place for testing.
func Place(content string, w, h, x, y int) string { return place(content, w, h, x, y) }

// RenderPicture renders w at the given size through a fresh cache.
func RenderPicture(w vibewall.Wallpaper, cols, rows int) string {
	return newPictureCache().render(w, cols, rows, NewStyles(vibewall.DefaultTheme()))
}
