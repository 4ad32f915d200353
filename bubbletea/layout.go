package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/vibewall"
)

const (
	headerHeight = 3 // title, subtitle, blank
	footerHeight = 2 // prompt, hints
	gridColumns  = 2
	gridGap      = 2

	generateLabel = "[ Generate ]"
	downloadLabel = "[ Download ]"
	remixLabel    = "[ Remix ]"
	closeLabel    = "[ Close ]"
	actionGap     = 2
)

// rect is a region of the terminal in cells.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// Layout is computed from the model alone so that View and mouse handling
// agree on where everything is.

func (m Model) bannerHeight() int {
	if m.session.Err() != nil {
		return 1
	}
	return 0
}

func (m Model) bodyRect() rect {
	y := headerHeight + m.bannerHeight()
	return rect{x: 0, y: y, w: m.width, h: max(m.height-y-footerHeight, 1)}
}

func (m Model) promptRow() int {
	return m.height - footerHeight
}

func (m Model) generateButton() rect {
	w := len(generateLabel)
	return rect{x: max(m.width-w, 0), y: m.promptRow(), w: w, h: 1}
}

func (m Model) tileWidth() int {
	return max((m.width-gridGap*(gridColumns-1))/gridColumns, 1)
}

// tileRects returns the on-screen area of each wallpaper tile. The last row
// of a tile is its label.
func (m Model) tileRects() []rect {
	ws := m.session.Wallpapers()
	if len(ws) == 0 {
		return nil
	}
	body := m.bodyRect()
	rows := (len(ws) + gridColumns - 1) / gridColumns
	tw := m.tileWidth()
	th := max(body.h/rows, 2)
	rects := make([]rect, len(ws))
	for i := range ws {
		col, row := i%gridColumns, i/gridColumns
		rects[i] = rect{
			x: col * (tw + gridGap),
			y: body.y + row*th,
			w: tw,
			h: th,
		}
	}
	return rects
}

// viewerBox is the area available to the full-screen image: everything but
// the top bar and the action bar.
func (m Model) viewerBox() rect {
	return rect{x: 0, y: 1, w: m.width, h: max(m.height-2, 1)}
}

func (m Model) viewerImageRect(w vibewall.Wallpaper) rect {
	box := m.viewerBox()
	cols, rows := m.pictures.size(w, box.w, box.h)
	return rect{
		x: box.x + (box.w-cols)/2,
		y: box.y + (box.h-rows)/2,
		w: cols,
		h: rows,
	}
}

func (m Model) closeButton() rect {
	w := len(closeLabel)
	return rect{x: max(m.width-w, 0), y: 0, w: w, h: 1}
}

func (m Model) actionButtons() (download, remix rect) {
	total := len(downloadLabel) + actionGap + len(remixLabel)
	x := max((m.width-total)/2, 0)
	y := m.height - 1
	download = rect{x: x, y: y, w: len(downloadLabel), h: 1}
	remix = rect{x: x + len(downloadLabel) + actionGap, y: y, w: len(remixLabel), h: 1}
	return download, remix
}

// place draws content at offset (x, y) inside a blank w×h box. Content that
// does not fit is clipped at the bottom.
func place(content string, w, h, x, y int) string {
	lines := make([]string, h)
	var src []string
	if content != "" {
		src = strings.Split(content, "\n")
	}
	pad := strings.Repeat(" ", max(x, 0))
	for i := range lines {
		j := i - y
		line := ""
		if j >= 0 && j < len(src) {
			line = pad + src[j]
		}
		if lw := lipgloss.Width(line); lw < w {
			line += strings.Repeat(" ", w-lw)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// center places content in the middle of a blank w×h box.
func center(content string, w, h int) string {
	return place(content, w, h, (w-lipgloss.Width(content))/2, (h-lipgloss.Height(content))/2)
}
