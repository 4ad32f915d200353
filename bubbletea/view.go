package bubbletea

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/vibewall"
	"github.com/mattn/go-runewidth"
)

const (
	subtitle    = "Craft your perfect phone background with AI."
	welcomeText = "Describe any vibe, scene, or aesthetic, and we'll generate four unique wallpapers for your phone."
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if sel, ok := m.session.Selected(); ok {
		return m.viewerView(sel)
	}

	sections := []string{m.headerView()}
	if m.bannerHeight() > 0 {
		sections = append(sections, m.bannerView())
	}
	sections = append(sections, m.bodyView(), m.promptView(), m.hintView())
	return strings.Join(sections, "\n")
}

func (m Model) headerView() string {
	title := m.styles.Title.Render("Vibe") + m.styles.Accent.Render("Wallpapers")
	return strings.Join([]string{
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.styles.Muted.Render(truncate(subtitle, m.width))),
		"",
	}, "\n")
}

func (m Model) bannerView() string {
	const prefix = "Oops! "
	msg := truncate(vibewall.Message(m.session.Err()), m.width-len(prefix))
	return m.styles.Error.Bold(true).Render(prefix) + m.styles.Error.Render(msg)
}

func (m Model) bodyView() string {
	body := m.bodyRect()
	switch {
	case m.session.Loading():
		return center(m.loadingView(), body.w, body.h)
	case len(m.session.Wallpapers()) > 0:
		return m.gridView(body)
	default:
		return center(m.welcomeView(), body.w, body.h)
	}
}

func (m Model) loadingView() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		m.Spinner.View(),
		"",
		m.styles.Title.Render(m.loadingText),
	)
}

func (m Model) welcomeView() string {
	width := min(max(m.width-4, 10), 48)
	desc := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(welcomeText)
	return lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Accent.Render("✦"),
		"",
		m.styles.Title.Render("VibeWallpapers AI"),
		"",
		m.styles.Muted.Render(desc),
	)
}

func (m Model) gridView(body rect) string {
	ws := m.session.Wallpapers()
	rects := m.tileRects()
	gap := strings.Repeat(" ", gridGap)

	var rows []string
	for start := 0; start < len(ws); start += gridColumns {
		var tiles []string
		for i := start; i < min(start+gridColumns, len(ws)); i++ {
			if i > start {
				tiles = append(tiles, gap)
			}
			tiles = append(tiles, m.tileView(i, ws[i], rects[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return place(strings.Join(rows, "\n"), body.w, body.h, 0, 0)
}

func (m Model) tileView(i int, w vibewall.Wallpaper, r rect) string {
	imgH := r.h - 1
	cols, rows := m.pictures.size(w, r.w, imgH)
	pic := m.pictures.render(w, cols, rows, m.styles)
	picture := place(pic, r.w, imgH, (r.w-cols)/2, (imgH-rows)/2)

	label := "#" + strconv.Itoa(i+1)
	style := m.styles.Muted
	if m.focus == focusGrid && i == m.cursor {
		style = m.styles.Focused
		label = " " + label + " "
	}
	return picture + "\n" + lipgloss.PlaceHorizontal(r.w, lipgloss.Center, style.Render(label))
}

func (m Model) promptView() string {
	button := m.styles.Button.Render(generateLabel)
	if m.session.Loading() {
		button = m.styles.ButtonDisabled.Render(generateLabel)
	}
	inputW := max(m.width-len(generateLabel), 0)
	input := place(m.Input.View(), inputW, 1, 0, 0)
	if lipgloss.Width(input) > inputW {
		input = lipgloss.NewStyle().MaxWidth(inputW).Render(input)
	}
	return input + button
}

func (m Model) hintView() string {
	if m.notice != "" {
		return m.noticeView()
	}
	var h string
	switch {
	case m.focus == focusGrid:
		h = hint(m.keys.Open, m.keys.Back, m.keys.Quit)
	case m.gridAvailable():
		h = hint(m.keys.Submit, m.keys.Focus, m.keys.Quit)
	default:
		h = hint(m.keys.Submit, m.keys.Quit)
	}
	return m.styles.Muted.Render(truncate(h, m.width))
}

func (m Model) noticeView() string {
	style := m.styles.Success
	if m.noticeErr {
		style = m.styles.Error
	}
	return style.Render(truncate(m.notice, m.width))
}

// viewerView renders the full-screen view of sel: a top bar with the close
// button, the image centered, and the action bar.
func (m Model) viewerView(sel vibewall.Wallpaper) string {
	closeBtn := m.closeButton()
	var status string
	switch {
	case m.session.Err() != nil:
		status = m.styles.Error.Render(truncate(vibewall.Message(m.session.Err()), closeBtn.x-1))
	case m.notice != "":
		style := m.styles.Success
		if m.noticeErr {
			style = m.styles.Error
		}
		status = style.Render(truncate(m.notice, closeBtn.x-1))
	default:
		status = m.styles.Muted.Render(truncate(hint(m.keys.Download, m.keys.Remix, m.keys.Close), closeBtn.x-1))
	}
	top := place(status, closeBtn.x, 1, 0, 0) + m.styles.Button.Render(closeLabel)

	box := m.viewerBox()
	img := m.viewerImageRect(sel)
	pic := m.pictures.render(sel, img.w, img.h, m.styles)
	middle := place(pic, box.w, box.h, img.x-box.x, img.y-box.y)

	download, _ := m.actionButtons()
	actions := m.styles.Button.Render(downloadLabel) + strings.Repeat(" ", actionGap) + m.styles.Button.Render(remixLabel)
	bottom := place(actions, m.width, 1, download.x, 0)

	return strings.Join([]string{top, middle, bottom}, "\n")
}

// truncate shortens plain text to fit width cells.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
