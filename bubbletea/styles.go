package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/vibewall"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	Title          lipgloss.Style
	Accent         lipgloss.Style
	Error          lipgloss.Style
	Success        lipgloss.Style
	Muted          lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Focused        lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t vibewall.Theme) Styles {
	return Styles{
		Title:          lipgloss.NewStyle().Foreground(ansiColor(t.Title)).Bold(true),
		Accent:         lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
		Error:          lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		Success:        lipgloss.NewStyle().Foreground(ansiColor(t.Success)),
		Muted:          lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Button:         lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
		ButtonDisabled: lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Focused:        lipgloss.NewStyle().Foreground(ansiColor(t.Overlay)).Background(ansiColor(t.Accent)).Bold(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
