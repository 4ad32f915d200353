// Package bubbletea provides a Bubble Tea TUI for browsing and remixing
// generated wallpapers.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/vibewall"
)

// JobFunc executes a generation or remix job. It blocks until the image
// service responds. Jobs are never cancelled; a superseded job's result is
// discarded when it arrives.
type JobFunc func(ctx context.Context, job vibewall.Job) ([]vibewall.Wallpaper, error)

// SaveFunc writes a wallpaper to local storage and returns where it went.
type SaveFunc func(prompt string, w vibewall.Wallpaper) (string, error)

// Run starts the full-screen program with mouse support and blocks until it
// exits. Cancelling ctx quits the program.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// JobDoneMsg carries the outcome of the job with sequence number Seq.
type JobDoneMsg struct {
	Seq        uint64
	Wallpapers []vibewall.Wallpaper
	Err        error
}

// SaveDoneMsg signals that a download finished.
type SaveDoneMsg struct {
	Path string
	Err  error
}

// loadingTickMsg rotates the loading message for job seq.
type loadingTickMsg struct {
	seq uint64
}
