package bubbletea

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/vibewall"
)

var _ tea.Model = Model{}

// DefaultPrompt is the prompt the input starts with when none is configured.
const DefaultPrompt = "rainy cyberpunk lo-fi"

const loadingInterval = 2 * time.Second

var loadingMessages = []string{
	"Conjuring your vibe...",
	"Painting pixels...",
	"Brewing creativity...",
	"Reticulating splines...",
	"Assembling aesthetics...",
}

type focus int

const (
	focusPrompt focus = iota
	focusGrid
)

// Config holds presentation settings for the TUI.
type Config struct {
	Prompt string // initial prompt; DefaultPrompt if empty
}

// Model is the Bubble Tea model for the wallpaper TUI. It is the single
// writer of the session state.
type Model struct {
	// Input is the prompt field. Exported for test access.
	Input textinput.Model
	// Spinner animates the loading overlay. Exported for test access.
	Spinner spinner.Model

	run      JobFunc
	save     SaveFunc
	styles   Styles
	keys     keyMap
	pictures *pictureCache
	pick     func(n int) int

	session     vibewall.Session
	focus       focus
	cursor      int
	loadingText string
	notice      string
	noticeErr   bool

	width  int
	height int
	ready  bool
}

// New creates a new TUI Model.
func New(run JobFunc, save SaveFunc, theme vibewall.Theme, config Config) Model {
	prompt := config.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	styles := NewStyles(theme)

	ti := textinput.New()
	ti.Placeholder = "e.g., enchanted forest at midnight"
	ti.Prompt = "> "
	ti.PromptStyle = styles.Accent
	ti.CharLimit = 0
	ti.SetValue(prompt)
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Accent))

	return Model{
		Input:       ti,
		Spinner:     sp,
		run:         run,
		save:        save,
		styles:      styles,
		keys:        defaultKeyMap(),
		pictures:    newPictureCache(),
		pick:        rand.IntN,
		session:     vibewall.NewSession(prompt),
		loadingText: loadingMessages[0],
	}
}

// Session returns the current session state.
func (m Model) Session() vibewall.Session { return m.session }

// ViewerOpen reports whether a wallpaper is shown full-screen.
func (m Model) ViewerOpen() bool {
	_, ok := m.session.Selected()
	return ok
}

// GridFocused reports whether keyboard focus is on the wallpaper grid.
func (m Model) GridFocused() bool { return m.focus == focusGrid }

// Cursor returns the index of the highlighted grid tile.
func (m Model) Cursor() int { return m.cursor }

// Notice returns the last download notice, if any.
func (m Model) Notice() string { return m.notice }

// LoadingText returns the message shown on the loading overlay.
func (m Model) LoadingText() string { return m.loadingText }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case JobDoneMsg:
		s, applied := m.session.Resolve(msg.Seq, msg.Wallpapers, msg.Err)
		if !applied {
			return m, nil
		}
		m.session = s
		if msg.Err == nil {
			m.cursor = 0
			m.pictures.retain(s.Wallpapers())
		}
		return m, nil

	case SaveDoneMsg:
		if msg.Err != nil {
			m.notice = "Download failed: " + msg.Err.Error()
			m.noticeErr = true
		} else {
			m.notice = "Saved " + msg.Path
			m.noticeErr = false
		}
		return m, nil

	case loadingTickMsg:
		if !m.session.Loading() || msg.seq != m.session.Seq() {
			return m, nil
		}
		m.loadingText = loadingMessages[m.pick(len(loadingMessages))]
		return m, loadingTick(msg.seq)

	case spinner.TickMsg:
		if !m.session.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	// Cursor blink and other input housekeeping.
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	// Prompt prefix, cursor cell and a space before the button.
	m.Input.Width = max(m.width-len(generateLabel)-len(m.Input.Prompt)-2, 1)
	m.ready = true
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.ViewerOpen() {
		return m.handleViewerKey(msg)
	}
	if m.focus == focusGrid {
		return m.handleGridKey(msg)
	}
	return m.handlePromptKey(msg)
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		// Allowed while loading; the newest job wins.
		return m.submit()
	case key.Matches(msg, m.keys.Focus):
		if m.gridAvailable() {
			m.focus = focusGrid
			m.Input.Blur()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.gridAvailable() {
		return m.focusPrompt()
	}
	n := len(m.session.Wallpapers())
	switch {
	case key.Matches(msg, m.keys.Focus), key.Matches(msg, m.keys.Back):
		return m.focusPrompt()
	case key.Matches(msg, m.keys.Left):
		if m.cursor%gridColumns > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursor%gridColumns < gridColumns-1 && m.cursor+1 < n {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor >= gridColumns {
			m.cursor -= gridColumns
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor+gridColumns < n {
			m.cursor += gridColumns
		}
	case key.Matches(msg, m.keys.Open):
		return m.open(m.cursor), nil
	}
	return m, nil
}

func (m Model) handleViewerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		return m.closeViewer(), nil
	case key.Matches(msg, m.keys.Download):
		return m.download()
	case key.Matches(msg, m.keys.Remix):
		return m.remix()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	x, y := msg.X, msg.Y

	if sel, ok := m.session.Selected(); ok {
		download, remix := m.actionButtons()
		switch {
		case m.closeButton().contains(x, y):
			return m.closeViewer(), nil
		case download.contains(x, y):
			return m.download()
		case remix.contains(x, y):
			return m.remix()
		case m.viewerImageRect(sel).contains(x, y):
			return m, nil
		default:
			// Background click.
			return m.closeViewer(), nil
		}
	}

	if m.generateButton().contains(x, y) {
		if m.session.Loading() {
			return m, nil
		}
		return m.submit()
	}
	if y == m.promptRow() {
		return m.focusPrompt()
	}
	if !m.session.Loading() {
		for i, r := range m.tileRects() {
			if r.contains(x, y) {
				return m.open(i), nil
			}
		}
	}
	return m, nil
}

func (m Model) gridAvailable() bool {
	return !m.session.Loading() && len(m.session.Wallpapers()) > 0
}

func (m Model) focusPrompt() (Model, tea.Cmd) {
	m.focus = focusPrompt
	return m, m.Input.Focus()
}

// open shows wallpaper i full-screen.
func (m Model) open(i int) Model {
	ws := m.session.Wallpapers()
	if m.session.Loading() || i < 0 || i >= len(ws) {
		return m
	}
	if s, ok := m.session.Select(ws[i].ID); ok {
		m.session = s
		m.cursor = i
		m.notice = ""
	}
	return m
}

func (m Model) closeViewer() Model {
	m.session = m.session.Deselect()
	m.notice = ""
	return m
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	wasLoading := m.session.Loading()
	s, job, err := m.session.Submit(m.Input.Value())
	m.session = s
	if err != nil {
		return m, nil
	}
	return m.startJob(job, wasLoading)
}

func (m Model) remix() (tea.Model, tea.Cmd) {
	wasLoading := m.session.Loading()
	s, job, err := m.session.Remix(m.Input.Value())
	m.session = s
	if err != nil {
		return m, nil
	}
	return m.startJob(job, wasLoading)
}

func (m Model) startJob(job vibewall.Job, wasLoading bool) (tea.Model, tea.Cmd) {
	m.notice = ""
	m.loadingText = loadingMessages[0]
	m, focusCmd := m.focusPrompt()
	cmds := []tea.Cmd{
		runJob(m.run, job),
		loadingTick(job.Seq),
		focusCmd,
	}
	if !wasLoading {
		cmds = append(cmds, m.Spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) download() (tea.Model, tea.Cmd) {
	w, ok := m.session.Selected()
	if !ok {
		return m, nil
	}
	save, prompt := m.save, m.Input.Value()
	return m, func() tea.Msg {
		path, err := save(prompt, w)
		return SaveDoneMsg{Path: path, Err: err}
	}
}

// runJob executes job off the event loop and reports back with its sequence
// number.
func runJob(run JobFunc, job vibewall.Job) tea.Cmd {
	return func() tea.Msg {
		ws, err := run(context.Background(), job)
		return JobDoneMsg{Seq: job.Seq, Wallpapers: ws, Err: err}
	}
}

func loadingTick(seq uint64) tea.Cmd {
	return tea.Tick(loadingInterval, func(time.Time) tea.Msg {
		return loadingTickMsg{seq: seq}
	})
}
