package vibewall

import (
	"fmt"
	"strings"
)

// Phase is the stage of the current generation cycle.
type Phase int

const (
	PhaseIdle    Phase = iota // Nothing requested yet.
	PhaseLoading              // A request is in flight.
	PhaseReady                // The latest request succeeded.
	PhaseFailed               // The latest request failed.
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// JobKind distinguishes initial generation from remix.
type JobKind int

const (
	JobGenerate JobKind = iota
	JobRemix
)

func (k JobKind) String() string {
	if k == JobRemix {
		return "remix"
	}
	return "generate"
}

// Job is a single request issued by a state transition. Seq identifies the
// job; only the result of the most recently issued job is applied.
type Job struct {
	Seq    uint64
	Kind   JobKind
	Prompt string
	Source *Wallpaper // set for JobRemix
}

// Session is the state of one user session. It is a value: every
// transition returns an updated copy and the receiver is left untouched.
// The selected wallpaper, when set, always refers to an entry of the
// current wallpaper sequence.
type Session struct {
	prompt     string
	wallpapers []Wallpaper
	selected   string
	phase      Phase
	err        error
	seq        uint64
}

// NewSession returns an idle session with the given prompt.
func NewSession(prompt string) Session {
	return Session{prompt: prompt}
}

func (s Session) Prompt() string { return s.prompt }
func (s Session) Phase() Phase { return s.phase }
func (s Session) Loading() bool { return s.phase == PhaseLoading }
func (s Session) Err() error { return s.err }
func (s Session) Seq() uint64 { return s.seq }
func (s Session) Wallpapers() []Wallpaper { return s.wallpapers }

// Selected returns the selected wallpaper, if any.
func (s Session) Selected() (Wallpaper, bool) {
	if s.selected == "" {
		return Wallpaper{}, false
	}
	for _, w := range s.wallpapers {
		if w.ID == s.selected {
			return w, true
		}
	}
	return Wallpaper{}, false
}

// Submit starts a new generation for prompt. An empty prompt records
// ErrEmptyPrompt and issues no job.
func (s Session) Submit(prompt string) (Session, Job, error) {
	prompt, err := s.validate(prompt)
	if err != nil {
		s.err = err
		return s, Job{}, err
	}
	s = s.begin(prompt)
	return s, Job{Seq: s.seq, Kind: JobGenerate, Prompt: prompt}, nil
}

// Remix starts a remix of the selected wallpaper with prompt.
func (s Session) Remix(prompt string) (Session, Job, error) {
	src, ok := s.Selected()
	if !ok {
		return s, Job{}, ErrNoSelection
	}
	prompt, err := s.validate(prompt)
	if err != nil {
		s.err = err
		return s, Job{}, err
	}
	s = s.begin(prompt)
	return s, Job{Seq: s.seq, Kind: JobRemix, Prompt: prompt, Source: &src}, nil
}

func (s Session) validate(prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}
	return prompt, nil
}

func (s Session) begin(prompt string) Session {
	s.prompt = prompt
	s.selected = ""
	s.err = nil
	s.phase = PhaseLoading
	s.seq++
	return s
}

// Resolve applies the outcome of job seq. Results of any job other than the
// latest issued one are discarded and Resolve reports false.
func (s Session) Resolve(seq uint64, wallpapers []Wallpaper, err error) (Session, bool) {
	if seq != s.seq || s.phase != PhaseLoading {
		return s, false
	}
	if err != nil {
		s.err = err
		s.phase = PhaseFailed
		return s, true
	}
	s.selected = ""
	s.wallpapers = wallpapers
	s.phase = PhaseReady
	return s, true
}

// Select marks the wallpaper with id as selected. It reports false when no
// such wallpaper exists.
func (s Session) Select(id string) (Session, bool) {
	for _, w := range s.wallpapers {
		if w.ID == id {
			s.selected = id
			return s, true
		}
	}
	return s, false
}

// Deselect clears the selection.
func (s Session) Deselect() Session {
	s.selected = ""
	return s
}
