package viewer

import (
	"github.com/hapi-suta/runbookforge-sub002/internal/layout"
)

// State is the navigation position. Transitions return a new State and
// never leave the index outside the deck.
type State struct {
	Index      int
	Fullscreen bool
}

// Next advances one page, stopping at the last.
func (s State) Next(total int) State {
	if s.Index < total-1 {
		s.Index++
	}
	return s
}

// Prev goes back one page, stopping at the first.
func (s State) Prev() State {
	if s.Index > 0 {
		s.Index--
	}
	return s
}

// JumpTo moves to page i, clamped to the deck.
func (s State) JumpTo(i, total int) State {
	s.Index = min(max(i, 0), max(total-1, 0))
	return s
}

// ToggleFullscreen flips fullscreen without moving.
func (s State) ToggleFullscreen() State {
	s.Fullscreen = !s.Fullscreen
	return s
}

// Viewer is the navigation state over one compiled deck.
type Viewer struct {
	deck    *layout.Deck
	state   State
	onClose func()
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithCloseHandler sets the function Escape calls when the viewer is not
// fullscreen.
func WithCloseHandler(fn func()) Option {
	return func(v *Viewer) {
		v.onClose = fn
	}
}

// WithStart opens the viewer at page i.
func WithStart(i int) Option {
	return func(v *Viewer) {
		v.state = v.state.JumpTo(i, v.TotalSlides())
	}
}

// New returns a viewer positioned on the first page. A nil deck behaves as
// an empty one.
func New(d *layout.Deck, opts ...Option) *Viewer {
	if d == nil {
		d = &layout.Deck{}
	}
	v := &Viewer{deck: d}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Viewer) Next()             { v.state = v.state.Next(v.TotalSlides()) }
func (v *Viewer) Prev()             { v.state = v.state.Prev() }
func (v *Viewer) JumpTo(i int)      { v.state = v.state.JumpTo(i, v.TotalSlides()) }
func (v *Viewer) ToggleFullscreen() { v.state = v.state.ToggleFullscreen() }

// Escape leaves fullscreen if active. Otherwise it calls the close handler
// and reports whether one was set.
func (v *Viewer) Escape() (closed bool) {
	if v.state.Fullscreen {
		v.state.Fullscreen = false
		return false
	}
	if v.onClose == nil {
		return false
	}
	v.onClose()
	return true
}

func (v *Viewer) State() State           { return v.state }
func (v *Viewer) CurrentSlideIndex() int { return v.state.Index }
func (v *Viewer) IsFullscreen() bool     { return v.state.Fullscreen }
func (v *Viewer) TotalSlides() int       { return len(v.deck.Slides) }
func (v *Viewer) Deck() *layout.Deck     { return v.deck }

// Current returns the page on screen. An empty deck yields the zero slide.
func (v *Viewer) Current() layout.RenderedSlide {
	if v.TotalSlides() == 0 {
		return layout.RenderedSlide{}
	}
	return v.deck.Slides[v.state.Index]
}

// Notes returns the speaker notes of the current page.
func (v *Viewer) Notes() string {
	return v.Current().Notes
}
