package ui

import (
	"errors"
	"fmt"
	"image/color"

	"watchface/hal"
)

// Handlers are called when a window enters or leaves the stack.
type Handlers struct {
	Load   func(w *Window)
	Unload func(w *Window)
}

// Window is a full-screen background plus a root layer.
type Window struct {
	bg       color.RGBA
	handlers Handlers
	root     *Layer
}

func NewWindow(bg color.RGBA, h Handlers) *Window {
	return &Window{bg: bg, handlers: h}
}

// Root returns the window's root layer; nil while the window is not on a stack.
func (w *Window) Root() *Layer { return w.root }

func (w *Window) Background() color.RGBA { return w.bg }

// Stack holds the pushed windows. Only the top window is drawn.
type Stack struct {
	fb      hal.Framebuffer
	windows []*Window
	drawn   *Window
}

var errPixelFormat = errors.New("ui: framebuffer is not RGB565")

// NewStack returns a stack that renders into fb. fb may be nil on headless
// platforms; windows then get an empty root layer.
func NewStack(fb hal.Framebuffer) *Stack {
	return &Stack{fb: fb}
}

func (s *Stack) screen() Rect {
	if s.fb == nil {
		return Rect{}
	}
	return R(0, 0, s.fb.Width(), s.fb.Height())
}

// Push makes w the top window and runs its Load handler.
func (s *Stack) Push(w *Window) {
	w.root = NewLayer(s.screen())
	s.windows = append(s.windows, w)
	if w.handlers.Load != nil {
		w.handlers.Load(w)
	}
}

// Pop removes the top window, runs its Unload handler and returns it.
func (s *Stack) Pop() *Window {
	if len(s.windows) == 0 {
		return nil
	}
	w := s.windows[len(s.windows)-1]
	s.windows[len(s.windows)-1] = nil
	s.windows = s.windows[:len(s.windows)-1]

	if w.handlers.Unload != nil {
		w.handlers.Unload(w)
	}
	w.root = nil
	if s.drawn == w {
		s.drawn = nil
	}
	return w
}

func (s *Stack) Top() *Window {
	if len(s.windows) == 0 {
		return nil
	}
	return s.windows[len(s.windows)-1]
}

func (s *Stack) Len() int { return len(s.windows) }

// Render repaints the top window if it changed since the last render and
// presents the framebuffer. It reports whether a frame was presented.
func (s *Stack) Render() (bool, error) {
	w := s.Top()
	if w == nil || s.fb == nil {
		return false, nil
	}
	if s.drawn == w && !w.root.Dirty() {
		return false, nil
	}
	if s.fb.Format() != hal.PixelFormatRGB565 {
		return false, errPixelFormat
	}

	s.fb.ClearRGB(w.bg.R, w.bg.G, w.bg.B)
	screen := s.screen()
	for _, t := range w.root.Children() {
		drawRegion(s.fb, screen, t)
	}
	w.root.dirty = false
	s.drawn = w

	if err := s.fb.Present(); err != nil {
		return true, fmt.Errorf("present: %w", err)
	}
	return true, nil
}
