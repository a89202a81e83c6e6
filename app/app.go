// Package app wires a HAL to the watch face and drives it.
package app

import (
	"errors"
	"fmt"
	"time"

	"watchface/hal"
	"watchface/internal/buildinfo"
	"watchface/watch/face"
	"watchface/watch/services/ticker"
	"watchface/watch/ui"
)

// System is the running watch: a window stack holding the face, and the
// ticker that drives it.
type System struct {
	h      hal.HAL
	log    hal.Logger
	stack  *ui.Stack
	ticker *ticker.Service
	face   *face.Face
	win    *ui.Window

	halted  error
	lastErr string
}

var errClosed = errors.New("app: closed")

// New builds the system and pushes the face window. The first Step presents
// the initial frame.
func New(h hal.HAL) *System {
	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}

	s := &System{
		h:      h,
		log:    h.Logger(),
		stack:  ui.NewStack(fb),
		ticker: ticker.New(h.Time(), h.Clock()),
	}
	s.face = face.New(face.Services{
		Clock:  h.Clock(),
		Power:  h.Power(),
		Health: h.Health(),
		Timer:  s.ticker,
		Logger: s.log,
	})

	s.logf("watchface %s (commit %s, built %s)", buildinfo.Short(), buildinfo.Commit, buildinfo.Date)
	if fb == nil {
		s.logf("display: no framebuffer")
	} else {
		s.logf("display: %dx%d", fb.Width(), fb.Height())
	}

	s.win = s.face.Window()
	s.stack.Push(s.win)
	return s
}

// Step delivers pending ticks and repaints the screen if anything changed.
// Render failures are logged and do not stop the system; a panic does.
func (s *System) Step() (err error) {
	if s.halted != nil {
		return s.halted
	}
	defer func() {
		if r := recover(); r != nil {
			err = s.panicked(r)
		}
	}()

	s.ticker.Step()
	if _, rerr := s.stack.Render(); rerr != nil {
		if msg := rerr.Error(); msg != s.lastErr {
			s.lastErr = msg
			s.logf("render: %v", rerr)
		}
	} else {
		s.lastErr = ""
	}
	return nil
}

// Close pops the face window. Further Steps fail.
func (s *System) Close() error {
	if s.halted == nil {
		s.halted = errClosed
	}
	for s.stack.Len() > 0 {
		s.stack.Pop()
	}
	return nil
}

// Face returns the face driven by s.
func (s *System) Face() *face.Face { return s.face }

// frameInterval is how often Run steps the system.
const frameInterval = 16 * time.Millisecond

// Run starts the system and blocks forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	s := New(h)
	for {
		if err := s.Step(); err != nil {
			select {}
		}
		time.Sleep(frameInterval)
	}
}

func (s *System) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}
