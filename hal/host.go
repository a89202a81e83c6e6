//go:build !tinygo

package hal

import (
	"log/slog"
	"time"

	"watchface/internal/config"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	t      *hostTime
	clock  Clock
	power  *hostPower
	health *hostHealth
}

// Host screen size matches a rectangular 144x168 watch panel.
const (
	hostScreenWidth  = 144
	hostScreenHeight = 168
)

// New returns a host HAL implementation with the default sensor profile.
func New() HAL {
	return NewWithProfile(config.DefaultProfile())
}

// NewWithProfile returns a host HAL whose power and health readings are
// simulated from p.
func NewWithProfile(p config.Profile) HAL {
	return newHostHAL(p, time.Now)
}

func newHostHAL(p config.Profile, now func() time.Time) *hostHAL {
	start := now()
	return &hostHAL{
		logger: &hostLogger{log: slog.Default()},
		fb:     newHostFramebuffer(hostScreenWidth, hostScreenHeight),
		t:      newHostTime(),
		clock:  systemClock{},
		power:  &hostPower{p: p, start: start, now: now},
		health: &hostHealth{p: p, start: start, now: now},
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Time() Time       { return h.t }
func (h *hostHAL) Clock() Clock     { return h.clock }
func (h *hostHAL) Power() Power     { return h.power }
func (h *hostHAL) Health() Health   { return h.health }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

// hostLogger forwards log lines to slog. slog handlers serialize writes.
type hostLogger struct {
	log *slog.Logger
}

func (l *hostLogger) WriteLineString(s string) {
	l.log.Info(s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.log.Info(string(b))
}
