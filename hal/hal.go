package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Time provides a base tick stream.
//
// The tick duration is platform-defined (1ms on every current target).
type Time interface {
	Ticks() <-chan uint64
}

// Clock provides local wall-clock time.
type Clock interface {
	Now() time.Time
}

// ChargeState is a snapshot of the battery.
type ChargeState struct {
	Percent  int
	Charging bool
	Plugged  bool
}

// Power reports the battery state.
type Power interface {
	ChargeState() ChargeState
}

// Metric identifies a daily health aggregate.
type Metric uint8

const (
	MetricStepCount Metric = iota + 1
	MetricWalkedDistanceMeters
	MetricSleepSeconds
)

func (m Metric) String() string {
	switch m {
	case MetricStepCount:
		return "steps"
	case MetricWalkedDistanceMeters:
		return "walked_m"
	case MetricSleepSeconds:
		return "sleep_s"
	default:
		return "unknown"
	}
}

// Health provides today's totals for a metric.
//
// Platforms without the data return 0.
type Health interface {
	SumToday(m Metric) int32
}

// HAL provides the only contact point between the face and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Time() Time
	Clock() Clock
	Power() Power
	Health() Health
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// noHealth is used where no sensors exist.
type noHealth struct{}

func (noHealth) SumToday(Metric) int32 { return 0 }

// Program is what a runner drives: Step once per frame, Close on exit.
type Program interface {
	Step() error
	Close() error
}
