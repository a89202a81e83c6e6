//go:build !tinygo

package hal

import (
	"time"

	"watchface/internal/config"
)

// hostPower simulates a battery that drains (or charges) linearly from the
// profile's starting percentage.
type hostPower struct {
	p     config.Profile
	start time.Time
	now   func() time.Time
}

func (b *hostPower) ChargeState() ChargeState {
	hours := b.now().Sub(b.start).Hours()
	delta := int(hours * b.p.BatteryDrainPerHour)

	pct := b.p.Battery
	if b.p.Charging {
		pct += delta
	} else {
		pct -= delta
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return ChargeState{Percent: pct, Charging: b.p.Charging, Plugged: b.p.Charging}
}

// hostHealth simulates a steady walker: steps grow by StepsPerMinute and the
// walked distance follows from the stride length.
type hostHealth struct {
	p     config.Profile
	start time.Time
	now   func() time.Time
}

func (h *hostHealth) steps() int32 {
	minutes := int32(h.now().Sub(h.start) / time.Minute)
	if minutes < 0 {
		minutes = 0
	}
	return h.p.Steps + minutes*h.p.StepsPerMinute
}

func (h *hostHealth) SumToday(m Metric) int32 {
	switch m {
	case MetricStepCount:
		return h.steps()
	case MetricWalkedDistanceMeters:
		return h.steps() * h.p.StrideCM / 100
	case MetricSleepSeconds:
		return h.p.SleepSeconds
	default:
		return 0
	}
}
