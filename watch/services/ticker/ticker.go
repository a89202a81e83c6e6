// Package ticker delivers calendar-unit change callbacks to a single
// subscriber, driven by the HAL tick stream and wall clock.
package ticker

import (
	"time"

	"watchface/hal"
)

// Units is a set of calendar fields.
type Units uint8

const (
	Second Units = 1 << iota
	Minute
	Hour
	Day
	Month
	Year
)

// All is every unit.
const All = Second | Minute | Hour | Day | Month | Year

func (u Units) Has(o Units) bool { return u&o != 0 }

func (u Units) String() string {
	if u == 0 {
		return "none"
	}
	names := [...]string{"second", "minute", "hour", "day", "month", "year"}
	s := ""
	for i, n := range names {
		if u&(1<<i) == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += n
	}
	return s
}

// Changed returns which calendar fields differ between prev and now. A change
// in a coarser unit implies every finer one, so a jump of exactly one minute
// still reports Second. A zero prev reports every unit.
func Changed(prev, now time.Time) Units {
	if prev.IsZero() {
		return All
	}
	switch {
	case prev.Year() != now.Year():
		return All
	case prev.Month() != now.Month():
		return Month | Day | Hour | Minute | Second
	case prev.Day() != now.Day():
		return Day | Hour | Minute | Second
	case prev.Hour() != now.Hour():
		return Hour | Minute | Second
	case prev.Minute() != now.Minute():
		return Minute | Second
	case prev.Second() != now.Second():
		return Second
	}
	return 0
}

// Handler receives the current time and the units that changed since the
// previous delivery.
type Handler func(now time.Time, changed Units)

// Service polls the clock once per Step. It does not block.
type Service struct {
	ticks <-chan uint64
	clock hal.Clock

	nowTick uint64
	last    time.Time

	units   Units
	handler Handler
}

// New returns a service reading ht (may be nil) and clock.
func New(ht hal.Time, clock hal.Clock) *Service {
	s := &Service{clock: clock}
	if ht != nil {
		s.ticks = ht.Ticks()
	}
	return s
}

// Subscribe replaces the current subscription. The handler is called from
// Step whenever any unit in units changes.
func (s *Service) Subscribe(units Units, h Handler) {
	s.units = units
	s.handler = h
	s.last = time.Time{}
	if s.clock != nil {
		s.last = s.clock.Now()
	}
}

func (s *Service) Unsubscribe() {
	s.units = 0
	s.handler = nil
}

func (s *Service) Subscribed() bool { return s.handler != nil }

// NowTick returns the last HAL tick observed by Step.
func (s *Service) NowTick() uint64 { return s.nowTick }

// Step drains pending HAL ticks, reads the clock and delivers at most one
// callback.
func (s *Service) Step() {
	s.drainTicks()
	if s.handler == nil || s.clock == nil {
		return
	}

	now := s.clock.Now()
	changed := Changed(s.last, now)
	if changed == 0 {
		return
	}
	s.last = now
	if changed&s.units == 0 {
		return
	}
	s.handler(now, changed)
}

func (s *Service) drainTicks() {
	if s.ticks == nil {
		return
	}
	for {
		select {
		case seq := <-s.ticks:
			s.nowTick = seq
		default:
			return
		}
	}
}
