package face

import (
	"strconv"
	"time"

	"watchface/hal"
	"watchface/watch/services/ticker"
)

// Observed holds the raw values behind the current region texts. Until the
// first tick it is unprimed and every field renders.
type Observed struct {
	Primed bool

	Hour   int
	Minute int
	Month  time.Month
	Day    int

	Battery      int
	WalkedMeters int32
	SleepSeconds int32
}

// Tick updates the regions whose underlying value changed since the previous
// tick. Steps are rewritten on every tick.
func (f *Face) Tick(now time.Time, _ ticker.Units) {
	if !f.loaded {
		return
	}
	last := &f.last
	r := f.regions

	if !last.Primed || last.Hour != now.Hour() || last.Minute != now.Minute() {
		r.Time.SetText(FormatTime(now.Hour(), now.Minute()))
	}

	if !last.Primed || last.Month != now.Month() || last.Day != now.Day() {
		r.Weekday.SetText(WeekdayName(now.Weekday()))
		r.Date.SetText(FormatDate(now.Day(), now.Month()))
	}

	steps := f.metric(hal.MetricStepCount)
	r.Steps.SetText(strconv.Itoa(int(steps)))

	battery := f.battery()
	if !last.Primed || last.Battery != battery {
		r.Battery.SetText(strconv.Itoa(battery))
		last.Battery = battery
	}

	// The walked cache is written on every tick, unlike battery and sleep.
	walked := f.metric(hal.MetricWalkedDistanceMeters)
	if !last.Primed || last.WalkedMeters != walked {
		r.Walked.SetText(FormatWalked(walked))
	}
	last.WalkedMeters = walked

	sleep := f.metric(hal.MetricSleepSeconds)
	if !last.Primed || last.SleepSeconds != sleep {
		r.Sleep.SetText(FormatSleepHours(sleep))
		last.SleepSeconds = sleep
	}

	last.Hour, last.Minute = now.Hour(), now.Minute()
	last.Month, last.Day = now.Month(), now.Day()
	last.Primed = true
}

// metric reads today's total; missing services and negative readings count as zero.
func (f *Face) metric(m hal.Metric) int32 {
	if f.svc.Health == nil {
		return 0
	}
	v := f.svc.Health.SumToday(m)
	if v < 0 {
		return 0
	}
	return v
}

func (f *Face) battery() int {
	if f.svc.Power == nil {
		return 0
	}
	pct := f.svc.Power.ChargeState().Percent
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
