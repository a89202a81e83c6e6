// Package face is the digital watch face: time, weekday and date in the
// upper half, health and battery figures along the bottom edge.
package face

import (
	"time"

	"watchface/hal"
	"watchface/watch/services/ticker"
	"watchface/watch/ui"
)

// Timer is the tick subscription the face needs.
type Timer interface {
	Subscribe(units ticker.Units, h ticker.Handler)
	Unsubscribe()
}

// Services are the platform collaborators of a face.
type Services struct {
	Clock  hal.Clock
	Power  hal.Power
	Health hal.Health
	Timer  Timer
	Logger hal.Logger
}

// Regions are the face's text regions. All are nil while the face is unloaded.
type Regions struct {
	Weekday *ui.TextRegion
	Time    *ui.TextRegion
	Date    *ui.TextRegion
	Steps   *ui.TextRegion
	Battery *ui.TextRegion
	Walked  *ui.TextRegion
	Sleep   *ui.TextRegion
}

// all returns the regions in paint order.
func (r Regions) all() [7]*ui.TextRegion {
	return [7]*ui.TextRegion{r.Weekday, r.Time, r.Date, r.Steps, r.Battery, r.Walked, r.Sleep}
}

type Face struct {
	svc Services

	regions Regions
	last    Observed
	loaded  bool
}

func New(svc Services) *Face {
	return &Face{svc: svc}
}

// Window returns a black window that loads and unloads this face.
func (f *Face) Window() *ui.Window {
	return ui.NewWindow(ui.Black, ui.Handlers{
		Load:   func(w *ui.Window) { f.Load(w.Root()) },
		Unload: func(*ui.Window) { f.Unload() },
	})
}

// Load builds the regions on root, renders the current readings and starts
// the per-second tick.
func (f *Face) Load(root *ui.Layer) {
	if f.loaded {
		f.Unload()
	}

	fr := Layout(root.Bounds())
	f.regions = Regions{
		Weekday: newRegion(fr.Weekday, styleWeekday),
		Time:    newRegion(fr.Time, styleTime),
		Date:    newRegion(fr.Date, styleDate),
		Steps:   newRegion(fr.Steps, styleMetric),
		Battery: newRegion(fr.Battery, styleBattery),
		Walked:  newRegion(fr.Walked, styleMetric),
		Sleep:   newRegion(fr.Sleep, styleMetric),
	}
	f.last = Observed{}
	f.loaded = true

	f.Tick(f.now(), ticker.All)
	if f.svc.Timer != nil {
		f.svc.Timer.Subscribe(ticker.Second, f.Tick)
	}

	for _, r := range f.regions.all() {
		root.AddChild(r)
	}
	f.logLine("face: loaded")
}

// Unload stops the tick and destroys every region.
func (f *Face) Unload() {
	if !f.loaded {
		return
	}
	if f.svc.Timer != nil {
		f.svc.Timer.Unsubscribe()
	}
	for _, r := range f.regions.all() {
		r.Destroy()
	}
	f.regions = Regions{}
	f.loaded = false
	f.logLine("face: unloaded")
}

func (f *Face) Loaded() bool { return f.loaded }

// Regions returns the current regions.
func (f *Face) Regions() Regions { return f.regions }

// Observed returns the last rendered readings.
func (f *Face) Observed() Observed { return f.last }

func (f *Face) now() time.Time {
	if f.svc.Clock == nil {
		return time.Now()
	}
	return f.svc.Clock.Now()
}

func (f *Face) logLine(s string) {
	if f.svc.Logger != nil {
		f.svc.Logger.WriteLineString(s)
	}
}
