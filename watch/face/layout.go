package face

import (
	"image/color"

	"watchface/watch/fonts"
	"watchface/watch/ui"
)

// Layout offsets, in pixels.
const (
	weekdayTop    = 24
	timeTop       = 40
	dateBelowTime = 40
	bottomRowUp   = 26
	rowStep       = 20
	edgeInset     = 2
)

// Frames are the region rectangles for one screen.
type Frames struct {
	Weekday ui.Rect
	Time    ui.Rect
	Date    ui.Rect
	Steps   ui.Rect
	Battery ui.Rect
	Walked  ui.Rect
	Sleep   ui.Rect
}

// Layout computes the frames for a screen. Every frame keeps the full
// screen size; text is clipped where a frame runs past the screen.
func Layout(bounds ui.Rect) Frames {
	top := bounds.Origin.Y
	left := bounds.Origin.X
	size := bounds.Size

	at := func(x, y int) ui.Rect {
		return ui.Rect{Origin: ui.Point{X: x, Y: y}, Size: size}
	}

	bottom := top + size.H - bottomRowUp
	return Frames{
		Weekday: at(left, top+weekdayTop),
		Time:    at(left, top+timeTop),
		Date:    at(left, top+timeTop+dateBelowTime),
		Steps:   at(left-edgeInset, bottom),
		Battery: at(left+edgeInset, bottom),
		Walked:  at(left-edgeInset, bottom-rowStep),
		Sleep:   at(left-edgeInset, bottom-2*rowStep),
	}
}

type regionStyle struct {
	fg    color.RGBA
	align ui.Align
	font  fonts.Class
}

var (
	styleWeekday = regionStyle{fg: ui.Green, align: ui.AlignCenter, font: fonts.Label24Bold}
	styleTime    = regionStyle{fg: ui.White, align: ui.AlignCenter, font: fonts.Numbers42}
	styleDate    = regionStyle{fg: ui.Green, align: ui.AlignCenter, font: fonts.Numbers26Bold}
	styleMetric  = regionStyle{fg: ui.Red, align: ui.AlignRight, font: fonts.Numbers20Bold}
	styleBattery = regionStyle{fg: ui.Red, align: ui.AlignLeft, font: fonts.Numbers20Bold}
)

func newRegion(frame ui.Rect, st regionStyle) *ui.TextRegion {
	r := ui.NewTextRegion(frame)
	r.SetTextColor(st.fg)
	r.SetBackground(ui.Clear)
	r.SetAlignment(st.align)
	r.SetFont(st.font)
	return r
}
