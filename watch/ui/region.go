package ui

import (
	"image/color"

	"watchface/watch/fonts"
)

// TextRegion is a rectangle of single-line text drawn by its parent layer.
type TextRegion struct {
	frame Rect
	text  string
	fg    color.RGBA
	bg    color.RGBA
	align Align
	font  fonts.Class

	rev    uint32
	parent *Layer
}

// NewTextRegion returns a region with black text on a white background,
// left aligned, in the smallest font.
func NewTextRegion(frame Rect) *TextRegion {
	return &TextRegion{
		frame: frame,
		fg:    Black,
		bg:    White,
		align: AlignLeft,
		font:  fonts.Numbers20Bold,
	}
}

func (t *TextRegion) Frame() Rect            { return t.frame }
func (t *TextRegion) Text() string           { return t.text }
func (t *TextRegion) TextColor() color.RGBA  { return t.fg }
func (t *TextRegion) Background() color.RGBA { return t.bg }
func (t *TextRegion) Alignment() Align       { return t.align }
func (t *TextRegion) Font() fonts.Class      { return t.font }

// Revision counts SetText calls over the region's lifetime.
func (t *TextRegion) Revision() uint32 { return t.rev }

// Attached reports whether the region is a child of a layer.
func (t *TextRegion) Attached() bool { return t.parent != nil }

// SetText replaces the text and schedules a repaint. It always counts as a
// mutation, even if s equals the current text.
func (t *TextRegion) SetText(s string) {
	t.text = s
	t.rev++
	t.markDirty()
}

func (t *TextRegion) SetTextColor(c color.RGBA) {
	t.fg = c
	t.markDirty()
}

func (t *TextRegion) SetBackground(c color.RGBA) {
	t.bg = c
	t.markDirty()
}

func (t *TextRegion) SetAlignment(a Align) {
	t.align = a
	t.markDirty()
}

func (t *TextRegion) SetFont(c fonts.Class) {
	t.font = c
	t.markDirty()
}

// Destroy detaches the region from its parent. The region must not be used
// afterwards.
func (t *TextRegion) Destroy() {
	if t.parent != nil {
		t.parent.RemoveChild(t)
	}
}

func (t *TextRegion) markDirty() {
	if t.parent != nil {
		t.parent.MarkDirty()
	}
}
