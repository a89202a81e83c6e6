package ui

import (
	"image/color"

	"tinygo.org/x/tinyfont"

	"watchface/hal"
	"watchface/watch/fonts"
)

// drawRegion paints t into fb, clipped to its frame and the screen.
func drawRegion(fb hal.Framebuffer, screen Rect, t *TextRegion) {
	clip := t.frame.Intersect(screen)
	if clip.Empty() {
		return
	}
	buf := fb.Buffer()
	if buf == nil {
		return
	}

	if t.bg.A != 0 {
		fillRectRGB565(buf, fb.StrideBytes(), clip, rgb565From888(t.bg.R, t.bg.G, t.bg.B))
	}
	if t.text == "" || t.fg.A == 0 {
		return
	}

	face := fonts.Lookup(t.font)
	x := t.frame.Origin.X + alignOffset(t.align, t.frame.Size.W, textWidth(face, t.text))
	y := t.frame.Origin.Y + int(face.Ascent)

	d := &fbDisplayer{fb: fb, clip: clip}
	tinyfont.WriteLine(d, face.Font, int16(x), int16(y), t.text, t.fg)
}

func textWidth(face fonts.Face, s string) int {
	_, w := tinyfont.LineWidth(face.Font, s)
	return int(w)
}

func alignOffset(a Align, frameW, textW int) int {
	switch a {
	case AlignCenter:
		return (frameW - textW) / 2
	case AlignRight:
		return frameW - textW
	default:
		return 0
	}
}

// fbDisplayer adapts an RGB565 framebuffer to drivers.Displayer for tinyfont,
// dropping pixels outside clip.
type fbDisplayer struct {
	fb   hal.Framebuffer
	clip Rect
}

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || !d.clip.Contains(int(x), int(y)) {
		return
	}
	buf := d.fb.Buffer()
	off := int(y)*d.fb.StrideBytes() + int(x)*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	pixel := rgb565From888(c.R, c.G, c.B)
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplayer) Display() error { return nil }

func fillRectRGB565(buf []byte, stride int, r Rect, pixel uint16) {
	if r.Empty() {
		return
	}
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for y := r.Origin.Y; y < r.MaxY(); y++ {
		row := y*stride + r.Origin.X*2
		for x := 0; x < r.Size.W; x++ {
			off := row + x*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}
