package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"tinygo.org/x/tinyfont"

	"watchface/hal"
	"watchface/watch/fonts"
)

// panicked logs r, paints it on the screen and halts the system.
func (s *System) panicked(r any) error {
	err := fmt.Errorf("panic: %v", r)
	s.halted = err
	s.logf("watchface panic: %v", r)

	var fb hal.Framebuffer
	if d := s.h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return err
	}
	drawPanic(fb, fmt.Sprint(r))
	_ = fb.Present()
	return err
}

func drawPanic(fb hal.Framebuffer, msg string) {
	fb.ClearRGB(0x80, 0, 0)

	face := fonts.Lookup(fonts.Numbers20Bold)
	_, w := tinyfont.LineWidth(face.Font, "0")
	cols := int16(fb.Width()) / int16(max(w, 1))
	if cols <= 0 {
		cols = 1
	}

	d := panicDisplay{fb: fb}
	fg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	y := face.Ascent + 2
	lines := append([]string{"PANIC"}, strings.Split(msg, "\n")...)
	for _, line := range lines {
		for len(line) > 0 {
			if y-face.Ascent+face.Height > int16(fb.Height()) {
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, face.Font, 2, y, chunk, fg)
			y += face.Height
			line = strings.TrimLeft(rest, " ")
		}
	}
}

type panicDisplay struct {
	fb hal.Framebuffer
}

func (d panicDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d panicDisplay) SetPixel(x, y int16, c color.RGBA) {
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	pixel := uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d panicDisplay) Display() error { return nil }

// takeRunes splits s after at most n runes.
func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
