// Package fonts maps the face's named font size classes onto tinyfont faces.
//
// Fonts share internal glyph state (tinyfont behaviour), so concurrent drawing
// with the same face is not safe.
package fonts

import (
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
)

// Class names a font by role and nominal pixel size.
type Class uint8

const (
	Numbers20Bold Class = iota
	Label24Bold
	Numbers26Bold
	Numbers42
)

func (c Class) String() string {
	switch c {
	case Numbers20Bold:
		return "numbers-20-bold"
	case Label24Bold:
		return "label-24-bold"
	case Numbers26Bold:
		return "numbers-26-bold"
	case Numbers42:
		return "numbers-42"
	default:
		return "unknown"
	}
}

// Face is a font plus the metrics needed to place text by its top edge.
type Face struct {
	Font   tinyfont.Fonter
	Ascent int16
	Height int16
}

var faces = [...]Face{
	Numbers20Bold: newFace(&freesans.Bold9pt7b),
	Label24Bold:   newFace(&freesans.Bold12pt7b),
	Numbers26Bold: newFace(&freesans.Bold18pt7b),
	Numbers42:     newFace(&freesans.Bold24pt7b),
}

// Lookup returns the face for c. Unknown classes get the smallest face.
func Lookup(c Class) Face {
	if int(c) >= len(faces) {
		return faces[Numbers20Bold]
	}
	return faces[c]
}

// newFace derives the ascent from the tallest of the glyphs the face draws:
// digits and capitals.
func newFace(f tinyfont.Fonter) Face {
	var ascent int16
	for _, r := range "0123456789:/.ABDHNRSTUWY" {
		info := f.GetGlyph(r).Info()
		if a := -int16(info.YOffset); a > ascent {
			ascent = a
		}
	}
	return Face{Font: f, Ascent: ascent, Height: int16(f.GetYAdvance())}
}
