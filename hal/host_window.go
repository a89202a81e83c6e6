//go:build !tinygo && cgo

package hal

import (
	"errors"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"watchface/internal/buildinfo"
	"watchface/internal/config"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Scale   int
	Profile config.Profile
}

// RunWindow starts a desktop window that displays the framebuffer.
// It blocks until the window closes or Escape is pressed.
func RunWindow(newApp func(HAL) Program, cfg WindowConfig) (err error) {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}

	h := newHostHAL(cfg.Profile, time.Now)
	prog := newApp(h)
	defer func() {
		if cerr := prog.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	g := &hostGame{h: h, prog: prog}
	ebiten.SetWindowTitle("watchface (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*cfg.Scale, h.fb.height*cfg.Scale)
	ebiten.SetTPS(30)
	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type hostGame struct {
	h       *hostHAL
	prog    Program
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	seen    uint64
}

func (g *hostGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.h.t.advance(time.Now())
	return g.prog.Step()
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	if id, ok := fb.latestFrame(g.scratch, g.seen); ok {
		g.seen = id
		rgbaFromRGB565(g.img.Pix, g.scratch)
		g.fbImg.WritePixels(g.img.Pix)
	}
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
