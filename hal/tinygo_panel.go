//go:build tinygo && baremetal

package hal

import (
	"errors"
	"machine"

	"tinygo.org/x/drivers/st7789"
)

const (
	panelWidth  = 240
	panelHeight = 240

	// Rows per SPI transfer; bounds the byte-swap scratch buffer.
	panelBandRows = 16
)

type panelFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	lcd  st7789.Device
	band []byte
}

func newPanelFramebuffer() (*panelFramebuffer, error) {
	if machine.SPI1 == nil {
		return nil, errors.New("SPI1 unavailable")
	}
	if err := machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		Frequency: 40_000_000,
	}); err != nil {
		return nil, err
	}

	lcd := st7789.New(machine.SPI1, machine.GP12, machine.GP8, machine.GP9, machine.GP13)
	lcd.Configure(st7789.Config{Width: panelWidth, Height: panelHeight})
	lcd.EnableBacklight(true)

	return &panelFramebuffer{
		w:      panelWidth,
		h:      panelHeight,
		stride: panelWidth * 2,
		buf:    make([]byte, panelWidth*panelHeight*2),
		lcd:    lcd,
		band:   make([]byte, panelWidth*2*panelBandRows),
	}, nil
}

func (f *panelFramebuffer) Width() int          { return f.w }
func (f *panelFramebuffer) Height() int         { return f.h }
func (f *panelFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *panelFramebuffer) StrideBytes() int    { return f.stride }
func (f *panelFramebuffer) Buffer() []byte      { return f.buf }

func (f *panelFramebuffer) ClearRGB(r, g, b uint8) {
	fillRGB565(f.buf, rgb565(r, g, b))
}

// Present pushes the framebuffer to the panel in horizontal bands.
func (f *panelFramebuffer) Present() error {
	for y := 0; y < f.h; y += panelBandRows {
		rows := panelBandRows
		if y+rows > f.h {
			rows = f.h - y
		}
		src := f.buf[y*f.stride : (y+rows)*f.stride]
		n := swapRGB565(f.band, src)
		if err := f.lcd.DrawRGBBitmap8(0, int16(y), f.band[:n], int16(f.w), int16(rows)); err != nil {
			return err
		}
	}
	return nil
}
