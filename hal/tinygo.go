//go:build tinygo && baremetal

package hal

import (
	"machine"
)

type tinyGoHAL struct {
	logger *uartLogger
	fb     Framebuffer
	t      *tinyGoTime
	power  Power
}

// New returns a Pico (RP2040/RP2350) watch board HAL implementation.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// Panel: ST7789 240x240 on SPI1 (GP10 SCK, GP11 SDO), DC GP8, CS GP9, RST GP12, BL GP13.
// Battery: VSYS/3 on ADC3 (GP29).
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	var fb Framebuffer
	if panel, err := newPanelFramebuffer(); err == nil {
		fb = panel
	} else {
		logger.WriteLineString("hal: panel init failed: " + err.Error())
		fb = &stubFramebuffer{w: panelWidth, h: panelHeight, format: PixelFormatRGB565}
	}

	return &tinyGoHAL{
		logger: logger,
		fb:     fb,
		t:      newTinyGoTime(),
		power:  newADCBattery(machine.ADC3),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Time() Time       { return h.t }
func (h *tinyGoHAL) Clock() Clock     { return systemClock{} }
func (h *tinyGoHAL) Power() Power     { return h.power }
func (h *tinyGoHAL) Health() Health   { return noHealth{} }
