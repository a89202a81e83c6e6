package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watchface/hal"
)

type memFramebuffer struct {
	w, h     int
	buf      []byte
	presents int
	err      error
}

func newMemFramebuffer(w, h int) *memFramebuffer {
	return &memFramebuffer{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *memFramebuffer) Width() int              { return f.w }
func (f *memFramebuffer) Height() int             { return f.h }
func (f *memFramebuffer) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *memFramebuffer) StrideBytes() int        { return f.w * 2 }
func (f *memFramebuffer) Buffer() []byte          { return f.buf }
func (f *memFramebuffer) ClearRGB(r, g, b uint8) {
	px := uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = byte(px)
		f.buf[i+1] = byte(px >> 8)
	}
}
func (f *memFramebuffer) Present() error {
	f.presents++
	return f.err
}

func (f *memFramebuffer) snapshot() []byte { return append([]byte(nil), f.buf...) }

type fakeDisplay struct{ fb hal.Framebuffer }

func (d fakeDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type fakePower struct{ pct int }

func (p *fakePower) ChargeState() hal.ChargeState { return hal.ChargeState{Percent: p.pct} }

type fakeHealth struct {
	steps int32
	boom  bool
}

func (h *fakeHealth) SumToday(m hal.Metric) int32 {
	if h.boom {
		panic("sensor bus fault")
	}
	if m == hal.MetricStepCount {
		return h.steps
	}
	return 0
}

type lines []string

func (l *lines) WriteLineString(s string) { *l = append(*l, s) }
func (l *lines) WriteLineBytes(b []byte)  { *l = append(*l, string(b)) }

func (l *lines) count(substr string) int {
	n := 0
	for _, s := range *l {
		if strings.Contains(s, substr) {
			n++
		}
	}
	return n
}

type fakeHAL struct {
	log    *lines
	fb     *memFramebuffer
	clock  *fakeClock
	power  *fakePower
	health *fakeHealth
}

func newFakeHAL() *fakeHAL {
	return &fakeHAL{
		log:    &lines{},
		fb:     newMemFramebuffer(144, 168),
		clock:  &fakeClock{now: time.Date(2025, time.September, 3, 14, 5, 0, 0, time.UTC)},
		power:  &fakePower{pct: 77},
		health: &fakeHealth{steps: 4321},
	}
}

func (h *fakeHAL) Logger() hal.Logger   { return h.log }
func (h *fakeHAL) Display() hal.Display { return fakeDisplay{fb: h.fb} }
func (h *fakeHAL) Time() hal.Time       { return nil }
func (h *fakeHAL) Clock() hal.Clock     { return h.clock }
func (h *fakeHAL) Power() hal.Power     { return h.power }
func (h *fakeHAL) Health() hal.Health   { return h.health }

func TestStepPresentsOnlyOnChange(t *testing.T) {
	h := newFakeHAL()
	s := New(h)
	assert.Equal(t, 1, h.log.count("watchface "))
	assert.Equal(t, 1, h.log.count("face: loaded"))

	require.NoError(t, s.Step())
	assert.Equal(t, 1, h.fb.presents)
	first := h.fb.snapshot()

	require.NoError(t, s.Step())
	assert.Equal(t, 1, h.fb.presents)

	// Steps are rewritten every second, so the screen repaints.
	h.clock.now = h.clock.now.Add(time.Second)
	require.NoError(t, s.Step())
	assert.Equal(t, 2, h.fb.presents)
	assert.Equal(t, first, h.fb.snapshot())

	h.clock.now = h.clock.now.Add(time.Minute)
	require.NoError(t, s.Step())
	assert.Equal(t, 3, h.fb.presents)
	assert.NotEqual(t, first, h.fb.snapshot())
	assert.Equal(t, "14:06", s.Face().Regions().Time.Text())
}

func TestCloseUnloadsFace(t *testing.T) {
	h := newFakeHAL()
	s := New(h)
	require.NoError(t, s.Close())

	assert.False(t, s.Face().Loaded())
	assert.Equal(t, 1, h.log.count("face: unloaded"))
	assert.ErrorIs(t, s.Step(), errClosed)
	require.NoError(t, s.Close())
}

func TestRenderErrorIsLoggedOnce(t *testing.T) {
	h := newFakeHAL()
	h.fb.err = errors.New("spi timeout")
	s := New(h)

	require.NoError(t, s.Step())
	h.clock.now = h.clock.now.Add(time.Second)
	require.NoError(t, s.Step())

	assert.Equal(t, 2, h.fb.presents)
	assert.Equal(t, 1, h.log.count("render: present: spi timeout"))
}

func TestPanicHaltsAndPaints(t *testing.T) {
	h := newFakeHAL()
	s := New(h)
	require.NoError(t, s.Step())

	h.health.boom = true
	h.clock.now = h.clock.now.Add(time.Second)
	err := s.Step()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sensor bus fault")
	assert.Equal(t, 1, h.log.count("watchface panic: sensor bus fault"))
	assert.Equal(t, 2, h.fb.presents)

	// Top-left corner keeps the panic background.
	assert.Equal(t, []byte{0x00, 0x80}, h.fb.buf[:2])

	assert.Equal(t, err, s.Step())
	assert.Equal(t, 2, h.fb.presents)
}

func TestTakeRunes(t *testing.T) {
	p, r := takeRunes("héllo", 2)
	assert.Equal(t, "hé", p)
	assert.Equal(t, "llo", r)

	p, r = takeRunes("ab", 5)
	assert.Equal(t, "ab", p)
	assert.Equal(t, "", r)
}
