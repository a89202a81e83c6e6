package hal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGB565RoundTripPrimaries(t *testing.T) {
	cases := []struct{ r, g, b uint8 }{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
	}
	for _, c := range cases {
		r, g, b := rgb888From565(rgb565(c.r, c.g, c.b))
		assert.Equal(t, []uint8{c.r, c.g, c.b}, []uint8{r, g, b})
	}
}

func TestSwapRGB565(t *testing.T) {
	src := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	dst := make([]byte, 8)
	n := swapRGB565(dst, src)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte{0x02, 0x01, 0x04, 0x03}, dst[:n])
}

func TestChargeFromMilliVolts(t *testing.T) {
	cases := []struct {
		mv      int
		pct     int
		plugged bool
	}{
		{3000, 0, false},
		{3300, 0, false},
		{3750, 50, false},
		{4200, 100, false},
		{5000, 100, true},
	}
	for _, c := range cases {
		cs := chargeFromMilliVolts(c.mv)
		assert.Equal(t, c.pct, cs.Percent, "mv=%d", c.mv)
		assert.Equal(t, c.plugged, cs.Plugged, "mv=%d", c.mv)
	}
}

func TestMetricString(t *testing.T) {
	assert.Equal(t, "steps", MetricStepCount.String())
	assert.Equal(t, "walked_m", MetricWalkedDistanceMeters.String())
	assert.Equal(t, "sleep_s", MetricSleepSeconds.String())
	assert.Equal(t, "unknown", Metric(99).String())
}
