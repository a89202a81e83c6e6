//go:build !tinygo

package hal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watchface/internal/config"
)

func TestHostFramebufferPublishesOnPresent(t *testing.T) {
	fb := newHostFramebuffer(2, 2)
	dst := make([]byte, len(fb.Buffer()))

	_, ok := fb.latestFrame(dst, 0)
	require.False(t, ok, "no frame before Present")

	fb.ClearRGB(255, 255, 255)
	require.NoError(t, fb.Present())

	id, ok := fb.latestFrame(dst, 0)
	require.True(t, ok)
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, dst)

	_, ok = fb.latestFrame(dst, id)
	assert.False(t, ok, "same frame is not copied twice")
}

func drainTicks(ch <-chan uint64) (last uint64, n int) {
	for {
		select {
		case seq := <-ch:
			last = seq
			n++
		default:
			return last, n
		}
	}
}

func TestHostTimeAdvance(t *testing.T) {
	ht := newHostTime()
	start := time.Unix(100, 0)

	ht.advance(start)
	last, n := drainTicks(ht.Ticks())
	assert.Equal(t, uint64(1), last)
	assert.Equal(t, 1, n)

	ht.advance(start.Add(500 * time.Microsecond))
	_, n = drainTicks(ht.Ticks())
	assert.Zero(t, n, "sub-tick time accumulates")

	ht.advance(start.Add(3 * time.Millisecond))
	last, n = drainTicks(ht.Ticks())
	assert.Equal(t, 3, n)
	assert.Equal(t, uint64(4), last)
}

type countingProgram struct {
	steps  int
	closed bool
}

func (p *countingProgram) Step() error  { p.steps++; return nil }
func (p *countingProgram) Close() error { p.closed = true; return nil }

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	p := &countingProgram{}
	var got HAL
	err := RunHeadless(context.Background(), func(h HAL) Program {
		got = h
		return p
	}, HeadlessConfig{Hz: 1000, Ticks: 3, Profile: config.DefaultProfile()})
	require.NoError(t, err)

	assert.Equal(t, 3, p.steps)
	assert.True(t, p.closed)
	require.NotNil(t, got)
	assert.Equal(t, 144, got.Display().Framebuffer().Width())
}

func TestRunHeadlessRejectsBadRate(t *testing.T) {
	err := RunHeadless(context.Background(), func(HAL) Program { return &countingProgram{} }, HeadlessConfig{Hz: 0})
	require.Error(t, err)
}
