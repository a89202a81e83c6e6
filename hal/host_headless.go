//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"

	"watchface/internal/config"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz      int
	Ticks   uint64
	Profile config.Profile
}

// RunHeadless runs the face without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) Program, cfg HeadlessConfig) (err error) {
	if cfg.Hz <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHostHAL(cfg.Profile, time.Now)
	prog := newApp(h)
	defer func() {
		if cerr := prog.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			h.t.advance(now)
			if err := prog.Step(); err != nil {
				return err
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
