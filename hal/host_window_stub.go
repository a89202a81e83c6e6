//go:build !tinygo && !cgo

package hal

import (
	"errors"

	"watchface/internal/config"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Scale   int
	Profile config.Profile
}

func RunWindow(_ func(HAL) Program, _ WindowConfig) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
