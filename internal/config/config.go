// Package config loads the host simulator's sensor profile.
//
// The watch face itself has no runtime configuration; a profile only decides
// what the host HAL reports for battery and health readings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile describes the simulated sensors at startup and how they evolve.
type Profile struct {
	Battery             int     `yaml:"battery"`
	BatteryDrainPerHour float64 `yaml:"battery_drain_per_hour"`
	Charging            bool    `yaml:"charging"`

	Steps          int32 `yaml:"steps"`
	StepsPerMinute int32 `yaml:"steps_per_minute"`
	StrideCM       int32 `yaml:"stride_cm"`
	SleepSeconds   int32 `yaml:"sleep_seconds"`
}

// DefaultProfile returns the readings used when no profile file is given.
func DefaultProfile() Profile {
	return Profile{
		Battery:             80,
		BatteryDrainPerHour: 2,
		Steps:               4321,
		StepsPerMinute:      20,
		StrideCM:            75,
		SleepSeconds:        26100,
	}
}

// Load reads a YAML profile. An empty path returns DefaultProfile.
// Fields missing from the file keep their default values.
func Load(path string) (Profile, error) {
	p := DefaultProfile()
	if path == "" {
		return p, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read profile: %w", err)
	}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), &p); err != nil {
		return p, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Validate checks value ranges.
func (p Profile) Validate() error {
	if p.Battery < 0 || p.Battery > 100 {
		return fmt.Errorf("battery must be within 0..100, got %d", p.Battery)
	}
	if p.BatteryDrainPerHour < 0 {
		return fmt.Errorf("battery_drain_per_hour must not be negative, got %v", p.BatteryDrainPerHour)
	}
	if p.Steps < 0 || p.StepsPerMinute < 0 || p.StrideCM < 0 || p.SleepSeconds < 0 {
		return fmt.Errorf("health counters must not be negative")
	}
	return nil
}
