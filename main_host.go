//go:build !tinygo

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"watchface/app"
	"watchface/hal"
	"watchface/internal/buildinfo"
	"watchface/internal/config"
)

type CLI struct {
	Headless bool             `help:"Run without a window."`
	Hz       int              `help:"Tick rate in headless mode." default:"60"`
	Ticks    uint64           `help:"Stop after N ticks in headless mode (0 = run forever)." default:"0"`
	Scale    int              `help:"Window scale factor." default:"3"`
	Profile  string           `short:"p" help:"Sensor profile YAML file (defaults when empty)." type:"path"`
	Verbose  bool             `short:"v" help:"Enable verbose logging."`
	Version  kong.VersionFlag `name:"version" help:"Show version and exit."`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

func (c *CLI) Run() error {
	profile, err := config.Load(c.Profile)
	if err != nil {
		return err
	}
	slog.Debug("sensor profile", "path", c.Profile, "battery", profile.Battery, "steps", profile.Steps)

	newApp := func(h hal.HAL) hal.Program { return app.New(h) }

	if c.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{Hz: c.Hz, Ticks: c.Ticks, Profile: profile})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	return hal.RunWindow(newApp, hal.WindowConfig{Scale: c.Scale, Profile: profile})
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("watchface"),
		kong.Description("Digital watch face on a simulated 144x168 panel."),
		kong.Vars{"version": buildinfo.Short()},
	)
	if err := cli.Run(); err != nil {
		slog.Error("watchface failed", "error", err)
		os.Exit(1)
	}
}
