package orion

import (
	"time"

	"github.com/oliverbestmann/wgpuboilerplate/glimpse"
	"github.com/oliverbestmann/wgpuboilerplate/pulse"
)

var _ Graphics = (*pulse.Context)(nil)

type Options struct {
	WindowTitle  string
	WindowWidth  int
	WindowHeight int

	// Platform used to create the graphics context. Defaults to pulse.DefaultPlatform.
	Platform *pulse.Platform

	// NewGraphics creates the graphics context. Defaults to pulse.New.
	NewGraphics NewGraphics

	// Clock to measure frame times, defaults to time.Now
	Clock func() time.Time
}

func (opts Options) withDefaults() Options {
	if opts.WindowTitle == "" {
		opts.WindowTitle = "WGPU Boilerplate"
	}

	if opts.WindowWidth == 0 {
		opts.WindowWidth = 800
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 600
	}

	if opts.Platform == nil {
		platform := pulse.DefaultPlatform()
		opts.Platform = &platform
	}

	if opts.NewGraphics == nil {
		platform := *opts.Platform

		opts.NewGraphics = func(window glimpse.Window) (Graphics, error) {
			ctx, err := pulse.New(window, platform)
			if err != nil {
				return nil, err
			}

			return ctx, nil
		}
	}

	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	return opts
}

// Run opens a window and renders into it until the window is closed.
// Returns an error if the graphics context could not be created or
// rendering a frame failed.
func Run(opts Options) error {
	loop := NewRunLoop(opts)
	return glimpse.NewEventLoop().Run(loop)
}
