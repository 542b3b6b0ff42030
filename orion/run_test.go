package orion

import (
	"testing"

	"github.com/oliverbestmann/wgpuboilerplate/pulse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}.withDefaults()

	assert.Equal(t, "WGPU Boilerplate", opts.WindowTitle)
	assert.Equal(t, 800, opts.WindowWidth)
	assert.Equal(t, 600, opts.WindowHeight)

	require.NotNil(t, opts.Platform)
	assert.Equal(t, pulse.DefaultPlatform(), *opts.Platform)

	assert.NotNil(t, opts.NewGraphics)
	assert.NotNil(t, opts.Clock)
}

func TestOptionsKeepValues(t *testing.T) {
	platform := pulse.DefaultPlatform()
	platform.PixelRatioDivisor = 3

	opts := Options{
		WindowTitle:  "Demo",
		WindowWidth:  320,
		WindowHeight: 240,
		Platform:     &platform,
	}.withDefaults()

	assert.Equal(t, "Demo", opts.WindowTitle)
	assert.Equal(t, 320, opts.WindowWidth)
	assert.Equal(t, 240, opts.WindowHeight)
	assert.Same(t, &platform, opts.Platform)
}

func TestDefaultGraphicsRejectsMissingWindow(t *testing.T) {
	opts := Options{}.withDefaults()

	graphics, err := opts.NewGraphics(nil)
	assert.ErrorIs(t, err, pulse.ErrNoWindow)

	// must be an untyped nil, not a nil *pulse.Context
	assert.True(t, graphics == nil)
}
