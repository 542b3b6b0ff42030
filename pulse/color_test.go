package pulse

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestColorZeroValueIsWhite(t *testing.T) {
	var c Color
	assert.Equal(t, ColorLinearRGBA(1, 1, 1, 1), c)
}

func TestColorToWGPU(t *testing.T) {
	c := ColorLinearRGBA(0.25, 0.5, 0.75, 1)
	assert.Equal(t, wgpu.Color{R: 0.25, G: 0.5, B: 0.75, A: 1}, c.ToWGPU())
}

func TestColorBackground(t *testing.T) {
	r, g, b, a := ColorBackground.Components()
	assert.InDelta(t, 0.1, r, 1e-6)
	assert.InDelta(t, 0.4, g, 1e-6)
	assert.InDelta(t, 0.7, b, 1e-6)
	assert.InDelta(t, 1.0, a, 1e-6)
}
