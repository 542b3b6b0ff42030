package pulse

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestDefaultPlatform(t *testing.T) {
	p := DefaultPlatform()

	// tests run on the native target
	assert.Equal(t, uint32(1), p.PixelRatioDivisor)
	assert.Equal(t, BackendPrimary, p.Backends)
	assert.True(t, p.RetryLostSurface)
	assert.NotNil(t, instanceDescriptor(p))
}

func TestLimits(t *testing.T) {
	assert.Equal(t, wgpu.DefaultLimits(), LimitsDefault.wgpuLimits())

	downlevel := LimitsDownlevelWebGL2.wgpuLimits()
	assert.Equal(t, uint32(2048), downlevel.MaxTextureDimension2D)
	assert.Zero(t, downlevel.MaxStorageBuffersPerShaderStage)
	assert.Zero(t, downlevel.MaxComputeInvocationsPerWorkgroup)
}
