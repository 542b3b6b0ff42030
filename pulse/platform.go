package pulse

import "github.com/cogentcore/webgpu/wgpu"

// BackendPreference selects the graphics apis the instance may use.
type BackendPreference int

const (
	// BackendPrimary selects the native first class apis: Vulkan, Metal and DX12
	BackendPrimary BackendPreference = iota

	// BackendBrowser uses whatever the browser provides
	BackendBrowser
)

// LimitsPreset selects the limits requested from the device.
type LimitsPreset int

const (
	// LimitsDefault are the wgpu default limits.
	LimitsDefault LimitsPreset = iota

	// LimitsDownlevelWebGL2 are limits every WebGL2 capable device supports.
	LimitsDownlevelWebGL2
)

// Platform holds the settings that differ between the build targets. It is
// resolved once using DefaultPlatform.
type Platform struct {
	Name string

	// The window size is divided by this value before configuring the surface.
	PixelRatioDivisor uint32

	Backends BackendPreference
	Limits   LimitsPreset

	// RetryLostSurface reconfigures the surface and tries once more
	// if no surface texture could be acquired.
	RetryLostSurface bool
}

func (p LimitsPreset) wgpuLimits() wgpu.Limits {
	limits := wgpu.DefaultLimits()

	if p == LimitsDownlevelWebGL2 {
		limits.MaxTextureDimension1D = 2048
		limits.MaxTextureDimension2D = 2048
		limits.MaxTextureDimension3D = 256
		limits.MaxStorageBuffersPerShaderStage = 0
		limits.MaxStorageTexturesPerShaderStage = 0
		limits.MaxDynamicStorageBuffersPerPipelineLayout = 0
		limits.MaxStorageBufferBindingSize = 0
		limits.MaxComputeWorkgroupStorageSize = 0
		limits.MaxComputeInvocationsPerWorkgroup = 0
		limits.MaxComputeWorkgroupSizeX = 0
		limits.MaxComputeWorkgroupSizeY = 0
		limits.MaxComputeWorkgroupSizeZ = 0
		limits.MaxComputeWorkgroupsPerDimension = 0
	}

	return limits
}
