package pulse

import "github.com/cogentcore/webgpu/wgpu"

// SurfaceConfig is the configuration applied to the surface.
type SurfaceConfig struct {
	wgpu.SurfaceConfiguration

	// Maximum number of frames queued for presentation. Not every
	// backend lets us forward this value.
	DesiredMaximumFrameLatency uint32
}

// Program is the fixed drawing program rendered each frame.
type Program struct {
	Label         string
	Source        string
	VertexEntry   string
	FragmentEntry string
	VertexCount   uint32
	InstanceCount uint32
}

// DrawCall describes the single render pass recorded for a frame.
type DrawCall struct {
	Clear         Color
	VertexCount   uint32
	InstanceCount uint32
}

// backend is a gpu session bound to a single surface. All methods are called
// from the goroutine driving the Context.
type backend interface {
	Capabilities() wgpu.SurfaceCapabilities

	// Configure applies the configuration to the surface.
	Configure(config *SurfaceConfig)

	// BuildPipeline compiles the program into a render pipeline
	// targeting the given surface format.
	BuildPipeline(program Program, format wgpu.TextureFormat) error

	// AcquireFrame gets the next surface texture.
	AcquireFrame() (frame, error)

	Release()
}

// frame is an acquired surface texture. A frame is either presented or discarded, exactly once.
type frame interface {
	// Draw records the draw call into one command buffer and submits it to the queue.
	Draw(call DrawCall) error

	Present()

	// Discard releases the texture without presenting it.
	Discard()
}

// openBackend creates a backend for the given surface.
type openBackend func(sd *wgpu.SurfaceDescriptor, platform Platform) (backend, error)
