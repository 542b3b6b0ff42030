package pulse

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/wgpuboilerplate/glimpse"
)

const maxFrameLatency = 2

// Context is a configured gpu presentation session for a single window.
// It is not safe for concurrent use.
type Context struct {
	window   glimpse.Window
	platform Platform
	backend  backend
	program  Program

	config SurfaceConfig

	// last known drawable size, the source of truth for the config
	size glimpse.Size

	// Background is the color the surface is cleared with.
	Background Color
}

// New creates a Context rendering the TriangleProgram into the given window.
// The window is owned by the Context afterward.
func New(window glimpse.Window, platform Platform) (*Context, error) {
	return newContext(window, platform, TriangleProgram, openWGPU)
}

func newContext(window glimpse.Window, platform Platform, program Program, open openBackend) (ctx *Context, err error) {
	if window == nil {
		return nil, ErrNoWindow
	}

	size := window.Size().Div(platform.PixelRatioDivisor)
	if size.Empty() {
		return nil, fmt.Errorf("%w: window size is %dx%d", ErrInvalidConfiguration, size.Width, size.Height)
	}

	b, err := open(window.SurfaceDescriptor(), platform)
	if err != nil {
		return nil, fmt.Errorf("open gpu: %w", err)
	}

	defer func() {
		if err != nil {
			b.Release()
			ctx = nil
		}
	}()

	caps := b.Capabilities()

	format, ok := selectFormat(caps.Formats)
	if !ok || len(caps.PresentModes) == 0 || len(caps.AlphaModes) == 0 {
		return nil, fmt.Errorf("%w: surface is not supported by the adapter", ErrInvalidConfiguration)
	}

	slog.Info("Available surface formats",
		slog.Any("formats", caps.Formats),
		slog.Any("selected", format),
	)

	config := SurfaceConfig{
		SurfaceConfiguration: wgpu.SurfaceConfiguration{
			Usage:       wgpu.TextureUsageRenderAttachment,
			Format:      format,
			Width:       size.Width,
			Height:      size.Height,
			PresentMode: caps.PresentModes[0],
			AlphaMode:   caps.AlphaModes[0],
			ViewFormats: nil,
		},
		DesiredMaximumFrameLatency: maxFrameLatency,
	}

	b.Configure(&config)

	if err := program.Validate(); err != nil {
		return nil, err
	}

	if err := b.BuildPipeline(program, format); err != nil {
		return nil, fmt.Errorf("build pipeline: %w", err)
	}

	ctx = &Context{
		window:     window,
		platform:   platform,
		backend:    b,
		program:    program,
		config:     config,
		size:       size,
		Background: ColorBackground,
	}

	slog.Info("Graphics context created",
		slog.String("platform", platform.Name),
		slog.Int("width", int(size.Width)),
		slog.Int("height", int(size.Height)),
	)

	return ctx, nil
}

// Window returns the window this context renders to.
func (c *Context) Window() glimpse.Window {
	return c.window
}

// Size returns the current surface size.
func (c *Context) Size() glimpse.Size {
	return c.size
}

// Config returns a copy of the current surface configuration.
func (c *Context) Config() SurfaceConfig {
	return c.config
}

// Resize reconfigures the surface for the new window size. Empty sizes are
// ignored, as are sizes equal to the current one.
func (c *Context) Resize(size glimpse.Size) {
	if size.Empty() {
		slog.Debug("Ignore resize to empty size",
			slog.Int("width", int(size.Width)),
			slog.Int("height", int(size.Height)),
		)

		return
	}

	size = size.Div(c.platform.PixelRatioDivisor)
	if size.Empty() || size == c.size {
		return
	}

	slog.Debug("Resize surface",
		slog.Int("width", int(size.Width)),
		slog.Int("height", int(size.Height)),
	)

	c.size = size
	c.config.Width = size.Width
	c.config.Height = size.Height

	c.backend.Configure(&c.config)
}

// Scale resizes the surface by the given display scale factor.
func (c *Context) Scale(factor float64) {
	c.Resize(c.size.Scale(factor))
}

// Event lets the context handle a window event before the default handling.
// Returns true if the event was handled.
func (c *Context) Event(ev glimpse.Event) bool {
	return false
}

// Update is called once per frame before Render.
func (c *Context) Update(dt time.Duration) {
}

// Render draws one frame and presents it.
func (c *Context) Render() error {
	fr, err := c.acquireFrame()
	if err != nil {
		return err
	}

	err = fr.Draw(DrawCall{
		Clear:         c.Background,
		VertexCount:   c.program.VertexCount,
		InstanceCount: c.program.InstanceCount,
	})

	if err != nil {
		fr.Discard()
		return fmt.Errorf("draw frame: %w", err)
	}

	fr.Present()

	return nil
}

func (c *Context) acquireFrame() (frame, error) {
	fr, err := c.backend.AcquireFrame()
	if err == nil {
		return fr, nil
	}

	if !c.platform.RetryLostSurface {
		return nil, fmt.Errorf("%w: %w", ErrSurfaceAcquisitionFailed, err)
	}

	// the surface might be outdated or lost, e.g. after the window was minimized
	slog.Warn("Reconfigure surface after failing to get the current texture", slog.Any("err", err))

	c.backend.Configure(&c.config)

	fr, err = c.backend.AcquireFrame()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSurfaceAcquisitionFailed, err)
	}

	return fr, nil
}

// Release frees all gpu resources. The window is not destroyed.
func (c *Context) Release() {
	if c.backend != nil {
		c.backend.Release()
		c.backend = nil
	}
}
