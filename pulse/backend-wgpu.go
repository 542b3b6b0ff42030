package pulse

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// wgpuBackend encapsulates the low level state of the webgpu context,
// this includes the Device, Surface and active Adapter.
type wgpuBackend struct {
	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	pipeline *wgpu.RenderPipeline
}

var _ openBackend = openWGPU

func openWGPU(sd *wgpu.SurfaceDescriptor, platform Platform) (st backend, err error) {
	b := &wgpuBackend{}

	defer func() {
		if err != nil {
			b.Release()
			st = nil
		}
	}()

	// create the webgpu instance
	b.instance = wgpu.CreateInstance(instanceDescriptor(platform))

	// create a Surface based on the window
	b.surface = b.instance.CreateSurface(sd)

	// create an adapter that can render to the Surface, never a software renderer
	b.adapter, err = b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: false,
		CompatibleSurface:    b.surface,
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAdapterUnavailable, err)
	}

	b.device, err = b.adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: platform.Limits.wgpuLimits(),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeviceRequestFailed, err)
	}

	b.queue = b.device.GetQueue()

	return b, nil
}

func (b *wgpuBackend) Capabilities() wgpu.SurfaceCapabilities {
	return b.surface.GetCapabilities(b.adapter)
}

func (b *wgpuBackend) Configure(config *SurfaceConfig) {
	b.surface.Configure(b.adapter, b.device, &config.SurfaceConfiguration)
}

func (b *wgpuBackend) BuildPipeline(program Program, format wgpu.TextureFormat) error {
	slog.Info(
		"Create RenderPipeline",
		slog.String("program", program.Label),
		slog.Any("format", format),
	)

	shader, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          program.Label,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: program.Source},
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrShaderCompilation, err)
	}

	defer shader.Release()

	// no bind groups and no push constants
	layout, err := b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: program.Label + ".Layout",
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}

	defer layout.Release()

	pipeline, err := b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  program.Label,
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: program.VertexEntry,
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: program.FragmentEntry,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    format,
					Blend:     &wgpu.BlendStateReplace,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	})
	if err != nil {
		return fmt.Errorf("build pipeline: %w", err)
	}

	b.pipeline = pipeline

	return nil
}

func (b *wgpuBackend) AcquireFrame() (frame, error) {
	texture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return nil, err
	}

	return &wgpuFrame{backend: b, texture: texture}, nil
}

func (b *wgpuBackend) Release() {
	if b.pipeline != nil {
		b.pipeline.Release()
		b.pipeline = nil
	}

	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}

	if b.device != nil {
		b.device.Release()
		b.device = nil
	}

	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}

	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}

	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}

type wgpuFrame struct {
	backend *wgpuBackend
	texture *wgpu.Texture
}

func (f *wgpuFrame) Draw(call DrawCall) error {
	view, err := f.texture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create view: %w", err)
	}

	defer view.Release()

	enc, err := f.backend.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "Frame",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}

	defer enc.Release()

	pass := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Frame",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: call.Clear.ToWGPU(),
			},
		},
	})

	passGuard := NewReleaseGuard(pass)
	defer passGuard.Release()

	pass.SetPipeline(f.backend.pipeline)
	pass.Draw(call.VertexCount, call.InstanceCount, 0, 0)

	if err := endPass(pass); err != nil {
		return fmt.Errorf("end render pass: %w", err)
	}

	// must release pass before finishing the encoder
	passGuard.Release()

	buf, err := enc.Finish(&wgpu.CommandBufferDescriptor{Label: "Frame"})
	if err != nil {
		return fmt.Errorf("finish command buffer: %w", err)
	}

	defer buf.Release()

	f.backend.queue.Submit(buf)

	return nil
}

func (f *wgpuFrame) Present() {
	f.backend.surface.Present()

	// we do not need to release the texture if present was successful
	f.texture = nil
}

func (f *wgpuFrame) Discard() {
	if f.texture != nil {
		f.texture.Release()
		f.texture = nil
	}
}
