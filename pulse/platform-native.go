//go:build !js

package pulse

import (
	"os"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

func init() {
	switch strings.ToUpper(os.Getenv("WGPU_LOG_LEVEL")) {
	case "OFF":
		wgpu.SetLogLevel(wgpu.LogLevelOff)
	case "ERROR":
		wgpu.SetLogLevel(wgpu.LogLevelError)
	case "WARN":
		wgpu.SetLogLevel(wgpu.LogLevelWarn)
	case "INFO":
		wgpu.SetLogLevel(wgpu.LogLevelInfo)
	case "DEBUG":
		wgpu.SetLogLevel(wgpu.LogLevelDebug)
	case "TRACE":
		wgpu.SetLogLevel(wgpu.LogLevelTrace)
	}
}

// DefaultPlatform for native builds renders at the full framebuffer size
// using the primary backends.
func DefaultPlatform() Platform {
	return Platform{
		Name:              "native",
		PixelRatioDivisor: 1,
		Backends:          BackendPrimary,
		Limits:            LimitsDefault,
		RetryLostSurface:  true,
	}
}

func instanceDescriptor(p Platform) *wgpu.InstanceDescriptor {
	if p.Backends != BackendPrimary {
		return nil
	}

	return &wgpu.InstanceDescriptor{
		Backends: wgpu.InstanceBackendPrimary,
	}
}
