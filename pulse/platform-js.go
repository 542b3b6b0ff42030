//go:build js

package pulse

import "github.com/cogentcore/webgpu/wgpu"

// DefaultPlatform for the browser. The canvas reports twice the size
// we want to render at, so the size is halved.
func DefaultPlatform() Platform {
	return Platform{
		Name:              "web",
		PixelRatioDivisor: 2,
		Backends:          BackendBrowser,
		Limits:            LimitsDownlevelWebGL2,
		RetryLostSurface:  true,
	}
}

// the browser picks the backend itself
func instanceDescriptor(p Platform) *wgpu.InstanceDescriptor {
	return nil
}
