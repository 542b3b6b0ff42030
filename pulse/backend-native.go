//go:build !js

package pulse

import "github.com/cogentcore/webgpu/wgpu"

func endPass(pass *wgpu.RenderPassEncoder) error {
	return pass.End()
}
