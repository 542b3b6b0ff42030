//go:build js

package pulse

import "github.com/cogentcore/webgpu/wgpu"

// the browser reports validation errors asynchronously, End itself never fails
func endPass(pass *wgpu.RenderPassEncoder) error {
	pass.End()
	return nil
}
