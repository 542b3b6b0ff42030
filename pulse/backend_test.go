package pulse

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

// both build targets must end a render pass with the same signature,
// GOOS=js GOARCH=wasm go vet ./... type checks this file for the browser
func TestEndPassSignature(t *testing.T) {
	var end func(pass *wgpu.RenderPassEncoder) error = endPass
	assert.NotNil(t, end)
}
