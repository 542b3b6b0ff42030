package pulse

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

//go:embed shader.wgsl
var triangleShader string

// TriangleProgram draws a single colored triangle. The vertex positions
// are part of the vertex stage, no vertex buffer is needed.
var TriangleProgram = Program{
	Label:         "Triangle",
	Source:        triangleShader,
	VertexEntry:   "vs_main",
	FragmentEntry: "fs_main",
	VertexCount:   3,
	InstanceCount: 1,
}

// Validate parses and compiles the programs source, so broken shaders
// are reported with a proper error before they reach the driver.
func (p Program) Validate() error {
	if _, err := naga.Compile(p.Source); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrShaderCompilation, p.Label, err)
	}

	return nil
}
