package pulse

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestSelectFormat(t *testing.T) {
	tests := []struct {
		name    string
		formats []wgpu.TextureFormat
		want    wgpu.TextureFormat
	}{
		{
			name:    "first srgb format",
			formats: []wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatRGBA8UnormSrgb},
			want:    wgpu.TextureFormatBGRA8UnormSrgb,
		},
		{
			name:    "fallback to first format",
			formats: []wgpu.TextureFormat{wgpu.TextureFormatRGBA16Float, wgpu.TextureFormatBGRA8Unorm},
			want:    wgpu.TextureFormatRGBA16Float,
		},
		{
			name:    "single format",
			formats: []wgpu.TextureFormat{wgpu.TextureFormatRGBA8UnormSrgb},
			want:    wgpu.TextureFormatRGBA8UnormSrgb,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := selectFormat(tc.formats)
			assert.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSelectFormatNoFormats(t *testing.T) {
	_, ok := selectFormat(nil)
	assert.False(t, ok)
}
