package pulse

import "github.com/cogentcore/webgpu/wgpu"

// isSRGB returns true if the format stores perceptually (srgb) encoded color values.
// Only formats that can back a surface are checked.
func isSRGB(format wgpu.TextureFormat) bool {
	switch format {
	case wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb:
		return true
	default:
		return false
	}
}

// selectFormat picks the first srgb format, falling back to the first format.
func selectFormat(formats []wgpu.TextureFormat) (wgpu.TextureFormat, bool) {
	if len(formats) == 0 {
		return wgpu.TextureFormatUndefined, false
	}

	for _, format := range formats {
		if isSRGB(format) {
			return format, true
		}
	}

	return formats[0], true
}
