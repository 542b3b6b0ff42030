package pulse

import "errors"

var (
	// ErrNoWindow is returned by New if no window was given.
	ErrNoWindow = errors.New("no window")

	// ErrAdapterUnavailable is returned if no adapter compatible with the surface exists.
	ErrAdapterUnavailable = errors.New("adapter unavailable")

	// ErrDeviceRequestFailed is returned if the adapter refused to create a device.
	ErrDeviceRequestFailed = errors.New("device request failed")

	// ErrSurfaceAcquisitionFailed is returned by Render if the surface did not
	// provide a texture to render into, e.g. because it is outdated or lost.
	ErrSurfaceAcquisitionFailed = errors.New("surface acquisition failed")

	// ErrInvalidConfiguration is used for surface configurations that must not
	// be applied, e.g. a zero sized surface.
	ErrInvalidConfiguration = errors.New("invalid surface configuration")

	// ErrShaderCompilation is returned if the program source does not compile.
	ErrShaderCompilation = errors.New("shader compilation failed")
)
