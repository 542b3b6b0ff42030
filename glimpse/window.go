package glimpse

import "github.com/cogentcore/webgpu/wgpu"

// Size is a size in physical pixels.
type Size struct {
	Width  uint32
	Height uint32
}

// Empty returns true if either of the dimensions is zero. An empty size
// must never be used to configure a surface.
func (s Size) Empty() bool {
	return s.Width == 0 || s.Height == 0
}

// Div divides both dimensions by n. A divisor of zero or one keeps the size as is.
func (s Size) Div(n uint32) Size {
	if n <= 1 {
		return s
	}

	return Size{Width: s.Width / n, Height: s.Height / n}
}

// Scale multiplies both dimensions by factor, truncating the result.
func (s Size) Scale(factor float64) Size {
	return Size{
		Width:  uint32(float64(s.Width) * factor),
		Height: uint32(float64(s.Height) * factor),
	}
}

// Window is a platform window (or canvas) that can be used as
// the target of a webgpu surface.
type Window interface {
	// Size returns the current drawable size in physical pixels
	Size() Size

	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// RequestRedraw schedules a RedrawRequested event for this window.
	RequestRedraw()

	Destroy()
}

type WindowAttributes struct {
	Title  string
	Width  int
	Height int
}

func (a WindowAttributes) withDefaults() WindowAttributes {
	if a.Width <= 0 {
		a.Width = 800
	}

	if a.Height <= 0 {
		a.Height = 600
	}

	return a
}

// Control is passed to a Handler and gives it access to the running event loop.
type Control interface {
	CreateWindow(attrs WindowAttributes) (Window, error)

	// Exit stops the event loop after the current event was handled.
	Exit()
}

// Handler receives the events of an EventLoop. All methods are called
// on the same goroutine, one event at a time. Returning an error stops
// the event loop, Run then returns that error.
type Handler interface {
	// Resumed is called once the application may create windows.
	Resumed(ctl Control) error

	WindowEvent(ctl Control, ev Event) error

	// AboutToWait is called after all pending events were dispatched.
	AboutToWait(ctl Control) error
}
