package glimpse

import "fmt"

// Event is a window event delivered to Handler.WindowEvent.
type Event interface {
	isEvent()
}

// Resized is emitted when the drawable size of the window changed.
type Resized struct {
	Size Size
}

// ScaleFactorChanged is emitted when the window moved to a display with another content scale.
type ScaleFactorChanged struct {
	ScaleFactor float64
}

type RedrawRequested struct{}

type CloseRequested struct{}

type Key int

type MouseButton uint32

type KeyboardInput struct {
	Key     Key
	Pressed bool
}

type MouseInput struct {
	Button  MouseButton
	Pressed bool
}

type CursorMoved struct {
	X, Y float32
}

func (Resized) isEvent()            {}
func (ScaleFactorChanged) isEvent() {}
func (RedrawRequested) isEvent()    {}
func (CloseRequested) isEvent()     {}
func (KeyboardInput) isEvent()      {}
func (MouseInput) isEvent()         {}
func (CursorMoved) isEvent()        {}

func (e Resized) String() string {
	return fmt.Sprintf("Resized(%dx%d)", e.Size.Width, e.Size.Height)
}

func (e ScaleFactorChanged) String() string {
	return fmt.Sprintf("ScaleFactorChanged(%g)", e.ScaleFactor)
}

func (RedrawRequested) String() string { return "RedrawRequested" }
func (CloseRequested) String() string  { return "CloseRequested" }
