//go:build js

package glimpse

import (
	"log/slog"
	"syscall/js"

	"github.com/cogentcore/webgpu/wgpu"
)

type jsWindow struct {
	canvas js.Value
	loop   *EventLoop

	redrawPending bool
	onFrame       js.Func
	onResize      js.Func
}

func (g *jsWindow) Size() Size {
	return viewportSize()
}

func (g *jsWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{Canvas: g.canvas}
}

// RequestRedraw emits a RedrawRequested event with the next animation frame.
func (g *jsWindow) RequestRedraw() {
	if g.redrawPending {
		return
	}

	g.redrawPending = true
	js.Global().Call("requestAnimationFrame", g.onFrame)
}

func (g *jsWindow) Destroy() {
	js.Global().Call("removeEventListener", "resize", g.onResize)
	g.onResize.Release()
	g.onFrame.Release()
	g.canvas.Call("remove")
}

type EventLoop struct {
	events  chan Event
	exiting bool
}

func NewEventLoop() *EventLoop {
	return &EventLoop{events: make(chan Event, 64)}
}

// CreateWindow creates a new canvas and attaches it to the document body.
func (l *EventLoop) CreateWindow(attrs WindowAttributes) (Window, error) {
	document := js.Global().Get("document")
	canvas := document.Call("createElement", "canvas")
	document.Get("body").Call("appendChild", canvas)

	document.Set("title", attrs.Title)

	canvas.Set("style", "width:100vw; height:100vh")

	win := &jsWindow{canvas: canvas, loop: l}

	win.onFrame = js.FuncOf(func(this js.Value, args []js.Value) any {
		win.redrawPending = false
		l.events <- RedrawRequested{}
		return nil
	})

	win.onResize = js.FuncOf(func(this js.Value, args []js.Value) any {
		size := resizeCanvas(canvas)
		l.events <- Resized{Size: size}
		return nil
	})

	js.Global().Call("addEventListener", "resize", win.onResize)

	size := resizeCanvas(canvas)
	l.events <- Resized{Size: size}

	slog.Info("Canvas created",
		slog.String("title", attrs.Title),
		slog.Int("width", int(size.Width)),
		slog.Int("height", int(size.Height)),
	)

	return win, nil
}

func (l *EventLoop) Exit() {
	l.exiting = true
}

// Run dispatches events to the handler. Browser callbacks only enqueue events,
// all handler calls happen on the goroutine calling Run.
func (l *EventLoop) Run(handler Handler) error {
	if err := handler.Resumed(l); err != nil {
		return err
	}

	for !l.exiting {
		// block until the next event arrives
		ev := <-l.events
		if err := handler.WindowEvent(l, ev); err != nil {
			return err
		}

		// dispatch everything else that is pending before going idle
	pending:
		for !l.exiting {
			select {
			case ev := <-l.events:
				if err := handler.WindowEvent(l, ev); err != nil {
					return err
				}
			default:
				break pending
			}
		}

		if l.exiting {
			break
		}

		if err := handler.AboutToWait(l); err != nil {
			return err
		}
	}

	return nil
}

func viewportSize() Size {
	ratio := js.Global().Get("devicePixelRatio").Float()

	vv := js.Global().Get("visualViewport")
	width := vv.Get("width").Float()
	height := vv.Get("height").Float()

	return Size{
		Width:  uint32(width * ratio),
		Height: uint32(height * ratio),
	}
}

func resizeCanvas(canvas js.Value) Size {
	size := viewportSize()

	canvas.Set("width", size.Width)
	canvas.Set("height", size.Height)

	return size
}
