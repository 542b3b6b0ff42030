//go:build !js

package glimpse

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/profile"
)

func init() {
	// glfw must only be called from the main thread
	runtime.LockOSThread()
}

type glfwWindow struct {
	win    *glfw.Window
	events *eventQueue
}

func (g *glfwWindow) Size() Size {
	width, height := g.win.GetFramebufferSize()
	return Size{Width: uint32(max(width, 0)), Height: uint32(max(height, 0))}
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) RequestRedraw() {
	g.events.push(RedrawRequested{})
}

func (g *glfwWindow) Destroy() {
	if g.win != nil {
		g.win.Destroy()
		g.win = nil
	}
}

// EventLoop drives a Handler with the events of the windows it creates.
type EventLoop struct {
	events  eventQueue
	windows []*glfwWindow
	exiting bool
}

func NewEventLoop() *EventLoop {
	return &EventLoop{}
}

func (l *EventLoop) CreateWindow(attrs WindowAttributes) (Window, error) {
	attrs = attrs.withDefaults()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(attrs.Width, attrs.Height, attrs.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &glfwWindow{win: window, events: &l.events}
	l.windows = append(l.windows, w)

	configureCallbacks(window, &l.events)

	// the first resize carries the initial drawable size
	l.events.push(Resized{Size: w.Size()})

	slog.Info("Window created",
		slog.String("title", attrs.Title),
		slog.Int("width", attrs.Width),
		slog.Int("height", attrs.Height),
	)

	return w, nil
}

func (l *EventLoop) Exit() {
	l.exiting = true
}

// Run initializes glfw and dispatches events to the handler until
// Exit is called or the handler returns an error.
func (l *EventLoop) Run(handler Handler) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}

	prof := startProfile()

	defer func() {
		prof.Stop()

		for _, w := range l.windows {
			w.Destroy()
		}

		glfw.Terminate()
	}()

	if err := handler.Resumed(l); err != nil {
		return fmt.Errorf("resume: %w", err)
	}

	dispatch := func(ev Event) error {
		return handler.WindowEvent(l, ev)
	}

	stop := func() bool {
		return l.exiting
	}

	for !l.exiting {
		if l.events.len() > 0 {
			glfw.PollEvents()
		} else {
			// nothing to do until the platform delivers the next event
			glfw.WaitEvents()
		}

		if err := l.events.drain(dispatch, stop); err != nil {
			return err
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

func configureCallbacks(window *glfw.Window, events *eventQueue) {
	window.SetFramebufferSizeCallback(func(_win *glfw.Window, width, height int) {
		events.push(Resized{Size: Size{Width: uint32(max(width, 0)), Height: uint32(max(height, 0))}})
	})

	window.SetContentScaleCallback(func(_win *glfw.Window, x, y float32) {
		events.push(ScaleFactorChanged{ScaleFactor: float64(x)})
	})

	window.SetCloseCallback(func(win *glfw.Window) {
		// closing is decided by the handler
		win.SetShouldClose(false)
		events.push(CloseRequested{})
	})

	window.SetRefreshCallback(func(_win *glfw.Window) {
		events.push(RedrawRequested{})
	})

	window.SetKeyCallback(func(_win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}

		events.push(KeyboardInput{Key: Key(key), Pressed: action == glfw.Press})
	})

	window.SetMouseButtonCallback(func(_win *glfw.Window, btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		events.push(MouseInput{Button: MouseButton(btn), Pressed: action == glfw.Press})
	})

	window.SetCursorPosCallback(func(_win *glfw.Window, xpos float64, ypos float64) {
		events.push(CursorMoved{X: float32(xpos), Y: float32(ypos)})
	})
}

type stopper interface{ Stop() }

type noProfile struct{}

func (noProfile) Stop() {}

// startProfile starts a profile as requested by the PULSE_PROFILE environment variable.
func startProfile() stopper {
	switch strings.ToLower(os.Getenv("PULSE_PROFILE")) {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.NoShutdownHook)
	case "mem":
		return profile.Start(profile.MemProfile, profile.NoShutdownHook)
	default:
		return noProfile{}
	}
}
