package orion

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverbestmann/wgpuboilerplate/glimpse"
)

// Graphics is the gpu context driven by the RunLoop.
type Graphics interface {
	// Window returns the window the graphics context was created for.
	Window() glimpse.Window

	// Event gives the context the chance to handle an event first.
	// Returns true if the default handling should be skipped.
	Event(ev glimpse.Event) bool

	Resize(size glimpse.Size)
	Scale(factor float64)

	Update(dt time.Duration)
	Render() error

	Release()
}

// NewGraphics creates a graphics context, taking ownership of the window.
type NewGraphics func(window glimpse.Window) (Graphics, error)

// phase is the state specific data of the RunLoop
type phase interface {
	state() State
}

type windowed struct {
	window glimpse.Window
}

type rendering struct {
	graphics Graphics
}

type terminated struct{}

func (windowed) state() State   { return StateWindowed }
func (rendering) state() State  { return StateRendering }
func (terminated) state() State { return StateTerminated }

// RunLoop translates window events into calls on the graphics context.
// It creates the graphics context lazily, once the window delivers its
// first event and reports a size to render at.
type RunLoop struct {
	attrs       glimpse.WindowAttributes
	newGraphics NewGraphics
	now         func() time.Time

	// nil until the window was created
	phase phase

	times FrameTimes
}

var _ glimpse.Handler = (*RunLoop)(nil)

func NewRunLoop(opts Options) *RunLoop {
	opts = opts.withDefaults()

	return &RunLoop{
		attrs: glimpse.WindowAttributes{
			Title:  opts.WindowTitle,
			Width:  opts.WindowWidth,
			Height: opts.WindowHeight,
		},
		newGraphics: opts.NewGraphics,
		now:         opts.Clock,
		times:       NewFrameTimes(opts.Clock()),
	}
}

func (l *RunLoop) State() State {
	if l.phase == nil {
		return StateUninitialized
	}

	return l.phase.state()
}

// FrameTimes returns the frame statistics.
func (l *RunLoop) FrameTimes() FrameTimes {
	return l.times
}

func (l *RunLoop) Resumed(ctl glimpse.Control) error {
	if l.phase != nil {
		slog.Debug("Ignore resume", slog.String("state", l.State().String()))
		return nil
	}

	window, err := ctl.CreateWindow(l.attrs)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	l.transition(windowed{window: window})

	return nil
}

func (l *RunLoop) AboutToWait(ctl glimpse.Control) error {
	switch p := l.phase.(type) {
	case windowed:
		// a window without size (e.g. minimized) wakes us with a resize
		if !p.window.Size().Empty() {
			p.window.RequestRedraw()
		}

	case rendering:
		p.graphics.Window().RequestRedraw()
	}

	return nil
}

func (l *RunLoop) WindowEvent(ctl glimpse.Control, ev glimpse.Event) error {
	switch p := l.phase.(type) {
	case windowed:
		if _, ok := ev.(glimpse.CloseRequested); ok {
			p.window.Destroy()
			l.exit(ctl)
			return nil
		}

		return l.createGraphics(p.window)

	case rendering:
		if p.graphics.Event(ev) {
			return nil
		}

		switch ev := ev.(type) {
		case glimpse.CloseRequested:
			p.graphics.Release()
			p.graphics.Window().Destroy()
			l.exit(ctl)

		case glimpse.Resized:
			p.graphics.Resize(ev.Size)

		case glimpse.ScaleFactorChanged:
			p.graphics.Scale(ev.ScaleFactor)

		case glimpse.RedrawRequested:
			return l.redraw(p.graphics)
		}
	}

	return nil
}

func (l *RunLoop) createGraphics(window glimpse.Window) error {
	size := window.Size()
	if size.Empty() {
		slog.Debug("Defer graphics context, window has no size yet")
		return nil
	}

	// the window is owned by the graphics context from now on
	graphics, err := l.newGraphics(window)
	if err != nil {
		l.transition(terminated{})
		return fmt.Errorf("create graphics context: %w", err)
	}

	l.transition(rendering{graphics: graphics})

	return nil
}

func (l *RunLoop) redraw(graphics Graphics) error {
	dt := l.times.Tick(l.now())

	if l.times.FrameCount%600 == 0 {
		slog.Debug("Frame stats",
			slog.Uint64("frames", l.times.FrameCount),
			slog.Float64("fps", l.times.FPS()),
			slog.Duration("max", l.times.MaxDuration),
		)
	}

	graphics.Update(dt)

	if err := graphics.Render(); err != nil {
		graphics.Release()
		l.transition(terminated{})
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

func (l *RunLoop) exit(ctl glimpse.Control) {
	l.transition(terminated{})
	ctl.Exit()
}

func (l *RunLoop) transition(next phase) {
	slog.Info("RunLoop state changed",
		slog.String("from", l.State().String()),
		slog.String("to", next.state().String()),
	)

	l.phase = next
}
