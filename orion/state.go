package orion

//go:generate go tool stringer -type=State -trimprefix=State

// State is the lifecycle state of a RunLoop.
type State int

const (
	// StateUninitialized is the initial state, no window exists yet.
	StateUninitialized State = iota

	// StateWindowed waits for the first window event to create the graphics context.
	StateWindowed

	StateRendering

	// StateTerminated is reached after the window was closed.
	StateTerminated
)
