package webengine

// loadState is the controller's view of the load lifecycle. The scattered
// boolean flags engines expose (loading, error, suspended) collapse into one
// enum so impossible combinations cannot be represented.
type loadState int

const (
	stateIdle loadState = iota
	stateLoading
	stateSuspended
	stateFinished
	stateError
	stateStopped
)

func (s loadState) String() string {
	switch s {
	case stateLoading:
		return "loading"
	case stateSuspended:
		return "suspended"
	case stateFinished:
		return "finished"
	case stateError:
		return "error"
	case stateStopped:
		return "stopped"
	default:
		return "idle"
	}
}

// loadTracker tracks one view's load lifecycle. Suspension masks the current
// state rather than killing it: the pre-suspend state is restored on resume,
// so a load paused by a certificate handshake continues where it left off.
type loadTracker struct {
	state    loadState
	resumeTo loadState
	progress float64
}

func (t *loadTracker) start() {
	t.state = stateLoading
	t.progress = 0
}

func (t *loadTracker) finish() {
	t.state = stateFinished
	t.progress = 1
}

func (t *loadTracker) fail() {
	t.state = stateError
}

func (t *loadTracker) stop() {
	t.state = stateStopped
}

// reset clears a terminal state before a fresh navigation.
func (t *loadTracker) reset() {
	t.state = stateIdle
	t.progress = 0
}

// suspend masks the current state. Suspending twice keeps the original
// resume target.
func (t *loadTracker) suspend() {
	if t.state == stateSuspended {
		return
	}
	t.resumeTo = t.state
	t.state = stateSuspended
}

// resume restores the pre-suspend state. A no-op unless suspended.
func (t *loadTracker) resume() {
	if t.state != stateSuspended {
		return
	}
	t.state = t.resumeTo
}

// setProgress records load progress. Ignored unless a load is in flight.
func (t *loadTracker) setProgress(p float64) bool {
	if t.state != stateLoading {
		return false
	}
	t.progress = p
	return true
}

func (t *loadTracker) isLoading() bool   { return t.state == stateLoading }
func (t *loadTracker) isSuspended() bool { return t.state == stateSuspended }
func (t *loadTracker) isError() bool     { return t.state == stateError }
