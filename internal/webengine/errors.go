// Package webengine implements the per-tab web view controllers sitting
// between the rendering engine and the browser UI.
package webengine

import "errors"

var (
	// ErrTabNotFound is returned when an operation names an unknown tab.
	ErrTabNotFound = errors.New("webengine: tab not found")

	// ErrNoEngineBackend is returned when no rendering-engine backend was
	// compiled in.
	ErrNoEngineBackend = errors.New("webengine: no engine backend available in this build")
)
