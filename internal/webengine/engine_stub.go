//go:build !webkit_embed

package webengine

import "github.com/minnow-browser/minnow/internal/application/port"

// NewPlatformEngine returns the platform rendering-engine backend. Builds
// without the webkit_embed tag carry no backend and report
// ErrNoEngineBackend; the controllers above remain fully testable against
// fake engines.
func NewPlatformEngine() (port.Engine, error) {
	return nil, ErrNoEngineBackend
}
