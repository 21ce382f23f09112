package main

import (
	"os/exec"

	"github.com/minnow-browser/minnow/internal/application/port"
)

// platformCollaborators returns the host-side launcher and download
// collaborators. On a desktop host the launcher defers to xdg-open; a real
// mobile shell substitutes its own application-control implementations.
func platformCollaborators() (port.Launcher, port.Download) {
	return &xdgLauncher{}, &noopDownload{}
}

type xdgLauncher struct{}

func (l *xdgLauncher) OpenStore(uri string) error { return l.open(uri) }

func (l *xdgLauncher) ComposeEmail(req port.EmailRequest) error { return l.open(req.URI) }

func (l *xdgLauncher) Dial(req port.MessageRequest) error { return l.open(req.URI) }

func (l *xdgLauncher) ComposeMessage(req port.MessageRequest) error { return l.open(req.URI) }

func (l *xdgLauncher) ViewContent(uri, _ string) error {
	if _, err := exec.LookPath("xdg-open"); err != nil {
		return port.ErrNoHandler
	}
	return l.open(uri)
}

func (l *xdgLauncher) AddContact(_ port.ContactRequest) error {
	// No contact store on a desktop host.
	return port.ErrNoHandler
}

func (l *xdgLauncher) open(uri string) error {
	return exec.Command("xdg-open", uri).Start()
}

// noopDownload accepts download requests and drops them; download management
// belongs to the host shell.
type noopDownload struct{}

func (d *noopDownload) HandleRequest(_, _ string) error { return nil }
