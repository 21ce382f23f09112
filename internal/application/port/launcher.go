package port

import "errors"

// ErrNoHandler is returned by Launcher.ViewContent when no installed
// application claims the content type.
var ErrNoHandler = errors.New("port: no application handles this content")

// EmailRequest is a parsed mailto payload.
type EmailRequest struct {
	URI     string
	Subject string
	Body    string
	CC      []string
	BCC     []string
}

// MessageRequest is a parsed sms payload.
type MessageRequest struct {
	URI     string
	Subject string
	Body    string
}

// ContactRequest carries the datum to seed a new contact with. Exactly one
// field is set.
type ContactRequest struct {
	Phone string
	Email string
}

// Launcher hands URIs the browser cannot render to external applications.
// Implementations live in the platform shell; all calls are fire-and-forget
// except ViewContent, whose ErrNoHandler result the caller routes on.
type Launcher interface {
	OpenStore(uri string) error
	ComposeEmail(req EmailRequest) error
	Dial(req MessageRequest) error
	ComposeMessage(req MessageRequest) error
	// ViewContent asks the platform to open uri with the app registered for
	// mime. Returns ErrNoHandler when nothing claims it.
	ViewContent(uri, mime string) error
	AddContact(req ContactRequest) error
}
