package port

import (
	"context"

	"github.com/minnow-browser/minnow/internal/domain/entity"
)

// Engine is the rendering-engine boundary. One Engine process hosts any
// number of views; views sharing an Engine share its web process context
// unless created private.
type Engine interface {
	// CreateView acquires a rendering view. Private views use an ephemeral
	// context that persists nothing.
	CreateView(ctx context.Context, opts ViewOptions) (EngineView, error)
	// Run drives the engine event loop until ctx is cancelled.
	Run(ctx context.Context) error
}

// ViewOptions configures view acquisition.
type ViewOptions struct {
	Private        bool
	CookiePath     string
	CacheModel     CacheModel
	UserAgent      string
	ViewportWidth  int
	ViewportHeight int
}

// CacheModel selects the engine's resource-cache sizing profile.
type CacheModel int

const (
	CacheModelPrimaryBrowser CacheModel = iota
	CacheModelDocumentViewer
)

// Rect is a pixel rectangle in view coordinates.
type Rect struct {
	X, Y, W, H int
}

// FindOptions control in-page text search.
type FindOptions struct {
	CaseInsensitive bool
	Backwards       bool
	WrapAround      bool
	MaxMatches      int
}

// LoadError describes a failed load. Cancelled is set for loads torn down by
// the engine itself (user stop, superseding navigation) rather than failures.
type LoadError struct {
	Code        int
	Description string
	FailingURI  string
	Cancelled   bool
}

// ResponseKind is the engine's own routing verdict for a received response,
// input to the response policy decision.
type ResponseKind int

const (
	ResponseUse ResponseKind = iota
	ResponseDownload
	ResponseIgnore
)

// NavigationDecision pauses a navigation until resolved. Exactly one of Use
// or Ignore must be called.
type NavigationDecision interface {
	URI() string
	Use()
	Ignore()
}

// ResponseDecision pauses a received response until resolved.
type ResponseDecision interface {
	URI() string
	Kind() ResponseKind
	MIMEType() string
	// ContentDisposition returns the response header value, empty if absent.
	ContentDisposition() string
	Use()
	Ignore()
}

// CertificateDecision pauses a TLS handshake with an untrusted certificate.
// Suspend defers resolution; a suspended decision stays resolvable until the
// owning view is destroyed.
type CertificateDecision interface {
	// PEM is the offending certificate chain, PEM-encoded.
	PEM() string
	// PinnedKeyPresent reports whether the engine could extract a public key
	// to pin. Without one the handshake cannot be made trustworthy.
	PinnedKeyPresent() bool
	Allow()
	Deny()
	Suspend()
}

// CertificateInfo reports the certificate of a committed connection.
type CertificateInfo struct {
	PEM    string
	Secure bool
}

// MenuAction tags a context-menu item with the engine capability it invokes.
// Curated items added by the controller use the Custom* range.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionOpenLinkInNewWindow
	MenuActionCopyLinkToClipboard
	MenuActionDownloadLinkToDisk
	MenuActionOpenImageInCurrentWindow
	MenuActionCopyImageToClipboard
	MenuActionDownloadImageToDisk
	MenuActionCopy
	MenuActionSelectAll
	MenuActionShare
	MenuActionSearchWeb
	MenuActionTextSelectionMode
	MenuActionClipboard
)

// Curated actions appended by the controller.
const (
	MenuActionCustomSendEmail MenuAction = iota + 1000
	MenuActionCustomSendMessage
	MenuActionCustomCall
	MenuActionCustomAddToContact
	MenuActionCustomFindOnPage
)

// ContextMenuItem is one entry of an engine-proposed context menu.
type ContextMenuItem interface {
	Action() MenuAction
	Title() string
	// LinkURI is the link target under the cursor, empty when there is none.
	LinkURI() string
	// ImageURI is the image source under the cursor, empty when there is none.
	ImageURI() string
}

// ContextMenu is a mutable engine context menu, alive only for the duration
// of the customization callback.
type ContextMenu interface {
	Items() []ContextMenuItem
	// Clear discards every proposed item.
	Clear()
	// AppendItem adds a curated item with the given action tag and title.
	// linkURI carries the payload curated selection handlers need.
	AppendItem(action MenuAction, title, linkURI string)
}

// EventSink receives every engine event for one view. The engine invokes all
// methods on its event-loop goroutine; implementations must not block.
type EventSink interface {
	LoadStarted()
	LoadCommitted()
	LoadFinished()
	LoadProgress(progress float64)
	LoadError(err LoadError)
	ProvisionalRedirect(fromURI, toURI string)

	TitleChanged(title string)
	URIChanged(uri string)
	BackForwardChanged(canGoBack, canGoForward bool)
	FaviconChanged(icon entity.Image)

	DecideNavigation(decision NavigationDecision)
	DecideResponse(decision ResponseDecision)
	DecideCertificate(host string, decision CertificateDecision)
	CertificateChanged(info CertificateInfo)

	ContextMenuRequested(menu ContextMenu)
	ContextMenuSelected(item ContextMenuItem)

	NewWindowRequested(uri string)
	CloseRequested()
	RotatePrepared()
	EnterFullscreen()
	LeaveFullscreen()
	IMEOpened()
	IMEClosed()
}

// EngineView is one acquired rendering view. All methods must be called from
// the goroutine running the engine event loop.
type EngineView interface {
	// SetEventSink subscribes sink to the view's events. Passing nil
	// unsubscribes.
	SetEventSink(sink EventSink)
	// Release destroys the view. Any pending decisions become invalid.
	Release()

	LoadURI(uri string)
	Reload()
	StopLoading()
	GoBack()
	GoForward()
	CanGoBack() bool
	CanGoForward() bool

	URI() string
	Title() string
	EstimatedProgress() float64

	Suspend()
	Resume()

	UserAgent() string
	SetUserAgent(ua string)

	Zoom() float64
	SetZoom(zoom float64)

	Focus()
	HasFocus() bool
	ClearFocus()
	ScrollBy(dx, dy int)

	ViewportSize() (w, h int)
	// ScaleRange reports the minimum and maximum snapshot scale the engine
	// supports.
	ScaleRange() (min, max float64)
	// Snapshot renders area at scale and returns the bitmap synchronously.
	Snapshot(area Rect, scale float64) (entity.Image, error)
	// SnapshotAsync renders area at scale and delivers the bitmap to done on
	// the engine event loop. A failed render delivers an empty image.
	SnapshotAsync(area Rect, scale float64, done func(entity.Image))

	FindText(text string, opts FindOptions)
	StopFindText()
	SelectedText() string
	ClearTextSelection()
	ExitFullscreen()
	NotifyOrientation(degrees int)

	ClearCache()
	ClearCookies()
	ClearFormData()
	ClearPasswordData()
	ClearPrivateData()
}
