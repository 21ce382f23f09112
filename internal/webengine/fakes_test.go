package webengine

import (
	"context"

	"github.com/minnow-browser/minnow/internal/application/port"
	"github.com/minnow-browser/minnow/internal/domain/entity"
)

// fakeEngine hands out fakeViews and remembers the last options used.
type fakeEngine struct {
	views    []*fakeView
	lastOpts port.ViewOptions
	failNext error
}

func (e *fakeEngine) CreateView(_ context.Context, opts port.ViewOptions) (port.EngineView, error) {
	if e.failNext != nil {
		err := e.failNext
		e.failNext = nil
		return nil, err
	}
	e.lastOpts = opts
	v := &fakeView{
		userAgent: opts.UserAgent,
		zoom:      1.0,
		scaleMin:  0.1,
		scaleMax:  4.0,
		vw:        720,
		vh:        1280,
	}
	e.views = append(e.views, v)
	return v, nil
}

func (e *fakeEngine) Run(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

// fakeView records every engine-view interaction.
type fakeView struct {
	sink port.EventSink

	uri          string
	title        string
	userAgent    string
	zoom         float64
	scaleMin     float64
	scaleMax     float64
	vw, vh       int
	canBack      bool
	canForward   bool
	focused      bool
	selectedText string

	released      bool
	suspends      int
	resumes       int
	loads         []string
	reloads       int
	stops         int
	backs         int
	forwards      int
	scrolls       [][2]int
	findCalls     []string
	findStops     int
	cleared       []string
	fullscreenOut int
	orientations  []int

	snapshotArea  port.Rect
	snapshotScale float64
	snapshotImage entity.Image
	snapshotErr   error
	asyncDone     func(entity.Image)
}

func (v *fakeView) SetEventSink(sink port.EventSink) { v.sink = sink }
func (v *fakeView) Release()                         { v.released = true }

func (v *fakeView) LoadURI(uri string) { v.loads = append(v.loads, uri); v.uri = uri }
func (v *fakeView) Reload()            { v.reloads++ }
func (v *fakeView) StopLoading()       { v.stops++ }
func (v *fakeView) GoBack()            { v.backs++ }
func (v *fakeView) GoForward()         { v.forwards++ }
func (v *fakeView) CanGoBack() bool    { return v.canBack }
func (v *fakeView) CanGoForward() bool { return v.canForward }

func (v *fakeView) URI() string                { return v.uri }
func (v *fakeView) Title() string              { return v.title }
func (v *fakeView) EstimatedProgress() float64 { return 0 }

func (v *fakeView) Suspend() { v.suspends++ }
func (v *fakeView) Resume()  { v.resumes++ }

func (v *fakeView) UserAgent() string      { return v.userAgent }
func (v *fakeView) SetUserAgent(ua string) { v.userAgent = ua }

func (v *fakeView) Zoom() float64        { return v.zoom }
func (v *fakeView) SetZoom(zoom float64) { v.zoom = zoom }

func (v *fakeView) Focus()         { v.focused = true }
func (v *fakeView) HasFocus() bool { return v.focused }
func (v *fakeView) ClearFocus()    { v.focused = false }
func (v *fakeView) ScrollBy(dx, dy int) {
	v.scrolls = append(v.scrolls, [2]int{dx, dy})
}

func (v *fakeView) ViewportSize() (int, int)       { return v.vw, v.vh }
func (v *fakeView) ScaleRange() (float64, float64) { return v.scaleMin, v.scaleMax }

func (v *fakeView) Snapshot(area port.Rect, scale float64) (entity.Image, error) {
	v.snapshotArea = area
	v.snapshotScale = scale
	return v.snapshotImage, v.snapshotErr
}

func (v *fakeView) SnapshotAsync(area port.Rect, scale float64, done func(entity.Image)) {
	v.snapshotArea = area
	v.snapshotScale = scale
	v.asyncDone = done
}

func (v *fakeView) FindText(text string, _ port.FindOptions) {
	v.findCalls = append(v.findCalls, text)
}
func (v *fakeView) StopFindText()        { v.findStops++ }
func (v *fakeView) SelectedText() string { return v.selectedText }
func (v *fakeView) ClearTextSelection()  { v.selectedText = "" }
func (v *fakeView) ExitFullscreen()      { v.fullscreenOut++ }
func (v *fakeView) NotifyOrientation(degrees int) {
	v.orientations = append(v.orientations, degrees)
}

func (v *fakeView) ClearCache()        { v.cleared = append(v.cleared, "cache") }
func (v *fakeView) ClearCookies()      { v.cleared = append(v.cleared, "cookies") }
func (v *fakeView) ClearFormData()     { v.cleared = append(v.cleared, "form") }
func (v *fakeView) ClearPasswordData() { v.cleared = append(v.cleared, "password") }
func (v *fakeView) ClearPrivateData()  { v.cleared = append(v.cleared, "private") }

// fakeLauncher records launcher calls.
type fakeLauncher struct {
	stores    []string
	emails    []port.EmailRequest
	dials     []port.MessageRequest
	messages  []port.MessageRequest
	viewed    []string
	contacts  []port.ContactRequest
	viewErr   error
	launchErr error
}

func (l *fakeLauncher) OpenStore(uri string) error {
	l.stores = append(l.stores, uri)
	return l.launchErr
}

func (l *fakeLauncher) ComposeEmail(req port.EmailRequest) error {
	l.emails = append(l.emails, req)
	return l.launchErr
}

func (l *fakeLauncher) Dial(req port.MessageRequest) error {
	l.dials = append(l.dials, req)
	return l.launchErr
}

func (l *fakeLauncher) ComposeMessage(req port.MessageRequest) error {
	l.messages = append(l.messages, req)
	return l.launchErr
}

func (l *fakeLauncher) ViewContent(uri, _ string) error {
	l.viewed = append(l.viewed, uri)
	return l.viewErr
}

func (l *fakeLauncher) AddContact(req port.ContactRequest) error {
	l.contacts = append(l.contacts, req)
	return l.launchErr
}

// fakeDownload records download hand-offs.
type fakeDownload struct {
	requests [][2]string
	err      error
}

func (d *fakeDownload) HandleRequest(uri, mime string) error {
	d.requests = append(d.requests, [2]string{uri, mime})
	return d.err
}

// fakeNavDecision is a navigation policy handle.
type fakeNavDecision struct {
	uri     string
	used    bool
	ignored bool
}

func (d *fakeNavDecision) URI() string { return d.uri }
func (d *fakeNavDecision) Use()        { d.used = true }
func (d *fakeNavDecision) Ignore()     { d.ignored = true }

// fakeRespDecision is a response policy handle.
type fakeRespDecision struct {
	uri         string
	kind        port.ResponseKind
	mime        string
	disposition string
	used        bool
	ignored     bool
}

func (d *fakeRespDecision) URI() string                { return d.uri }
func (d *fakeRespDecision) Kind() port.ResponseKind    { return d.kind }
func (d *fakeRespDecision) MIMEType() string           { return d.mime }
func (d *fakeRespDecision) ContentDisposition() string { return d.disposition }
func (d *fakeRespDecision) Use()                       { d.used = true }
func (d *fakeRespDecision) Ignore()                    { d.ignored = true }

// fakeCertDecision is a certificate decision handle.
type fakeCertDecision struct {
	pem       string
	pinned    bool
	allowed   bool
	denied    bool
	suspended bool
}

func (d *fakeCertDecision) PEM() string            { return d.pem }
func (d *fakeCertDecision) PinnedKeyPresent() bool { return d.pinned }
func (d *fakeCertDecision) Allow()                 { d.allowed = true }
func (d *fakeCertDecision) Deny()                  { d.denied = true }
func (d *fakeCertDecision) Suspend()               { d.suspended = true }

// fakeMenuItem is one proposed or curated menu entry.
type fakeMenuItem struct {
	action port.MenuAction
	title  string
	link   string
	image  string
}

func (i fakeMenuItem) Action() port.MenuAction { return i.action }
func (i fakeMenuItem) Title() string           { return i.title }
func (i fakeMenuItem) LinkURI() string         { return i.link }
func (i fakeMenuItem) ImageURI() string        { return i.image }

// fakeMenu is a mutable context menu.
type fakeMenu struct {
	items   []port.ContextMenuItem
	cleared bool
}

func (m *fakeMenu) Items() []port.ContextMenuItem { return m.items }

func (m *fakeMenu) Clear() {
	m.cleared = true
	m.items = nil
}

func (m *fakeMenu) AppendItem(action port.MenuAction, title, linkURI string) {
	m.items = append(m.items, fakeMenuItem{action: action, title: title, link: linkURI})
}

// newTestWebView builds a controller on fakes with a quiet logger.
func newTestWebView(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, opts Options, deps Deps) (*WebView, *fakeView) {
	t.Helper()

	engine := &fakeEngine{}
	if deps.Launcher == nil {
		deps.Launcher = &fakeLauncher{}
	}
	if deps.Download == nil {
		deps.Download = &fakeDownload{}
	}
	if opts.UserAgentMobile == "" {
		opts.UserAgentMobile = "mobile-ua"
	}
	if opts.UserAgentDesktop == "" {
		opts.UserAgentDesktop = "desktop-ua"
	}
	if opts.ThumbnailWidth == 0 {
		opts.ThumbnailWidth = 360
	}
	if opts.ThumbnailHeight == 0 {
		opts.ThumbnailHeight = 270
	}

	wv, err := NewWebView(context.Background(), engine, entity.TabID(1), opts, deps)
	if err != nil {
		t.Fatalf("NewWebView: %v", err)
	}
	return wv, engine.views[0]
}
