package webengine

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/minnow-browser/minnow/internal/application/port"
	"github.com/minnow-browser/minnow/internal/domain/entity"
	"github.com/minnow-browser/minnow/internal/logging"
)

// Options configures one web view controller.
type Options struct {
	Origin      entity.TabOrigin
	Private     bool
	DesktopMode bool

	CookiePath string
	CacheModel port.CacheModel

	UserAgentMobile  string
	UserAgentDesktop string

	ThumbnailWidth  int
	ThumbnailHeight int
}

// Deps are the external collaborators a controller hands work to.
type Deps struct {
	Launcher port.Launcher
	Download port.Download
}

// WebView owns one tab's rendering view and mediates between the engine and
// the UI. All methods and callbacks run on the engine event-loop goroutine;
// the struct holds no locks.
//
// UI callbacks are exported fields in the engine-adapter style: nil fields
// are skipped.
type WebView struct {
	id     entity.TabID
	origin entity.TabOrigin
	view   port.EngineView

	dispatcher *Dispatcher
	launcher   port.Launcher
	download   port.Download

	tracker    loadTracker
	loadingURL string
	desktop    bool
	private    bool
	fullscreen bool
	destroyed  bool

	favicon   entity.Image
	thumbnail entity.Image

	uaMobile  string
	uaDesktop string
	thumbW    int
	thumbH    int

	confirmationSeq uint64
	pending         map[entity.ConfirmationID]pendingConfirmation

	ctx    context.Context
	logger zerolog.Logger

	// Load lifecycle
	OnLoadStarted  func()
	OnLoadFinished func()
	OnLoadProgress func(progress float64)
	OnLoadError    func()
	OnLoadStopped  func()
	OnRedirected   func(fromURI, toURI string)

	// Document state
	OnTitleChanged       func(title string)
	OnURIChanged         func(uri string)
	OnBackForwardChanged func(canGoBack, canGoForward bool)
	OnFaviconChanged     func(icon entity.Image)

	// Trust
	OnConfirmationRequested func(c *entity.CertificateConfirmation)
	OnUnsecureConnection    func()
	OnCertificatePEM        func(domain, pem string)
	OnWrongCertificatePEM   func(domain, pem string)

	// Presentation
	OnFullscreenChanged func(enabled bool)
	OnIMEStateChanged   func(open bool)
	OnRotatePrepared    func()
	OnSnapshotCaptured  func(img entity.Image, cause entity.SnapshotCause)
	OnFindOnPage        func(text string)

	// Window management
	OnCloseRequested     func()
	OnNewWindowRequested func(uri string)
}

// NewWebView acquires a rendering view from engine and wires it to a new
// controller for tab id.
func NewWebView(ctx context.Context, engine port.Engine, id entity.TabID, opts Options, deps Deps) (*WebView, error) {
	ua := opts.UserAgentMobile
	if opts.DesktopMode {
		ua = opts.UserAgentDesktop
	}

	view, err := engine.CreateView(ctx, port.ViewOptions{
		Private:    opts.Private,
		CookiePath: opts.CookiePath,
		CacheModel: opts.CacheModel,
		UserAgent:  ua,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine view: %w", err)
	}

	ctx = logging.WithTabID(logging.WithComponent(ctx, "webview"), id.String())

	wv := &WebView{
		id:         id,
		origin:     opts.Origin,
		view:       view,
		dispatcher: NewDispatcher(deps.Launcher),
		launcher:   deps.Launcher,
		download:   deps.Download,
		desktop:    opts.DesktopMode,
		private:    opts.Private,
		uaMobile:   opts.UserAgentMobile,
		uaDesktop:  opts.UserAgentDesktop,
		thumbW:     opts.ThumbnailWidth,
		thumbH:     opts.ThumbnailHeight,
		pending:    make(map[entity.ConfirmationID]pendingConfirmation),
		ctx:        ctx,
		logger:     *logging.FromContext(ctx),
	}

	view.SetEventSink(&engineEvents{wv: wv})

	wv.logger.Debug().Bool("private", opts.Private).Msg("webview created")
	return wv, nil
}

// Destroy rejects any outstanding certificate confirmations, unsubscribes
// from the engine and releases the view. Safe to call once; later calls are
// no-ops.
func (wv *WebView) Destroy() {
	if wv.destroyed {
		return
	}
	wv.destroyed = true

	wv.rejectPendingConfirmations()
	wv.view.SetEventSink(nil)
	wv.view.Release()

	wv.logger.Debug().Msg("webview destroyed")
}

// TabID returns the tab this controller owns.
func (wv *WebView) TabID() entity.TabID { return wv.id }

// Origin returns where the tab came from.
func (wv *WebView) Origin() entity.TabOrigin { return wv.origin }

// IsPrivate reports whether the view uses an ephemeral context.
func (wv *WebView) IsPrivate() bool { return wv.private }

// IsDestroyed reports whether Destroy has run.
func (wv *WebView) IsDestroyed() bool { return wv.destroyed }

// SetURI starts loading uri, clearing the stale favicon and any previous
// load error.
func (wv *WebView) SetURI(uri string) {
	wv.favicon = entity.Image{}
	wv.tracker.reset()
	wv.loadingURL = uri
	wv.view.LoadURI(uri)
}

// URI returns the view's current URI.
func (wv *WebView) URI() string { return wv.view.URI() }

// Title returns the view's current document title.
func (wv *WebView) Title() string { return wv.view.Title() }

// Reload reloads the current page. A view sitting on an error page loads its
// URI from scratch instead, so the engine does not re-render the error.
func (wv *WebView) Reload() {
	if wv.tracker.isError() {
		wv.tracker.reset()
		wv.SetURI(wv.view.URI())
		return
	}
	wv.tracker.reset()
	wv.view.Reload()
}

// Back navigates one entry back in the view's history, if there is one.
func (wv *WebView) Back() {
	if !wv.view.CanGoBack() {
		return
	}
	wv.tracker.reset()
	wv.view.GoBack()
}

// Forward navigates one entry forward in the view's history, if there is one.
func (wv *WebView) Forward() {
	if !wv.view.CanGoForward() {
		return
	}
	wv.tracker.reset()
	wv.view.GoForward()
}

// IsBackEnabled reports whether back history exists.
func (wv *WebView) IsBackEnabled() bool { return wv.view.CanGoBack() }

// IsForwardEnabled reports whether forward history exists.
func (wv *WebView) IsForwardEnabled() bool { return wv.view.CanGoForward() }

// Stop aborts the current load and reports a normalized stop.
func (wv *WebView) Stop() {
	wv.tracker.stop()
	wv.view.StopLoading()
	wv.emitLoadStopped()
}

// IsLoading reports whether a load is in flight. Never true while the view
// is suspended.
func (wv *WebView) IsLoading() bool { return wv.tracker.isLoading() }

// IsLoadError reports whether the last load failed.
func (wv *WebView) IsLoadError() bool { return wv.tracker.isError() }

// LoadProgress returns the last observed load progress.
func (wv *WebView) LoadProgress() float64 { return wv.tracker.progress }

// Suspend pauses the view. The load state is masked, not killed; Resume
// restores it.
func (wv *WebView) Suspend() {
	wv.tracker.suspend()
	wv.view.Suspend()
}

// Resume unpauses the view and restores the masked load state.
func (wv *WebView) Resume() {
	wv.view.Resume()
	wv.tracker.resume()
}

// IsSuspended reports whether the view is paused.
func (wv *WebView) IsSuspended() bool { return wv.tracker.isSuspended() }

// Search finds text on the page. An empty text clears the current search.
func (wv *WebView) Search(text string, opts port.FindOptions) {
	if text == "" {
		wv.view.StopFindText()
		return
	}
	wv.view.FindText(text, opts)
}

// UserAgent returns the view's current user agent string.
func (wv *WebView) UserAgent() string { return wv.view.UserAgent() }

// SetUserAgent overrides the view's user agent string.
func (wv *WebView) SetUserAgent(ua string) { wv.view.SetUserAgent(ua) }

// IsDesktopMode reports whether the desktop user agent is active.
func (wv *WebView) IsDesktopMode() bool { return wv.desktop }

// SetDesktopMode switches between the desktop and mobile user agents.
func (wv *WebView) SetDesktopMode(desktop bool) {
	wv.desktop = desktop
	if desktop {
		wv.view.SetUserAgent(wv.uaDesktop)
	} else {
		wv.view.SetUserAgent(wv.uaMobile)
	}
}

// Zoom returns the current page zoom factor.
func (wv *WebView) Zoom() float64 { return wv.view.Zoom() }

// SetZoom sets the page zoom factor if it differs from the current one.
func (wv *WebView) SetZoom(zoom float64) {
	if zoom != wv.view.Zoom() {
		wv.view.SetZoom(zoom)
	}
}

// SetFocus gives the view input focus.
func (wv *WebView) SetFocus() { wv.view.Focus() }

// HasFocus reports whether the view has input focus.
func (wv *WebView) HasFocus() bool { return wv.view.HasFocus() }

// ClearFocus removes input focus from the view.
func (wv *WebView) ClearFocus() { wv.view.ClearFocus() }

// ScrollBy scrolls the page content by the given delta.
func (wv *WebView) ScrollBy(dx, dy int) { wv.view.ScrollBy(dx, dy) }

// ClearTextSelection drops the current text selection.
func (wv *WebView) ClearTextSelection() { wv.view.ClearTextSelection() }

// ExitFullscreen leaves HTML fullscreen mode.
func (wv *WebView) ExitFullscreen() { wv.view.ExitFullscreen() }

// IsFullscreen reports whether the page is in HTML fullscreen mode.
func (wv *WebView) IsFullscreen() bool { return wv.fullscreen }

// NotifyOrientation forwards a device rotation to the engine.
func (wv *WebView) NotifyOrientation(degrees int) { wv.view.NotifyOrientation(degrees) }

// ClearCache drops the engine's resource cache.
func (wv *WebView) ClearCache() { wv.view.ClearCache() }

// ClearCookies drops all cookies.
func (wv *WebView) ClearCookies() { wv.view.ClearCookies() }

// ClearFormData drops remembered form input.
func (wv *WebView) ClearFormData() { wv.view.ClearFormData() }

// ClearPasswordData drops remembered passwords.
func (wv *WebView) ClearPasswordData() { wv.view.ClearPasswordData() }

// ClearPrivateData drops all site data.
func (wv *WebView) ClearPrivateData() { wv.view.ClearPrivateData() }

// Favicon returns the last favicon the engine reported for this tab.
func (wv *WebView) Favicon() entity.Image { return wv.favicon }

// Thumbnail returns the last post-load snapshot of this tab.
func (wv *WebView) Thumbnail() entity.Image { return wv.thumbnail }

// Content returns the tab-switcher summary of this tab.
func (wv *WebView) Content() entity.TabContent {
	return entity.TabContent{
		ID:        wv.id,
		URI:       wv.view.URI(),
		Title:     wv.view.Title(),
		Origin:    wv.origin,
		Thumbnail: wv.thumbnail,
		Favicon:   wv.favicon,
		Private:   wv.private,
	}
}

// Load lifecycle handlers, invoked by the event sink.

func (wv *WebView) handleLoadStarted() {
	wv.tracker.start()
	if wv.OnLoadStarted != nil {
		wv.OnLoadStarted()
	}
}

func (wv *WebView) handleLoadFinished() {
	wv.tracker.finish()
	if wv.OnLoadFinished != nil {
		wv.OnLoadFinished()
	}
	if wv.OnLoadProgress != nil {
		wv.OnLoadProgress(1)
	}
	wv.CaptureSnapshotAsync(wv.thumbW, wv.thumbH, entity.SnapshotPostLoad)
}

func (wv *WebView) handleLoadProgress(progress float64) {
	if !wv.tracker.setProgress(progress) {
		return
	}
	if wv.OnLoadProgress != nil {
		wv.OnLoadProgress(progress)
	}
}

// handleLoadError normalizes engine-cancelled loads into stops; only real
// failures flip the error state.
func (wv *WebView) handleLoadError(err port.LoadError) {
	if err.Cancelled {
		wv.logger.Debug().Str("uri", err.FailingURI).Msg("load cancelled, emitting stop")
		wv.tracker.stop()
		wv.emitLoadStopped()
		return
	}

	wv.logger.Warn().
		Int("code", err.Code).
		Str("uri", err.FailingURI).
		Str("description", err.Description).
		Msg("load failed")
	wv.tracker.fail()
	if wv.OnLoadError != nil {
		wv.OnLoadError()
	}
}

func (wv *WebView) emitLoadStopped() {
	if wv.OnLoadStopped != nil {
		wv.OnLoadStopped()
	}
}

func (wv *WebView) handleFavicon(icon entity.Image) {
	wv.favicon = icon
	if wv.OnFaviconChanged != nil {
		wv.OnFaviconChanged(icon)
	}
}

func (wv *WebView) requestClose() {
	if wv.OnCloseRequested != nil {
		wv.OnCloseRequested()
	}
}
