package webengine

import (
	"github.com/minnow-browser/minnow/internal/application/port"
	"github.com/minnow-browser/minnow/internal/domain/entity"
)

// engineEvents adapts engine events onto controller handlers. Keeping the
// sink off the WebView itself keeps the controller's exported surface free
// of engine callback methods.
type engineEvents struct {
	wv *WebView
}

var _ port.EventSink = (*engineEvents)(nil)

func (e *engineEvents) LoadStarted()                  { e.wv.handleLoadStarted() }
func (e *engineEvents) LoadCommitted()                {}
func (e *engineEvents) LoadFinished()                 { e.wv.handleLoadFinished() }
func (e *engineEvents) LoadProgress(progress float64) { e.wv.handleLoadProgress(progress) }
func (e *engineEvents) LoadError(err port.LoadError)  { e.wv.handleLoadError(err) }

func (e *engineEvents) ProvisionalRedirect(fromURI, toURI string) {
	if e.wv.OnRedirected != nil {
		e.wv.OnRedirected(fromURI, toURI)
	}
}

func (e *engineEvents) TitleChanged(title string) {
	if e.wv.OnTitleChanged != nil {
		e.wv.OnTitleChanged(title)
	}
}

func (e *engineEvents) URIChanged(uri string) {
	if e.wv.OnURIChanged != nil {
		e.wv.OnURIChanged(uri)
	}
}

func (e *engineEvents) BackForwardChanged(canGoBack, canGoForward bool) {
	if e.wv.OnBackForwardChanged != nil {
		e.wv.OnBackForwardChanged(canGoBack, canGoForward)
	}
}

func (e *engineEvents) FaviconChanged(icon entity.Image) { e.wv.handleFavicon(icon) }

func (e *engineEvents) DecideNavigation(decision port.NavigationDecision) {
	e.wv.decideNavigation(decision)
}

func (e *engineEvents) DecideResponse(decision port.ResponseDecision) {
	e.wv.decideResponse(decision)
}

func (e *engineEvents) DecideCertificate(host string, decision port.CertificateDecision) {
	e.wv.handleCertificateDecision(host, decision)
}

func (e *engineEvents) CertificateChanged(info port.CertificateInfo) {
	e.wv.handleCertificateInfo(info)
}

func (e *engineEvents) ContextMenuRequested(menu port.ContextMenu) {
	e.wv.customizeContextMenu(menu)
}

func (e *engineEvents) ContextMenuSelected(item port.ContextMenuItem) {
	e.wv.contextMenuSelected(item)
}

func (e *engineEvents) NewWindowRequested(uri string) {
	if e.wv.OnNewWindowRequested != nil {
		e.wv.OnNewWindowRequested(uri)
	}
}

func (e *engineEvents) CloseRequested() { e.wv.requestClose() }

func (e *engineEvents) RotatePrepared() {
	if e.wv.OnRotatePrepared != nil {
		e.wv.OnRotatePrepared()
	}
}

func (e *engineEvents) EnterFullscreen() {
	e.wv.fullscreen = true
	if e.wv.OnFullscreenChanged != nil {
		e.wv.OnFullscreenChanged(true)
	}
}

func (e *engineEvents) LeaveFullscreen() {
	e.wv.fullscreen = false
	if e.wv.OnFullscreenChanged != nil {
		e.wv.OnFullscreenChanged(false)
	}
}

func (e *engineEvents) IMEOpened() {
	if e.wv.OnIMEStateChanged != nil {
		e.wv.OnIMEStateChanged(true)
	}
}

func (e *engineEvents) IMEClosed() {
	if e.wv.OnIMEStateChanged != nil {
		e.wv.OnIMEStateChanged(false)
	}
}
