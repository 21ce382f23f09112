package webengine

import (
	"errors"
	"strings"

	"github.com/minnow-browser/minnow/internal/application/port"
)

// decideNavigation resolves a navigation policy request. URIs claimed by the
// scheme dispatcher are ignored; if the claiming tab has no history of its
// own it existed only to relay the URI, so its closure is requested.
func (wv *WebView) decideNavigation(decision port.NavigationDecision) {
	uri := decision.URI()
	wv.loadingURL = uri

	if wv.dispatcher.Handle(wv.ctx, uri) {
		wv.logger.Debug().Str("uri", uri).Msg("scheme handled externally")
		decision.Ignore()
		if !wv.view.CanGoBack() {
			wv.requestClose()
		}
		return
	}
	decision.Use()
}

// decideResponse resolves a response policy request. Render-able responses
// proceed; the rest route to the download manager or an external viewer. All
// non-render branches end in Ignore.
func (wv *WebView) decideResponse(decision port.ResponseDecision) {
	switch decision.Kind() {
	case port.ResponseUse:
		decision.Use()

	case port.ResponseDownload:
		uri := decision.URI()
		mime := decision.MIMEType()

		if strings.Contains(decision.ContentDisposition(), "attachment") {
			wv.handleDownload(uri, mime)
			decision.Ignore()
			return
		}

		if err := wv.launcher.ViewContent(uri, mime); err != nil {
			if errors.Is(err, port.ErrNoHandler) {
				wv.handleDownload(uri, mime)
			} else {
				wv.logger.Error().Err(err).Str("uri", uri).Str("mime", mime).Msg("failed to launch content viewer")
			}
		}
		decision.Ignore()

	default:
		decision.Ignore()
	}
}

func (wv *WebView) handleDownload(uri, mime string) {
	if err := wv.download.HandleRequest(uri, mime); err != nil {
		wv.logger.Error().Err(err).Str("uri", uri).Str("mime", mime).Msg("failed to hand off download")
	}
}
