package webengine

import (
	"fmt"
	"strings"

	"github.com/minnow-browser/minnow/internal/application/port"
	"github.com/minnow-browser/minnow/internal/domain/entity"
)

// certificateMessageFormat is the user-visible prompt for an untrusted
// certificate; the placeholder is the offending domain.
const certificateMessageFormat = "There are problems with the security certificate for this site.<br>%s"

// pendingConfirmation pairs a confirmation with the engine decision it will
// eventually resolve.
type pendingConfirmation struct {
	confirmation *entity.CertificateConfirmation
	decision     port.CertificateDecision
}

// handleCertificateDecision runs the certificate handshake for an untrusted
// connection. Handshakes without a pinnable key are denied outright; the
// rest suspend the view and wait for the UI's verdict.
func (wv *WebView) handleCertificateDecision(host string, decision port.CertificateDecision) {
	if !decision.PinnedKeyPresent() {
		wv.logger.Warn().Str("host", host).Msg("certificate has no pinnable key, denying")
		decision.Deny()
		if wv.OnUnsecureConnection != nil {
			wv.OnUnsecureConnection()
		}
		return
	}

	wv.Suspend()
	decision.Suspend()

	domain := extractDomain(wv.loadingURL)
	message := fmt.Sprintf(certificateMessageFormat, domain)

	wv.confirmationSeq++
	id := entity.ConfirmationID(wv.confirmationSeq)
	c := entity.NewCertificateConfirmation(id, wv.id, domain, message, decision.PEM())

	wv.pending[id] = pendingConfirmation{confirmation: c, decision: decision}

	wv.logger.Debug().Str("domain", domain).Uint64("confirmation_id", uint64(id)).Msg("certificate confirmation requested")
	if wv.OnConfirmationRequested != nil {
		wv.OnConfirmationRequested(c)
	}
}

// ConfirmationResult applies the UI's verdict on a pending certificate
// confirmation. Confirmed allows the handshake, Rejected denies it; any
// other result is an error and leaves the decision suspended. On a valid
// verdict the view resumes and the confirmation is retired.
func (wv *WebView) ConfirmationResult(c *entity.CertificateConfirmation) {
	p, ok := wv.pending[c.ID()]
	if !ok {
		wv.logger.Warn().Uint64("confirmation_id", uint64(c.ID())).Msg("unknown certificate confirmation")
		return
	}

	switch c.Result() {
	case entity.ConfirmationConfirmed:
		p.decision.Allow()
	case entity.ConfirmationRejected:
		p.decision.Deny()
	default:
		wv.logger.Error().Stringer("result", c.Result()).Msg("wrong confirmation result")
		return
	}

	wv.Resume()
	delete(wv.pending, c.ID())
}

// rejectPendingConfirmations synthesizes a rejection for every outstanding
// confirmation. Runs during Destroy, before the engine handle goes away.
func (wv *WebView) rejectPendingConfirmations() {
	for id, p := range wv.pending {
		if p.confirmation.Result() == entity.ConfirmationNone {
			if err := p.confirmation.SetResult(entity.ConfirmationRejected); err != nil {
				wv.logger.Error().Err(err).Uint64("confirmation_id", uint64(id)).Msg("failed to reject confirmation")
			}
		}
		p.decision.Deny()
		delete(wv.pending, id)
	}
}

// handleCertificateInfo forwards the certificate of a committed connection
// to the UI, classified by whether the engine considers the context secure.
func (wv *WebView) handleCertificateInfo(info port.CertificateInfo) {
	if info.PEM == "" {
		return
	}

	domain := extractDomain(wv.view.URI())
	if info.Secure {
		if wv.OnCertificatePEM != nil {
			wv.OnCertificatePEM(domain, info.PEM)
		}
	} else {
		if wv.OnWrongCertificatePEM != nil {
			wv.OnWrongCertificatePEM(domain, info.PEM)
		}
	}
}

// extractDomain returns the authority part of url: everything between the
// scheme separator and the next slash.
func extractDomain(url string) string {
	rest := url
	if i := strings.Index(rest, "://"); i >= 0 {
		rest = rest[i+3:]
	}
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
