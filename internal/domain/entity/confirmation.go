package entity

import "errors"

// ConfirmationID identifies one pending trust decision. It is generated by
// the controller that created the confirmation; engine handles never leak
// into it.
type ConfirmationID uint64

// ConfirmationResult is the outcome of a trust decision.
type ConfirmationResult int

const (
	// ConfirmationNone means no decision has been delivered yet.
	ConfirmationNone ConfirmationResult = iota
	ConfirmationConfirmed
	ConfirmationRejected
)

func (r ConfirmationResult) String() string {
	switch r {
	case ConfirmationConfirmed:
		return "confirmed"
	case ConfirmationRejected:
		return "rejected"
	default:
		return "none"
	}
}

var errAlreadyDecided = errors.New("entity: confirmation already decided")

// CertificateConfirmation is one pending certificate-trust decision. The
// result starts as ConfirmationNone and is settable exactly once; the pending
// table owned by the web view is authoritative for its lifetime.
type CertificateConfirmation struct {
	id      ConfirmationID
	tabID   TabID
	domain  string
	message string
	pem     string
	result  ConfirmationResult
}

// NewCertificateConfirmation creates a pending confirmation for domain,
// carrying the human-readable message and the PEM blob of the offending
// certificate.
func NewCertificateConfirmation(id ConfirmationID, tabID TabID, domain, message, pem string) *CertificateConfirmation {
	return &CertificateConfirmation{
		id:      id,
		tabID:   tabID,
		domain:  domain,
		message: message,
		pem:     pem,
	}
}

func (c *CertificateConfirmation) ID() ConfirmationID         { return c.id }
func (c *CertificateConfirmation) TabID() TabID               { return c.tabID }
func (c *CertificateConfirmation) Domain() string             { return c.domain }
func (c *CertificateConfirmation) Message() string            { return c.message }
func (c *CertificateConfirmation) PEM() string                { return c.pem }
func (c *CertificateConfirmation) Result() ConfirmationResult { return c.result }

// SetResult records the decision. It fails if a decision was already recorded
// or if r is ConfirmationNone.
func (c *CertificateConfirmation) SetResult(r ConfirmationResult) error {
	if c.result != ConfirmationNone {
		return errAlreadyDecided
	}
	if r == ConfirmationNone {
		return errors.New("entity: confirmation result must be confirmed or rejected")
	}
	c.result = r
	return nil
}
