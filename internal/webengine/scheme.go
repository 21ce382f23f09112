package webengine

import (
	"context"
	"strings"

	"github.com/minnow-browser/minnow/internal/application/port"
	"github.com/minnow-browser/minnow/internal/logging"
)

// URI scheme prefixes the dispatcher recognizes.
const (
	schemeHTTP   = "http://"
	schemeHTTPS  = "https://"
	schemeFile   = "file://"
	schemeStore  = "tizenstore://"
	schemeMailto = "mailto:"
	schemeTel    = "tel:"
	schemeTelto  = "telto:"
	schemeCallto = "callto:"
	schemeSMS    = "sms:"
	schemeSMSTo  = "smsto:"
)

// Dispatcher routes non-web URI schemes to external applications. Web
// schemes (http, https, file) are reported unhandled so the engine loads
// them itself.
type Dispatcher struct {
	launcher port.Launcher
}

// NewDispatcher creates a dispatcher backed by launcher.
func NewDispatcher(launcher port.Launcher) *Dispatcher {
	return &Dispatcher{launcher: launcher}
}

// Handle classifies uri by its leading scheme token. It returns true when
// the URI was claimed for external handling, whether or not the launch
// itself succeeded; the caller must then ignore the navigation.
func (d *Dispatcher) Handle(ctx context.Context, uri string) bool {
	switch {
	case strings.HasPrefix(uri, schemeHTTP),
		strings.HasPrefix(uri, schemeHTTPS),
		strings.HasPrefix(uri, schemeFile):
		return false
	case strings.HasPrefix(uri, schemeStore):
		d.launchStore(ctx, uri)
		return true
	case strings.HasPrefix(uri, schemeMailto):
		d.launchEmail(ctx, uri)
		return true
	case strings.HasPrefix(uri, schemeTel):
		d.launchDialer(ctx, uri)
		return true
	case strings.HasPrefix(uri, schemeTelto):
		d.launchDialer(ctx, schemeTel+uri[len(schemeTelto):])
		return true
	case strings.HasPrefix(uri, schemeCallto):
		d.launchDialer(ctx, schemeTel+uri[len(schemeCallto):])
		return true
	case strings.HasPrefix(uri, schemeSMS):
		d.launchMessage(ctx, uri)
		return true
	case strings.HasPrefix(uri, schemeSMSTo):
		d.launchMessage(ctx, schemeSMS+uri[len(schemeSMSTo):])
		return true
	}
	return false
}

func (d *Dispatcher) launchStore(ctx context.Context, uri string) {
	if err := d.launcher.OpenStore(uri); err != nil {
		logging.FromContext(ctx).Error().Err(err).Str("uri", uri).Msg("failed to launch store")
	}
}

func (d *Dispatcher) launchEmail(ctx context.Context, uri string) {
	parts := parseSchemeURI(uri)
	urls := parts["url"]
	if len(urls) == 0 {
		logging.FromContext(ctx).Error().Str("uri", uri).Msg("mailto URI has no recipient part")
		return
	}

	req := port.EmailRequest{URI: urls[0]}
	if v := parts["subject"]; len(v) > 0 {
		req.Subject = v[0]
	}
	if v := parts["body"]; len(v) > 0 {
		req.Body = v[0]
	}
	req.CC = splitAddressList(parts["cc"])
	req.BCC = splitAddressList(parts["bcc"])

	if err := d.launcher.ComposeEmail(req); err != nil {
		logging.FromContext(ctx).Error().Err(err).Str("uri", uri).Msg("failed to launch email composer")
	}
}

func (d *Dispatcher) launchDialer(ctx context.Context, uri string) {
	if err := d.launcher.Dial(port.MessageRequest{URI: uri}); err != nil {
		logging.FromContext(ctx).Error().Err(err).Str("uri", uri).Msg("failed to launch dialer")
	}
}

func (d *Dispatcher) launchMessage(ctx context.Context, uri string) {
	parts := parseSchemeURI(uri)
	urls := parts["url"]
	if len(urls) == 0 {
		logging.FromContext(ctx).Error().Str("uri", uri).Msg("sms URI has no recipient part")
		return
	}

	req := port.MessageRequest{URI: urls[0]}
	if v := parts["subject"]; len(v) > 0 {
		req.Subject = v[0]
	}
	if v := parts["body"]; len(v) > 0 {
		req.Body = v[0]
	}

	if err := d.launcher.ComposeMessage(req); err != nil {
		logging.FromContext(ctx).Error().Err(err).Str("uri", uri).Msg("failed to launch message composer")
	}
}

// parseSchemeURI splits an app-scheme URI into its parts. The part before
// '?' is stored under "url"; the query splits on '&' into key=value pairs,
// each value splitting on ';' into multiple entries. Segments without '='
// are skipped.
func parseSchemeURI(uri string) map[string][]string {
	parts := make(map[string][]string)

	q := strings.IndexByte(uri, '?')
	if q < 0 {
		parts["url"] = []string{uri}
		return parts
	}

	parts["url"] = []string{uri[:q]}
	for _, arg := range strings.Split(uri[q+1:], "&") {
		eq := strings.IndexByte(arg, '=')
		if eq < 0 {
			continue
		}
		key, value := arg[:eq], arg[eq+1:]
		parts[key] = append(parts[key], strings.Split(value, ";")...)
	}
	return parts
}

// splitAddressList flattens multi-valued address entries, additionally
// splitting each entry on commas.
func splitAddressList(entries []string) []string {
	if len(entries) == 0 {
		return nil
	}
	var out []string
	for _, entry := range entries {
		for _, addr := range strings.Split(entry, ",") {
			if addr != "" {
				out = append(out, addr)
			}
		}
	}
	return out
}
