package webengine

import (
	"strings"

	"github.com/minnow-browser/minnow/internal/application/port"
)

// MenuIntent is what the user most plausibly long-pressed on, derived from
// the capabilities of the engine's proposed context menu.
type MenuIntent int

const (
	IntentUnknown MenuIntent = iota
	IntentInputField
	IntentTextOnly
	IntentTextLink
	IntentEmailLink
	IntentTelLink
	IntentImageOnly
	IntentImageLink
	IntentTextImageLink
)

func (m MenuIntent) String() string {
	switch m {
	case IntentInputField:
		return "input-field"
	case IntentTextOnly:
		return "text-only"
	case IntentTextLink:
		return "text-link"
	case IntentEmailLink:
		return "email-link"
	case IntentTelLink:
		return "tel-link"
	case IntentImageOnly:
		return "image-only"
	case IntentImageLink:
		return "image-link"
	case IntentTextImageLink:
		return "text-image-link"
	default:
		return "unknown"
	}
}

// classifyMenu derives the menu intent from the proposed items. A clipboard
// capability wins immediately: the press landed in an input field and the
// engine's own menu is the right one.
func classifyMenu(menu port.ContextMenu) MenuIntent {
	var text, link, image, selection, call, email bool

	for _, item := range menu.Items() {
		if uri := item.LinkURI(); uri != "" {
			if strings.HasPrefix(uri, schemeMailto) {
				email = true
			}
			if strings.HasPrefix(uri, schemeTel) {
				call = true
			}
		}
		switch item.Action() {
		case port.MenuActionTextSelectionMode:
			selection = true
		case port.MenuActionClipboard:
			return IntentInputField
		case port.MenuActionSearchWeb:
			text = true
		case port.MenuActionOpenLinkInNewWindow, port.MenuActionCopyLinkToClipboard:
			link = true
		case port.MenuActionCopyImageToClipboard:
			image = true
		}
	}

	switch {
	case email && selection:
		return IntentEmailLink
	case call && selection:
		return IntentTelLink
	case text && !link:
		return IntentTextOnly
	case link && !image:
		return IntentTextLink
	case image && !link:
		return IntentImageOnly
	case selection && image && link:
		return IntentTextImageLink
	case image && link:
		return IntentImageLink
	}
	return IntentUnknown
}

// customizeContextMenu replaces the engine's default menu with the curated
// action list for the classified intent. Unknown and input-field menus are
// left untouched.
func (wv *WebView) customizeContextMenu(menu port.ContextMenu) {
	intent := classifyMenu(menu)
	wv.logger.Debug().Stringer("intent", intent).Msg("context menu requested")

	if intent == IntentUnknown || intent == IntentInputField {
		return
	}

	link := firstLinkURI(menu)
	image := firstImageURI(menu)

	switch intent {
	case IntentTextOnly:
		wv.buildTextOnlyMenu(menu)
	case IntentTextLink:
		wv.buildTextLinkMenu(menu, link)
	case IntentEmailLink:
		wv.buildEmailLinkMenu(menu, link)
	case IntentTelLink:
		wv.buildTelLinkMenu(menu, link)
	case IntentImageOnly:
		wv.buildImageOnlyMenu(menu, image)
	case IntentImageLink:
		wv.buildImageLinkMenu(menu, link, image)
	case IntentTextImageLink:
		wv.buildTextImageLinkMenu(menu, link)
	}
}

func (wv *WebView) buildTextOnlyMenu(menu port.ContextMenu) {
	textSelected := wv.view.SelectedText() != ""

	menu.Clear()
	menu.AppendItem(port.MenuActionSelectAll, "Select all", "")
	if textSelected {
		menu.AppendItem(port.MenuActionCopy, "Copy", "")
		menu.AppendItem(port.MenuActionShare, "Share", "")
		menu.AppendItem(port.MenuActionSearchWeb, "Web search", "")
		menu.AppendItem(port.MenuActionCustomFindOnPage, "Find on page", "")
	}
}

func (wv *WebView) buildTextLinkMenu(menu port.ContextMenu, link string) {
	menu.Clear()
	menu.AppendItem(port.MenuActionOpenLinkInNewWindow, "Open in new window", link)
	menu.AppendItem(port.MenuActionDownloadLinkToDisk, "Save link", link)
	menu.AppendItem(port.MenuActionCopyLinkToClipboard, "Copy link", link)
	menu.AppendItem(port.MenuActionTextSelectionMode, "Select text", "")
}

func (wv *WebView) buildEmailLinkMenu(menu port.ContextMenu, link string) {
	menu.Clear()
	menu.AppendItem(port.MenuActionCustomSendEmail, "Send email", link)
	menu.AppendItem(port.MenuActionCustomAddToContact, "Add to contacts", link)
	menu.AppendItem(port.MenuActionCopyLinkToClipboard, "Copy link", link)
}

func (wv *WebView) buildTelLinkMenu(menu port.ContextMenu, link string) {
	menu.Clear()
	menu.AppendItem(port.MenuActionCustomCall, "Call", link)
	menu.AppendItem(port.MenuActionCustomSendMessage, "Send message", link)
	menu.AppendItem(port.MenuActionCustomAddToContact, "Add to contacts", link)
	menu.AppendItem(port.MenuActionCopyLinkToClipboard, "Copy link", link)
}

func (wv *WebView) buildImageOnlyMenu(menu port.ContextMenu, image string) {
	menu.Clear()
	menu.AppendItem(port.MenuActionDownloadImageToDisk, "Save image", image)
	menu.AppendItem(port.MenuActionCopyImageToClipboard, "Copy image", image)
	menu.AppendItem(port.MenuActionOpenImageInCurrentWindow, "View image", image)
}

func (wv *WebView) buildImageLinkMenu(menu port.ContextMenu, link, image string) {
	menu.Clear()
	menu.AppendItem(port.MenuActionOpenLinkInNewWindow, "Open in new window", link)
	menu.AppendItem(port.MenuActionDownloadLinkToDisk, "Save link", link)
	menu.AppendItem(port.MenuActionCopyLinkToClipboard, "Copy link", link)
	menu.AppendItem(port.MenuActionDownloadImageToDisk, "Save image", image)
	menu.AppendItem(port.MenuActionCopyImageToClipboard, "Copy image", image)
	menu.AppendItem(port.MenuActionOpenImageInCurrentWindow, "View image", image)
}

func (wv *WebView) buildTextImageLinkMenu(menu port.ContextMenu, link string) {
	menu.Clear()
	menu.AppendItem(port.MenuActionOpenLinkInNewWindow, "Open in new window", link)
	menu.AppendItem(port.MenuActionDownloadLinkToDisk, "Save link", link)
	menu.AppendItem(port.MenuActionCopyLinkToClipboard, "Copy link", link)
	menu.AppendItem(port.MenuActionTextSelectionMode, "Select text", "")
}

// contextMenuSelected routes curated custom actions. Engine-native actions
// are executed by the engine itself and never reach this path.
func (wv *WebView) contextMenuSelected(item port.ContextMenuItem) {
	link := item.LinkURI()

	switch item.Action() {
	case port.MenuActionCustomSendEmail, port.MenuActionCustomCall:
		wv.dispatcher.Handle(wv.ctx, link)

	case port.MenuActionCustomFindOnPage:
		if wv.OnFindOnPage != nil {
			wv.OnFindOnPage(wv.view.SelectedText())
		}

	case port.MenuActionCustomSendMessage:
		if strings.HasPrefix(link, schemeTel) {
			wv.dispatcher.Handle(wv.ctx, strings.ReplaceAll(link, schemeTel, schemeSMS))
		}

	case port.MenuActionCustomAddToContact:
		switch {
		case strings.HasPrefix(link, schemeTel):
			wv.addContact(port.ContactRequest{Phone: link[len(schemeTel):]})
		case strings.HasPrefix(link, schemeMailto):
			addr := link
			if i := strings.IndexByte(addr, '?'); i >= 0 {
				addr = addr[:i]
			}
			wv.addContact(port.ContactRequest{Email: addr[len(schemeMailto):]})
		}
	}
}

func (wv *WebView) addContact(req port.ContactRequest) {
	if err := wv.launcher.AddContact(req); err != nil {
		wv.logger.Error().Err(err).Msg("failed to launch contact editor")
	}
}

// firstLinkURI returns the link target of the first item carrying one.
func firstLinkURI(menu port.ContextMenu) string {
	for _, item := range menu.Items() {
		if uri := item.LinkURI(); uri != "" {
			return uri
		}
	}
	return ""
}

// firstImageURI returns the image source of the first item carrying one.
func firstImageURI(menu port.ContextMenu) string {
	for _, item := range menu.Items() {
		if uri := item.ImageURI(); uri != "" {
			return uri
		}
	}
	return ""
}
