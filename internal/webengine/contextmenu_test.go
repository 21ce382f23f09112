package webengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minnow-browser/minnow/internal/application/port"
)

func menuOf(items ...fakeMenuItem) *fakeMenu {
	m := &fakeMenu{}
	for _, item := range items {
		m.items = append(m.items, item)
	}
	return m
}

func actionsOf(m *fakeMenu) []port.MenuAction {
	out := make([]port.MenuAction, 0, len(m.items))
	for _, item := range m.items {
		out = append(out, item.Action())
	}
	return out
}

func TestClassifyMenu(t *testing.T) {
	tests := []struct {
		name string
		menu *fakeMenu
		want MenuIntent
	}{
		{
			name: "clipboard wins immediately",
			menu: menuOf(
				fakeMenuItem{action: port.MenuActionClipboard},
				fakeMenuItem{action: port.MenuActionSearchWeb},
			),
			want: IntentInputField,
		},
		{
			name: "email link with selection",
			menu: menuOf(
				fakeMenuItem{action: port.MenuActionTextSelectionMode},
				fakeMenuItem{action: port.MenuActionCopyLinkToClipboard, link: "mailto:a@example.com"},
			),
			want: IntentEmailLink,
		},
		{
			name: "tel link with selection",
			menu: menuOf(
				fakeMenuItem{action: port.MenuActionTextSelectionMode},
				fakeMenuItem{action: port.MenuActionCopyLinkToClipboard, link: "tel:+123"},
			),
			want: IntentTelLink,
		},
		{
			name: "text only",
			menu: menuOf(fakeMenuItem{action: port.MenuActionSearchWeb}),
			want: IntentTextOnly,
		},
		{
			name: "text link",
			menu: menuOf(fakeMenuItem{action: port.MenuActionOpenLinkInNewWindow, link: "https://x.com"}),
			want: IntentTextLink,
		},
		{
			name: "image only",
			menu: menuOf(fakeMenuItem{action: port.MenuActionCopyImageToClipboard, image: "https://x.com/i.png"}),
			want: IntentImageOnly,
		},
		{
			name: "image link",
			menu: menuOf(
				fakeMenuItem{action: port.MenuActionCopyImageToClipboard},
				fakeMenuItem{action: port.MenuActionCopyLinkToClipboard, link: "https://x.com"},
			),
			want: IntentImageLink,
		},
		{
			name: "text image link",
			menu: menuOf(
				fakeMenuItem{action: port.MenuActionTextSelectionMode},
				fakeMenuItem{action: port.MenuActionCopyImageToClipboard},
				fakeMenuItem{action: port.MenuActionCopyLinkToClipboard, link: "https://x.com"},
			),
			want: IntentTextImageLink,
		},
		{
			name: "empty menu unknown",
			menu: menuOf(),
			want: IntentUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyMenu(tt.menu))
		})
	}
}

func TestCustomizeLeavesSpecialMenusAlone(t *testing.T) {
	wv, _ := newTestWebView(t, Options{}, Deps{})

	input := menuOf(fakeMenuItem{action: port.MenuActionClipboard})
	wv.customizeContextMenu(input)
	assert.False(t, input.cleared)

	unknown := menuOf()
	wv.customizeContextMenu(unknown)
	assert.False(t, unknown.cleared)
}

func TestCustomizeTextLinkMenu(t *testing.T) {
	wv, _ := newTestWebView(t, Options{}, Deps{})

	menu := menuOf(fakeMenuItem{action: port.MenuActionOpenLinkInNewWindow, link: "https://x.com/a"})
	wv.customizeContextMenu(menu)

	assert.True(t, menu.cleared)
	assert.Equal(t, []port.MenuAction{
		port.MenuActionOpenLinkInNewWindow,
		port.MenuActionDownloadLinkToDisk,
		port.MenuActionCopyLinkToClipboard,
		port.MenuActionTextSelectionMode,
	}, actionsOf(menu))
	assert.Equal(t, "https://x.com/a", menu.items[0].LinkURI())
}

func TestCustomizeTextOnlyMenuWithoutSelection(t *testing.T) {
	wv, view := newTestWebView(t, Options{}, Deps{})
	view.selectedText = ""

	menu := menuOf(fakeMenuItem{action: port.MenuActionSearchWeb})
	wv.customizeContextMenu(menu)

	assert.Equal(t, []port.MenuAction{port.MenuActionSelectAll}, actionsOf(menu))
}

func TestCustomizeTextOnlyMenuWithSelection(t *testing.T) {
	wv, view := newTestWebView(t, Options{}, Deps{})
	view.selectedText = "hello"

	menu := menuOf(fakeMenuItem{action: port.MenuActionSearchWeb})
	wv.customizeContextMenu(menu)

	assert.Equal(t, []port.MenuAction{
		port.MenuActionSelectAll,
		port.MenuActionCopy,
		port.MenuActionShare,
		port.MenuActionSearchWeb,
		port.MenuActionCustomFindOnPage,
	}, actionsOf(menu))
}

func TestCustomizeEmailAndTelMenus(t *testing.T) {
	wv, _ := newTestWebView(t, Options{}, Deps{})

	email := menuOf(
		fakeMenuItem{action: port.MenuActionTextSelectionMode},
		fakeMenuItem{action: port.MenuActionCopyLinkToClipboard, link: "mailto:a@x.com"},
	)
	wv.customizeContextMenu(email)
	assert.Equal(t, []port.MenuAction{
		port.MenuActionCustomSendEmail,
		port.MenuActionCustomAddToContact,
		port.MenuActionCopyLinkToClipboard,
	}, actionsOf(email))

	tel := menuOf(
		fakeMenuItem{action: port.MenuActionTextSelectionMode},
		fakeMenuItem{action: port.MenuActionCopyLinkToClipboard, link: "tel:+123"},
	)
	wv.customizeContextMenu(tel)
	assert.Equal(t, []port.MenuAction{
		port.MenuActionCustomCall,
		port.MenuActionCustomSendMessage,
		port.MenuActionCustomAddToContact,
		port.MenuActionCopyLinkToClipboard,
	}, actionsOf(tel))
}

func TestCustomizeImageMenus(t *testing.T) {
	wv, _ := newTestWebView(t, Options{}, Deps{})

	imageOnly := menuOf(fakeMenuItem{action: port.MenuActionCopyImageToClipboard, image: "https://x.com/i.png"})
	wv.customizeContextMenu(imageOnly)
	assert.Equal(t, []port.MenuAction{
		port.MenuActionDownloadImageToDisk,
		port.MenuActionCopyImageToClipboard,
		port.MenuActionOpenImageInCurrentWindow,
	}, actionsOf(imageOnly))
	assert.Equal(t, "https://x.com/i.png", imageOnly.items[0].LinkURI())

	imageLink := menuOf(
		fakeMenuItem{action: port.MenuActionCopyImageToClipboard, image: "https://x.com/i.png"},
		fakeMenuItem{action: port.MenuActionCopyLinkToClipboard, link: "https://x.com/a"},
	)
	wv.customizeContextMenu(imageLink)
	assert.Equal(t, []port.MenuAction{
		port.MenuActionOpenLinkInNewWindow,
		port.MenuActionDownloadLinkToDisk,
		port.MenuActionCopyLinkToClipboard,
		port.MenuActionDownloadImageToDisk,
		port.MenuActionCopyImageToClipboard,
		port.MenuActionOpenImageInCurrentWindow,
	}, actionsOf(imageLink))
}

func TestSelectedSendEmailDispatches(t *testing.T) {
	launcher := &fakeLauncher{}
	wv, _ := newTestWebView(t, Options{}, Deps{Launcher: launcher})

	wv.contextMenuSelected(fakeMenuItem{
		action: port.MenuActionCustomSendEmail,
		link:   "mailto:a@x.com?subject=hi",
	})

	require.Len(t, launcher.emails, 1)
	assert.Equal(t, "mailto:a@x.com", launcher.emails[0].URI)
	assert.Equal(t, "hi", launcher.emails[0].Subject)
}

func TestSelectedCallDispatches(t *testing.T) {
	launcher := &fakeLauncher{}
	wv, _ := newTestWebView(t, Options{}, Deps{Launcher: launcher})

	wv.contextMenuSelected(fakeMenuItem{action: port.MenuActionCustomCall, link: "tel:+123"})

	require.Len(t, launcher.dials, 1)
	assert.Equal(t, "tel:+123", launcher.dials[0].URI)
}

func TestSelectedSendMessageRewritesTelToSMS(t *testing.T) {
	launcher := &fakeLauncher{}
	wv, _ := newTestWebView(t, Options{}, Deps{Launcher: launcher})

	wv.contextMenuSelected(fakeMenuItem{action: port.MenuActionCustomSendMessage, link: "tel:+123"})

	require.Len(t, launcher.messages, 1)
	assert.Equal(t, "sms:+123", launcher.messages[0].URI)

	// Non-tel payloads are dropped.
	wv.contextMenuSelected(fakeMenuItem{action: port.MenuActionCustomSendMessage, link: "https://x.com"})
	assert.Len(t, launcher.messages, 1)
}

func TestSelectedAddToContact(t *testing.T) {
	launcher := &fakeLauncher{}
	wv, _ := newTestWebView(t, Options{}, Deps{Launcher: launcher})

	wv.contextMenuSelected(fakeMenuItem{action: port.MenuActionCustomAddToContact, link: "tel:+123"})
	require.Len(t, launcher.contacts, 1)
	assert.Equal(t, port.ContactRequest{Phone: "+123"}, launcher.contacts[0])

	wv.contextMenuSelected(fakeMenuItem{
		action: port.MenuActionCustomAddToContact,
		link:   "mailto:a@x.com?subject=hi",
	})
	require.Len(t, launcher.contacts, 2)
	assert.Equal(t, port.ContactRequest{Email: "a@x.com"}, launcher.contacts[1])
}

func TestSelectedFindOnPageUsesSelection(t *testing.T) {
	wv, view := newTestWebView(t, Options{}, Deps{})
	view.selectedText = "needle"

	var got string
	wv.OnFindOnPage = func(text string) { got = text }

	wv.contextMenuSelected(fakeMenuItem{action: port.MenuActionCustomFindOnPage})
	assert.Equal(t, "needle", got)
}
