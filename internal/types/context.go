package types

import (
	"github.com/xdestyn/termfolio/internal/browser"
	"github.com/xdestyn/termfolio/internal/content"
	"github.com/xdestyn/termfolio/internal/keyboard"
	"github.com/xdestyn/termfolio/internal/ui"
)

// AppContext holds app-wide configuration and dependencies. Content is
// swapped by the shell when the watcher reloads it.
type AppContext struct {
	Theme     *ui.Theme
	Content   *content.Document
	Renderer  *content.Renderer
	Keys      *keyboard.Keys
	Opener    browser.Opener
	Clipboard browser.Clipboard
}

// NewAppContext creates a new application context
func NewAppContext(
	theme *ui.Theme,
	doc *content.Document,
	opener browser.Opener,
	clip browser.Clipboard,
) *AppContext {
	return &AppContext{
		Theme:     theme,
		Content:   doc,
		Renderer:  content.NewRenderer(theme.GlamourStyle, content.DefaultRenderTTL),
		Keys:      keyboard.Default(),
		Opener:    opener,
		Clipboard: clip,
	}
}
