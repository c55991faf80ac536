package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xdestyn/termfolio/internal/logging"
	"github.com/xdestyn/termfolio/internal/messages"
	"github.com/xdestyn/termfolio/internal/types"
)

// OpenLinkCommand opens target with the system opener. When that fails the
// link is copied to the clipboard instead, so the user can paste it.
func OpenLinkCommand(ctx *types.AppContext, target string) tea.Cmd {
	return func() tea.Msg {
		openCtx, cancel := context.WithTimeout(context.Background(), OpenTimeout)
		defer cancel()

		err := ctx.Opener.Open(openCtx, target)
		if err == nil {
			logging.Info("opened link", "target", target)
			return types.SuccessMsg("Opened " + target)
		}
		logging.Warn("failed to open link", "target", target, "error", err)

		if clipErr := ctx.Clipboard.WriteAll(target); clipErr != nil {
			logging.Error("clipboard fallback failed", "target", target, "error", clipErr)
			return messages.ErrorCmd("Could not open %s: %v", target, err)()
		}
		return messages.InfoCmd("Link copied to clipboard: %s", target)()
	}
}

// CopyLinkCommand copies text to the clipboard and reports the result
func CopyLinkCommand(ctx *types.AppContext, text string) tea.Cmd {
	if text == "" {
		return messages.ErrorCmd("Nothing to copy")
	}
	return func() tea.Msg {
		if err := ctx.Clipboard.WriteAll(text); err != nil {
			return messages.ErrorCmd("Copy failed: %v", err)()
		}
		return messages.SuccessCmd("Copied to clipboard: %s", text)()
	}
}
