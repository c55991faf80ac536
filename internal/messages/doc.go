// Package messages defines message handling patterns and conventions for
// termfolio: how errors, successes and informational notices travel from
// the layer that produces them to the status bar.
//
// # Message Handling Patterns by Layer
//
// ## Data Layer (internal/content, internal/config, internal/browser)
//
// Return standard Go errors. These packages know nothing about Bubble Tea.
//
// Pattern:
//
//	raw, err := fs.ReadFile(fsys, DocumentFile)
//	if err != nil {
//	    return nil, fmt.Errorf("failed to read %s: %w", DocumentFile, err)
//	}
//
// Use fmt.Errorf with %w to keep the chain, and say what operation failed.
// messages.WrapError(err, "context") is an equivalent helper.
//
// ## Command Layer (internal/commands)
//
// Return a tea.Cmd that produces a StatusMsg. Commands run in response to
// key presses or palette submissions and report back through the Bubble
// Tea message loop.
//
// Pattern:
//
//	func CopyLinkCommand(ctx *types.AppContext, text string) tea.Cmd {
//	    return func() tea.Msg {
//	        if err := ctx.Clipboard.WriteAll(text); err != nil {
//	            return types.ErrorStatusMsg(fmt.Sprintf("Copy failed: %v", err))
//	        }
//	        return types.SuccessMsg("Copied to clipboard")
//	    }
//	}
//
// ErrorCmd, SuccessCmd and InfoCmd build the same thing from a format
// string.
//
// ## UI Layer (internal/app, internal/components, internal/screens)
//
// Show StatusMsg in the status bar. Components do not format errors
// themselves.
//
//	case types.StatusMsg:
//	    m.statusBar.SetMessage(msg.Message, msg.Type)
//	    return m, tea.Tick(components.StatusBarDisplayDuration, func(time.Time) tea.Msg {
//	        return types.ClearStatusMsg{MessageID: id}
//	    })
//
// The status bar clears after StatusBarDisplayDuration (5s).
//
// The command palette is the exception: an unknown command is not an
// error at all, it is a transcript entry the palette renders itself.
//
// # Error Message Guidelines
//
// 1. Be specific: "Could not open https://github.com/..." not "Failed"
// 2. Start with what failed
// 3. Keep stack traces and Go type names out of the UI; log them instead
package messages
