package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xdestyn/termfolio/internal/types"
)

// NavigationCommand returns a command that switches to the page at path
func NavigationCommand(path string) tea.Cmd {
	return types.NavigateCmd(path)
}

// ClosePaletteCommand asks the shell to close the palette session epoch
func ClosePaletteCommand(epoch uint64) tea.Cmd {
	return func() tea.Msg {
		return types.ClosePaletteMsg{Epoch: epoch}
	}
}

// Effects lists, in order, what running cmd does once its response is
// shown: help does nothing, everything else performs its action and then
// closes the palette session it was dispatched from.
func Effects(ctx *types.AppContext, cmd Command, epoch uint64) []tea.Cmd {
	switch cmd.Kind() {
	case ActionHelp:
		return nil
	case ActionLink, ActionMail:
		return []tea.Cmd{OpenLinkCommand(ctx, cmd.Action), ClosePaletteCommand(epoch)}
	default:
		return []tea.Cmd{NavigationCommand(cmd.Action), ClosePaletteCommand(epoch)}
	}
}

// Effect runs Effects one after another
func Effect(ctx *types.AppContext, cmd Command, epoch uint64) tea.Cmd {
	effects := Effects(ctx, cmd, epoch)
	if len(effects) == 0 {
		return nil
	}
	return tea.Sequence(effects...)
}
