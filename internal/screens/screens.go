package screens

import "github.com/xdestyn/termfolio/internal/types"

// All returns every page in nav order, with the note detail page last
func All(ctx *types.AppContext) []types.Screen {
	return []types.Screen{
		NewHomeScreen(ctx),
		NewNotesScreen(ctx),
		NewLabScreen(ctx),
		NewAboutScreen(ctx),
		NewNoteScreen(ctx),
	}
}
