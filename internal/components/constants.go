package components

import "time"

// UI component constants
const (
	// FullScreenReservedLines is the number of lines the reader keeps for
	// its own chrome (title line, separator, scroll indicator).
	FullScreenReservedLines = 3

	// StatusBarDisplayDuration is how long status messages (success, error,
	// info) stay visible before they clear themselves.
	StatusBarDisplayDuration = 5 * time.Second

	// LayoutReservedLines covers header, the blank line under it, the help
	// line and the status bar.
	LayoutReservedLines = 4

	// MinBodyHeight keeps screens usable in tiny terminals
	MinBodyHeight = 3
)
