package palette

import "time"

// MaxSuggestionItems is the maximum number of suggestions shown at once.
const MaxSuggestionItems = 8

// DispatchDelay is how long a command's response stays on screen before
// its action runs.
const DispatchDelay = 300 * time.Millisecond

// TranscriptHeight is the number of transcript lines visible in the palette.
const TranscriptHeight = 12

// MaxWidth caps the palette box on wide terminals.
const MaxWidth = 72

const (
	notFoundFormat = `Command not found: %s. Type "help" for available commands.`
	emptyHint      = `Type a command or "help" to see available options...`
	placeholder    = "type a command..."
	promptSymbol   = "→"
	footerHint     = "↑↓ navigate • tab complete • esc close"
	toggleHint     = "ctrl+k to toggle"
)
