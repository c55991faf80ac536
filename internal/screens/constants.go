package screens

import "time"

// Screen configuration constants
const (
	// TypingInterval is the delay between hero characters
	TypingInterval = 40 * time.Millisecond

	// CursorBlinkInterval toggles the hero cursor
	CursorBlinkInterval = 530 * time.Millisecond

	// ContentMaxWidth caps prose width on wide terminals
	ContentMaxWidth = 96

	// NotesChromeLines is what the notes screen draws around its table:
	// filter line, tag line, blank line and the excerpt under the table.
	NotesChromeLines = 4
)
