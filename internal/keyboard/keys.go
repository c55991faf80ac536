package keyboard

// Keys holds all keyboard shortcut configurations for termfolio
type Keys struct {
	// Command Palette
	PaletteToggle string // Open/close the command palette from anywhere
	Accept        string // Accept the selected suggestion
	Submit        string // Run the typed command
	Close         string // Close the palette

	// Pages
	Home  string
	Notes string
	Lab   string
	About string

	// Home
	Replay string // Replay the hero animation

	// Navigation
	Up         string // Move selection up
	Down       string // Move selection down
	JumpTop    string // Jump to top
	JumpBottom string // Jump to bottom
	PageUp     string // Page up
	PageDown   string // Page down

	// Field notes
	Search     string // Focus the search input
	Category   string // Cycle the category filter
	TagToggle  string // Toggle the tag under the cursor
	TagNext    string // Move the tag cursor
	ClearQuery string // Drop every filter
	Open       string // Open the selected note

	// Lab
	OpenCode string // Open the experiment's repository
	OpenDemo string // Open the experiment's demo
	CopyLink string // Copy the repository link

	// Global
	Quit      string // Quit application
	QuitShort string // Quit when no input has focus
	Back      string // Back to the previous list
}

// Default returns the default keyboard configuration
func Default() *Keys {
	return &Keys{
		PaletteToggle: "ctrl+k",
		Accept:        "tab",
		Submit:        "enter",
		Close:         "esc",

		Home:  "h",
		Notes: "n",
		Lab:   "l",
		About: "a",

		Replay: "r",

		Up:         "k",
		Down:       "j",
		JumpTop:    "g",
		JumpBottom: "G",
		PageUp:     "ctrl+b",
		PageDown:   "ctrl+f",

		Search:     "/",
		Category:   "c",
		TagToggle:  "t",
		TagNext:    "]",
		ClearQuery: "x",
		Open:       "enter",

		OpenCode: "o",
		OpenDemo: "d",
		CopyLink: "y",

		Quit:      "ctrl+c",
		QuitShort: "q",
		Back:      "esc",
	}
}
