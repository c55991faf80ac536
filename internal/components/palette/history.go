package palette

// History records submitted commands for the session. The cursor counts
// back from the newest entry; -1 means the user is not browsing.
type History struct {
	entries []string
	cursor  int
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{
		entries: []string{},
		cursor:  -1,
	}
}

// Add appends a submitted command and stops browsing. Empty commands are
// ignored; repeats are kept.
func (h *History) Add(cmd string) {
	if cmd == "" {
		return
	}
	h.entries = append(h.entries, cmd)
	h.cursor = -1
}

// Older moves one step back in time and returns the entry to show. It
// stays on the oldest entry once reached. Returns false with no history.
func (h *History) Older() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.cursor < len(h.entries)-1 {
		h.cursor++
	}
	return h.entries[len(h.entries)-1-h.cursor], true
}

// Newer moves one step towards the present. Stepping past the newest
// entry stops browsing and returns "" so the input is cleared. Returns
// false when not browsing.
func (h *History) Newer() (string, bool) {
	if h.cursor < 0 {
		return "", false
	}
	h.cursor--
	if h.cursor < 0 {
		return "", true
	}
	return h.entries[len(h.entries)-1-h.cursor], true
}

// Reset stops browsing.
func (h *History) Reset() {
	h.cursor = -1
}

// Cursor returns the browse position, -1 when not browsing.
func (h *History) Cursor() int {
	return h.cursor
}

// Entries returns a copy of the history, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Size returns the number of entries in history.
func (h *History) Size() int {
	return len(h.entries)
}
