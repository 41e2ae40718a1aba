package viewport

// History is the zoom-previous stack. The cursor always points at a valid
// entry; pushing after stepping back discards the forward entries.
type History struct {
	entries []Window
	cursor  int
}

// NewHistory starts a history holding only initial.
func NewHistory(initial Window) *History {
	return &History{entries: []Window{initial}}
}

// Current returns the entry under the cursor.
func (h *History) Current() Window {
	return h.entries[h.cursor]
}

// Push truncates forward entries and appends w.
func (h *History) Push(w Window) {
	h.entries = append(h.entries[:h.cursor+1], w)
	h.cursor = len(h.entries) - 1
}

// Previous steps back one entry; false at the oldest entry.
func (h *History) Previous() (Window, bool) {
	if h.cursor == 0 {
		return h.entries[0], false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Next steps forward again after Previous. No control is bound to it yet.
func (h *History) Next() (Window, bool) {
	if h.cursor >= len(h.entries)-1 {
		return h.entries[h.cursor], false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

func (h *History) CanPrevious() bool { return h.cursor > 0 }
func (h *History) CanNext() bool     { return h.cursor < len(h.entries)-1 }
func (h *History) Len() int          { return len(h.entries) }
func (h *History) Cursor() int       { return h.cursor }

// Reset drops every entry and starts over from w.
func (h *History) Reset(w Window) {
	h.entries = []Window{w}
	h.cursor = 0
}
