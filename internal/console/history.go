package console

// History is the submitted-line history. The index points between entries:
// len(items) means "past the newest entry", where the input line is blank.
type History struct {
	items []string
	index int
}

// Append records a submitted line and resets the index past the newest
// entry. A line equal to the most recent one is not duplicated.
func (h *History) Append(line string) {
	if n := len(h.items); n == 0 || h.items[n-1] != line {
		h.items = append(h.items, line)
	}
	h.index = len(h.items)
}

// Prev steps to the previous entry. It reports false at the oldest entry,
// where the input stays put.
func (h *History) Prev() (string, bool) {
	if h.index == 0 {
		return "", false
	}
	h.index--
	return h.items[h.index], true
}

// Next steps to the following entry. Stepping past the newest entry yields
// a blank line, so n Prev steps followed by n Next steps restore the
// original blank input.
func (h *History) Next() (string, bool) {
	if h.index >= len(h.items) {
		return "", false
	}
	h.index++
	if h.index == len(h.items) {
		return "", true
	}
	return h.items[h.index], true
}

// Len returns the number of stored entries.
func (h *History) Len() int { return len(h.items) }
