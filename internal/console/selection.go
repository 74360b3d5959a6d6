package console

// Selection is a half-open range of buffer offsets picked with the pointer.
// Start and end are in drag order; Range normalizes them.
type Selection struct {
	start  int
	end    int
	active bool
}

// Clear drops the selection.
func (s *Selection) Clear() { *s = Selection{} }

// Begin anchors a new selection at offset.
func (s *Selection) Begin(offset int) {
	s.start = offset
	s.end = offset
	s.active = true
}

// Extend drags the selection's free end to offset.
func (s *Selection) Extend(offset int) {
	if s.active {
		s.end = offset
	}
}

// Range returns the selected offsets as an ordered half-open range.
func (s *Selection) Range() (lo, hi int, ok bool) {
	if !s.active || s.start == s.end {
		return 0, 0, false
	}
	lo, hi = s.start, s.end
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi + 1, true
}

// pointerOffset converts a viewport cell position to a buffer offset.
func (c *Console) pointerOffset(x, y int) int {
	if x < 0 {
		x = 0
	}
	if x >= BufferWidth {
		x = BufferWidth - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= BufferHeight {
		y = BufferHeight - 1
	}

	offset := (c.grid.Scroll()+y)*BufferWidth + x
	if offset >= BufferSize {
		offset = BufferSize - 1
	}
	return offset
}

// PointerDown starts a selection at a viewport cell. Pointer handling is
// not gated on the console state; text can be selected while a command
// runs.
func (c *Console) PointerDown(x, y int) {
	c.sel.Begin(c.pointerOffset(x, y))
}

// PointerDrag extends the selection to a viewport cell.
func (c *Console) PointerDrag(x, y int) {
	c.sel.Extend(c.pointerOffset(x, y))
}

// PointerScroll moves the viewport by wheel steps, three rows per step.
func (c *Console) PointerScroll(steps int) {
	c.grid.SetScroll(c.grid.Scroll() - steps*3)
}

// MiddleClick pastes the clipboard at the edit cursor.
func (c *Console) MiddleClick() {
	if c.state != StateReady {
		return
	}
	c.PasteClipboard()
}

// SelectionRange exposes the selected offsets to the presentation layer.
func (c *Console) SelectionRange() (lo, hi int, ok bool) {
	return c.sel.Range()
}

// CopySelection copies the selected text to the clipboard. Empty cells are
// skipped and a newline is emitted at each row boundary inside the
// selection.
func (c *Console) CopySelection() {
	lo, hi, ok := c.sel.Range()
	if !ok || c.clip == nil {
		return
	}

	var out []byte
	for offset := lo; offset < hi; offset++ {
		if offset != lo && offset%BufferWidth == 0 {
			out = append(out, '\n')
		}
		if ch, _ := c.grid.Cell(offset); ch != 0 {
			out = append(out, ch)
		}
	}
	c.clip.Set(string(out))
}

// PasteClipboard inserts the clipboard's printable characters at the edit
// cursor. Everything else, newlines included, is dropped.
func (c *Console) PasteClipboard() {
	if c.clip == nil {
		return
	}
	text, ok := c.clip.Get()
	if !ok {
		return
	}

	var printable []byte
	for i := 0; i < len(text); i++ {
		if text[i] >= ' ' && text[i] <= '~' {
			printable = append(printable, text[i])
		}
	}
	c.insertText(string(printable))
	c.grid.normalize()
}
