package console

import "strings"

// The input line lives directly in the grid: it starts at inputStart, right
// after the last printed character, and runs to the next NUL cell. editPos
// is the edit cursor's offset within the line.

func (c *Console) inputOffset() int {
	return c.inputStart + c.editPos
}

// InputText returns the current input line.
func (c *Console) InputText() string {
	return c.grid.textAt(c.inputStart)
}

func (c *Console) inputLen() int {
	return c.grid.textLen(c.inputStart)
}

func (c *Console) moveHome() { c.editPos = 0 }

func (c *Console) moveEnd() { c.editPos = c.inputLen() }

func (c *Console) moveLeft() {
	if c.editPos > 0 {
		c.editPos--
	}
}

func (c *Console) moveRight() {
	if c.editPos < c.inputLen() {
		c.editPos++
	}
}

// insertText inserts printable text at the edit cursor, pushing the rest of
// the line right. Text that would not fit in the buffer is dropped
// silently; the tail is truncated if the push would run past the end.
func (c *Console) insertText(text string) {
	offset := c.inputOffset()
	size := len(text)
	if size == 0 || size >= BufferSize-offset {
		return
	}

	tail := c.grid.textLen(offset)
	if offset+size+tail > BufferSize {
		tail = BufferSize - offset - size
	}

	c.grid.shiftRight(offset, tail, size)
	for i := 0; i < size; i++ {
		c.grid.setSymbol(text[i], ColorInput, offset+i)
	}

	c.editPos += size
	c.sel.Clear()
}

// deleteAtCursor removes the character under the edit cursor.
func (c *Console) deleteAtCursor() {
	offset := c.inputOffset()
	if n := c.grid.textLen(offset); n > 0 {
		c.grid.shiftLeft(offset, n-1, 1)
	}
	c.sel.Clear()
}

func (c *Console) backspace() {
	if c.editPos > 0 {
		c.editPos--
		c.deleteAtCursor()
	}
}

// clearInput empties the input line and parks the edit cursor at its start.
func (c *Console) clearInput() {
	offset := c.inputStart
	for i := offset; i < BufferSize && c.grid.chars[i] != 0; i++ {
		c.grid.setSymbol(0, ColorBG, i)
	}
	c.editPos = 0
	c.sel.Clear()
}

// loadInput replaces the input line, as when recalling history.
func (c *Console) loadInput(text string) {
	c.clearInput()
	c.insertText(text)
}

func (c *Console) historyUp() {
	if line, ok := c.history.Prev(); ok {
		c.loadInput(line)
	}
}

func (c *Console) historyDown() {
	if line, ok := c.history.Next(); ok {
		c.loadInput(line)
	}
}

// completeInput expands the input on Tab. Before the first space it
// completes a command name; after it, a file name from the current
// directory, which defers on the filesystem enumeration. Completion never
// reprints the prompt.
func (c *Console) completeInput() {
	input := c.InputText()

	space := strings.LastIndexByte(input, ' ')
	if space < 0 {
		for _, name := range c.registry.Names() {
			if len(name) > len(input) && strings.HasPrefix(name, input) {
				c.moveEnd()
				c.insertText(name[len(input):])
				return
			}
		}
		return
	}

	if c.fs == nil {
		return
	}

	prefix := input[space+1:]
	token := c.beginAsync()
	match := ""
	c.fs.Enum(func(name string, dir bool) bool {
		if len(name) > len(prefix) && strings.HasPrefix(name, prefix) {
			match = name
			return false
		}
		return true
	}, func() {
		c.resume(token, func() {
			if match != "" {
				c.moveEnd()
				c.insertText(match[len(prefix):])
			}
		})
	})
}
