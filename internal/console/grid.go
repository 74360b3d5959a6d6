package console

// Grid geometry. The scrollback holds BufferScreens full screens of text;
// only BufferHeight rows are visible at a time.
const (
	BufferWidth   = 40
	BufferHeight  = 17
	BufferScreens = 64
	BufferRows    = BufferHeight * BufferScreens
	BufferSize    = BufferWidth * BufferRows
)

// Point is a cell position in grid coordinates.
type Point struct {
	X int
	Y int
}

// Grid is the fixed-capacity character and color buffer backing the console
// scrollback, together with the print cursor and the viewport scroll offset.
// The character and color slices are always exactly BufferSize long; a zero
// character marks an empty cell.
type Grid struct {
	chars  []byte
	colors []Color
	cursor Point
	scroll int
}

// NewGrid creates an empty grid with the cursor at the origin.
func NewGrid() *Grid {
	return &Grid{
		chars:  make([]byte, BufferSize),
		colors: make([]Color, BufferSize),
	}
}

// Clear empties the buffer and resets cursor and scroll.
func (g *Grid) Clear() {
	for i := range g.chars {
		g.chars[i] = 0
		g.colors[i] = ColorBG
	}
	g.cursor = Point{}
	g.scroll = 0
}

// Cursor returns the print cursor position.
func (g *Grid) Cursor() Point { return g.cursor }

// CursorOffset returns the print cursor as a linear buffer offset.
func (g *Grid) CursorOffset() int {
	return g.cursor.X + g.cursor.Y*BufferWidth
}

// Scroll returns the topmost visible logical row.
func (g *Grid) Scroll() int { return g.scroll }

// SetScroll moves the viewport, clamped to the buffer and to the cursor row.
func (g *Grid) SetScroll(v int) {
	if v < 0 {
		v = 0
	}
	if v > g.cursor.Y {
		v = g.cursor.Y
	}
	if max := BufferRows - BufferHeight; v > max {
		v = max
	}
	g.scroll = v
}

// Cell returns the character and color at a buffer offset.
func (g *Grid) Cell(offset int) (byte, Color) {
	return g.chars[offset], g.colors[offset]
}

// MoveCursorTo places the print cursor at a linear buffer offset.
func (g *Grid) MoveCursorTo(offset int) {
	g.cursor = Point{X: offset % BufferWidth, Y: offset / BufferWidth}
}

func (g *Grid) nextLine() {
	g.cursor.X = 0
	g.cursor.Y++
}

// isWrap reports wrap-point characters. They are printed muted and a
// non-whitespace run may break before them.
func isWrap(sym byte) bool {
	switch sym {
	case ' ', '\t', '|':
		return true
	}
	return false
}

// normalize scrolls the buffer until the cursor is inside it, then drags the
// viewport down so the cursor stays visible.
func (g *Grid) normalize() {
	for g.cursor.Y >= BufferRows {
		copy(g.chars, g.chars[BufferWidth:])
		copy(g.colors, g.colors[BufferWidth:])
		last := BufferSize - BufferWidth
		for i := last; i < BufferSize; i++ {
			g.chars[i] = 0
			g.colors[i] = ColorBG
		}
		g.cursor.Y--
	}

	if min := g.cursor.Y - BufferHeight + 1; g.scroll < min {
		g.scroll = min
	}
}

func (g *Grid) setSymbol(sym byte, color Color, offset int) {
	g.chars[offset] = sym
	g.colors[offset] = color
}

// Print appends text at the cursor. A '\n' moves to column 0 of the next
// row. A non-whitespace run that does not fit in the remaining columns
// breaks to the next line first and resumes at wrapIndent columns in, which
// gives tabular output a hanging indent. Wrap characters are written with a
// muted color regardless of the requested one. Writes that would push the
// cursor past the last row scroll the buffer; printing never fails.
func (g *Grid) Print(text string, color Color, wrapIndent int) {
	for i := 0; i < len(text); i++ {
		sym := text[i]

		g.normalize()

		if sym == '\n' {
			g.nextLine()
			continue
		}

		if !isWrap(sym) {
			fit := BufferWidth
			for j := i; j < len(text) && text[j] != '\n' && !isWrap(text[j]); j++ {
				fit--
			}

			if fit > 0 && fit <= g.cursor.X {
				g.nextLine()
				g.cursor.X = wrapIndent
			}
		}

		c := color
		if isWrap(sym) {
			c = colorWrap
		}
		g.setSymbol(sym, c, g.CursorOffset())

		g.cursor.X++
		if g.cursor.X >= BufferWidth {
			g.nextLine()
		}
	}
}

// WriteSymbol writes one character at the cursor without run measurement,
// wrapping at the last column. Used for preformatted table output.
func (g *Grid) WriteSymbol(sym byte, color Color) {
	g.normalize()

	if sym == '\n' {
		g.nextLine()
		return
	}

	g.setSymbol(sym, color, g.CursorOffset())

	g.cursor.X++
	if g.cursor.X >= BufferWidth {
		g.nextLine()
	}
}

// shiftRight moves cells in [offset, offset+count) right by n, clearing
// nothing; callers fill the vacated cells.
func (g *Grid) shiftRight(offset, count, n int) {
	copy(g.chars[offset+n:offset+n+count], g.chars[offset:offset+count])
	copy(g.colors[offset+n:offset+n+count], g.colors[offset:offset+count])
}

// shiftLeft moves cells in [offset+n, offset+n+count) left by n.
func (g *Grid) shiftLeft(offset, count, n int) {
	copy(g.chars[offset:offset+count], g.chars[offset+n:offset+n+count])
	copy(g.colors[offset:offset+count], g.colors[offset+n:offset+n+count])
	for i := offset + count; i < offset+count+n; i++ {
		g.chars[i] = 0
		g.colors[i] = ColorBG
	}
}

// textLen returns the length of the NUL-terminated text starting at offset.
func (g *Grid) textLen(offset int) int {
	n := 0
	for i := offset; i < BufferSize && g.chars[i] != 0; i++ {
		n++
	}
	return n
}

// textAt returns the NUL-terminated text starting at offset.
func (g *Grid) textAt(offset int) string {
	return string(g.chars[offset : offset+g.textLen(offset)])
}
