// Package term renders the console on a terminal through tcell and feeds
// terminal input back into it. It also hosts the modal confirmation
// dialog.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/tinycart/tinycart/internal/cart"
	"github.com/tinycart/tinycart/internal/console"
)

// UI owns the tcell screen and the palette styles.
type UI struct {
	screen   tcell.Screen
	colors   [16]tcell.Color
	modal    *modal
	dragging bool
}

type modal struct {
	lines    []string
	onAnswer func(bool)
}

// New initializes the terminal screen and builds the palette.
func New() (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	u := &UI{screen: screen}
	for i, hex := range cart.DefaultPalette {
		col, err := colorful.Hex("#" + hex)
		if err != nil {
			screen.Fini()
			return nil, err
		}
		r, g, b := col.RGB255()
		u.colors[i] = tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return u, nil
}

// Close restores the terminal.
func (u *UI) Close() { u.screen.Fini() }

// PollEvent blocks for the next terminal event.
func (u *UI) PollEvent() tcell.Event { return u.screen.PollEvent() }

// Interrupt wakes up a blocked PollEvent during shutdown.
func (u *UI) Interrupt() {
	u.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Request shows the modal confirmation dialog. The answer is delivered
// from the event loop when the user hits y or n.
func (u *UI) Request(lines []string, onAnswer func(yes bool)) {
	u.modal = &modal{lines: lines, onAnswer: onAnswer}
}

var _ console.Confirmer = (*UI)(nil)

// Render draws the visible console window, the selection, the cursor and
// the modal dialog when one is up.
func (u *UI) Render(c *console.Console) {
	grid := c.Grid()
	scroll := grid.Scroll()
	selLo, selHi, selOK := c.SelectionRange()
	bg := u.colors[console.ColorBG]

	for y := 0; y < console.BufferHeight; y++ {
		for x := 0; x < console.BufferWidth; x++ {
			offset := (scroll+y)*console.BufferWidth + x
			ch, color := grid.Cell(offset)
			if ch == 0 {
				ch = ' '
			}

			style := tcell.StyleDefault.Foreground(u.colors[color]).Background(bg)
			if selOK && offset >= selLo && offset < selHi {
				style = style.Reverse(true)
			}
			u.screen.SetContent(x, y, rune(ch), nil, style)
		}
	}

	if c.CursorVisible() {
		pt, ch := c.InputCursor()
		if row := pt.Y - scroll; row >= 0 && row < console.BufferHeight {
			if ch == 0 {
				ch = ' '
			}
			style := tcell.StyleDefault.
				Foreground(u.colors[console.ColorBG]).
				Background(u.colors[console.ColorCursor])
			u.screen.SetContent(pt.X, row, rune(ch), nil, style)
		}
	}

	if u.modal != nil {
		u.renderModal()
	}

	u.screen.Show()
}

func (u *UI) renderModal() {
	width := 24
	top := (console.BufferHeight - len(u.modal.lines) - 4) / 2
	if top < 0 {
		top = 0
	}
	left := (console.BufferWidth - width) / 2

	style := tcell.StyleDefault.
		Foreground(u.colors[console.ColorFront]).
		Background(u.colors[console.ColorDarkBlue])

	box := append([]string{""}, u.modal.lines...)
	box = append(box, "", "(Y)ES / (N)O")
	for i, line := range box {
		pad := (width - len(line)) / 2
		for x := 0; x < width; x++ {
			ch := ' '
			if x >= pad && x < pad+len(line) {
				ch = rune(line[x-pad])
			}
			u.screen.SetContent(left+x, top+i, ch, nil, style)
		}
	}
}

// answerModal resolves the dialog; the callback fires exactly once.
func (u *UI) answerModal(yes bool) {
	m := u.modal
	u.modal = nil
	m.onAnswer(yes)
}

// HandleEvent feeds one terminal event into the console. It reports false
// when the user asked to quit.
func (u *UI) HandleEvent(ev tcell.Event, c *console.Console) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if u.modal != nil {
			switch {
			case ev.Rune() == 'y' || ev.Rune() == 'Y' || ev.Key() == tcell.KeyEnter:
				u.answerModal(true)
			case ev.Rune() == 'n' || ev.Rune() == 'N' || ev.Key() == tcell.KeyEscape:
				u.answerModal(false)
			}
			return true
		}
		return u.handleKey(ev, c)

	case *tcell.EventMouse:
		if u.modal == nil {
			u.handleMouse(ev, c)
		}
	}
	return true
}

func (u *UI) handleKey(ev *tcell.EventKey, c *console.Console) bool {
	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return false
	case tcell.KeyEnter:
		c.HandleKey(console.KeyEnter)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		c.HandleKey(console.KeyBackspace)
	case tcell.KeyDelete:
		c.HandleKey(console.KeyDelete)
	case tcell.KeyHome:
		c.HandleKey(console.KeyHome)
	case tcell.KeyEnd:
		c.HandleKey(console.KeyEnd)
	case tcell.KeyLeft:
		c.HandleKey(console.KeyLeft)
	case tcell.KeyRight:
		c.HandleKey(console.KeyRight)
	case tcell.KeyUp:
		c.HandleKey(console.KeyUp)
	case tcell.KeyDown:
		c.HandleKey(console.KeyDown)
	case tcell.KeyTab:
		c.HandleKey(console.KeyTab)
	case tcell.KeyPgUp:
		c.HandleKey(console.KeyPageUp)
	case tcell.KeyPgDn:
		c.HandleKey(console.KeyPageDown)
	case tcell.KeyCtrlC:
		c.HandleKey(console.KeyCopy)
	case tcell.KeyCtrlV:
		c.HandleKey(console.KeyPaste)
	case tcell.KeyCtrlL:
		c.HandleKey(console.KeyClearScreen)
	case tcell.KeyRune:
		c.HandleRune(ev.Rune())
	}
	return true
}

func (u *UI) handleMouse(ev *tcell.EventMouse, c *console.Console) {
	x, y := ev.Position()

	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		c.PointerScroll(1)
	case ev.Buttons()&tcell.WheelDown != 0:
		c.PointerScroll(-1)
	case ev.Buttons()&tcell.Button3 != 0:
		c.MiddleClick()
	case ev.Buttons()&tcell.Button1 != 0:
		if u.dragging {
			c.PointerDrag(x, y)
		} else {
			c.PointerDown(x, y)
			u.dragging = true
		}
	default:
		u.dragging = false
	}
}
