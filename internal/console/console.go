// Package console implements the interactive command console of the
// tinycart runtime: the scrollback grid, the line editor, command dispatch
// and the deferred-completion protocol for commands that wait on the
// filesystem, a confirmation dialog or the network.
package console

import (
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/tinycart/tinycart/internal/cart"
	"github.com/tinycart/tinycart/internal/command"
	"github.com/tinycart/tinycart/internal/config"
)

// State is the console execution state. Exactly one command may be in
// flight at a time; input is accepted only in StateReady.
type State uint8

const (
	// StateReady accepts input.
	StateReady State = iota
	// StateBusy has a pending deferred operation; keystrokes are ignored.
	StateBusy
	// StateCompleting runs the resumed continuation of a deferred
	// operation until it signals done.
	StateCompleting
)

// Handler executes one console command. The handler owns completion: it
// must end with done(), directly or from a resumed continuation.
type Handler func(*Console)

// Cursor blink timing, in ticks.
const (
	CursorBlinkPeriod = 60
	cursorDelayTicks  = CursorBlinkPeriod / 2
)

const compoundSep = " & "

// Options wires the console to its collaborators. Nil collaborators degrade
// gracefully: commands that need them report an error instead.
type Options struct {
	FS        Filesystem
	Net       Getter
	Clipboard Clipboard
	Confirm   Confirmer
	Runner    Runner
	Config    *config.Config

	// Batch disables prompts and confirmation dialogs; destructive
	// commands auto-reject and the console exits once Startup runs dry.
	Batch bool

	// Startup is an optional " & "-separated compound command string
	// executed before interactive input.
	Startup string

	// Echo duplicates printed text to a writer (stdout in batch mode).
	Echo io.Writer

	// Exit terminates the process in batch mode.
	Exit func(code int)
}

// Console owns the text grid, viewport, input line and selection. No other
// component writes them; collaborators only return data the console prints.
// All methods must be called from the tick goroutine except Post.
type Console struct {
	grid       *Grid
	inputStart int
	editPos    int
	sel        Selection
	history    History

	registry *command.Registry[Handler]
	api      []command.APIItem
	desc     command.Desc

	state   State
	pending string

	mu          sync.Mutex
	completions []func()

	fs      Filesystem
	net     Getter
	clip    Clipboard
	confirm Confirmer
	runner  Runner
	cfg     *config.Config

	cart     *cart.Cartridge
	cartName string
	cartPath string
	changed  bool

	batch  bool
	queue  string
	failed bool
	echo   io.Writer
	exit   func(code int)

	tickCount   uint64
	cursorDelay int
}

// New creates a console. The command and API tables are built and sorted
// here, once; they are never mutated afterwards.
func New(opts Options) *Console {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	exit := opts.Exit
	if exit == nil {
		exit = func(int) {}
	}

	c := &Console{
		grid:    NewGrid(),
		fs:      opts.FS,
		net:     opts.Net,
		clip:    opts.Clipboard,
		confirm: opts.Confirm,
		runner:  opts.Runner,
		cfg:     cfg,
		cart:    cart.Default(),
		batch:   opts.Batch,
		queue:   opts.Startup,
		echo:    opts.Echo,
		exit:    exit,
		state:   StateBusy,
	}
	c.registry = command.NewRegistry(c.commandSpecs())
	c.api = command.SortAPI(apiTable)
	return c
}

// Tick advances the console one frame: runs queued completions, counts down
// the cursor delay and feeds the next batch command once the console is
// ready. Nothing here blocks.
func (c *Console) Tick() {
	first := c.tickCount == 0
	c.tickCount++

	if first {
		c.startup()
	}

	for _, fn := range c.drain() {
		fn()
	}

	if c.cursorDelay > 0 {
		c.cursorDelay--
	}

	if c.state != StateReady {
		return
	}
	if c.queue != "" && !c.failed {
		c.nextQueued()
	} else if c.batch {
		c.exit(0)
	}
}

func (c *Console) startup() {
	if !c.batch {
		c.printBack("\n hello! type ")
		c.printFront("help")
		c.printBack(" for help\n")

		if c.cfg.CheckNewVersion && c.net != nil {
			c.checkVersion()
		}
	}
	c.done()
}

func (c *Console) nextQueued() {
	line := c.queue
	if i := strings.Index(line, compoundSep); i >= 0 {
		c.queue = line[i+len(compoundSep):]
		line = line[:i]
	} else {
		c.queue = ""
	}

	if !c.batch {
		c.printFront(line)
	}
	c.exec(line)
}

// exec parses and dispatches one submitted line. Unknown commands report
// and complete immediately; everything else is the handler's problem.
func (c *Console) exec(line string) {
	c.state = StateBusy
	c.desc = command.Parse(line)

	if c.desc.Command == "" {
		c.done()
		return
	}

	spec, ok := c.registry.Lookup(c.desc.Command)
	if !ok {
		c.printLine()
		c.printError("unknown command:")
		c.printError(c.desc.Command)
		c.done()
		return
	}

	spec.Handler(c)
}

func (c *Console) submit() {
	text := c.InputText()
	if text == "" {
		c.done()
		return
	}
	c.history.Append(text)
	c.exec(text)
}

// done completes the current command: the prompt is reprinted (outside
// batch mode), the selection cleared and the descriptor freed.
func (c *Console) done() { c.doneLine(true) }

func (c *Console) doneLine(newLine bool) {
	if !c.batch {
		if newLine {
			c.printLine()
		}
		if c.fs != nil {
			if dir := c.fs.Dir(); dir != "" {
				c.printBack(dir)
			}
		}
		c.printFront(">")
	}

	c.state = StateReady
	c.pending = ""
	c.sel.Clear()
	c.desc = command.Desc{}
}

// Post queues fn for the next tick. It is the only method safe to call from
// other goroutines.
func (c *Console) Post(fn func()) {
	c.mu.Lock()
	c.completions = append(c.completions, fn)
	c.mu.Unlock()
}

func (c *Console) drain() []func() {
	c.mu.Lock()
	fns := c.completions
	c.completions = nil
	c.mu.Unlock()
	return fns
}

// beginAsync marks the console busy and returns the token of the single
// outstanding deferred operation.
func (c *Console) beginAsync() string {
	c.state = StateBusy
	c.pending = uuid.NewString()
	return c.pending
}

// resume queues the continuation of a deferred operation. The continuation
// runs on a later tick, checks the token so a stale callback cannot revive
// a finished command, and must leave the console in Ready or Busy.
func (c *Console) resume(token string, fn func()) {
	c.Post(func() {
		if c.pending != token {
			return
		}
		c.pending = ""
		c.state = StateCompleting
		fn()
		if c.state == StateCompleting {
			c.state = StateReady
		}
	})
}

// confirmCommand gates a destructive command behind a modal yes/no request.
// In batch mode the request auto-rejects and the warning text is printed.
func (c *Console) confirmCommand(rows []string, confirmed Handler) {
	if c.batch || c.confirm == nil {
		for _, row := range rows {
			c.printError(row)
			c.printLine()
		}
		c.done()
		return
	}

	token := c.beginAsync()
	c.confirm.Request(rows, func(yes bool) {
		c.resume(token, func() {
			if yes {
				confirmed(c)
			} else {
				c.done()
			}
		})
	})
}

// print appends text at the edit cursor and starts a fresh input window
// right after it.
func (c *Console) print(text string, color Color, wrapIndent int) {
	if c.echo != nil {
		io.WriteString(c.echo, text)
	}

	c.grid.MoveCursorTo(c.grid.CursorOffset() + c.editPos)
	c.grid.Print(text, color, wrapIndent)

	c.inputStart = c.grid.CursorOffset()
	c.editPos = 0
}

func (c *Console) printBack(text string)  { c.print(text, ColorBack, 0) }
func (c *Console) printFront(text string) { c.print(text, ColorFront, 0) }
func (c *Console) printLine()             { c.print("\n", ColorBG, 0) }

func (c *Console) printError(text string) {
	if c.batch {
		c.failed = true
	}
	c.print(text, ColorError, 0)
}

// printTable prints preformatted table text, muting the frame characters.
func (c *Console) printTable(text string) {
	if c.echo != nil {
		io.WriteString(c.echo, text)
	}

	c.grid.MoveCursorTo(c.grid.CursorOffset() + c.editPos)
	for i := 0; i < len(text); i++ {
		color := ColorFront
		switch text[i] {
		case '+', '|', '-':
			color = ColorDarkGrey
		}
		c.grid.WriteSymbol(text[i], color)
	}

	c.inputStart = c.grid.CursorOffset()
	c.editPos = 0
}

// Key identifies a console keystroke.
type Key uint8

// Console keys.
const (
	KeyNone Key = iota
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyTab
	KeyPageUp
	KeyPageDown
	KeyCopy
	KeyPaste
	KeyClearScreen
)

// HandleKey processes one keystroke. Keys are ignored unless the console is
// ready; every keystroke suppresses cursor blink briefly.
func (c *Console) HandleKey(k Key) {
	if c.state != StateReady {
		return
	}
	c.cursorDelay = cursorDelayTicks

	switch k {
	case KeyEnter:
		c.submit()
	case KeyBackspace:
		c.backspace()
	case KeyDelete:
		c.deleteAtCursor()
	case KeyHome:
		c.moveHome()
	case KeyEnd:
		c.moveEnd()
	case KeyLeft:
		c.moveLeft()
	case KeyRight:
		c.moveRight()
	case KeyUp:
		c.historyUp()
	case KeyDown:
		c.historyDown()
	case KeyTab:
		c.completeInput()
	case KeyPageUp:
		c.grid.SetScroll(c.grid.Scroll() - BufferHeight/2)
	case KeyPageDown:
		c.grid.SetScroll(c.grid.Scroll() + BufferHeight/2)
	case KeyCopy:
		c.CopySelection()
	case KeyPaste:
		c.PasteClipboard()
	case KeyClearScreen:
		c.clearScreen()
	}
}

// HandleRune inserts a printable character at the edit cursor.
func (c *Console) HandleRune(r rune) {
	if c.state != StateReady {
		return
	}
	if r < ' ' || r > '~' {
		return
	}

	c.insertText(string(byte(r)))
	c.grid.normalize()
	c.cursorDelay = cursorDelayTicks
}

func (c *Console) clearScreen() {
	c.grid.Clear()
	c.inputStart = 0
	c.editPos = 0
	c.doneLine(false)
}

// Grid exposes the text grid to the presentation layer. Read-only by
// convention; only the console mutates it.
func (c *Console) Grid() *Grid { return c.grid }

// State returns the current execution state.
func (c *Console) State() State { return c.state }

// TickCount returns the number of elapsed ticks.
func (c *Console) TickCount() uint64 { return c.tickCount }

// CursorVisible reports whether the blinking input cursor shows this frame.
func (c *Console) CursorVisible() bool {
	if c.state != StateReady {
		return false
	}
	return c.cursorDelay > 0 || c.tickCount%CursorBlinkPeriod < CursorBlinkPeriod/2
}

// InputCursor returns the edit cursor position in grid coordinates, plus
// the character under it (zero for an empty cell).
func (c *Console) InputCursor() (Point, byte) {
	offset := c.inputOffset()
	if offset >= BufferSize {
		offset = BufferSize - 1
	}
	ch, _ := c.grid.Cell(offset)
	return Point{X: offset % BufferWidth, Y: offset / BufferWidth}, ch
}

// SetNet installs the network client. It is wired after construction
// because the client posts its events through the console.
func (c *Console) SetNet(net Getter) { c.net = net }

// SetCart installs a preloaded cartridge, as when one is named on the
// command line.
func (c *Console) SetCart(name string, crt *cart.Cartridge) {
	c.cart = crt
	c.cartName = name
	if c.fs != nil {
		c.cartPath = c.fs.Path(name)
	}
	c.changed = false
}

// MarkChanged records that the loaded cartridge has unsaved changes, which
// arms the confirmation gate on load/new.
func (c *Console) MarkChanged() { c.changed = true }

// CartName returns the name of the loaded cartridge, empty for a fresh one.
func (c *Console) CartName() string { return c.cartName }
