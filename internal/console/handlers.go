package console

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/tinycart/tinycart/internal/cart"
	"github.com/tinycart/tinycart/internal/command"
	"github.com/tinycart/tinycart/internal/config"
	"github.com/tinycart/tinycart/internal/netget"
)

// Version is the runtime version reported by help and compared against the
// update service.
const Version = "1.0.0"

// CartExt is the cartridge file extension.
const CartExt = ".cart"

func (c *Console) commandSpecs() []command.Spec[Handler] {
	return []command.Spec[Handler]{
		{
			Name: "help", Help: "show available commands and help topics",
			Usage:   "help [<command>|commands|api|version|spec|ram|startup|welcome]",
			Handler: (*Console).cmdHelp,
		},
		{
			Name: "new", Help: "create a new cart",
			Usage:   "new [lua]",
			Handler: (*Console).cmdNew,
		},
		{
			Name: "load", Help: "load cart",
			Usage:   "load <cart> [code|tiles|sprites|map|palette|flags|screen]",
			Handler: (*Console).cmdLoad,
		},
		{
			Name: "save", Help: "save cart",
			Usage:   "save [<cart>]",
			Handler: (*Console).cmdSave,
		},
		{
			Name: "run", Help: "run loaded cart",
			Handler: (*Console).cmdRun,
		},
		{
			Name: "resume", Help: "resume last run cart",
			Handler: (*Console).cmdResume,
		},
		{
			Name: "eval", Alias: "=", Help: "run code",
			Usage:   "eval <code>",
			Handler: (*Console).cmdEval,
		},
		{
			Name: "dir", Alias: "ls", Help: "show list of files",
			Handler: (*Console).cmdDir,
		},
		{
			Name: "cd", Help: "change directory",
			Usage:   "cd <path>",
			Handler: (*Console).cmdChangeDir,
		},
		{
			Name: "mkdir", Alias: "folder", Help: "make a directory",
			Usage:   "mkdir <name>",
			Handler: (*Console).cmdMakeDir,
		},
		{
			Name: "del", Help: "delete file or directory",
			Usage:   "del <name>",
			Handler: (*Console).cmdDelete,
		},
		{
			Name: "export", Help: "export cart section, html or native build",
			Usage:   "export <code|tiles|sprites|map|palette|flags|screen|help|win|linux|mac|html> <file> [bank=0]",
			Handler: (*Console).cmdExport,
		},
		{
			Name: "import", Help: "import cart section from file",
			Usage:   "import <code|tiles|sprites|map|palette|flags|screen> <file> [bank=0]",
			Handler: (*Console).cmdImport,
		},
		{
			Name: "demo", Help: "install demo carts",
			Handler: (*Console).cmdDemo,
		},
		{
			Name: "cls", Alias: "clear", Help: "clear screen",
			Handler: (*Console).cmdClear,
		},
		{
			Name: "config", Help: "show or reset configuration",
			Usage:   "config [reset]",
			Handler: (*Console).cmdConfig,
		},
		{
			Name: "exit", Alias: "quit", Help: "exit the application",
			Handler: (*Console).cmdExit,
		},
	}
}

func (c *Console) cmdRun() {
	if c.runner == nil {
		c.printError("\ncart runtime is not available")
		c.done()
		return
	}
	if err := c.runner.Run(c.cart.Code); err != nil {
		c.printError("\n" + err.Error())
		c.done()
		return
	}

	name := c.cartName
	if name == "" {
		name = cart.Metatag(c.cart.Code, "title")
	}
	if name == "" {
		name = "cart"
	}
	c.printLine()
	c.printBack("running ")
	c.printFront(name)
	c.done()
}

func (c *Console) cmdResume() {
	if c.runner == nil {
		c.printError("\ncart runtime is not available")
		c.done()
		return
	}
	if err := c.runner.Resume(); err != nil {
		c.printError("\n" + err.Error())
	} else {
		c.printBack("\nresumed")
	}
	c.done()
}

// cmdEval evaluates everything after the command token, taken verbatim from
// the submitted line so inner spacing survives the parser.
func (c *Console) cmdEval() {
	code := c.desc.Src
	if i := strings.IndexByte(code, ' '); i >= 0 {
		code = strings.TrimSpace(code[i+1:])
	} else {
		code = ""
	}

	if code == "" {
		c.printError("\nerror: invalid parameters.")
		c.printUsageOf("eval")
		c.done()
		return
	}
	if c.runner == nil {
		c.printError("\ncart runtime is not available")
		c.done()
		return
	}

	out, err := c.runner.Eval(code)
	if err != nil {
		c.printError("\n" + err.Error())
	} else {
		c.printLine()
		c.printBack(out)
	}
	c.done()
}

func (c *Console) cmdClear() {
	c.clearScreen()
}

func (c *Console) cmdConfig() {
	switch arg := c.desc.Arg(0); arg {
	case "":
		text, err := config.Marshal(c.cfg)
		if err != nil {
			c.printError("\n" + err.Error())
			c.done()
			return
		}
		c.printLine()
		c.printBack(text)
	case "reset":
		*c.cfg = *config.Default()
		c.printBack("\nconfig reset :)")
	default:
		c.printError("\nunknown parameter: " + arg)
	}
	c.done()
}

func (c *Console) cmdExit() {
	c.exit(0)
	c.done()
}

// checkVersion asks the update service for the latest version and, when it
// differs from ours, drops a notice onto the third row of the start screen
// without disturbing the prompt.
func (c *Console) checkVersion() {
	c.net.Get("/api?fn=version", func(ev netget.Event) {
		if ev.Type != netget.Done {
			return
		}
		latest := gjson.GetBytes(ev.Data, "version").String()
		if latest == "" || latest == Version {
			return
		}
		c.noteAt(2*BufferWidth, " new version "+latest+" available", ColorError)
	})
}

// noteAt writes text straight into the grid at a fixed offset, leaving the
// cursor and input window alone.
func (c *Console) noteAt(offset int, text string, color Color) {
	for i := 0; i < len(text) && offset+i < BufferSize; i++ {
		c.grid.setSymbol(text[i], color, offset+i)
	}
}
