package console

import (
	"fmt"
	"strings"

	"github.com/tinycart/tinycart/internal/cart"
	"github.com/tinycart/tinycart/internal/netget"
)

var loadWarning = []string{
	"YOU HAVE",
	"UNSAVED CHANGES",
	"",
	"DO YOU REALLY WANT",
	"TO LOAD CART?",
}

var overwriteWarning = []string{
	"THE CART",
	"ALREADY EXISTS",
	"",
	"DO YOU WANT TO",
	"OVERWRITE IT?",
}

var newWarning = []string{
	"YOU HAVE",
	"UNSAVED CHANGES",
	"",
	"DO YOU REALLY WANT",
	"TO CREATE NEW CART?",
}

// withCartExt appends the cartridge extension to bare names.
func withCartExt(name string) string {
	if strings.ContainsRune(name, '.') {
		return name
	}
	return name + CartExt
}

func (c *Console) cmdNew() {
	if lang := strings.ToLower(c.desc.Arg(0)); lang != "" && lang != "lua" {
		c.printError("\nunknown parameter: " + lang)
		c.done()
		return
	}

	if c.changed {
		c.confirmCommand(newWarning, (*Console).newCart)
		return
	}
	c.newCart()
}

func (c *Console) newCart() {
	c.cart = cart.Default()
	c.cartName = ""
	c.cartPath = ""
	c.changed = false
	c.printBack("\nnew cart is created")
	c.done()
}

func (c *Console) cmdLoad() {
	if !c.requireFS() {
		return
	}

	name := c.desc.Arg(0)
	if name == "" {
		c.printError("\nerror: cart name is missing")
		c.printUsageOf("load")
		c.done()
		return
	}

	section := strings.ToLower(c.desc.Arg(1))
	if section != "" && !cart.IsSection(section) {
		c.printError("\nunknown parameter: " + section)
		c.done()
		return
	}

	if c.changed {
		c.confirmCommand(loadWarning, func(c *Console) { c.loadCart(name, section) })
		return
	}
	c.loadCart(name, section)
}

func (c *Console) loadCart(name, section string) {
	name = withCartExt(name)

	data, ok := c.fs.Load(name)
	if !ok {
		c.printError("\ncart loading error")
		c.done()
		return
	}
	loaded, err := cart.Load(data)
	if err != nil {
		c.printError("\ncart loading error")
		c.done()
		return
	}

	if section != "" {
		c.loadSection(loaded, section)
	} else {
		c.cart = loaded
		c.cartName = name
		c.cartPath = c.fs.Path(name)
		c.changed = false
	}

	c.printLine()
	c.printBack("cart ")
	c.printFront(name)
	c.printBack(" loaded!")
	c.done()
}

// loadSection copies one named section from src into the loaded cart,
// leaving everything else in place. Code is shared across banks; the asset
// sections are copied bank by bank.
func (c *Console) loadSection(src *cart.Cartridge, section string) {
	if section == "code" {
		c.cart.Code = src.Code
	} else {
		for bank := 0; bank < cart.BankCount; bank++ {
			if data, err := src.Banks[bank].Section(section); err == nil {
				_ = cart.CopySection(c.cart, bank, section, data)
			}
		}
	}
	c.changed = true
}

func (c *Console) cmdSave() {
	if !c.requireFS() {
		return
	}

	name := c.desc.Arg(0)
	if name == "" {
		name = c.cartName
	}
	if name == "" {
		c.printError("\nerror: cart name is missing")
		c.printUsageOf("save")
		c.done()
		return
	}
	name = withCartExt(name)

	if name != c.cartName && c.fs.Exists(name) {
		c.confirmCommand(overwriteWarning, func(c *Console) { c.saveCart(name) })
		return
	}
	c.saveCart(name)
}

func (c *Console) saveCart(name string) {
	if !c.fs.Save(name, c.cart.Save(), true) {
		c.printError("\ncart saving error")
		c.done()
		return
	}

	c.cartName = name
	c.cartPath = c.fs.Path(name)
	c.changed = false
	c.printBack("\ncart saved!")
	c.done()
}

var nativeTargets = map[string]bool{
	"win": true, "linux": true, "mac": true, "html": true,
}

// cmdExport writes a cart section to a file, generates the help document,
// or downloads a native build of the loaded cart from the export service.
func (c *Console) cmdExport() {
	if !c.requireFS() {
		return
	}

	what := c.desc.Arg(0)
	file := c.desc.Arg(1)
	if what == "" || file == "" {
		c.printError("\nerror: invalid parameters.")
		c.printUsageOf("export")
		c.done()
		return
	}

	switch {
	case what == "help":
		c.saveExport(file, []byte(c.helpDocument()))
		c.done()

	case what == "code":
		c.saveExport(file, []byte(c.cart.Code))
		c.done()

	case cart.IsSection(what):
		bank := c.desc.Int("bank", 0)
		if bank < 0 || bank >= cart.BankCount {
			c.printError("\nerror: invalid parameters.")
			c.done()
			return
		}
		section, err := c.cart.Banks[bank].Section(what)
		if err != nil {
			c.printError("\nunknown parameter: " + what)
			c.done()
			return
		}
		c.saveExport(file, section)
		c.done()

	case nativeTargets[what]:
		c.exportNative(what, file)

	default:
		c.printError("\nunknown parameter: " + what)
		c.done()
	}
}

func (c *Console) saveExport(file string, data []byte) {
	if c.fs.Save(file, data, true) {
		c.printBack("\nfile exported :)")
	} else {
		c.printError("\nerror: file not saved")
	}
}

// exportNative downloads a platform build of the loaded cart. Progress
// events print directly since they arrive on the tick queue; only the
// terminal event resumes the command.
func (c *Console) exportNative(target, file string) {
	if c.net == nil {
		c.printError("\nnetwork is not available")
		c.done()
		return
	}

	token := c.beginAsync()
	lastDecile := -1
	c.printBack("\ndownloading " + target + " build ")

	c.net.Get("/export/"+target, func(ev netget.Event) {
		switch ev.Type {
		case netget.Progress:
			if ev.Total <= 0 {
				return
			}
			if decile := int(ev.Received * 10 / ev.Total); decile > lastDecile {
				lastDecile = decile
				c.printBack(".")
			}

		case netget.Error:
			c.resume(token, func() {
				c.printError("\nexport error: " + ev.Err.Error())
				c.done()
			})

		case netget.Done:
			data := ev.Data
			c.resume(token, func() {
				c.saveExport(file, data)
				c.done()
			})
		}
	})
}

// cmdImport replaces a cart section with the contents of a file.
func (c *Console) cmdImport() {
	if !c.requireFS() {
		return
	}

	what := c.desc.Arg(0)
	file := c.desc.Arg(1)
	if what == "" || file == "" {
		c.printError("\nerror: invalid parameters.")
		c.printUsageOf("import")
		c.done()
		return
	}
	if what != "code" && !cart.IsSection(what) {
		c.printError("\nunknown parameter: " + what)
		c.done()
		return
	}

	bank := c.desc.Int("bank", 0)
	data, ok := c.fs.Load(file)
	if !ok {
		c.printError("\nerror: file not loaded")
		c.done()
		return
	}

	if err := cart.CopySection(c.cart, bank, what, data); err != nil {
		c.printError(fmt.Sprintf("\nerror: %s", err))
		c.done()
		return
	}

	c.changed = true
	c.printBack("\nfile imported :)")
	c.done()
}
