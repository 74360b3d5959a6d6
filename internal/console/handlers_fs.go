package console

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tinycart/tinycart/internal/cart"
)

var deleteWarning = []string{
	"",
	"",
	"DO YOU REALLY WANT",
	"TO DELETE FILE?",
}

func (c *Console) requireFS() bool {
	if c.fs == nil {
		c.printError("\nfilesystem is not available")
		c.done()
		return false
	}
	return true
}

// cmdDir lists the current directory, folders first.
func (c *Console) cmdDir() {
	if !c.requireFS() {
		return
	}

	type item struct {
		name string
		dir  bool
	}
	var items []item

	token := c.beginAsync()
	c.fs.Enum(func(name string, dir bool) bool {
		items = append(items, item{name: name, dir: dir})
		return true
	}, func() {
		c.resume(token, func() {
			sort.Slice(items, func(i, j int) bool {
				if items[i].dir != items[j].dir {
					return items[i].dir
				}
				return strings.ToLower(items[i].name) < strings.ToLower(items[j].name)
			})

			if len(items) == 0 {
				c.printBack("\n\nuse ")
				c.printFront("demo")
				c.printBack(" command to install demo carts")
				c.done()
				return
			}

			c.printLine()
			for _, it := range items {
				if it.dir {
					c.printBack("[" + it.name + "]\n")
				} else {
					c.printFront(it.name + "\n")
				}
			}
			c.doneLine(false)
		})
	})
}

// cmdChangeDir moves around the cartridge filesystem. "/" jumps to the
// root and ".." to the parent; anything containing a separator is refused.
func (c *Console) cmdChangeDir() {
	if !c.requireFS() {
		return
	}

	name := c.desc.Arg(0)
	switch {
	case name == "":
		c.printError("\ninvalid dir name")
		c.done()
	case name == "/":
		c.fs.HomeDir()
		c.done()
	case name == "..":
		c.fs.DirBack()
		c.done()
	case strings.ContainsAny(name, "/\\"):
		c.printError("\ninvalid dir name")
		c.done()
	default:
		token := c.beginAsync()
		c.fs.IsDirAsync(name, func(isDir bool) {
			c.resume(token, func() {
				if isDir {
					c.fs.ChangeDir(name)
				} else {
					c.printError("\ndir doesn't exist")
				}
				c.done()
			})
		})
	}
}

func (c *Console) cmdMakeDir() {
	if !c.requireFS() {
		return
	}

	name := c.desc.Arg(0)
	if name == "" {
		c.printError("\nname is missing")
		c.done()
		return
	}

	if err := c.fs.MakeDir(name); err != nil {
		c.printError("\nfolder not created")
	} else {
		c.printBack(fmt.Sprintf("\ncreated [%s] folder :)", name))
	}
	c.done()
}

// cmdDelete removes a file or a directory after confirmation.
func (c *Console) cmdDelete() {
	if !c.requireFS() {
		return
	}

	name := c.desc.Arg(0)
	if name == "" {
		c.printError("\nname is missing")
		c.done()
		return
	}

	c.confirmCommand(deleteWarning, func(c *Console) {
		if c.fs.IsDir(name) {
			if err := c.fs.DeleteDir(name); err != nil {
				c.printError("\ndir not deleted")
			} else {
				c.printBack("\ndir successfully deleted")
			}
		} else {
			if err := c.fs.DeleteFile(name); err != nil {
				c.printError("\nfile not deleted")
			} else {
				c.printBack("\nfile successfully deleted")
			}
		}
		c.done()
	})
}

// cmdDemo installs the bundled demo carts into the current directory.
func (c *Console) cmdDemo() {
	if !c.requireFS() {
		return
	}

	c.printBack("\nadded carts:\n\n")
	for _, d := range cart.Demos() {
		if c.fs.Save(d.Name, d.Data, true) {
			c.printFront(d.Name + "\n")
		}
	}
	c.doneLine(false)
}
