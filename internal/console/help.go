package console

import (
	"fmt"
	"strings"
)

func (c *Console) cmdHelp() {
	switch topic := strings.ToLower(c.desc.Arg(0)); topic {
	case "":
		c.helpOverview()
	case "commands":
		c.helpCommands()
	case "api":
		c.helpAPI()
	case "version":
		c.printBack("\nversion " + Version)
	case "spec":
		c.helpSpec()
	case "ram":
		c.helpRAM()
	case "startup":
		c.helpStartup()
	case "welcome":
		c.printBack("\n hello! type ")
		c.printFront("help")
		c.printBack(" for help")
	default:
		if _, ok := c.registry.Lookup(topic); ok {
			c.printUsageOf(topic)
		} else {
			c.helpOverview()
		}
	}
	c.done()
}

func (c *Console) helpOverview() {
	c.printLine()
	c.printBack("usage: ")
	c.print("help [<command>|commands|api|version|spec|ram|startup|welcome]\n", ColorFront, 6)
	c.printBack("\ntype ")
	c.printFront("help commands")
	c.printBack(" to list the commands")
}

// printUsageOf prints the banner, description and usage line of a command.
func (c *Console) printUsageOf(name string) {
	spec, ok := c.registry.Lookup(name)
	if !ok {
		return
	}

	c.print("\n---=== "+strings.ToUpper(spec.Name)+" ===---\n", ColorGreen, 0)
	c.print(spec.Help+"\n", ColorFront, 0)
	if spec.Alias != "" {
		c.printBack("alias: ")
		c.printFront(spec.Alias + "\n")
	}
	if spec.Usage != "" {
		c.printBack("\nusage: ")
		c.print(spec.Usage+"\n", ColorFront, 7)
	}
}

// helpCommands lists every command with its description, sorted by name.
func (c *Console) helpCommands() {
	c.printLine()
	for _, spec := range c.registry.Specs() {
		c.printFront(spec.Name)
		c.print(strings.Repeat(" ", 8-len(spec.Name)%8), ColorBG, 0)
		c.print(spec.Help+"\n", ColorBack, 8)
	}
}

func (c *Console) helpAPI() {
	c.print("\n---=== API ===---\n", ColorBlue, 0)
	for _, item := range c.api {
		c.printFront(item.Name + "\n")
		c.print(" "+item.Def+"\n", ColorBack, 1)
	}
}

func (c *Console) helpSpec() {
	c.printLine()
	specs := [][2]string{
		{"DISPLAY", "192x128 pixels, 16-color palette"},
		{"INPUT", "4 gamepads with 8 buttons each"},
		{"SPRITES", "256 8x8 tiles and 256 8x8 sprites"},
		{"MAP", "192x128 cells, 1536x1024 pixels"},
		{"CODE", "64KB of Lua"},
		{"BANKS", "8 switchable asset banks"},
	}
	for _, s := range specs {
		c.printFront(s[0])
		c.print(strings.Repeat(" ", 9-len(s[0])), ColorBG, 0)
		c.print(s[1]+"\n", ColorBack, 9)
	}
}

// helpRAM prints the address map as a fixed-width table.
func (c *Console) helpRAM() {
	rows := [][2]string{
		{"0000", "SCREEN  12K"},
		{"3000", "PALETTE 48b"},
		{"3030", "FLAGS   512b"},
		{"3230", "TILES   8K"},
		{"5230", "SPRITES 8K"},
		{"7230", "MAP     24K"},
	}

	var b strings.Builder
	b.WriteString("\n+------+--------------+\n")
	b.WriteString("| ADDR | INFO         |\n")
	b.WriteString("+------+--------------+\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %-12s |\n", r[0], r[1])
	}
	b.WriteString("+------+--------------+\n")
	c.printTable(b.String())
}

func (c *Console) helpStartup() {
	c.printLine()
	flags := [][2]string{
		{"-cmd", "run commands and exit, & separated"},
		{"-fs", "filesystem root directory"},
		{"-config", "configuration file path"},
		{"-skip", "skip the startup animation"},
		{"<cart>", "cartridge to load on startup"},
	}
	for _, f := range flags {
		c.printFront(f[0])
		c.print(strings.Repeat(" ", 8-len(f[0])%8), ColorBG, 0)
		c.print(f[1]+"\n", ColorBack, 8)
	}
}

// helpDocument renders the command and API reference as markdown, for
// `export help`.
func (c *Console) helpDocument() string {
	var b strings.Builder

	b.WriteString("# Commands\n\n")
	for _, spec := range c.registry.Specs() {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", spec.Name, spec.Help)
		if spec.Usage != "" {
			fmt.Fprintf(&b, "`%s`\n\n", spec.Usage)
		}
	}

	b.WriteString("# API\n\n")
	for _, item := range c.api {
		fmt.Fprintf(&b, "## %s\n\n`%s`\n\n%s\n\n", item.Name, item.Def, item.Help)
	}

	return b.String()
}
