// Command tinycart runs the tinycart console, interactively on a terminal
// or in batch mode with -cmd.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/tinycart/tinycart/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	var p app.Params

	flag.StringVar(&p.FSDir, "fs", defaultFSDir(), "filesystem root directory")
	flag.StringVar(&p.ConfigPath, "config", defaultConfigPath(), "configuration file path")
	flag.StringVar(&p.Cmd, "cmd", "", "run commands and exit, separated by \" & \"")
	flag.BoolVar(&p.Skip, "skip", false, "skip the startup version check")
	flag.Parse()

	p.Cart = flag.Arg(0)

	if p.Cmd == "" && !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "tinycart: interactive mode needs a terminal; use -cmd for batch runs")
		return 1
	}

	return app.Run(p)
}

func defaultFSDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(dir, ".tinycart", "carts")
	}
	return "carts"
}

func defaultConfigPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "tinycart", "config.toml")
	}
	return "tinycart.toml"
}
