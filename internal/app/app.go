// Package app wires the console to its collaborators and runs the main
// loop, interactive or batch.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tinycart/tinycart/internal/cart"
	"github.com/tinycart/tinycart/internal/clipboard"
	"github.com/tinycart/tinycart/internal/config"
	"github.com/tinycart/tinycart/internal/console"
	"github.com/tinycart/tinycart/internal/fs"
	"github.com/tinycart/tinycart/internal/netget"
	"github.com/tinycart/tinycart/internal/script"
	"github.com/tinycart/tinycart/internal/term"
)

// Params are the command line parameters.
type Params struct {
	// FSDir is the root of the cartridge filesystem.
	FSDir string

	// ConfigPath is the configuration file path.
	ConfigPath string

	// Cmd is a " & "-separated command string; when set the app runs in
	// batch mode and exits once the commands finish.
	Cmd string

	// Cart is a cartridge to load before anything else. A load failure
	// here is fatal.
	Cart string

	// Skip suppresses the startup version check.
	Skip bool
}

const tickInterval = time.Second / 60

// Run builds the application and runs it to completion, returning the
// process exit code.
func Run(p Params) int {
	cfg, err := config.Load(p.ConfigPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if p.Skip {
		cfg.CheckNewVersion = false
	}

	osfs, err := fs.NewOSFS(p.FSDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	workdir := fs.NewWorkdir(osfs)

	batch := p.Cmd != ""

	code := 0
	quit := make(chan struct{})
	opts := console.Options{
		FS:        workdir,
		Clipboard: &clipboard.Memory{},
		Runner:    script.New(),
		Config:    cfg,
		Batch:     batch,
		Startup:   p.Cmd,
		Exit: func(n int) {
			code = n
			select {
			case <-quit:
			default:
				close(quit)
			}
		},
	}
	if batch {
		opts.Echo = os.Stdout
	}

	var ui *term.UI
	if !batch {
		ui, err = term.New()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer ui.Close()
		opts.Confirm = ui
	}

	con := console.New(opts)
	con.SetNet(netget.New(cfg.APIBase, con.Post))

	if p.ConfigPath != "" {
		if w, err := config.Watch(p.ConfigPath, func(next *config.Config) {
			con.Post(func() { *cfg = *next })
		}); err == nil {
			defer w.Close()
		}
	}

	if p.Cart != "" {
		data, ok := workdir.Load(p.Cart)
		if !ok {
			fmt.Fprintln(os.Stderr, "cart loading error:", p.Cart)
			return 1
		}
		loaded, err := cart.Load(data)
		if err != nil {
			fmt.Fprintln(os.Stderr, "cart loading error:", err)
			return 1
		}
		con.SetCart(p.Cart, loaded)
	}

	if batch {
		runBatch(con, quit)
	} else {
		runInteractive(con, ui, quit)
	}
	return code
}

func runBatch(con *console.Console, quit chan struct{}) {
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			con.Tick()
		}
	}
}

func runInteractive(con *console.Console, ui *term.UI, quit chan struct{}) {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := ui.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case ev := <-events:
			if !ui.HandleEvent(ev, con) {
				return
			}
		case <-ticker.C:
			con.Tick()
			ui.Render(con)
		}
	}
}
