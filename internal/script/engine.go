// Package script runs cartridge code through an embedded Lua interpreter.
package script

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// DefaultTimeout bounds a single script execution.
const DefaultTimeout = 5 * time.Second

// Engine executes cartridge Lua. Each call runs in a fresh interpreter
// state with the runtime API registered, so a crashed script cannot poison
// the next run.
type Engine struct {
	timeout  time.Duration
	lastCode string
}

// New creates an engine with the default execution timeout.
func New() *Engine {
	return &Engine{timeout: DefaultTimeout}
}

// api is the runtime surface scripts see. The console host has no video or
// audio device, so the calls validate arguments and record nothing.
var api = []string{
	"btn", "btnp", "circ", "circb", "cls", "exit", "font", "line",
	"map", "memcpy", "memset", "music", "peek", "pix", "poke", "print",
	"rect", "rectb", "sfx", "spr", "time", "trace", "tri",
}

func (e *Engine) newState() *lua.LState {
	L := lua.NewState()
	for _, name := range api {
		L.SetGlobal(name, L.NewFunction(func(L *lua.LState) int { return 0 }))
	}
	return L
}

func (e *Engine) doString(L *lua.LState, code string) error {
	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()
	L.SetContext(ctx)
	defer L.RemoveContext()
	return L.DoString(code)
}

// Run executes a cartridge program: the top level chunk runs once and must
// leave a TIC function behind. The code is remembered for Resume.
func (e *Engine) Run(code string) error {
	L := e.newState()
	defer L.Close()

	if err := e.doString(L, code); err != nil {
		return fmt.Errorf("lua: %w", err)
	}
	if L.GetGlobal("TIC") == lua.LNil {
		return errors.New("TIC function is missing")
	}

	e.lastCode = code
	return nil
}

// Resume restarts the last run program.
func (e *Engine) Resume() error {
	if e.lastCode == "" {
		return errors.New("nothing to resume")
	}
	return e.Run(e.lastCode)
}

// Eval evaluates an expression or statement and returns its printable
// result. An expression is tried first by prefixing "return"; on a syntax
// error the code is retried as a statement.
func (e *Engine) Eval(code string) (string, error) {
	L := e.newState()
	defer L.Close()

	base := L.GetTop()
	if err := e.doString(L, "return "+code); err != nil {
		L.SetTop(base)
		if err := e.doString(L, code); err != nil {
			return "", fmt.Errorf("lua: %w", err)
		}
	}

	var parts []string
	for i := base + 1; i <= L.GetTop(); i++ {
		parts = append(parts, L.Get(i).String())
	}
	return strings.Join(parts, "\t"), nil
}
