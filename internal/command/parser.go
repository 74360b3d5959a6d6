// Package command provides the console command descriptor, the line parser
// and the static command registry.
package command

import "strings"

// Param is one parsed command parameter. Key is the token up to the first
// '='; Val is the remainder when an '=' was present.
type Param struct {
	Key    string
	Val    string
	HasVal bool
}

// Desc is the transient result of parsing one submitted line. It owns its
// own copy of the input and is reset after the command completes.
type Desc struct {
	Command string
	Params  []Param
	Src     string
}

// Count returns the number of parameters.
func (d Desc) Count() int { return len(d.Params) }

// Arg returns the key of parameter i, or empty if out of range.
func (d Desc) Arg(i int) string {
	if i < 0 || i >= len(d.Params) {
		return ""
	}
	return d.Params[i].Key
}

// Value looks up a parameter by key and returns its value.
func (d Desc) Value(key string) (string, bool) {
	for _, p := range d.Params {
		if p.HasVal && p.Key == key {
			return p.Val, true
		}
	}
	return "", false
}

// Int returns the integer value of a key=value parameter, or def when the
// key is absent or not a number.
func (d Desc) Int(key string, def int) int {
	v, ok := d.Value(key)
	if !ok {
		return def
	}
	n := 0
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return def
		}
		n = n*10 + int(v[i]-'0')
	}
	return n
}

// Parse splits a command line into a descriptor. Tokens are separated by
// runs of spaces (consecutive separators yield no empty tokens); the first
// token is the command name and every following token is split on its first
// '=' into key and value.
func Parse(line string) Desc {
	desc := Desc{Src: line}

	fields := strings.FieldsFunc(line, func(r rune) bool { return r == ' ' })
	if len(fields) == 0 {
		return desc
	}

	desc.Command = fields[0]
	for _, tok := range fields[1:] {
		p := Param{Key: tok}
		if i := strings.IndexByte(tok, '='); i >= 0 {
			p.Key = tok[:i]
			p.Val = tok[i+1:]
			p.HasVal = true
		}
		desc.Params = append(desc.Params, p)
	}
	return desc
}
