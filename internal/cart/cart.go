// Package cart defines the cartridge data model and its binary chunk codec.
package cart

import (
	"errors"
	"strings"
)

// Bank geometry. A cartridge carries up to BankCount banks of graphics and
// map data; code is shared across banks.
const (
	BankCount = 8

	TilesSize   = 8 * 1024
	SpritesSize = 8 * 1024
	MapSize     = 24 * 1024
	PaletteSize = 48
	FlagsSize   = 512
	ScreenSize  = 12 * 1024
)

// Bank is one bank of cartridge assets.
type Bank struct {
	Tiles   [TilesSize]byte
	Sprites [SpritesSize]byte
	Map     [MapSize]byte
	Palette [PaletteSize]byte
	Flags   [FlagsSize]byte
	Screen  [ScreenSize]byte
}

// Cartridge is a full cartridge in memory.
type Cartridge struct {
	Code  string
	Banks [BankCount]Bank
}

// Section names addressable by export and import.
var Sections = []string{"code", "tiles", "sprites", "map", "palette", "flags", "screen"}

// ErrUnknownSection reports a section name outside Sections.
var ErrUnknownSection = errors.New("unknown section")

// IsSection reports whether name is a valid section name.
func IsSection(name string) bool {
	for _, s := range Sections {
		if s == name {
			return true
		}
	}
	return false
}

// Section returns the named asset slice of a bank. Code is not a bank
// section and is handled separately by callers.
func (b *Bank) Section(name string) ([]byte, error) {
	switch name {
	case "tiles":
		return b.Tiles[:], nil
	case "sprites":
		return b.Sprites[:], nil
	case "map":
		return b.Map[:], nil
	case "palette":
		return b.Palette[:], nil
	case "flags":
		return b.Flags[:], nil
	case "screen":
		return b.Screen[:], nil
	}
	return nil, ErrUnknownSection
}

// CopySection copies one section of one bank from src to dst. Short source
// data fills the section prefix and leaves the rest untouched.
func CopySection(dst *Cartridge, bank int, name string, data []byte) error {
	if bank < 0 || bank >= BankCount {
		return errors.New("bank out of range")
	}
	if name == "code" {
		dst.Code = string(data)
		return nil
	}
	section, err := dst.Banks[bank].Section(name)
	if err != nil {
		return err
	}
	copy(section, data)
	return nil
}

// Metatag extracts the value of a "-- tag: value" header comment from
// cartridge code. It returns the empty string when the tag is absent.
func Metatag(code, tag string) string {
	prefix := "-- " + tag + ":"
	for _, line := range strings.Split(code, "\n") {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(line[len(prefix):])
		}
	}
	return ""
}

// DefaultPalette is the stock 16-color palette as RGB hex strings.
var DefaultPalette = [16]string{
	"1a1c2c", "5d275d", "b13e53", "ef7d57",
	"ffcd75", "a7f070", "38b764", "257179",
	"29366f", "3b5dc9", "41a6f6", "73eff7",
	"f4f4f4", "94b0c2", "566c86", "333c57",
}

const defaultCode = `-- title: game
-- author: you
-- script: lua

t=0
x=96
y=24

function TIC()
 if btn(0) then y=y-1 end
 if btn(1) then y=y+1 end
 if btn(2) then x=x-1 end
 if btn(3) then x=x+1 end

 cls(13)
 spr(1+t%60//30*2,x,y,14,3,0,0,2,2)
 print("HELLO WORLD!",84,84)
 t=t+1
end
`

// Default returns a fresh cartridge with the stock code and palette.
func Default() *Cartridge {
	c := &Cartridge{Code: defaultCode}
	for b := range c.Banks {
		pal := c.Banks[b].Palette[:]
		for i, hex := range DefaultPalette {
			pal[i*3+0] = hexByte(hex[0], hex[1])
			pal[i*3+1] = hexByte(hex[2], hex[3])
			pal[i*3+2] = hexByte(hex[4], hex[5])
		}
	}
	return c
}

func hexByte(hi, lo byte) byte {
	return hexNibble(hi)<<4 | hexNibble(lo)
}

func hexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
