package cart

import (
	"encoding/binary"
	"errors"
)

// Cartridge files are a sequence of chunks. Each chunk starts with a
// four-byte header: bank and type packed into the first byte, a little
// endian 16-bit payload size, and a reserved byte.
const (
	chunkTiles   = 1
	chunkSprites = 2
	chunkMap     = 4
	chunkCode    = 5
	chunkFlags   = 6
	chunkPalette = 12
	chunkScreen  = 18

	chunkHeaderSize = 4
)

// ErrTruncated reports a cartridge file that ends inside a chunk.
var ErrTruncated = errors.New("truncated cartridge")

var chunkSections = map[byte]string{
	chunkTiles:   "tiles",
	chunkSprites: "sprites",
	chunkMap:     "map",
	chunkFlags:   "flags",
	chunkPalette: "palette",
	chunkScreen:  "screen",
}

func putChunk(out []byte, bank, typ byte, data []byte) []byte {
	var header [chunkHeaderSize]byte
	header[0] = bank<<5 | typ&0x1f
	binary.LittleEndian.PutUint16(header[1:3], uint16(len(data)))
	out = append(out, header[:]...)
	return append(out, data...)
}

// trimTrailingZeros drops the zero tail of a section so empty banks cost
// four bytes each instead of their full size.
func trimTrailingZeros(data []byte) []byte {
	n := len(data)
	for n > 0 && data[n-1] == 0 {
		n--
	}
	return data[:n]
}

// Save encodes a cartridge. Bank sections that are entirely zero are still
// written as empty chunks so Load can distinguish a fresh bank from an
// absent one; the code chunk always comes last.
func (c *Cartridge) Save() []byte {
	var out []byte

	for b := 0; b < BankCount; b++ {
		bank := &c.Banks[b]
		out = putChunk(out, byte(b), chunkTiles, trimTrailingZeros(bank.Tiles[:]))
		out = putChunk(out, byte(b), chunkSprites, trimTrailingZeros(bank.Sprites[:]))
		out = putChunk(out, byte(b), chunkMap, trimTrailingZeros(bank.Map[:]))
		out = putChunk(out, byte(b), chunkPalette, bank.Palette[:])
		out = putChunk(out, byte(b), chunkFlags, trimTrailingZeros(bank.Flags[:]))
		out = putChunk(out, byte(b), chunkScreen, trimTrailingZeros(bank.Screen[:]))
	}

	return putChunk(out, 0, chunkCode, []byte(c.Code))
}

// Load decodes a cartridge. Chunks with unknown types are skipped so newer
// files still load; a chunk running past the end of the data is an error.
func Load(data []byte) (*Cartridge, error) {
	c := &Cartridge{}

	for pos := 0; pos < len(data); {
		if pos+chunkHeaderSize > len(data) {
			return nil, ErrTruncated
		}
		bank := data[pos] >> 5
		typ := data[pos] & 0x1f
		size := int(binary.LittleEndian.Uint16(data[pos+1 : pos+3]))
		pos += chunkHeaderSize

		if pos+size > len(data) {
			return nil, ErrTruncated
		}
		payload := data[pos : pos+size]
		pos += size

		if typ == chunkCode {
			c.Code = string(payload)
			continue
		}
		if name, ok := chunkSections[typ]; ok {
			section, _ := c.Banks[bank].Section(name)
			copy(section, payload)
		}
	}

	return c, nil
}
