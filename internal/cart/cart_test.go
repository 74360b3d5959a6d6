package cart

import (
	"errors"
	"testing"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	src := Default()
	src.Code = "-- title: test\nfunction TIC() end"
	src.Banks[0].Tiles[0] = 0xAB
	src.Banks[2].Map[100] = 0xCD
	src.Banks[7].Flags[511] = 0xEF

	loaded, err := Load(src.Save())
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}

	if loaded.Code != src.Code {
		t.Errorf("expected code roundtrip, got %q", loaded.Code)
	}
	if loaded.Banks[0].Tiles[0] != 0xAB {
		t.Errorf("expected tiles byte, got %#x", loaded.Banks[0].Tiles[0])
	}
	if loaded.Banks[2].Map[100] != 0xCD {
		t.Errorf("expected map byte, got %#x", loaded.Banks[2].Map[100])
	}
	if loaded.Banks[7].Flags[511] != 0xEF {
		t.Errorf("expected flags byte, got %#x", loaded.Banks[7].Flags[511])
	}
	if loaded.Banks[0].Palette != src.Banks[0].Palette {
		t.Error("expected palette roundtrip")
	}
}

func TestLoadTruncated(t *testing.T) {
	data := Default().Save()

	if _, err := Load(data[:len(data)-3]); !errors.Is(err, ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
	if _, err := Load(data[:2]); !errors.Is(err, ErrTruncated) {
		t.Errorf("expected ErrTruncated for a partial header, got %v", err)
	}
}

func TestLoadSkipsUnknownChunks(t *testing.T) {
	var data []byte
	data = putChunk(data, 0, 30, []byte{1, 2, 3})
	data = putChunk(data, 0, chunkCode, []byte("function TIC() end"))

	loaded, err := Load(data)
	if err != nil {
		t.Fatalf("expected unknown chunk to be skipped, got %v", err)
	}
	if loaded.Code != "function TIC() end" {
		t.Errorf("expected code after unknown chunk, got %q", loaded.Code)
	}
}

func TestLoadEmpty(t *testing.T) {
	loaded, err := Load(nil)
	if err != nil {
		t.Fatalf("expected empty data to load, got %v", err)
	}
	if loaded.Code != "" {
		t.Errorf("expected empty code, got %q", loaded.Code)
	}
}

func TestMetatag(t *testing.T) {
	code := "-- title: my game\n-- author: someone\nprint(1)"

	if got := Metatag(code, "title"); got != "my game" {
		t.Errorf("expected title, got %q", got)
	}
	if got := Metatag(code, "author"); got != "someone" {
		t.Errorf("expected author, got %q", got)
	}
	if got := Metatag(code, "script"); got != "" {
		t.Errorf("expected empty missing tag, got %q", got)
	}
}

func TestCopySection(t *testing.T) {
	c := &Cartridge{}

	if err := CopySection(c, 1, "tiles", []byte{9, 8}); err != nil {
		t.Fatalf("expected copy to succeed, got %v", err)
	}
	if c.Banks[1].Tiles[0] != 9 || c.Banks[1].Tiles[1] != 8 {
		t.Error("expected tiles prefix to be copied")
	}

	if err := CopySection(c, 0, "code", []byte("x=1")); err != nil {
		t.Fatalf("expected code copy to succeed, got %v", err)
	}
	if c.Code != "x=1" {
		t.Errorf("expected code x=1, got %q", c.Code)
	}

	if err := CopySection(c, 0, "nope", nil); !errors.Is(err, ErrUnknownSection) {
		t.Errorf("expected ErrUnknownSection, got %v", err)
	}
	if err := CopySection(c, 99, "tiles", nil); err == nil {
		t.Error("expected bank range error")
	}
}

func TestDefaultHasTitleAndPalette(t *testing.T) {
	c := Default()
	if Metatag(c.Code, "script") != "lua" {
		t.Errorf("expected lua script tag, got %q", Metatag(c.Code, "script"))
	}
	if c.Banks[0].Palette[0] != 0x1a {
		t.Errorf("expected first palette byte 0x1a, got %#x", c.Banks[0].Palette[0])
	}
}

func TestDemosAreLoadable(t *testing.T) {
	demos := Demos()
	if len(demos) == 0 {
		t.Fatal("expected at least one demo")
	}
	for _, d := range demos {
		loaded, err := Load(d.Data)
		if err != nil {
			t.Errorf("expected %s to load, got %v", d.Name, err)
			continue
		}
		if loaded.Code == "" {
			t.Errorf("expected %s to carry code", d.Name)
		}
	}
}
