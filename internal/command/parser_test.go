package command

import "testing"

func TestParseCommandOnly(t *testing.T) {
	d := Parse("dir")
	if d.Command != "dir" {
		t.Errorf("expected command dir, got %q", d.Command)
	}
	if d.Count() != 0 {
		t.Errorf("expected 0 params, got %d", d.Count())
	}
}

func TestParseParamWithoutValue(t *testing.T) {
	d := Parse("cd ..")
	if d.Command != "cd" {
		t.Errorf("expected command cd, got %q", d.Command)
	}
	if d.Count() != 1 {
		t.Fatalf("expected 1 param, got %d", d.Count())
	}
	if d.Params[0].Key != ".." {
		t.Errorf("expected key .., got %q", d.Params[0].Key)
	}
	if d.Params[0].HasVal {
		t.Error("expected param without value")
	}
}

func TestParseKeyValue(t *testing.T) {
	d := Parse("export tiles out.bin bank=2")
	if d.Command != "export" {
		t.Errorf("expected command export, got %q", d.Command)
	}
	if d.Count() != 3 {
		t.Fatalf("expected 3 params, got %d", d.Count())
	}
	if got := d.Arg(0); got != "tiles" {
		t.Errorf("expected arg 0 tiles, got %q", got)
	}
	if got := d.Arg(1); got != "out.bin" {
		t.Errorf("expected arg 1 out.bin, got %q", got)
	}
	v, ok := d.Value("bank")
	if !ok || v != "2" {
		t.Errorf("expected bank=2, got %q ok=%v", v, ok)
	}
	if got := d.Int("bank", 0); got != 2 {
		t.Errorf("expected bank 2, got %d", got)
	}
}

func TestParseValueKeepsLaterEquals(t *testing.T) {
	d := Parse("eval x=1=2")
	v, ok := d.Value("x")
	if !ok || v != "1=2" {
		t.Errorf("expected value 1=2, got %q ok=%v", v, ok)
	}
}

func TestParseCollapsesSpaceRuns(t *testing.T) {
	d := Parse("  load   mycart  ")
	if d.Command != "load" {
		t.Errorf("expected command load, got %q", d.Command)
	}
	if d.Count() != 1 {
		t.Fatalf("expected 1 param, got %d", d.Count())
	}
	if d.Arg(0) != "mycart" {
		t.Errorf("expected mycart, got %q", d.Arg(0))
	}
}

func TestParseEmptyLine(t *testing.T) {
	d := Parse("   ")
	if d.Command != "" {
		t.Errorf("expected empty command, got %q", d.Command)
	}
}

func TestIntDefault(t *testing.T) {
	d := Parse("export tiles out bank=abc")
	if got := d.Int("bank", 7); got != 7 {
		t.Errorf("expected default 7, got %d", got)
	}
	if got := d.Int("missing", 3); got != 3 {
		t.Errorf("expected default 3, got %d", got)
	}
}
