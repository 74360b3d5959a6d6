package fs

import "testing"

func newTestWorkdir() *Workdir {
	m := NewMemFS()
	m.Mkdir("games")
	m.Mkdir("games/old")
	m.WriteFile("root.cart", []byte("r"))
	m.WriteFile("games/a.cart", []byte("a"))
	return NewWorkdir(m)
}

func TestWorkdirNavigation(t *testing.T) {
	w := newTestWorkdir()
	if w.Dir() != "" {
		t.Errorf("expected empty dir at root, got %q", w.Dir())
	}

	w.ChangeDir("games")
	if w.Dir() != "games" {
		t.Errorf("expected games, got %q", w.Dir())
	}

	w.ChangeDir("old")
	if w.Dir() != "games/old" {
		t.Errorf("expected games/old, got %q", w.Dir())
	}

	w.DirBack()
	if w.Dir() != "games" {
		t.Errorf("expected games after back, got %q", w.Dir())
	}

	w.HomeDir()
	if w.Dir() != "" {
		t.Errorf("expected root after home, got %q", w.Dir())
	}

	w.DirBack()
	if w.Dir() != "" {
		t.Errorf("expected back at root to stay, got %q", w.Dir())
	}
}

func TestWorkdirLoadIsRelative(t *testing.T) {
	w := newTestWorkdir()
	if _, ok := w.Load("a.cart"); ok {
		t.Error("expected a.cart to be invisible from the root")
	}

	w.ChangeDir("games")
	data, ok := w.Load("a.cart")
	if !ok || string(data) != "a" {
		t.Errorf("expected a.cart content, got %q ok=%v", data, ok)
	}
}

func TestWorkdirSaveOverwrite(t *testing.T) {
	w := newTestWorkdir()
	if w.Save("root.cart", []byte("new"), false) {
		t.Error("expected save without overwrite to refuse")
	}
	if !w.Save("root.cart", []byte("new"), true) {
		t.Error("expected save with overwrite to succeed")
	}

	data, _ := w.Load("root.cart")
	if string(data) != "new" {
		t.Errorf("expected new content, got %q", data)
	}
}

func TestWorkdirEnum(t *testing.T) {
	w := newTestWorkdir()

	var names []string
	doneCalled := false
	w.Enum(func(name string, dir bool) bool {
		names = append(names, name)
		return true
	}, func() { doneCalled = true })

	if !doneCalled {
		t.Fatal("expected done to be called")
	}
	if len(names) != 2 {
		t.Errorf("expected 2 entries at root, got %v", names)
	}
}

func TestWorkdirEnumEarlyStop(t *testing.T) {
	w := newTestWorkdir()

	count := 0
	doneCalled := false
	w.Enum(func(name string, dir bool) bool {
		count++
		return false
	}, func() { doneCalled = true })

	if count != 1 {
		t.Errorf("expected enumeration to stop after 1 entry, got %d", count)
	}
	if !doneCalled {
		t.Error("expected done even after an early stop")
	}
}

func TestWorkdirPath(t *testing.T) {
	w := newTestWorkdir()
	if got := w.Path("x.cart"); got != "x.cart" {
		t.Errorf("expected bare name at root, got %q", got)
	}

	w.ChangeDir("games")
	if got := w.Path("x.cart"); got != "games/x.cart" {
		t.Errorf("expected games/x.cart, got %q", got)
	}
}

func TestWorkdirDeleteAndMkdir(t *testing.T) {
	w := newTestWorkdir()
	if err := w.MakeDir("fresh"); err != nil {
		t.Fatalf("expected mkdir to succeed, got %v", err)
	}
	if !w.IsDir("fresh") {
		t.Error("expected fresh to exist")
	}

	if err := w.DeleteFile("missing"); err == nil {
		t.Error("expected delete of a missing file to fail")
	}
	if err := w.DeleteFile("root.cart"); err != nil {
		t.Errorf("expected delete to succeed, got %v", err)
	}
	if err := w.DeleteDir("games"); err != nil {
		t.Errorf("expected recursive dir delete to succeed, got %v", err)
	}
	if w.Exists("games") {
		t.Error("expected games to be gone")
	}
}
