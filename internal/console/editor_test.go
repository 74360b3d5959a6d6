package console

import (
	"strings"
	"testing"
)

func newReadyConsole() *Console {
	c := New(Options{})
	c.Tick()
	return c
}

func typeText(c *Console, text string) {
	for _, r := range text {
		c.HandleRune(r)
	}
}

func TestTypingAppends(t *testing.T) {
	c := newReadyConsole()
	typeText(c, "hello")

	if got := c.InputText(); got != "hello" {
		t.Errorf("expected hello, got %q", got)
	}
	if c.editPos != 5 {
		t.Errorf("expected edit position 5, got %d", c.editPos)
	}
}

func TestInsertInMiddle(t *testing.T) {
	c := newReadyConsole()
	typeText(c, "hlo")
	c.HandleKey(KeyLeft)
	c.HandleKey(KeyLeft)
	typeText(c, "el")

	if got := c.InputText(); got != "hello" {
		t.Errorf("expected hello, got %q", got)
	}
}

func TestBackspaceAndDelete(t *testing.T) {
	c := newReadyConsole()
	typeText(c, "abc")
	c.HandleKey(KeyBackspace)
	if got := c.InputText(); got != "ab" {
		t.Errorf("expected ab after backspace, got %q", got)
	}

	c.HandleKey(KeyHome)
	c.HandleKey(KeyDelete)
	if got := c.InputText(); got != "b" {
		t.Errorf("expected b after delete, got %q", got)
	}

	c.HandleKey(KeyDelete)
	c.HandleKey(KeyDelete)
	if got := c.InputText(); got != "" {
		t.Errorf("expected empty input, got %q", got)
	}
}

func TestCursorMovementClamped(t *testing.T) {
	c := newReadyConsole()
	typeText(c, "ab")

	c.HandleKey(KeyRight)
	if c.editPos != 2 {
		t.Errorf("expected position clamped to 2, got %d", c.editPos)
	}

	c.HandleKey(KeyHome)
	c.HandleKey(KeyLeft)
	if c.editPos != 0 {
		t.Errorf("expected position clamped to 0, got %d", c.editPos)
	}

	c.HandleKey(KeyEnd)
	if c.editPos != 2 {
		t.Errorf("expected end at 2, got %d", c.editPos)
	}
}

func TestUnprintableRunesIgnored(t *testing.T) {
	c := newReadyConsole()
	c.HandleRune('\n')
	c.HandleRune('\x07')
	c.HandleRune('é')

	if got := c.InputText(); got != "" {
		t.Errorf("expected unprintable runes to be dropped, got %q", got)
	}
}

func TestOversizeInsertDroppedSilently(t *testing.T) {
	c := newReadyConsole()
	typeText(c, "keep")
	c.insertText(strings.Repeat("a", BufferSize))

	if got := c.InputText(); got != "keep" {
		t.Errorf("expected oversize insert to be a no-op, got %d chars", len(got))
	}
	if c.State() != StateReady {
		t.Errorf("expected Ready, got %d", c.State())
	}
}

func TestHistoryRecallKeys(t *testing.T) {
	c := newReadyConsole()
	typeText(c, "help")
	c.HandleKey(KeyEnter)
	if c.State() != StateReady {
		t.Fatalf("expected Ready after help, got %d", c.State())
	}

	c.HandleKey(KeyUp)
	if got := c.InputText(); got != "help" {
		t.Errorf("expected recalled help, got %q", got)
	}

	c.HandleKey(KeyDown)
	if got := c.InputText(); got != "" {
		t.Errorf("expected blank line past newest entry, got %q", got)
	}
}

func TestTabCompletesCommandName(t *testing.T) {
	c := newReadyConsole()
	typeText(c, "he")
	c.HandleKey(KeyTab)

	if got := c.InputText(); got != "help" {
		t.Errorf("expected help, got %q", got)
	}
	if c.State() != StateReady {
		t.Errorf("expected Ready after command completion, got %d", c.State())
	}
}
