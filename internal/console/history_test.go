package console

import "testing"

func TestHistoryAppendAndRecall(t *testing.T) {
	var h History
	h.Append("first")
	h.Append("second")

	if line, ok := h.Prev(); !ok || line != "second" {
		t.Errorf("expected second, got %q ok=%v", line, ok)
	}
	if line, ok := h.Prev(); !ok || line != "first" {
		t.Errorf("expected first, got %q ok=%v", line, ok)
	}
}

func TestHistoryStopsAtOldest(t *testing.T) {
	var h History
	h.Append("only")

	if _, ok := h.Prev(); !ok {
		t.Fatal("expected first Prev to succeed")
	}
	if _, ok := h.Prev(); ok {
		t.Error("expected Prev at the oldest entry to report false")
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	var h History
	h.Append("a")
	h.Append("b")

	h.Prev()
	h.Prev()

	if line, ok := h.Next(); !ok || line != "b" {
		t.Errorf("expected b, got %q ok=%v", line, ok)
	}
	if line, ok := h.Next(); !ok || line != "" {
		t.Errorf("expected blank line past the newest entry, got %q ok=%v", line, ok)
	}
	if _, ok := h.Next(); ok {
		t.Error("expected Next past the end to report false")
	}
}

func TestHistoryDedupesLast(t *testing.T) {
	var h History
	h.Append("same")
	h.Append("same")

	if h.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", h.Len())
	}

	h.Append("other")
	h.Append("same")
	if h.Len() != 3 {
		t.Errorf("expected non-adjacent duplicate to be stored, got %d", h.Len())
	}
}

func TestHistoryAppendResetsIndex(t *testing.T) {
	var h History
	h.Append("a")
	h.Prev()
	h.Append("b")

	if line, ok := h.Prev(); !ok || line != "b" {
		t.Errorf("expected b right after append, got %q ok=%v", line, ok)
	}
}
