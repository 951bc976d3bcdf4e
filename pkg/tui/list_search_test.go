package tui

import (
	"testing"
	"time"
)

func TestSearchDebouncerLatestWins(t *testing.T) {
	d := NewSearchDebouncer(time.Millisecond)

	first := d.Trigger("rep")
	second := d.Trigger("report")

	m1, ok := first().(searchDebouncedMsg)
	if !ok {
		t.Fatal("expected searchDebouncedMsg")
	}
	m2 := second().(searchDebouncedMsg)

	if d.Accept(m1) {
		t.Error("superseded tick accepted")
	}
	if !d.Accept(m2) {
		t.Error("latest tick rejected")
	}
	if m2.value != "report" {
		t.Errorf("value = %q, want %q", m2.value, "report")
	}
}

func TestSearchDebouncerDefaultDelay(t *testing.T) {
	if d := NewSearchDebouncer(0); d.Delay() != DefaultDebounce {
		t.Errorf("Delay() = %v, want %v", d.Delay(), DefaultDebounce)
	}
	if d := NewSearchDebouncer(200 * time.Millisecond); d.Delay() != 200*time.Millisecond {
		t.Errorf("Delay() = %v", d.Delay())
	}
}
