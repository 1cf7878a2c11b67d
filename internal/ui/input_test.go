package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyDelta(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want float64
	}{
		{"left arrow", tcell.KeyLeft, 0, -KeyStep},
		{"right arrow", tcell.KeyRight, 0, KeyStep},
		{"a", tcell.KeyRune, 'a', -KeyStep},
		{"D", tcell.KeyRune, 'D', KeyStep},
		{"unrelated rune", tcell.KeyRune, 'x', 0},
		{"up arrow ignored", tcell.KeyUp, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyDelta(tt.key, tt.r); got != tt.want {
				t.Errorf("KeyDelta = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsQuitKey(t *testing.T) {
	if !IsQuitKey(tcell.KeyEscape, 0) {
		t.Error("Escape should quit")
	}
	if !IsQuitKey(tcell.KeyCtrlC, 0) {
		t.Error("Ctrl-C should quit")
	}
	if !IsQuitKey(tcell.KeyRune, 'q') || !IsQuitKey(tcell.KeyRune, 'Q') {
		t.Error("q/Q should quit")
	}
	if IsQuitKey(tcell.KeyRune, 'a') {
		t.Error("a should not quit")
	}
	if IsQuitKey(tcell.KeyEnter, 0) {
		t.Error("Enter should not quit")
	}
}

func TestMouseTracker(t *testing.T) {
	var m MouseTracker

	// First position only anchors; no delta.
	if got := m.Delta(40); got != 0 {
		t.Errorf("first delta = %d, want 0", got)
	}
	if got := m.Delta(45); got != 5 {
		t.Errorf("delta = %d, want 5", got)
	}
	if got := m.Delta(42); got != -3 {
		t.Errorf("delta = %d, want -3", got)
	}
	if got := m.Delta(42); got != 0 {
		t.Errorf("delta without movement = %d, want 0", got)
	}
}
