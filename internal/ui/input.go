package ui

import "github.com/gdamore/tcell/v2"

// KeyStep is the paddle translation in world units for one key event.
const KeyStep = 24.0

// MouseTracker turns absolute pointer columns into per-frame deltas.
// The first observed position only anchors the tracker.
type MouseTracker struct {
	lastX    int
	anchored bool
}

// Delta returns the column movement since the previous call.
func (m *MouseTracker) Delta(x int) int {
	if !m.anchored {
		m.lastX = x
		m.anchored = true
		return 0
	}
	d := x - m.lastX
	m.lastX = x
	return d
}

// KeyDelta converts a key event to a horizontal paddle step in world
// units. Arrow keys and a/d both work.
func KeyDelta(key tcell.Key, r rune) float64 {
	switch key {
	case tcell.KeyLeft:
		return -KeyStep
	case tcell.KeyRight:
		return KeyStep
	case tcell.KeyRune:
		switch r {
		case 'a', 'A':
			return -KeyStep
		case 'd', 'D':
			return KeyStep
		}
	}
	return 0
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}
