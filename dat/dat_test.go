package dat

import "testing"

func TestPageMapAssignLookup(t *testing.T) {
	var m PageMap
	if !m.Assign('k', 3) {
		t.Fatalf("expected ASCII rune to be assignable")
	}
	if !m.Assign('क', 4) {
		t.Fatalf("expected Devanagari rune to be assignable")
	}
	if got := m.Lookup('k'); got != 3 {
		t.Fatalf("lookup of 'k' = %d, want 3", got)
	}
	if got := m.Lookup('क'); got != 4 {
		t.Fatalf("lookup of 'क' = %d, want 4", got)
	}
	if got := m.Lookup('x'); got != 0 {
		t.Fatalf("lookup of unmapped rune = %d, want 0", got)
	}
	if m.NumPages() != 2 {
		t.Fatalf("expected 2 pages, got %d", m.NumPages())
	}
	if m.Assign('😀', 1) {
		t.Fatalf("runes outside the BMP must be rejected")
	}
	m.Assign('k', 0)
	if got := m.Lookup('k'); got != 0 {
		t.Fatalf("cleared mapping should yield 0, got %d", got)
	}
}

func TestTransition(t *testing.T) {
	// root=1, one child via dense 2 at slot 3, which is terminal
	d := &DAT{Root: 1, Sigma: 2}
	d.Grow(3)
	d.Base[1] = 1
	d.Check[3] = 1
	d.Value[3] = 7
	next, ok := d.Transition(1, 2)
	if !ok || next != 3 {
		t.Fatalf("expected transition to state 3, got %d/%v", next, ok)
	}
	if v := d.ValueAt(next); v != 7 {
		t.Fatalf("expected value 7 at state 3, got %d", v)
	}
	if _, ok := d.Transition(1, 1); ok {
		t.Fatalf("unexpected transition for dense 1")
	}
	if _, ok := d.Transition(1, 0); ok {
		t.Fatalf("dense 0 must never transition")
	}
	if v := d.ValueAt(99); v != 0 {
		t.Fatalf("out of range state should have no value, got %d", v)
	}
}
