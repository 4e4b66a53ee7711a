package core

import "testing"

func feedAll(d *SequenceDetector, keys []string) (matches int) {
	for _, k := range keys {
		if d.Feed(k) {
			matches++
		}
	}
	return matches
}

func TestSequenceDetector(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		expected int
	}{
		{"exact", KonamiSequence, 1},
		{"empty", nil, 0},
		{"incomplete", KonamiSequence[:9], 0},
		{"wrong last key", append(append([]string{}, KonamiSequence[:9]...), "x"), 0},
		{"noise before", append([]string{"x", "up", "q"}, KonamiSequence...), 1},
		{"extra up before", append([]string{"up"}, KonamiSequence...), 1},
		{"twice", append(append([]string{}, KonamiSequence...), KonamiSequence...), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewSequenceDetector(KonamiSequence)
			if got := feedAll(d, tt.keys); got != tt.expected {
				t.Errorf("matches = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestSequenceDetectorReset(t *testing.T) {
	d := NewSequenceDetector([]string{"a", "b"})
	d.Feed("a")
	d.Reset()
	if d.Feed("b") {
		t.Error("Feed(b) after Reset should not match")
	}
	d.Feed("a")
	if !d.Feed("b") {
		t.Error("Feed(b) after a = false, expected match")
	}
}

func TestSequenceDetectorEmpty(t *testing.T) {
	d := NewSequenceDetector(nil)
	if d.Feed("a") {
		t.Error("empty sequence should never match")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionLeft, "Left"},
		{ActionFire, "Fire"},
		{ActionEasterEgg, "EasterEgg"},
		{Action(999), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tt.action, got, tt.expected)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)
	if !f.Has(ActionFire) {
		t.Error("Has(ActionFire) = false, expected true")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionFire) {
		t.Error("Has(ActionFire) after Clear = true, expected false")
	}
	if !clone.Has(ActionFire) {
		t.Error("clone lost ActionFire after original was cleared")
	}

	var zero InputFrame
	if zero.Has(ActionLeft) {
		t.Error("zero frame Has(ActionLeft) = true, expected false")
	}
}
