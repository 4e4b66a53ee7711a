package core

// KonamiSequence is the key sequence that unlocks the founder mode easter egg.
var KonamiSequence = []string{"up", "up", "down", "down", "left", "right", "left", "right", "b", "a"}

// SequenceDetector watches a stream of key names for a fixed sequence.
// It keeps only the most recent keys, so a partial match followed by a
// restart of the sequence is still detected.
type SequenceDetector struct {
	sequence []string
	recent   []string
}

// NewSequenceDetector creates a detector for the given key sequence.
func NewSequenceDetector(sequence []string) *SequenceDetector {
	return &SequenceDetector{
		sequence: sequence,
		recent:   make([]string, 0, len(sequence)),
	}
}

// Feed records a key press and reports whether it completed the sequence.
// The detector is reset after a match.
func (d *SequenceDetector) Feed(key string) bool {
	if len(d.sequence) == 0 {
		return false
	}
	if len(d.recent) == len(d.sequence) {
		d.recent = append(d.recent[:0], d.recent[1:]...)
	}
	d.recent = append(d.recent, key)

	if len(d.recent) != len(d.sequence) {
		return false
	}
	for i, k := range d.sequence {
		if d.recent[i] != k {
			return false
		}
	}
	d.Reset()
	return true
}

// Reset forgets all recorded keys.
func (d *SequenceDetector) Reset() {
	d.recent = d.recent[:0]
}
