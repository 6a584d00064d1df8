package model

// History remembers the fingerprints of recent generations to spot oscillators
type History struct {
	capacity     int
	fingerprints []string
}

// NewHistory keeps up to capacity fingerprints (at least 1)
func NewHistory(capacity int) *History {
	capacity = max(1, capacity)
	return &History{
		capacity:     capacity,
		fingerprints: make([]string, 0, capacity),
	}
}

// Record appends a fingerprint, evicting the oldest once full
func (h *History) Record(fingerprint string) {
	if len(h.fingerprints) == h.capacity {
		copy(h.fingerprints, h.fingerprints[1:])
		h.fingerprints = h.fingerprints[:h.capacity-1]
	}
	h.fingerprints = append(h.fingerprints, fingerprint)
}

// Period returns the smallest k such that fingerprint matches the one recorded
// k entries ago, or 0 when it matches none of them. A period of 1 is a still life.
func (h *History) Period(fingerprint string) int {
	for k := 1; k <= len(h.fingerprints); k++ {
		if h.fingerprints[len(h.fingerprints)-k] == fingerprint {
			return k
		}
	}
	return 0
}

// Len returns the number of recorded fingerprints
func (h *History) Len() int {
	return len(h.fingerprints)
}

// Reset forgets every recorded fingerprint
func (h *History) Reset() {
	h.fingerprints = h.fingerprints[:0]
}
