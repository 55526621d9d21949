// Package marks keeps user-named scroll positions for the current
// document session.
package marks

import "sort"

// Registry maps single-rune keys to captured scroll positions. Setting an
// existing key overwrites it; the whole registry is cleared when a new
// document is loaded.
type Registry struct {
	positions map[rune]float64
}

// NewRegistry creates an empty mark registry
func NewRegistry() *Registry {
	return &Registry{positions: make(map[rune]float64)}
}

// Set stores or overwrites the position for a key
func (r *Registry) Set(key rune, position float64) {
	if position < 0 {
		position = 0
	}
	r.positions[key] = position
}

// Get returns the stored position for a key. A missing key is not an
// error; callers treat it as a no-op jump.
func (r *Registry) Get(key rune) (float64, bool) {
	pos, ok := r.positions[key]
	return pos, ok
}

// Clear removes all marks
func (r *Registry) Clear() {
	r.positions = make(map[rune]float64)
}

// Len returns the number of set marks
func (r *Registry) Len() int {
	return len(r.positions)
}

// Keys returns the set mark keys in sorted order, for status display
func (r *Registry) Keys() []rune {
	keys := make([]rune, 0, len(r.positions))
	for k := range r.positions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
