// Package omap provides a small insertion-ordered map keyed by strings.
//
// A map created with NewFold compares keys case-insensitively while keeping
// the casing of the first insertion for iteration. Property groups use it for
// table, column and composite "COL1/COL2" keys.
package omap

import (
	"iter"
	"strings"
)

// Map is an insertion-ordered string-keyed map. The zero value is not usable;
// create maps with New or NewFold. Read methods are safe on a nil *Map.
type Map[V any] struct {
	fold   bool
	keys   []string
	values []V
	index  map[string]int
}

// New creates an empty case-sensitive map.
func New[V any]() *Map[V] {
	return &Map[V]{index: make(map[string]int)}
}

// NewFold creates an empty map whose keys compare case-insensitively.
func NewFold[V any]() *Map[V] {
	return &Map[V]{fold: true, index: make(map[string]int)}
}

func (m *Map[V]) normalize(key string) string {
	if m.fold {
		return strings.ToLower(key)
	}

	return key
}

// Set stores value under key. An existing key keeps its position and
// original casing; only the value is replaced.
func (m *Map[V]) Set(key string, value V) {
	norm := m.normalize(key)
	if i, ok := m.index[norm]; ok {
		m.values[i] = value

		return
	}

	m.index[norm] = len(m.keys)
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (V, bool) {
	var zero V
	if m == nil {
		return zero, false
	}

	i, ok := m.index[m.normalize(key)]
	if !ok {
		return zero, false
	}

	return m.values[i], true
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.Get(key)

	return ok
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}

	keys := make([]string, len(m.keys))
	copy(keys, m.keys)

	return keys
}

// All iterates over the entries in insertion order.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil {
			return
		}

		for i, key := range m.keys {
			if !yield(key, m.values[i]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy that keeps the case mode of m.
func (m *Map[V]) Clone() *Map[V] {
	if m == nil {
		return New[V]()
	}

	clone := &Map[V]{
		fold:   m.fold,
		keys:   make([]string, len(m.keys)),
		values: make([]V, len(m.values)),
		index:  make(map[string]int, len(m.index)),
	}

	copy(clone.keys, m.keys)
	copy(clone.values, m.values)

	for k, v := range m.index {
		clone.index[k] = v
	}

	return clone
}

// Folded reports whether keys compare case-insensitively.
func (m *Map[V]) Folded() bool {
	return m != nil && m.fold
}
