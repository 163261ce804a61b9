// Package container holds small generic collection types shared by the
// grammar, earley, and lr packages. It is a trimmed, comparable-keyed
// sibling of the kind of value-set library tunaq keeps in internal/util:
// where tunaq's symbols are multi-character strings and need a
// string-keyed VSet, every symbol and item here is built from runes and
// is natively comparable, so a plain generic KeySet over comparable
// types is enough.
package container

import "sort"

// KeySet is an unordered set of comparable values, backed by a map so
// Add/Has are O(1). It is the comparable-key counterpart of tunaq's
// util.KeySet[E].
type KeySet[E comparable] map[E]struct{}

// NewKeySet returns an empty KeySet.
func NewKeySet[E comparable]() KeySet[E] {
	return make(KeySet[E])
}

// KeySetOf builds a KeySet containing every element of sl.
func KeySetOf[E comparable](sl []E) KeySet[E] {
	s := NewKeySet[E]()
	for _, e := range sl {
		s.Add(e)
	}
	return s
}

// Add adds element to the set. No effect if already present.
func (s KeySet[E]) Add(element E) {
	s[element] = struct{}{}
}

// AddAll adds every element of s2 to s.
func (s KeySet[E]) AddAll(s2 KeySet[E]) {
	for e := range s2 {
		s[e] = struct{}{}
	}
}

// Has returns whether element is in the set.
func (s KeySet[E]) Has(element E) bool {
	_, ok := s[element]
	return ok
}

// Len returns the number of elements in the set.
func (s KeySet[E]) Len() int {
	return len(s)
}

// Copy returns a shallow copy of s.
func (s KeySet[E]) Copy() KeySet[E] {
	s2 := make(KeySet[E], len(s))
	s2.AddAll(s)
	return s2
}

// Elements returns the elements of s in no particular order.
func (s KeySet[E]) Elements() []E {
	elems := make([]E, 0, len(s))
	for e := range s {
		elems = append(elems, e)
	}
	return elems
}

// Equal returns whether s and o contain the same elements.
func (s KeySet[E]) Equal(o KeySet[E]) bool {
	if len(s) != len(o) {
		return false
	}
	for e := range s {
		if !o.Has(e) {
			return false
		}
	}
	return true
}

// SortedElements returns the elements of s ordered by the given less
// function. Used wherever a deterministic iteration order is needed (for
// example to build a reproducible signature for a set of items).
func SortedElements[E comparable](s KeySet[E], less func(a, b E) bool) []E {
	elems := s.Elements()
	sort.Slice(elems, func(i, j int) bool { return less(elems[i], elems[j]) })
	return elems
}
