// Package index implements a growable array of references giving O(1)
// positional access to the entries of a container in the order they were
// appended.
package index

// DefaultCapacity is used when a non-positive capacity is requested.
const DefaultCapacity = 10

type Array[T comparable] struct {
	refs []T
	init int
}

func New[T comparable](capacity int) *Array[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Array[T]{
		refs: make([]T, 0, capacity),
		init: capacity,
	}
}

// Len returns the number of stored references.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return len(a.refs)
}

func (a *Array[T]) Cap() int {
	if a == nil {
		return 0
	}
	return cap(a.refs)
}

// Append adds a reference at the end growing the backing storage by half
// when it is full.
func (a *Array[T]) Append(ref T) {
	if n := len(a.refs); n == cap(a.refs) {
		c := n + n/2
		if c < n+a.init {
			c = n + a.init
		}
		refs := make([]T, n, c)
		copy(refs, a.refs)
		a.refs = refs
	}
	a.refs = append(a.refs, ref)
}

// Remove deletes the first reference equal to ref keeping the order of the
// others. It reports whether anything was removed.
func (a *Array[T]) Remove(ref T) bool {
	for i, r := range a.refs {
		if r != ref {
			continue
		}
		n := len(a.refs) - 1
		copy(a.refs[i:], a.refs[i+1:])

		var zero T
		a.refs[n] = zero
		a.refs = a.refs[:n]

		return true
	}
	return false
}

// Get returns the reference at position i or false if i is out of bounds.
func (a *Array[T]) Get(i int) (ref T, ok bool) {
	if a == nil || i < 0 || i >= len(a.refs) {
		return
	}
	return a.refs[i], true
}

// Each calls fn for every reference in order until fn returns false.
// It reports whether all references were visited.
func (a *Array[T]) Each(fn func(int, T) bool) bool {
	if a == nil {
		return true
	}
	for i, r := range a.refs {
		if !fn(i, r) {
			return false
		}
	}
	return true
}

// Reset drops every reference and shrinks the storage back to the initial
// capacity.
func (a *Array[T]) Reset() {
	a.refs = make([]T, 0, a.init)
}
