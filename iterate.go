package multiset

import "iter"

// Two traversals coexist: the expanding one visits an item once per
// occurrence, the distinct-once one visits each distinct item a single
// time with its count at hand. Every transform, filter and search
// operation in this package is defined over the distinct-once
// traversal. All traversals run in insertion order.

// Each visits every occurrence of every item: an item with count n is
// yielded n times. Inefficient for high multiplicities; prefer
// EachItem or EachPair.
func (s *Multiset[T]) Each(fn func(item T)) {
	s.store.each(func(item T, count int) bool {
		for i := 0; i < count; i++ {
			fn(item)
		}
		return true
	})
}

// EachItem visits each distinct item exactly once.
func (s *Multiset[T]) EachItem(fn func(item T)) {
	s.store.each(func(item T, count int) bool {
		fn(item)
		return true
	})
}

// EachPair visits each distinct item exactly once along with its count.
func (s *Multiset[T]) EachPair(fn func(item T, count int)) {
	s.store.each(func(item T, count int) bool {
		fn(item, count)
		return true
	})
}

// Expanded returns a restartable lazy sequence over the expanding
// traversal. Every range over the sequence restarts from the first
// occurrence.
func (s *Multiset[T]) Expanded() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.store.each(func(item T, count int) bool {
			for i := 0; i < count; i++ {
				if !yield(item) {
					return false
				}
			}
			return true
		})
	}
}

// Distinct returns a restartable lazy sequence over the distinct items.
func (s *Multiset[T]) Distinct() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.store.each(func(item T, count int) bool {
			return yield(item)
		})
	}
}

// Pairs returns a restartable lazy sequence of (item, count) pairs.
func (s *Multiset[T]) Pairs() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		s.store.each(func(item T, count int) bool {
			return yield(item, count)
		})
	}
}
