package multiset

import (
	"github.com/maraigue/multiset/utils/math"
)

// Intersect returns a new multiset holding the items present in both
// operands, each with the smaller of the two counts.
func (s *Multiset[T]) Intersect(other *Multiset[T]) *Multiset[T] {
	out := New[T]()
	s.store.each(func(item T, count int) bool {
		if n := other.Count(item); n > 0 {
			out.store.setCount(item, math.Min(count, n))
		}
		return true
	})
	return out
}

// Union returns a new multiset holding the items present in either
// operand, each with the larger of the two counts.
func (s *Multiset[T]) Union(other *Multiset[T]) *Multiset[T] {
	out := New[T]()
	s.store.each(func(item T, count int) bool {
		out.store.setCount(item, math.Max(count, other.Count(item)))
		return true
	})
	other.store.each(func(item T, count int) bool {
		if !s.Contains(item) {
			out.store.setCount(item, count)
		}
		return true
	})
	return out
}

// Merge returns a new multiset with the per-item sum of both operands'
// counts (the multiset sum, not the union maximum).
func (s *Multiset[T]) Merge(other *Multiset[T]) *Multiset[T] {
	return s.Clone().MergeInPlace(other)
}

// MergeInPlace adds every (item, count) of other into s. Always returns
// the receiver.
func (s *Multiset[T]) MergeInPlace(other *Multiset[T]) *Multiset[T] {
	for _, e := range other.Entries() {
		s.store.add(e.Item, e.Count)
	}
	return s
}

// Subtract returns a new multiset with other's counts removed from s's,
// clamping at zero: subtracting more occurrences than present removes
// the item and is not an error.
func (s *Multiset[T]) Subtract(other *Multiset[T]) *Multiset[T] {
	return s.Clone().SubtractInPlace(other)
}

// SubtractInPlace removes every (item, count) of other from s with
// clamping. Always returns the receiver.
func (s *Multiset[T]) SubtractInPlace(other *Multiset[T]) *Multiset[T] {
	for _, e := range other.Entries() {
		s.store.remove(e.Item, e.Count)
	}
	return s
}
