package multiset

import (
	"fmt"
	"regexp"
	"sort"

	"golang.org/x/exp/constraints"
)

// Map returns a new multiset with fn applied once to each distinct
// item; the item's count carries over. Items mapped onto the same
// result accumulate their counts.
func (s *Multiset[T]) Map(fn func(item T) T) *Multiset[T] {
	out := New[T]()
	s.store.each(func(item T, count int) bool {
		out.store.add(fn(item), count)
		return true
	})
	return out
}

// MapInPlace rewrites s as Map would. Always returns the receiver.
func (s *Multiset[T]) MapInPlace(fn func(item T) T) *Multiset[T] {
	s.store = s.Map(fn).store
	return s
}

// MapWith is Map with the count alongside: fn sees each (item, count)
// pair and produces the replacement pair. A non-positive produced count
// drops the item.
func (s *Multiset[T]) MapWith(fn func(item T, count int) (T, int)) *Multiset[T] {
	out := New[T]()
	s.store.each(func(item T, count int) bool {
		mapped, n := fn(item, count)
		out.store.add(mapped, n)
		return true
	})
	return out
}

// MapWithInPlace rewrites s as MapWith would. Always returns the
// receiver.
func (s *Multiset[T]) MapWithInPlace(fn func(item T, count int) (T, int)) *Multiset[T] {
	s.store = s.MapWith(fn).store
	return s
}

// MapTo applies fn once per distinct item into a multiset of a
// different element type, counts carrying over.
func MapTo[T comparable, U comparable](s *Multiset[T], fn func(item T) U) *Multiset[U] {
	out := New[U]()
	s.store.each(func(item T, count int) bool {
		out.store.add(fn(item), count)
		return true
	})
	return out
}

// Select returns a new multiset of the distinct items satisfying pred,
// counts carried over.
func (s *Multiset[T]) Select(pred func(item T) bool) *Multiset[T] {
	out := New[T]()
	s.store.each(func(item T, count int) bool {
		if pred(item) {
			out.store.setCount(item, count)
		}
		return true
	})
	return out
}

// Reject returns a new multiset of the distinct items not satisfying
// pred, counts carried over.
func (s *Multiset[T]) Reject(pred func(item T) bool) *Multiset[T] {
	return s.Select(func(item T) bool { return !pred(item) })
}

// RejectInPlace removes the items satisfying pred from s. Returns false
// when nothing was removed. Contrast DeleteIf, which removes the very
// same items but always returns the receiver; both conventions are kept.
func (s *Multiset[T]) RejectInPlace(pred func(item T) bool) bool {
	return s.removeMatching(func(item T, count int) bool { return pred(item) })
}

// DeleteIf removes the items satisfying pred from s. Always returns the
// receiver, whether or not anything was removed.
func (s *Multiset[T]) DeleteIf(pred func(item T) bool) *Multiset[T] {
	s.removeMatching(func(item T, count int) bool { return pred(item) })
	return s
}

// DeleteWith removes the items for which fn, given the item and its
// count, returns true. Always returns the receiver.
func (s *Multiset[T]) DeleteWith(fn func(item T, count int) bool) *Multiset[T] {
	s.removeMatching(fn)
	return s
}

func (s *Multiset[T]) removeMatching(match func(item T, count int) bool) bool {
	changed := false
	for _, e := range s.Entries() {
		if match(e.Item, e.Count) {
			s.store.removeAll(e.Item)
			changed = true
		}
	}
	return changed
}

// Grep selects the items whose default formatting matches re, counts
// carried over.
func (s *Multiset[T]) Grep(re *regexp.Regexp) *Multiset[T] {
	return s.Select(func(item T) bool {
		return re.MatchString(fmt.Sprint(item))
	})
}

// Max returns the greatest distinct item under less. The first maximal
// item in insertion order wins ties. ok is false on an empty multiset.
func (s *Multiset[T]) Max(less func(a, b T) bool) (max T, ok bool) {
	s.store.each(func(item T, count int) bool {
		if !ok || less(max, item) {
			max = item
			ok = true
		}
		return true
	})
	return max, ok
}

// Min returns the least distinct item under less. The first minimal
// item in insertion order wins ties. ok is false on an empty multiset.
func (s *Multiset[T]) Min(less func(a, b T) bool) (min T, ok bool) {
	s.store.each(func(item T, count int) bool {
		if !ok || less(item, min) {
			min = item
			ok = true
		}
		return true
	})
	return min, ok
}

// MinMax returns both extremes in one distinct-once pass.
func (s *Multiset[T]) MinMax(less func(a, b T) bool) (min, max T, ok bool) {
	s.store.each(func(item T, count int) bool {
		if !ok {
			min, max = item, item
			ok = true
			return true
		}
		if less(item, min) {
			min = item
		}
		if less(max, item) {
			max = item
		}
		return true
	})
	return min, max, ok
}

// MaxWith is Max with counts available to the ordering.
func (s *Multiset[T]) MaxWith(less func(a, b T, countA, countB int) bool) (max T, ok bool) {
	maxCount := 0
	s.store.each(func(item T, count int) bool {
		if !ok || less(max, item, maxCount, count) {
			max = item
			maxCount = count
			ok = true
		}
		return true
	})
	return max, ok
}

// MinWith is Min with counts available to the ordering.
func (s *Multiset[T]) MinWith(less func(a, b T, countA, countB int) bool) (min T, ok bool) {
	minCount := 0
	s.store.each(func(item T, count int) bool {
		if !ok || less(item, min, count, minCount) {
			min = item
			minCount = count
			ok = true
		}
		return true
	})
	return min, ok
}

// Sort returns every occurrence in a slice ordered by less. The sort is
// stable over the distinct-once traversal, so equal items keep
// insertion order; less runs once per distinct pair, not per occurrence.
func (s *Multiset[T]) Sort(less func(a, b T) bool) []T {
	entries := s.SortPairs(less)
	out := make([]T, 0, s.Size())
	for _, e := range entries {
		for i := 0; i < e.Count; i++ {
			out = append(out, e.Item)
		}
	}
	return out
}

// SortPairs returns the (item, count) pairs ordered by less, stable
// over insertion order.
func (s *Multiset[T]) SortPairs(less func(a, b T) bool) []Entry[T] {
	entries := s.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i].Item, entries[j].Item)
	})
	return entries
}

// SortBy sorts every occurrence by a key projection.
func SortBy[T comparable, K constraints.Ordered](s *Multiset[T], key func(item T) K) []T {
	return s.Sort(func(a, b T) bool { return key(a) < key(b) })
}

// MaxBy returns the distinct item with the greatest key; the first such
// item in insertion order wins ties.
func MaxBy[T comparable, K constraints.Ordered](s *Multiset[T], key func(item T) K) (T, bool) {
	return s.Max(func(a, b T) bool { return key(a) < key(b) })
}

// MinBy returns the distinct item with the least key; the first such
// item in insertion order wins ties.
func MinBy[T comparable, K constraints.Ordered](s *Multiset[T], key func(item T) K) (T, bool) {
	return s.Min(func(a, b T) bool { return key(a) < key(b) })
}
