// Package multiset provides counted collections: a Multiset, in which
// each distinct item carries a positive multiplicity, and a Multimap
// associating keys with multisets.
//
// Items are identified by Go map-key equality, so the element type must
// be comparable. Distinct items are enumerated in insertion order (the
// order of first addition), never in hash order.
//
// No operation locks internally. A Multiset or Multimap instance that
// is mutated from multiple goroutines must be serialized by the caller;
// this is a hard requirement, not a suggestion. Operations that return
// a new collection always copy the backing storage and never alias an
// operand's.
package multiset

import (
	"fmt"
	"strings"
)

// Entry pairs a distinct item with its multiplicity.
type Entry[T comparable] struct {
	Item  T
	Count int
}

// Multiset is a collection in which every stored item has a count of at
// least one. An operation that would drop a count to zero or below
// removes the item instead.
type Multiset[T comparable] struct {
	store *countStore[T]
}

// New returns an empty multiset.
func New[T comparable]() *Multiset[T] {
	return &Multiset[T]{store: newCountStore[T]()}
}

// FromItems builds a multiset in which each occurrence of an item adds
// one to its count. Insertion order follows the argument order.
func FromItems[T comparable](items ...T) *Multiset[T] {
	out := New[T]()
	for _, item := range items {
		out.store.add(item, 1)
	}
	return out
}

// FromCounts builds a multiset with explicit counts. Entries with a
// non-positive count are taken as absent. Because Go map iteration is
// unordered, the resulting insertion order is unspecified; use
// FromEntries when the order matters.
func FromCounts[T comparable](counts map[T]int) *Multiset[T] {
	out := New[T]()
	for item, count := range counts {
		out.store.setCount(item, count)
	}
	return out
}

// FromEntries builds a multiset from explicit (item, count) pairs in
// order. Counts of colliding items accumulate; non-positive counts are
// ignored.
func FromEntries[T comparable](entries []Entry[T]) *Multiset[T] {
	out := New[T]()
	for _, e := range entries {
		out.store.add(e.Item, e.Count)
	}
	return out
}

// FromTextLines builds a multiset of the lines of text, one occurrence
// per line. Line terminators are not part of the items.
func FromTextLines(text string) *Multiset[string] {
	out := New[string]()
	if text == "" {
		return out
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for _, line := range lines {
		out.store.add(strings.TrimSuffix(line, "\r"), 1)
	}
	return out
}

// Count returns the multiplicity of item, zero if absent.
func (s *Multiset[T]) Count(item T) int {
	return s.store.count(item)
}

// CountWhere returns the summed counts of the distinct items satisfying
// pred.
func (s *Multiset[T]) CountWhere(pred func(item T) bool) int {
	total := 0
	s.store.each(func(item T, count int) bool {
		if pred(item) {
			total += count
		}
		return true
	})
	return total
}

// Size returns the total number of occurrences over all items.
func (s *Multiset[T]) Size() int {
	return s.store.total
}

// DistinctSize returns the number of distinct items.
func (s *Multiset[T]) DistinctSize() int {
	return s.store.distinct()
}

func (s *Multiset[T]) IsEmpty() bool {
	return s.store.total == 0
}

func (s *Multiset[T]) Contains(item T) bool {
	return s.store.contains(item)
}

// Add adds one occurrence of item.
func (s *Multiset[T]) Add(item T) bool {
	return s.store.add(item, 1)
}

// AddN adds k occurrences of item. Returns false without mutating if
// k <= 0.
func (s *Multiset[T]) AddN(item T, k int) bool {
	return s.store.add(item, k)
}

// Remove removes one occurrence of item. Returns false without mutating
// if the item is absent.
func (s *Multiset[T]) Remove(item T) bool {
	return s.store.remove(item, 1)
}

// RemoveN removes up to k occurrences of item, clamping at full
// removal; the count never goes negative. Returns false without
// mutating if the item is absent or k <= 0.
func (s *Multiset[T]) RemoveN(item T, k int) bool {
	return s.store.remove(item, k)
}

// RemoveAll drops every occurrence of item. Always succeeds; reports
// whether the item was present.
func (s *Multiset[T]) RemoveAll(item T) bool {
	return s.store.removeAll(item)
}

// SetCount sets the multiplicity of item to n, removing the item when
// n <= 0.
func (s *Multiset[T]) SetCount(item T, n int) {
	s.store.setCount(item, n)
}

// Clear removes every item.
func (s *Multiset[T]) Clear() {
	s.store.clear()
}

// Items returns the distinct items in insertion order.
func (s *Multiset[T]) Items() []T {
	return s.store.items()
}

// Entries returns the (item, count) pairs in insertion order.
func (s *Multiset[T]) Entries() []Entry[T] {
	out := make([]Entry[T], 0, s.DistinctSize())
	s.store.each(func(item T, count int) bool {
		out = append(out, Entry[T]{Item: item, Count: count})
		return true
	})
	return out
}

// ToCountMap returns the item-to-count mapping as a plain map. The
// result round-trips through FromCounts.
func (s *Multiset[T]) ToCountMap() map[T]int {
	out := make(map[T]int, s.DistinctSize())
	s.store.each(func(item T, count int) bool {
		out[item] = count
		return true
	})
	return out
}

// Clone returns an independent copy. Stored items themselves are copied
// by value.
func (s *Multiset[T]) Clone() *Multiset[T] {
	return &Multiset[T]{store: s.store.clone()}
}

func (s *Multiset[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	s.store.each(func(item T, count int) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v:%d", item, count)
		return true
	})
	b.WriteByte('}')
	return b.String()
}
