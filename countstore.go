package multiset

import (
	"github.com/maraigue/multiset/utils/math"
)

// countStore is the canonical item-to-count mapping. A stored count is
// always positive; driving a count to zero or below removes the item.
// Every mutation funnels through setCount so the invariant holds at a
// single point.
type countStore[T comparable] struct {
	counts OrderedMap[T, int]
	total  int
}

func newCountStore[T comparable]() *countStore[T] {
	return &countStore[T]{
		counts: NewOrderedMap[T, int](),
		total:  0,
	}
}

func (s *countStore[T]) count(item T) int {
	n, _ := s.counts.Get(item)
	return n
}

func (s *countStore[T]) contains(item T) bool {
	return s.counts.Contains(item)
}

// setCount stores n occurrences of item if n > 0 and removes the item
// otherwise.
func (s *countStore[T]) setCount(item T, n int) {
	old, _ := s.counts.Get(item)
	if n > 0 {
		s.counts.Put(item, n)
	} else {
		n = 0
		s.counts.Delete(item)
	}
	s.total += n - old
}

// add increments item by k. Returns false without mutation if k <= 0.
func (s *countStore[T]) add(item T, k int) bool {
	if k <= 0 {
		return false
	}
	s.setCount(item, s.count(item)+k)
	return true
}

// remove decrements item by k, clamping at full removal. Returns false
// without mutation if the item is absent or k <= 0.
func (s *countStore[T]) remove(item T, k int) bool {
	if k <= 0 || !s.contains(item) {
		return false
	}
	s.setCount(item, math.Max(0, s.count(item)-k))
	return true
}

// removeAll drops the item regardless of its count. Reports whether the
// item was present.
func (s *countStore[T]) removeAll(item T) bool {
	present := s.contains(item)
	if present {
		s.setCount(item, 0)
	}
	return present
}

func (s *countStore[T]) distinct() int {
	return s.counts.Size()
}

func (s *countStore[T]) items() []T {
	return s.counts.Keys()
}

func (s *countStore[T]) each(fn func(item T, count int) bool) {
	s.counts.Each(fn)
}

func (s *countStore[T]) clone() *countStore[T] {
	out := newCountStore[T]()
	s.each(func(item T, count int) bool {
		out.setCount(item, count)
		return true
	})
	return out
}

func (s *countStore[T]) clear() {
	s.counts = NewOrderedMap[T, int]()
	s.total = 0
}
