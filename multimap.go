package multiset

import (
	"fmt"
	"iter"
	"strings"
)

// Multimap associates keys with multisets of items. Each bucket is
// exclusively owned by the map. Reading an absent key installs an empty
// bucket (auto-vivification), but every key-observing operation first
// purges empty buckets, so a key only becomes visible once its bucket
// has been populated.
type Multimap[K comparable, T comparable] struct {
	buckets OrderedMap[K, *Multiset[T]]
}

// NewMultimap returns an empty multimap.
func NewMultimap[K comparable, T comparable]() *Multimap[K, T] {
	return &Multimap[K, T]{buckets: NewOrderedMap[K, *Multiset[T]]()}
}

// Fetch returns the bucket for key, installing an empty one if the key
// is absent. The installed bucket stays invisible to Keys, HasKey and
// the other observations, and any of those purges it from the map while
// it is still empty. A caller that observed the map after fetching must
// therefore re-Fetch instead of holding on to the old bucket: a purged
// bucket is an orphan, and mutating it no longer affects the map.
func (m *Multimap[K, T]) Fetch(key K) *Multiset[T] {
	return m.buckets.GetOrPut(key, func() *Multiset[T] { return New[T]() })
}

// Store replaces the bucket for key wholesale with the coerced source.
// The multiset built from src is owned by the map; an Of source is
// duplicated, never aliased.
func (m *Multimap[K, T]) Store(key K, src Source[T]) error {
	set, err := src.resolve()
	if err != nil {
		return err
	}
	m.buckets.Put(key, set)
	return nil
}

// DeleteKey removes the key and returns its bucket, or a fresh empty
// multiset if the key was absent.
func (m *Multimap[K, T]) DeleteKey(key K) *Multiset[T] {
	if bucket, ok := m.buckets.Get(key); ok {
		m.buckets.Delete(key)
		return bucket
	}
	return New[T]()
}

// Add adds one occurrence of item under key.
func (m *Multimap[K, T]) Add(key K, item T) bool {
	return m.Fetch(key).Add(item)
}

// AddN adds k occurrences of item under key. Returns false without
// mutating if k <= 0.
func (m *Multimap[K, T]) AddN(key K, item T, k int) bool {
	return m.Fetch(key).AddN(item, k)
}

// Remove removes one occurrence of item under key, dropping the key
// once its bucket empties. Returns false if nothing was removed.
func (m *Multimap[K, T]) Remove(key K, item T) bool {
	bucket, ok := m.buckets.Get(key)
	if !ok {
		return false
	}
	removed := bucket.Remove(item)
	if bucket.IsEmpty() {
		m.buckets.Delete(key)
	}
	return removed
}

// cleanup purges every bucket reduced to empty. It runs before any
// observation that enumerates keys or tests key presence, which is what
// keeps auto-vivified buckets unobservable.
func (m *Multimap[K, T]) cleanup() {
	for _, key := range m.buckets.Keys() {
		if bucket, ok := m.buckets.Get(key); ok && bucket.IsEmpty() {
			m.buckets.Delete(key)
		}
	}
}

// Keys returns the live keys in insertion order.
func (m *Multimap[K, T]) Keys() []K {
	m.cleanup()
	return m.buckets.Keys()
}

// HasKey reports whether key has a non-empty bucket.
func (m *Multimap[K, T]) HasKey(key K) bool {
	m.cleanup()
	return m.buckets.Contains(key)
}

// Len returns the number of live keys.
func (m *Multimap[K, T]) Len() int {
	m.cleanup()
	return m.buckets.Size()
}

// TotalSize returns the summed sizes of all buckets.
func (m *Multimap[K, T]) TotalSize() int {
	m.cleanup()
	total := 0
	m.buckets.Each(func(key K, bucket *Multiset[T]) bool {
		total += bucket.Size()
		return true
	})
	return total
}

func (m *Multimap[K, T]) IsEmpty() bool {
	return m.Len() == 0
}

// EachKey visits the live keys in insertion order.
func (m *Multimap[K, T]) EachKey(fn func(key K)) {
	m.cleanup()
	m.buckets.Each(func(key K, bucket *Multiset[T]) bool {
		fn(key)
		return true
	})
}

// EachPair visits each live key with its bucket in insertion order.
func (m *Multimap[K, T]) EachPair(fn func(key K, bucket *Multiset[T])) {
	m.cleanup()
	m.buckets.Each(func(key K, bucket *Multiset[T]) bool {
		fn(key, bucket)
		return true
	})
}

// Pairs returns a restartable lazy sequence of (key, bucket) pairs.
func (m *Multimap[K, T]) Pairs() iter.Seq2[K, *Multiset[T]] {
	return func(yield func(K, *Multiset[T]) bool) {
		m.cleanup()
		m.buckets.Each(func(key K, bucket *Multiset[T]) bool {
			return yield(key, bucket)
		})
	}
}

// Equal reports whether other is a *Multimap[K, T] with a structurally
// equal key-to-multiset mapping, both sides cleaned up first. A value
// of any other type compares unequal.
func (m *Multimap[K, T]) Equal(other any) bool {
	o, ok := other.(*Multimap[K, T])
	if !ok || o == nil {
		return false
	}
	if m == o {
		return true
	}
	m.cleanup()
	o.cleanup()
	if m.buckets.Size() != o.buckets.Size() {
		return false
	}
	equal := true
	m.buckets.Each(func(key K, bucket *Multiset[T]) bool {
		theirs, ok := o.buckets.Get(key)
		if !ok || !bucket.Equal(theirs) {
			equal = false
		}
		return equal
	})
	return equal
}

// Merge returns a new multimap with every (key, item, count) triple of
// both operands added in.
func (m *Multimap[K, T]) Merge(other *Multimap[K, T]) *Multimap[K, T] {
	return m.Clone().MergeInPlace(other)
}

// MergeInPlace adds every (key, item, count) triple of other into the
// corresponding bucket. Always returns the receiver.
func (m *Multimap[K, T]) MergeInPlace(other *Multimap[K, T]) *Multimap[K, T] {
	other.EachPair(func(key K, bucket *Multiset[T]) {
		for _, e := range bucket.Entries() {
			m.AddN(key, e.Item, e.Count)
		}
	})
	return m
}

// Invert swaps the roles of key and item: each (item, count) under
// bucket key becomes count occurrences of key under bucket item.
func (m *Multimap[K, T]) Invert() *Multimap[T, K] {
	out := NewMultimap[T, K]()
	m.EachPair(func(key K, bucket *Multiset[T]) {
		bucket.EachPair(func(item T, count int) {
			out.AddN(item, key, count)
		})
	})
	return out
}

// Clone returns an independent copy; every bucket is duplicated.
func (m *Multimap[K, T]) Clone() *Multimap[K, T] {
	out := NewMultimap[K, T]()
	m.buckets.Each(func(key K, bucket *Multiset[T]) bool {
		out.buckets.Put(key, bucket.Clone())
		return true
	})
	return out
}

func (m *Multimap[K, T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	m.EachPair(func(key K, bucket *Multiset[T]) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v:%s", key, bucket.String())
	})
	b.WriteByte('}')
	return b.String()
}
