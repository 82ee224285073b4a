package multiset

// Classify partitions the distinct items of s into the buckets of a
// multimap keyed by key(item). Each bucket accumulates the item with
// its full count, so colliding keys merge counts rather than overwrite
// and the total size over all buckets equals s.Size().
func Classify[K comparable, T comparable](s *Multiset[T], key func(item T) K) *Multimap[K, T] {
	out := NewMultimap[K, T]()
	s.store.each(func(item T, count int) bool {
		out.AddN(key(item), item, count)
		return true
	})
	return out
}

// ClassifyWith is Classify with the count available to the key
// function.
func ClassifyWith[K comparable, T comparable](s *Multiset[T], key func(item T, count int) K) *Multimap[K, T] {
	out := NewMultimap[K, T]()
	s.store.each(func(item T, count int) bool {
		out.AddN(key(item, count), item, count)
		return true
	})
	return out
}
