package multiset

// Flatten returns a new multiset in which every stored item that is
// itself a *Multiset[T] is replaced, recursively, by its flattened
// contents. A nested multiset stored with count k contributes its
// contents k times over. Only meaningful when T is an interface type
// able to hold a *Multiset[T]; otherwise the result is a plain copy.
//
// A multiset that directly or transitively contains itself fails with
// ErrRecursiveNesting instead of recursing without bound.
func (s *Multiset[T]) Flatten() (*Multiset[T], error) {
	out := New[T]()
	path := map[*Multiset[T]]bool{s: true}
	if err := s.flattenInto(out, 1, path); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Multiset[T]) flattenInto(dst *Multiset[T], factor int, path map[*Multiset[T]]bool) error {
	var err error
	s.store.each(func(item T, count int) bool {
		nested, ok := any(item).(*Multiset[T])
		if !ok {
			dst.store.add(item, factor*count)
			return true
		}
		if path[nested] {
			err = ErrRecursiveNesting
			return false
		}
		path[nested] = true
		err = nested.flattenInto(dst, factor*count, path)
		delete(path, nested)
		return err == nil
	})
	return err
}

// FlattenInPlace replaces s's contents with their flattened form.
// Returns false when no stored item was a nested multiset, mirroring
// the RejectInPlace convention.
func (s *Multiset[T]) FlattenInPlace() (bool, error) {
	nested := false
	s.store.each(func(item T, count int) bool {
		if _, ok := any(item).(*Multiset[T]); ok {
			nested = true
			return false
		}
		return true
	})
	if !nested {
		return false, nil
	}
	flat, err := s.Flatten()
	if err != nil {
		return false, err
	}
	s.store = flat.store
	return true, nil
}
