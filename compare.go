package multiset

// compareWith applies rel to the per-item counts of s and other over
// the union of their distinct items: s's items in insertion order
// first, then other's items not already seen. Short-circuits on the
// first failing item.
func (s *Multiset[T]) compareWith(other *Multiset[T], rel func(a, b int) bool) bool {
	ok := true
	s.store.each(func(item T, count int) bool {
		if !rel(count, other.Count(item)) {
			ok = false
		}
		return ok
	})
	if !ok {
		return false
	}
	other.store.each(func(item T, count int) bool {
		if !s.Contains(item) && !rel(0, count) {
			ok = false
		}
		return ok
	})
	return ok
}

// Equal reports whether other is a *Multiset[T] with exactly the same
// item counts. A value of any other type compares unequal; Equal never
// fails, unlike the subset family.
func (s *Multiset[T]) Equal(other any) bool {
	o, ok := other.(*Multiset[T])
	if !ok || o == nil {
		return false
	}
	if s == o {
		return true
	}
	if s.Size() != o.Size() {
		return false
	}
	return s.compareWith(o, func(a, b int) bool { return a == b })
}

func (s *Multiset[T]) operand(other any) (*Multiset[T], error) {
	o, ok := other.(*Multiset[T])
	if !ok || o == nil {
		return nil, ErrInvalidArgument
	}
	return o, nil
}

// Subset reports whether every item of s occurs in other at least as
// often. Fails with ErrInvalidArgument if other is not a *Multiset[T].
func (s *Multiset[T]) Subset(other any) (bool, error) {
	o, err := s.operand(other)
	if err != nil {
		return false, err
	}
	return s.compareWith(o, func(a, b int) bool { return a <= b }), nil
}

// Superset reports whether s contains every item of other at least as
// often. Fails with ErrInvalidArgument if other is not a *Multiset[T].
func (s *Multiset[T]) Superset(other any) (bool, error) {
	o, err := s.operand(other)
	if err != nil {
		return false, err
	}
	return s.compareWith(o, func(a, b int) bool { return a >= b }), nil
}

// ProperSubset is Subset excluding equality.
func (s *Multiset[T]) ProperSubset(other any) (bool, error) {
	sub, err := s.Subset(other)
	if err != nil {
		return false, err
	}
	return sub && !s.Equal(other), nil
}

// ProperSuperset is Superset excluding equality.
func (s *Multiset[T]) ProperSuperset(other any) (bool, error) {
	sup, err := s.Superset(other)
	if err != nil {
		return false, err
	}
	return sup && !s.Equal(other), nil
}
