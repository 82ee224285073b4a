package multiset

// Source is a closed set of coercion variants accepted where a multiset
// is built from caller data, chiefly Multimap.Store. The variant is
// chosen explicitly by the caller; there is no capability probing.
type Source[T comparable] interface {
	resolve() (*Multiset[T], error)
}

// Items is the raw-item variant: each occurrence counts once.
func Items[T comparable](items ...T) Source[T] {
	return itemsSource[T]{items: items}
}

// Counts is the explicit-count variant.
func Counts[T comparable](counts map[T]int) Source[T] {
	return countsSource[T]{counts: counts}
}

// Of is the multiset variant: the set is duplicated, never aliased.
func Of[T comparable](set *Multiset[T]) Source[T] {
	return setSource[T]{set: set}
}

// Lines is the text variant: one item per line of text.
func Lines(text string) Source[string] {
	return linesSource{text: text}
}

type itemsSource[T comparable] struct{ items []T }

func (src itemsSource[T]) resolve() (*Multiset[T], error) {
	return FromItems(src.items...), nil
}

type countsSource[T comparable] struct{ counts map[T]int }

func (src countsSource[T]) resolve() (*Multiset[T], error) {
	return FromCounts(src.counts), nil
}

type setSource[T comparable] struct{ set *Multiset[T] }

func (src setSource[T]) resolve() (*Multiset[T], error) {
	if src.set == nil {
		return nil, ErrInvalidArgument
	}
	return src.set.Clone(), nil
}

type linesSource struct{ text string }

func (src linesSource) resolve() (*Multiset[string], error) {
	return FromTextLines(src.text), nil
}

// Parse builds a multiset from any of the supported source shapes,
// dispatching on a finite type check: a string becomes text lines
// (only when T is string), a *Multiset[T] is duplicated, a map[T]int is
// taken as explicit counts, and a []T or []Entry[T] as raw items or
// pairs. Any other value fails with ErrInvalidArgument.
func Parse[T comparable](src any) (*Multiset[T], error) {
	switch v := src.(type) {
	case *Multiset[T]:
		if v == nil {
			return nil, ErrInvalidArgument
		}
		return v.Clone(), nil
	case map[T]int:
		return FromCounts(v), nil
	case []T:
		return FromItems(v...), nil
	case []Entry[T]:
		return FromEntries(v), nil
	case string:
		if lines, ok := any(FromTextLines(v)).(*Multiset[T]); ok {
			return lines, nil
		}
		return nil, ErrInvalidArgument
	}
	return nil, ErrInvalidArgument
}
