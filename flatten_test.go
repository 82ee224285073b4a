package multiset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	inner := New[any]()
	inner.AddN("x", 2)
	inner.Add("y")
	s := New[any]()
	s.Add("a")
	s.AddN(inner, 3)
	flat, err := s.Flatten()
	require.Nil(t, err)
	// the nested set occurs 3 times, so its contents contribute 3 times
	require.Equal(t, 1, flat.Count("a"))
	require.Equal(t, 6, flat.Count("x"))
	require.Equal(t, 3, flat.Count("y"))
	require.Equal(t, 10, flat.Size())
	// the source keeps its nested structure
	require.Equal(t, 3, s.Count(inner))
}

func TestFlattenDeepNesting(t *testing.T) {
	innermost := New[any]()
	innermost.Add("z")
	middle := New[any]()
	middle.AddN(innermost, 2)
	middle.Add("y")
	s := New[any]()
	s.AddN(middle, 2)
	flat, err := s.Flatten()
	require.Nil(t, err)
	require.Equal(t, 4, flat.Count("z"))
	require.Equal(t, 2, flat.Count("y"))
}

func TestFlattenIdempotent(t *testing.T) {
	inner := New[any]()
	inner.Add("x")
	s := New[any]()
	s.Add(inner)
	s.Add("a")
	once, err := s.Flatten()
	require.Nil(t, err)
	twice, err := once.Flatten()
	require.Nil(t, err)
	require.True(t, once.Equal(twice))
}

func TestFlattenWithoutNesting(t *testing.T) {
	s := FromItems("a", "a", "b")
	flat, err := s.Flatten()
	require.Nil(t, err)
	require.True(t, s.Equal(flat))
	require.NotSame(t, s, flat)
}

func TestFlattenInPlace(t *testing.T) {
	inner := New[any]()
	inner.Add("x")
	s := New[any]()
	s.Add(inner)
	changed, err := s.FlattenInPlace()
	require.Nil(t, err)
	require.True(t, changed)
	require.Equal(t, 1, s.Count("x"))
	// nothing nested anymore: quiet sentinel
	changed, err = s.FlattenInPlace()
	require.Nil(t, err)
	require.False(t, changed)
}

func TestFlattenCycle(t *testing.T) {
	s := New[any]()
	s.Add("a")
	s.Add(s)
	_, err := s.Flatten()
	require.ErrorIs(t, err, ErrRecursiveNesting)
	_, err = s.FlattenInPlace()
	require.ErrorIs(t, err, ErrRecursiveNesting)
}

func TestFlattenIndirectCycle(t *testing.T) {
	a := New[any]()
	b := New[any]()
	a.Add(b)
	b.Add(a)
	_, err := a.Flatten()
	require.ErrorIs(t, err, ErrRecursiveNesting)
}

func TestFlattenSharedNestingIsNotACycle(t *testing.T) {
	shared := New[any]()
	shared.Add("x")
	s := New[any]()
	left := New[any]()
	left.Add(shared)
	right := New[any]()
	right.Add(shared)
	s.Add(left)
	s.Add(right)
	flat, err := s.Flatten()
	require.Nil(t, err)
	require.Equal(t, 2, flat.Count("x"))
}
