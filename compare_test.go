package multiset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	a := FromItems("x", "x", "y")
	b := FromItems("y", "x", "x")
	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))
	b.Add("x")
	require.False(t, a.Equal(b))
	require.True(t, a.Equal(a))
	require.True(t, New[string]().Equal(New[string]()))
}

func TestEqualNonMultiset(t *testing.T) {
	a := FromItems("x")
	// equality never fails on a foreign argument, it is simply false
	require.False(t, a.Equal("x"))
	require.False(t, a.Equal(42))
	require.False(t, a.Equal(nil))
	require.False(t, a.Equal(FromItems(1)))
}

func TestSubsetSuperset(t *testing.T) {
	a := FromItems("x", "y")
	b := FromItems("x", "x", "y", "z")
	sub, err := a.Subset(b)
	require.Nil(t, err)
	require.True(t, sub)
	sub, err = b.Subset(a)
	require.Nil(t, err)
	require.False(t, sub)
	sup, err := b.Superset(a)
	require.Nil(t, err)
	require.True(t, sup)
	sup, err = a.Superset(b)
	require.Nil(t, err)
	require.False(t, sup)
	// counts matter, not just membership
	c := FromItems("x", "x")
	sub, err = c.Subset(FromItems("x"))
	require.Nil(t, err)
	require.False(t, sub)
}

func TestProperVariants(t *testing.T) {
	a := FromItems("x", "y")
	same := FromItems("x", "y")
	bigger := FromItems("x", "y", "y")
	p, err := a.ProperSubset(same)
	require.Nil(t, err)
	require.False(t, p)
	p, err = a.ProperSubset(bigger)
	require.Nil(t, err)
	require.True(t, p)
	p, err = bigger.ProperSuperset(a)
	require.Nil(t, err)
	require.True(t, p)
	p, err = same.ProperSuperset(a)
	require.Nil(t, err)
	require.False(t, p)
}

func TestComparisonTypeCheck(t *testing.T) {
	a := FromItems("x")
	// the subset family is loud about foreign arguments, unlike Equal
	_, err := a.Subset("x")
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = a.Superset(42)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = a.ProperSubset(nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = a.ProperSuperset(FromItems(1))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMutualSubsetIsEquality(t *testing.T) {
	pairs := [][2]*Multiset[string]{
		{FromItems("a", "a", "b"), FromItems("b", "a", "a")},
		{FromItems("a", "a", "b"), FromItems("a", "b")},
		{New[string](), New[string]()},
		{FromItems("a"), FromItems("b")},
	}
	for _, pair := range pairs {
		ab, err := pair[0].Subset(pair[1])
		require.Nil(t, err)
		ba, err := pair[1].Subset(pair[0])
		require.Nil(t, err)
		require.Equal(t, pair[0].Equal(pair[1]), ab && ba)
	}
}
