package multiset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyIdentity(t *testing.T) {
	s := FromItems("a", "a", "b", "b", "b", "c")
	mm := Classify(s, func(item string) string { return item })
	require.ElementsMatch(t, []string{"a", "b", "c"}, mm.Keys())
	require.True(t, FromEntries([]Entry[string]{{"a", 2}}).Equal(mm.Fetch("a")))
	require.True(t, FromEntries([]Entry[string]{{"b", 3}}).Equal(mm.Fetch("b")))
	require.True(t, FromEntries([]Entry[string]{{"c", 1}}).Equal(mm.Fetch("c")))
}

func TestClassifyMergesCollidingKeys(t *testing.T) {
	s := FromItems("apple", "avocado", "banana", "banana")
	mm := Classify(s, func(item string) byte { return item[0] })
	require.Equal(t, 2, mm.Len())
	a := mm.Fetch('a')
	require.Equal(t, 1, a.Count("apple"))
	require.Equal(t, 1, a.Count("avocado"))
	require.Equal(t, 2, mm.Fetch('b').Count("banana"))
}

func TestClassifyConservesSize(t *testing.T) {
	s := FromItems("a", "a", "bb", "cc", "cc", "cc", "d")
	mm := Classify(s, func(item string) int { return len(item) })
	require.Equal(t, s.Size(), mm.TotalSize())
}

func TestClassifyWith(t *testing.T) {
	s := FromItems("a", "b", "b", "c", "c", "c")
	mm := ClassifyWith(s, func(item string, count int) bool { return count > 1 })
	require.Equal(t, 1, mm.Fetch(false).Size())
	require.Equal(t, 5, mm.Fetch(true).Size())
	require.Equal(t, s.Size(), mm.TotalSize())
}
