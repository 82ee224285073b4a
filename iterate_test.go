package multiset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEachExpands(t *testing.T) {
	s := FromItems("a", "a", "a", "b")
	visited := make([]string, 0)
	s.Each(func(item string) {
		visited = append(visited, item)
	})
	require.Equal(t, []string{"a", "a", "a", "b"}, visited)
}

func TestEachItemDistinctOnce(t *testing.T) {
	s := FromItems("a", "a", "a", "b")
	visited := make([]string, 0)
	s.EachItem(func(item string) {
		visited = append(visited, item)
	})
	require.Equal(t, []string{"a", "b"}, visited)
}

func TestEachPair(t *testing.T) {
	s := FromItems("a", "a", "a", "b")
	items := make([]string, 0)
	counts := make([]int, 0)
	s.EachPair(func(item string, count int) {
		items = append(items, item)
		counts = append(counts, count)
	})
	require.Equal(t, []string{"a", "b"}, items)
	require.Equal(t, []int{3, 1}, counts)
}

func TestExpandedSeqRestartable(t *testing.T) {
	s := FromItems("a", "a", "b")
	seq := s.Expanded()
	for round := 0; round < 2; round++ {
		visited := make([]string, 0)
		for item := range seq {
			visited = append(visited, item)
		}
		require.Equal(t, []string{"a", "a", "b"}, visited)
	}
	// early break does not poison the sequence
	for item := range seq {
		_ = item
		break
	}
	n := 0
	for range seq {
		n++
	}
	require.Equal(t, 3, n)
}

func TestDistinctSeq(t *testing.T) {
	s := FromItems("b", "a", "a")
	visited := make([]string, 0)
	for item := range s.Distinct() {
		visited = append(visited, item)
	}
	require.Equal(t, []string{"b", "a"}, visited)
}

func TestPairsSeq(t *testing.T) {
	s := FromItems("b", "a", "a")
	seq := s.Pairs()
	for round := 0; round < 2; round++ {
		got := make(map[string]int)
		order := make([]string, 0)
		for item, count := range seq {
			got[item] = count
			order = append(order, item)
		}
		require.Equal(t, map[string]int{"b": 1, "a": 2}, got)
		require.Equal(t, []string{"b", "a"}, order)
	}
}
