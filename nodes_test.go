package cmna_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/cmna"
)

func resolveAll(t *testing.T, table *cmna.NodeTable, names []string) []int {
	t.Helper()
	indices := make([]int, len(names))
	for i, name := range names {
		index, err := table.Resolve(name)
		require.NoError(t, err)
		indices[i] = index
	}
	return indices
}

func TestNodeTable_FirstSeenOrder(t *testing.T) {
	table := cmna.NewNodeTable(10, 10)
	got := resolveAll(t, table, []string{"in", "out", "in", "0", "mid", "out"})

	assert.Equal(t, []int{1, 2, 1, 0, 3, 2}, got)
	assert.Equal(t, 3, table.Count())
	assert.Equal(t, []string{"0", "in", "out", "mid"}, table.Names())
	assert.Equal(t, "mid", table.Name(3))
	assert.Equal(t, "", table.Name(4))
}

func TestNodeTable_Deterministic(t *testing.T) {
	names := []string{"b", "a", "0", "c", "a", "d", "b"}

	first := resolveAll(t, cmna.NewNodeTable(10, 10), names)
	second := resolveAll(t, cmna.NewNodeTable(10, 10), names)

	assert.Equal(t, first, second)
}

func TestNodeTable_GroundInvariance(t *testing.T) {
	cases := [][]string{
		{"0", "a", "b"},
		{"a", "0", "b"},
		{"a", "b", "0"},
	}
	for _, names := range cases {
		table := cmna.NewNodeTable(10, 10)
		resolveAll(t, table, names)

		index, ok := table.Lookup("0")
		require.True(t, ok)
		assert.Equal(t, 0, index, "names %v", names)
		assert.Equal(t, 2, table.Count())
	}
}

func TestNodeTable_CaseSensitive(t *testing.T) {
	table := cmna.NewNodeTable(10, 10)
	got := resolveAll(t, table, []string{"a", "A"})
	assert.Equal(t, []int{1, 2}, got)
}

func TestNodeTable_CapacityExceeded(t *testing.T) {
	table := cmna.NewNodeTable(2, 10)
	resolveAll(t, table, []string{"a", "b", "0", "a"})

	_, err := table.Resolve("c")
	require.ErrorIs(t, err, cmna.ErrCapacityExceeded)
	assert.Equal(t, 2, table.Count())

	// Known names still resolve at the limit.
	index, err := table.Resolve("b")
	require.NoError(t, err)
	assert.Equal(t, 2, index)
}

func TestNodeTable_NameTooLong(t *testing.T) {
	table := cmna.NewNodeTable(10, 4)

	_, err := table.Resolve("abcde")
	require.ErrorIs(t, err, cmna.ErrNameTooLong)

	index, err := table.Resolve("abcd")
	require.NoError(t, err)
	assert.Equal(t, 1, index)
}

func TestNodeTable_ResolveAll(t *testing.T) {
	table := cmna.NewNodeTable(3, 4)
	resolveAll(t, table, []string{"a"})

	got, err := table.ResolveAll([]string{"b", "a", "b", "0"})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 2, 0}, got)

	cases := []struct {
		name  string
		names []string
		err   error
	}{
		{"NameTooLong", []string{"c", "toolong"}, cmna.ErrNameTooLong},
		{"CapacityExceeded", []string{"c", "d"}, cmna.ErrCapacityExceeded},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := table.ResolveAll(tc.names)
			require.ErrorIs(t, err, tc.err)
			assert.Equal(t, []string{"0", "a", "b"}, table.Names())
		})
	}
}
