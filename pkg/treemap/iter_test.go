package treemap

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Iteration test constants.
const (
	iterSeed     = 4
	iterKeyCount = 300
	iterBreakAt  = 5
)

// buildRandomMap inserts iterKeyCount distinct random keys and returns the
// map with the sorted key slice.
func buildRandomMap(tb testing.TB) (*Map[int, int], []int) {
	tb.Helper()

	rng := rand.New(rand.NewSource(iterSeed))
	m := New[int, int]()
	keys := rng.Perm(iterKeyCount)

	for _, k := range keys {
		m.Insert(k, k*10)
	}

	slices.Sort(keys)

	return m, keys
}

// TestAll_Ascending verifies full in-order iteration.
func TestAll_Ascending(t *testing.T) {
	t.Parallel()

	m, keys := buildRandomMap(t)

	var got []int

	for k, v := range m.All() {
		require.Equal(t, k*10, v)
		got = append(got, k)
	}

	assert.Equal(t, keys, got)
}

// TestAll_EarlyBreak verifies a stopped range yields exactly the prefix.
func TestAll_EarlyBreak(t *testing.T) {
	t.Parallel()

	m, keys := buildRandomMap(t)

	var got []int

	for k := range m.All() {
		got = append(got, k)
		if len(got) == iterBreakAt {
			break
		}
	}

	assert.Equal(t, keys[:iterBreakAt], got)
	assert.Equal(t, iterKeyCount, m.Len())
}

// TestAll_Restartable verifies the sequence can be ranged repeatedly.
func TestAll_Restartable(t *testing.T) {
	t.Parallel()

	m, keys := buildRandomMap(t)
	seq := m.All()

	for range 2 {
		var got []int

		for k := range seq {
			got = append(got, k)
		}

		assert.Equal(t, keys, got)
	}
}

// TestAll_Empty verifies iteration over the empty map yields nothing.
func TestAll_Empty(t *testing.T) {
	t.Parallel()

	m := New[int, int]()

	for range m.All() {
		t.Fatal("empty map yielded a pair")
	}
}

// TestKeysValues verifies the key and value projections match All.
func TestKeysValues(t *testing.T) {
	t.Parallel()

	m, keys := buildRandomMap(t)

	assert.Equal(t, keys, slices.Collect(m.Keys()))

	values := slices.Collect(m.Values())
	require.Len(t, values, len(keys))

	for i, k := range keys {
		assert.Equal(t, k*10, values[i])
	}
}

// TestLen_MatchesIterationCount verifies size accounting against a walk.
func TestLen_MatchesIterationCount(t *testing.T) {
	t.Parallel()

	m, _ := buildRandomMap(t)

	count := 0
	for range m.Keys() {
		count++
	}

	assert.Equal(t, m.Len(), count)
}

// TestDrain verifies consuming iteration empties the map up front and
// yields every pair in order.
func TestDrain(t *testing.T) {
	t.Parallel()

	m, keys := buildRandomMap(t)
	seq := m.Drain()

	// The map is empty before the sequence is consumed.
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0, m.Len())
	require.NoError(t, m.Validate())

	var got []int

	for k, v := range seq {
		require.Equal(t, k*10, v)
		got = append(got, k)
	}

	assert.Equal(t, keys, got)
}

// TestDrain_EarlyBreak verifies the map stays empty when the caller stops
// consuming.
func TestDrain_EarlyBreak(t *testing.T) {
	t.Parallel()

	m, _ := buildRandomMap(t)

	for range m.Drain() {
		break
	}

	assert.True(t, m.IsEmpty())

	// The drained map is immediately reusable.
	m.Insert(1, 10)
	assert.Equal(t, 1, m.Len())
	require.NoError(t, m.Validate())
}

// TestDrain_Empty verifies draining an empty map yields nothing.
func TestDrain_Empty(t *testing.T) {
	t.Parallel()

	m := New[int, int]()

	for range m.Drain() {
		t.Fatal("empty map yielded a pair")
	}
}

// TestIterator_ForwardBackward walks the cursor both ways across the whole
// map.
func TestIterator_ForwardBackward(t *testing.T) {
	t.Parallel()

	m, keys := buildRandomMap(t)

	var forward []int

	for it := m.Min(); it.Valid(); it = it.Next() {
		require.Equal(t, it.Key()*10, it.Value())
		forward = append(forward, it.Key())
	}

	assert.Equal(t, keys, forward)

	var backward []int

	for it := m.Max(); it.Valid(); it = it.Prev() {
		backward = append(backward, it.Key())
	}

	slices.Reverse(backward)
	assert.Equal(t, keys, backward)
}

// TestIterator_ValueSemantics verifies advancing a copy leaves the original
// cursor in place.
func TestIterator_ValueSemantics(t *testing.T) {
	t.Parallel()

	m := New[int, string]()
	m.Insert(1, "one")
	m.Insert(2, "two")

	first := m.Min()
	second := first.Next()

	assert.Equal(t, 1, first.Key())
	assert.Equal(t, 2, second.Key())
}

// TestIterator_Empty verifies cursors on an empty map are invalid and stay
// invalid.
func TestIterator_Empty(t *testing.T) {
	t.Parallel()

	m := New[int, int]()

	assert.False(t, m.Min().Valid())
	assert.False(t, m.Max().Valid())
	assert.False(t, m.Min().Next().Valid())
	assert.False(t, m.Max().Prev().Valid())
}

// TestIterator_PastEnds verifies stepping off either end invalidates the
// cursor without wrapping.
func TestIterator_PastEnds(t *testing.T) {
	t.Parallel()

	m := New[int, int]()
	m.Insert(1, 1)

	it := m.Min()
	require.True(t, it.Valid())

	assert.False(t, it.Next().Valid())
	assert.False(t, it.Next().Next().Valid())
	assert.False(t, it.Prev().Valid())
}
