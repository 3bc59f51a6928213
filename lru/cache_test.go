package lru

import (
	"slices"
	"testing"

	"github.com/npillmayer/ordered/order"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T, capacity int) *Cache[int, string] {
	t.Helper()
	c, err := NewOrdered[int, string](capacity)
	require.NoError(t, err)
	return c
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := NewOrdered[int, int](0)
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = New[int, int](order.NaturalMulti[int]{}, Config{Capacity: 4})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()

	c := newCache(t, 4)
	for k := 1; k <= 5; k++ {
		c.Put(k, "")
		require.NoError(t, c.Check())
	}
	assert.False(t, c.Contains(1), "1 should have been evicted")
	assert.Equal(t, []int{5, 4, 3, 2}, slices.Collect(c.Keys()))

	_, ok := c.Get(2)
	require.True(t, ok)
	c.Put(6, "")
	require.NoError(t, c.Check())
	assert.False(t, c.Contains(3), "3 should have been evicted")
	assert.True(t, c.Contains(2), "touched entry 2 must survive")
	assert.Equal(t, []int{6, 2, 5, 4}, slices.Collect(c.Keys()))
}

func TestStatistics(t *testing.T) {
	c := newCache(t, 2)
	c.Put(1, "one")
	v, ok := c.Get(1)
	require.True(t, ok)
	require.Equal(t, "one", v)
	_, ok = c.Get(2)
	require.False(t, ok)
	_, _ = c.Peek(1)
	assert.Equal(t, Stats{Hits: 1, Misses: 1, Capacity: 2, Count: 1}, c.Stats())
}

func TestPutExistingKeyUpdatesAndTouches(t *testing.T) {
	c := newCache(t, 3)
	c.Put(1, "a")
	c.Put(2, "b")
	c.Put(3, "c")
	c.Put(1, "A")
	c.Put(4, "d")
	require.NoError(t, c.Check())
	v, ok := c.Peek(1)
	require.True(t, ok)
	assert.Equal(t, "A", v)
	assert.False(t, c.Contains(2))
	assert.Equal(t, 3, c.Len())
}

func TestMemoize(t *testing.T) {
	c := newCache(t, 8)
	calls := 0
	square := func(k int) string {
		calls++
		return string(rune('a' + k))
	}
	for range 3 {
		for k := range 5 {
			c.Memoize(k, square)
		}
	}
	assert.Equal(t, 5, calls)
	assert.Equal(t, uint64(10), c.Stats().Hits)
	assert.Equal(t, uint64(5), c.Stats().Misses)
}

func TestResizeEvicts(t *testing.T) {
	c := newCache(t, 5)
	for k := 1; k <= 5; k++ {
		c.Put(k, "")
	}
	c.Get(1)
	require.NoError(t, c.Resize(2))
	require.NoError(t, c.Check())
	assert.Equal(t, []int{1, 5}, slices.Collect(c.Keys()))
	require.ErrorIs(t, c.Resize(-1), ErrInvalidConfig)
	assert.Equal(t, 2, c.Capacity())
}

func TestRemoveAndClear(t *testing.T) {
	c := newCache(t, 4)
	for k := 1; k <= 4; k++ {
		c.Put(k, "")
	}
	assert.True(t, c.Remove(3))
	assert.False(t, c.Remove(3))
	require.NoError(t, c.Check())
	var ordered []int
	for k := range c.Ordered() {
		ordered = append(ordered, k)
	}
	assert.Equal(t, []int{1, 2, 4}, ordered)
	c.Clear()
	require.NoError(t, c.Check())
	assert.Equal(t, 0, c.Len())
	c.Put(7, "")
	assert.Equal(t, []int{7}, slices.Collect(c.Keys()))
}

func TestTupleKeys(t *testing.T) {
	calls := 0
	binomial := func(n, k int) int {
		calls++
		return n*10 + k
	}
	f, cache, err := Memoize2(16, binomial)
	require.NoError(t, err)
	assert.Equal(t, 53, f(5, 3))
	assert.Equal(t, 53, f(5, 3))
	assert.Equal(t, 35, f(3, 5))
	assert.Equal(t, 2, calls)
	assert.Equal(t, []Key2[int, int]{K2(3, 5), K2(5, 3)}, slices.Collect(func(yield func(Key2[int, int]) bool) {
		for k := range cache.Ordered() {
			if !yield(k) {
				return
			}
		}
	}))

	g, _, err := Memoize3(4, func(s string, a, b int) string { return s[a:b] })
	require.NoError(t, err)
	assert.Equal(t, "ell", g("hello", 1, 4))
	assert.Equal(t, -1, K3("a", 1, 2.0).Compare(K3("a", 1, 2.5)))
	assert.Equal(t, "(x, 1)", K2("x", 1).String())
}
