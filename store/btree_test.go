package store

import (
	"testing"

	"github.com/iov-one/swap/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, it Iterator) []Model {
	t.Helper()
	defer it.Release()
	var res []Model
	for {
		k, v, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return res
		}
		require.NoError(t, err)
		res = append(res, Model{Key: k, Value: v})
	}
}

func TestCacheWrapGetSetDelete(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("a"), []byte("1")))
	require.NoError(t, base.Set([]byte("b"), []byte("2")))

	cache := base.CacheWrap()
	require.NoError(t, cache.Set([]byte("c"), []byte("3")))
	require.NoError(t, cache.Delete([]byte("a")))

	has, err := cache.Has([]byte("a"))
	require.NoError(t, err)
	assert.False(t, has)
	v, err := cache.Get([]byte("c"))
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), v)

	// parent is untouched until write
	v, err = base.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
	has, err = base.Has([]byte("c"))
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, cache.Write())

	v, err = base.Get([]byte("a"))
	require.NoError(t, err)
	assert.Nil(t, v)
	v, err = base.Get([]byte("c"))
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), v)
}

func TestCacheWrapDiscard(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("a"), []byte("1")))

	cache := base.CacheWrap()
	require.NoError(t, cache.Set([]byte("a"), []byte("changed")))
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	cache.Discard()

	// writing a discarded cache is a noop
	require.NoError(t, cache.Write())

	v, err := base.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
	has, err := base.Has([]byte("b"))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestCacheWrapIterators(t *testing.T) {
	base := MemStore()
	for _, k := range []string{"a", "b", "d", "f"} {
		require.NoError(t, base.Set([]byte(k), []byte("base-"+k)))
	}

	cache := base.CacheWrap()
	require.NoError(t, cache.Set([]byte("c"), []byte("cache-c")))
	require.NoError(t, cache.Set([]byte("d"), []byte("cache-d")))
	require.NoError(t, cache.Delete([]byte("b")))
	require.NoError(t, cache.Delete([]byte("zz")))

	cases := map[string]struct {
		start, end []byte
		reverse    bool
		want       []Model
	}{
		"full ascending": {
			want: []Model{
				{Key: []byte("a"), Value: []byte("base-a")},
				{Key: []byte("c"), Value: []byte("cache-c")},
				{Key: []byte("d"), Value: []byte("cache-d")},
				{Key: []byte("f"), Value: []byte("base-f")},
			},
		},
		"full descending": {
			reverse: true,
			want: []Model{
				{Key: []byte("f"), Value: []byte("base-f")},
				{Key: []byte("d"), Value: []byte("cache-d")},
				{Key: []byte("c"), Value: []byte("cache-c")},
				{Key: []byte("a"), Value: []byte("base-a")},
			},
		},
		"bounded ascending": {
			start: []byte("b"),
			end:   []byte("e"),
			want: []Model{
				{Key: []byte("c"), Value: []byte("cache-c")},
				{Key: []byte("d"), Value: []byte("cache-d")},
			},
		},
		"bounded descending": {
			start:   []byte("a"),
			end:     []byte("d"),
			reverse: true,
			want: []Model{
				{Key: []byte("c"), Value: []byte("cache-c")},
				{Key: []byte("a"), Value: []byte("base-a")},
			},
		},
		"empty range": {
			start: []byte("x"),
			end:   []byte("y"),
			want:  nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var (
				it  Iterator
				err error
			)
			if tc.reverse {
				it, err = cache.ReverseIterator(tc.start, tc.end)
			} else {
				it, err = cache.Iterator(tc.start, tc.end)
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, readAll(t, it))
		})
	}
}

func TestNestedCacheWrap(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("a"), []byte("1")))

	outer := base.CacheWrap()
	require.NoError(t, outer.Set([]byte("b"), []byte("2")))

	inner := outer.CacheWrap()
	require.NoError(t, inner.Delete([]byte("a")))
	require.NoError(t, inner.Set([]byte("c"), []byte("3")))
	require.NoError(t, inner.Write())

	it, err := outer.Iterator(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []Model{
		{Key: []byte("b"), Value: []byte("2")},
		{Key: []byte("c"), Value: []byte("3")},
	}, readAll(t, it))

	// base still has the original value
	v, err := base.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
}

func TestNonAtomicBatchShowOps(t *testing.T) {
	b := NewNonAtomicBatch(EmptyKVStore{})
	require.NoError(t, b.Set([]byte("a"), []byte("1")))
	require.NoError(t, b.Delete([]byte("b")))
	assert.Equal(t, []Op{SetOp([]byte("a"), []byte("1")), DelOp([]byte("b"))}, b.ShowOps())
	require.NoError(t, b.Write())
	assert.Empty(t, b.ShowOps())
}
