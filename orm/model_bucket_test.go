package orm

import (
	"testing"

	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/store"
	"github.com/iov-one/swap/swaptest/assert"
)

func TestModelBucket(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &Counter{}, WithIndex("owner", byOwner, false))

	assert.IsErr(t, errors.ErrNotFound, b.Has(db, []byte("c1")))
	assert.IsErr(t, errors.ErrNotFound, b.Has(db, nil))

	assert.Nil(t, b.Put(db, []byte("c1"), &Counter{Owner: []byte("alice"), Count: 1}))
	assert.Nil(t, b.Put(db, []byte("c2"), &Counter{Owner: []byte("alice"), Count: 2}))
	assert.Nil(t, b.Put(db, []byte("c3"), &Counter{Owner: []byte("bob"), Count: 3}))
	assert.Nil(t, b.Has(db, []byte("c1")))

	var c Counter
	assert.Nil(t, b.One(db, []byte("c2"), &c))
	assert.Equal(t, int64(2), c.Count)

	keys, models, err := b.ByIndex(db, "owner", []byte("alice"))
	assert.Nil(t, err)
	assert.Equal(t, [][]byte{[]byte("c1"), []byte("c2")}, keys)
	assert.Equal(t, 2, len(models))

	assert.Nil(t, b.Delete(db, []byte("c1")))
	assert.IsErr(t, errors.ErrNotFound, b.One(db, []byte("c1"), &c))
	assert.IsErr(t, errors.ErrNotFound, b.Delete(db, []byte("c1")))

	keys, _, err = b.ByIndex(db, "owner", []byte("alice"))
	assert.Nil(t, err)
	assert.Equal(t, [][]byte{[]byte("c2")}, keys)
}

func TestModelBucketRejectsInvalid(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &Counter{})

	assert.IsErr(t, errors.ErrInvalidState, b.Put(db, []byte("c1"), &Counter{Count: -1}))
	assert.IsErr(t, errors.ErrInvalidModel, b.Put(db, []byte("c1"), &MultiRef{Refs: [][]byte{[]byte("x")}}))

	assert.Nil(t, b.Put(db, []byte("c1"), &Counter{Count: 1}))
	var ref MultiRef
	assert.IsErr(t, errors.ErrInvalidType, b.One(db, []byte("c1"), &ref))
}

func TestMultiRef(t *testing.T) {
	m, err := NewMultiRef([]byte("b"), []byte("a"), []byte("c"))
	assert.Nil(t, err)
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b"), []byte("c")}, m.Refs)

	assert.IsErr(t, errors.ErrDuplicate, m.Add([]byte("b")))
	assert.Nil(t, m.Remove([]byte("b")))
	assert.IsErr(t, errors.ErrNotFound, m.Remove([]byte("b")))

	raw, err := m.Marshal()
	assert.Nil(t, err)
	var got MultiRef
	assert.Nil(t, got.Unmarshal(raw))
	assert.Equal(t, m.Refs, got.Refs)

	assert.IsErr(t, errors.ErrEmpty, (&MultiRef{}).Validate())
}
