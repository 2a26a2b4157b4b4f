package offer

import (
	"testing"

	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/store"
	"github.com/iov-one/swap/swaptest/assert"
)

func TestBucketLifecycle(t *testing.T) {
	db := store.MemStore()
	b := NewBucket()
	o := newOffer(t)
	o.Bump = 0

	_, err := b.Read(db, o.Maker, o.ID)
	assert.IsErr(t, errors.ErrNotFound, err)

	addr, err := b.Create(db, o)
	assert.Nil(t, err)
	want, bump, err := FindAddress(o.Maker, o.ID)
	assert.Nil(t, err)
	assert.Equal(t, want, addr)
	assert.Equal(t, bump, o.Bump)

	_, err = b.Create(db, o)
	assert.IsErr(t, errors.ErrDuplicate, err)

	got, err := b.Read(db, o.Maker, o.ID)
	assert.Nil(t, err)
	assert.Equal(t, o, got)
	assert.Nil(t, b.Has(db, addr))

	second := *o
	second.ID = 8
	_, err = b.Create(db, &second)
	assert.Nil(t, err)

	offers, err := b.ByMaker(db, o.Maker)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(offers))

	assert.Nil(t, b.destroy(db, addr))
	_, err = b.Get(db, addr)
	assert.IsErr(t, errors.ErrNotFound, err)
	assert.IsErr(t, errors.ErrNotFound, b.destroy(db, addr))

	offers, err = b.ByMaker(db, o.Maker)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(offers))
	assert.Equal(t, uint64(8), offers[0].ID)
}
