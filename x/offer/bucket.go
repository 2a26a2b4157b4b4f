package offer

import (
	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/orm"
)

const bucketName = "offers"

// Bucket is the offer record store. Offers are keyed by their derived
// address and indexed by maker.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket returns a bucket for managing offers.
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket(bucketName, &Offer{},
			orm.WithIndex("maker", makerIndexer, false),
		),
	}
}

func makerIndexer(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	o, ok := obj.Value().(*Offer)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidModel, "%T is not an offer", obj.Value())
	}
	return o.Maker, nil
}

// Create stores a new offer at the address derived from its maker and id.
// The canonical bump is set on the offer. It fails with ErrDuplicate if
// the address is already occupied.
func (b Bucket) Create(db swap.KVStore, o *Offer) (swap.Address, error) {
	addr, bump, err := FindAddress(o.Maker, o.ID)
	if err != nil {
		return nil, err
	}
	switch err := b.Has(db, addr); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrDuplicate, "offer %d of %s", o.ID, o.Maker)
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}
	o.Bump = bump
	if err := b.Put(db, addr, o); err != nil {
		return nil, err
	}
	return addr, nil
}

// Read returns the open offer of the maker with given id.
func (b Bucket) Read(db swap.ReadOnlyKVStore, maker swap.Address, id uint64) (*Offer, error) {
	addr, _, err := FindAddress(maker, id)
	if err != nil {
		return nil, err
	}
	return b.Get(db, addr)
}

// Get returns the offer stored at given address.
func (b Bucket) Get(db swap.ReadOnlyKVStore, addr swap.Address) (*Offer, error) {
	var o Offer
	if err := b.One(db, addr, &o); err != nil {
		return nil, errors.Wrapf(err, "offer %s", addr)
	}
	return &o, nil
}

// ByMaker returns all open offers of the maker.
func (b Bucket) ByMaker(db swap.ReadOnlyKVStore, maker swap.Address) ([]*Offer, error) {
	_, models, err := b.ByIndex(db, "maker", maker)
	if err != nil {
		return nil, err
	}
	offers := make([]*Offer, len(models))
	for i, m := range models {
		offers[i] = m.(*Offer)
	}
	return offers, nil
}

// destroy removes the offer. It is used only by settlement.
func (b Bucket) destroy(db swap.KVStore, addr swap.Address) error {
	return b.Delete(db, addr)
}
