package offer

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"

	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/orm"
)

const (
	// Extension and type of the conditions offers derive their address
	// from.
	ExtensionName = "offer"
	derivedType   = "pda"

	seedPrefix = "offer"

	discriminatorSize = 8
	// OfferSize is the length of a serialized offer.
	OfferSize = discriminatorSize + 8 + 3*swap.AddressLength + 8 + 8 + 1
)

// Discriminator tags every serialized offer.
var Discriminator = func() []byte {
	h := sha256.Sum256([]byte("account:Offer"))
	return h[:discriminatorSize]
}()

// Offer is a maker's open commitment to trade AmountA of MintA tokens for
// AmountB of MintB tokens. An offer exists only while it is open.
type Offer struct {
	ID      uint64
	Maker   swap.Address
	MintA   swap.Address
	MintB   swap.Address
	AmountA uint64
	AmountB uint64
	// Bump is the canonical bump of the derived offer address.
	Bump uint8
}

var _ orm.Model = (*Offer)(nil)

// Validate ensures the offer is sane.
func (o *Offer) Validate() error {
	if err := o.Maker.Validate(); err != nil {
		return errors.Wrap(err, "maker")
	}
	if err := o.MintA.Validate(); err != nil {
		return errors.Wrap(err, "mint a")
	}
	if err := o.MintB.Validate(); err != nil {
		return errors.Wrap(err, "mint b")
	}
	if o.MintA.Equals(o.MintB) {
		return errors.Wrap(errors.ErrInvalidInput, "mint a and mint b must differ")
	}
	if o.AmountA == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "amount a must be positive")
	}
	if o.AmountB == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "amount b must be positive")
	}
	return nil
}

// Seed returns the derivation seed of the offer address.
func Seed(maker swap.Address, id uint64) []byte {
	seed := make([]byte, 0, len(seedPrefix)+len(maker)+8)
	seed = append(seed, seedPrefix...)
	seed = append(seed, maker...)
	var raw [8]byte
	binary.LittleEndian.PutUint64(raw[:], id)
	return append(seed, raw[:]...)
}

// FindAddress returns the address an offer of the maker with given id is
// stored at, together with its canonical bump.
func FindAddress(maker swap.Address, id uint64) (swap.Address, uint8, error) {
	return swap.FindDerivedAddress(ExtensionName, derivedType, Seed(maker, id))
}

// Address recomputes the offer address using the stored bump.
func (o *Offer) Address() (swap.Address, error) {
	return swap.DeriveAddress(ExtensionName, derivedType, Seed(o.Maker, o.ID), o.Bump)
}

// Condition returns the condition that acts for the offer address.
func (o *Offer) Condition() swap.Condition {
	return swap.DerivedCondition(ExtensionName, derivedType, Seed(o.Maker, o.ID), o.Bump)
}

// Marshal serializes the offer into its fixed size layout. Integers are
// little endian.
func (o *Offer) Marshal() ([]byte, error) {
	for _, a := range []swap.Address{o.Maker, o.MintA, o.MintB} {
		if len(a) != swap.AddressLength {
			return nil, errors.Wrapf(errors.ErrInvalidModel, "address length %d", len(a))
		}
	}
	raw := make([]byte, 0, OfferSize)
	raw = append(raw, Discriminator...)
	raw = appendUint64(raw, o.ID)
	raw = append(raw, o.Maker...)
	raw = append(raw, o.MintA...)
	raw = append(raw, o.MintB...)
	raw = appendUint64(raw, o.AmountA)
	raw = appendUint64(raw, o.AmountB)
	raw = append(raw, o.Bump)
	return raw, nil
}

// Unmarshal loads an offer from its fixed size layout.
func (o *Offer) Unmarshal(raw []byte) error {
	if len(raw) != OfferSize {
		return errors.Wrapf(errors.ErrInvalidModel, "offer size %d", len(raw))
	}
	if !bytes.Equal(raw[:discriminatorSize], Discriminator) {
		return errors.Wrap(errors.ErrInvalidModel, "not an offer")
	}
	raw = raw[discriminatorSize:]

	o.ID, raw = binary.LittleEndian.Uint64(raw), raw[8:]
	o.Maker, raw = cloneAddress(raw), raw[swap.AddressLength:]
	o.MintA, raw = cloneAddress(raw), raw[swap.AddressLength:]
	o.MintB, raw = cloneAddress(raw), raw[swap.AddressLength:]
	o.AmountA, raw = binary.LittleEndian.Uint64(raw), raw[8:]
	o.AmountB, raw = binary.LittleEndian.Uint64(raw), raw[8:]
	o.Bump = raw[0]
	return nil
}

func appendUint64(b []byte, v uint64) []byte {
	var raw [8]byte
	binary.LittleEndian.PutUint64(raw[:], v)
	return append(b, raw[:]...)
}

func cloneAddress(raw []byte) swap.Address {
	return swap.Address(raw[:swap.AddressLength]).Clone()
}
