package offer

import (
	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
)

var (
	_ swap.Msg = (*MakeOfferMsg)(nil)
	_ swap.Msg = (*TakeOfferMsg)(nil)
)

// MakeOfferMsg opens an offer to trade AmountA of MintA tokens for
// AmountB of MintB tokens. The maker must sign it.
type MakeOfferMsg struct {
	Maker swap.Address `protobuf:"bytes,1,opt,name=maker,proto3,casttype=github.com/iov-one/swap.Address" json:"maker,omitempty"`
	// ID is chosen by the maker and unique among its open offers.
	ID      uint64       `protobuf:"varint,2,opt,name=id,proto3" json:"id,omitempty"`
	MintA   swap.Address `protobuf:"bytes,3,opt,name=mint_a,json=mintA,proto3,casttype=github.com/iov-one/swap.Address" json:"mint_a,omitempty"`
	MintB   swap.Address `protobuf:"bytes,4,opt,name=mint_b,json=mintB,proto3,casttype=github.com/iov-one/swap.Address" json:"mint_b,omitempty"`
	AmountA uint64       `protobuf:"varint,5,opt,name=amount_a,json=amountA,proto3" json:"amount_a,omitempty"`
	AmountB uint64       `protobuf:"varint,6,opt,name=amount_b,json=amountB,proto3" json:"amount_b,omitempty"`
}

// Path returns the routing path for this message.
func (MakeOfferMsg) Path() string {
	return "offer/make"
}

// Validate makes sure that this is sensible.
func (m *MakeOfferMsg) Validate() error {
	o := Offer{
		ID:      m.ID,
		Maker:   m.Maker,
		MintA:   m.MintA,
		MintB:   m.MintB,
		AmountA: m.AmountA,
		AmountB: m.AmountB,
	}
	return o.Validate()
}

// TakeOfferMsg settles the offer stored at the given address. The taker
// must sign it.
type TakeOfferMsg struct {
	Taker swap.Address `protobuf:"bytes,1,opt,name=taker,proto3,casttype=github.com/iov-one/swap.Address" json:"taker,omitempty"`
	Offer swap.Address `protobuf:"bytes,2,opt,name=offer,proto3,casttype=github.com/iov-one/swap.Address" json:"offer,omitempty"`
}

// Path returns the routing path for this message.
func (TakeOfferMsg) Path() string {
	return "offer/take"
}

// Validate makes sure that this is sensible.
func (m *TakeOfferMsg) Validate() error {
	if err := m.Taker.Validate(); err != nil {
		return errors.Wrap(err, "taker")
	}
	return errors.Wrap(m.Offer.Validate(), "offer")
}

