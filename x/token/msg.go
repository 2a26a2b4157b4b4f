package token

import (
	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
)

const (
	pathCreateMint    = "token/create_mint"
	pathCreateAccount = "token/create_account"
	pathMintTo        = "token/mint_to"
	pathTransfer      = "token/transfer"
	pathApprove       = "token/approve"
	pathRevoke        = "token/revoke"
)

var (
	_ swap.Msg = (*CreateMintMsg)(nil)
	_ swap.Msg = (*CreateAccountMsg)(nil)
	_ swap.Msg = (*MintToMsg)(nil)
	_ swap.Msg = (*TransferMsg)(nil)
	_ swap.Msg = (*ApproveMsg)(nil)
	_ swap.Msg = (*RevokeMsg)(nil)
)

// CreateMintMsg registers a new asset. The authority must sign it.
type CreateMintMsg struct {
	Authority swap.Address `protobuf:"bytes,1,opt,name=authority,proto3,casttype=github.com/iov-one/swap.Address" json:"authority,omitempty"`
	Ticker    string       `protobuf:"bytes,2,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Decimals  uint64       `protobuf:"varint,3,opt,name=decimals,proto3" json:"decimals,omitempty"`
	Name      string       `protobuf:"bytes,4,opt,name=name,proto3" json:"name,omitempty"`
	URI       string       `protobuf:"bytes,5,opt,name=uri,proto3" json:"uri,omitempty"`
}

func (CreateMintMsg) Path() string {
	return pathCreateMint
}

func (m *CreateMintMsg) Validate() error {
	mint := Mint{
		Authority: m.Authority,
		Ticker:    m.Ticker,
		Decimals:  m.Decimals,
		Name:      m.Name,
		URI:       m.URI,
	}
	return mint.Validate()
}

// CreateAccountMsg creates the empty associated account of an owner.
type CreateAccountMsg struct {
	Owner swap.Address `protobuf:"bytes,1,opt,name=owner,proto3,casttype=github.com/iov-one/swap.Address" json:"owner,omitempty"`
	Mint  swap.Address `protobuf:"bytes,2,opt,name=mint,proto3,casttype=github.com/iov-one/swap.Address" json:"mint,omitempty"`
}

func (CreateAccountMsg) Path() string {
	return pathCreateAccount
}

func (m *CreateAccountMsg) Validate() error {
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return errors.Wrap(m.Mint.Validate(), "mint")
}

// MintToMsg issues new tokens. The mint authority must sign it.
type MintToMsg struct {
	Mint        swap.Address `protobuf:"bytes,1,opt,name=mint,proto3,casttype=github.com/iov-one/swap.Address" json:"mint,omitempty"`
	Destination swap.Address `protobuf:"bytes,2,opt,name=destination,proto3,casttype=github.com/iov-one/swap.Address" json:"destination,omitempty"`
	Amount      uint64       `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (MintToMsg) Path() string {
	return pathMintTo
}

func (m *MintToMsg) Validate() error {
	if err := m.Mint.Validate(); err != nil {
		return errors.Wrap(err, "mint")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "zero amount")
	}
	return nil
}

// TransferMsg moves tokens between owners. The source must sign it.
type TransferMsg struct {
	Mint        swap.Address `protobuf:"bytes,1,opt,name=mint,proto3,casttype=github.com/iov-one/swap.Address" json:"mint,omitempty"`
	Source      swap.Address `protobuf:"bytes,2,opt,name=source,proto3,casttype=github.com/iov-one/swap.Address" json:"source,omitempty"`
	Destination swap.Address `protobuf:"bytes,3,opt,name=destination,proto3,casttype=github.com/iov-one/swap.Address" json:"destination,omitempty"`
	Amount      uint64       `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (TransferMsg) Path() string {
	return pathTransfer
}

func (m *TransferMsg) Validate() error {
	if err := m.Mint.Validate(); err != nil {
		return errors.Wrap(err, "mint")
	}
	if err := m.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "zero amount")
	}
	return nil
}

// ApproveMsg grants a delegate the right to move up to Amount tokens from
// the owner's account. The owner must sign it.
type ApproveMsg struct {
	Mint     swap.Address `protobuf:"bytes,1,opt,name=mint,proto3,casttype=github.com/iov-one/swap.Address" json:"mint,omitempty"`
	Owner    swap.Address `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/swap.Address" json:"owner,omitempty"`
	Delegate swap.Address `protobuf:"bytes,3,opt,name=delegate,proto3,casttype=github.com/iov-one/swap.Address" json:"delegate,omitempty"`
	Amount   uint64       `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (ApproveMsg) Path() string {
	return pathApprove
}

func (m *ApproveMsg) Validate() error {
	if err := m.Mint.Validate(); err != nil {
		return errors.Wrap(err, "mint")
	}
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := m.Delegate.Validate(); err != nil {
		return errors.Wrap(err, "delegate")
	}
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "zero amount")
	}
	return nil
}

// RevokeMsg clears the delegation of the owner's account. The owner must
// sign it.
type RevokeMsg struct {
	Mint  swap.Address `protobuf:"bytes,1,opt,name=mint,proto3,casttype=github.com/iov-one/swap.Address" json:"mint,omitempty"`
	Owner swap.Address `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/swap.Address" json:"owner,omitempty"`
}

func (RevokeMsg) Path() string {
	return pathRevoke
}

func (m *RevokeMsg) Validate() error {
	if err := m.Mint.Validate(); err != nil {
		return errors.Wrap(err, "mint")
	}
	return errors.Wrap(m.Owner.Validate(), "owner")
}

