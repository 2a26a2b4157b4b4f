package token

import (
	"regexp"

	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/orm"
)

const (
	mintBucketName    = "mints"
	accountBucketName = "accounts"

	// MaxDecimals is the highest precision a mint can declare.
	MaxDecimals = 18
	// MaxNameLength and MaxURILength limit the token metadata.
	MaxNameLength = 32
	MaxURILength  = 200
)

var isTicker = regexp.MustCompile(`^[A-Z][A-Z0-9]{2,7}$`).MatchString

// MintAddress returns the address identifying the mint of given ticker.
func MintAddress(ticker string) swap.Address {
	return swap.NewCondition("token", "mint", []byte(ticker)).Address()
}

// AccountAddress returns the associated account address of an owner for
// the given mint. The same pair always maps to the same account.
func AccountAddress(owner, mint swap.Address) swap.Address {
	seed := make([]byte, 0, len(owner)+len(mint))
	seed = append(seed, owner...)
	seed = append(seed, mint...)
	return swap.NewCondition("token", "account", seed).Address()
}

// Mint describes a single asset type.
type Mint struct {
	// Authority is the only address allowed to issue new tokens.
	Authority swap.Address `protobuf:"bytes,1,opt,name=authority,proto3,casttype=github.com/iov-one/swap.Address" json:"authority,omitempty"`
	Ticker    string       `protobuf:"bytes,2,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Decimals  uint64       `protobuf:"varint,3,opt,name=decimals,proto3" json:"decimals,omitempty"`
	// Supply is the total amount of tokens issued so far.
	Supply uint64 `protobuf:"varint,4,opt,name=supply,proto3" json:"supply,omitempty"`
	// Name and URI are the optional metadata of the token. The ticker is
	// its symbol.
	Name string `protobuf:"bytes,5,opt,name=name,proto3" json:"name,omitempty"`
	URI  string `protobuf:"bytes,6,opt,name=uri,proto3" json:"uri,omitempty"`
}

var _ orm.Model = (*Mint)(nil)

// Validate ensures the mint is well formed.
func (m *Mint) Validate() error {
	if err := m.Authority.Validate(); err != nil {
		return errors.Wrap(err, "authority")
	}
	if !isTicker(m.Ticker) {
		return errors.Wrapf(errors.ErrInvalidInput, "invalid ticker %q", m.Ticker)
	}
	if m.Decimals > MaxDecimals {
		return errors.Wrapf(errors.ErrInvalidInput, "too many decimals: %d", m.Decimals)
	}
	return validateMetadata(m.Name, m.URI)
}

func validateMetadata(name, uri string) error {
	if len(name) > MaxNameLength {
		return errors.Wrapf(errors.ErrInvalidInput, "name longer than %d", MaxNameLength)
	}
	if len(uri) > MaxURILength {
		return errors.Wrapf(errors.ErrInvalidInput, "uri longer than %d", MaxURILength)
	}
	return nil
}

// Address returns the identity of this mint.
func (m *Mint) Address() swap.Address {
	return MintAddress(m.Ticker)
}

// Account holds the balance of a single owner for a single mint, together
// with the optional delegation.
type Account struct {
	Owner  swap.Address `protobuf:"bytes,1,opt,name=owner,proto3,casttype=github.com/iov-one/swap.Address" json:"owner,omitempty"`
	Mint   swap.Address `protobuf:"bytes,2,opt,name=mint,proto3,casttype=github.com/iov-one/swap.Address" json:"mint,omitempty"`
	Amount uint64       `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	// Delegate is allowed to move up to DelegatedAmount tokens out of
	// this account.
	Delegate        swap.Address `protobuf:"bytes,4,opt,name=delegate,proto3,casttype=github.com/iov-one/swap.Address" json:"delegate,omitempty"`
	DelegatedAmount uint64       `protobuf:"varint,5,opt,name=delegated_amount,json=delegatedAmount,proto3" json:"delegated_amount,omitempty"`
}

var _ orm.Model = (*Account)(nil)

// Validate ensures the account is well formed.
func (a *Account) Validate() error {
	if err := a.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := a.Mint.Validate(); err != nil {
		return errors.Wrap(err, "mint")
	}
	if len(a.Delegate) == 0 {
		if a.DelegatedAmount != 0 {
			return errors.Wrap(errors.ErrInvalidState, "delegated amount without delegate")
		}
		return nil
	}
	if err := a.Delegate.Validate(); err != nil {
		return errors.Wrap(err, "delegate")
	}
	return nil
}

// Address returns the associated account address.
func (a *Account) Address() swap.Address {
	return AccountAddress(a.Owner, a.Mint)
}

// NewMintBucket returns a bucket for storing mints keyed by their address.
func NewMintBucket() orm.ModelBucket {
	return orm.NewModelBucket(mintBucketName, &Mint{})
}

// NewAccountBucket returns a bucket for storing accounts keyed by their
// associated address. Accounts are indexed by owner.
func NewAccountBucket() orm.ModelBucket {
	return orm.NewModelBucket(accountBucketName, &Account{},
		orm.WithIndex("owner", accountOwner, false),
	)
}

func accountOwner(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	a, ok := obj.Value().(*Account)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidModel, "%T is not an account", obj.Value())
	}
	return a.Owner, nil
}
