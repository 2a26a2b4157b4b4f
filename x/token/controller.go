package token

import (
	"math"

	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/orm"
	"github.com/iov-one/swap/x"
)

// Controller is the token API other extensions use to inspect and move
// balances.
type Controller interface {
	// Mint returns the mint stored under given address.
	Mint(db swap.ReadOnlyKVStore, mint swap.Address) (*Mint, error)
	// Balance returns the amount of tokens an owner holds. An owner
	// without an account holds nothing.
	Balance(db swap.ReadOnlyKVStore, mint, owner swap.Address) (uint64, error)
	// Account returns the associated account of an owner.
	Account(db swap.ReadOnlyKVStore, mint, owner swap.Address) (*Account, error)
	// Transfer moves tokens between two owners. Authorization is left to
	// the caller.
	Transfer(db swap.KVStore, mint, src, dst swap.Address, amount uint64) error
	// Approve sets the delegate of the owner's account, replacing any
	// previous delegation.
	Approve(ctx swap.Context, db swap.KVStore, mint, owner, delegate swap.Address, amount uint64) error
	// Revoke clears the delegation of the owner's account.
	Revoke(ctx swap.Context, db swap.KVStore, mint, owner swap.Address) error
	// TransferDelegated moves tokens out of the owner's account on
	// behalf of the delegate authenticated in the context.
	TransferDelegated(ctx swap.Context, db swap.KVStore, mint, owner, dst swap.Address, amount uint64) error
	// MintTo issues new tokens. Authorization is left to the caller.
	MintTo(db swap.KVStore, mint, dst swap.Address, amount uint64) error
}

// BaseController is the default Controller implementation.
type BaseController struct {
	auth     x.Authenticator
	mints    orm.ModelBucket
	accounts orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller that authorizes owners and delegates
// with given authenticator.
func NewController(auth x.Authenticator) BaseController {
	return BaseController{
		auth:     auth,
		mints:    NewMintBucket(),
		accounts: NewAccountBucket(),
	}
}

func (c BaseController) Mint(db swap.ReadOnlyKVStore, mint swap.Address) (*Mint, error) {
	var m Mint
	if err := c.mints.One(db, mint, &m); err != nil {
		return nil, errors.Wrapf(err, "mint %s", mint)
	}
	return &m, nil
}

func (c BaseController) Balance(db swap.ReadOnlyKVStore, mint, owner swap.Address) (uint64, error) {
	acc, err := c.Account(db, mint, owner)
	switch {
	case err == nil:
		return acc.Amount, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, err
	}
}

func (c BaseController) Account(db swap.ReadOnlyKVStore, mint, owner swap.Address) (*Account, error) {
	var acc Account
	if err := c.accounts.One(db, AccountAddress(owner, mint), &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

// CreateAccount stores an empty associated account. It fails with
// ErrDuplicate if the account already exists.
func (c BaseController) CreateAccount(db swap.KVStore, mint, owner swap.Address) (*Account, error) {
	if _, err := c.Mint(db, mint); err != nil {
		return nil, err
	}
	key := AccountAddress(owner, mint)
	switch err := c.accounts.Has(db, key); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrDuplicate, "account %s", key)
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}
	acc := &Account{Owner: owner, Mint: mint}
	if err := c.accounts.Put(db, key, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// getOrCreate loads the account, creating an empty one in memory when it
// does not exist yet.
func (c BaseController) getOrCreate(db swap.KVStore, mint, owner swap.Address) (*Account, error) {
	acc, err := c.Account(db, mint, owner)
	switch {
	case err == nil:
		return acc, nil
	case errors.ErrNotFound.Is(err):
		if _, err := c.Mint(db, mint); err != nil {
			return nil, err
		}
		return &Account{Owner: owner, Mint: mint}, nil
	default:
		return nil, err
	}
}

func (c BaseController) save(db swap.KVStore, acc *Account) error {
	return c.accounts.Put(db, acc.Address(), acc)
}

func (c BaseController) Transfer(db swap.KVStore, mint, src, dst swap.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "zero transfer")
	}
	sender, err := c.Account(db, mint, src)
	if err != nil {
		return errors.Wrap(err, "source")
	}
	return c.move(db, sender, dst, amount)
}

// move subtracts amount from the loaded sender and credits the recipient.
func (c BaseController) move(db swap.KVStore, sender *Account, dst swap.Address, amount uint64) error {
	if sender.Amount < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "balance %d, need %d", sender.Amount, amount)
	}
	if sender.Owner.Equals(dst) {
		return c.save(db, sender)
	}
	recipient, err := c.getOrCreate(db, sender.Mint, dst)
	if err != nil {
		return errors.Wrap(err, "destination")
	}
	if recipient.Amount > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "destination balance")
	}
	sender.Amount -= amount
	recipient.Amount += amount

	if err := c.save(db, sender); err != nil {
		return err
	}
	return c.save(db, recipient)
}

func (c BaseController) Approve(ctx swap.Context, db swap.KVStore, mint, owner, delegate swap.Address, amount uint64) error {
	if err := x.RequireSigner(ctx, c.auth, owner, "account owner"); err != nil {
		return err
	}
	if err := delegate.Validate(); err != nil {
		return errors.Wrap(err, "delegate")
	}
	if amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "zero approval")
	}
	acc, err := c.Account(db, mint, owner)
	if err != nil {
		return err
	}
	if acc.Amount < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "balance %d, approve %d", acc.Amount, amount)
	}
	acc.Delegate = delegate
	acc.DelegatedAmount = amount
	return c.save(db, acc)
}

func (c BaseController) Revoke(ctx swap.Context, db swap.KVStore, mint, owner swap.Address) error {
	if err := x.RequireSigner(ctx, c.auth, owner, "account owner"); err != nil {
		return err
	}
	acc, err := c.Account(db, mint, owner)
	if err != nil {
		return err
	}
	acc.Delegate = nil
	acc.DelegatedAmount = 0
	return c.save(db, acc)
}

func (c BaseController) TransferDelegated(ctx swap.Context, db swap.KVStore, mint, owner, dst swap.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "zero transfer")
	}
	acc, err := c.Account(db, mint, owner)
	if err != nil {
		return errors.Wrap(err, "source")
	}
	if err := x.RequireSigner(ctx, c.auth, acc.Delegate, "delegate"); err != nil {
		return err
	}
	if acc.Amount < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "balance %d, need %d", acc.Amount, amount)
	}
	if acc.DelegatedAmount < amount {
		return errors.Wrapf(ErrInsufficientDelegation, "delegated %d, need %d", acc.DelegatedAmount, amount)
	}
	acc.DelegatedAmount -= amount
	if acc.DelegatedAmount == 0 {
		acc.Delegate = nil
	}
	return c.move(db, acc, dst, amount)
}

func (c BaseController) MintTo(db swap.KVStore, mint, dst swap.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "zero mint")
	}
	m, err := c.Mint(db, mint)
	if err != nil {
		return err
	}
	if m.Supply > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "supply")
	}
	acc, err := c.getOrCreate(db, mint, dst)
	if err != nil {
		return err
	}
	if acc.Amount > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "balance")
	}
	m.Supply += amount
	acc.Amount += amount
	if err := c.mints.Put(db, mint, m); err != nil {
		return err
	}
	return c.save(db, acc)
}
