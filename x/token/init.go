package token

import (
	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
)

const optKey = "token"

// GenesisMint is used to parse the json from genesis file.
type GenesisMint struct {
	Authority swap.Address `json:"authority"`
	Ticker    string       `json:"ticker"`
	Decimals  uint64       `json:"decimals"`
	Name      string       `json:"name"`
	URI       string       `json:"uri"`
}

// GenesisBalance is an initial balance issued at genesis.
type GenesisBalance struct {
	Owner  swap.Address `json:"owner"`
	Ticker string       `json:"ticker"`
	Amount uint64       `json:"amount"`
}

// Genesis is the content of the "token" genesis key.
type Genesis struct {
	Mints    []GenesisMint    `json:"mints"`
	Balances []GenesisBalance `json:"balances"`
}

// Initializer fulfils the Initializer interface to load mints and
// balances from the genesis file.
type Initializer struct{}

var _ swap.Initializer = Initializer{}

// FromGenesis will parse initial mints and balances from genesis and save
// them to the database. Balances are counted into the mint supply.
func (Initializer) FromGenesis(opts swap.Options, db swap.KVStore) error {
	var gen Genesis
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return err
	}

	mints := NewMintBucket()
	for i, m := range gen.Mints {
		mint := &Mint{
			Authority: m.Authority,
			Ticker:    m.Ticker,
			Decimals:  m.Decimals,
			Name:      m.Name,
			URI:       m.URI,
		}
		switch err := mints.Has(db, mint.Address()); {
		case err == nil:
			return errors.Wrapf(errors.ErrDuplicate, "mint %d: %q", i, m.Ticker)
		case !errors.ErrNotFound.Is(err):
			return err
		}
		if err := mints.Put(db, mint.Address(), mint); err != nil {
			return errors.Wrapf(err, "mint %d", i)
		}
	}

	ctrl := NewController(nil)
	for i, b := range gen.Balances {
		if err := b.Owner.Validate(); err != nil {
			return errors.Wrapf(err, "balance %d: owner", i)
		}
		if err := ctrl.MintTo(db, MintAddress(b.Ticker), b.Owner, b.Amount); err != nil {
			return errors.Wrapf(err, "balance %d", i)
		}
	}
	return nil
}
