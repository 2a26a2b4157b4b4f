package token_test

import (
	"context"
	"testing"

	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/app"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/store"
	"github.com/iov-one/swap/swaptest"
	"github.com/iov-one/swap/swaptest/assert"
	"github.com/iov-one/swap/x"
	"github.com/iov-one/swap/x/token"
)

func TestTokenHandlers(t *testing.T) {
	authority := swaptest.NewCondition()
	alice := swaptest.NewCondition()
	bob := swaptest.NewCondition()

	mint := token.MintAddress("GOLD")

	authenticator := &swaptest.CtxAuth{Key: "auth"}
	ctrl := token.NewController(x.ChainAuth(authenticator))
	r := app.NewRouter()
	token.RegisterRoutes(r, x.ChainAuth(authenticator), ctrl)

	// setup creates the GOLD mint and gives alice 100 tokens.
	setup := func(t *testing.T, db swap.KVStore) {
		ctx := authenticator.SetConditions(context.Background(), authority)
		_, err := r.Deliver(ctx, db, &swaptest.Tx{Msg: &token.CreateMintMsg{
			Authority: authority.Address(),
			Ticker:    "GOLD",
			Decimals:  2,
		}})
		assert.Nil(t, err)
		_, err = r.Deliver(ctx, db, &swaptest.Tx{Msg: &token.MintToMsg{
			Mint:        mint,
			Destination: alice.Address(),
			Amount:      100,
		}})
		assert.Nil(t, err)
	}

	cases := map[string]struct {
		signers        []swap.Condition
		msg            swap.Msg
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		check          func(t *testing.T, db swap.KVStore)
	}{
		"duplicated mint": {
			signers:        []swap.Condition{authority},
			msg:            &token.CreateMintMsg{Authority: authority.Address(), Ticker: "GOLD"},
			wantCheckErr:   errors.ErrDuplicate,
			wantDeliverErr: errors.ErrDuplicate,
		},
		"mint with metadata": {
			signers: []swap.Condition{authority},
			msg: &token.CreateMintMsg{
				Authority: authority.Address(),
				Ticker:    "SILVER",
				Name:      "Silver",
				URI:       "https://example.com/silver.json",
			},
			check: func(t *testing.T, db swap.KVStore) {
				m, err := ctrl.Mint(db, token.MintAddress("SILVER"))
				assert.Nil(t, err)
				assert.Equal(t, "Silver", m.Name)
				assert.Equal(t, "https://example.com/silver.json", m.URI)
			},
		},
		"mint without authority signature": {
			signers:        []swap.Condition{alice},
			msg:            &token.CreateMintMsg{Authority: authority.Address(), Ticker: "SILVER"},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"invalid ticker": {
			signers:        []swap.Condition{authority},
			msg:            &token.CreateMintMsg{Authority: authority.Address(), Ticker: "x"},
			wantCheckErr:   errors.ErrInvalidInput,
			wantDeliverErr: errors.ErrInvalidInput,
		},
		"mint to by a stranger": {
			signers:        []swap.Condition{alice},
			msg:            &token.MintToMsg{Mint: mint, Destination: alice.Address(), Amount: 1},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"mint to an unknown mint": {
			signers:        []swap.Condition{authority},
			msg:            &token.MintToMsg{Mint: token.MintAddress("NOPE"), Destination: alice.Address(), Amount: 1},
			wantCheckErr:   errors.ErrNotFound,
			wantDeliverErr: errors.ErrNotFound,
		},
		"transfer": {
			signers: []swap.Condition{alice},
			msg: &token.TransferMsg{
				Mint:        mint,
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      40,
			},
			check: func(t *testing.T, db swap.KVStore) {
				assertBalance(t, db, ctrl, mint, alice.Address(), 60)
				assertBalance(t, db, ctrl, mint, bob.Address(), 40)
			},
		},
		"transfer signed by the recipient": {
			signers: []swap.Condition{bob},
			msg: &token.TransferMsg{
				Mint:        mint,
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      40,
			},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"transfer more than owned": {
			signers: []swap.Condition{alice},
			msg: &token.TransferMsg{
				Mint:        mint,
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      101,
			},
			wantDeliverErr: errors.ErrInsufficientAmount,
		},
		"create account for someone else": {
			signers: []swap.Condition{alice},
			msg:     &token.CreateAccountMsg{Owner: bob.Address(), Mint: mint},
			check: func(t *testing.T, db swap.KVStore) {
				acc, err := ctrl.Account(db, mint, bob.Address())
				assert.Nil(t, err)
				assert.Equal(t, uint64(0), acc.Amount)
			},
		},
		"create an existing account": {
			signers:        []swap.Condition{alice},
			msg:            &token.CreateAccountMsg{Owner: alice.Address(), Mint: mint},
			wantDeliverErr: errors.ErrDuplicate,
		},
		"approve": {
			signers: []swap.Condition{alice},
			msg: &token.ApproveMsg{
				Mint:     mint,
				Owner:    alice.Address(),
				Delegate: bob.Address(),
				Amount:   25,
			},
			check: func(t *testing.T, db swap.KVStore) {
				acc, err := ctrl.Account(db, mint, alice.Address())
				assert.Nil(t, err)
				assert.Equal(t, bob.Address(), acc.Delegate)
				assert.Equal(t, uint64(25), acc.DelegatedAmount)
			},
		},
		"approve by the delegate": {
			signers: []swap.Condition{bob},
			msg: &token.ApproveMsg{
				Mint:     mint,
				Owner:    alice.Address(),
				Delegate: bob.Address(),
				Amount:   25,
			},
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"approve with a zero amount": {
			signers: []swap.Condition{alice},
			msg: &token.ApproveMsg{
				Mint:     mint,
				Owner:    alice.Address(),
				Delegate: bob.Address(),
			},
			wantCheckErr:   errors.ErrInvalidAmount,
			wantDeliverErr: errors.ErrInvalidAmount,
		},
		"revoke": {
			signers: []swap.Condition{alice},
			msg:     &token.RevokeMsg{Mint: mint, Owner: alice.Address()},
		},
		"revoke by a stranger": {
			signers:        []swap.Condition{bob},
			msg:            &token.RevokeMsg{Mint: mint, Owner: alice.Address()},
			wantDeliverErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			setup(t, db)

			ctx := authenticator.SetConditions(context.Background(), tc.signers...)
			tx := &swaptest.Tx{Msg: tc.msg}

			cache := db.CacheWrap()
			_, err := r.Check(ctx, cache, tx)
			assert.IsErr(t, tc.wantCheckErr, err)
			cache.Discard()

			_, err = r.Deliver(ctx, db, tx)
			assert.IsErr(t, tc.wantDeliverErr, err)

			if tc.check != nil {
				tc.check(t, db)
			}
		})
	}
}

func assertBalance(t *testing.T, db swap.ReadOnlyKVStore, ctrl token.Controller, mint, owner swap.Address, want uint64) {
	t.Helper()
	got, err := ctrl.Balance(db, mint, owner)
	assert.Nil(t, err)
	assert.Equal(t, want, got)
}
