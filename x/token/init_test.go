package token

import (
	"encoding/json"
	"fmt"
	"testing"

	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/store"
	"github.com/iov-one/swap/swaptest"
	"github.com/iov-one/swap/swaptest/assert"
)

func TestGenesis(t *testing.T) {
	authority := swaptest.NewCondition().Address()
	alice := swaptest.NewCondition().Address()

	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
		check   func(t *testing.T, db swap.KVStore)
	}{
		"nothing to load": {
			genesis: `{}`,
		},
		"mints and balances": {
			genesis: fmt.Sprintf(`{"token": {
				"mints": [
					{"authority": "%s", "ticker": "GOLD", "decimals": 2, "name": "Gold", "uri": "https://example.com/gold.json"},
					{"authority": "%s", "ticker": "SILVER"}
				],
				"balances": [
					{"owner": "%s", "ticker": "GOLD", "amount": 500},
					{"owner": "%s", "ticker": "GOLD", "amount": 20}
				]
			}}`, authority, authority, alice, alice),
			check: func(t *testing.T, db swap.KVStore) {
				ctrl := NewController(nil)
				got, err := ctrl.Balance(db, MintAddress("GOLD"), alice)
				assert.Nil(t, err)
				assert.Equal(t, uint64(520), got)

				m, err := ctrl.Mint(db, MintAddress("GOLD"))
				assert.Nil(t, err)
				assert.Equal(t, uint64(520), m.Supply)
				assert.Equal(t, uint64(2), m.Decimals)
				assert.Equal(t, "Gold", m.Name)
				assert.Equal(t, "https://example.com/gold.json", m.URI)

				_, err = ctrl.Mint(db, MintAddress("SILVER"))
				assert.Nil(t, err)
			},
		},
		"duplicated mint": {
			genesis: fmt.Sprintf(`{"token": {"mints": [
				{"authority": "%s", "ticker": "GOLD"},
				{"authority": "%s", "ticker": "GOLD"}
			]}}`, authority, authority),
			wantErr: errors.ErrDuplicate,
		},
		"balance of an unknown mint": {
			genesis: fmt.Sprintf(`{"token": {"balances": [
				{"owner": "%s", "ticker": "GOLD", "amount": 1}
			]}}`, alice),
			wantErr: errors.ErrNotFound,
		},
		"malformed": {
			genesis: `{"token": {"mints": 7}}`,
			wantErr: errors.ErrInvalidInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts swap.Options
			assert.Nil(t, json.Unmarshal([]byte(tc.genesis), &opts))

			db := store.MemStore()
			err := Initializer{}.FromGenesis(opts, db)
			assert.IsErr(t, tc.wantErr, err)
			if tc.check != nil {
				tc.check(t, db)
			}
		})
	}
}
