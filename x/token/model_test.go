package token

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/gogo/protobuf/proto"

	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/swaptest"
	"github.com/iov-one/swap/swaptest/assert"
)

func TestAccountWireFormat(t *testing.T) {
	a := &Account{
		Owner:           swap.Address("o"),
		Mint:            swap.Address("m"),
		Amount:          300,
		DelegatedAmount: 7,
	}
	raw, err := a.Marshal()
	assert.Nil(t, err)
	assert.Equal(t, "0a016f12016d18ac022807", hex.EncodeToString(raw))

	var loaded Account
	assert.Nil(t, loaded.Unmarshal(raw))
	assert.Equal(t, a, &loaded)
}

func TestMintDecimalsOutOfRange(t *testing.T) {
	authority := swaptest.NewCondition().Address()

	// decimals = 2^32 + 5 must not wrap into a valid value
	var raw []byte
	raw = append(raw, 0x0a, byte(len(authority)))
	raw = append(raw, authority...)
	raw = append(raw, 0x12, 4)
	raw = append(raw, "GOLD"...)
	raw = append(raw, 0x18)
	raw = append(raw, proto.EncodeVarint(1<<32+5)...)

	var m Mint
	assert.Nil(t, m.Unmarshal(raw))
	assert.Equal(t, uint64(1<<32+5), m.Decimals)
	assert.IsErr(t, errors.ErrInvalidInput, m.Validate())
}

func TestMintValidate(t *testing.T) {
	authority := swaptest.NewCondition().Address()

	cases := map[string]struct {
		mint    Mint
		wantErr *errors.Error
	}{
		"minimal": {
			mint: Mint{Authority: authority, Ticker: "GOLD"},
		},
		"with metadata": {
			mint: Mint{
				Authority: authority,
				Ticker:    "GOLD",
				Decimals:  6,
				Name:      "Gold",
				URI:       "https://example.com/gold.json",
			},
		},
		"lower case ticker": {
			mint:    Mint{Authority: authority, Ticker: "gold"},
			wantErr: errors.ErrInvalidInput,
		},
		"name too long": {
			mint:    Mint{Authority: authority, Ticker: "GOLD", Name: strings.Repeat("g", MaxNameLength+1)},
			wantErr: errors.ErrInvalidInput,
		},
		"uri too long": {
			mint:    Mint{Authority: authority, Ticker: "GOLD", URI: strings.Repeat("u", MaxURILength+1)},
			wantErr: errors.ErrInvalidInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.IsErr(t, tc.wantErr, tc.mint.Validate())
		})
	}
}

func TestMintSerialization(t *testing.T) {
	in := &Mint{
		Authority: swaptest.NewCondition().Address(),
		Ticker:    "GOLD",
		Decimals:  6,
		Supply:    1000,
		Name:      "Gold",
		URI:       "https://example.com/gold.json",
	}
	raw, err := in.Marshal()
	assert.Nil(t, err)
	var out Mint
	assert.Nil(t, out.Unmarshal(raw))
	assert.Equal(t, in, &out)
}
