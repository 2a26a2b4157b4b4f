package token

import (
	"strings"
	"testing"

	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/swaptest"
	"github.com/iov-one/swap/swaptest/assert"
)

func TestMsgValidate(t *testing.T) {
	alice := swaptest.NewCondition().Address()
	bob := swaptest.NewCondition().Address()
	mint := MintAddress("GOLD")

	cases := map[string]struct {
		msg     swap.Msg
		wantErr *errors.Error
	}{
		"valid create mint": {
			msg: &CreateMintMsg{Authority: alice, Ticker: "GOLD", Decimals: 6},
		},
		"create mint with too many decimals": {
			msg:     &CreateMintMsg{Authority: alice, Ticker: "GOLD", Decimals: 19},
			wantErr: errors.ErrInvalidInput,
		},
		"create mint with metadata": {
			msg: &CreateMintMsg{Authority: alice, Ticker: "GOLD", Name: "Gold", URI: "ipfs://gold"},
		},
		"create mint with a long name": {
			msg:     &CreateMintMsg{Authority: alice, Ticker: "GOLD", Name: strings.Repeat("x", 33)},
			wantErr: errors.ErrInvalidInput,
		},
		"create mint without authority": {
			msg:     &CreateMintMsg{Ticker: "GOLD"},
			wantErr: errors.ErrEmpty,
		},
		"valid create account": {
			msg: &CreateAccountMsg{Owner: alice, Mint: mint},
		},
		"create account with a short owner": {
			msg:     &CreateAccountMsg{Owner: alice[:5], Mint: mint},
			wantErr: errors.ErrInvalidInput,
		},
		"valid mint to": {
			msg: &MintToMsg{Mint: mint, Destination: alice, Amount: 1},
		},
		"mint to zero": {
			msg:     &MintToMsg{Mint: mint, Destination: alice},
			wantErr: errors.ErrInvalidAmount,
		},
		"valid transfer": {
			msg: &TransferMsg{Mint: mint, Source: alice, Destination: bob, Amount: 3},
		},
		"transfer without destination": {
			msg:     &TransferMsg{Mint: mint, Source: alice, Amount: 3},
			wantErr: errors.ErrEmpty,
		},
		"valid approve": {
			msg: &ApproveMsg{Mint: mint, Owner: alice, Delegate: bob, Amount: 3},
		},
		"approve without delegate": {
			msg:     &ApproveMsg{Mint: mint, Owner: alice, Amount: 3},
			wantErr: errors.ErrEmpty,
		},
		"valid revoke": {
			msg: &RevokeMsg{Mint: mint, Owner: alice},
		},
		"revoke without mint": {
			msg:     &RevokeMsg{Owner: alice},
			wantErr: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.IsErr(t, tc.wantErr, tc.msg.Validate())
		})
	}
}

func TestMsgSerialization(t *testing.T) {
	alice := swaptest.NewCondition().Address()
	bob := swaptest.NewCondition().Address()

	in := &ApproveMsg{Mint: MintAddress("GOLD"), Owner: alice, Delegate: bob, Amount: 77}
	raw, err := in.Marshal()
	assert.Nil(t, err)
	var out ApproveMsg
	assert.Nil(t, out.Unmarshal(raw))
	assert.Equal(t, in, &out)
}
