package swapd

import (
	"testing"

	"github.com/iov-one/swap/crypto"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/x/offer"
	"github.com/iov-one/swap/x/sigs"
	"github.com/iov-one/swap/x/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxRoundTrip(t *testing.T) {
	key := crypto.GenPrivKeyEd25519()
	msg := &token.TransferMsg{
		Mint:        token.MintAddress("GOLD"),
		Source:      key.PublicKey().Address(),
		Destination: token.MintAddress("SILVER"),
		Amount:      5,
	}
	tx, err := NewTx(msg)
	require.NoError(t, err)

	unsigned, err := tx.GetSignBytes()
	require.NoError(t, err)

	sig, err := sigs.SignTx(key, tx, "test-chain", 0)
	require.NoError(t, err)
	tx.Signatures = append(tx.Signatures, sig)

	// signatures are not part of what is signed
	signBytes, err := tx.GetSignBytes()
	require.NoError(t, err)
	assert.Equal(t, unsigned, signBytes)
	assert.Len(t, tx.Signatures, 1)

	raw, err := tx.Marshal()
	require.NoError(t, err)
	decoded, err := TxDecoder(raw)
	require.NoError(t, err)

	loaded := decoded.(*Tx)
	require.Len(t, loaded.Signatures, 1)
	assert.Equal(t, sig.Pubkey, loaded.Signatures[0].Pubkey)
	assert.Equal(t, sig.Signature, loaded.Signatures[0].Signature)

	got, err := loaded.GetMsg()
	require.NoError(t, err)
	assert.Equal(t, msg, got)
}

func TestTxGetMsg(t *testing.T) {
	take := &offer.TakeOfferMsg{
		Taker: crypto.GenPrivKeyEd25519().PublicKey().Address(),
		Offer: token.MintAddress("GOLD"),
	}
	raw, err := take.Marshal()
	require.NoError(t, err)

	cases := map[string]struct {
		tx      Tx
		wantErr *errors.Error
	}{
		"known path": {
			tx: Tx{MsgPath: "offer/take", MsgBytes: raw},
		},
		"unknown path": {
			tx:      Tx{MsgPath: "offer/cancel", MsgBytes: raw},
			wantErr: errors.ErrInvalidMsg,
		},
		"no message": {
			tx:      Tx{},
			wantErr: errors.ErrInvalidMsg,
		},
		"garbage payload": {
			tx:      Tx{MsgPath: "offer/take", MsgBytes: []byte{0xff, 0xff}},
			wantErr: errors.ErrInvalidMsg,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			msg, err := tc.tx.GetMsg()
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "got %+v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, take, msg)
		})
	}
}

func TestMsgPaths(t *testing.T) {
	want := []string{
		"token/create_mint",
		"token/create_account",
		"token/mint_to",
		"token/transfer",
		"token/approve",
		"token/revoke",
		"offer/make",
		"offer/take",
	}
	assert.ElementsMatch(t, want, MsgPaths())
}
