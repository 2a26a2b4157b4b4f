package main

import (
	"bytes"
	"os"
	"testing"

	swapd "github.com/iov-one/swap/cmd/swapd/app"
	"github.com/iov-one/swap/swaptest"
	"github.com/iov-one/swap/swaptest/assert"
	"github.com/iov-one/swap/x/sigs"
	"github.com/iov-one/swap/x/token"
)

func TestCmdSignTransactionHappyPath(t *testing.T) {
	key := swaptest.NewKey()
	keyPath := mustCreateFile(t, bytes.NewReader(key.Ed25519))
	defer os.Remove(keyPath)

	tx, err := swapd.NewTx(&token.RevokeMsg{
		Mint:  token.MintAddress("GOLD"),
		Owner: key.PublicKey().Address(),
	})
	assert.Nil(t, err)

	var input bytes.Buffer
	if _, err := writeTx(&input, tx); err != nil {
		t.Fatalf("cannot marshal transaction: %s", err)
	}

	var output bytes.Buffer
	args := []string{"-key", keyPath, "-chain", "test-chain", "-seq", "3"}
	if err := cmdSignTransaction(&input, &output, args); err != nil {
		t.Fatalf("transaction signing failed: %s", err)
	}

	signed, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot read created transaction: %s", err)
	}
	if n := len(signed.Signatures); n != 1 {
		t.Fatalf("want one signature, got %d", n)
	}
	sig := signed.Signatures[0]
	assert.Equal(t, int64(3), sig.Sequence)
	assert.Equal(t, key.PublicKey().Address(), sig.Pubkey.Address())

	raw, err := signed.GetSignBytes()
	assert.Nil(t, err)
	toSign, err := sigs.BuildSignBytes(raw, "test-chain", 3)
	assert.Nil(t, err)
	if !sig.Pubkey.Verify(toSign, sig.Signature) {
		t.Fatal("signature does not verify")
	}
	if sig.Pubkey.Verify(mustSignBytes(t, signed, "other-chain", 3), sig.Signature) {
		t.Fatal("signature must be bound to the chain")
	}
}

func TestCmdSignTransactionRequiresChain(t *testing.T) {
	keyPath := mustCreateFile(t, bytes.NewReader(swaptest.NewKey().Ed25519))
	defer os.Remove(keyPath)

	var output bytes.Buffer
	args := []string{"-key", keyPath, "-chain", ""}
	if err := cmdSignTransaction(&bytes.Buffer{}, &output, args); err == nil {
		t.Fatal("want missing chain error")
	}
}

func mustSignBytes(t testing.TB, tx *swapd.Tx, chainID string, seq int64) []byte {
	t.Helper()
	raw, err := tx.GetSignBytes()
	if err != nil {
		t.Fatalf("cannot get sign bytes: %s", err)
	}
	b, err := sigs.BuildSignBytes(raw, chainID, seq)
	if err != nil {
		t.Fatalf("cannot build sign bytes: %s", err)
	}
	return b
}
