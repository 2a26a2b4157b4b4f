package main

import (
	"bytes"
	"encoding/json"
	"testing"

	swapd "github.com/iov-one/swap/cmd/swapd/app"
	"github.com/iov-one/swap/swaptest"
	"github.com/iov-one/swap/swaptest/assert"
	"github.com/iov-one/swap/x/offer"
	"github.com/iov-one/swap/x/sigs"
)

func TestCmdTransactionView(t *testing.T) {
	key := swaptest.NewKey()
	taker := key.PublicKey().Address()
	offerAddr := swaptest.NewCondition().Address()

	tx, err := swapd.NewTx(&offer.TakeOfferMsg{Taker: taker, Offer: offerAddr})
	assert.Nil(t, err)
	sig, err := sigs.SignTx(key, tx, "test-chain", 4)
	assert.Nil(t, err)
	tx.Signatures = append(tx.Signatures, sig)

	var input bytes.Buffer
	if _, err := writeTx(&input, tx); err != nil {
		t.Fatalf("cannot serialize transaction: %s", err)
	}

	var output bytes.Buffer
	if err := cmdTransactionView(&input, &output, nil); err != nil {
		t.Fatalf("cannot view transaction: %s", err)
	}

	var got struct {
		Path string `json:"path"`
		Msg  struct {
			Taker string `json:"taker"`
			Offer string `json:"offer"`
		} `json:"msg"`
		Signatures []struct {
			Signer   string `json:"signer"`
			Sequence int64  `json:"sequence"`
		} `json:"signatures"`
	}
	if err := json.Unmarshal(output.Bytes(), &got); err != nil {
		t.Fatalf("cannot decode view output: %s\n%s", err, output.String())
	}
	assert.Equal(t, "offer/take", got.Path)
	assert.Equal(t, taker.String(), got.Msg.Taker)
	assert.Equal(t, offerAddr.String(), got.Msg.Offer)
	if len(got.Signatures) != 1 {
		t.Fatalf("want one signature, got %d", len(got.Signatures))
	}
	assert.Equal(t, taker.String(), got.Signatures[0].Signer)
	assert.Equal(t, int64(4), got.Signatures[0].Sequence)
}
