package main

import (
	"bytes"
	"encoding/hex"
	"io"
	"io/ioutil"
	"testing"

	swapd "github.com/iov-one/swap/cmd/swapd/app"
	"github.com/iov-one/swap/swaptest"
	"github.com/iov-one/swap/swaptest/assert"
	"github.com/iov-one/swap/x/token"
)

func TestWriteAndReadTxStream(t *testing.T) {
	owner := swaptest.NewCondition().Address()
	msgs := []*token.CreateAccountMsg{
		{Owner: owner, Mint: token.MintAddress("GOLD")},
		{Owner: owner, Mint: token.MintAddress("SILVER")},
	}

	var stream bytes.Buffer
	for _, msg := range msgs {
		tx, err := swapd.NewTx(msg)
		assert.Nil(t, err)
		if _, err := writeTx(&stream, tx); err != nil {
			t.Fatalf("cannot write transaction: %s", err)
		}
	}

	for i, want := range msgs {
		tx, _, err := readTx(&stream)
		if err != nil {
			t.Fatalf("cannot read transaction %d: %s", i, err)
		}
		got, err := tx.GetMsg()
		assert.Nil(t, err)
		assert.Equal(t, want, got)
	}

	if _, _, err := readTx(&stream); err != io.EOF {
		t.Fatalf("want EOF once the stream is consumed, got %v", err)
	}
}

func TestReadTxTruncated(t *testing.T) {
	tx, err := swapd.NewTx(&token.RevokeMsg{
		Mint:  token.MintAddress("GOLD"),
		Owner: swaptest.NewCondition().Address(),
	})
	assert.Nil(t, err)

	var stream bytes.Buffer
	if _, err := writeTx(&stream, tx); err != nil {
		t.Fatalf("cannot write transaction: %s", err)
	}
	raw := stream.Bytes()
	if _, _, err := readTx(bytes.NewReader(raw[:len(raw)-1])); err != io.ErrUnexpectedEOF {
		t.Fatalf("want unexpected EOF, got %v", err)
	}
}

func TestWriteMsgRejectsInvalid(t *testing.T) {
	var out bytes.Buffer
	err := writeMsg(&out, &token.TransferMsg{Mint: token.MintAddress("GOLD")})
	if err == nil {
		t.Fatal("want an invalid message error")
	}
	if out.Len() != 0 {
		t.Fatalf("want nothing written, got %d bytes", out.Len())
	}
}

func mustCreateFile(t testing.TB, r io.Reader) string {
	t.Helper()

	fd, err := ioutil.TempFile("", "swapcli")
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()
	if _, err := io.Copy(fd, r); err != nil {
		t.Fatal(err)
	}
	if err := fd.Close(); err != nil {
		t.Fatal(err)
	}
	return fd.Name()
}

func fromHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("cannot decode %q hex: %s", s, err)
	}
	return b
}

// mustReadMsg reads a single transaction from the buffer and returns its
// decoded message.
func mustReadMsg(t testing.TB, r io.Reader) (*swapd.Tx, interface{}) {
	t.Helper()
	tx, _, err := readTx(r)
	if err != nil {
		t.Fatalf("cannot read created transaction: %s", err)
	}
	msg, err := tx.GetMsg()
	if err != nil {
		t.Fatalf("cannot decode message: %s", err)
	}
	return tx, msg
}
