package sigs

import (
	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/crypto"
)

// StdTx is a minimal signed transaction used in tests.
type StdTx struct {
	swap.Tx
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	return &StdTx{Tx: &signableTx{payload: payload}}
}

func (tx StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx StdTx) GetSignBytes() ([]byte, error) {
	return tx.Tx.Marshal()
}

type signableTx struct {
	payload []byte
}

func (t *signableTx) GetMsg() (swap.Msg, error) { return nil, nil }
func (t *signableTx) Marshal() ([]byte, error)  { return t.payload, nil }
func (t *signableTx) Unmarshal(b []byte) error {
	t.payload = b
	return nil
}

func sign(t testingT, key crypto.Signer, tx SignedTx, chainID string, seq int64) *StdSignature {
	t.Helper()
	sig, err := SignTx(key, tx, chainID, seq)
	if err != nil {
		t.Fatalf("cannot sign: %s", err)
	}
	return sig
}

type testingT interface {
	Helper()
	Fatalf(string, ...interface{})
}
