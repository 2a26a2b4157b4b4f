package swaptest

import (
	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/crypto"
)

// NewKey returns a random private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the signature condition of a random key.
func NewCondition() swap.Condition {
	return NewKey().PublicKey().Condition()
}
