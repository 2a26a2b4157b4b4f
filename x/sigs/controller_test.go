package sigs

import (
	"testing"

	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/store"
	"github.com/iov-one/swap/swaptest"
	"github.com/iov-one/swap/swaptest/assert"
)

func TestBuildSignBytes(t *testing.T) {
	a, err := BuildSignBytes([]byte("foo"), "my-chain", 1)
	assert.Nil(t, err)
	b, err := BuildSignBytes([]byte("foo"), "my-chain", 1)
	assert.Nil(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 64, len(a))

	c, err := BuildSignBytes([]byte("foo"), "my-chain", 2)
	assert.Nil(t, err)
	if string(a) == string(c) {
		t.Fatal("sequence must change sign bytes")
	}
	d, err := BuildSignBytes([]byte("foo"), "other-chain", 1)
	assert.Nil(t, err)
	if string(a) == string(d) {
		t.Fatal("chain id must change sign bytes")
	}

	_, err = BuildSignBytes([]byte("foo"), "my-chain", -1)
	assert.IsErr(t, ErrInvalidSequence, err)
	_, err = BuildSignBytes([]byte("foo"), "bad", 1)
	assert.IsErr(t, errors.ErrInvalidInput, err)
}

func TestVerifySignature(t *testing.T) {
	const chainID = "test-chain"
	kv := store.MemStore()
	key := swaptest.NewKey()
	pub := key.PublicKey()

	tx := NewStdTx([]byte("some payload"))
	sig0 := sign(t, key, tx, chainID, 0)
	sig1 := sign(t, key, tx, chainID, 1)
	wrongChain := sign(t, key, tx, "other-chain", 1)

	// wrong sequence up front is rejected
	_, err := VerifySignature(kv, sig1, []byte("some payload"), chainID)
	assert.IsErr(t, ErrInvalidSequence, err)

	cond, err := VerifySignature(kv, sig0, []byte("some payload"), chainID)
	assert.Nil(t, err)
	assert.Equal(t, pub.Condition(), cond)

	seq, err := NextSequence(kv, pub)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), seq)

	// replay is rejected
	_, err = VerifySignature(kv, sig0, []byte("some payload"), chainID)
	assert.IsErr(t, ErrInvalidSequence, err)

	// signature for another chain is rejected
	_, err = VerifySignature(kv, wrongChain, []byte("some payload"), chainID)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	// signature for another payload is rejected
	_, err = VerifySignature(kv, sig1, []byte("other payload"), chainID)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	_, err = VerifySignature(kv, sig1, []byte("some payload"), chainID)
	assert.Nil(t, err)

	_, err = VerifySignature(kv, &StdSignature{Sequence: 2}, []byte("some payload"), chainID)
	assert.IsErr(t, errors.ErrUnauthorized, err)
}

func TestVerifyTxSignatures(t *testing.T) {
	const chainID = "test-chain"
	a, b := swaptest.NewKey(), swaptest.NewKey()

	cases := map[string]struct {
		signers func(tx *StdTx) []*StdSignature
		want    []swap.Condition
		wantErr *errors.Error
	}{
		"no signatures": {
			signers: func(tx *StdTx) []*StdSignature { return nil },
			want:    []swap.Condition{},
		},
		"one signature": {
			signers: func(tx *StdTx) []*StdSignature {
				return []*StdSignature{sign(t, a, tx, chainID, 0)}
			},
			want: []swap.Condition{a.PublicKey().Condition()},
		},
		"two signatures keep order": {
			signers: func(tx *StdTx) []*StdSignature {
				return []*StdSignature{
					sign(t, b, tx, chainID, 0),
					sign(t, a, tx, chainID, 0),
				}
			},
			want: []swap.Condition{b.PublicKey().Condition(), a.PublicKey().Condition()},
		},
		"one invalid signature fails all": {
			signers: func(tx *StdTx) []*StdSignature {
				return []*StdSignature{
					sign(t, a, tx, chainID, 0),
					sign(t, b, tx, chainID, 3),
				}
			},
			wantErr: ErrInvalidSequence,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			kv := store.MemStore()
			tx := NewStdTx([]byte(testName))
			tx.Signatures = tc.signers(tx)

			got, err := VerifyTxSignatures(kv, tx, chainID)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
