// Package bech32 renders addresses in the human friendly bech32 format.
package bech32

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/swap/errors"
)

// Decode returns the human readable part and the payload of a bech32
// string. Malformed input and checksum mismatches are ErrInvalidInput.
func Decode(enc string) (hrp string, payload []byte, err error) {
	hrp, groups, err := bech32.Decode(enc)
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrInvalidInput, "bech32: %s", err)
	}
	payload, err = bech32.ConvertBits(groups, 5, 8, false)
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrInvalidInput, "bech32 payload: %s", err)
	}
	if len(payload) == 0 {
		return "", nil, errors.Wrap(errors.ErrEmpty, "bech32 payload")
	}
	return hrp, payload, nil
}

// Encode returns the bech32 form of the payload under the given human
// readable part.
func Encode(hrp string, payload []byte) (string, error) {
	if hrp == "" {
		return "", errors.Wrap(errors.ErrEmpty, "human readable part")
	}
	groups, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInvalidInput, "bech32 payload: %s", err)
	}
	enc, err := bech32.Encode(hrp, groups)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInvalidInput, "bech32: %s", err)
	}
	return enc, nil
}
