package sigs

import (
	"github.com/iov-one/swap/errors"
)

// x/sigs reserves 20 ~ 29.
var (
	// ErrInvalidSequence is returned when a signature carries a sequence
	// that does not match the signer's account.
	ErrInvalidSequence = errors.Register(20, "invalid sequence number")
)
