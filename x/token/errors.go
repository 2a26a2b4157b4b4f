package token

import (
	"github.com/iov-one/swap/errors"
)

// x/token reserves 30 ~ 39.
var (
	// ErrInsufficientDelegation is returned when a delegate attempts to
	// move more than what is left of the approved amount.
	ErrInsufficientDelegation = errors.Register(30, "insufficient delegation")
)
