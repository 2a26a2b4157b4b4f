package offer

import (
	"github.com/iov-one/swap/errors"
)

// x/offer reserves 40 ~ 49.
var (
	// ErrMakerBalance is returned when at settlement time the maker no
	// longer holds the offered amount.
	ErrMakerBalance = errors.Register(40, "maker balance insufficient")
)
