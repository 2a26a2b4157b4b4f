package utils

import (
	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
)

// Recovery converts a panic raised further down the stack into an
// ErrPanic, so a broken message fails its own transaction instead of
// halting the node. Place it before any Savepoint so the state written by
// the panicking call is discarded.
type Recovery struct{}

var _ swap.Decorator = Recovery{}

// NewRecovery returns a Recovery decorator.
func NewRecovery() Recovery {
	return Recovery{}
}

// Check calls the next checker and recovers its panics.
func (Recovery) Check(ctx swap.Context, store swap.KVStore, tx swap.Tx, next swap.Checker) (res *swap.CheckResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, panicked(ctx, "check", r)
		}
	}()
	return next.Check(ctx, store, tx)
}

// Deliver calls the next deliverer and recovers its panics.
func (Recovery) Deliver(ctx swap.Context, store swap.KVStore, tx swap.Tx, next swap.Deliverer) (res *swap.DeliverResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, panicked(ctx, "deliver", r)
		}
	}()
	return next.Deliver(ctx, store, tx)
}

func panicked(ctx swap.Context, phase string, r interface{}) error {
	err := errors.Wrapf(errors.ErrPanic, "%v", r)
	swap.GetLogger(ctx).Error("recovered from panic", "phase", phase, "panic", r)
	return err
}
