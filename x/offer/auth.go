package offer

import (
	"context"

	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/x"
)

type contextKey int

const (
	contextKeyOffer contextKey = iota
)

// withOfferSigner grants the context the right to act for the offer
// address. Only settlement does this.
func withOfferSigner(ctx swap.Context, o *Offer) swap.Context {
	return context.WithValue(ctx, contextKeyOffer, o.Condition())
}

// Authenticate exposes the offer currently being settled as a signer.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns the condition of the offer being settled, if any.
func (Authenticate) GetConditions(ctx swap.Context) []swap.Condition {
	val, _ := ctx.Value(contextKeyOffer).(swap.Condition)
	if val == nil {
		return nil
	}
	return []swap.Condition{val}
}

// HasAddress returns true if addr is the address of the offer being
// settled.
func (a Authenticate) HasAddress(ctx swap.Context, addr swap.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
