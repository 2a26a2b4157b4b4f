package swaptest

import (
	"context"
	"fmt"

	swap "github.com/iov-one/swap"
)

// Auth implements x.Authenticator for a fixed set of conditions. Signer
// and Signers are merged, so either or both can be used.
type Auth struct {
	Signer  swap.Condition
	Signers []swap.Condition
}

func (a *Auth) GetConditions(swap.Context) []swap.Condition {
	conds := make([]swap.Condition, 0, len(a.Signers)+1)
	conds = append(conds, a.Signers...)
	if a.Signer != nil {
		conds = append(conds, a.Signer)
	}
	return conds
}

func (a *Auth) HasAddress(ctx swap.Context, addr swap.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

// CtxAuth implements x.Authenticator with the conditions carried by the
// context under Key. Tests use it to sign each call differently.
type CtxAuth struct {
	Key string
}

// SetConditions returns a context authenticating the given conditions.
func (a *CtxAuth) SetConditions(ctx swap.Context, conds ...swap.Condition) swap.Context {
	return context.WithValue(ctx, a.Key, conds)
}

func (a *CtxAuth) GetConditions(ctx swap.Context) []swap.Condition {
	switch val := ctx.Value(a.Key).(type) {
	case nil:
		return nil
	case []swap.Condition:
		return val
	default:
		panic(fmt.Sprintf("instead of []swap.Condition got %T", val))
	}
}

func (a *CtxAuth) HasAddress(ctx swap.Context, addr swap.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

func hasAddress(conds []swap.Condition, addr swap.Address) bool {
	for _, c := range conds {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
