/*
Package x contains the interfaces shared by all extensions.

Handlers never look at signatures directly. They ask an Authenticator
whether an address was authorized by the current transaction, which lets
the signature decorator and the offer program grant conditions through
the same mechanism.
*/
package x

import (
	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
)

// Authenticator reveals which conditions the current transaction
// fulfills. Handlers receive one in their constructor, so what counts as
// authorization is decided by the application wiring.
type Authenticator interface {
	// GetConditions returns every condition fulfilled in this context.
	GetConditions(swap.Context) []swap.Condition
	// HasAddress reports whether a fulfilled condition has this address.
	HasAddress(swap.Context, swap.Address) bool
}

// MultiAuth is the union of several authenticators.
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth returns an authenticator accepting anything accepted by at
// least one of impls. Conditions are reported in the order of impls.
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls: impls}
}

// GetConditions concatenates the conditions of all authenticators.
func (m MultiAuth) GetConditions(ctx swap.Context) []swap.Condition {
	var res []swap.Condition
	for _, impl := range m.impls {
		res = append(res, impl.GetConditions(ctx)...)
	}
	return res
}

// HasAddress is true if any authenticator knows the address.
func (m MultiAuth) HasAddress(ctx swap.Context, addr swap.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first fulfilled condition or nil.
func MainSigner(ctx swap.Context, auth Authenticator) swap.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// RequireSigner returns ErrUnauthorized unless the address was authorized
// in this context. The role names the party in the error message, for
// example "maker" or "account owner".
func RequireSigner(ctx swap.Context, auth Authenticator, addr swap.Address, role string) error {
	if len(addr) == 0 || !auth.HasAddress(ctx, addr) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s signature missing", role)
	}
	return nil
}
