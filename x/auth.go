/*
Package x contains the extensions that implement the ledger semantics,
along with helpers shared between them.

Authentication itself happens outside of this library. Extensions only
ask an Authenticator which addresses stand behind the current context
and gate their state transitions on those.
*/
package x

import (
	"github.com/bounty-one/bounty"
)

// Authenticator is an interface we can use to extract authentication
// information from the context. This should be passed into the
// constructor of handlers, so we can plug in another implementation
// in tests.
type Authenticator interface {
	// GetAddresses returns all authenticated identities
	GetAddresses(ctx bounty.Context) []bounty.Address

	// HasAddress checks if the given address was authenticated
	HasAddress(ctx bounty.Context, addr bounty.Address) bool
}

// MainSigner returns the first authenticated address, or nil if there
// is none.
func MainSigner(ctx bounty.Context, auth Authenticator) bounty.Address {
	addrs := auth.GetAddresses(ctx)
	if len(addrs) == 0 {
		return nil
	}
	return addrs[0]
}

// AnyAuth checks if any of the given addresses was authenticated.
func AnyAuth(ctx bounty.Context, auth Authenticator, addrs ...bounty.Address) bool {
	for _, a := range addrs {
		if auth.HasAddress(ctx, a) {
			return true
		}
	}
	return false
}

// CtxAuth is the default Authenticator. It reads the actors that the
// transport layer attached to the context.
type CtxAuth struct{}

var _ Authenticator = CtxAuth{}

// GetAddresses returns all actors attached to the context.
func (CtxAuth) GetAddresses(ctx bounty.Context) []bounty.Address {
	return bounty.Actors(ctx)
}

// HasAddress returns true if the given address is an actor on the
// context.
func (CtxAuth) HasAddress(ctx bounty.Context, addr bounty.Address) bool {
	for _, a := range bounty.Actors(ctx) {
		if addr.Equals(a) {
			return true
		}
	}
	return false
}
