/*
Package bountytest provides test doubles for the interfaces of the
root package, so extension tests do not have to redeclare them.
*/
package bountytest

import (
	"encoding/binary"
	"sync"
	"sync/atomic"

	"github.com/bounty-one/bounty"
)

// Tx is a mock implementation of the bounty.Tx interface.
type Tx struct {
	// Msg is the message this transaction carries.
	Msg bounty.Msg

	// Err is returned by GetMsg if not nil.
	Err error
}

var _ bounty.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (bounty.Msg, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return tx.Msg, nil
}

// Handler is a mock implementation of the bounty.Handler interface.
//
// Set DeliverFn to control the result of a Deliver call. The handler
// counts calls so a test can assert it was (or was not) reached.
type Handler struct {
	DeliverFn func(bounty.Context, bounty.KVStore, bounty.Tx) (*bounty.DeliverResult, error)

	callCount int64
}

var _ bounty.Handler = (*Handler)(nil)

func (h *Handler) Deliver(ctx bounty.Context, db bounty.KVStore, tx bounty.Tx) (*bounty.DeliverResult, error) {
	atomic.AddInt64(&h.callCount, 1)
	if h.DeliverFn == nil {
		return &bounty.DeliverResult{}, nil
	}
	return h.DeliverFn(ctx, db, tx)
}

// CallCount returns the number of times Deliver was called.
func (h *Handler) CallCount() int {
	return int(atomic.LoadInt64(&h.callCount))
}

// Auth is a mock implementation of the x.Authenticator interface.
type Auth struct {
	// Signer is the single address this authenticator authenticates.
	Signer bounty.Address

	// Signers are additional addresses this authenticator
	// authenticates.
	Signers []bounty.Address
}

func (a *Auth) GetAddresses(bounty.Context) []bounty.Address {
	var addrs []bounty.Address
	if a.Signer != nil {
		addrs = append(addrs, a.Signer)
	}
	return append(addrs, a.Signers...)
}

func (a *Auth) HasAddress(ctx bounty.Context, addr bounty.Address) bool {
	for _, have := range a.GetAddresses(ctx) {
		if addr.Equals(have) {
			return true
		}
	}
	return false
}

var addrCounter int64
var addrMu sync.Mutex

// NewAddress returns a new unique address that can be used in tests as
// an account identifier.
func NewAddress() bounty.Address {
	addrMu.Lock()
	defer addrMu.Unlock()
	addrCounter++
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(addrCounter))
	return bounty.NewAddress(raw)
}

// SequenceID returns an ID as generated by the orm sequence counter.
func SequenceID(n int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(n))
	return b
}
