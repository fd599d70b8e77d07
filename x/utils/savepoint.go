package utils

import (
	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/errors"
)

// Savepoint will isolate all data inside of the call, and only flush
// the changes to the parent store on success. A failed transaction can
// never leave a partial state transition behind.
type Savepoint struct{}

var _ bounty.Decorator = Savepoint{}

// NewSavepoint creates a Savepoint decorator.
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// Deliver runs the rest of the handler chain against a cache wrap of
// the store. Writes are flushed only if the chain returns no error.
func (s Savepoint) Deliver(ctx bounty.Context, store bounty.KVStore, tx bounty.Tx, next bounty.Handler) (*bounty.DeliverResult, error) {
	cstore, ok := store.(bounty.CacheableKVStore)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "store is not cacheable")
	}
	cache := cstore.CacheWrap()

	res, err := next.Deliver(ctx, cache, tx)
	if err == nil {
		cache.Write()
	} else {
		cache.Discard()
	}
	return res, err
}
