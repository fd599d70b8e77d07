package utils

import (
	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors instead of crashing the caller.
type Recovery struct{}

var _ bounty.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator.
func NewRecovery() Recovery {
	return Recovery{}
}

// Deliver turns panics into normal errors.
func (r Recovery) Deliver(ctx bounty.Context, store bounty.KVStore, tx bounty.Tx, next bounty.Handler) (res *bounty.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
