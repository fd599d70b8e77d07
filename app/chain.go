package app

import (
	"github.com/bounty-one/bounty"
)

// ChainDecorators takes a chain of decorators. The first decorator is
// the outermost one, the last one wraps the final handler.
func ChainDecorators(chain ...bounty.Decorator) Decorators {
	return Decorators{chain: chain}
}

// Decorators holds a chain of decorators, not yet bound to a handler.
type Decorators struct {
	chain []bounty.Decorator
}

// WithHandler binds the chain to the given handler and returns a
// handler executing the whole stack.
func (d Decorators) WithHandler(h bounty.Handler) bounty.Handler {
	next := h
	for i := len(d.chain) - 1; i >= 0; i-- {
		next = chained{decorator: d.chain[i], next: next}
	}
	return next
}

// chained binds one decorator to the rest of the stack.
type chained struct {
	decorator bounty.Decorator
	next      bounty.Handler
}

var _ bounty.Handler = chained{}

func (c chained) Deliver(ctx bounty.Context, db bounty.KVStore, tx bounty.Tx) (*bounty.DeliverResult, error) {
	return c.decorator.Deliver(ctx, db, tx, c.next)
}
