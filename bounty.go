/*
Package bounty defines the common interfaces that tie together the
bounty authorization ledger: the key-value stores the state lives in,
the messages that request state transitions, the handlers that execute
them, and the decorators that wrap handlers with shared functionality.

The extensions under x/ implement the actual ledger semantics (reports,
disputes, committee governance, payout voting, custody pool). The app
package wires them into a single serialized authority.
*/
package bounty

import (
	"encoding/json"
)

// Handler executes a single message against the state. This could
// represent "submit a report", or "vote on a payout".
type Handler interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator wraps a Handler to provide common functionality
// like authentication, logging or pause gating, to many Handlers.
type Decorator interface {
	Deliver(ctx Context, store KVStore, tx Tx, next Handler) (*DeliverResult, error)
}

// Registry is an interface to register your handler,
// the setup side of a Router.
type Registry interface {
	Handle(path string, h Handler)
}

// Options are the initialization options.
// Each extension can look up its key and parse the json as desired.
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key,
// and parses the json into the given obj.
// Returns an error if it cannot parse.
// Noop and no error if key is missing.
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	return json.Unmarshal(msg, obj)
}

// Initializer implementations are used to initialize
// extensions from the genesis options.
type Initializer interface {
	FromGenesis(Options, KVStore) error
}
