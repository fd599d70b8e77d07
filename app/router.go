package app

import (
	"regexp"

	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/errors"
)

// isPath is the RegExp to ensure the routes make sense.
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/]+$`)

// Router allows us to register many handlers with different paths and
// then direct each message to the proper handler.
type Router struct {
	routes map[string]bounty.Handler
}

var _ bounty.Registry = (*Router)(nil)
var _ bounty.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]bounty.Handler),
	}
}

// Handle adds a new Handler for the given path. Panics on duplicate
// path or invalid path name, as this is a configuration error.
func (r *Router) Handle(path string, h bounty.Handler) {
	if !isPath.MatchString(path) {
		panic("invalid path: " + path)
	}
	if _, ok := r.routes[path]; ok {
		panic("re-registering route: " + path)
	}
	r.routes[path] = h
}

// Deliver dispatches to the proper handler based on the message path.
func (r *Router) Deliver(ctx bounty.Context, db bounty.KVStore, tx bounty.Tx) (*bounty.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get message")
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "no message")
	}
	path := msg.Path()
	h, ok := r.routes[path]
	if !ok {
		return nil, errors.Wrapf(errors.ErrMsg, "no handler for %q", path)
	}
	return h.Deliver(ctx, db, tx)
}
