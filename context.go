package bounty

import (
	"context"

	"github.com/tendermint/tendermint/libs/log"
)

// Context is just a std context. We alias it here to keep the handler
// signatures short and to reserve the option of tightening it later.
type Context = context.Context

// DefaultLogger is used for all contexts that have not
// set anything themselves.
var DefaultLogger = log.NewNopLogger()

type contextKey int

const (
	contextKeyLogger contextKey = iota
	contextKeyActors
)

// WithLogger sets the logger for this context
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the currently set logger, or DefaultLogger if
// none was set.
func GetLogger(ctx Context) log.Logger {
	if logger, ok := ctx.Value(contextKeyLogger).(log.Logger); ok {
		return logger
	}
	return DefaultLogger
}

// WithActors returns a context carrying the already authenticated
// identities behind a transaction. Authentication (signatures, API
// tokens, whatever the transport uses) happens outside of this
// library; by the time a tx reaches a handler its actors are facts.
func WithActors(ctx Context, actors ...Address) Context {
	return context.WithValue(ctx, contextKeyActors, actors)
}

// Actors returns all authenticated identities set on this context.
func Actors(ctx Context) []Address {
	val, _ := ctx.Value(contextKeyActors).([]Address)
	return val
}
