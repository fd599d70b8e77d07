package utils

import (
	"time"

	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/errors"
)

// Logging is a decorator to log messages as they pass through the
// handler chain.
type Logging struct{}

var _ bounty.Decorator = Logging{}

// NewLogging creates a Logging decorator.
func NewLogging() Logging {
	return Logging{}
}

// Deliver logs the delivered message path, result and duration.
func (r Logging) Deliver(ctx bounty.Context, store bounty.KVStore, tx bounty.Tx, next bounty.Handler) (*bounty.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	logDuration(ctx, time.Since(start), bounty.GetPath(tx), err)
	return res, err
}

// logDuration writes information about the time and result to the logger.
func logDuration(ctx bounty.Context, delta time.Duration, path string, err error) {
	logger := bounty.GetLogger(ctx).With("path", path)
	logger = logger.With("duration", micros(delta))
	if err != nil {
		logger.Error("Delivered", "err", err, "code", errors.CodeOf(err))
	} else {
		logger.Info("Delivered", "call", "success")
	}
}

// micros returns the duration in microseconds.
func micros(d time.Duration) int64 {
	return int64(d) / int64(time.Microsecond)
}
