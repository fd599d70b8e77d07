/*
Package guard implements the pause switch and the administrator role.

The decorator it exports gates the whole handler chain: while the
ledger is paused every message is rejected except the guard's own, so
the administrator can always unpause. Read-only queries do not pass
through the decorator and stay available while paused.
*/
package guard

import (
	"strings"

	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/errors"
)

// Decorator rejects all messages while the ledger is paused.
type Decorator struct{}

var _ bounty.Decorator = Decorator{}

// NewDecorator creates a pause gating decorator.
func NewDecorator() Decorator {
	return Decorator{}
}

// Deliver passes the message down the chain unless the ledger is
// paused and the message is not a guard message.
func (d Decorator) Deliver(ctx bounty.Context, db bounty.KVStore, tx bounty.Tx, next bounty.Handler) (*bounty.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get message")
	}
	if !strings.HasPrefix(msg.Path(), pathPrefix) {
		conf, err := loadConf(db)
		if err != nil {
			return nil, err
		}
		if conf.Paused {
			return nil, errors.Wrapf(ErrPaused, "%q rejected", msg.Path())
		}
	}
	return next.Deliver(ctx, db, tx)
}
