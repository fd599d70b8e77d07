package guard

import (
	"github.com/tendermint/tendermint/libs/common"

	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/errors"
	"github.com/bounty-one/bounty/x"
)

// ErrPaused is returned for every message rejected because the ledger
// is halted.
var ErrPaused = errors.Register(140, "ledger is paused")

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r bounty.Registry, auth x.Authenticator) {
	r.Handle(pathPause, PauseHandler{auth: auth})
	r.Handle(pathUnpause, UnpauseHandler{auth: auth})
	r.Handle(pathReassign, ReassignAdminHandler{auth: auth})
}

// PauseHandler halts the ledger.
type PauseHandler struct {
	auth x.Authenticator
}

var _ bounty.Handler = PauseHandler{}

func (h PauseHandler) Deliver(ctx bounty.Context, db bounty.KVStore, tx bounty.Tx) (*bounty.DeliverResult, error) {
	var msg PauseMsg
	if err := bounty.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	admin, err := EnsureAdmin(ctx, h.auth, db)
	if err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	conf.Paused = true
	if err := saveConf(db, conf); err != nil {
		return nil, err
	}
	return &bounty.DeliverResult{
		Tags: []common.KVPair{
			bounty.Pair("action", pathPause),
			bounty.Pair("admin", admin.String()),
		},
	}, nil
}

// UnpauseHandler lifts the halt.
type UnpauseHandler struct {
	auth x.Authenticator
}

var _ bounty.Handler = UnpauseHandler{}

func (h UnpauseHandler) Deliver(ctx bounty.Context, db bounty.KVStore, tx bounty.Tx) (*bounty.DeliverResult, error) {
	var msg UnpauseMsg
	if err := bounty.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	admin, err := EnsureAdmin(ctx, h.auth, db)
	if err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	conf.Paused = false
	if err := saveConf(db, conf); err != nil {
		return nil, err
	}
	return &bounty.DeliverResult{
		Tags: []common.KVPair{
			bounty.Pair("action", pathUnpause),
			bounty.Pair("admin", admin.String()),
		},
	}, nil
}

// ReassignAdminHandler transfers the administrator role.
type ReassignAdminHandler struct {
	auth x.Authenticator
}

var _ bounty.Handler = ReassignAdminHandler{}

func (h ReassignAdminHandler) Deliver(ctx bounty.Context, db bounty.KVStore, tx bounty.Tx) (*bounty.DeliverResult, error) {
	var msg ReassignAdminMsg
	if err := bounty.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if _, err := EnsureAdmin(ctx, h.auth, db); err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	conf.Admin = msg.NewAdmin
	if err := saveConf(db, conf); err != nil {
		return nil, err
	}
	return &bounty.DeliverResult{
		Tags: []common.KVPair{
			bounty.Pair("action", pathReassign),
			bounty.Pair("admin", msg.NewAdmin.String()),
		},
	}, nil
}
