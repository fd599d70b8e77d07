package cash

import (
	"github.com/tendermint/tendermint/libs/common"

	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/coin"
	"github.com/bounty-one/bounty/errors"
	"github.com/bounty-one/bounty/x"
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r bounty.Registry, auth x.Authenticator, ctrl Controller) {
	r.Handle(pathDeposit, DepositHandler{auth: auth, ctrl: ctrl})
}

// DepositHandler credits the custody pool.
type DepositHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ bounty.Handler = DepositHandler{}

func (h DepositHandler) Deliver(ctx bounty.Context, db bounty.KVStore, tx bounty.Tx) (*bounty.DeliverResult, error) {
	var msg DepositMsg
	if err := bounty.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if err := h.ctrl.IssueCoins(db, PoolAddress, msg.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot credit pool")
	}
	tags := []common.KVPair{
		bounty.Pair("action", pathDeposit),
	}
	if sender := x.MainSigner(ctx, h.auth); sender != nil {
		tags = append(tags, bounty.Pair("sender", sender.String()))
	}
	return &bounty.DeliverResult{Tags: tags}, nil
}

// Initializer fulfils the Initializer interface to load data from the
// genesis file
type Initializer struct{}

var _ bounty.Initializer = (*Initializer)(nil)

// FromGenesis will parse an optional initial pool balance from
// genesis and credit the pool with it.
func (*Initializer) FromGenesis(opts bounty.Options, db bounty.KVStore) error {
	var pool struct {
		Balance *coin.Coin `json:"pool"`
	}
	if err := opts.ReadOptions("cash", &pool); err != nil {
		return errors.Wrap(err, "cannot load cash options")
	}
	if pool.Balance == nil {
		return nil
	}
	amount := *pool.Balance
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "pool balance")
	}
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "pool balance must be positive")
	}
	return NewController().IssueCoins(db, PoolAddress, amount)
}
