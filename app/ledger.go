/*
Package app assembles the extensions into the payout authorization
ledger: one router with all message handlers, wrapped in the shared
decorator stack, guarded by a mutex so transitions apply one at a
time.
*/
package app

import (
	"context"
	"sync"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/coin"
	"github.com/bounty-one/bounty/errors"
	"github.com/bounty-one/bounty/store"
	"github.com/bounty-one/bounty/x"
	"github.com/bounty-one/bounty/x/cash"
	"github.com/bounty-one/bounty/x/committee"
	"github.com/bounty-one/bounty/x/dispute"
	"github.com/bounty-one/bounty/x/guard"
	"github.com/bounty-one/bounty/x/payout"
	"github.com/bounty-one/bounty/x/report"
	"github.com/bounty-one/bounty/x/utils"
)

// Ledger is the single authority over the payout state. All
// transactions pass through DeliverTx one at a time; each either
// commits completely or leaves no trace.
type Ledger struct {
	mu      sync.Mutex
	db      bounty.CacheableKVStore
	handler bounty.Handler
	logger  log.Logger
}

// NewLedger builds the ledger and initializes its state from the
// given genesis options. It fails if the genesis violates an
// invariant, like a committee threshold above the member count or a
// missing administrator.
func NewLedger(opts bounty.Options, logger log.Logger) (*Ledger, error) {
	if logger == nil {
		logger = bounty.DefaultLogger
	}
	db := store.MemStore()

	initializers := []bounty.Initializer{
		&guard.Initializer{},
		&committee.Initializer{},
		&payout.Initializer{},
		&cash.Initializer{},
	}
	for _, ini := range initializers {
		if err := ini.FromGenesis(opts, db); err != nil {
			return nil, errors.Wrap(err, "genesis")
		}
	}

	auth := x.CtxAuth{}
	ctrl := cash.NewController()

	router := NewRouter()
	guard.RegisterRoutes(router, auth)
	cash.RegisterRoutes(router, auth, ctrl)
	report.RegisterRoutes(router, auth)
	dispute.RegisterRoutes(router, auth)
	committee.RegisterRoutes(router, auth)
	payout.RegisterRoutes(router, auth, ctrl)

	stack := ChainDecorators(
		utils.NewRecovery(),
		utils.NewLogging(),
		utils.NewSavepoint(),
		guard.NewDecorator(),
	).WithHandler(router)

	return &Ledger{
		db:      db,
		handler: stack,
		logger:  logger,
	}, nil
}

// DeliverTx executes a transaction on behalf of the given actors.
// Transactions are serialized; each runs against an isolated savepoint
// that is committed only on success.
func (l *Ledger) DeliverTx(tx bounty.Tx, actors ...bounty.Address) (*bounty.DeliverResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ctx := bounty.WithLogger(context.Background(), l.logger)
	ctx = bounty.WithActors(ctx, actors...)
	return l.handler.Deliver(ctx, l.db, tx)
}

// Report returns a snapshot of the report with the given ID. Queries
// read committed state and work while the ledger is paused.
func (l *Ledger) Report(reportID []byte) (*report.Report, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return report.GetReport(l.db, reportID)
}

// Payout returns a snapshot of the payout with the given ID.
func (l *Ledger) Payout(payoutID []byte) (*payout.Payout, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return payout.GetPayout(l.db, payoutID)
}

// Dispute returns a snapshot of the dispute raised for the given
// report.
func (l *Ledger) Dispute(reportID []byte) (*dispute.Dispute, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return dispute.GetDispute(l.db, reportID)
}

// IsMember returns true if the given address is a committee member.
func (l *Ledger) IsMember(addr bounty.Address) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return committee.IsMember(l.db, addr)
}

// Threshold returns the number of votes a payout needs.
func (l *Ledger) Threshold() (int32, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return committee.Threshold(l.db)
}

// PoolBalance returns the funds held by the custody pool.
func (l *Ledger) PoolBalance() (*coin.Coin, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cash.NewController().Balance(l.db, cash.PoolAddress)
}

// Paused returns the state of the halt switch.
func (l *Ledger) Paused() (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return guard.IsPaused(l.db)
}

// Admin returns the current administrator address.
func (l *Ledger) Admin() (bounty.Address, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return guard.Admin(l.db)
}
