/*
Package payout implements the payout threshold engine. A payout is
opened for an approved report, gathers committee votes, and once the
vote count reaches the committee threshold anyone may execute it,
moving the reward from the custody pool to the reporter.
*/
package payout

import (
	"encoding/json"

	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/coin"
	"github.com/bounty-one/bounty/errors"
	"github.com/bounty-one/bounty/orm"
)

var (
	// ErrNotApproved is returned when requesting a payout for an
	// unapproved report.
	ErrNotApproved = errors.Register(130, "report not approved")

	// ErrAlreadyRequested is returned when opening a second payout
	// for the same report.
	ErrAlreadyRequested = errors.Register(131, "payout already requested")

	// ErrAlreadyPaid is returned when opening a payout for a report
	// that was already paid.
	ErrAlreadyPaid = errors.Register(132, "report already paid")

	// ErrAlreadyVoted is returned when a member votes twice on the
	// same payout.
	ErrAlreadyVoted = errors.Register(133, "already voted")

	// ErrAlreadyExecuted is returned when acting on an executed
	// payout.
	ErrAlreadyExecuted = errors.Register(134, "payout already executed")

	// ErrThresholdNotMet is returned when executing a payout with
	// fewer votes than the committee threshold.
	ErrThresholdNotMet = errors.Register(135, "vote threshold not met")
)

// Payout is a single payout authorization in progress. Votes are
// recorded in the voter list; the threshold is read from the committee
// at execution time, so a committee change affects pending payouts.
type Payout struct {
	ReportID  []byte           `json:"report_id"`
	Recipient bounty.Address   `json:"recipient"`
	Amount    coin.Coin        `json:"amount"`
	Voters    []bounty.Address `json:"voters"`
	Executed  bool             `json:"executed"`
}

var _ orm.Model = (*Payout)(nil)

func (p *Payout) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

func (p *Payout) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, p)
}

func (p *Payout) Validate() error {
	if len(p.ReportID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "report id")
	}
	if err := p.Recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if err := p.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !p.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	return nil
}

// HasVoted returns true if the given member already voted on this
// payout.
func (p *Payout) HasVoted(addr bounty.Address) bool {
	for _, v := range p.Voters {
		if addr.Equals(v) {
			return true
		}
	}
	return false
}

// NewPayoutBucket returns a bucket for keeping payouts, with IDs
// generated by a sequence counter.
func NewPayoutBucket() *orm.ModelBucket {
	return orm.NewModelBucket("payout", orm.WithIDSequence("id"))
}

// GetPayout loads the payout with the given ID. The returned value is
// a snapshot copy.
func GetPayout(db bounty.ReadOnlyKVStore, payoutID []byte) (*Payout, error) {
	var p Payout
	if err := NewPayoutBucket().One(db, payoutID, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
