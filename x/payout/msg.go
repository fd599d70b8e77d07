package payout

import (
	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/errors"
)

const (
	pathRequest = "payout/request"
	pathVote    = "payout/vote"
	pathExecute = "payout/execute"
)

// RequestPayoutMsg opens a payout for an approved report. Only the
// administrator may open payouts.
type RequestPayoutMsg struct {
	ReportID []byte `json:"report_id"`
}

var _ bounty.Msg = (*RequestPayoutMsg)(nil)

func (RequestPayoutMsg) Path() string { return pathRequest }

func (msg RequestPayoutMsg) Validate() error {
	if len(msg.ReportID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "report id")
	}
	return nil
}

// VotePayoutMsg records a committee member's approval of a payout.
// Each member votes at most once.
type VotePayoutMsg struct {
	PayoutID []byte `json:"payout_id"`
}

var _ bounty.Msg = (*VotePayoutMsg)(nil)

func (VotePayoutMsg) Path() string { return pathVote }

func (msg VotePayoutMsg) Validate() error {
	if len(msg.PayoutID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "payout id")
	}
	return nil
}

// ExecutePayoutMsg releases the funds of a payout that gathered enough
// votes. Anyone may execute; the votes are the authorization.
type ExecutePayoutMsg struct {
	PayoutID []byte `json:"payout_id"`
}

var _ bounty.Msg = (*ExecutePayoutMsg)(nil)

func (ExecutePayoutMsg) Path() string { return pathExecute }

func (msg ExecutePayoutMsg) Validate() error {
	if len(msg.PayoutID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "payout id")
	}
	return nil
}
