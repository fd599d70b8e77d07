package payout

import (
	"strconv"

	"github.com/tendermint/tendermint/libs/common"

	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/errors"
	"github.com/bounty-one/bounty/orm"
	"github.com/bounty-one/bounty/x"
	"github.com/bounty-one/bounty/x/cash"
	"github.com/bounty-one/bounty/x/committee"
	"github.com/bounty-one/bounty/x/guard"
	"github.com/bounty-one/bounty/x/report"
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r bounty.Registry, auth x.Authenticator, ctrl cash.Controller) {
	bucket := NewPayoutBucket()
	r.Handle(pathRequest, RequestHandler{auth: auth, bucket: bucket})
	r.Handle(pathVote, VoteHandler{auth: auth, bucket: bucket})
	r.Handle(pathExecute, ExecuteHandler{auth: auth, bucket: bucket, ctrl: ctrl})
}

// RequestHandler opens payouts for approved reports.
type RequestHandler struct {
	auth   x.Authenticator
	bucket *orm.ModelBucket
}

var _ bounty.Handler = RequestHandler{}

func (h RequestHandler) Deliver(ctx bounty.Context, db bounty.KVStore, tx bounty.Tx) (*bounty.DeliverResult, error) {
	var msg RequestPayoutMsg
	if err := bounty.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if _, err := guard.EnsureAdmin(ctx, h.auth, db); err != nil {
		return nil, err
	}

	rep, err := report.GetReport(db, msg.ReportID)
	if err != nil {
		return nil, err
	}
	switch {
	case !rep.Approved:
		return nil, errors.Wrapf(ErrNotApproved, "report %s", fmtID(msg.ReportID))
	case rep.Paid:
		return nil, errors.Wrapf(ErrAlreadyPaid, "report %s", fmtID(msg.ReportID))
	case rep.PayoutRequested:
		return nil, errors.Wrapf(ErrAlreadyRequested, "report %s", fmtID(msg.ReportID))
	}

	amount, err := Reward(db, rep.Severity)
	if err != nil {
		return nil, err
	}
	p := Payout{
		ReportID:  msg.ReportID,
		Recipient: rep.Reporter,
		Amount:    amount,
	}
	key, err := h.bucket.Put(db, nil, &p)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store payout")
	}

	rep.PayoutRequested = true
	if _, err := report.NewReportBucket().Put(db, msg.ReportID, rep); err != nil {
		return nil, errors.Wrap(err, "cannot store report")
	}
	return &bounty.DeliverResult{
		Data: key,
		Tags: []common.KVPair{
			bounty.Pair("action", pathRequest),
			bounty.Pair("payout", fmtID(key)),
			bounty.Pair("report", fmtID(msg.ReportID)),
		},
	}, nil
}

// VoteHandler records committee votes.
type VoteHandler struct {
	auth   x.Authenticator
	bucket *orm.ModelBucket
}

var _ bounty.Handler = VoteHandler{}

func (h VoteHandler) Deliver(ctx bounty.Context, db bounty.KVStore, tx bounty.Tx) (*bounty.DeliverResult, error) {
	var msg VotePayoutMsg
	if err := bounty.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}

	voter, err := h.findVoter(ctx, db)
	if err != nil {
		return nil, err
	}

	var p Payout
	if err := h.bucket.One(db, msg.PayoutID, &p); err != nil {
		return nil, err
	}
	if p.Executed {
		return nil, errors.Wrapf(ErrAlreadyExecuted, "payout %s", fmtID(msg.PayoutID))
	}
	if p.HasVoted(voter) {
		return nil, errors.Wrapf(ErrAlreadyVoted, "%s", voter)
	}
	p.Voters = append(p.Voters, voter)
	if _, err := h.bucket.Put(db, msg.PayoutID, &p); err != nil {
		return nil, errors.Wrap(err, "cannot store payout")
	}
	return &bounty.DeliverResult{
		Log: strconv.Itoa(len(p.Voters)) + " votes",
		Tags: []common.KVPair{
			bounty.Pair("action", pathVote),
			bounty.Pair("payout", fmtID(msg.PayoutID)),
			bounty.Pair("voter", voter.String()),
		},
	}, nil
}

// findVoter returns the authenticated actor that is a committee
// member.
func (h VoteHandler) findVoter(ctx bounty.Context, db bounty.KVStore) (bounty.Address, error) {
	for _, addr := range h.auth.GetAddresses(ctx) {
		ok, err := committee.IsMember(db, addr)
		if err != nil {
			return nil, err
		}
		if ok {
			return addr, nil
		}
	}
	return nil, errors.Wrap(errors.ErrUnauthorized, "not a committee member")
}

// ExecuteHandler releases authorized payouts.
type ExecuteHandler struct {
	auth   x.Authenticator
	bucket *orm.ModelBucket
	ctrl   cash.Controller
}

var _ bounty.Handler = ExecuteHandler{}

func (h ExecuteHandler) Deliver(ctx bounty.Context, db bounty.KVStore, tx bounty.Tx) (*bounty.DeliverResult, error) {
	var msg ExecutePayoutMsg
	if err := bounty.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}

	var p Payout
	if err := h.bucket.One(db, msg.PayoutID, &p); err != nil {
		return nil, err
	}
	if p.Executed {
		return nil, errors.Wrapf(ErrAlreadyExecuted, "payout %s", fmtID(msg.PayoutID))
	}

	// The threshold is read at execution time, so committee changes
	// made after the votes were cast still apply.
	threshold, err := committee.Threshold(db)
	if err != nil {
		return nil, err
	}
	if int32(len(p.Voters)) < threshold {
		return nil, errors.Wrapf(ErrThresholdNotMet, "%d of %d votes", len(p.Voters), threshold)
	}

	p.Executed = true
	if _, err := h.bucket.Put(db, msg.PayoutID, &p); err != nil {
		return nil, errors.Wrap(err, "cannot store payout")
	}

	rep, err := report.GetReport(db, p.ReportID)
	if err != nil {
		return nil, err
	}
	rep.Paid = true
	if _, err := report.NewReportBucket().Put(db, p.ReportID, rep); err != nil {
		return nil, errors.Wrap(err, "cannot store report")
	}

	// Moving the funds is last. On any failure the whole transaction
	// is rolled back, flags included, so a payout can never burn its
	// executed state without paying.
	if err := h.ctrl.MoveCoins(db, cash.PoolAddress, p.Recipient, p.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot move funds")
	}
	return &bounty.DeliverResult{
		Tags: []common.KVPair{
			bounty.Pair("action", pathExecute),
			bounty.Pair("payout", fmtID(msg.PayoutID)),
			bounty.Pair("recipient", p.Recipient.String()),
		},
	}, nil
}

func fmtID(key []byte) string {
	if len(key) != 8 {
		return "(invalid)"
	}
	return strconv.FormatInt(orm.DecodeSequence(key), 10)
}
