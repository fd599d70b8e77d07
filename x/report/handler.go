package report

import (
	"strconv"

	"github.com/tendermint/tendermint/libs/common"

	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/errors"
	"github.com/bounty-one/bounty/orm"
	"github.com/bounty-one/bounty/x"
	"github.com/bounty-one/bounty/x/guard"
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r bounty.Registry, auth x.Authenticator) {
	bucket := NewReportBucket()
	r.Handle(pathSubmit, SubmitHandler{auth: auth, bucket: bucket})
	r.Handle(pathApprove, ApproveHandler{auth: auth, bucket: bucket})
}

// SubmitHandler registers new reports.
type SubmitHandler struct {
	auth   x.Authenticator
	bucket *orm.ModelBucket
}

var _ bounty.Handler = SubmitHandler{}

func (h SubmitHandler) Deliver(ctx bounty.Context, db bounty.KVStore, tx bounty.Tx) (*bounty.DeliverResult, error) {
	var msg SubmitReportMsg
	if err := bounty.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}

	reporter := msg.Reporter
	if reporter == nil {
		reporter = x.MainSigner(ctx, h.auth)
	}
	if reporter == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no reporter")
	}

	rep := Report{
		Reporter:    reporter,
		Description: msg.Description,
		Severity:    msg.Severity,
	}
	key, err := h.bucket.Put(db, nil, &rep)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store report")
	}
	return &bounty.DeliverResult{
		Data: key,
		Tags: []common.KVPair{
			bounty.Pair("action", pathSubmit),
			bounty.Pair("report", fmtID(key)),
			bounty.Pair("reporter", reporter.String()),
		},
	}, nil
}

// ApproveHandler marks reports as valid findings.
type ApproveHandler struct {
	auth   x.Authenticator
	bucket *orm.ModelBucket
}

var _ bounty.Handler = ApproveHandler{}

func (h ApproveHandler) Deliver(ctx bounty.Context, db bounty.KVStore, tx bounty.Tx) (*bounty.DeliverResult, error) {
	var msg ApproveReportMsg
	if err := bounty.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	admin, err := guard.EnsureAdmin(ctx, h.auth, db)
	if err != nil {
		return nil, err
	}
	if err := Approve(db, msg.ReportID); err != nil {
		return nil, err
	}
	return &bounty.DeliverResult{
		Tags: []common.KVPair{
			bounty.Pair("action", pathApprove),
			bounty.Pair("report", fmtID(msg.ReportID)),
			bounty.Pair("admin", admin.String()),
		},
	}, nil
}

// Approve flips the approved flag on a stored report. It is shared
// with the dispute resolution flow, which may approve a report as part
// of resolving a dispute in the reporter's favor.
func Approve(db bounty.KVStore, reportID []byte) error {
	bucket := NewReportBucket()
	var rep Report
	if err := bucket.One(db, reportID, &rep); err != nil {
		return err
	}
	if rep.Approved {
		return errors.Wrapf(ErrAlreadyApproved, "report %d", orm.DecodeSequence(reportID))
	}
	rep.Approved = true
	if _, err := bucket.Put(db, reportID, &rep); err != nil {
		return errors.Wrap(err, "cannot store report")
	}
	return nil
}

func fmtID(key []byte) string {
	if len(key) != 8 {
		return "(invalid)"
	}
	return strconv.FormatInt(orm.DecodeSequence(key), 10)
}
