package dispute

import (
	"strconv"

	"github.com/tendermint/tendermint/libs/common"

	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/errors"
	"github.com/bounty-one/bounty/orm"
	"github.com/bounty-one/bounty/x"
	"github.com/bounty-one/bounty/x/guard"
	"github.com/bounty-one/bounty/x/report"
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r bounty.Registry, auth x.Authenticator) {
	bucket := NewDisputeBucket()
	r.Handle(pathRaise, RaiseHandler{auth: auth, bucket: bucket})
	r.Handle(pathResolve, ResolveHandler{auth: auth, bucket: bucket})
}

// RaiseHandler opens disputes.
type RaiseHandler struct {
	auth   x.Authenticator
	bucket *orm.ModelBucket
}

var _ bounty.Handler = RaiseHandler{}

func (h RaiseHandler) Deliver(ctx bounty.Context, db bounty.KVStore, tx bounty.Tx) (*bounty.DeliverResult, error) {
	var msg RaiseDisputeMsg
	if err := bounty.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}

	rep, err := report.GetReport(db, msg.ReportID)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, rep.Reporter) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "only the reporter may dispute")
	}
	if rep.Approved {
		return nil, errors.Wrap(errors.ErrState, "report is approved")
	}
	if h.bucket.Has(db, msg.ReportID) == nil {
		return nil, errors.Wrapf(ErrDuplicateDispute, "report %s", fmtID(msg.ReportID))
	}

	d := Dispute{
		Reporter: rep.Reporter,
		Reason:   msg.Reason,
	}
	if _, err := h.bucket.Put(db, msg.ReportID, &d); err != nil {
		return nil, errors.Wrap(err, "cannot store dispute")
	}
	return &bounty.DeliverResult{
		Data: msg.ReportID,
		Tags: []common.KVPair{
			bounty.Pair("action", pathRaise),
			bounty.Pair("report", fmtID(msg.ReportID)),
			bounty.Pair("reporter", rep.Reporter.String()),
		},
	}, nil
}

// ResolveHandler closes disputes.
type ResolveHandler struct {
	auth   x.Authenticator
	bucket *orm.ModelBucket
}

var _ bounty.Handler = ResolveHandler{}

func (h ResolveHandler) Deliver(ctx bounty.Context, db bounty.KVStore, tx bounty.Tx) (*bounty.DeliverResult, error) {
	var msg ResolveDisputeMsg
	if err := bounty.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	admin, err := guard.EnsureAdmin(ctx, h.auth, db)
	if err != nil {
		return nil, err
	}

	var d Dispute
	if err := h.bucket.One(db, msg.ReportID, &d); err != nil {
		return nil, err
	}
	if d.Resolved {
		return nil, errors.Wrapf(ErrAlreadyResolved, "report %s", fmtID(msg.ReportID))
	}

	d.Resolved = true
	d.Upheld = msg.ApproveReport
	if _, err := h.bucket.Put(db, msg.ReportID, &d); err != nil {
		return nil, errors.Wrap(err, "cannot store dispute")
	}
	if msg.ApproveReport {
		if err := report.Approve(db, msg.ReportID); err != nil {
			return nil, errors.Wrap(err, "cannot approve report")
		}
	}
	return &bounty.DeliverResult{
		Tags: []common.KVPair{
			bounty.Pair("action", pathResolve),
			bounty.Pair("report", fmtID(msg.ReportID)),
			bounty.Pair("admin", admin.String()),
		},
	}, nil
}

func fmtID(key []byte) string {
	if len(key) != 8 {
		return "(invalid)"
	}
	return strconv.FormatInt(orm.DecodeSequence(key), 10)
}
