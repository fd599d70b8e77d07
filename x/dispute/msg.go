package dispute

import (
	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/errors"
)

const (
	pathRaise   = "dispute/raise"
	pathResolve = "dispute/resolve"
)

// RaiseDisputeMsg contests an unapproved report. Only the reporter of
// the report may raise a dispute, and only one dispute may exist per
// report.
type RaiseDisputeMsg struct {
	ReportID []byte `json:"report_id"`
	Reason   string `json:"reason"`
}

var _ bounty.Msg = (*RaiseDisputeMsg)(nil)

func (RaiseDisputeMsg) Path() string { return pathRaise }

func (msg RaiseDisputeMsg) Validate() error {
	if len(msg.ReportID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "report id")
	}
	if len(msg.Reason) == 0 {
		return errors.Wrap(errors.ErrEmpty, "reason")
	}
	return nil
}

// ResolveDisputeMsg closes a dispute. Only the administrator may
// resolve. If ApproveReport is set the underlying report is approved
// as part of the resolution.
type ResolveDisputeMsg struct {
	ReportID      []byte `json:"report_id"`
	ApproveReport bool   `json:"approve_report"`
}

var _ bounty.Msg = (*ResolveDisputeMsg)(nil)

func (ResolveDisputeMsg) Path() string { return pathResolve }

func (msg ResolveDisputeMsg) Validate() error {
	if len(msg.ReportID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "report id")
	}
	return nil
}
