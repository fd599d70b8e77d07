package report

import (
	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/errors"
)

const (
	pathSubmit  = "report/submit"
	pathApprove = "report/approve"
)

// SubmitReportMsg registers a new vulnerability report. Anyone may
// submit. If Reporter is left empty it defaults to the main signer.
type SubmitReportMsg struct {
	Reporter    bounty.Address `json:"reporter"`
	Description string         `json:"description"`
	Severity    int32          `json:"severity"`
}

var _ bounty.Msg = (*SubmitReportMsg)(nil)

func (SubmitReportMsg) Path() string { return pathSubmit }

func (msg SubmitReportMsg) Validate() error {
	if msg.Reporter != nil {
		if err := msg.Reporter.Validate(); err != nil {
			return errors.Wrap(err, "reporter")
		}
	}
	if len(msg.Description) == 0 {
		return errors.Wrap(errors.ErrEmpty, "description")
	}
	if msg.Severity < 0 || msg.Severity > MaxSeverity {
		return errors.Wrapf(ErrInvalidSeverity, "%d", msg.Severity)
	}
	return nil
}

// ApproveReportMsg marks a report as a valid finding. Only the
// administrator may approve.
type ApproveReportMsg struct {
	ReportID []byte `json:"report_id"`
}

var _ bounty.Msg = (*ApproveReportMsg)(nil)

func (ApproveReportMsg) Path() string { return pathApprove }

func (msg ApproveReportMsg) Validate() error {
	if len(msg.ReportID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "report id")
	}
	return nil
}
