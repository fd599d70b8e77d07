/*
Package report implements the report registry. A report is a submitted
vulnerability: who found it, what it is and how bad it is. Approval by
the administrator makes it eligible for a payout.
*/
package report

import (
	"encoding/json"

	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/errors"
	"github.com/bounty-one/bounty/orm"
)

var (
	// ErrInvalidSeverity is returned when a severity is outside of
	// the accepted scale.
	ErrInvalidSeverity = errors.Register(100, "invalid severity")

	// ErrAlreadyApproved is returned when approving a report twice.
	ErrAlreadyApproved = errors.Register(101, "report already approved")
)

// MaxSeverity is the top of the severity scale.
const MaxSeverity = 10

// Report is a single submitted vulnerability report.
type Report struct {
	Reporter    bounty.Address `json:"reporter"`
	Description string         `json:"description"`
	Severity    int32          `json:"severity"`
	Approved    bool           `json:"approved"`
	// PayoutRequested is set when a payout was opened for this
	// report, Paid when that payout was executed. Both flags guard
	// against paying a report twice.
	PayoutRequested bool `json:"payout_requested"`
	Paid            bool `json:"paid"`
}

var _ orm.Model = (*Report)(nil)

func (r *Report) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func (r *Report) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, r)
}

func (r *Report) Validate() error {
	if err := r.Reporter.Validate(); err != nil {
		return errors.Wrap(err, "reporter")
	}
	if len(r.Description) == 0 {
		return errors.Wrap(errors.ErrEmpty, "description")
	}
	if r.Severity < 0 || r.Severity > MaxSeverity {
		return errors.Wrapf(ErrInvalidSeverity, "%d", r.Severity)
	}
	return nil
}

// NewReportBucket returns a bucket for keeping reports, with IDs
// generated by a sequence counter.
func NewReportBucket() *orm.ModelBucket {
	return orm.NewModelBucket("report", orm.WithIDSequence("id"))
}

// GetReport loads the report with the given ID. The returned value is
// a snapshot copy.
func GetReport(db bounty.ReadOnlyKVStore, reportID []byte) (*Report, error) {
	var r Report
	if err := NewReportBucket().One(db, reportID, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
