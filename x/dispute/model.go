/*
Package dispute lets a reporter contest a report that was not
approved. A dispute is raised by the reporter and resolved by the
administrator, who may approve the underlying report as part of the
resolution.
*/
package dispute

import (
	"encoding/json"

	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/errors"
	"github.com/bounty-one/bounty/orm"
)

var (
	// ErrDuplicateDispute is returned when a report is disputed twice.
	ErrDuplicateDispute = errors.Register(110, "report already disputed")

	// ErrAlreadyResolved is returned when resolving a dispute twice.
	ErrAlreadyResolved = errors.Register(111, "dispute already resolved")
)

// Dispute is a contest raised against the handling of a report. It is
// keyed by the report ID, enforcing at most one dispute per report.
type Dispute struct {
	Reporter bounty.Address `json:"reporter"`
	Reason   string         `json:"reason"`
	Resolved bool           `json:"resolved"`
	// Upheld is set on resolution if the dispute went in the
	// reporter's favor.
	Upheld bool `json:"upheld"`
}

var _ orm.Model = (*Dispute)(nil)

func (d *Dispute) Marshal() ([]byte, error) {
	return json.Marshal(d)
}

func (d *Dispute) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, d)
}

func (d *Dispute) Validate() error {
	if err := d.Reporter.Validate(); err != nil {
		return errors.Wrap(err, "reporter")
	}
	if len(d.Reason) == 0 {
		return errors.Wrap(errors.ErrEmpty, "reason")
	}
	return nil
}

// NewDisputeBucket returns a bucket for keeping disputes, keyed by
// report ID.
func NewDisputeBucket() *orm.ModelBucket {
	return orm.NewModelBucket("dispute")
}

// GetDispute loads the dispute raised for the given report, if any.
func GetDispute(db bounty.ReadOnlyKVStore, reportID []byte) (*Dispute, error) {
	var d Dispute
	if err := NewDisputeBucket().One(db, reportID, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
