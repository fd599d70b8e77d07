package committee

import (
	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/errors"
)

const (
	pathAdd       = "committee/add"
	pathRemove    = "committee/remove"
	pathThreshold = "committee/threshold"
)

// AddMemberMsg adds an address to the committee. Only the
// administrator may change the member set.
type AddMemberMsg struct {
	Member bounty.Address `json:"member"`
}

var _ bounty.Msg = (*AddMemberMsg)(nil)

func (AddMemberMsg) Path() string { return pathAdd }

func (msg AddMemberMsg) Validate() error {
	return errors.Wrap(msg.Member.Validate(), "member")
}

// RemoveMemberMsg removes an address from the committee. A removal
// that would leave fewer members than the threshold requires is
// rejected.
type RemoveMemberMsg struct {
	Member bounty.Address `json:"member"`
}

var _ bounty.Msg = (*RemoveMemberMsg)(nil)

func (RemoveMemberMsg) Path() string { return pathRemove }

func (msg RemoveMemberMsg) Validate() error {
	return errors.Wrap(msg.Member.Validate(), "member")
}

// SetThresholdMsg changes the number of votes a payout needs.
type SetThresholdMsg struct {
	Threshold int32 `json:"threshold"`
}

var _ bounty.Msg = (*SetThresholdMsg)(nil)

func (SetThresholdMsg) Path() string { return pathThreshold }

func (msg SetThresholdMsg) Validate() error {
	if msg.Threshold < 1 {
		return errors.Wrapf(ErrInvalidThreshold, "%d", msg.Threshold)
	}
	return nil
}
