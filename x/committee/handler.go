package committee

import (
	"github.com/tendermint/tendermint/libs/common"

	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/errors"
	"github.com/bounty-one/bounty/x"
	"github.com/bounty-one/bounty/x/guard"
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r bounty.Registry, auth x.Authenticator) {
	r.Handle(pathAdd, AddMemberHandler{auth: auth})
	r.Handle(pathRemove, RemoveMemberHandler{auth: auth})
	r.Handle(pathThreshold, SetThresholdHandler{auth: auth})
}

// AddMemberHandler extends the committee.
type AddMemberHandler struct {
	auth x.Authenticator
}

var _ bounty.Handler = AddMemberHandler{}

func (h AddMemberHandler) Deliver(ctx bounty.Context, db bounty.KVStore, tx bounty.Tx) (*bounty.DeliverResult, error) {
	var msg AddMemberMsg
	if err := bounty.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if _, err := guard.EnsureAdmin(ctx, h.auth, db); err != nil {
		return nil, err
	}

	c, err := loadCommittee(db)
	if err != nil {
		return nil, err
	}
	if c.Index(msg.Member) != -1 {
		return nil, errors.Wrapf(ErrAlreadyMember, "%s", msg.Member)
	}
	c.Members = append(c.Members, msg.Member)
	if err := saveCommittee(db, c); err != nil {
		return nil, err
	}
	return &bounty.DeliverResult{
		Tags: []common.KVPair{
			bounty.Pair("action", pathAdd),
			bounty.Pair("member", msg.Member.String()),
		},
	}, nil
}

// RemoveMemberHandler shrinks the committee.
type RemoveMemberHandler struct {
	auth x.Authenticator
}

var _ bounty.Handler = RemoveMemberHandler{}

func (h RemoveMemberHandler) Deliver(ctx bounty.Context, db bounty.KVStore, tx bounty.Tx) (*bounty.DeliverResult, error) {
	var msg RemoveMemberMsg
	if err := bounty.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if _, err := guard.EnsureAdmin(ctx, h.auth, db); err != nil {
		return nil, err
	}

	c, err := loadCommittee(db)
	if err != nil {
		return nil, err
	}
	i := c.Index(msg.Member)
	if i == -1 {
		return nil, errors.Wrapf(ErrNotMember, "%s", msg.Member)
	}
	c.Members = append(c.Members[:i], c.Members[i+1:]...)
	// saveCommittee validates, so a removal below the threshold is
	// rejected before anything is written.
	if err := saveCommittee(db, c); err != nil {
		return nil, err
	}
	return &bounty.DeliverResult{
		Tags: []common.KVPair{
			bounty.Pair("action", pathRemove),
			bounty.Pair("member", msg.Member.String()),
		},
	}, nil
}

// SetThresholdHandler changes the vote threshold.
type SetThresholdHandler struct {
	auth x.Authenticator
}

var _ bounty.Handler = SetThresholdHandler{}

func (h SetThresholdHandler) Deliver(ctx bounty.Context, db bounty.KVStore, tx bounty.Tx) (*bounty.DeliverResult, error) {
	var msg SetThresholdMsg
	if err := bounty.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if _, err := guard.EnsureAdmin(ctx, h.auth, db); err != nil {
		return nil, err
	}

	if err := SetThreshold(db, msg.Threshold); err != nil {
		return nil, err
	}
	return &bounty.DeliverResult{
		Tags: []common.KVPair{
			bounty.Pair("action", pathThreshold),
		},
	}, nil
}
