package main

import (
	"encoding/json"

	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/errors"
	"github.com/bounty-one/bounty/x/cash"
	"github.com/bounty-one/bounty/x/committee"
	"github.com/bounty-one/bounty/x/dispute"
	"github.com/bounty-one/bounty/x/guard"
	"github.com/bounty-one/bounty/x/payout"
	"github.com/bounty-one/bounty/x/report"
)

// msgTypes maps a message path to a constructor of the empty message.
var msgTypes = map[string]func() bounty.Msg{
	"report/submit":       func() bounty.Msg { return &report.SubmitReportMsg{} },
	"report/approve":      func() bounty.Msg { return &report.ApproveReportMsg{} },
	"dispute/raise":       func() bounty.Msg { return &dispute.RaiseDisputeMsg{} },
	"dispute/resolve":     func() bounty.Msg { return &dispute.ResolveDisputeMsg{} },
	"committee/add":       func() bounty.Msg { return &committee.AddMemberMsg{} },
	"committee/remove":    func() bounty.Msg { return &committee.RemoveMemberMsg{} },
	"committee/threshold": func() bounty.Msg { return &committee.SetThresholdMsg{} },
	"payout/request":      func() bounty.Msg { return &payout.RequestPayoutMsg{} },
	"payout/vote":         func() bounty.Msg { return &payout.VotePayoutMsg{} },
	"payout/execute":      func() bounty.Msg { return &payout.ExecutePayoutMsg{} },
	"cash/deposit":        func() bounty.Msg { return &cash.DepositMsg{} },
	"guard/pause":         func() bounty.Msg { return &guard.PauseMsg{} },
	"guard/unpause":       func() bounty.Msg { return &guard.UnpauseMsg{} },
	"guard/reassign":      func() bounty.Msg { return &guard.ReassignAdminMsg{} },
}

// decodeMsg builds the message registered under the given path from
// its JSON payload.
func decodeMsg(path string, payload json.RawMessage) (bounty.Msg, error) {
	newMsg, ok := msgTypes[path]
	if !ok {
		return nil, errors.Wrapf(errors.ErrMsg, "unknown path %q", path)
	}
	msg := newMsg()
	if len(payload) != 0 {
		if err := json.Unmarshal(payload, msg); err != nil {
			return nil, errors.Wrap(errors.ErrInput, err.Error())
		}
	}
	return msg, nil
}
