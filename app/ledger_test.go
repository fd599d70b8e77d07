package app

import (
	"testing"

	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/bountytest"
	"github.com/bounty-one/bounty/coin"
	"github.com/bounty-one/bounty/errors"
	"github.com/bounty-one/bounty/x/committee"
	"github.com/bounty-one/bounty/x/dispute"
	"github.com/bounty-one/bounty/x/guard"
	"github.com/bounty-one/bounty/x/payout"
	"github.com/bounty-one/bounty/x/report"
	"github.com/stretchr/testify/assert"
)

type env struct {
	ledger   *Ledger
	admin    bounty.Address
	reporter bounty.Address
	memberA  bounty.Address
	memberB  bounty.Address
}

func newEnv(t *testing.T) *env {
	t.Helper()
	e := &env{
		admin:    bountytest.NewAddress(),
		reporter: bountytest.NewAddress(),
		memberA:  bountytest.NewAddress(),
		memberB:  bountytest.NewAddress(),
	}

	opts := bounty.Options{
		"conf": []byte(`{
			"guard": {"admin": "` + e.admin.String() + `"},
			"payout": {"reward_rate": {"whole": 100, "ticker": "IOV"}}
		}`),
		"committee": []byte(`{
			"members": ["` + e.memberA.String() + `", "` + e.memberB.String() + `"],
			"threshold": 2
		}`),
		"cash": []byte(`{"pool": {"whole": 10000, "ticker": "IOV"}}`),
	}

	var err error
	e.ledger, err = NewLedger(opts, nil)
	assert.NoError(t, err)
	return e
}

func TestGenesisInvariants(t *testing.T) {
	admin := bountytest.NewAddress()
	member := bountytest.NewAddress()

	cases := map[string]struct {
		opts    bounty.Options
		wantErr *errors.Error
	}{
		"missing administrator": {
			opts: bounty.Options{
				"conf": []byte(`{"payout": {"reward_rate": {"whole": 1, "ticker": "IOV"}}}`),
				"committee": []byte(`{
					"members": ["` + member.String() + `"], "threshold": 1
				}`),
			},
			wantErr: errors.ErrEmpty,
		},
		"threshold above member count": {
			opts: bounty.Options{
				"conf": []byte(`{
					"guard": {"admin": "` + admin.String() + `"},
					"payout": {"reward_rate": {"whole": 1, "ticker": "IOV"}}
				}`),
				"committee": []byte(`{
					"members": ["` + member.String() + `"], "threshold": 2
				}`),
			},
			wantErr: committee.ErrBelowThreshold,
		},
		"empty committee": {
			opts: bounty.Options{
				"conf": []byte(`{
					"guard": {"admin": "` + admin.String() + `"},
					"payout": {"reward_rate": {"whole": 1, "ticker": "IOV"}}
				}`),
			},
			wantErr: errors.ErrEmpty,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			_, err := NewLedger(tc.opts, nil)
			assert.True(t, tc.wantErr.Is(err))
		})
	}
}

// TestPayoutLifecycle walks the full happy path: submit, approve,
// request, two votes, execute, funds move.
func TestPayoutLifecycle(t *testing.T) {
	e := newEnv(t)

	res, err := e.ledger.DeliverTx(NewTx(&report.SubmitReportMsg{
		Description: "critical reentrancy",
		Severity:    8,
	}), e.reporter)
	assert.NoError(t, err)
	reportID := res.Data

	_, err = e.ledger.DeliverTx(NewTx(&report.ApproveReportMsg{ReportID: reportID}), e.admin)
	assert.NoError(t, err)

	res, err = e.ledger.DeliverTx(NewTx(&payout.RequestPayoutMsg{ReportID: reportID}), e.admin)
	assert.NoError(t, err)
	payoutID := res.Data

	// One vote is not enough for a threshold of two.
	_, err = e.ledger.DeliverTx(NewTx(&payout.VotePayoutMsg{PayoutID: payoutID}), e.memberA)
	assert.NoError(t, err)
	_, err = e.ledger.DeliverTx(NewTx(&payout.ExecutePayoutMsg{PayoutID: payoutID}), e.reporter)
	assert.True(t, payout.ErrThresholdNotMet.Is(err))

	_, err = e.ledger.DeliverTx(NewTx(&payout.VotePayoutMsg{PayoutID: payoutID}), e.memberB)
	assert.NoError(t, err)
	_, err = e.ledger.DeliverTx(NewTx(&payout.ExecutePayoutMsg{PayoutID: payoutID}), e.reporter)
	assert.NoError(t, err)

	// 100 IOV per severity point, severity 8.
	balance, err := e.ledger.PoolBalance()
	assert.NoError(t, err)
	assert.True(t, balance.Equals(coin.NewCoin(9200, 0, "IOV")))

	rep, err := e.ledger.Report(reportID)
	assert.NoError(t, err)
	assert.True(t, rep.Paid)

	p, err := e.ledger.Payout(payoutID)
	assert.NoError(t, err)
	assert.True(t, p.Executed)

	// No double payment for the same report.
	_, err = e.ledger.DeliverTx(NewTx(&payout.RequestPayoutMsg{ReportID: reportID}), e.admin)
	assert.True(t, payout.ErrAlreadyRequested.Is(err))
}

func TestDisputeLifecycle(t *testing.T) {
	e := newEnv(t)

	res, err := e.ledger.DeliverTx(NewTx(&report.SubmitReportMsg{
		Description: "ignored ssrf",
		Severity:    6,
	}), e.reporter)
	assert.NoError(t, err)
	reportID := res.Data

	_, err = e.ledger.DeliverTx(NewTx(&dispute.RaiseDisputeMsg{
		ReportID: reportID,
		Reason:   "triage was wrong",
	}), e.reporter)
	assert.NoError(t, err)

	// Only one dispute per report.
	_, err = e.ledger.DeliverTx(NewTx(&dispute.RaiseDisputeMsg{
		ReportID: reportID,
		Reason:   "asking twice",
	}), e.reporter)
	assert.True(t, dispute.ErrDuplicateDispute.Is(err))

	_, err = e.ledger.DeliverTx(NewTx(&dispute.ResolveDisputeMsg{
		ReportID:      reportID,
		ApproveReport: true,
	}), e.admin)
	assert.NoError(t, err)

	d, err := e.ledger.Dispute(reportID)
	assert.NoError(t, err)
	assert.True(t, d.Resolved)
	assert.True(t, d.Upheld)

	rep, err := e.ledger.Report(reportID)
	assert.NoError(t, err)
	assert.True(t, rep.Approved)
}

func TestPauseBlocksTransitionsNotQueries(t *testing.T) {
	e := newEnv(t)

	res, err := e.ledger.DeliverTx(NewTx(&report.SubmitReportMsg{
		Description: "weak session ids",
		Severity:    3,
	}), e.reporter)
	assert.NoError(t, err)
	reportID := res.Data

	_, err = e.ledger.DeliverTx(NewTx(&guard.PauseMsg{}), e.admin)
	assert.NoError(t, err)

	// Transitions are rejected while paused.
	_, err = e.ledger.DeliverTx(NewTx(&report.SubmitReportMsg{
		Description: "another finding",
		Severity:    2,
	}), e.reporter)
	assert.True(t, guard.ErrPaused.Is(err))
	_, err = e.ledger.DeliverTx(NewTx(&report.ApproveReportMsg{ReportID: reportID}), e.admin)
	assert.True(t, guard.ErrPaused.Is(err))

	// Queries still work.
	paused, err := e.ledger.Paused()
	assert.NoError(t, err)
	assert.True(t, paused)
	rep, err := e.ledger.Report(reportID)
	assert.NoError(t, err)
	assert.Equal(t, int32(3), rep.Severity)

	// The administrator can always unpause.
	_, err = e.ledger.DeliverTx(NewTx(&guard.UnpauseMsg{}), e.admin)
	assert.NoError(t, err)
	_, err = e.ledger.DeliverTx(NewTx(&report.ApproveReportMsg{ReportID: reportID}), e.admin)
	assert.NoError(t, err)
}

func TestCommitteeManagement(t *testing.T) {
	e := newEnv(t)
	newcomer := bountytest.NewAddress()

	_, err := e.ledger.DeliverTx(NewTx(&committee.AddMemberMsg{Member: newcomer}), e.admin)
	assert.NoError(t, err)
	ok, err := e.ledger.IsMember(newcomer)
	assert.NoError(t, err)
	assert.True(t, ok)

	_, err = e.ledger.DeliverTx(NewTx(&committee.SetThresholdMsg{Threshold: 3}), e.admin)
	assert.NoError(t, err)
	threshold, err := e.ledger.Threshold()
	assert.NoError(t, err)
	assert.Equal(t, int32(3), threshold)

	// Removing below the threshold is rejected.
	_, err = e.ledger.DeliverTx(NewTx(&committee.RemoveMemberMsg{Member: newcomer}), e.admin)
	assert.True(t, committee.ErrBelowThreshold.Is(err))
}

func TestAdminReassignment(t *testing.T) {
	e := newEnv(t)
	successor := bountytest.NewAddress()

	_, err := e.ledger.DeliverTx(NewTx(&guard.ReassignAdminMsg{NewAdmin: successor}), e.admin)
	assert.NoError(t, err)

	got, err := e.ledger.Admin()
	assert.NoError(t, err)
	assert.Equal(t, successor, got)

	// The former administrator is powerless now.
	_, err = e.ledger.DeliverTx(NewTx(&guard.PauseMsg{}), e.admin)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	_, err = e.ledger.DeliverTx(NewTx(&guard.PauseMsg{}), successor)
	assert.NoError(t, err)
}

// TestFailedTransactionLeavesNoTrace delivers a transaction that fails
// after its first writes and checks that no partial write survived.
func TestFailedTransactionLeavesNoTrace(t *testing.T) {
	admin := bountytest.NewAddress()
	reporter := bountytest.NewAddress()
	member := bountytest.NewAddress()

	// The pool holds less than one severity 8 reward.
	opts := bounty.Options{
		"conf": []byte(`{
			"guard": {"admin": "` + admin.String() + `"},
			"payout": {"reward_rate": {"whole": 100, "ticker": "IOV"}}
		}`),
		"committee": []byte(`{"members": ["` + member.String() + `"], "threshold": 1}`),
		"cash":      []byte(`{"pool": {"whole": 500, "ticker": "IOV"}}`),
	}
	ledger, err := NewLedger(opts, nil)
	assert.NoError(t, err)

	res, err := ledger.DeliverTx(NewTx(&report.SubmitReportMsg{
		Description: "critical reentrancy",
		Severity:    8,
	}), reporter)
	assert.NoError(t, err)
	reportID := res.Data

	_, err = ledger.DeliverTx(NewTx(&report.ApproveReportMsg{ReportID: reportID}), admin)
	assert.NoError(t, err)
	res, err = ledger.DeliverTx(NewTx(&payout.RequestPayoutMsg{ReportID: reportID}), admin)
	assert.NoError(t, err)
	payoutID := res.Data

	_, err = ledger.DeliverTx(NewTx(&payout.VotePayoutMsg{PayoutID: payoutID}), member)
	assert.NoError(t, err)

	// Execution fails moving the funds, after the executed and paid
	// flags were already written inside the transaction.
	_, err = ledger.DeliverTx(NewTx(&payout.ExecutePayoutMsg{PayoutID: payoutID}), reporter)
	assert.True(t, errors.ErrInsufficientAmount.Is(err))

	p, err := ledger.Payout(payoutID)
	assert.NoError(t, err)
	assert.False(t, p.Executed)
	assert.Len(t, p.Voters, 1)

	rep, err := ledger.Report(reportID)
	assert.NoError(t, err)
	assert.False(t, rep.Paid)

	balance, err := ledger.PoolBalance()
	assert.NoError(t, err)
	assert.True(t, balance.Equals(coin.NewCoin(500, 0, "IOV")))
}

func TestUnknownMessagePath(t *testing.T) {
	e := newEnv(t)

	tx := &bountytest.Tx{Msg: &routedMsg{path: "no/such/route"}}
	_, err := e.ledger.DeliverTx(tx, e.reporter)
	assert.True(t, errors.ErrMsg.Is(err))
}
