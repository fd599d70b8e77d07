package committee

import (
	"context"
	"testing"

	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/bountytest"
	"github.com/bounty-one/bounty/errors"
	"github.com/bounty-one/bounty/gconf"
	"github.com/bounty-one/bounty/store"
	"github.com/bounty-one/bounty/x/guard"
	"github.com/stretchr/testify/assert"
)

func TestCommitteeValidate(t *testing.T) {
	a := bountytest.NewAddress()
	b := bountytest.NewAddress()

	cases := map[string]struct {
		committee Committee
		wantErr   *errors.Error
	}{
		"valid": {
			committee: Committee{Members: []bounty.Address{a, b}, Threshold: 2},
		},
		"no members": {
			committee: Committee{Threshold: 1},
			wantErr:   errors.ErrEmpty,
		},
		"zero threshold": {
			committee: Committee{Members: []bounty.Address{a}},
			wantErr:   ErrInvalidThreshold,
		},
		"threshold above member count": {
			committee: Committee{Members: []bounty.Address{a}, Threshold: 2},
			wantErr:   ErrBelowThreshold,
		},
		"malformed member": {
			committee: Committee{Members: []bounty.Address{{1, 2}}, Threshold: 1},
			wantErr:   errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.committee.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err))
			}
		})
	}
}

func setup(t *testing.T, members []bounty.Address, threshold int32) (bounty.CacheableKVStore, bounty.Address) {
	t.Helper()
	db := store.MemStore()
	admin := bountytest.NewAddress()
	assert.NoError(t, gconf.Save(db, "guard", &guard.Configuration{Admin: admin}))
	assert.NoError(t, saveCommittee(db, &Committee{Members: members, Threshold: threshold}))
	return db, admin
}

func TestAddMember(t *testing.T) {
	a := bountytest.NewAddress()
	b := bountytest.NewAddress()
	db, admin := setup(t, []bounty.Address{a}, 1)

	h := AddMemberHandler{auth: &bountytest.Auth{Signer: admin}}
	_, err := h.Deliver(context.Background(), db, &bountytest.Tx{Msg: &AddMemberMsg{Member: b}})
	assert.NoError(t, err)

	ok, err := IsMember(db, b)
	assert.NoError(t, err)
	assert.True(t, ok)

	// Adding twice must fail.
	_, err = h.Deliver(context.Background(), db, &bountytest.Tx{Msg: &AddMemberMsg{Member: b}})
	assert.True(t, ErrAlreadyMember.Is(err))
}

func TestAddMemberOnlyAdmin(t *testing.T) {
	a := bountytest.NewAddress()
	db, _ := setup(t, []bounty.Address{a}, 1)

	h := AddMemberHandler{auth: &bountytest.Auth{Signer: a}}
	_, err := h.Deliver(context.Background(), db, &bountytest.Tx{Msg: &AddMemberMsg{Member: bountytest.NewAddress()}})
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestRemoveMember(t *testing.T) {
	a := bountytest.NewAddress()
	b := bountytest.NewAddress()
	db, admin := setup(t, []bounty.Address{a, b}, 1)

	h := RemoveMemberHandler{auth: &bountytest.Auth{Signer: admin}}
	_, err := h.Deliver(context.Background(), db, &bountytest.Tx{Msg: &RemoveMemberMsg{Member: b}})
	assert.NoError(t, err)

	ok, err := IsMember(db, b)
	assert.NoError(t, err)
	assert.False(t, ok)

	// Removing an address that is not a member must fail.
	_, err = h.Deliver(context.Background(), db, &bountytest.Tx{Msg: &RemoveMemberMsg{Member: b}})
	assert.True(t, ErrNotMember.Is(err))
}

func TestRemoveMemberKeepsThresholdInvariant(t *testing.T) {
	a := bountytest.NewAddress()
	b := bountytest.NewAddress()
	db, admin := setup(t, []bounty.Address{a, b}, 2)

	h := RemoveMemberHandler{auth: &bountytest.Auth{Signer: admin}}
	_, err := h.Deliver(context.Background(), db, &bountytest.Tx{Msg: &RemoveMemberMsg{Member: b}})
	assert.True(t, ErrBelowThreshold.Is(err))

	// The member set is unchanged.
	ok, err := IsMember(db, b)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestSetThreshold(t *testing.T) {
	a := bountytest.NewAddress()
	b := bountytest.NewAddress()
	db, admin := setup(t, []bounty.Address{a, b}, 1)

	h := SetThresholdHandler{auth: &bountytest.Auth{Signer: admin}}
	_, err := h.Deliver(context.Background(), db, &bountytest.Tx{Msg: &SetThresholdMsg{Threshold: 2}})
	assert.NoError(t, err)

	got, err := Threshold(db)
	assert.NoError(t, err)
	assert.Equal(t, int32(2), got)

	// A threshold above the member count must fail.
	_, err = h.Deliver(context.Background(), db, &bountytest.Tx{Msg: &SetThresholdMsg{Threshold: 3}})
	assert.True(t, ErrBelowThreshold.Is(err))
}

func TestFromGenesis(t *testing.T) {
	a := bountytest.NewAddress()
	b := bountytest.NewAddress()
	db := store.MemStore()
	opts := bounty.Options{
		"committee": []byte(`{
			"members": ["` + a.String() + `", "` + b.String() + `"],
			"threshold": 2
		}`),
	}

	var ini Initializer
	assert.NoError(t, ini.FromGenesis(opts, db))

	got, err := Threshold(db)
	assert.NoError(t, err)
	assert.Equal(t, int32(2), got)

	ok, err := IsMember(db, a)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestFromGenesisInvalidCommittee(t *testing.T) {
	a := bountytest.NewAddress()
	db := store.MemStore()
	opts := bounty.Options{
		"committee": []byte(`{"members": ["` + a.String() + `"], "threshold": 2}`),
	}

	var ini Initializer
	err := ini.FromGenesis(opts, db)
	assert.True(t, ErrBelowThreshold.Is(err))
}
