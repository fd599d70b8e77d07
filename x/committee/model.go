/*
Package committee manages the payout committee: the set of members
whose votes authorize payouts, and the threshold of votes a payout
needs. The registry keeps a single committee.

The invariant 0 < threshold <= len(members) holds after every mutation
and at genesis, so a payout can always gather enough votes.
*/
package committee

import (
	"encoding/json"

	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/errors"
	"github.com/bounty-one/bounty/orm"
)

var (
	// ErrAlreadyMember is returned when adding a member twice.
	ErrAlreadyMember = errors.Register(120, "already a member")

	// ErrNotMember is returned when removing an address that is not
	// a member.
	ErrNotMember = errors.Register(121, "not a member")

	// ErrBelowThreshold is returned when a mutation would leave
	// fewer members than the threshold requires.
	ErrBelowThreshold = errors.Register(122, "fewer members than threshold")

	// ErrInvalidThreshold is returned for a threshold outside of the
	// accepted range.
	ErrInvalidThreshold = errors.Register(123, "invalid threshold")
)

// committeeKey is the fixed key of the committee singleton.
var committeeKey = []byte("members")

// Committee is the voter set and its vote threshold.
type Committee struct {
	Members   []bounty.Address `json:"members"`
	Threshold int32            `json:"threshold"`
}

var _ orm.Model = (*Committee)(nil)

func (c *Committee) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

func (c *Committee) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, c)
}

func (c *Committee) Validate() error {
	if len(c.Members) == 0 {
		return errors.Wrap(errors.ErrEmpty, "members")
	}
	for i, m := range c.Members {
		if err := m.Validate(); err != nil {
			return errors.Wrapf(err, "member %d", i)
		}
	}
	if c.Threshold < 1 {
		return errors.Wrapf(ErrInvalidThreshold, "%d", c.Threshold)
	}
	if int(c.Threshold) > len(c.Members) {
		return errors.Wrapf(ErrBelowThreshold, "%d members, threshold %d", len(c.Members), c.Threshold)
	}
	return nil
}

// Index returns the position of the given address in the member list,
// or -1.
func (c *Committee) Index(addr bounty.Address) int {
	for i, m := range c.Members {
		if addr.Equals(m) {
			return i
		}
	}
	return -1
}

// NewCommitteeBucket returns a bucket holding the committee singleton.
func NewCommitteeBucket() *orm.ModelBucket {
	return orm.NewModelBucket("committee")
}

func loadCommittee(db bounty.ReadOnlyKVStore) (*Committee, error) {
	var c Committee
	if err := NewCommitteeBucket().One(db, committeeKey, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func saveCommittee(db bounty.KVStore, c *Committee) error {
	_, err := NewCommitteeBucket().Put(db, committeeKey, c)
	return err
}

// IsMember returns true if the given address is a committee member.
func IsMember(db bounty.ReadOnlyKVStore, addr bounty.Address) (bool, error) {
	c, err := loadCommittee(db)
	if err != nil {
		return false, err
	}
	return c.Index(addr) != -1, nil
}

// SetThreshold stores a new vote threshold, enforcing the committee
// invariant.
func SetThreshold(db bounty.KVStore, threshold int32) error {
	c, err := loadCommittee(db)
	if err != nil {
		return err
	}
	c.Threshold = threshold
	return saveCommittee(db, c)
}

// Threshold returns the number of votes a payout needs.
func Threshold(db bounty.ReadOnlyKVStore) (int32, error) {
	c, err := loadCommittee(db)
	if err != nil {
		return 0, err
	}
	return c.Threshold, nil
}

// Initializer fulfils the Initializer interface to load data from the
// genesis file
type Initializer struct{}

var _ bounty.Initializer = (*Initializer)(nil)

// FromGenesis will parse the initial committee from genesis and save
// it in the database. Failing the committee invariant fails the whole
// genesis.
func (*Initializer) FromGenesis(opts bounty.Options, db bounty.KVStore) error {
	var c Committee
	if err := opts.ReadOptions("committee", &c); err != nil {
		return errors.Wrap(err, "cannot load committee")
	}
	return errors.Wrap(saveCommittee(db, &c), "cannot save committee")
}
