package guard

import (
	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/errors"
)

const (
	pathPause    = "guard/pause"
	pathUnpause  = "guard/unpause"
	pathReassign = "guard/reassign"

	// pathPrefix marks the messages that pass the decorator even
	// while the ledger is paused.
	pathPrefix = "guard/"
)

// PauseMsg halts the ledger. Only the administrator may issue it.
type PauseMsg struct{}

var _ bounty.Msg = (*PauseMsg)(nil)

func (PauseMsg) Path() string { return pathPause }

func (PauseMsg) Validate() error { return nil }

// UnpauseMsg lifts the halt. Only the administrator may issue it.
type UnpauseMsg struct{}

var _ bounty.Msg = (*UnpauseMsg)(nil)

func (UnpauseMsg) Path() string { return pathUnpause }

func (UnpauseMsg) Validate() error { return nil }

// ReassignAdminMsg transfers the administrator role to another
// address. Only the current administrator may issue it.
type ReassignAdminMsg struct {
	NewAdmin bounty.Address `json:"new_admin"`
}

var _ bounty.Msg = (*ReassignAdminMsg)(nil)

func (ReassignAdminMsg) Path() string { return pathReassign }

func (msg ReassignAdminMsg) Validate() error {
	return errors.Wrap(msg.NewAdmin.Validate(), "new admin")
}
