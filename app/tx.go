package app

import (
	"github.com/bounty-one/bounty"
)

// Tx is the concrete transaction envelope delivered to the ledger. It
// carries a single message; wire encoding and signature verification
// belong to the transport layer in front of the ledger.
type Tx struct {
	Msg bounty.Msg
}

var _ bounty.Tx = (*Tx)(nil)

// NewTx wraps a message in a transaction envelope.
func NewTx(msg bounty.Msg) *Tx {
	return &Tx{Msg: msg}
}

// GetMsg returns the message this transaction carries.
func (tx *Tx) GetMsg() (bounty.Msg, error) {
	return tx.Msg, nil
}
