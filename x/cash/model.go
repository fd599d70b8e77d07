/*
Package cash keeps the custody funds. It defines wallets holding a
coin balance, a controller to move funds between them, and the
well-known pool address that holds the funds payouts are drawn from.
*/
package cash

import (
	"encoding/json"

	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/coin"
	"github.com/bounty-one/bounty/errors"
	"github.com/bounty-one/bounty/orm"
)

// PoolAddress is the address of the custody pool. The pool is a plain
// wallet with a well-known address, not an account anyone can sign
// for.
var PoolAddress = bounty.NewAddress([]byte("cash/pool"))

// Wallet is the balance kept for a single address.
type Wallet struct {
	Balance coin.Coin `json:"balance"`
}

var _ orm.Model = (*Wallet)(nil)

func (w *Wallet) Marshal() ([]byte, error) {
	return json.Marshal(w)
}

func (w *Wallet) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, w)
}

func (w *Wallet) Validate() error {
	if err := w.Balance.Validate(); err != nil {
		return errors.Wrap(err, "balance")
	}
	if !w.Balance.IsNonNegative() {
		return errors.Wrap(errors.ErrModel, "negative balance")
	}
	return nil
}

// NewWalletBucket returns a bucket for keeping wallets, keyed by the
// owner address.
func NewWalletBucket() *orm.ModelBucket {
	return orm.NewModelBucket("wllt")
}
