package cash

import (
	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/coin"
	"github.com/bounty-one/bounty/errors"
)

const pathDeposit = "cash/deposit"

// DepositMsg credits the custody pool. Anyone may fund the pool, the
// same way anyone could send funds to the original custody account.
type DepositMsg struct {
	Amount coin.Coin `json:"amount"`
}

var _ bounty.Msg = (*DepositMsg)(nil)

func (DepositMsg) Path() string { return pathDeposit }

func (msg DepositMsg) Validate() error {
	if err := msg.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !msg.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "deposit must be positive")
	}
	return nil
}
