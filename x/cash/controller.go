package cash

import (
	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/coin"
	"github.com/bounty-one/bounty/errors"
	"github.com/bounty-one/bounty/orm"
)

// Controller is the functionality needed by other extensions to move
// funds. BaseController is the production implementation; handlers
// take the interface so tests can stub it.
type Controller interface {
	// Balance returns the amount held by the given address. An
	// address without a wallet holds the zero value.
	Balance(db bounty.ReadOnlyKVStore, addr bounty.Address) (*coin.Coin, error)

	// MoveCoins removes funds from the source wallet and adds them
	// to the destination wallet.
	MoveCoins(db bounty.KVStore, src, dest bounty.Address, amount coin.Coin) error

	// IssueCoins creates new funds in the destination wallet.
	IssueCoins(db bounty.KVStore, dest bounty.Address, amount coin.Coin) error
}

// BaseController implements the Controller interface on top of a
// wallet bucket.
type BaseController struct {
	bucket *orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a base controller with the default wallet
// bucket.
func NewController() BaseController {
	return BaseController{bucket: NewWalletBucket()}
}

// Balance returns the amount held by the given address.
func (c BaseController) Balance(db bounty.ReadOnlyKVStore, addr bounty.Address) (*coin.Coin, error) {
	var w Wallet
	switch err := c.bucket.One(db, addr, &w); {
	case err == nil:
		return &w.Balance, nil
	case errors.ErrNotFound.Is(err):
		zero := coin.Coin{}
		return &zero, nil
	default:
		return nil, errors.Wrap(err, "cannot load wallet")
	}
}

// MoveCoins removes funds from the source wallet and adds them to the
// destination wallet. Missing funds in the source wallet is an
// ErrInsufficientAmount.
func (c BaseController) MoveCoins(db bounty.KVStore, src, dest bounty.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer %q", amount)
	}
	sender, err := c.Balance(db, src)
	if err != nil {
		return err
	}
	if !sender.IsGTE(amount) {
		return errors.Wrapf(errors.ErrInsufficientAmount, "wallet holds %q", sender)
	}
	remainder, err := sender.Subtract(amount)
	if err != nil {
		return errors.Wrap(err, "cannot debit")
	}
	if _, err := c.bucket.Put(db, src, &Wallet{Balance: remainder}); err != nil {
		return errors.Wrap(err, "cannot store sender wallet")
	}
	return c.IssueCoins(db, dest, amount)
}

// IssueCoins creates new funds in the destination wallet. It is used
// to credit external deposits and for genesis funding.
func (c BaseController) IssueCoins(db bounty.KVStore, dest bounty.Address, amount coin.Coin) error {
	recipient, err := c.Balance(db, dest)
	if err != nil {
		return err
	}
	total, err := recipient.Add(amount)
	if err != nil {
		return errors.Wrap(err, "cannot credit")
	}
	if _, err := c.bucket.Put(db, dest, &Wallet{Balance: total}); err != nil {
		return errors.Wrap(err, "cannot store recipient wallet")
	}
	return nil
}
