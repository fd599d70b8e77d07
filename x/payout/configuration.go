package payout

import (
	"encoding/json"

	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/coin"
	"github.com/bounty-one/bounty/errors"
	"github.com/bounty-one/bounty/gconf"
)

// Configuration is the payout singleton. The reward rate is the coin
// value of a single severity point; the reward of a report is the rate
// multiplied by the report severity. Keeping the rate in state means a
// product decision to change it is a configuration change, not a code
// change.
type Configuration struct {
	RewardRate coin.Coin `json:"reward_rate"`
}

func (c *Configuration) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, c)
}

func (c *Configuration) Validate() error {
	if err := c.RewardRate.Validate(); err != nil {
		return errors.Wrap(err, "reward rate")
	}
	if !c.RewardRate.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "reward rate must be positive")
	}
	return nil
}

func loadConf(db gconf.Store) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "payout", &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

// Reward computes the reward for a report of the given severity.
func Reward(db gconf.Store, severity int32) (coin.Coin, error) {
	conf, err := loadConf(db)
	if err != nil {
		return coin.Coin{}, err
	}
	reward, err := conf.RewardRate.Multiply(int64(severity))
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "cannot compute reward")
	}
	return reward, nil
}

// Initializer fulfils the Initializer interface to load data from the
// genesis file
type Initializer struct{}

var _ bounty.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial payout configuration from genesis and
// save it in the database.
func (*Initializer) FromGenesis(opts bounty.Options, db bounty.KVStore) error {
	var conf Configuration
	return gconf.InitConfig(db, opts, "payout", &conf)
}
