package guard

import (
	"encoding/json"

	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/errors"
	"github.com/bounty-one/bounty/gconf"
	"github.com/bounty-one/bounty/x"
)

// Configuration is the guard singleton. It names the administrator and
// carries the halt switch. When Paused is true the decorator rejects
// every message but the guard's own, so the administrator can always
// recover a halted ledger.
type Configuration struct {
	Admin  bounty.Address `json:"admin"`
	Paused bool           `json:"paused"`
}

func (c *Configuration) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, c)
}

func (c *Configuration) Validate() error {
	if err := c.Admin.Validate(); err != nil {
		return errors.Wrap(err, "admin")
	}
	return nil
}

func loadConf(db gconf.Store) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "guard", &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

func saveConf(db gconf.Store, conf *Configuration) error {
	return gconf.Save(db, "guard", conf)
}

// Admin returns the current administrator address.
func Admin(db gconf.Store) (bounty.Address, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	return conf.Admin, nil
}

// IsPaused returns the current state of the halt switch.
func IsPaused(db gconf.Store) (bool, error) {
	conf, err := loadConf(db)
	if err != nil {
		return false, err
	}
	return conf.Paused, nil
}

// EnsureAdmin returns an ErrUnauthorized unless the current
// administrator is among the authenticated actors. Handlers that gate
// on the administrator role share this check.
func EnsureAdmin(ctx bounty.Context, auth x.Authenticator, db gconf.Store) (bounty.Address, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !auth.HasAddress(ctx, conf.Admin) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "not the administrator")
	}
	return conf.Admin, nil
}

// Initializer fulfils the Initializer interface to load data from the
// genesis file
type Initializer struct{}

var _ bounty.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial guard configuration from genesis and
// save it in the database.
func (*Initializer) FromGenesis(opts bounty.Options, db bounty.KVStore) error {
	var conf Configuration
	return gconf.InitConfig(db, opts, "guard", &conf)
}
