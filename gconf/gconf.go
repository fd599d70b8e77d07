/*
Package gconf provides access to per-package configuration singletons.

Each extension keeps at most one configuration entity in the database,
stored under a key derived from the package name. Configuration is
loaded from the genesis and can be amended at runtime by a handler
that the owning extension registers.
*/
package gconf

import (
	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/errors"
)

// Store is a subset of the bucket interface that a configuration
// needs. A configuration is a singleton so there is no key management.
type Store interface {
	Get(key []byte) []byte
	Set(key, value []byte)
}

// ValidMarshaller is implemented by each configuration entity.
type ValidMarshaller interface {
	bounty.Persistent
	Validate() error
}

// Save stores the given configuration in the database. Before saving,
// the configuration is validated.
func Save(db Store, pkg string, src ValidMarshaller) error {
	key := dbKey(pkg)
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "configuration %q", key)
	}
	raw, err := src.Marshal()
	if err != nil {
		return errors.Wrapf(err, "cannot marshal %q", key)
	}
	db.Set(key, raw)
	return nil
}

// Load copies the configuration stored for the given package into dst.
func Load(db Store, pkg string, dst bounty.Persistent) error {
	key := dbKey(pkg)
	raw := db.Get(key)
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "configuration %q", key)
	}
	if err := dst.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "cannot unmarshal %q", key)
	}
	return nil
}

func dbKey(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// InitConfig loads a configuration from the genesis "conf" section and
// saves it in the database. This is the usual way for an extension to
// initialize its configuration.
func InitConfig(db Store, opts bounty.Options, pkg string, conf ValidMarshaller) error {
	var confOpts bounty.Options
	if err := opts.ReadOptions("conf", &confOpts); err != nil {
		return errors.Wrap(err, "cannot load conf")
	}
	if err := confOpts.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(err, "cannot load %q configuration", pkg)
	}
	if err := Save(db, pkg, conf); err != nil {
		return errors.Wrapf(err, "cannot save %q configuration", pkg)
	}
	return nil
}
