package gconf

import (
	"encoding/json"
	"testing"

	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/errors"
	"github.com/bounty-one/bounty/store"
	"github.com/stretchr/testify/assert"
)

type testConfig struct {
	Owner string `json:"owner"`
	Limit int64  `json:"limit"`
}

func (c *testConfig) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

func (c *testConfig) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, c)
}

func (c *testConfig) Validate() error {
	if c.Owner == "" {
		return errors.Wrap(errors.ErrEmpty, "owner")
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	db := store.MemStore()

	err := Save(db, "testpkg", &testConfig{Owner: "alice", Limit: 4})
	assert.NoError(t, err)

	var got testConfig
	assert.NoError(t, Load(db, "testpkg", &got))
	assert.Equal(t, "alice", got.Owner)
	assert.Equal(t, int64(4), got.Limit)
}

func TestSaveValidates(t *testing.T) {
	db := store.MemStore()

	err := Save(db, "testpkg", &testConfig{Limit: 4})
	assert.True(t, errors.ErrEmpty.Is(err))
}

func TestLoadMissing(t *testing.T) {
	db := store.MemStore()

	var got testConfig
	err := Load(db, "testpkg", &got)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestInitConfig(t *testing.T) {
	db := store.MemStore()
	opts := bounty.Options{
		"conf": json.RawMessage(`{"testpkg": {"owner": "bob", "limit": 2}}`),
	}

	var conf testConfig
	assert.NoError(t, InitConfig(db, opts, "testpkg", &conf))

	var got testConfig
	assert.NoError(t, Load(db, "testpkg", &got))
	assert.Equal(t, "bob", got.Owner)
	assert.Equal(t, int64(2), got.Limit)
}
