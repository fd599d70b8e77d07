package bounty

import (
	"encoding/json"
	"testing"

	"github.com/bounty-one/bounty/errors"
	"github.com/stretchr/testify/assert"
)

func TestAddress(t *testing.T) {
	a := NewAddress([]byte("first"))
	b := NewAddress([]byte("second"))

	assert.NoError(t, a.Validate())
	assert.Len(t, []byte(a), AddressLength)
	assert.True(t, a.Equals(a))
	assert.False(t, a.Equals(b))

	// Hashing is deterministic.
	assert.True(t, a.Equals(NewAddress([]byte("first"))))

	assert.True(t, errors.ErrEmpty.Is(Address(nil).Validate()))
	assert.True(t, errors.ErrInput.Is(Address([]byte{1, 2, 3}).Validate()))
}

func TestAddressJSON(t *testing.T) {
	a := NewAddress([]byte("first"))

	raw, err := json.Marshal(a)
	assert.NoError(t, err)
	assert.Equal(t, `"`+a.String()+`"`, string(raw))

	var got Address
	assert.NoError(t, json.Unmarshal(raw, &got))
	assert.True(t, a.Equals(got))

	assert.Error(t, json.Unmarshal([]byte(`"zz"`), &got))
}

type testMsg struct {
	Value string
	Err   error
}

func (m *testMsg) Path() string { return "test/msg" }

func (m *testMsg) Validate() error { return m.Err }

type otherMsg struct{}

func (m *otherMsg) Path() string    { return "test/other" }
func (m *otherMsg) Validate() error { return nil }

type msgTx struct {
	msg Msg
}

func (tx *msgTx) GetMsg() (Msg, error) { return tx.msg, nil }

func TestLoadMsg(t *testing.T) {
	var dest testMsg
	err := LoadMsg(&msgTx{msg: &testMsg{Value: "content"}}, &dest)
	assert.NoError(t, err)
	assert.Equal(t, "content", dest.Value)

	// Wrong destination type.
	var wrong otherMsg
	err = LoadMsg(&msgTx{msg: &testMsg{}}, &wrong)
	assert.True(t, errors.ErrType.Is(err))

	// Message validation failure surfaces.
	invalid := &testMsg{Err: errors.ErrState.New("bad")}
	err = LoadMsg(&msgTx{msg: invalid}, &dest)
	assert.True(t, errors.ErrState.Is(err))
}

func TestGetPath(t *testing.T) {
	assert.Equal(t, "test/msg", GetPath(&msgTx{msg: &testMsg{}}))
	assert.Equal(t, "(missing)", GetPath(&msgTx{}))
}
