package bounty

import (
	"crypto/sha256"
	"encoding/hex"
	"reflect"
	"strings"

	"github.com/bounty-one/bounty/errors"
)

// AddressLength is the length of all addresses. You can modify it in
// init() before any addresses are calculated, but it must not change
// during the lifetime of the kvstore.
var AddressLength = 20

// Msg is a request for the ledger to take an action (make a state
// transition). It is just the request, and must be validated by the
// Handlers. All authentication information is carried by the context.
type Msg interface {
	// Path returns the message path.
	// This is used by the Router to locate the proper Handler.
	// Msg should be created alongside the Handler that corresponds to it.
	//
	// Must be alphanumeric [0-9A-Za-z_/]+
	Path() string

	// Validate performs a sanity check on the message content. This
	// covers stateless checks only, state dependant validation belongs
	// to the handler.
	Validate() error
}

// Marshaller is anything that can be represented in binary.
//
// Marshal may validate the data before serializing it and
// unless you previously validated the struct, errors should
// be expected.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal
//
// This is separated from Marshaller, as this almost always requires
// a pointer, and functions that only need to marshal bytes can
// use the Marshaller interface to access non-pointers.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx represents a command sent to the ledger. It carries the actual
// message. Wire encoding and signature verification happen outside of
// this library, so unlike the message payload the envelope is not
// required to be serializable.
type Tx interface {
	// GetMsg returns the action we wish to communicate
	GetMsg() (Msg, error)
}

// GetPath returns the path of the message, or (missing) if no message
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// LoadMsg extracts the message from the transaction, ensures it is
// valid and loads it into the destination. Destination must be a
// pointer to the expected message type.
func LoadMsg(tx Tx, destination Msg) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	d := reflect.ValueOf(destination)
	if d.Kind() != reflect.Ptr {
		return errors.Wrap(errors.ErrType, "destination must be a pointer")
	}
	m := reflect.ValueOf(msg)
	if m.Type() != d.Type() {
		return errors.Wrapf(errors.ErrType, "want %T, got %T", destination, msg)
	}
	d.Elem().Set(m.Elem())
	return nil
}

// Address represents a collision-free, one-way digest of an identity.
// Identities are authenticated outside of this library; an address is
// all the ledger ever sees of them.
//
// It will be of size AddressLength.
type Address []byte

// Equals checks if two addresses are the same
func (a Address) Equals(b Address) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String returns a human readable string.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// MarshalJSON provides a hex representation for JSON,
// to override the standard base64 []byte encoding
func (a Address) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strings.ToUpper(hex.EncodeToString(a)) + `"`), nil
}

// UnmarshalJSON parses JSON in hex representation,
// to override the standard base64 []byte encoding
func (a *Address) UnmarshalJSON(src []byte) error {
	if len(src) < 2 || src[0] != '"' || src[len(src)-1] != '"' {
		return errors.Wrap(errors.ErrInput, "address must be a JSON string")
	}
	raw, err := hex.DecodeString(string(src[1 : len(src)-1]))
	if err != nil {
		return errors.Wrap(errors.ErrInput, "address must be hex encoded")
	}
	*a = raw
	return nil
}

// Validate returns an error if the address is not the valid size
func (a Address) Validate() error {
	switch {
	case len(a) == 0:
		return errors.Wrap(errors.ErrEmpty, "address")
	case len(a) != AddressLength:
		return errors.Wrapf(errors.ErrInput, "address length %d", len(a))
	}
	return nil
}

// NewAddress hashes and truncates into the proper size
func NewAddress(data []byte) Address {
	if data == nil {
		return nil
	}
	h := sha256.Sum256(data)
	return h[:AddressLength]
}
