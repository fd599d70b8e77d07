package orm

import (
	"encoding/binary"

	"github.com/bounty-one/bounty"
)

// Sequence maintains a monotonic counter in the datastore. The first
// value it returns is 1, never 0, so a returned id is always a valid
// object key.
type Sequence struct {
	id []byte
}

// NewSequence returns a sequence with a key derived from the bucket
// and sequence names.
func NewSequence(bucket, name string) Sequence {
	id := "_s." + bucket + ":" + name
	return Sequence{
		id: []byte(id),
	}
}

// NextVal increments the sequence and returns its state as an 8 byte
// big endian encoded value.
func (s Sequence) NextVal(db bounty.KVStore) []byte {
	_, bz := s.increment(db)
	return bz
}

// NextInt increments the sequence and returns its state as an int64.
func (s Sequence) NextInt(db bounty.KVStore) int64 {
	val, _ := s.increment(db)
	return val
}

// Latest returns the current value of the sequence without modifying
// it. Zero means the sequence was never incremented.
func (s Sequence) Latest(db bounty.ReadOnlyKVStore) int64 {
	raw := db.Get(s.id)
	if raw == nil {
		return 0
	}
	return int64(binary.BigEndian.Uint64(raw))
}

func (s Sequence) increment(db bounty.KVStore) (int64, []byte) {
	val := s.Latest(db) + 1
	bz := EncodeSequence(val)
	db.Set(s.id, bz)
	return val, bz
}

// EncodeSequence converts an int64 to an 8 byte big endian key.
func EncodeSequence(val int64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(val))
	return bz
}

// DecodeSequence converts an 8 byte big endian key back to an int64.
func DecodeSequence(bz []byte) int64 {
	return int64(binary.BigEndian.Uint64(bz))
}
