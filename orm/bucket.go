package orm

import (
	"github.com/bounty-one/bounty"
	"github.com/bounty-one/bounty/errors"
)

// Model is implemented by any entity that can be stored in a bucket.
type Model interface {
	bounty.Persistent
	Validate() error
}

// ModelBucket is a storage engine for a single model type. All keys
// it writes are namespaced with the bucket name so that many buckets
// can share one KVStore.
type ModelBucket struct {
	name   string
	prefix []byte
	idSeq  *Sequence
}

// NewModelBucket returns a bucket instance. Bucket name must be a
// short, unique identifier of the stored entity type.
func NewModelBucket(name string, opts ...ModelBucketOption) *ModelBucket {
	b := &ModelBucket{
		name:   name,
		prefix: []byte(name + ":"),
	}
	for _, fn := range opts {
		fn(b)
	}
	return b
}

// ModelBucketOption is implemented by any function that can configure
// ModelBucket during initialization.
type ModelBucketOption func(b *ModelBucket)

// WithIDSequence enables the bucket to generate an 8 byte ID for any
// entity stored with a nil key.
func WithIDSequence(name string) ModelBucketOption {
	return func(b *ModelBucket) {
		s := NewSequence(b.name, name)
		b.idSeq = &s
	}
}

// One loads a single entity into dest. ErrNotFound is returned if an
// entity with the given key does not exist.
func (b *ModelBucket) One(db bounty.ReadOnlyKVStore, key []byte, dest Model) error {
	raw := db.Get(b.dbKey(key))
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s %x", b.name, key)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "cannot unmarshal %s %x", b.name, key)
	}
	return nil
}

// Has returns nil if an entity with the given key exists, ErrNotFound
// otherwise.
func (b *ModelBucket) Has(db bounty.ReadOnlyKVStore, key []byte) error {
	if key == nil {
		// nil key is never written so it cannot exist
		return errors.Wrap(errors.ErrNotFound, b.name)
	}
	if !db.Has(b.dbKey(key)) {
		return errors.Wrapf(errors.ErrNotFound, "%s %x", b.name, key)
	}
	return nil
}

// Put saves the given model in the database. The model is validated
// before being written. If the key is nil and an ID sequence was
// configured for this bucket, the next sequence value is used. The key
// the model was stored under is returned.
func (b *ModelBucket) Put(db bounty.KVStore, key []byte, m Model) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid %s", b.name)
	}
	if key == nil {
		if b.idSeq == nil {
			return nil, errors.Wrapf(errors.ErrInput, "%s requires a key", b.name)
		}
		key = b.idSeq.NextVal(db)
	}
	raw, err := m.Marshal()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot marshal %s", b.name)
	}
	db.Set(b.dbKey(key), raw)
	return key, nil
}

// Delete removes the entity with the given key. ErrNotFound is
// returned if it does not exist.
func (b *ModelBucket) Delete(db bounty.KVStore, key []byte) error {
	if err := b.Has(db, key); err != nil {
		return err
	}
	db.Delete(b.dbKey(key))
	return nil
}

func (b *ModelBucket) dbKey(key []byte) []byte {
	return append(b.prefix, key...)
}
