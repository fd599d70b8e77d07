/*
Package store provides an in-memory KVStore implementation backed by a
btree, along with a btree-based CacheWrap strategy. A cache wrap
collects writes in an overlay and applies them to the parent store on
Write, or drops them all on Discard, which gives every delivered
transaction all-or-nothing semantics.
*/
package store

import (
	"bytes"

	"github.com/google/btree"

	"github.com/bounty-one/bounty"
)

// degree controls the branching of all btrees created here.
const degree = 2

// MemStore returns an empty, btree backed key-value store. There is no
// persistence, all state is lost when the process ends.
func MemStore() bounty.CacheableKVStore {
	return &BTreeStore{
		bt: btree.New(degree),
	}
}

// BTreeStore is a simple btree backed KVStore.
type BTreeStore struct {
	bt *btree.BTree
}

var _ bounty.CacheableKVStore = (*BTreeStore)(nil)

// Get reads the value stored under the key, nil if missing.
func (s *BTreeStore) Get(key []byte) []byte {
	assertValidKey(key)
	item := s.bt.Get(bkey{key})
	if item == nil {
		return nil
	}
	return item.(setItem).value
}

// Has checks for existence of the key.
func (s *BTreeStore) Has(key []byte) bool {
	assertValidKey(key)
	return s.bt.Has(bkey{key})
}

// Set stores the value under the key.
func (s *BTreeStore) Set(key, value []byte) {
	assertValidKey(key)
	s.bt.ReplaceOrInsert(newSetItem(key, value))
}

// Delete removes the key.
func (s *BTreeStore) Delete(key []byte) {
	assertValidKey(key)
	s.bt.Delete(bkey{key})
}

// Iterator over a domain of keys in ascending order. End is exclusive.
func (s *BTreeStore) Iterator(start, end []byte) bounty.Iterator {
	var pairs []keyValue
	collect := func(item btree.Item) bool {
		it := item.(setItem)
		pairs = append(pairs, keyValue{key: it.key, value: it.value})
		return true
	}
	ascend(s.bt, start, end, collect)
	return &sliceIterator{pairs: pairs}
}

// CacheWrap returns a cache wrap that can be later written to this
// store, or rolled back.
func (s *BTreeStore) CacheWrap() bounty.KVCacheWrap {
	return newCacheWrap(s)
}

///////////////////////////////////////////////
// Actual CacheWrap implementation

// BTreeCacheWrap places a btree overlay over a backing KVStore. Reads
// consult the overlay first, writes only touch the overlay until the
// wrap is written.
type BTreeCacheWrap struct {
	bt   *btree.BTree
	back bounty.CacheableKVStore
}

var _ bounty.KVCacheWrap = (*BTreeCacheWrap)(nil)

func newCacheWrap(back bounty.CacheableKVStore) *BTreeCacheWrap {
	return &BTreeCacheWrap{
		bt:   btree.New(degree),
		back: back,
	}
}

// CacheWrap layers another btree on top of this one.
// Don't change horses in mid-stream....
func (b *BTreeCacheWrap) CacheWrap() bounty.KVCacheWrap {
	return newCacheWrap(b)
}

// Write syncs with the underlying store and then cleans up.
func (b *BTreeCacheWrap) Write() {
	b.bt.Ascend(func(item btree.Item) bool {
		switch t := item.(type) {
		case setItem:
			b.back.Set(t.key, t.value)
		case deletedItem:
			b.back.Delete(t.key)
		}
		return true
	})
	b.Discard()
}

// Discard invalidates this CacheWrap and releases all data.
func (b *BTreeCacheWrap) Discard() {
	b.bt.Clear(false)
}

// Set writes to the overlay.
func (b *BTreeCacheWrap) Set(key, value []byte) {
	assertValidKey(key)
	b.bt.ReplaceOrInsert(newSetItem(key, value))
}

// Delete marks the key deleted in the overlay.
func (b *BTreeCacheWrap) Delete(key []byte) {
	assertValidKey(key)
	b.bt.ReplaceOrInsert(newDeletedItem(key))
}

// Get reads from the overlay if present, else the backing store.
func (b *BTreeCacheWrap) Get(key []byte) []byte {
	assertValidKey(key)
	if res := b.bt.Get(bkey{key}); res != nil {
		switch t := res.(type) {
		case setItem:
			return t.value
		case deletedItem:
			return nil
		}
	}
	return b.back.Get(key)
}

// Has reads from the overlay if present, else the backing store.
func (b *BTreeCacheWrap) Has(key []byte) bool {
	if res := b.bt.Get(bkey{key}); res != nil {
		switch res.(type) {
		case setItem:
			return true
		case deletedItem:
			return false
		}
	}
	return b.back.Has(key)
}

// Iterator over a domain of keys in ascending order, combining the
// overlay with the backing store.
func (b *BTreeCacheWrap) Iterator(start, end []byte) bounty.Iterator {
	// Materialize the parent range, then patch it with overlay state.
	merged := make(map[string][]byte)
	parent := b.back.Iterator(start, end)
	for ; parent.Valid(); parent.Next() {
		merged[string(parent.Key())] = parent.Value()
	}
	parent.Close()

	ascend(b.bt, start, end, func(item btree.Item) bool {
		switch t := item.(type) {
		case setItem:
			merged[string(t.key)] = t.value
		case deletedItem:
			delete(merged, string(t.key))
		}
		return true
	})

	pairs := make([]keyValue, 0, len(merged))
	for k, v := range merged {
		pairs = append(pairs, keyValue{key: []byte(k), value: v})
	}
	sortPairs(pairs)
	return &sliceIterator{pairs: pairs}
}

// ascend walks the [start, end) range of the btree in ascending order.
// Nil start or end mean unbounded.
func ascend(bt *btree.BTree, start, end []byte, fn btree.ItemIterator) {
	bounded := func(item btree.Item) bool {
		key := item.(keyer).Key()
		if end != nil && bytes.Compare(key, end) >= 0 {
			return false
		}
		return fn(item)
	}
	if start == nil {
		bt.Ascend(bounded)
	} else {
		bt.AscendGreaterOrEqual(bkey{start}, bounded)
	}
}

func assertValidKey(key []byte) {
	if key == nil {
		panic("nil key is not allowed")
	}
}

/////////////////////////////////////////////////////////
// Items to write to btree

// we enforce all data in our btree implements keyer so we
// can compare nicely
type keyer interface {
	Key() []byte
}

// bkey implements keyer and btree.Item
// and may be used for queries or embedded in data to store
type bkey struct {
	key []byte
}

var _ keyer = bkey{}
var _ btree.Item = bkey{}

func (k bkey) Key() []byte {
	return k.key
}

// Less returns true iff second argument is greater than first
//
// panics if the item to compare doesn't implement keyer.
func (k bkey) Less(item btree.Item) bool {
	cmp := item.(keyer).Key()
	return bytes.Compare(k.key, cmp) < 0
}

type deletedItem struct {
	bkey
}

func newDeletedItem(key []byte) deletedItem {
	return deletedItem{bkey{key}}
}

type setItem struct {
	bkey
	value []byte
}

func newSetItem(key, value []byte) setItem {
	return setItem{bkey{key}, value}
}
