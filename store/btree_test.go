package store

import (
	"testing"

	"github.com/bounty-one/bounty/bountytest/assert"
)

func TestMemStoreSetGetDelete(t *testing.T) {
	db := MemStore()

	assert.Nil(t, db.Get([]byte("a")))
	assert.Equal(t, false, db.Has([]byte("a")))

	db.Set([]byte("a"), []byte("1"))
	assert.Equal(t, []byte("1"), db.Get([]byte("a")))
	assert.Equal(t, true, db.Has([]byte("a")))

	db.Set([]byte("a"), []byte("2"))
	assert.Equal(t, []byte("2"), db.Get([]byte("a")))

	db.Delete([]byte("a"))
	assert.Nil(t, db.Get([]byte("a")))
	assert.Equal(t, false, db.Has([]byte("a")))
}

func TestSetNilKeyPanics(t *testing.T) {
	db := MemStore()
	assert.Panics(t, func() { db.Set(nil, []byte("1")) })
}

func TestCacheWrapWrite(t *testing.T) {
	db := MemStore()
	db.Set([]byte("a"), []byte("1"))

	cache := db.CacheWrap()
	cache.Set([]byte("b"), []byte("2"))
	cache.Delete([]byte("a"))

	// Parent is untouched until Write.
	assert.Equal(t, []byte("1"), db.Get([]byte("a")))
	assert.Nil(t, db.Get([]byte("b")))

	// Cache sees its own writes layered over the parent.
	assert.Nil(t, cache.Get([]byte("a")))
	assert.Equal(t, []byte("2"), cache.Get([]byte("b")))

	cache.Write()
	assert.Nil(t, db.Get([]byte("a")))
	assert.Equal(t, []byte("2"), db.Get([]byte("b")))
}

func TestCacheWrapDiscard(t *testing.T) {
	db := MemStore()
	db.Set([]byte("a"), []byte("1"))

	cache := db.CacheWrap()
	cache.Set([]byte("a"), []byte("changed"))
	cache.Set([]byte("b"), []byte("2"))
	cache.Discard()

	assert.Equal(t, []byte("1"), db.Get([]byte("a")))
	assert.Nil(t, db.Get([]byte("b")))
}

func TestNestedCacheWrap(t *testing.T) {
	db := MemStore()
	db.Set([]byte("a"), []byte("1"))

	outer := db.CacheWrap()
	outer.Set([]byte("b"), []byte("2"))

	inner := outer.CacheWrap()
	inner.Set([]byte("c"), []byte("3"))
	inner.Write()

	// Inner write lands in the outer wrap, not the parent.
	assert.Equal(t, []byte("3"), outer.Get([]byte("c")))
	assert.Nil(t, db.Get([]byte("c")))

	outer.Write()
	assert.Equal(t, []byte("2"), db.Get([]byte("b")))
	assert.Equal(t, []byte("3"), db.Get([]byte("c")))
}

func TestIterator(t *testing.T) {
	db := MemStore()
	db.Set([]byte("a"), []byte("1"))
	db.Set([]byte("b"), []byte("2"))
	db.Set([]byte("c"), []byte("3"))

	var keys []string
	it := db.Iterator([]byte("a"), []byte("c"))
	for ; it.Valid(); it.Next() {
		keys = append(keys, string(it.Key()))
	}
	it.Close()
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestCacheWrapIteratorMergesOverlay(t *testing.T) {
	db := MemStore()
	db.Set([]byte("a"), []byte("1"))
	db.Set([]byte("b"), []byte("2"))

	cache := db.CacheWrap()
	cache.Delete([]byte("a"))
	cache.Set([]byte("c"), []byte("3"))
	cache.Set([]byte("b"), []byte("patched"))

	var got []string
	it := cache.Iterator(nil, nil)
	for ; it.Valid(); it.Next() {
		got = append(got, string(it.Key())+"="+string(it.Value()))
	}
	it.Close()
	assert.Equal(t, []string{"b=patched", "c=3"}, got)
}
