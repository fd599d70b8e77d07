package store

import (
	"bytes"
	"sort"
)

type keyValue struct {
	key   []byte
	value []byte
}

func sortPairs(pairs []keyValue) {
	sort.Slice(pairs, func(i, j int) bool {
		return bytes.Compare(pairs[i].key, pairs[j].key) < 0
	})
}

// sliceIterator wraps an already materialized, sorted range of pairs.
type sliceIterator struct {
	pairs []keyValue
	index int
}

func (s *sliceIterator) Valid() bool {
	return s.index < len(s.pairs)
}

func (s *sliceIterator) Next() {
	s.assertValid()
	s.index++
}

func (s *sliceIterator) Key() []byte {
	s.assertValid()
	return s.pairs[s.index].key
}

func (s *sliceIterator) Value() []byte {
	s.assertValid()
	return s.pairs[s.index].value
}

func (s *sliceIterator) Close() {
	s.pairs = nil
	s.index = 0
}

func (s *sliceIterator) assertValid() {
	if !s.Valid() {
		panic("iterator is invalid")
	}
}
