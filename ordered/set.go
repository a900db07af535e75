// Package ordered provides an insertion-ordered set of unique elements
// with stable positions.  Element identity is pluggable: the default
// uses Go's built-in comparison, but a custom Hasher can identify
// elements by any content, which is what makes interning possible.
package ordered

import (
	"encoding/json"
	"errors"
	"fmt"
	"hash/maphash"
	"iter"
)

// Hasher supplies the identity of set elements. Two elements for which
// Equal reports true must produce the same Hash.
type Hasher[T any] interface {
	Hash(T) uint64
	Equal(a, b T) bool
}

type comparableHasher[T comparable] struct {
	seed maphash.Seed
}

func (h comparableHasher[T]) Hash(v T) uint64 {
	return maphash.Comparable(h.seed, v)
}

func (h comparableHasher[T]) Equal(a, b T) bool {
	return a == b
}

// HashComparable returns a Hasher using Go's built-in equality, seeded
// per call, so hash values are not stable across sets or processes.
func HashComparable[T comparable]() Hasher[T] {
	return comparableHasher[T]{maphash.MakeSeed()}
}

// Set is an ordered collection of unique elements. Elements keep the
// position they were first inserted at; positions are assigned
// sequentially and only ever change on Remove.
//
// A Set must be created by New, NewWithHasher or Collect. It is not
// safe for concurrent use.
type Set[T any] struct {
	hasher Hasher[T]
	items  []T
	// table maps a hash to the positions of all elements with that hash.
	table map[uint64][]int
}

// New returns an empty set identifying elements with built-in equality.
func New[T comparable]() *Set[T] {
	return NewWithHasher(HashComparable[T]())
}

// NewWithHasher returns an empty set identifying elements with h.
func NewWithHasher[T any](h Hasher[T]) *Set[T] {
	return &Set[T]{
		hasher: h,
		table:  map[uint64][]int{},
	}
}

// Collect builds a set from the given items, collapsing duplicates; the
// first occurrence wins its position.
func Collect[T comparable](items ...T) *Set[T] {
	return CollectWithHasher(HashComparable[T](), items...)
}

func CollectWithHasher[T any](h Hasher[T], items ...T) *Set[T] {
	s := NewWithHasher(h)
	for _, v := range items {
		s.Insert(v)
	}
	return s
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	return len(s.items)
}

func (s *Set[T]) find(h uint64, v T) (int, bool) {
	for _, i := range s.table[h] {
		if s.hasher.Equal(s.items[i], v) {
			return i, true
		}
	}
	return 0, false
}

// InsertFull adds v unless an equal element is already present, and
// returns the position of the stored equal element, plus whether v was
// actually inserted.
func (s *Set[T]) InsertFull(v T) (int, bool) {
	h := s.hasher.Hash(v)
	if i, ok := s.find(h, v); ok {
		return i, false
	}
	i := len(s.items)
	s.items = append(s.items, v)
	s.table[h] = append(s.table[h], i)
	return i, true
}

// Insert adds v unless an equal element is already present, and reports
// whether v was inserted.
func (s *Set[T]) Insert(v T) bool {
	_, inserted := s.InsertFull(v)
	return inserted
}

// Get returns the stored element equal to v, if any.
func (s *Set[T]) Get(v T) (T, bool) {
	if i, ok := s.find(s.hasher.Hash(v), v); ok {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// GetFull is Get plus the element's position.
func (s *Set[T]) GetFull(v T) (int, T, bool) {
	if i, ok := s.find(s.hasher.Hash(v), v); ok {
		return i, s.items[i], true
	}
	var zero T
	return 0, zero, false
}

// Contains reports whether an element equal to v is present.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.find(s.hasher.Hash(v), v)
	return ok
}

// GetIndex returns the element at position i, if i is in range.
func (s *Set[T]) GetIndex(i int) (T, bool) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[i], true
}

// At returns the element at position i, panicking if i is out of range.
func (s *Set[T]) At(i int) T {
	if i < 0 || i >= len(s.items) {
		panic(fmt.Sprintf("ordered: index %d out of range [0:%d]", i, len(s.items)))
	}
	return s.items[i]
}

// Remove deletes the element equal to v, preserving the relative order
// of the remaining elements, and reports whether anything was removed.
// Positions after the removed element shift down by one.
func (s *Set[T]) Remove(v T) bool {
	i, ok := s.find(s.hasher.Hash(v), v)
	if !ok {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.reindex()
	return true
}

func (s *Set[T]) reindex() {
	s.table = make(map[uint64][]int, len(s.items))
	for i, v := range s.items {
		h := s.hasher.Hash(v)
		s.table[h] = append(s.table[h], i)
	}
}

// All iterates over position/element pairs in insertion order.
func (s *Set[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Items returns the elements in insertion order.
func (s *Set[T]) Items() []T {
	items := make([]T, len(s.items))
	copy(items, s.items)
	return items
}

// Equal reports whether both sets hold equal elements in the same
// order, judged by the receiver's hasher.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if other == nil || len(s.items) != len(other.items) {
		return false
	}
	for i := range s.items {
		if !s.hasher.Equal(s.items[i], other.items[i]) {
			return false
		}
	}
	return true
}

// Clone returns an independent set with the same elements, order and
// hasher.
func (s *Set[T]) Clone() *Set[T] {
	c := &Set[T]{
		hasher: s.hasher,
		items:  make([]T, len(s.items)),
		table:  make(map[uint64][]int, len(s.table)),
	}
	copy(c.items, s.items)
	for h, bucket := range s.table {
		c.table[h] = append([]int(nil), bucket...)
	}
	return c
}

// MarshalJSON encodes the set as an array of elements in insertion
// order, with no additional framing.
func (s *Set[T]) MarshalJSON() ([]byte, error) {
	if s.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.items)
}

// UnmarshalJSON replaces the set's contents with the decoded elements,
// collapsing duplicates. The set must already have a hasher.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	if s.hasher == nil {
		return errors.New("ordered: cannot unmarshal into a set with no hasher")
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	s.items = nil
	s.table = map[uint64][]int{}
	for _, v := range items {
		s.InsertFull(v)
	}
	return nil
}
