package frozen

import (
	"github.com/frozen-go/frozen/ordered"
)

// IndexSet is an append-only, insertion-ordered set of unique Handle
// elements.  Insertion works through a shared *IndexSet and returns a
// pointer to the stored element's target; that pointer, and the
// element's index, stay valid for the IndexSet's entire lifetime.
//
// The shared operations never return the handle itself and never
// remove an entry; removal is only possible through the exclusive Mut
// pathway, which forfeits the append-only contract.
//
// An IndexSet must be created by New, NewWithHasher, ByTarget, FromSet,
// Collect or CollectWithHasher.  It is not safe for concurrent use.
type IndexSet[T Handle[D], D any] struct {
	set *ordered.Set[T]
	// inUse is true exactly while an operation is touching set.  A
	// hasher can run user code, and user code holding this IndexSet
	// could call back in; the nested call would mutate or observe
	// storage out from under the outer one, so it panics instead.
	// Same-goroutine defense only.
	inUse bool
}

// New returns an empty set identifying handles with built-in equality
// (for Box, that is target identity).
func New[T interface {
	comparable
	Handle[D]
}, D any]() *IndexSet[T, D] {
	return FromSet[T, D](ordered.New[T]())
}

// NewWithHasher returns an empty set identifying handles with h.
func NewWithHasher[T Handle[D], D any](h ordered.Hasher[T]) *IndexSet[T, D] {
	return FromSet[T, D](ordered.NewWithHasher(h))
}

// ByTarget returns an empty set identifying handles by their
// dereferenced contents.  This is the interning mode: inserting two
// handles with equal targets stores only the first.
func ByTarget[T Handle[D], D comparable]() *IndexSet[T, D] {
	return NewWithHasher[T, D](TargetHasher[T, D]())
}

// FromSet wraps an existing ordered set.  The IndexSet takes ownership;
// the caller must not use set afterward.
func FromSet[T Handle[D], D any](set *ordered.Set[T]) *IndexSet[T, D] {
	return &IndexSet[T, D]{set: set}
}

// Collect builds a set from the given items, collapsing duplicates.
func Collect[T interface {
	comparable
	Handle[D]
}, D any](items ...T) *IndexSet[T, D] {
	s := New[T, D]()
	for _, v := range items {
		s.Insert(v)
	}
	return s
}

// CollectWithHasher builds a set from the given items using h for
// identity, collapsing duplicates.
func CollectWithHasher[T Handle[D], D any](h ordered.Hasher[T], items ...T) *IndexSet[T, D] {
	s := NewWithHasher[T, D](h)
	for _, v := range items {
		s.Insert(v)
	}
	return s
}

func (s *IndexSet[T, D]) enter() {
	if s.inUse {
		panic("frozen: reentrant use of IndexSet")
	}
	s.inUse = true
}

func (s *IndexSet[T, D]) exit() {
	s.inUse = false
}

// Insert adds value unless an equal element is already present, and
// returns the target of whichever element ends up stored.  The
// returned pointer stays valid for the IndexSet's lifetime.
func (s *IndexSet[T, D]) Insert(value T) *D {
	_, target := s.InsertFull(value)
	return target
}

// InsertFull is Insert plus the stored element's index.  The index is
// assigned at first insertion and never changes.
func (s *IndexSet[T, D]) InsertFull(value T) (int, *D) {
	s.enter()
	defer s.exit()
	i, _ := s.set.InsertFull(value)
	return i, s.set.At(i).Target()
}

// Get returns the target of the stored element equal to key, if any.
func (s *IndexSet[T, D]) Get(key T) (*D, bool) {
	s.enter()
	defer s.exit()
	v, ok := s.set.Get(key)
	if !ok {
		return nil, false
	}
	return v.Target(), true
}

// GetFull is Get plus the element's index.
func (s *IndexSet[T, D]) GetFull(key T) (int, *D, bool) {
	s.enter()
	defer s.exit()
	i, v, ok := s.set.GetFull(key)
	if !ok {
		return 0, nil, false
	}
	return i, v.Target(), true
}

// GetIndex returns the target of the element at index i, if i is in
// range.
func (s *IndexSet[T, D]) GetIndex(i int) (*D, bool) {
	s.enter()
	defer s.exit()
	v, ok := s.set.GetIndex(i)
	if !ok {
		return nil, false
	}
	return v.Target(), true
}

// At returns the target of the element at index i, panicking if i is
// out of range.
func (s *IndexSet[T, D]) At(i int) *D {
	s.enter()
	defer s.exit()
	return s.set.At(i).Target()
}

// Contains reports whether an element equal to key is present.
func (s *IndexSet[T, D]) Contains(key T) bool {
	s.enter()
	defer s.exit()
	return s.set.Contains(key)
}

// Len returns the number of elements.  It never decreases except
// through Mut.
func (s *IndexSet[T, D]) Len() int {
	s.enter()
	defer s.exit()
	return s.set.Len()
}

// Equal reports whether both sets hold equal elements in the same
// order.  Judged by the receiver's hasher.
func (s *IndexSet[T, D]) Equal(other *IndexSet[T, D]) bool {
	if other == nil {
		return false
	}
	s.enter()
	defer s.exit()
	if other != s {
		other.enter()
		defer other.exit()
	}
	return s.set.Equal(other.set)
}

// Clone returns an independent IndexSet with a structurally equal
// underlying set and a clear reentrancy flag.
func (s *IndexSet[T, D]) Clone() *IndexSet[T, D] {
	s.enter()
	defer s.exit()
	return &IndexSet[T, D]{set: s.set.Clone()}
}

// Mut exposes the underlying ordered set for direct mutation,
// bypassing the reentrancy guard.  The caller must be the IndexSet's
// only user for as long as it holds the result: no shared operation
// may run concurrently with, or hold targets obtained during, an
// in-flight one.  Removal through Mut forfeits the append-only
// contract; targets handed out earlier remain valid memory but no
// longer correspond to set contents.
func (s *IndexSet[T, D]) Mut() *ordered.Set[T] {
	return s.set
}

// IntoSet consumes the IndexSet, yielding the raw underlying ordered
// set.  The IndexSet must not be used afterward; any further operation
// panics.
func (s *IndexSet[T, D]) IntoSet() *ordered.Set[T] {
	set := s.set
	s.set = nil
	return set
}
