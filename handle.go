package frozen

import (
	"encoding/json"
	"hash/maphash"

	"github.com/frozen-go/frozen/ordered"
)

// A Handle is an indirection whose dereferenced target has a stable
// address.  Target must return the same pointer for the handle's whole
// lifetime, no matter where the handle value itself is stored, copied
// or relocated.  Only types with this property may be stored in an
// IndexSet; it is what lets the set return long-lived pointers while
// its backing storage grows.
//
// The contract is checked by convention, never at runtime.
type Handle[D any] interface {
	Target() *D
}

// Box is the simplest Handle: a value boxed on the heap at
// construction time.  Two Boxes compare equal only when they share a
// target; use ByTarget to identify boxes by their contents instead.
type Box[D any] struct {
	p *D
}

// NewBox boxes v.
func NewBox[D any](v D) Box[D] {
	return Box[D]{&v}
}

// Target returns the boxed value's address.
func (b Box[D]) Target() *D {
	return b.p
}

func (b Box[D]) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.p)
}

func (b *Box[D]) UnmarshalJSON(data []byte) error {
	v := new(D)
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	b.p = v
	return nil
}

type targetHasher[T Handle[D], D comparable] struct {
	seed maphash.Seed
}

func (h targetHasher[T, D]) Hash(v T) uint64 {
	return maphash.Comparable(h.seed, *v.Target())
}

func (h targetHasher[T, D]) Equal(a, b T) bool {
	return *a.Target() == *b.Target()
}

// TargetHasher returns a Hasher identifying handles by their
// dereferenced contents rather than by handle identity.
func TargetHasher[T Handle[D], D comparable]() ordered.Hasher[T] {
	return targetHasher[T, D]{maphash.MakeSeed()}
}
