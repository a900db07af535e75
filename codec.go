package frozen

import (
	"encoding/json"
	"errors"

	"github.com/minio/blake2b-simd"
)

// MarshalJSON encodes the set as exactly the underlying ordered set's
// form: an array of elements in insertion order, with no additional
// framing.
func (s *IndexSet[T, D]) MarshalJSON() ([]byte, error) {
	s.enter()
	defer s.exit()
	return json.Marshal(s.set)
}

// UnmarshalJSON replaces the set's contents with the decoded elements,
// collapsing duplicates.  The receiver must already have been
// constructed: element identity comes from its hasher, not from the
// encoded form.  Decoding re-inserts every element, which runs the
// hasher, so it holds the reentrancy guard like any other operation
// and finishes with the flag clear.
func (s *IndexSet[T, D]) UnmarshalJSON(data []byte) error {
	if s.set == nil {
		return errors.New("frozen: unmarshal into an IndexSet with no hasher; construct it with New, ByTarget or NewWithHasher first")
	}
	s.enter()
	defer s.exit()
	return json.Unmarshal(data, s.set)
}

// Fingerprint returns the BLAKE2b-256 digest of the set's serialized
// form.  Two sets with equal elements in the same order and the same
// element encoding fingerprint identically.
func (s *IndexSet[T, D]) Fingerprint() ([32]byte, error) {
	data, err := s.MarshalJSON()
	if err != nil {
		return [32]byte{}, err
	}
	return blake2b.Sum256(data), nil
}
