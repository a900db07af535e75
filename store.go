package frozen

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/minio/blake2b-simd"
)

// Store is the interface for persisting and loading serialized
// snapshots.  The given string name corresponds to the content, which
// is immutable (never modified), so implementations may treat writes
// as write-once.
type Store interface {
	// Store makes the given bytes accessible by the given name.
	Store(ctx context.Context, name string, data []byte) error
	// Load retrieves the previously-stored bytes by the given name.
	Load(ctx context.Context, name string) ([]byte, error)
}

// Save writes the set's serialized form to the given store under its
// content hash and returns the name.  Equal snapshots get equal names,
// so re-saving unchanged content is cheap for write-once stores.
func (s *IndexSet[T, D]) Save(ctx context.Context, store Store) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}
	sum := blake2b.Sum256(data)
	name := base64.RawURLEncoding.EncodeToString(sum[:])
	if err := store.Store(ctx, name, data); err != nil {
		return "", fmt.Errorf("store %s: %w", name, err)
	}
	return name, nil
}

// Load replaces the set's contents with the named snapshot.  The
// receiver must already have been constructed so that element identity
// comes from its hasher.
func (s *IndexSet[T, D]) Load(ctx context.Context, store Store, name string) error {
	data, err := store.Load(ctx, name)
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	if err := json.Unmarshal(data, s); err != nil {
		return fmt.Errorf("unmarshal %s: %w", name, err)
	}
	return nil
}
