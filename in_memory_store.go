package frozen

import (
	"context"
	"fmt"
	"sync"
)

type inMemoryStore struct {
	snapshots map[string][]byte
	l         sync.Mutex
}

// NewInMemoryStore provides a Store that keeps serialized snapshots in
// a map, usually for testing.
func NewInMemoryStore() Store {
	return &inMemoryStore{}
}

func (ims *inMemoryStore) Store(ctx context.Context, name string, data []byte) error {
	ims.l.Lock()
	if ims.snapshots == nil {
		ims.snapshots = map[string][]byte{name: data}
	} else {
		ims.snapshots[name] = data
	}
	ims.l.Unlock()
	return nil
}

func (ims *inMemoryStore) Load(ctx context.Context, name string) ([]byte, error) {
	ims.l.Lock()
	data, ok := ims.snapshots[name]
	ims.l.Unlock()
	if !ok {
		return nil, fmt.Errorf("inMemoryStore snapshot not found for %s", name)
	}
	return data, nil
}
