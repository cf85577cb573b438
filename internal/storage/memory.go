package storage

import (
	"context"
	"sync"

	"github.com/JeanCaicedo/FakeStore/pkg/types"
)

// MemoryStore keeps state for the lifetime of the process. Used in tests and
// for ephemeral runs.
type MemoryStore struct {
	mu    sync.Mutex
	state types.AppState

	// SaveErr, when set, makes every Save fail without touching the
	// stored state. Lets tests exercise the no-partial-mutation rule.
	SaveErr error
}

func NewMemory() *MemoryStore {
	return &MemoryStore{state: types.AppState{Cart: []types.CartItem{}, Wishlist: []types.Product{}}}
}

func (m *MemoryStore) Load(ctx context.Context) (types.AppState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone(), nil
}

func (m *MemoryStore) Save(ctx context.Context, state types.AppState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.state = state.Clone()
	return nil
}
