package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/whiskerworks/adventure-engine/pkg/actor"
)

// MockStorage is an in-memory Storage for testing and the local console.
type MockStorage struct {
	mu         sync.RWMutex
	adventures map[uuid.UUID][]byte
	parties    map[uuid.UUID][]*actor.Cat
	pingError  error
}

var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates an empty in-memory storage.
func NewMockStorage() *MockStorage {
	return &MockStorage{
		adventures: make(map[uuid.UUID][]byte),
		parties:    make(map[uuid.UUID][]*actor.Cat),
	}
}

// SetPingError configures the mock to fail on ping with the given error.
// Pass nil to restore success.
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

func (m *MockStorage) Close() error {
	return nil
}

func (m *MockStorage) SaveAdventure(ctx context.Context, partyID uuid.UUID, blob []byte) error {
	if blob == nil {
		return errors.New("adventure blob cannot be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(blob))
	copy(stored, blob)
	m.adventures[partyID] = stored
	return nil
}

func (m *MockStorage) LoadAdventure(ctx context.Context, partyID uuid.UUID) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	blob, ok := m.adventures[partyID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

func (m *MockStorage) DeleteAdventure(ctx context.Context, partyID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.adventures, partyID)
	return nil
}

func (m *MockStorage) SaveParty(ctx context.Context, partyID uuid.UUID, cats []*actor.Cat) error {
	if cats == nil {
		return errors.New("party cannot be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parties[partyID] = cats
	return nil
}

func (m *MockStorage) LoadParty(ctx context.Context, partyID uuid.UUID) ([]*actor.Cat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cats, ok := m.parties[partyID]
	if !ok {
		return nil, ErrNotFound
	}
	return cats, nil
}

func (m *MockStorage) ListParties(ctx context.Context) ([]uuid.UUID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]uuid.UUID, 0, len(m.parties))
	for id := range m.parties {
		ids = append(ids, id)
	}
	return ids, nil
}
