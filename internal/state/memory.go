package state

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore keeps the serialized document in process memory. Every Get
// returns an independent copy.
type MemoryStore struct {
	mu   sync.RWMutex
	data []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(_ context.Context) (*SnapState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := NewSnapState()
	if len(s.data) == 0 {
		return st, nil
	}
	if err := json.Unmarshal(s.data, st); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	st.ensureCollections()
	return st, nil
}

func (s *MemoryStore) Set(_ context.Context, st *SnapState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return nil
}
