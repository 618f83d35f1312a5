package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"starksnap/internal/state"
)

// StateDocument is one wallet's whole state, stored as JSON.
type StateDocument struct {
	WalletID  string `gorm:"primaryKey"`
	Data      string `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

// StateStore persists the state document of a single wallet.
type StateStore struct {
	db       *PostgresDB
	walletID string
}

func NewStateStore(db *PostgresDB, walletID string) *StateStore {
	return &StateStore{
		db:       db,
		walletID: walletID,
	}
}

// Migrate creates the documents table.
func (s *StateStore) Migrate(ctx context.Context) error {
	return s.db.MigrateTable(ctx, &StateDocument{})
}

func (s *StateStore) Get(ctx context.Context) (*state.SnapState, error) {
	var doc StateDocument
	err := s.db.GetOneBy(ctx, "wallet_id", s.walletID, &doc)
	if errors.Is(err, ErrNotFound) {
		return state.NewSnapState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get state document: %w", err)
	}

	st := state.NewSnapState()
	if err := json.Unmarshal([]byte(doc.Data), st); err != nil {
		return nil, fmt.Errorf("unmarshal state document: %w", err)
	}
	return st, nil
}

func (s *StateStore) Set(ctx context.Context, st *state.SnapState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal state document: %w", err)
	}

	doc := &StateDocument{
		WalletID: s.walletID,
		Data:     string(data),
	}
	if err := s.db.Upsert(ctx, doc); err != nil {
		return fmt.Errorf("save state document: %w", err)
	}
	return nil
}
