package state

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"starksnap/internal/filter"
)

type TransactionRequestStateManager struct {
	*StateManager[*TransactionRequest]
}

func NewTransactionRequestStateManager(store Store, lock *StoreLock) *TransactionRequestStateManager {
	return &TransactionRequestStateManager{
		StateManager: NewStateManager(store, lock, func(st *SnapState) *[]*TransactionRequest { return &st.TransactionRequests }),
	}
}

// TransactionRequestQuery selects a request by id, interface id or both.
type TransactionRequestQuery struct {
	ID          string
	InterfaceID string
}

func (m *TransactionRequestStateManager) GetTransactionRequest(ctx context.Context, query TransactionRequestQuery, st *SnapState) (*TransactionRequest, error) {
	var filters []filter.Filter[*TransactionRequest]
	if query.ID != "" {
		filters = append(filters, RequestIDFilter(query.ID))
	}
	if query.InterfaceID != "" {
		filters = append(filters, InterfaceIDFilter(query.InterfaceID))
	}
	if len(filters) == 0 {
		return nil, nil
	}
	return m.Find(ctx, st, filters...)
}

// CreateTransactionRequest stores a new request, assigning an id when none is set.
func (m *TransactionRequestStateManager) CreateTransactionRequest(ctx context.Context, req *TransactionRequest) (*TransactionRequest, error) {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.SelectedFeeToken == "" {
		req.SelectedFeeToken = FeeTokenETH
	}

	err := m.Update(ctx, func(st *SnapState) error {
		existing, err := m.GetTransactionRequest(ctx, TransactionRequestQuery{ID: req.ID}, st)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("transaction request %s: %w", req.ID, ErrAlreadyExists)
		}
		st.TransactionRequests = append(st.TransactionRequests, req)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (m *TransactionRequestStateManager) UpsertTransactionRequest(ctx context.Context, req *TransactionRequest) error {
	return m.Update(ctx, func(st *SnapState) error {
		existing, err := m.GetTransactionRequest(ctx, TransactionRequestQuery{ID: req.ID}, st)
		if err != nil {
			return err
		}
		if existing == nil {
			st.TransactionRequests = append(st.TransactionRequests, req)
			return nil
		}
		*existing = *req
		return nil
	})
}

// SelectFeeToken records a re-estimated fee for another fee token.
func (m *TransactionRequestStateManager) SelectFeeToken(ctx context.Context, id string, token FeeToken, maxFee string, bounds map[string]ResourceBound) error {
	return m.Update(ctx, func(st *SnapState) error {
		existing, err := m.GetTransactionRequest(ctx, TransactionRequestQuery{ID: id}, st)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("transaction request %s: %w", id, ErrNotFound)
		}
		existing.SelectedFeeToken = token
		existing.MaxFee = maxFee
		if bounds != nil {
			existing.ResourceBounds = bounds
		}
		return nil
	})
}

func (m *TransactionRequestStateManager) RemoveTransactionRequest(ctx context.Context, id string) error {
	return m.Update(ctx, func(st *SnapState) error {
		for i, req := range st.TransactionRequests {
			if req.ID == id {
				st.TransactionRequests = append(st.TransactionRequests[:i], st.TransactionRequests[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("transaction request %s: %w", id, ErrNotFound)
	})
}
