package state

import (
	"errors"
)

var (
	ErrNotFound             = errors.New("does not exist")
	ErrAlreadyExists        = errors.New("already exists")
	ErrInvalidHash          = errors.New("invalid transaction hash")
	ErrInvalidTokenMetadata = errors.New("invalid token metadata")
	ErrRollback             = errors.New("state rollback failed")
)

// StateManagerError wraps any failure raised while mutating the state document.
type StateManagerError struct {
	Err error
}

func (e *StateManagerError) Error() string {
	return e.Err.Error()
}

func (e *StateManagerError) Unwrap() error {
	return e.Err
}

func newStateManagerError(err error) error {
	if err == nil {
		return nil
	}
	var sme *StateManagerError
	if errors.As(err, &sme) {
		return err
	}
	return &StateManagerError{Err: err}
}
