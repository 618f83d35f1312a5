package snap

import (
	"errors"
	"fmt"
)

// CodeUserRejected is the EIP-1193 code for a request the user declined.
const CodeUserRejected = 4001

var (
	ErrUserRejected = errors.New("user rejected the request")
	ErrNoAccount    = errors.New("no account recovered")
)

// ProviderError is an error answered by the wallet host or by the snap.
type ProviderError struct {
	Code    int
	Message string
	Data    any
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %d: %s", e.Code, e.Message)
}

// Is makes rejected requests match ErrUserRejected.
func (e *ProviderError) Is(target error) bool {
	return target == ErrUserRejected && e.Code == CodeUserRejected
}
