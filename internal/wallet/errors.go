package wallet

import (
	"errors"
	"fmt"

	"starksnap/internal/snap"
)

var (
	ErrNotAuthorized      = errors.New("wallet not authorized")
	ErrMethodNotSupported = errors.New("method not supported")
)

// ErrorCode is a code of the Starknet wallet RPC error table.
type ErrorCode int

const (
	CodeNotERC20               ErrorCode = 111
	CodeUnlistedNetwork        ErrorCode = 112
	CodeUserRefusedOp          ErrorCode = 113
	CodeInvalidRequestPayload  ErrorCode = 114
	CodeAccountAlreadyDeployed ErrorCode = 115
	CodeAPIVersionNotSupported ErrorCode = 162
	CodeUnknownError           ErrorCode = 163
)

var errorMessages = map[ErrorCode]string{
	CodeNotERC20:               "An error occurred (NOT_ERC20)",
	CodeUnlistedNetwork:        "An error occurred (UNLISTED_NETWORK)",
	CodeUserRefusedOp:          "An error occurred (USER_REFUSED_OP)",
	CodeInvalidRequestPayload:  "An error occurred (INVALID_REQUEST_PAYLOAD)",
	CodeAccountAlreadyDeployed: "An error occurred (ACCOUNT_ALREADY_DEPLOYED)",
	CodeAPIVersionNotSupported: "An error occurred (API_VERSION_NOT_SUPPORTED)",
	CodeUnknownError:           "An error occurred (UNKNOWN_ERROR)",
}

// WalletRpcError is the error a dapp receives. Cause keeps the upstream
// error for logging and never reaches the wire.
type WalletRpcError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func NewWalletRpcError(code ErrorCode, cause error) *WalletRpcError {
	message, ok := errorMessages[code]
	if !ok {
		code, message = CodeUnknownError, errorMessages[CodeUnknownError]
	}
	return &WalletRpcError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func (e *WalletRpcError) Error() string {
	return e.Message
}

func (e *WalletRpcError) Unwrap() error {
	return e.Cause
}

// ValidationError reports params that do not match the method schema.
type ValidationError struct {
	Method string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid params for %s: %v", e.Method, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// normalizeError keeps validation, authorization and wallet errors as they
// are and maps everything else onto the wallet error table.
func normalizeError(err error) error {
	var (
		validationErr *ValidationError
		rpcErr        *WalletRpcError
		providerErr   *snap.ProviderError
	)

	switch {
	case err == nil:
		return nil
	case errors.As(err, &validationErr), errors.Is(err, ErrNotAuthorized):
		return err
	case errors.As(err, &rpcErr):
		return rpcErr
	case errors.Is(err, snap.ErrUserRejected):
		return NewWalletRpcError(CodeUserRefusedOp, err)
	case errors.As(err, &providerErr):
		if _, known := errorMessages[ErrorCode(providerErr.Code)]; known {
			return NewWalletRpcError(ErrorCode(providerErr.Code), err)
		}
	}
	return NewWalletRpcError(CodeUnknownError, err)
}
