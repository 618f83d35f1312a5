package starknet

import (
	"starksnap/internal/state"
)

type StatusResult struct {
	Status *TransactionStatus
	Error  error
}

type TransactionStatus struct {
	TxnHash         string
	FinalityStatus  state.FinalityStatus
	ExecutionStatus state.ExecutionStatus
	FailureReason   string
}

// Final reports whether the status can no longer change.
func (s *TransactionStatus) Final() bool {
	switch s.FinalityStatus {
	case state.FinalityStatusAcceptedOnL1, state.FinalityStatusRejected:
		return true
	}
	return s.ExecutionStatus == state.ExecutionStatusReverted || s.ExecutionStatus == state.ExecutionStatusRejected
}

type statusResponse struct {
	FinalityStatus  string `json:"finality_status"`
	ExecutionStatus string `json:"execution_status"`
	FailureReason   string `json:"failure_reason"`
}
