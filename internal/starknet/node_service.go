package starknet

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/rpc"

	"starksnap/internal/state"
)

const methodGetTransactionStatus = "starknet_getTransactionStatus"

type NodeService struct {
	client RPCClient
}

func NewNodeService(client RPCClient) *NodeService {
	return &NodeService{
		client: client,
	}
}

// Dial connects to the JSON-RPC endpoint of a Starknet node.
func Dial(ctx context.Context, nodeURL string) (*NodeService, error) {
	client, err := rpc.DialContext(ctx, nodeURL)
	if err != nil {
		return nil, fmt.Errorf("dial starknet node: %w", err)
	}
	return NewNodeService(client), nil
}

func (s *NodeService) GetTransactionStatus(ctx context.Context, hash string) (*TransactionStatus, error) {
	res := s.getTransactionStatus(ctx, hash)
	return res.Status, res.Error
}

// FetchStatuses queries every hash concurrently. Statuses that could be read
// are returned together with the joined errors of the others.
func (s *NodeService) FetchStatuses(ctx context.Context, hashes []string) ([]*TransactionStatus, error) {
	resultsChan := make(chan *StatusResult)

	var wg sync.WaitGroup
	for _, hash := range hashes {
		wg.Add(1)
		go func(hash string) {
			defer wg.Done()
			resultsChan <- s.getTransactionStatus(ctx, hash)
		}(hash)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var results []*TransactionStatus
	var aggrErr error
	for result := range resultsChan {
		if result.Error != nil {
			aggrErr = errors.Join(aggrErr, result.Error)
			continue
		}
		results = append(results, result.Status)
	}

	return results, aggrErr
}

func (s *NodeService) getTransactionStatus(ctx context.Context, hash string) *StatusResult {
	normalized, err := state.NormalizeHash(hash)
	if err != nil {
		return &StatusResult{nil, err}
	}

	var resp statusResponse
	if err := s.client.CallContext(ctx, &resp, methodGetTransactionStatus, normalized); err != nil {
		return &StatusResult{nil, fmt.Errorf("fetching status of %q: %w", normalized, err)}
	}

	return &StatusResult{
		Status: &TransactionStatus{
			TxnHash:         normalized,
			FinalityStatus:  state.FinalityStatus(resp.FinalityStatus),
			ExecutionStatus: state.ExecutionStatus(resp.ExecutionStatus),
			FailureReason:   resp.FailureReason,
		},
	}
}
