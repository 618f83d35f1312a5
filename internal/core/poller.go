package core

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type statusRefresher interface {
	RefreshTransactionStatus(ctx context.Context, chainID string) (int, error)
}

// StatusPoller periodically refreshes the status of pending transactions on
// every registered chain.
type StatusPoller struct {
	logs     *zap.SugaredLogger
	txns     statusRefresher
	chains   *Chains
	interval time.Duration
}

func NewStatusPoller(logger *zap.SugaredLogger, txns *TransactionService, chains *Chains, interval time.Duration) *StatusPoller {
	return &StatusPoller{
		logs:     logger,
		txns:     txns,
		chains:   chains,
		interval: interval,
	}
}

// Run blocks until ctx is done. A non positive interval disables polling.
func (p *StatusPoller) Run(ctx context.Context) {
	if p.interval <= 0 {
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Poll(ctx)
		}
	}
}

// Poll runs one refresh round and returns the number of updated records.
func (p *StatusPoller) Poll(ctx context.Context) int {
	total := 0
	for _, chainID := range p.chains.IDs() {
		updated, err := p.txns.RefreshTransactionStatus(ctx, chainID)
		if err != nil {
			p.logs.Errorw("refreshing transaction statuses", "chainId", chainID, "error", err)
		}
		total += updated
	}
	return total
}
