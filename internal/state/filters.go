package state

import (
	"strings"

	"starksnap/internal/filter"
)

func TxnHashFilter(hashes ...string) filter.Filter[*Transaction] {
	return filter.NewBigIntFilter(hashes, func(t *Transaction) string { return t.TxnHash })
}

func SenderAddressFilter(addresses ...string) filter.Filter[*Transaction] {
	return filter.NewBigIntFilter(addresses, func(t *Transaction) string { return t.SenderAddress })
}

func ContractAddressFilter(addresses ...string) filter.Filter[*Transaction] {
	return filter.NewBigIntFilter(addresses, func(t *Transaction) string { return t.ContractAddress })
}

func ChainIDFilter(chainIDs ...string) filter.Filter[*Transaction] {
	return filter.NewBigIntFilter(chainIDs, func(t *Transaction) string { return t.ChainID })
}

// TimestampFilter keeps transactions at or after the given unix second.
func TimestampFilter(since int64) filter.Filter[*Transaction] {
	return filter.NewNumberFilter(since, func(t *Transaction) int64 { return t.Timestamp })
}

func TxnTypeFilter(types ...TransactionType) filter.Filter[*Transaction] {
	values := make([]string, len(types))
	for i, t := range types {
		values[i] = string(t)
	}
	return filter.NewStringFilter(values, func(t *Transaction) string { return string(t.TxnType) })
}

func DataVersionFilter(versions ...DataVersion) filter.Filter[*Transaction] {
	values := make([]string, len(versions))
	for i, v := range versions {
		values[i] = string(v)
	}
	return filter.NewStringFilter(values, func(t *Transaction) string { return string(t.DataVersion) })
}

// TxnStatusFilter matches when the finality status is in finality OR the
// execution status is in execution. With both sets empty every transaction
// matches.
type TxnStatusFilter struct {
	finality  *filter.StringFilter[*Transaction]
	execution *filter.StringFilter[*Transaction]
}

func NewTxnStatusFilter(finality []FinalityStatus, execution []ExecutionStatus) *TxnStatusFilter {
	fs := make([]string, len(finality))
	for i, s := range finality {
		fs[i] = string(s)
	}
	es := make([]string, len(execution))
	for i, s := range execution {
		es[i] = string(s)
	}
	return &TxnStatusFilter{
		finality:  filter.NewStringFilter(fs, func(t *Transaction) string { return string(t.FinalityStatus) }),
		execution: filter.NewStringFilter(es, func(t *Transaction) string { return string(t.ExecutionStatus) }),
	}
}

func (f *TxnStatusFilter) Apply(t *Transaction) bool {
	if f.finality.Len() == 0 && f.execution.Len() == 0 {
		return true
	}
	if t.FinalityStatus != "" && f.finality.Apply(t) {
		return true
	}
	return t.ExecutionStatus != "" && f.execution.Apply(t)
}

func AddressFilter(addresses ...string) filter.Filter[*Account] {
	return filter.NewBigIntFilter(addresses, func(a *Account) string { return a.Address })
}

func AccountChainIDFilter(chainIDs ...string) filter.Filter[*Account] {
	return filter.NewBigIntFilter(chainIDs, func(a *Account) string { return a.ChainID })
}

func TokenAddressFilter(addresses ...string) filter.Filter[*Erc20Token] {
	return filter.NewBigIntFilter(addresses, func(t *Erc20Token) string { return t.Address })
}

func TokenChainIDFilter(chainIDs ...string) filter.Filter[*Erc20Token] {
	return filter.NewBigIntFilter(chainIDs, func(t *Erc20Token) string { return t.ChainID })
}

func NetworkChainIDFilter(chainIDs ...string) filter.Filter[*Network] {
	return filter.NewBigIntFilter(chainIDs, func(n *Network) string { return n.ChainID })
}

func RequestIDFilter(ids ...string) filter.Filter[*TransactionRequest] {
	return filter.NewStringFilter(ids, func(r *TransactionRequest) string { return r.ID })
}

func InterfaceIDFilter(ids ...string) filter.Filter[*TransactionRequest] {
	return filter.NewStringFilter(ids, func(r *TransactionRequest) string { return r.InterfaceID })
}

// HasAccountCall reports whether t carries a call to contract.
func HasAccountCall(t *Transaction, contract string) bool {
	for key := range t.AccountCalls {
		if filter.BigIntEqual(key, contract) || strings.EqualFold(key, contract) {
			return true
		}
	}
	return false
}
