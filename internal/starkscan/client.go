package starkscan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"starksnap/internal/filter"
	"starksnap/internal/state"
)

const (
	MainnetBaseURL = "https://api.starkscan.co/api/v0"
	SepoliaBaseURL = "https://api-sepolia.starkscan.co/api/v0"

	defaultPageSize     = 10
	deployLookupSize    = 5
	maxResponseBodySize = 4 << 20
)

// BaseURL returns the indexer endpoint of chainID, or "" for unknown chains.
func BaseURL(chainID string) string {
	switch {
	case filter.BigIntEqual(chainID, state.MainnetChainID):
		return MainnetBaseURL
	case filter.BigIntEqual(chainID, state.SepoliaChainID):
		return SepoliaBaseURL
	}
	return ""
}

type Config struct {
	BaseURL  string
	APIKey   string
	ChainID  string
	PageSize int
}

// Page is one batch of transactions, newest first.
type Page struct {
	Transactions []*state.Transaction
	// Cursor points at the last transaction of the fetched batch. It is nil
	// once the indexer has nothing more for the address.
	Cursor  *Cursor
	HasMore bool
}

// Client reads account transaction history from the StarkScan indexer.
type Client struct {
	logs       *zap.SugaredLogger
	httpClient *http.Client
	cfg        Config
}

func NewClient(logger *zap.SugaredLogger, httpClient *http.Client, cfg Config) *Client {
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		logs:       logger,
		httpClient: httpClient,
		cfg:        cfg,
	}
}

// GetTransactions returns the next batch of transactions of address. With a
// cursor the batch resumes after the transaction the cursor points at.
func (c *Client) GetTransactions(ctx context.Context, address string, cursor *Cursor) (Page, error) {
	query := url.Values{}
	query.Set("contract_address", address)
	query.Set("order_by", "desc")
	query.Set("limit", strconv.Itoa(c.cfg.PageSize))
	if cursor != nil {
		query.Set("to_block", strconv.FormatInt(cursor.BlockNumber, 10))
	}

	resp, err := c.fetch(ctx, query)
	if err != nil {
		return Page{}, err
	}

	records := resp.Data
	if cursor != nil {
		records = skipThrough(records, cursor.TxnHash)
	}

	txns, err := c.toTransactions(records)
	if err != nil {
		return Page{}, err
	}

	page := Page{
		Transactions: txns,
		HasMore:      resp.NextURL != nil && *resp.NextURL != "",
	}
	if n := len(resp.Data); n > 0 {
		last := resp.Data[n-1]
		page.Cursor = &Cursor{
			TxnHash: state.MustNormalizeHash(last.TransactionHash),
		}
		if last.BlockNumber != nil {
			page.Cursor.BlockNumber = *last.BlockNumber
		}
	}

	c.logs.Debugw("transactions fetched from indexer",
		"address", address,
		"count", len(txns),
		"hasMore", page.HasMore,
	)
	return page, nil
}

// GetDeployTransaction returns the deploy transaction of address, or nil
// when the indexer does not know one.
func (c *Client) GetDeployTransaction(ctx context.Context, address string) (*state.Transaction, error) {
	query := url.Values{}
	query.Set("contract_address", address)
	query.Set("order_by", "asc")
	query.Set("limit", strconv.Itoa(deployLookupSize))

	resp, err := c.fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	for _, record := range resp.Data {
		if !record.isDeploy() {
			continue
		}
		txns, err := c.toTransactions([]transactionRecord{record})
		if err != nil {
			return nil, err
		}
		return txns[0], nil
	}
	return nil, nil
}

// GetTransactionsSince pages backwards until a transaction older than
// cutoff (unix seconds) shows up or the indexer runs out. The deploy
// transaction of the account is always part of the result.
func (c *Client) GetTransactionsSince(ctx context.Context, address string, cutoff int64) ([]*state.Transaction, error) {
	var (
		result      []*state.Transaction
		cursor      *Cursor
		deployFound bool
		seen        = map[string]struct{}{}
	)

	for {
		page, err := c.GetTransactions(ctx, address, cursor)
		if err != nil {
			return nil, err
		}

		fresh := 0
		reachedCutoff := false
		for _, txn := range page.Transactions {
			if _, ok := seen[txn.TxnHash]; ok {
				continue
			}
			seen[txn.TxnHash] = struct{}{}
			fresh++

			isDeploy := txn.TxnType == state.TransactionTypeDeployAccount || txn.TxnType == state.TransactionTypeDeploy
			if isDeploy {
				deployFound = true
			}
			if txn.Timestamp < cutoff {
				reachedCutoff = true
			}
			if txn.Timestamp >= cutoff || isDeploy {
				result = append(result, txn)
			}
		}

		if reachedCutoff || !page.HasMore || page.Cursor == nil || fresh == 0 {
			break
		}
		cursor = page.Cursor
	}

	if !deployFound {
		deploy, err := c.GetDeployTransaction(ctx, address)
		if err != nil {
			return nil, err
		}
		if deploy != nil {
			result = append(result, deploy)
		}
	}

	return result, nil
}

func (c *Client) fetch(ctx context.Context, query url.Values) (*transactionsResponse, error) {
	endpoint := fmt.Sprintf("%s/transactions?%s", c.cfg.BaseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &DataClientError{URL: endpoint, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("x-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &DataClientError{URL: endpoint, Err: fmt.Errorf("send request: %w", err)}
	}
	defer resp.Body.Close()

	limited := io.LimitReader(resp.Body, maxResponseBodySize)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(limited)
		return nil, &DataClientError{URL: endpoint, StatusCode: resp.StatusCode, Body: body}
	}

	var result transactionsResponse
	if err := json.NewDecoder(limited).Decode(&result); err != nil {
		return nil, &DataClientError{URL: endpoint, Err: fmt.Errorf("decode response: %w", err)}
	}
	if err := result.Validate(); err != nil {
		return nil, &DataClientError{URL: endpoint, Err: fmt.Errorf("validate response: %w", err)}
	}

	return &result, nil
}

func (c *Client) toTransactions(records []transactionRecord) ([]*state.Transaction, error) {
	txns := make([]*state.Transaction, 0, len(records))
	for _, record := range records {
		txn, err := c.toTransaction(record)
		if err != nil {
			return nil, &DataClientError{URL: c.cfg.BaseURL, Err: err}
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func (c *Client) toTransaction(record transactionRecord) (*state.Transaction, error) {
	hash, err := state.NormalizeHash(record.TransactionHash)
	if err != nil {
		return nil, err
	}

	txn := &state.Transaction{
		TxnHash:         hash,
		TxnType:         toTransactionType(record.TransactionType),
		ChainID:         c.cfg.ChainID,
		SenderAddress:   deref(record.SenderAddress),
		Timestamp:       record.Timestamp,
		FinalityStatus:  state.FinalityStatus(deref(record.TransactionFinalityStatus)),
		ExecutionStatus: state.ExecutionStatus(deref(record.TransactionExecutionStatus)),
		FailureReason:   deref(record.RevertError),
		MaxFee:          deref(record.MaxFee),
		ActualFee:       deref(record.ActualFee),
		AccountCalls:    toAccountCalls(record.AccountCalls),
		DataVersion:     state.LatestDataVersion,
	}
	if record.Version != nil {
		txn.Version = strconv.FormatInt(*record.Version, 10)
	}

	if record.isDeploy() {
		deployed := deref(record.ContractAddress)
		txn.SenderAddress = deployed
		txn.ContractAddress = deployed
	}

	return txn, nil
}

func toAccountCalls(records []accountCallRecord) map[string][]state.AccountCall {
	if len(records) == 0 {
		return nil
	}

	calls := make(map[string][]state.AccountCall, len(records))
	for _, record := range records {
		call := state.AccountCall{
			ContractFuncName: deref(record.SelectorName),
			ContractCallData: record.Calldata,
		}
		if call.ContractCallData == nil {
			call.ContractCallData = []string{}
		}
		if call.ContractFuncName == transferFuncName && len(record.Calldata) >= 2 {
			call.Recipient = record.Calldata[0]
			call.Amount = record.Calldata[1]
		}
		calls[record.ContractAddress] = append(calls[record.ContractAddress], call)
	}
	return calls
}

func toTransactionType(t string) state.TransactionType {
	switch t {
	case typeDeployAccount:
		return state.TransactionTypeDeployAccount
	case typeDeploy:
		return state.TransactionTypeDeploy
	case typeDeclare:
		return state.TransactionTypeDeclare
	}
	return state.TransactionTypeInvoke
}

// skipThrough drops every record up to and including hash. When hash is not
// in the batch nothing is dropped.
func skipThrough(records []transactionRecord, hash string) []transactionRecord {
	for i, record := range records {
		if filter.BigIntEqual(record.TransactionHash, hash) {
			return records[i+1:]
		}
	}
	return records
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
