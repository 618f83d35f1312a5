package snap

import (
	"encoding/json"

	"starksnap/internal/state"
)

type snapInfo struct {
	ID      string `json:"id"`
	Version string `json:"version"`
	Enabled bool   `json:"enabled"`
	Blocked bool   `json:"blocked"`
}

type invokeRequest struct {
	SnapID  string      `json:"snapId"`
	Request snapRequest `json:"request"`
}

type snapRequest struct {
	Method string `json:"method"`
	Params any    `json:"params"`
}

type AddNetworkRequest struct {
	ChainName    string   `json:"networkName"`
	ChainID      string   `json:"networkChainId"`
	RPCURLs      []string `json:"networkNodeUrls"`
	ExplorerURLs []string `json:"networkVoyagerUrls,omitempty"`
}

type WatchAssetRequest struct {
	Address  string `json:"tokenAddress"`
	Name     string `json:"tokenName"`
	Symbol   string `json:"tokenSymbol"`
	Decimals int    `json:"tokenDecimals"`
	ChainID  string `json:"chainId"`
}

type ExecuteRequest struct {
	Address string          `json:"address"`
	Calls   []state.Call    `json:"calls"`
	Details json.RawMessage `json:"details,omitempty"`
	ChainID string          `json:"chainId"`
}

type ExecuteResult struct {
	TransactionHash string `json:"transaction_hash"`
}

type DeclareRequest struct {
	Address           string          `json:"address"`
	CompiledClassHash string          `json:"compiledClassHash"`
	ClassHash         string          `json:"classHash,omitempty"`
	ContractClass     json.RawMessage `json:"contract"`
	ChainID           string          `json:"chainId"`
}

type DeclareResult struct {
	TransactionHash string `json:"transaction_hash"`
	ClassHash       string `json:"class_hash"`
}

type SignMessageRequest struct {
	TypedData       json.RawMessage `json:"typedDataMessage"`
	EnableAuthorize bool            `json:"enableAuthorize"`
	Address         string          `json:"address"`
	ChainID         string          `json:"chainId"`
}

// DeploymentData describes how the account contract of an address is
// deployed.
type DeploymentData struct {
	Address   string   `json:"address"`
	ClassHash string   `json:"class_hash"`
	Salt      string   `json:"salt"`
	Calldata  []string `json:"calldata"`
	Version   int      `json:"version"`
}
