package state

import (
	"encoding/json"
	"fmt"
)

const (
	MainnetChainID = "0x534e5f4d41494e"
	SepoliaChainID = "0x534e5f5345504f4c4941"
)

type TransactionType string

const (
	TransactionTypeInvoke        TransactionType = "invoke"
	TransactionTypeDeployAccount TransactionType = "deploy_account"
	TransactionTypeDeploy        TransactionType = "deploy"
	TransactionTypeDeclare       TransactionType = "declare"
)

type FinalityStatus string

const (
	FinalityStatusReceived     FinalityStatus = "RECEIVED"
	FinalityStatusAcceptedOnL2 FinalityStatus = "ACCEPTED_ON_L2"
	FinalityStatusAcceptedOnL1 FinalityStatus = "ACCEPTED_ON_L1"
	FinalityStatusRejected     FinalityStatus = "REJECTED"
)

type ExecutionStatus string

const (
	ExecutionStatusSucceeded ExecutionStatus = "SUCCEEDED"
	ExecutionStatusReverted  ExecutionStatus = "REVERTED"
	ExecutionStatusRejected  ExecutionStatus = "REJECTED"
)

type DataVersion string

const (
	DataVersionV1     DataVersion = "V1"
	DataVersionV2     DataVersion = "V2"
	LatestDataVersion             = DataVersionV2
)

type FeeToken string

const (
	FeeTokenETH  FeeToken = "ETH"
	FeeTokenSTRK FeeToken = "STRK"
)

// AccountCall is one contract invocation within an invoke transaction.
type AccountCall struct {
	ContractFuncName string   `json:"contractFuncName"`
	ContractCallData []string `json:"contractCallData"`
	Recipient        string   `json:"recipient,omitempty"`
	Amount           string   `json:"amount,omitempty"`
}

type Transaction struct {
	TxnHash         string                   `json:"txnHash"`
	TxnType         TransactionType          `json:"txnType"`
	ChainID         string                   `json:"chainId"`
	SenderAddress   string                   `json:"senderAddress"`
	ContractAddress string                   `json:"contractAddress"`
	Timestamp       int64                    `json:"timestamp"`
	FinalityStatus  FinalityStatus           `json:"finalityStatus"`
	ExecutionStatus ExecutionStatus          `json:"executionStatus"`
	FailureReason   string                   `json:"failureReason"`
	MaxFee          string                   `json:"maxFee"`
	ActualFee       string                   `json:"actualFee"`
	AccountCalls    map[string][]AccountCall `json:"accountCalls,omitempty"`
	Version         string                   `json:"version"`
	DataVersion     DataVersion              `json:"dataVersion"`
}

type Account struct {
	Address         string `json:"address"`
	PublicKey       string `json:"publicKey"`
	AddressSalt     string `json:"addressSalt"`
	AddressIndex    int    `json:"addressIndex"`
	DerivationPath  string `json:"derivationPath"`
	ChainID         string `json:"chainId"`
	DeployTxnHash   string `json:"deployTxnHash,omitempty"`
	UpgradeRequired *bool  `json:"upgradeRequired,omitempty"`
	DeployRequired  *bool  `json:"deployRequired,omitempty"`
}

type Network struct {
	Name             string `json:"name"`
	ChainID          string `json:"chainId"`
	BaseURL          string `json:"baseUrl"`
	NodeURL          string `json:"nodeUrl"`
	VoyagerURL       string `json:"voyagerUrl"`
	AccountClassHash string `json:"accountClassHash"`
}

type Erc20Token struct {
	Address  string `json:"address"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
	ChainID  string `json:"chainId"`
}

// Call is a single contract call as submitted by a dapp.
type Call struct {
	ContractAddress string   `json:"contract_address"`
	EntryPoint      string   `json:"entry_point"`
	Calldata        []string `json:"calldata,omitempty"`
}

type ResourceBound struct {
	MaxAmount       string `json:"max_amount"`
	MaxPricePerUnit string `json:"max_price_per_unit"`
}

// TransactionRequest is an invoke request waiting for the user to confirm the fee token.
type TransactionRequest struct {
	ID               string                   `json:"id"`
	InterfaceID      string                   `json:"interfaceId"`
	Type             string                   `json:"type"`
	Signer           string                   `json:"signer"`
	ChainID          string                   `json:"chainId"`
	Calls            []Call                   `json:"calls"`
	MaxFee           string                   `json:"maxFee"`
	SelectedFeeToken FeeToken                 `json:"selectedFeeToken"`
	ResourceBounds   map[string]ResourceBound `json:"resourceBounds,omitempty"`
	IncludeDeploy    bool                     `json:"includeDeploy"`
}

// SnapState is the whole persisted document.
type SnapState struct {
	AccContracts        []*Account            `json:"accContracts"`
	Erc20Tokens         []*Erc20Token         `json:"erc20Tokens"`
	Networks            []*Network            `json:"networks"`
	Transactions        []*Transaction        `json:"transactions"`
	TransactionRequests []*TransactionRequest `json:"transactionRequests"`
	RemovedAccounts     map[string][]int      `json:"removedAccounts"`
	CurrentNetwork      *Network              `json:"currentNetwork,omitempty"`
	CurrentAccount      map[string]*Account   `json:"currentAccount"`
}

// NewSnapState returns a document with every collection initialised.
func NewSnapState() *SnapState {
	s := &SnapState{}
	s.ensureCollections()
	return s
}

func (s *SnapState) ensureCollections() {
	if s.AccContracts == nil {
		s.AccContracts = []*Account{}
	}
	if s.Erc20Tokens == nil {
		s.Erc20Tokens = []*Erc20Token{}
	}
	if s.Networks == nil {
		s.Networks = []*Network{}
	}
	if s.Transactions == nil {
		s.Transactions = []*Transaction{}
	}
	if s.TransactionRequests == nil {
		s.TransactionRequests = []*TransactionRequest{}
	}
	if s.RemovedAccounts == nil {
		s.RemovedAccounts = map[string][]int{}
	}
	if s.CurrentAccount == nil {
		s.CurrentAccount = map[string]*Account{}
	}
}

// Clone returns a deep copy of the document.
func (s *SnapState) Clone() (*SnapState, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}

	var clone SnapState
	if err := json.Unmarshal(data, &clone); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	clone.ensureCollections()

	return &clone, nil
}
