package wallet

import (
	"encoding/json"
	"errors"
	"regexp"

	"github.com/jellydator/validation"

	"starksnap/internal/state"
)

var (
	hexPattern = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)
	urlPattern = regexp.MustCompile(`^https?://\S+$`)
)

// noParams accepts whatever a dapp sends to a method without params.
type noParams struct{}

func (p *noParams) UnmarshalJSON([]byte) error { return nil }

func (p noParams) Validate() error { return nil }

type switchChainParams struct {
	ChainID string `json:"chainId"`
}

func (p switchChainParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChainID, validation.Required, validation.Match(hexPattern)),
	)
}

type addChainParams struct {
	ChainName         string   `json:"chainName"`
	ChainID           string   `json:"chainId"`
	RPCURLs           []string `json:"rpcUrls"`
	BlockExplorerURLs []string `json:"blockExplorerUrls"`
}

func (p addChainParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChainID, validation.Required, validation.Match(hexPattern)),
		validation.Field(&p.ChainName, validation.Required),
		validation.Field(&p.RPCURLs, validation.Required, validation.Each(validation.Match(urlPattern))),
		validation.Field(&p.BlockExplorerURLs, validation.Each(validation.Match(urlPattern))),
	)
}

type assetOptions struct {
	Address  string `json:"address"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

type watchAssetParams struct {
	Type    string        `json:"type"`
	Options *assetOptions `json:"options"`
}

func (p watchAssetParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Type, validation.Required, validation.In(tokenTypeERC20)),
		validation.Field(&p.Options, validation.Required),
	)
}

func (o assetOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Address, validation.Required),
	)
}

type invokeParams struct {
	Calls []state.Call `json:"calls"`
}

func (p invokeParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Calls, validation.Required, validation.Each(validation.By(validateCall))),
	)
}

func validateCall(value any) error {
	call, ok := value.(state.Call)
	if !ok {
		return errors.New("must be a call")
	}
	return validation.ValidateStruct(&call,
		validation.Field(&call.ContractAddress, validation.Required, validation.Match(hexPattern)),
		validation.Field(&call.EntryPoint, validation.Required),
	)
}

type declareParams struct {
	CompiledClassHash string          `json:"compiled_class_hash"`
	ClassHash         string          `json:"class_hash,omitempty"`
	ContractClass     json.RawMessage `json:"contract_class"`
}

func (p declareParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.CompiledClassHash, validation.Required, validation.Match(hexPattern)),
		validation.Field(&p.ClassHash, validation.Match(hexPattern)),
		validation.Field(&p.ContractClass, validation.Required),
	)
}

// typedDataParams keeps the raw typed data so it reaches the snap untouched.
type typedDataParams struct {
	Raw         json.RawMessage            `json:"-"`
	Types       map[string]json.RawMessage `json:"types"`
	PrimaryType string                     `json:"primaryType"`
	Domain      json.RawMessage            `json:"domain"`
	Message     json.RawMessage            `json:"message"`
}

func (p *typedDataParams) UnmarshalJSON(data []byte) error {
	type fields typedDataParams
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*p = typedDataParams(f)
	p.Raw = append(json.RawMessage(nil), data...)
	return nil
}

func (p typedDataParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Types, validation.Required),
		validation.Field(&p.PrimaryType, validation.Required),
		validation.Field(&p.Domain, validation.Required),
		validation.Field(&p.Message, validation.Required),
	)
}

type getTransactionsParams struct {
	SenderAddress       string `json:"senderAddress"`
	ContractAddress     string `json:"contractAddress"`
	ChainID             string `json:"chainId"`
	TxnsInLastNumOfDays int    `json:"txnsInLastNumOfDays"`
}

func (p getTransactionsParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.SenderAddress, validation.Match(hexPattern)),
		validation.Field(&p.ContractAddress, validation.Required, validation.Match(hexPattern)),
		validation.Field(&p.ChainID, validation.Match(hexPattern)),
		validation.Field(&p.TxnsInLastNumOfDays, validation.Min(0)),
	)
}

type transactionStatusParams struct {
	TransactionHash string `json:"transactionHash"`
	ChainID         string `json:"chainId"`
}

func (p transactionStatusParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.TransactionHash, validation.Required, validation.Match(hexPattern)),
		validation.Field(&p.ChainID, validation.Match(hexPattern)),
	)
}
