package starkscan

import (
	"regexp"

	"github.com/jellydator/validation"
)

const (
	typeInvoke        = "INVOKE_FUNCTION"
	typeDeployAccount = "DEPLOY_ACCOUNT"
	typeDeploy        = "DEPLOY"
	typeDeclare       = "DECLARE"

	transferFuncName = "transfer"
)

var hexPattern = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)

type transactionsResponse struct {
	Data    []transactionRecord `json:"data"`
	NextURL *string             `json:"next_url"`
}

func (r transactionsResponse) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Data, validation.NotNil),
	)
}

type transactionRecord struct {
	TransactionHash            string              `json:"transaction_hash"`
	BlockNumber                *int64              `json:"block_number"`
	TransactionFinalityStatus  *string             `json:"transaction_finality_status"`
	TransactionExecutionStatus *string             `json:"transaction_execution_status"`
	TransactionType            string              `json:"transaction_type"`
	Timestamp                  int64               `json:"timestamp"`
	Nonce                      *string             `json:"nonce"`
	ContractAddress            *string             `json:"contract_address"`
	SenderAddress              *string             `json:"sender_address"`
	MaxFee                     *string             `json:"max_fee"`
	ActualFee                  *string             `json:"actual_fee"`
	RevertError                *string             `json:"revert_error"`
	AccountCalls               []accountCallRecord `json:"account_calls"`
	Version                    *int64              `json:"version"`
}

func (r transactionRecord) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TransactionHash, validation.Required, validation.Match(hexPattern)),
		validation.Field(&r.TransactionType, validation.Required,
			validation.In(typeInvoke, typeDeployAccount, typeDeploy, typeDeclare)),
		validation.Field(&r.Timestamp, validation.Min(int64(0))),
		validation.Field(&r.AccountCalls),
	)
}

type accountCallRecord struct {
	ContractAddress string   `json:"contract_address"`
	CallerAddress   string   `json:"caller_address"`
	Selector        string   `json:"selector"`
	SelectorName    *string  `json:"selector_name"`
	Calldata        []string `json:"calldata"`
}

func (r accountCallRecord) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ContractAddress, validation.Required),
	)
}

// Cursor marks the last transaction handed out by GetTransactions.
type Cursor struct {
	BlockNumber int64  `json:"blockNumber"`
	TxnHash     string `json:"txnHash"`
}

func (r transactionRecord) isDeploy() bool {
	return r.TransactionType == typeDeployAccount || r.TransactionType == typeDeploy
}
