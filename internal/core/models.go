package core

// TransactionQuery selects the history of one account.
type TransactionQuery struct {
	Signer          string
	ContractAddress string
	ChainID         string
	LastNDays       int
}

type ConnectMessage struct {
	Origin string
}

type Session struct {
	Origin string
}
