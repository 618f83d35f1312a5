package wallet

import (
	"context"

	"starksnap/internal/snap"
)

// signTypedData asks the user to confirm and returns the signature
// components.
func (w *Wallet) signTypedData(ctx context.Context, req *request, params typedDataParams) (any, error) {
	account, err := req.Account(ctx)
	if err != nil {
		return nil, err
	}

	return w.snap.SignMessage(ctx, snap.SignMessageRequest{
		TypedData:       params.Raw,
		EnableAuthorize: true,
		Address:         account.Address,
		ChainID:         account.ChainID,
	})
}
