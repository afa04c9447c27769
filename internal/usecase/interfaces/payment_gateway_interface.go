package interfaces

import (
	"context"

	"momo_relay/internal/domain/entities"
)

// IPaymentGateway abstracts the external mobile-money provider (MoneyUnify).
//
// The relay uses it to initiate a collection from a subscriber's wallet and to
// query the status of a previously issued transaction. Inputs are already
// validated; implementations only speak the provider's wire contract.
type IPaymentGateway interface {
	RequestPayment(ctx context.Context, fromPayer, amount string) (entities.ProviderReceipt, error)
	VerifyTransaction(ctx context.Context, transactionID string) (entities.ProviderReceipt, error)
}
