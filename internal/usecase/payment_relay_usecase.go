package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"momo_relay/internal/domain/entities"
	"momo_relay/internal/usecase/interfaces"
)

var (
	ErrMissingFromPayer     = errors.New("from_payer is required")
	ErrInvalidFromPayer     = errors.New("from_payer must be exactly 10 digits")
	ErrMissingAmount        = errors.New("amount is required")
	ErrInvalidAmount        = errors.New("amount must be a positive number")
	ErrMissingTransactionID = errors.New("transaction_id is required")
	ErrGatewayNotConfigured = errors.New("moneyunify gateway not configured")
)

var fromPayerPattern = regexp.MustCompile(`^[0-9]{10}$`)

// IPaymentRelayUseCase encapsulates the two relay operations: initiate a
// mobile-money collection and verify a previously issued transaction. Both
// are a single validate → call → translate pass with no retries.

type IPaymentRelayUseCase interface {
	InitiatePayment(ctx context.Context, fromPayer, amount string) (entities.ProviderReceipt, error)
	VerifyPayment(ctx context.Context, transactionID string) (entities.ProviderReceipt, error)
}

type PaymentRelayUseCase struct {
	gateway interfaces.IPaymentGateway
}

var _ IPaymentRelayUseCase = (*PaymentRelayUseCase)(nil)

func NewPaymentRelayUseCase(gateway interfaces.IPaymentGateway) *PaymentRelayUseCase {
	return &PaymentRelayUseCase{gateway: gateway}
}

// InitiatePayment validates caller input and forwards the collection request
// to the provider. Validation failures never reach the gateway.
func (u *PaymentRelayUseCase) InitiatePayment(ctx context.Context, fromPayer, amount string) (entities.ProviderReceipt, error) {
	log.Printf("[relay][usecase] initiate start from_payer=%q amount=%q", fromPayer, amount)

	fromPayer = strings.TrimSpace(fromPayer)
	if fromPayer == "" {
		log.Printf("[relay][usecase] invalid from_payer (empty)")
		return entities.ProviderReceipt{}, ErrMissingFromPayer
	}
	if !fromPayerPattern.MatchString(fromPayer) {
		log.Printf("[relay][usecase] invalid from_payer (not 10 digits)")
		return entities.ProviderReceipt{}, ErrInvalidFromPayer
	}

	normalizedAmount, err := normalizeAmount(amount)
	if err != nil {
		log.Printf("[relay][usecase] invalid amount=%q err=%v", amount, err)
		return entities.ProviderReceipt{}, err
	}

	if u.gateway == nil {
		log.Printf("[relay][usecase] gateway not configured")
		return entities.ProviderReceipt{}, ErrGatewayNotConfigured
	}

	receipt, err := u.gateway.RequestPayment(ctx, fromPayer, normalizedAmount)
	if err != nil {
		log.Printf("[relay][usecase] initiate failed from_payer=%s err=%v", fromPayer, err)
		return entities.ProviderReceipt{}, err
	}
	log.Printf("[relay][usecase] initiate success from_payer=%s message=%q", fromPayer, receipt.Message)
	return receipt, nil
}

// VerifyPayment validates the transaction id and forwards the status query.
func (u *PaymentRelayUseCase) VerifyPayment(ctx context.Context, transactionID string) (entities.ProviderReceipt, error) {
	log.Printf("[relay][usecase] verify start transaction_id=%q", transactionID)

	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		log.Printf("[relay][usecase] invalid transaction_id (empty)")
		return entities.ProviderReceipt{}, ErrMissingTransactionID
	}

	if u.gateway == nil {
		log.Printf("[relay][usecase] gateway not configured")
		return entities.ProviderReceipt{}, ErrGatewayNotConfigured
	}

	receipt, err := u.gateway.VerifyTransaction(ctx, transactionID)
	if err != nil {
		log.Printf("[relay][usecase] verify failed transaction_id=%s err=%v", transactionID, err)
		return entities.ProviderReceipt{}, err
	}
	log.Printf("[relay][usecase] verify success transaction_id=%s message=%q", transactionID, receipt.Message)
	return receipt, nil
}

// normalizeAmount parses the caller's amount and renders the canonical
// two-decimal form the provider expects ("50" -> "50.00").
func normalizeAmount(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrMissingAmount
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", ErrInvalidAmount
	}
	if value <= 0 {
		return "", ErrInvalidAmount
	}
	return fmt.Sprintf("%.2f", value), nil
}
