package handlers

import (
	"errors"
	"log"
	"net/http"

	"momo_relay/internal/adapter/http/dto/request"
	"momo_relay/internal/adapter/http/dto/response"
	"momo_relay/internal/domain/entities"
	"momo_relay/internal/infrastructure/config"
	"momo_relay/internal/usecase"
	"momo_relay/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentRelayHandler handles HTTP requests for the two relay operations.

type PaymentRelayHandler struct {
	usecase usecase.IPaymentRelayUseCase
	cfg     config.Config
}

func NewPaymentRelayHandler(uc usecase.IPaymentRelayUseCase, cfg config.Config) *PaymentRelayHandler {
	return &PaymentRelayHandler{usecase: uc, cfg: cfg}
}

// CreateMobileMoneyPayment initiates a mobile-money collection.
//
//	@Summary		Initiate a mobile-money payment
//	@Accept			json
//	@Produce		json
//	@Param			body	body		request.PaymentInitiationRequest	true	"payer phone and amount"
//	@Success		200		{object}	response.Envelope
//	@Failure		400		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/create-mobile-money-payment [post]
func (h *PaymentRelayHandler) CreateMobileMoneyPayment(c *gin.Context) {
	var req request.PaymentInitiationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[relay][handler] initiate invalid body err=%v", err)
		h.renderError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Request body must be valid JSON", http.StatusBadRequest))
		return
	}
	log.Printf("[relay][handler] initiate start from_payer=%s", req.FromPayer)

	receipt, err := h.usecase.InitiatePayment(c.Request.Context(), req.FromPayer, req.Amount.String())
	if err != nil {
		log.Printf("[relay][handler] initiate failed from_payer=%s err=%v", req.FromPayer, err)
		h.renderError(c, mapRelayError(err))
		return
	}
	log.Printf("[relay][handler] initiate success from_payer=%s", req.FromPayer)

	c.JSON(http.StatusOK, response.FromProviderReceipt(receipt))
}

// VerifyMobileMoneyPayment queries the status of a transaction.
//
//	@Summary		Verify a mobile-money payment
//	@Accept			json
//	@Produce		json
//	@Param			body	body		request.PaymentVerificationRequest	true	"provider transaction id"
//	@Success		200		{object}	response.Envelope
//	@Failure		400		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/verify-mobile-money-payment [post]
func (h *PaymentRelayHandler) VerifyMobileMoneyPayment(c *gin.Context) {
	var req request.PaymentVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[relay][handler] verify invalid body err=%v", err)
		h.renderError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Request body must be valid JSON", http.StatusBadRequest))
		return
	}
	transactionID := req.ResolveTransactionID()
	log.Printf("[relay][handler] verify start transaction_id=%s", transactionID)

	receipt, err := h.usecase.VerifyPayment(c.Request.Context(), transactionID)
	if err != nil {
		log.Printf("[relay][handler] verify failed transaction_id=%s err=%v", transactionID, err)
		h.renderError(c, mapRelayError(err))
		return
	}
	log.Printf("[relay][handler] verify success transaction_id=%s", transactionID)

	c.JSON(http.StatusOK, response.FromProviderReceipt(receipt))
}

func (h *PaymentRelayHandler) renderError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, response.Failure(appErr.ClientMessage(!h.cfg.IsProduction())))
}

func mapRelayError(err error) *pkg.AppError {
	var declined *entities.ProviderDeclinedError
	switch {
	case errors.Is(err, usecase.ErrMissingFromPayer),
		errors.Is(err, usecase.ErrInvalidFromPayer),
		errors.Is(err, usecase.ErrMissingAmount),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrMissingTransactionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.As(err, &declined):
		return pkg.NewDomainErrorSimple("PROVIDER_DECLINED", declined.Message, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment provider is not configured", http.StatusInternalServerError)
	case errors.Is(err, entities.ErrUnexpectedProviderResponse):
		return pkg.NewDomainError("PROVIDER_PROTOCOL_ERROR", "Unexpected response from payment provider", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
