package webhooks

import (
	"context"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/mailmart/backend/internal/gateway"
	"github.com/mailmart/backend/pkg/utils"
)

const maxBodySize = 1 << 20

type Service interface {
	Reconcile(ctx context.Context, gatewayName string, paymentID string, gatewayStatus string) error
}

type Gateways interface {
	ByName(name string) (gateway.Gateway, error)
}

type WebhookHandler struct {
	service  Service
	gateways Gateways
}

func New(service Service, gateways Gateways) *WebhookHandler {
	return &WebhookHandler{
		service:  service,
		gateways: gateways,
	}
}

// NowPayments godoc
//
//	@Summary		NOWPayments IPN callback
//	@Description	Receive an asynchronous payment status notification from NOWPayments.
//	@Tags			Вебхуки
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	utils.Response	"Notification processed"
//	@Failure		400	{object}	utils.Response	"Malformed payload"
//	@Failure		401	{object}	utils.Response	"Invalid signature"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/webhooks/nowpayments [post]
func (h *WebhookHandler) NowPayments(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, gateway.NameNowPayments)
}

// Cryptomus godoc
//
//	@Summary		Cryptomus payment callback
//	@Description	Receive an asynchronous payment status notification from Cryptomus.
//	@Tags			Вебхуки
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	utils.Response	"Notification processed"
//	@Failure		400	{object}	utils.Response	"Malformed payload"
//	@Failure		401	{object}	utils.Response	"Invalid signature"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/webhooks/cryptomus [post]
func (h *WebhookHandler) Cryptomus(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, gateway.NameCryptomus)
}

func (h *WebhookHandler) handle(w http.ResponseWriter, r *http.Request, gatewayName string) {
	gw, err := h.gateways.ByName(gatewayName)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// The 401 path deliberately carries no detail: an attacker probing with
	// forged payloads learns nothing about known payment ids.
	if !gw.VerifyWebhook(body, r.Header.Get(gw.SignatureHeader())) {
		zap.L().Warn("webhook signature verification failed", zap.String("gateway", gatewayName))
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid signature")
		return
	}

	event, err := gw.ParseWebhook(body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := h.service.Reconcile(r.Context(), gatewayName, event.PaymentID, event.Status); err != nil {
		zap.L().Error("webhook reconciliation failed",
			zap.String("gateway", gatewayName),
			zap.String("paymentID", event.PaymentID),
			zap.Error(err),
		)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK)
}
