package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mailmart/backend/internal/config"
	"github.com/mailmart/backend/internal/domain"
	"github.com/mailmart/backend/pkg/clients"
)

// NowPayments signs IPN callbacks with HMAC-SHA512 over the JSON body
// re-serialized with sorted keys; the hex digest arrives in x-nowpayments-sig.
type NowPayments struct {
	url           string
	apiKey        string
	ipnSecret     string
	allowUnsigned bool
	client        clients.HTTPClientI
}

func NewNowPayments(cfg *config.Config, client clients.HTTPClientI) *NowPayments {
	return &NowPayments{
		url:           cfg.NowPaymentsAddress,
		apiKey:        cfg.NowPaymentsAPIKey,
		ipnSecret:     cfg.NowPaymentsIPNSecret,
		allowUnsigned: cfg.AllowUnsignedWebhooks,
		client:        client,
	}
}

func (g *NowPayments) Name() string {
	return NameNowPayments
}

func (g *NowPayments) SignatureHeader() string {
	return "x-nowpayments-sig"
}

func (g *NowPayments) VerifyWebhook(body []byte, signature string) bool {
	if g.ipnSecret == "" {
		if g.allowUnsigned {
			zap.L().Warn("IPN secret is not configured, accepting unsigned webhook")
			return true
		}
		return false
	}
	if signature == "" {
		return false
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return false
	}
	// json.Marshal orders map keys, which is exactly the canonical form the
	// gateway signs.
	canonical, err := json.Marshal(payload)
	if err != nil {
		return false
	}

	mac := hmac.New(sha512.New, []byte(g.ipnSecret))
	mac.Write(canonical)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature)))
}

type nowPaymentsWebhook struct {
	PaymentID     json.Number `json:"payment_id"`
	PaymentStatus string      `json:"payment_status"`
	OrderID       string      `json:"order_id"`
	ActuallyPaid  json.Number `json:"actually_paid"`
}

func (g *NowPayments) ParseWebhook(body []byte) (*WebhookEvent, error) {
	var payload nowPaymentsWebhook
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, ErrMalformedWebhook
	}
	if payload.PaymentID.String() == "" || payload.PaymentStatus == "" {
		return nil, ErrMalformedWebhook
	}

	amount, err := decimal.NewFromString(payload.ActuallyPaid.String())
	if err != nil {
		amount = decimal.Zero
	}

	return &WebhookEvent{
		PaymentID: payload.PaymentID.String(),
		Status:    payload.PaymentStatus,
		Amount:    amount,
	}, nil
}

func (g *NowPayments) MapStatus(gatewayStatus string) domain.DepositStatus {
	switch gatewayStatus {
	case "finished":
		return domain.DepositStatusConfirmed
	case "failed", "refunded", "expired":
		return domain.DepositStatusExpired
	case "waiting", "confirming", "confirmed", "sending", "partially_paid":
		return domain.DepositStatusWaiting
	default:
		zap.L().Warn("unrecognized gateway status", zap.String("gateway", g.Name()), zap.String("status", gatewayStatus))
		return domain.DepositStatusWaiting
	}
}

func (g *NowPayments) IsPaid(gatewayStatus string) bool {
	return gatewayStatus == "finished"
}

type nowPaymentsInvoiceRequest struct {
	PriceAmount   decimal.Decimal `json:"price_amount"`
	PriceCurrency string          `json:"price_currency"`
	PayCurrency   string          `json:"pay_currency"`
	OrderID       string          `json:"order_id"`
}

type nowPaymentsInvoiceResponse struct {
	PaymentID     json.Number     `json:"payment_id"`
	PayAddress    string          `json:"pay_address"`
	PayAmount     decimal.Decimal `json:"pay_amount"`
	PaymentStatus string          `json:"payment_status"`
}

func (g *NowPayments) CreateInvoice(ctx context.Context, req InvoiceRequest) (*Invoice, error) {
	body, err := json.Marshal(nowPaymentsInvoiceRequest{
		PriceAmount:   req.Amount,
		PriceCurrency: "usd",
		PayCurrency:   req.Currency,
		OrderID:       req.OrderID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal invoice request: %w", err)
	}

	headers := http.Header{}
	headers.Set("x-api-key", g.apiKey)

	statusCode, respBody, err := g.client.Post(g.url+"/v1/payment", headers, body)
	if err != nil {
		return nil, fmt.Errorf("invoice request failed: %w", err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		zap.L().Error("gateway rejected invoice", zap.String("gateway", g.Name()), zap.Int("status", statusCode))
		return nil, ErrInvoiceRejected
	}

	var resp nowPaymentsInvoiceResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse invoice response: %w", err)
	}
	if resp.PaymentID.String() == "" {
		return nil, ErrInvoiceRejected
	}

	return &Invoice{
		PaymentID:  resp.PaymentID.String(),
		PayAddress: resp.PayAddress,
		PayAmount:  resp.PayAmount,
	}, nil
}

func (g *NowPayments) GetPaymentStatus(ctx context.Context, paymentID string) (string, error) {
	headers := http.Header{}
	headers.Set("x-api-key", g.apiKey)

	statusCode, respBody, _, err := g.client.Get(g.url+"/v1/payment/"+paymentID, headers)
	if err != nil {
		return "", fmt.Errorf("payment status request failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return "", ErrPaymentUnavailable
	}

	var resp struct {
		PaymentStatus string `json:"payment_status"`
	}
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to parse payment status response: %w", err)
	}
	if resp.PaymentStatus == "" {
		return "", ErrPaymentUnavailable
	}

	return resp.PaymentStatus, nil
}
