package gateway

import (
	"context"
	"crypto/md5"
	"crypto/subtle"
	"encoding/base64"
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

// Cryptomus signs requests and webhooks the same way: MD5 over the
// base64-encoded JSON body (minus its own sign field) concatenated with the
// API key. The hex digest travels in the sign header or inside the body.
type Cryptomus struct {
	url           string
	apiKey        string
	merchantID    string
	allowUnsigned bool
	client        clients.HTTPClientI
}

func NewCryptomus(cfg *config.Config, client clients.HTTPClientI) *Cryptomus {
	return &Cryptomus{
		url:           cfg.CryptomusAddress,
		apiKey:        cfg.CryptomusAPIKey,
		merchantID:    cfg.CryptomusMerchantID,
		allowUnsigned: cfg.AllowUnsignedWebhooks,
		client:        client,
	}
}

func (g *Cryptomus) Name() string {
	return NameCryptomus
}

func (g *Cryptomus) SignatureHeader() string {
	return "sign"
}

func (g *Cryptomus) sign(body []byte) string {
	digest := md5.Sum([]byte(base64.StdEncoding.EncodeToString(body) + g.apiKey))
	return hex.EncodeToString(digest[:])
}

func (g *Cryptomus) VerifyWebhook(body []byte, signature string) bool {
	if g.apiKey == "" {
		if g.allowUnsigned {
			zap.L().Warn("API key is not configured, accepting unsigned webhook")
			return true
		}
		return false
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return false
	}

	if signature == "" {
		signature, _ = payload["sign"].(string)
	}
	if signature == "" {
		return false
	}
	delete(payload, "sign")

	data, err := json.Marshal(payload)
	if err != nil {
		return false
	}
	expected := g.sign(data)

	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(signature))) == 1
}

type cryptomusWebhook struct {
	UUID          string      `json:"uuid"`
	OrderID       string      `json:"order_id"`
	Status        string      `json:"status"`
	PaymentAmount json.Number `json:"payment_amount"`
}

func (g *Cryptomus) ParseWebhook(body []byte) (*WebhookEvent, error) {
	var payload cryptomusWebhook
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, ErrMalformedWebhook
	}
	if payload.UUID == "" || payload.Status == "" {
		return nil, ErrMalformedWebhook
	}

	amount, err := decimal.NewFromString(payload.PaymentAmount.String())
	if err != nil {
		amount = decimal.Zero
	}

	return &WebhookEvent{
		PaymentID: payload.UUID,
		Status:    payload.Status,
		Amount:    amount,
	}, nil
}

func (g *Cryptomus) MapStatus(gatewayStatus string) domain.DepositStatus {
	switch gatewayStatus {
	case "paid", "paid_over":
		return domain.DepositStatusConfirmed
	case "confirm_check", "wrong_amount", "process", "check":
		return domain.DepositStatusWaiting
	case "fail", "cancel", "system_fail", "refund_process", "refund_fail", "refund_paid":
		return domain.DepositStatusExpired
	default:
		zap.L().Warn("unrecognized gateway status", zap.String("gateway", g.Name()), zap.String("status", gatewayStatus))
		return domain.DepositStatusWaiting
	}
}

func (g *Cryptomus) IsPaid(gatewayStatus string) bool {
	return gatewayStatus == "paid" || gatewayStatus == "paid_over"
}

func (g *Cryptomus) headers(body []byte) http.Header {
	headers := http.Header{}
	headers.Set("merchant", g.merchantID)
	headers.Set("sign", g.sign(body))
	return headers
}

type cryptomusInvoiceRequest struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	OrderID  string `json:"order_id"`
	Lifetime int    `json:"lifetime"`
}

type cryptomusInvoiceResponse struct {
	State  int `json:"state"`
	Result struct {
		UUID          string          `json:"uuid"`
		Address       string          `json:"address"`
		PaymentAmount decimal.Decimal `json:"payment_amount"`
	} `json:"result"`
}

func (g *Cryptomus) CreateInvoice(ctx context.Context, req InvoiceRequest) (*Invoice, error) {
	body, err := json.Marshal(cryptomusInvoiceRequest{
		Amount:   req.Amount.StringFixed(2),
		Currency: req.Currency,
		OrderID:  req.OrderID,
		Lifetime: 3600,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal invoice request: %w", err)
	}

	statusCode, respBody, err := g.client.Post(g.url+"/v1/payment", g.headers(body), body)
	if err != nil {
		return nil, fmt.Errorf("invoice request failed: %w", err)
	}
	if statusCode != http.StatusOK {
		zap.L().Error("gateway rejected invoice", zap.String("gateway", g.Name()), zap.Int("status", statusCode))
		return nil, ErrInvoiceRejected
	}

	var resp cryptomusInvoiceResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse invoice response: %w", err)
	}
	if resp.Result.UUID == "" {
		return nil, ErrInvoiceRejected
	}

	return &Invoice{
		PaymentID:  resp.Result.UUID,
		PayAddress: resp.Result.Address,
		PayAmount:  resp.Result.PaymentAmount,
	}, nil
}

func (g *Cryptomus) GetPaymentStatus(ctx context.Context, paymentID string) (string, error) {
	body, err := json.Marshal(map[string]string{"uuid": paymentID})
	if err != nil {
		return "", fmt.Errorf("failed to marshal payment info request: %w", err)
	}

	statusCode, respBody, err := g.client.Post(g.url+"/v1/payment/info", g.headers(body), body)
	if err != nil {
		return "", fmt.Errorf("payment status request failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return "", ErrPaymentUnavailable
	}

	var resp struct {
		Result struct {
			PaymentStatus string `json:"payment_status"`
		} `json:"result"`
	}
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to parse payment status response: %w", err)
	}
	if resp.Result.PaymentStatus == "" {
		return "", ErrPaymentUnavailable
	}

	return resp.Result.PaymentStatus, nil
}
