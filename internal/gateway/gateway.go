package gateway

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/mailmart/backend/internal/config"
	"github.com/mailmart/backend/internal/domain"
	"github.com/mailmart/backend/pkg/clients"
)

const (
	NameNowPayments = "nowpayments"
	NameCryptomus   = "cryptomus"
)

var (
	ErrUnknownGateway     = errors.New("unknown payment gateway")
	ErrInvoiceRejected    = errors.New("gateway rejected invoice request")
	ErrMalformedWebhook   = errors.New("malformed webhook payload")
	ErrPaymentUnavailable = errors.New("payment status unavailable")
)

type InvoiceRequest struct {
	OrderID  string
	Amount   decimal.Decimal
	Currency string
}

type Invoice struct {
	PaymentID  string
	PayAddress string
	PayAmount  decimal.Decimal
}

// WebhookEvent is the gateway-agnostic view of an inbound notification. Status
// keeps the raw gateway vocabulary; mapping happens at reconciliation time.
type WebhookEvent struct {
	PaymentID string
	Status    string
	Amount    decimal.Decimal
}

type Gateway interface {
	Name() string
	SignatureHeader() string
	VerifyWebhook(body []byte, signature string) bool
	ParseWebhook(body []byte) (*WebhookEvent, error)
	MapStatus(gatewayStatus string) domain.DepositStatus
	IsPaid(gatewayStatus string) bool
	CreateInvoice(ctx context.Context, req InvoiceRequest) (*Invoice, error)
	GetPaymentStatus(ctx context.Context, paymentID string) (string, error)
}

type Gateways struct {
	list map[string]Gateway
}

func NewGateways(cfg *config.Config, client clients.HTTPClientI) *Gateways {
	list := map[string]Gateway{
		NameNowPayments: NewNowPayments(cfg, client),
		NameCryptomus:   NewCryptomus(cfg, client),
	}
	return &Gateways{list: list}
}

func (g *Gateways) ByName(name string) (Gateway, error) {
	gw, ok := g.list[name]
	if !ok {
		return nil, ErrUnknownGateway
	}
	return gw, nil
}

func (g *Gateways) Names() []string {
	names := make([]string, 0, len(g.list))
	for name := range g.list {
		names = append(names, name)
	}
	return names
}
