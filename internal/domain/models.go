package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DepositStatus string

const (
	// DepositStatusWaiting платёж создан, подтверждение от шлюза ещё не получено;
	DepositStatusWaiting DepositStatus = "waiting"
	// DepositStatusConfirmed платёж получен, баланс зачислен; терминальный статус;
	DepositStatusConfirmed DepositStatus = "confirmed"
	// DepositStatusExpired время жизни платежа истекло; терминальный статус;
	DepositStatusExpired DepositStatus = "expired"
)

type Deposit struct {
	ID            uuid.UUID       `db:"id"`
	UserID        uuid.UUID       `db:"user_id"`
	Amount        decimal.Decimal `db:"amount"`
	Currency      string          `db:"currency"`
	Gateway       string          `db:"gateway"`
	PaymentID     string          `db:"payment_id"`
	Status        DepositStatus   `db:"payment_status"`
	GatewayStatus string          `db:"gateway_status"`
	PayAddress    string          `db:"pay_address"`
	CreatedAt     time.Time       `db:"created_at"`
	ExpiresAt     time.Time       `db:"expires_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

type Profile struct {
	ID        uuid.UUID       `db:"id"`
	UserID    uuid.UUID       `db:"user_id"`
	Balance   decimal.Decimal `db:"balance"`
	CreatedAt time.Time       `db:"created_at"`
}

type Purchase struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	ProductID   string          `db:"product_id"`
	ProductName string          `db:"product_name"`
	Quantity    int             `db:"quantity"`
	Total       decimal.Decimal `db:"total"`
	Credentials string          `db:"credentials"`
	CreatedAt   time.Time       `db:"created_at"`
}

type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Available int             `json:"available"`
}

type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
