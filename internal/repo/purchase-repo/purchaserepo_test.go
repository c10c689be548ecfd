package purchaserepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mailmart/backend/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)

	repo := New(mockDB)
	return repo, mockDB
}

func TestRepository_CreatePurchase(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()
	purchaseID := uuid.New()
	purchase := &domain.Purchase{
		UserID:      uuid.New(),
		ProductID:   "outlook-fresh",
		ProductName: "Outlook (fresh)",
		Quantity:    3,
		Total:       decimal.RequireFromString("4.5"),
		Credentials: `[{"email":"a@outlook.com","password":"pass"}]`,
		CreatedAt:   now,
	}
	query := regexp.QuoteMeta(`
		INSERT INTO purchases (user_id, product_id, product_name, quantity, total, credentials, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create purchase successfully",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(purchase.UserID, purchase.ProductID, purchase.ProductName,
						purchase.Quantity, purchase.Total, purchase.Credentials, purchase.CreatedAt).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(purchaseID))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(purchase.UserID, purchase.ProductID, purchase.ProductName,
						purchase.Quantity, purchase.Total, purchase.Credentials, purchase.CreatedAt).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CreatePurchase(ctx, purchase)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, purchaseID, result.ID)
			}
		})
	}
}

func TestRepository_GetPurchasesByUserID(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	userID := uuid.New()
	now := time.Now()
	query := regexp.QuoteMeta(`
		SELECT id, user_id, product_id, product_name, quantity, total, credentials, created_at
		FROM purchases
		WHERE user_id = $1
		ORDER BY created_at DESC`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Purchases found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "product_id", "product_name", "quantity", "total", "credentials", "created_at"}).
					AddRow(uuid.New(), userID, "outlook-fresh", "Outlook (fresh)", 3, decimal.RequireFromString("4.5"), `[]`, now).
					AddRow(uuid.New(), userID, "gmail-aged", "Gmail (aged)", 1, decimal.RequireFromString("7"), `[]`, now)
				mock.ExpectQuery(query).
					WithArgs(userID).
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name: "No purchases found",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(userID).
					WillReturnRows(pgxmock.NewRows([]string{"id"}))
			},
			count: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(userID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetPurchasesByUserID(ctx, userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.count)
			}
		})
	}
}
