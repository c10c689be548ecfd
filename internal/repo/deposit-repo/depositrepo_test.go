package depositrepo

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
	gomock "go.uber.org/mock/gomock"

	"github.com/mailmart/backend/internal/domain"
	"github.com/mailmart/backend/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)

	ctrl := gomock.NewController(t)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	repo := New(mockDB, txManager)
	return repo, mockDB
}

func testDeposit() *domain.Deposit {
	now := time.Now()
	return &domain.Deposit{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Amount:     decimal.NewFromInt(25),
		Currency:   "btc",
		Gateway:    "nowpayments",
		PaymentID:  "4945313437",
		Status:     domain.DepositStatusWaiting,
		PayAddress: "3EktnHQD7RiAE6uzMj2ZifT9YgRrkSgzQX",
		CreatedAt:  now,
		ExpiresAt:  now.Add(time.Hour),
		UpdatedAt:  now,
	}
}

func depositRows(d *domain.Deposit) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "user_id", "amount", "currency", "gateway", "payment_id",
		"payment_status", "gateway_status", "pay_address", "created_at", "expires_at", "updated_at",
	}).AddRow(
		d.ID, d.UserID, d.Amount, d.Currency, d.Gateway, d.PaymentID,
		d.Status, d.GatewayStatus, d.PayAddress, d.CreatedAt, d.ExpiresAt, d.UpdatedAt,
	)
}

func TestRepository_Save(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	deposit := testDeposit()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Save deposit successfully",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
					INSERT INTO deposits (id, user_id, amount, currency, gateway, payment_id, payment_status, pay_address, created_at, expires_at, updated_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`)).
					WithArgs(deposit.ID, deposit.UserID, deposit.Amount, deposit.Currency, deposit.Gateway,
						deposit.PaymentID, deposit.Status, deposit.PayAddress, deposit.CreatedAt,
						deposit.ExpiresAt, deposit.UpdatedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
					INSERT INTO deposits (id, user_id, amount, currency, gateway, payment_id, payment_status, pay_address, created_at, expires_at, updated_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`)).
					WithArgs(deposit.ID, deposit.UserID, deposit.Amount, deposit.Currency, deposit.Gateway,
						deposit.PaymentID, deposit.Status, deposit.PayAddress, deposit.CreatedAt,
						deposit.ExpiresAt, deposit.UpdatedAt).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Save(ctx, deposit)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_FindByPaymentID(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	deposit := testDeposit()
	query := regexp.QuoteMeta(`
		SELECT id, user_id, amount, currency, gateway, payment_id, payment_status, gateway_status, pay_address, created_at, expires_at, updated_at
		FROM deposits
		WHERE payment_id = $1`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Deposit
	}{
		{
			name: "Deposit found",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(deposit.PaymentID).
					WillReturnRows(depositRows(deposit))
			},
			result: deposit,
		},
		{
			name: "Unknown payment id returns nil without error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(deposit.PaymentID).
					WillReturnRows(pgxmock.NewRows([]string{"id"}))
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(deposit.PaymentID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByPaymentID(ctx, deposit.PaymentID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByUserID(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	deposit := testDeposit()
	query := regexp.QuoteMeta(`
		SELECT id, user_id, amount, currency, gateway, payment_id, payment_status, gateway_status, pay_address, created_at, expires_at, updated_at
		FROM deposits
		WHERE user_id = $1
		ORDER BY created_at DESC`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Deposit
	}{
		{
			name: "Deposits found",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(deposit.UserID).
					WillReturnRows(depositRows(deposit))
			},
			result: []domain.Deposit{*deposit},
		},
		{
			name: "No deposits",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(deposit.UserID).
					WillReturnRows(pgxmock.NewRows([]string{"id"}))
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(deposit.UserID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUserID(ctx, deposit.UserID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`
		UPDATE deposits
		SET payment_status = $2, gateway_status = $3, updated_at = now()
		WHERE payment_id = $1 AND payment_status = 'waiting'`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Status updated",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("4945313437", domain.DepositStatusExpired, "failed").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Terminal row untouched",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("4945313437", domain.DepositStatusExpired, "failed").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("4945313437", domain.DepositStatusExpired, "failed").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateStatus(ctx, "4945313437", domain.DepositStatusExpired, "failed")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_Confirm(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	userID := uuid.New()
	amount := decimal.NewFromInt(25)
	query := regexp.QuoteMeta(`
		UPDATE deposits
		SET payment_status = 'confirmed', gateway_status = $2, updated_at = now()
		WHERE payment_id = $1 AND payment_status = 'waiting'
		RETURNING user_id, amount`)

	tests := []struct {
		name         string
		mockSetup    func()
		expectErr    bool
		wantCredited bool
	}{
		{
			name: "Waiting deposit confirmed",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("4945313437", "finished").
					WillReturnRows(pgxmock.NewRows([]string{"user_id", "amount"}).AddRow(userID, amount))
			},
			wantCredited: true,
		},
		{
			name: "Already settled deposit is not credited again",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("4945313437", "finished").
					WillReturnRows(pgxmock.NewRows([]string{"user_id", "amount"}))
			},
			wantCredited: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("4945313437", "finished").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			deposit, credited, err := repo.Confirm(ctx, "4945313437", "finished")

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantCredited, credited)
			if tt.wantCredited {
				assert.Equal(t, userID, deposit.UserID)
				assert.True(t, amount.Equal(deposit.Amount))
			} else {
				assert.Nil(t, deposit)
			}
		})
	}
}

func TestRepository_FindForPolling(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	deposit := testDeposit()
	query := regexp.QuoteMeta(`
		SELECT id, user_id, amount, currency, gateway, payment_id, payment_status, gateway_status, pay_address, created_at, expires_at, updated_at
		FROM deposits
		WHERE payment_status = 'waiting' AND expires_at > now()
		ORDER BY created_at ASC
		LIMIT $1`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Deposit
	}{
		{
			name: "Waiting deposits returned",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(100).
					WillReturnRows(depositRows(deposit))
			},
			result: []domain.Deposit{*deposit},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(100).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindForPolling(ctx, 100)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_SweepExpired(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta(`
		UPDATE deposits
		SET payment_status = 'expired', updated_at = now()
		WHERE payment_status = 'waiting' AND expires_at <= $1`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expired   int64
	}{
		{
			name: "Stale deposits expired",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(now).
					WillReturnResult(pgxmock.NewResult("UPDATE", 3))
			},
			expired: 3,
		},
		{
			name: "Nothing to expire",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(now).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expired: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			expired, err := repo.SweepExpired(ctx, now)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expired, expired)
			}
		})
	}
}
