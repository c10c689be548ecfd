package profilerepo

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

func TestRepository_GetByUserID(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	userID := uuid.New()
	profileID := uuid.New()
	now := time.Now()
	query := regexp.QuoteMeta(`
		SELECT id, user_id, balance, created_at
		FROM profiles
		WHERE user_id = $1`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Profile
	}{
		{
			name: "Profile found",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(userID).
					WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "balance", "created_at"}).
						AddRow(profileID, userID, decimal.NewFromInt(35), now))
			},
			result: &domain.Profile{
				ID:        profileID,
				UserID:    userID,
				Balance:   decimal.NewFromInt(35),
				CreatedAt: now,
			},
		},
		{
			name: "Unknown user returns nil without error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(userID).
					WillReturnRows(pgxmock.NewRows([]string{"id"}))
			},
			result: nil,
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
			result, err := repo.GetByUserID(ctx, userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	userID := uuid.New()
	profileID := uuid.New()
	now := time.Now()
	query := regexp.QuoteMeta(`
		INSERT INTO profiles (user_id, balance)
		VALUES ($1, 0)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, user_id, balance, created_at`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Profile
	}{
		{
			name: "Profile created",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(userID).
					WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "balance", "created_at"}).
						AddRow(profileID, userID, decimal.Zero, now))
			},
			result: &domain.Profile{
				ID:        profileID,
				UserID:    userID,
				Balance:   decimal.Zero,
				CreatedAt: now,
			},
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
			result, err := repo.Create(ctx, userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Credit(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	userID := uuid.New()
	amount := decimal.NewFromInt(25)
	query := regexp.QuoteMeta(`
		INSERT INTO profiles (user_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET balance = profiles.balance + EXCLUDED.balance`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Balance credited",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(userID, amount).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(userID, amount).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Credit(ctx, userID, amount)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_Debit(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	userID := uuid.New()
	amount := decimal.NewFromInt(25)
	query := regexp.QuoteMeta(`
		UPDATE profiles
		SET balance = balance - $1
		WHERE user_id = $2 AND balance >= $1`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		wantOK    bool
	}{
		{
			name: "Balance debited",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(amount, userID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			wantOK: true,
		},
		{
			name: "Insufficient balance rejected by the guard",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(amount, userID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			wantOK: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(amount, userID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ok, err := repo.Debit(ctx, userID, amount)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantOK, ok)
			}
		})
	}
}
