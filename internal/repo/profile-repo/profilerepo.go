package profilerepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mailmart/backend/internal/domain"
	"github.com/mailmart/backend/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	query := `
        SELECT id, user_id, balance, created_at
        FROM profiles
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var profile domain.Profile
	err := row.Scan(&profile.ID, &profile.UserID, &profile.Balance, &profile.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get profile", zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

// Create is an upsert so that concurrent first touches of the same user both
// succeed and return the same row.
func (r *Repository) Create(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	query := `
        INSERT INTO profiles (user_id, balance)
        VALUES ($1, 0)
        ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
        RETURNING id, user_id, balance, created_at
    `
	row := r.db.QueryRow(ctx, query, userID)
	var profile domain.Profile
	err := row.Scan(&profile.ID, &profile.UserID, &profile.Balance, &profile.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create profile", zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

// Credit adds amount to the balance as a single atomic increment. A missing
// profile row is created on the fly, so a deposit from a user who never opened
// the dashboard still lands.
func (r *Repository) Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error {
	query := `
        INSERT INTO profiles (user_id, balance)
        VALUES ($1, $2)
        ON CONFLICT (user_id) DO UPDATE SET balance = profiles.balance + EXCLUDED.balance
    `
	_, err := r.db.Exec(ctx, query, userID, amount)
	if err != nil {
		zap.L().Error("failed to credit balance", zap.Error(err))
		return err
	}
	return nil
}

// Debit subtracts amount, guarded so the balance never goes negative. Returns
// false when the guard rejected the update.
func (r *Repository) Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (bool, error) {
	query := `
        UPDATE profiles
        SET balance = balance - $1
        WHERE user_id = $2 AND balance >= $1
    `
	tag, err := r.db.Exec(ctx, query, amount, userID)
	if err != nil {
		zap.L().Error("failed to debit balance", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
