package depositrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/mailmart/backend/internal/domain"
	"github.com/mailmart/backend/internal/pg"
)

const depositColumns = `id, user_id, amount, currency, gateway, payment_id, payment_status, gateway_status, pay_address, created_at, expires_at, updated_at`

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

func scanDeposit(row pgx.Row) (*domain.Deposit, error) {
	var d domain.Deposit
	err := row.Scan(
		&d.ID, &d.UserID, &d.Amount, &d.Currency, &d.Gateway, &d.PaymentID,
		&d.Status, &d.GatewayStatus, &d.PayAddress, &d.CreatedAt, &d.ExpiresAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Save(ctx context.Context, deposit *domain.Deposit) error {
	query := `
        INSERT INTO deposits (id, user_id, amount, currency, gateway, payment_id, payment_status, pay_address, created_at, expires_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			deposit.ID, deposit.UserID, deposit.Amount, deposit.Currency, deposit.Gateway,
			deposit.PaymentID, deposit.Status, deposit.PayAddress, deposit.CreatedAt,
			deposit.ExpiresAt, deposit.UpdatedAt,
		)
		if err != nil {
			zap.L().Error("can't save deposit", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByPaymentID(ctx context.Context, paymentID string) (*domain.Deposit, error) {
	query := `
        SELECT ` + depositColumns + `
        FROM deposits
        WHERE payment_id = $1
    `
	deposit, err := scanDeposit(r.db.QueryRow(ctx, query, paymentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find deposit", zap.Error(err))
		return nil, err
	}
	return deposit, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Deposit, error) {
	query := `
        SELECT ` + depositColumns + `
        FROM deposits
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get deposits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deposits []domain.Deposit
	for rows.Next() {
		deposit, err := scanDeposit(rows)
		if err != nil {
			zap.L().Error("can't scan deposit row", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, *deposit)
	}
	return deposits, nil
}

// UpdateStatus persists a non-paid status report. Terminal rows are left
// untouched, so a late webhook can never resurrect an expired deposit.
func (r *Repository) UpdateStatus(ctx context.Context, paymentID string, status domain.DepositStatus, gatewayStatus string) error {
	query := `
        UPDATE deposits
        SET payment_status = $2, gateway_status = $3, updated_at = now()
        WHERE payment_id = $1 AND payment_status = 'waiting'
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, paymentID, status, gatewayStatus)
		if err != nil {
			zap.L().Error("failed to update deposit status", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// Confirm flips the deposit from waiting to confirmed. The compare-and-swap in
// the WHERE clause is what makes crediting happen at most once: redelivered
// "paid" webhooks find no waiting row and report ok=false.
func (r *Repository) Confirm(ctx context.Context, paymentID string, gatewayStatus string) (*domain.Deposit, bool, error) {
	query := `
        UPDATE deposits
        SET payment_status = 'confirmed', gateway_status = $2, updated_at = now()
        WHERE payment_id = $1 AND payment_status = 'waiting'
        RETURNING user_id, amount
    `
	var deposit domain.Deposit
	deposit.PaymentID = paymentID
	err := r.db.QueryRow(ctx, query, paymentID, gatewayStatus).Scan(&deposit.UserID, &deposit.Amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		zap.L().Error("failed to confirm deposit", zap.Error(err))
		return nil, false, err
	}
	return &deposit, true, nil
}

func (r *Repository) FindForPolling(ctx context.Context, limit uint32) ([]domain.Deposit, error) {
	query := `
        SELECT ` + depositColumns + `
        FROM deposits
        WHERE payment_status = 'waiting' AND expires_at > now()
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get deposits for polling", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deposits []domain.Deposit
	for rows.Next() {
		deposit, err := scanDeposit(rows)
		if err != nil {
			zap.L().Error("can't scan deposit row for polling", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, *deposit)
	}
	return deposits, nil
}

// SweepExpired is idempotent: rows already expired no longer match the WHERE
// clause, so overlapping sweeps are harmless.
func (r *Repository) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `
        UPDATE deposits
        SET payment_status = 'expired', updated_at = now()
        WHERE payment_status = 'waiting' AND expires_at <= $1
    `
	var expired int64
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, now)
		if err != nil {
			zap.L().Error("failed to sweep expired deposits", zap.Error(err))
			return err
		}
		expired = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return expired, nil
}
