package purchaserepo

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mailmart/backend/internal/domain"
	"github.com/mailmart/backend/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreatePurchase(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error) {
	query := `
		INSERT INTO purchases (user_id, product_id, product_name, quantity, total, credentials, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		purchase.UserID, purchase.ProductID, purchase.ProductName,
		purchase.Quantity, purchase.Total, purchase.Credentials, purchase.CreatedAt,
	).Scan(&purchase.ID)
	if err != nil {
		zap.L().Error("can't save purchase", zap.Error(err))
		return nil, err
	}
	return purchase, nil
}

func (r *Repository) GetPurchasesByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Purchase, error) {
	query := `
        SELECT id, user_id, product_id, product_name, quantity, total, credentials, created_at
        FROM purchases
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var p domain.Purchase
		err := rows.Scan(&p.ID, &p.UserID, &p.ProductID, &p.ProductName, &p.Quantity, &p.Total, &p.Credentials, &p.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan purchase row", zap.Error(err))
			return nil, err
		}
		purchases = append(purchases, p)
	}

	return purchases, nil
}
