package purchaseservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mailmart/backend/internal/domain"
	"github.com/mailmart/backend/internal/pg"
)

type PurchaseRepo interface {
	CreatePurchase(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error)
	GetPurchasesByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Purchase, error)
}

type ProfileService interface {
	Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error
}

type ResellerClient interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	Buy(ctx context.Context, productID string, quantity int) ([]domain.Credential, error)
}

type Service struct {
	purchaseRepo   PurchaseRepo
	profileService ProfileService
	reseller       ResellerClient
	txManager      pg.TXManager
}

func New(purchaseRepo PurchaseRepo, profileService ProfileService, reseller ResellerClient, txManager pg.TXManager) *Service {
	return &Service{
		purchaseRepo:   purchaseRepo,
		profileService: profileService,
		reseller:       reseller,
		txManager:      txManager,
	}
}

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("not enough accounts in stock")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.reseller.ListProducts(ctx)
	if err != nil {
		zap.L().Error("failed to fetch products", zap.Error(err))
		return nil, err
	}
	return products, nil
}

// Purchase debits the balance and orders the accounts from the reseller inside
// one transaction, so a reseller failure rolls the debit back.
func (s *Service) Purchase(ctx context.Context, userID uuid.UUID, productID string, quantity int) (*domain.Purchase, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	products, err := s.reseller.ListProducts(ctx)
	if err != nil {
		zap.L().Error("failed to fetch products", zap.Error(err))
		return nil, err
	}

	var product *domain.Product
	for i := range products {
		if products[i].ID == productID {
			product = &products[i]
			break
		}
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if product.Available < quantity {
		return nil, ErrOutOfStock
	}

	total := product.Price.Mul(decimal.NewFromInt(int64(quantity)))

	var purchase *domain.Purchase
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.profileService.Debit(ctx, userID, total); err != nil {
			return err
		}

		credentials, err := s.reseller.Buy(ctx, productID, quantity)
		if err != nil {
			zap.L().Error("reseller order failed", zap.String("productID", productID), zap.Error(err))
			return fmt.Errorf("reseller order failed: %w", err)
		}

		items, err := json.Marshal(credentials)
		if err != nil {
			return fmt.Errorf("failed to marshal credentials: %w", err)
		}

		purchase, err = s.purchaseRepo.CreatePurchase(ctx, &domain.Purchase{
			UserID:      userID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    quantity,
			Total:       total,
			Credentials: string(items),
			CreatedAt:   time.Now(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("purchase completed",
		zap.String("userID", userID.String()),
		zap.String("productID", productID),
		zap.Int("quantity", quantity),
		zap.String("total", total.String()),
	)
	return purchase, nil
}

func (s *Service) GetPurchases(ctx context.Context, userID uuid.UUID) ([]domain.Purchase, error) {
	purchases, err := s.purchaseRepo.GetPurchasesByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch purchases", zap.Error(err))
		return nil, err
	}
	return purchases, nil
}
