package depositservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mailmart/backend/internal/domain"
	"github.com/mailmart/backend/internal/gateway"
	"github.com/mailmart/backend/internal/pg"
)

type DepositRepo interface {
	Save(ctx context.Context, deposit *domain.Deposit) error
	FindByPaymentID(ctx context.Context, paymentID string) (*domain.Deposit, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Deposit, error)
	UpdateStatus(ctx context.Context, paymentID string, status domain.DepositStatus, gatewayStatus string) error
	Confirm(ctx context.Context, paymentID string, gatewayStatus string) (*domain.Deposit, bool, error)
	FindForPolling(ctx context.Context, limit uint32) ([]domain.Deposit, error)
	SweepExpired(ctx context.Context, now time.Time) (int64, error)
}

type ProfileService interface {
	Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error
}

type Gateways interface {
	ByName(name string) (gateway.Gateway, error)
}

type Service struct {
	depositRepo    DepositRepo
	profileService ProfileService
	gateways       Gateways
	txManager      pg.TXManager
	depositTTL     time.Duration
}

func New(depositRepo DepositRepo, profileService ProfileService, gateways Gateways, txManager pg.TXManager, depositTTL time.Duration) *Service {
	return &Service{
		depositRepo:    depositRepo,
		profileService: profileService,
		gateways:       gateways,
		txManager:      txManager,
		depositTTL:     depositTTL,
	}
}

var (
	ErrInvalidAmount = errors.New("invalid deposit amount")
)

func (s *Service) CreateDeposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, currency string, gatewayName string) (*domain.Deposit, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	gw, err := s.gateways.ByName(gatewayName)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	invoice, err := gw.CreateInvoice(ctx, gateway.InvoiceRequest{
		OrderID:  id.String(),
		Amount:   amount,
		Currency: currency,
	})
	if err != nil {
		zap.L().Error("failed to create invoice", zap.String("gateway", gatewayName), zap.Error(err))
		return nil, err
	}

	now := time.Now()
	deposit := &domain.Deposit{
		ID:         id,
		UserID:     userID,
		Amount:     amount,
		Currency:   currency,
		Gateway:    gatewayName,
		PaymentID:  invoice.PaymentID,
		Status:     domain.DepositStatusWaiting,
		PayAddress: invoice.PayAddress,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.depositTTL),
		UpdatedAt:  now,
	}

	if err := s.depositRepo.Save(ctx, deposit); err != nil {
		zap.L().Error("can't save deposit: ", zap.Error(err))
		return nil, err
	}

	return deposit, nil
}

func (s *Service) GetDeposits(ctx context.Context, userID uuid.UUID) ([]domain.Deposit, error) {
	deposits, err := s.depositRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get deposits", zap.Error(err))
		return nil, err
	}
	return deposits, nil
}

// Reconcile applies a verified gateway status report to the deposit it
// references. Reports about unknown payments and already-expired deposits are
// benign no-ops so the gateway stops retrying.
func (s *Service) Reconcile(ctx context.Context, gatewayName string, paymentID string, gatewayStatus string) error {
	gw, err := s.gateways.ByName(gatewayName)
	if err != nil {
		return err
	}

	deposit, err := s.depositRepo.FindByPaymentID(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("failed to look up deposit %s: %w", paymentID, err)
	}
	if deposit == nil {
		zap.L().Info("webhook for unknown payment ignored", zap.String("paymentID", paymentID), zap.String("gateway", gatewayName))
		return nil
	}
	if deposit.Status == domain.DepositStatusExpired {
		zap.L().Info("webhook for expired deposit ignored", zap.String("paymentID", paymentID), zap.String("status", gatewayStatus))
		return nil
	}

	if gw.IsPaid(gatewayStatus) {
		// The status flip and the credit must land together: the CAS decides
		// whether this delivery is the one that credits, every later delivery
		// finds no waiting row.
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			confirmed, credited, err := s.depositRepo.Confirm(ctx, paymentID, gatewayStatus)
			if err != nil {
				return fmt.Errorf("failed to confirm deposit %s: %w", paymentID, err)
			}
			if !credited {
				zap.L().Info("deposit already settled, skipping credit", zap.String("paymentID", paymentID))
				return nil
			}
			if err := s.profileService.Credit(ctx, confirmed.UserID, confirmed.Amount); err != nil {
				return fmt.Errorf("failed to credit user %s: %w", confirmed.UserID, err)
			}
			zap.L().Info("deposit confirmed",
				zap.String("paymentID", paymentID),
				zap.String("userID", confirmed.UserID.String()),
				zap.String("amount", confirmed.Amount.String()),
			)
			return nil
		})
	}

	mapped := gw.MapStatus(gatewayStatus)
	if err := s.depositRepo.UpdateStatus(ctx, paymentID, mapped, gatewayStatus); err != nil {
		return fmt.Errorf("failed to update deposit %s: %w", paymentID, err)
	}
	return nil
}

func (s *Service) SweepExpired(ctx context.Context) (int64, error) {
	expired, err := s.depositRepo.SweepExpired(ctx, time.Now())
	if err != nil {
		zap.L().Error("expiry sweep failed", zap.Error(err))
		return 0, err
	}
	if expired > 0 {
		zap.L().Info("deposits expired", zap.Int64("count", expired))
	}
	return expired, nil
}

func (s *Service) FindForPolling(ctx context.Context, limit uint32) ([]domain.Deposit, error) {
	deposits, err := s.depositRepo.FindForPolling(ctx, limit)
	if err != nil {
		zap.L().Error("failed to fetch deposits for polling", zap.Error(err))
		return nil, err
	}
	return deposits, nil
}
