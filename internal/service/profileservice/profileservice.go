package profileservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mailmart/backend/internal/domain"
)

type Repo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Create(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error
	Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (bool, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// GetProfile returns the user's profile, creating it on first touch. Users are
// registered in the external identity provider, so profile rows appear lazily.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get profile", zap.Error(err))
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	profile, err = s.repo.Create(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create profile", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

func (s *Service) Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error {
	if err := s.repo.Credit(ctx, userID, amount); err != nil {
		zap.L().Error("failed to credit balance", zap.Error(err))
		return err
	}
	zap.L().Info("balance credited", zap.String("userID", userID.String()), zap.String("amount", amount.String()))
	return nil
}

func (s *Service) Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error {
	ok, err := s.repo.Debit(ctx, userID, amount)
	if err != nil {
		zap.L().Error("failed to debit balance", zap.Error(err))
		return err
	}
	if !ok {
		return ErrInsufficientBalance
	}
	return nil
}
