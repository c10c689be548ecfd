package watcher

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mailmart/backend/internal/config"
	"github.com/mailmart/backend/internal/domain"
	"github.com/mailmart/backend/internal/gateway"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var pollingDeposits sync.Map

type DepositService interface {
	FindForPolling(ctx context.Context, limit uint32) ([]domain.Deposit, error)
	SweepExpired(ctx context.Context) (int64, error)
	Reconcile(ctx context.Context, gatewayName string, paymentID string, gatewayStatus string) error
}

type Gateways interface {
	ByName(name string) (gateway.Gateway, error)
}

// Service periodically expires stale deposits and polls the gateways for
// waiting ones, covering webhooks that never arrived.
type Service struct {
	depositService DepositService
	gateways       Gateways
	limit          uint32
	workerPool     WorkerPoolI
	sweepInterval  time.Duration
}

func New(cfg *config.Config, depositService DepositService, gateways Gateways) *Service {
	return &Service{
		depositService: depositService,
		gateways:       gateways,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		sweepInterval:  cfg.SweepInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Deposit watcher started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping watcher")
			return
		case <-ticker.C:
			if _, err := s.depositService.SweepExpired(ctx); err != nil {
				zap.L().Error("Failed to sweep expired deposits", zap.Error(err))
			}
			s.pollDeposits(ctx)
		}
	}
}

func (s *Service) pollDeposits(ctx context.Context) {
	deposits, err := s.depositService.FindForPolling(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch deposits for polling", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, deposit := range deposits {
		deposit := deposit

		if _, loaded := pollingDeposits.LoadOrStore(deposit.PaymentID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer pollingDeposits.Delete(deposit.PaymentID)
				return s.handleDeposit(ctx, deposit)
			})
			if err != nil {
				pollingDeposits.Delete(deposit.PaymentID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error polling deposits", zap.Error(err))
	}
}

func (s *Service) handleDeposit(ctx context.Context, deposit domain.Deposit) error {
	gw, err := s.gateways.ByName(deposit.Gateway)
	if err != nil {
		return fmt.Errorf("deposit %s references unknown gateway %s: %w", deposit.PaymentID, deposit.Gateway, err)
	}

	var status string
	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			status, err = gw.GetPaymentStatus(ctx, deposit.PaymentID)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to poll payment %s after %d retries: %w", deposit.PaymentID, maxRetries, err)
			}

			return s.depositService.Reconcile(ctx, deposit.Gateway, deposit.PaymentID, status)
		}
	}
	return nil
}
