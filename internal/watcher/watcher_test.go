package watcher

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mailmart/backend/internal/config"
	"github.com/mailmart/backend/internal/domain"
	"github.com/mailmart/backend/internal/gateway"
)

func NewMock(t *testing.T) (*Service, *MockDepositService, *MockGateways) {
	cfg := &config.Config{SweepInterval: time.Hour}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	depositService := NewMockDepositService(ctrl)
	gateways := NewMockGateways(ctrl)
	service := New(cfg, depositService, gateways)
	return service, depositService, gateways
}

func TestService_Start(t *testing.T) {
	service, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_pollDeposits(t *testing.T) {
	tests := []struct {
		name             string
		deposits         []domain.Deposit
		mockFindDeposits func(ctx context.Context, limit uint32) ([]domain.Deposit, error)
		mockAddTask      func(ctx context.Context, task Task) error
		taskCount        int
	}{
		{
			name: "successfully schedules waiting deposits",
			deposits: []domain.Deposit{
				{PaymentID: "poll-1", Gateway: gateway.NameNowPayments},
				{PaymentID: "poll-2", Gateway: gateway.NameCryptomus},
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return nil
			},
			taskCount: 2,
		},
		{
			name:     "fails when fetching deposits",
			deposits: nil,
			mockFindDeposits: func(ctx context.Context, limit uint32) ([]domain.Deposit, error) {
				return nil, fmt.Errorf("failed to fetch deposits for polling")
			},
			taskCount: 0,
		},
		{
			name: "error in workerPool AddTask",
			deposits: []domain.Deposit{
				{PaymentID: "poll-3", Gateway: gateway.NameNowPayments},
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return fmt.Errorf("failed to add task to worker pool")
			},
			taskCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			depositService := NewMockDepositService(ctrl)
			workerPool := NewMockWorkerPoolI(ctrl)

			if tt.mockFindDeposits != nil {
				depositService.EXPECT().
					FindForPolling(gomock.Any(), gomock.Any()).
					DoAndReturn(tt.mockFindDeposits).
					Times(1)
			} else {
				depositService.EXPECT().
					FindForPolling(gomock.Any(), gomock.Any()).
					Return(tt.deposits, nil).
					Times(1)
			}
			if tt.taskCount > 0 {
				workerPool.EXPECT().
					AddTask(gomock.Any(), gomock.Any()).
					DoAndReturn(tt.mockAddTask).
					Times(tt.taskCount)
			}

			service := &Service{
				depositService: depositService,
				workerPool:     workerPool,
				limit:          10,
			}
			service.pollDeposits(context.Background())
		})
	}
}

func TestService_pollDeposits_SkipsAlreadyPolling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	depositService := NewMockDepositService(ctrl)
	workerPool := NewMockWorkerPoolI(ctrl)

	deposits := []domain.Deposit{{PaymentID: "poll-busy", Gateway: gateway.NameNowPayments}}
	depositService.EXPECT().
		FindForPolling(gomock.Any(), gomock.Any()).
		Return(deposits, nil).
		Times(2)
	// Первый проход берёт депозит в работу, второй должен его пропустить.
	workerPool.EXPECT().
		AddTask(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	service := &Service{
		depositService: depositService,
		workerPool:     workerPool,
		limit:          10,
	}
	service.pollDeposits(context.Background())
	service.pollDeposits(context.Background())

	pollingDeposits.Delete("poll-busy")
}

func TestService_handleDeposit(t *testing.T) {
	deposit := domain.Deposit{PaymentID: "4945313437", Gateway: gateway.NameNowPayments}

	tests := []struct {
		name        string
		prepareMock func(depositService *MockDepositService, gateways *MockGateways, gw *gateway.MockGateway)
		expectErr   bool
	}{
		{
			name: "status fetched and reconciled",
			prepareMock: func(depositService *MockDepositService, gateways *MockGateways, gw *gateway.MockGateway) {
				gateways.EXPECT().ByName(gateway.NameNowPayments).Return(gw, nil)
				gw.EXPECT().GetPaymentStatus(gomock.Any(), "4945313437").Return("finished", nil)
				depositService.EXPECT().
					Reconcile(gomock.Any(), gateway.NameNowPayments, "4945313437", "finished").
					Return(nil)
			},
		},
		{
			name: "transient poll error retried",
			prepareMock: func(depositService *MockDepositService, gateways *MockGateways, gw *gateway.MockGateway) {
				gateways.EXPECT().ByName(gateway.NameNowPayments).Return(gw, nil)
				gw.EXPECT().GetPaymentStatus(gomock.Any(), "4945313437").Return("", errors.New("timeout"))
				gw.EXPECT().GetPaymentStatus(gomock.Any(), "4945313437").Return("confirming", nil)
				depositService.EXPECT().
					Reconcile(gomock.Any(), gateway.NameNowPayments, "4945313437", "confirming").
					Return(nil)
			},
		},
		{
			name: "unknown gateway",
			prepareMock: func(depositService *MockDepositService, gateways *MockGateways, gw *gateway.MockGateway) {
				gateways.EXPECT().ByName(gateway.NameNowPayments).Return(nil, gateway.ErrUnknownGateway)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			depositService := NewMockDepositService(ctrl)
			gateways := NewMockGateways(ctrl)
			gw := gateway.NewMockGateway(ctrl)
			tt.prepareMock(depositService, gateways, gw)

			service := &Service{
				depositService: depositService,
				gateways:       gateways,
			}
			err := service.handleDeposit(context.Background(), deposit)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
