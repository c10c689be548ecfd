package purchaseservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mailmart/backend/internal/domain"
	"github.com/mailmart/backend/internal/pg"
	"github.com/mailmart/backend/internal/service/profileservice"
)

type mocks struct {
	purchaseRepo   *MockPurchaseRepo
	profileService *MockProfileService
	reseller       *MockResellerClient
	txManager      *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := &mocks{
		purchaseRepo:   NewMockPurchaseRepo(ctrl),
		profileService: NewMockProfileService(ctrl),
		reseller:       NewMockResellerClient(ctrl),
		txManager:      pg.NewMockTXManager(ctrl),
	}
	service := New(m.purchaseRepo, m.profileService, m.reseller, m.txManager)
	return service, m
}

func passthroughTx(m *mocks) {
	m.txManager.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
}

func stock() []domain.Product {
	return []domain.Product{
		{ID: "outlook-fresh", Name: "Outlook (fresh)", Price: decimal.RequireFromString("1.5"), Available: 120},
		{ID: "gmail-aged", Name: "Gmail (aged)", Price: decimal.RequireFromString("7"), Available: 2},
	}
}

func TestService_ListProducts(t *testing.T) {
	service, m := NewMock(t)

	m.reseller.EXPECT().ListProducts(gomock.Any()).Return(stock(), nil)
	products, err := service.ListProducts(context.Background())
	assert.NoError(t, err)
	assert.Len(t, products, 2)

	m.reseller.EXPECT().ListProducts(gomock.Any()).Return(nil, errors.New("reseller down"))
	_, err = service.ListProducts(context.Background())
	assert.Error(t, err)
}

func TestService_Purchase(t *testing.T) {
	userID := uuid.New()
	credentials := []domain.Credential{
		{Email: "a@outlook.com", Password: "pass1"},
		{Email: "b@outlook.com", Password: "pass2"},
		{Email: "c@outlook.com", Password: "pass3"},
	}

	tests := []struct {
		name        string
		productID   string
		quantity    int
		prepareMock func(m *mocks)
		expectedErr error
	}{
		{
			name:      "Successful purchase",
			productID: "outlook-fresh",
			quantity:  3,
			prepareMock: func(m *mocks) {
				passthroughTx(m)
				m.reseller.EXPECT().ListProducts(gomock.Any()).Return(stock(), nil)
				m.profileService.EXPECT().Debit(gomock.Any(), userID, decimal.RequireFromString("4.5")).Return(nil)
				m.reseller.EXPECT().Buy(gomock.Any(), "outlook-fresh", 3).Return(credentials, nil)
				m.purchaseRepo.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Purchase) (*domain.Purchase, error) {
						p.ID = uuid.New()
						return p, nil
					})
			},
		},
		{
			name:        "Invalid quantity",
			productID:   "outlook-fresh",
			quantity:    0,
			prepareMock: func(m *mocks) {},
			expectedErr: ErrInvalidQuantity,
		},
		{
			name:      "Product not found",
			productID: "yahoo-old",
			quantity:  1,
			prepareMock: func(m *mocks) {
				m.reseller.EXPECT().ListProducts(gomock.Any()).Return(stock(), nil)
			},
			expectedErr: ErrProductNotFound,
		},
		{
			name:      "Not enough stock",
			productID: "gmail-aged",
			quantity:  5,
			prepareMock: func(m *mocks) {
				m.reseller.EXPECT().ListProducts(gomock.Any()).Return(stock(), nil)
			},
			expectedErr: ErrOutOfStock,
		},
		{
			name:      "Insufficient balance",
			productID: "outlook-fresh",
			quantity:  3,
			prepareMock: func(m *mocks) {
				passthroughTx(m)
				m.reseller.EXPECT().ListProducts(gomock.Any()).Return(stock(), nil)
				m.profileService.EXPECT().Debit(gomock.Any(), userID, decimal.RequireFromString("4.5")).
					Return(profileservice.ErrInsufficientBalance)
			},
			expectedErr: profileservice.ErrInsufficientBalance,
		},
		{
			name:      "Reseller failure rolls back the debit",
			productID: "outlook-fresh",
			quantity:  3,
			prepareMock: func(m *mocks) {
				passthroughTx(m)
				m.reseller.EXPECT().ListProducts(gomock.Any()).Return(stock(), nil)
				m.profileService.EXPECT().Debit(gomock.Any(), userID, decimal.RequireFromString("4.5")).Return(nil)
				m.reseller.EXPECT().Buy(gomock.Any(), "outlook-fresh", 3).Return(nil, errors.New("order rejected"))
			},
			expectedErr: errors.New("reseller order failed: order rejected"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			purchase, err := service.Purchase(context.Background(), userID, tt.productID, tt.quantity)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.ErrorContains(t, err, tt.expectedErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, userID, purchase.UserID)
			assert.Equal(t, "outlook-fresh", purchase.ProductID)
			assert.Equal(t, 3, purchase.Quantity)
			assert.True(t, purchase.Total.Equal(decimal.RequireFromString("4.5")))
			assert.Contains(t, purchase.Credentials, "a@outlook.com")
		})
	}
}

func TestService_GetPurchases(t *testing.T) {
	userID := uuid.New()
	service, m := NewMock(t)

	expected := []domain.Purchase{{UserID: userID, ProductID: "outlook-fresh"}}
	m.purchaseRepo.EXPECT().GetPurchasesByUserID(gomock.Any(), userID).Return(expected, nil)

	purchases, err := service.GetPurchases(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, expected, purchases)

	m.purchaseRepo.EXPECT().GetPurchasesByUserID(gomock.Any(), userID).Return(nil, errors.New("database error"))
	_, err = service.GetPurchases(context.Background(), userID)
	assert.Error(t, err)
}
