package service

import (
	"time"

	"github.com/mailmart/backend/internal/pg"
	"github.com/mailmart/backend/internal/repo"
	depositservice "github.com/mailmart/backend/internal/service/depositservice"
	profileservice "github.com/mailmart/backend/internal/service/profileservice"
	purchaseservice "github.com/mailmart/backend/internal/service/purchaseservice"
)

type Services struct {
	DepositService  *depositservice.Service
	ProfileService  *profileservice.Service
	PurchaseService *purchaseservice.Service
}

type Deps struct {
	TXManager  pg.TXManager
	Gateways   depositservice.Gateways
	Reseller   purchaseservice.ResellerClient
	DepositTTL time.Duration
}

func New(repo *repo.Repositories, deps Deps) *Services {
	profileService := profileservice.New(repo.ProfileRepo)
	depositService := depositservice.New(repo.DepositRepo, profileService, deps.Gateways, deps.TXManager, deps.DepositTTL)
	purchaseService := purchaseservice.New(repo.PurchaseRepo, profileService, deps.Reseller, deps.TXManager)

	return &Services{
		DepositService:  depositService,
		ProfileService:  profileService,
		PurchaseService: purchaseService,
	}
}
