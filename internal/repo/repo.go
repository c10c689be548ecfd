package repo

import (
	"github.com/mailmart/backend/internal/pg"
	depositrepo "github.com/mailmart/backend/internal/repo/deposit-repo"
	profilerepo "github.com/mailmart/backend/internal/repo/profile-repo"
	purchaserepo "github.com/mailmart/backend/internal/repo/purchase-repo"
	"github.com/mailmart/backend/internal/service/depositservice"
	"github.com/mailmart/backend/internal/service/profileservice"
	"github.com/mailmart/backend/internal/service/purchaseservice"
)

type Repositories struct {
	DepositRepo  depositservice.DepositRepo
	ProfileRepo  profileservice.Repo
	PurchaseRepo purchaseservice.PurchaseRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	depositRepo := depositrepo.New(conn, txManager)
	profileRepo := profilerepo.New(conn, txManager)
	purchaseRepo := purchaserepo.New(conn)

	return &Repositories{
		DepositRepo:  depositRepo,
		ProfileRepo:  profileRepo,
		PurchaseRepo: purchaseRepo,
	}
}
