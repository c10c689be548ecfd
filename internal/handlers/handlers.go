package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/mailmart/backend/docs"
	balancehandlers "github.com/mailmart/backend/internal/handlers/balance"
	depositshandlers "github.com/mailmart/backend/internal/handlers/deposits"
	purchaseshandlers "github.com/mailmart/backend/internal/handlers/purchases"
	webhookhandlers "github.com/mailmart/backend/internal/handlers/webhooks"
	"github.com/mailmart/backend/internal/service"
	"github.com/mailmart/backend/pkg/auth"
)

type WebhookHandler interface {
	NowPayments(w http.ResponseWriter, r *http.Request)
	Cryptomus(w http.ResponseWriter, r *http.Request)
}

type DepositHandler interface {
	CreateDeposit(w http.ResponseWriter, r *http.Request)
	GetDeposits(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type PurchaseHandler interface {
	GetProducts(w http.ResponseWriter, r *http.Request)
	CreatePurchase(w http.ResponseWriter, r *http.Request)
	GetPurchases(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	WebhookHandler  WebhookHandler
	DepositHandler  DepositHandler
	BalanceHandler  BalanceHandler
	PurchaseHandler PurchaseHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, gateways webhookhandlers.Gateways, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		WebhookHandler:  webhookhandlers.New(s.DepositService, gateways),
		DepositHandler:  depositshandlers.New(s.DepositService),
		BalanceHandler:  balancehandlers.New(s.ProfileService),
		PurchaseHandler: purchaseshandlers.New(s.PurchaseService),
		jwtService:      jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/webhooks", func(r chi.Router) {
			r.Post("/nowpayments", h.WebhookHandler.NowPayments)
			r.Post("/cryptomus", h.WebhookHandler.Cryptomus)
		})
		r.Get("/products", h.PurchaseHandler.GetProducts)

		r.Route("/user", func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))
			r.Route("/deposits", func(r chi.Router) {
				r.Post("/", h.DepositHandler.CreateDeposit)
				r.Get("/", h.DepositHandler.GetDeposits)
			})
			r.Get("/balance", h.BalanceHandler.GetBalance)
			r.Route("/purchases", func(r chi.Router) {
				r.Post("/", h.PurchaseHandler.CreatePurchase)
				r.Get("/", h.PurchaseHandler.GetPurchases)
			})
		})
	})

	return r
}
