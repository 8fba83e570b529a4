package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/branchpay/walletcore/docs"
	"github.com/branchpay/walletcore/internal/domain"
	"github.com/branchpay/walletcore/internal/gateway"
	confighandlers "github.com/branchpay/walletcore/internal/handlers/config"
	settlementhandlers "github.com/branchpay/walletcore/internal/handlers/settlement"
	wallethandlers "github.com/branchpay/walletcore/internal/handlers/wallet"
	"github.com/branchpay/walletcore/internal/pg"
	"github.com/branchpay/walletcore/internal/service"
	"github.com/branchpay/walletcore/pkg/principal"
)

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	CreateTopUpSession(w http.ResponseWriter, r *http.Request)
	CheckBalance(w http.ResponseWriter, r *http.Request)
	Charge(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	Webhook(w http.ResponseWriter, r *http.Request)
}

type SettlementHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	Readiness(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListByStatus(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	MarkProcessing(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	SettlementEarnings(w http.ResponseWriter, r *http.Request)
	ListEarnings(w http.ResponseWriter, r *http.Request)
	PendingEarnings(w http.ResponseWriter, r *http.Request)
}

type ConfigHandler interface {
	GetConfig(w http.ResponseWriter, r *http.Request)
	UpdateConfig(w http.ResponseWriter, r *http.Request)
	GetBranchSettings(w http.ResponseWriter, r *http.Request)
	UpdateBranchSettings(w http.ResponseWriter, r *http.Request)
	ListBranchSettings(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	WalletHandler     WalletHandler
	SettlementHandler SettlementHandler
	ConfigHandler     ConfigHandler

	verifier *principal.Verifier
}

func New(s *service.Services, gatewayClient gateway.ClientI, txManager pg.TXManager, verifier *principal.Verifier) *Handlers {
	return &Handlers{
		WalletHandler:     wallethandlers.New(s.WalletService, s.EarningService, gatewayClient, s.ConfigService, txManager),
		SettlementHandler: settlementhandlers.New(s.SettlementService, s.EarningService),
		ConfigHandler:     confighandlers.New(s.ConfigService),
		verifier:          verifier,
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

	// the gateway authenticates with an HMAC signature, not a principal token
	r.Post("/api/wallet/webhook", h.WalletHandler.Webhook)

	r.Group(func(r chi.Router) {
		r.Use(principal.Middleware(h.verifier))

		r.Route("/api/wallet", func(r chi.Router) {
			r.Get("/", h.WalletHandler.GetWallet)
			r.Post("/topup", h.WalletHandler.CreateTopUpSession)
			r.Post("/balance-check", h.WalletHandler.CheckBalance)
			r.Get("/transactions", h.WalletHandler.GetTransactions)

			r.With(principal.RequireRole(domain.RoleBranchAdmin, domain.RoleSuperAdmin)).
				Post("/charge", h.WalletHandler.Charge)
		})

		r.Route("/api/earnings", func(r chi.Router) {
			r.Use(principal.RequireRole(domain.RoleBranchAdmin, domain.RoleSuperAdmin))
			r.Get("/", h.SettlementHandler.ListEarnings)
			r.Get("/pending", h.SettlementHandler.PendingEarnings)
		})

		r.Route("/api/settlements", func(r chi.Router) {
			r.Use(principal.RequireRole(domain.RoleBranchAdmin, domain.RoleSuperAdmin))
			r.Post("/", h.SettlementHandler.Request)
			r.Get("/", h.SettlementHandler.ListMine)
			r.Get("/readiness", h.SettlementHandler.Readiness)
			r.Get("/{id}", h.SettlementHandler.Get)
			r.Get("/{id}/earnings", h.SettlementHandler.SettlementEarnings)
		})

		r.Route("/api/admin", func(r chi.Router) {
			r.Use(principal.RequireRole(domain.RoleSuperAdmin))

			r.Route("/settlements", func(r chi.Router) {
				r.Get("/", h.SettlementHandler.ListByStatus)
				r.Post("/{id}/approve", h.SettlementHandler.Approve)
				r.Post("/{id}/process", h.SettlementHandler.MarkProcessing)
				r.Post("/{id}/complete", h.SettlementHandler.Complete)
				r.Post("/{id}/reject", h.SettlementHandler.Reject)
			})

			r.Route("/config", func(r chi.Router) {
				r.Get("/", h.ConfigHandler.GetConfig)
				r.Put("/", h.ConfigHandler.UpdateConfig)
			})

			r.Get("/branches/settings", h.ConfigHandler.ListBranchSettings)
			r.Route("/branches/{branchId}/settings", func(r chi.Router) {
				r.Get("/", h.ConfigHandler.GetBranchSettings)
				r.Put("/", h.ConfigHandler.UpdateBranchSettings)
			})
		})
	})

	return r
}
