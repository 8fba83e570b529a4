package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/branchpay/walletcore/docs"
	"github.com/branchpay/walletcore/internal/domain"
	"github.com/branchpay/walletcore/pkg/principal"
)

func newTestHandlers(t *testing.T) (*Handlers, *principal.Verifier) {
	ctrl := gomock.NewController(t)

	walletHandler := NewMockWalletHandler(ctrl)
	settlementHandler := NewMockSettlementHandler(ctrl)
	configHandler := NewMockConfigHandler(ctrl)

	walletHandler.EXPECT().GetWallet(gomock.Any(), gomock.Any()).AnyTimes()
	walletHandler.EXPECT().CreateTopUpSession(gomock.Any(), gomock.Any()).AnyTimes()
	walletHandler.EXPECT().CheckBalance(gomock.Any(), gomock.Any()).AnyTimes()
	walletHandler.EXPECT().Charge(gomock.Any(), gomock.Any()).AnyTimes()
	walletHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	walletHandler.EXPECT().Webhook(gomock.Any(), gomock.Any()).AnyTimes()
	settlementHandler.EXPECT().Request(gomock.Any(), gomock.Any()).AnyTimes()
	settlementHandler.EXPECT().Readiness(gomock.Any(), gomock.Any()).AnyTimes()
	settlementHandler.EXPECT().ListMine(gomock.Any(), gomock.Any()).AnyTimes()
	settlementHandler.EXPECT().ListByStatus(gomock.Any(), gomock.Any()).AnyTimes()
	settlementHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	settlementHandler.EXPECT().Approve(gomock.Any(), gomock.Any()).AnyTimes()
	settlementHandler.EXPECT().MarkProcessing(gomock.Any(), gomock.Any()).AnyTimes()
	settlementHandler.EXPECT().Complete(gomock.Any(), gomock.Any()).AnyTimes()
	settlementHandler.EXPECT().Reject(gomock.Any(), gomock.Any()).AnyTimes()
	settlementHandler.EXPECT().SettlementEarnings(gomock.Any(), gomock.Any()).AnyTimes()
	settlementHandler.EXPECT().ListEarnings(gomock.Any(), gomock.Any()).AnyTimes()
	settlementHandler.EXPECT().PendingEarnings(gomock.Any(), gomock.Any()).AnyTimes()
	configHandler.EXPECT().GetConfig(gomock.Any(), gomock.Any()).AnyTimes()
	configHandler.EXPECT().UpdateConfig(gomock.Any(), gomock.Any()).AnyTimes()
	configHandler.EXPECT().GetBranchSettings(gomock.Any(), gomock.Any()).AnyTimes()
	configHandler.EXPECT().UpdateBranchSettings(gomock.Any(), gomock.Any()).AnyTimes()
	configHandler.EXPECT().ListBranchSettings(gomock.Any(), gomock.Any()).AnyTimes()

	verifier := principal.NewVerifier("routing-test-key")
	return &Handlers{
		WalletHandler:     walletHandler,
		SettlementHandler: settlementHandler,
		ConfigHandler:     configHandler,
		verifier:          verifier,
	}, verifier
}

func TestInitRoutes(t *testing.T) {
	h, verifier := newTestHandlers(t)
	router := chi.NewRouter()
	h.InitRoutes(router)

	expiry := time.Now().Add(time.Hour)
	customerToken, err := verifier.Sign(principal.Principal{ID: 1, Role: "customer"}, expiry)
	assert.NoError(t, err)
	branchToken, err := verifier.Sign(principal.Principal{ID: 3, Role: domain.RoleBranchAdmin, BranchID: 7}, expiry)
	assert.NoError(t, err)
	adminToken, err := verifier.Sign(principal.Principal{ID: 9, Role: domain.RoleSuperAdmin}, expiry)
	assert.NoError(t, err)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/wallet/webhook", "", http.StatusOK},
		{"GET", "/api/wallet", "", http.StatusUnauthorized},
		{"GET", "/api/wallet", customerToken, http.StatusOK},
		{"POST", "/api/wallet/topup", customerToken, http.StatusOK},
		{"POST", "/api/wallet/charge", customerToken, http.StatusForbidden},
		{"POST", "/api/wallet/charge", branchToken, http.StatusOK},
		{"GET", "/api/earnings", customerToken, http.StatusForbidden},
		{"GET", "/api/earnings/pending", branchToken, http.StatusOK},
		{"POST", "/api/settlements", branchToken, http.StatusOK},
		{"GET", "/api/settlements", branchToken, http.StatusOK},
		{"POST", "/api/admin/settlements/1/approve", branchToken, http.StatusForbidden},
		{"POST", "/api/admin/settlements/1/approve", adminToken, http.StatusOK},
		{"GET", "/api/admin/config", branchToken, http.StatusForbidden},
		{"GET", "/api/admin/config", adminToken, http.StatusOK},
		{"PUT", "/api/admin/branches/7/settings", adminToken, http.StatusOK},
		{"GET", "/api/admin/branches/settings", adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
