package config

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/branchpay/walletcore/internal/domain"
	"github.com/branchpay/walletcore/internal/dto"
	"github.com/branchpay/walletcore/internal/service/configservice"
	"github.com/branchpay/walletcore/pkg/bonus"
	"github.com/branchpay/walletcore/pkg/principal"
)

func NewMock(t *testing.T) (*ConfigHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func asAdmin(r *http.Request) *http.Request {
	p := principal.Principal{ID: 9, Role: domain.RoleSuperAdmin}
	return r.WithContext(context.WithValue(r.Context(), principal.PrincipalKey, p))
}

func TestGetConfigHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		GetMaskedConfig(gomock.Any()).
		Return(&configservice.MaskedConfig{
			GatewayPublicKey:           "pk_test_abc",
			SecretKeyMasked:            "••••5678",
			WebhookSecretSet:           true,
			IsTestMode:                 true,
			DefaultCommissionPercent:   5,
			DefaultSettlementFrequency: domain.FrequencyWeekly,
			MinSettlementAmount:        50000,
			BonusTiers:                 []bonus.Tier{{MinAmount: 50000, Bonus: 5000}},
		}, nil)

	r := asAdmin(httptest.NewRequest(http.MethodGet, "/api/admin/config", nil))
	w := httptest.NewRecorder()
	handler.GetConfig(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.ConfigResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, "••••5678", body.GatewaySecretKeyMasked)
	assert.Equal(t, 500.0, body.MinSettlementAmount)
	assert.Equal(t, []dto.BonusTierDTO{{MinAmount: 500, Bonus: 50}}, body.BonusTiers)
}

func TestUpdateConfigHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Unchanged sentinel keeps the stored secret",
			body: `{"gatewayPublicKey":"pk_test_abc","gatewaySecretKey":"___UNCHANGED___","gatewayWebhookSecret":"whsec_new","defaultCommissionPercent":5,"defaultSettlementFrequency":"weekly","minSettlementAmount":500,"bonusTiers":[{"minAmount":500,"bonus":50}]}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateConfig(gomock.Any(), domain.RoleSuperAdmin, configservice.UpdateConfigParams{
						GatewayPublicKey:           "pk_test_abc",
						GatewaySecretKey:           configservice.KeepSecret(),
						GatewayWebhookSecret:       configservice.ReplaceSecret("whsec_new"),
						DefaultCommissionPercent:   5,
						DefaultSettlementFrequency: domain.FrequencyWeekly,
						MinSettlementAmount:        50000,
						BonusTiers:                 []bonus.Tier{{MinAmount: 50000, Bonus: 5000}},
					}).
					Return(&configservice.MaskedConfig{GatewayPublicKey: "pk_test_abc"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid commission",
			body: `{"defaultCommissionPercent":120,"defaultSettlementFrequency":"weekly"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateConfig(gomock.Any(), domain.RoleSuperAdmin, gomock.Any()).
					Return(nil, domain.NewValidationError("INVALID_COMMISSION", "commission percent must be between 0 and 100"))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Permission denied",
			body: `{"defaultSettlementFrequency":"weekly"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateConfig(gomock.Any(), domain.RoleSuperAdmin, gomock.Any()).
					Return(nil, domain.ErrPermissionDenied)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := asAdmin(httptest.NewRequest(http.MethodPut, "/api/admin/config", bytes.NewBufferString(tt.body)))
			w := httptest.NewRecorder()
			handler.UpdateConfig(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestBranchSettingsHandlers(t *testing.T) {
	handler, service := NewMock(t)

	withBranchID := func(r *http.Request, id string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("branchId", id)
		return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}

	t.Run("Get existing settings", func(t *testing.T) {
		override := 2.5
		service.EXPECT().
			GetBranchSettings(gomock.Any(), 7).
			Return(&domain.BranchWalletSettings{BranchID: 7, CommissionOverride: &override}, nil)

		r := asAdmin(withBranchID(httptest.NewRequest(http.MethodGet, "/api/admin/branches/7/settings", nil), "7"))
		w := httptest.NewRecorder()
		handler.GetBranchSettings(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.BranchSettingsDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, 7, body.BranchID)
		assert.Equal(t, 2.5, *body.CommissionOverride)
	})

	t.Run("Missing settings yield 404", func(t *testing.T) {
		service.EXPECT().GetBranchSettings(gomock.Any(), 8).Return(nil, nil)

		r := asAdmin(withBranchID(httptest.NewRequest(http.MethodGet, "/api/admin/branches/8/settings", nil), "8"))
		w := httptest.NewRecorder()
		handler.GetBranchSettings(w, r)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Upsert converts the minimum override to minor units", func(t *testing.T) {
		service.EXPECT().
			UpdateBranchSettings(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, settings *domain.BranchWalletSettings) (*domain.BranchWalletSettings, error) {
				assert.Equal(t, 7, settings.BranchID)
				assert.Equal(t, int64(25000), *settings.MinSettlementOverride)
				return settings, nil
			})

		body := `{"minSettlementOverride":250}`
		r := asAdmin(withBranchID(httptest.NewRequest(http.MethodPut, "/api/admin/branches/7/settings", bytes.NewBufferString(body)), "7"))
		w := httptest.NewRecorder()
		handler.UpdateBranchSettings(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Invalid branch id", func(t *testing.T) {
		r := asAdmin(withBranchID(httptest.NewRequest(http.MethodGet, "/api/admin/branches/x/settings", nil), "x"))
		w := httptest.NewRecorder()
		handler.GetBranchSettings(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
