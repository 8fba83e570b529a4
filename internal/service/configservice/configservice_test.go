package configservice

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/branchpay/walletcore/internal/domain"
	"github.com/branchpay/walletcore/pkg/bonus"
	"github.com/branchpay/walletcore/pkg/vault"
)

const testKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service, err := New(repo, testKey)
	assert.NoError(t, err)
	return service, repo
}

func encrypted(t *testing.T, plaintext string) string {
	field, err := vault.EncryptField(plaintext, testKey)
	assert.NoError(t, err)
	return field
}

func TestNew_RejectsBadKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, err := New(NewMockRepo(ctrl), "short")
	assert.ErrorIs(t, err, vault.ErrInvalidKey)
}

func TestGetMaskedConfig(t *testing.T) {
	t.Run("Masks the secret key tail", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().GetConfig(gomock.Any()).Return(&domain.WalletConfig{
			GatewayPublicKey:           "pk_test_abc",
			GatewaySecretKey:           encrypted(t, "sk_test_12345678"),
			GatewayWebhookSecret:       encrypted(t, "whsec_xyz"),
			DefaultCommissionPercent:   5,
			DefaultSettlementFrequency: domain.FrequencyWeekly,
			MinSettlementAmount:        50000,
		}, nil)

		masked, err := service.GetMaskedConfig(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "pk_test_abc", masked.GatewayPublicKey)
		assert.True(t, strings.HasSuffix(masked.SecretKeyMasked, "5678"))
		assert.NotContains(t, masked.SecretKeyMasked, "sk_test")
		assert.True(t, masked.WebhookSecretSet)
	})

	t.Run("Unconfigured platform gets the defaults", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().GetConfig(gomock.Any()).Return(nil, nil)

		masked, err := service.GetMaskedConfig(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, DefaultCommissionPercent, masked.DefaultCommissionPercent)
		assert.Equal(t, DefaultMinSettlement, masked.MinSettlementAmount)
		assert.Empty(t, masked.SecretKeyMasked)
		assert.True(t, masked.IsTestMode)
	})
}

func TestUpdateConfig(t *testing.T) {
	validParams := UpdateConfigParams{
		GatewayPublicKey:           "pk_live_abc",
		GatewaySecretKey:           ReplaceSecret("sk_live_98765432"),
		GatewayWebhookSecret:       KeepSecret(),
		DefaultCommissionPercent:   7,
		DefaultSettlementFrequency: domain.FrequencyDaily,
		MinSettlementAmount:        100000,
		MonthlyBonusCap:            30000,
	}

	t.Run("Encrypts replaced secrets and keeps the rest", func(t *testing.T) {
		service, repo := NewMock(t)
		keptWebhook := encrypted(t, "whsec_old")
		repo.EXPECT().GetConfig(gomock.Any()).Return(&domain.WalletConfig{
			ID:                   1,
			GatewayWebhookSecret: keptWebhook,
		}, nil)
		repo.EXPECT().UpsertConfig(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, config *domain.WalletConfig) (*domain.WalletConfig, error) {
				secret, err := vault.DecryptField(config.GatewaySecretKey, testKey)
				assert.NoError(t, err)
				assert.Equal(t, "sk_live_98765432", secret)
				assert.Equal(t, keptWebhook, config.GatewayWebhookSecret)
				repo.EXPECT().GetConfig(gomock.Any()).Return(config, nil)
				return config, nil
			})

		masked, err := service.UpdateConfig(context.Background(), domain.RoleSuperAdmin, validParams)
		assert.NoError(t, err)
		assert.True(t, strings.HasSuffix(masked.SecretKeyMasked, "5432"))
	})

	t.Run("Only a super admin may save", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.UpdateConfig(context.Background(), domain.RoleBranchAdmin, validParams)
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	})

	t.Run("Rejects out-of-range commission", func(t *testing.T) {
		service, _ := NewMock(t)
		params := validParams
		params.DefaultCommissionPercent = 120
		_, err := service.UpdateConfig(context.Background(), domain.RoleSuperAdmin, params)
		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "INVALID_COMMISSION", validationErr.Code)
	})
}

func TestValidateTiers(t *testing.T) {
	tests := []struct {
		name      string
		tiers     []bonus.Tier
		expectErr bool
	}{
		{
			name:  "Valid ladder",
			tiers: []bonus.Tier{{MinAmount: 50000, Bonus: 5000}, {MinAmount: 100000, Bonus: 15000}},
		},
		{
			name:  "Empty is valid",
			tiers: nil,
		},
		{
			name:      "Zero threshold",
			tiers:     []bonus.Tier{{MinAmount: 0, Bonus: 100}},
			expectErr: true,
		},
		{
			name:      "Negative bonus",
			tiers:     []bonus.Tier{{MinAmount: 100, Bonus: -1}},
			expectErr: true,
		},
		{
			name:      "Duplicate threshold",
			tiers:     []bonus.Tier{{MinAmount: 100, Bonus: 10}, {MinAmount: 100, Bonus: 20}},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTiers(tt.tiers)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDecryptedSecrets(t *testing.T) {
	t.Run("Round-trips the stored secret", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().GetConfig(gomock.Any()).Return(&domain.WalletConfig{
			GatewaySecretKey: encrypted(t, "sk_test_secret"),
		}, nil)

		secret, err := service.DecryptedSecretKey(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "sk_test_secret", secret)
	})

	t.Run("Unset secret is a config error", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().GetConfig(gomock.Any()).Return(nil, nil)

		_, err := service.DecryptedSecretKey(context.Background())
		var configErr *domain.ConfigError
		assert.ErrorAs(t, err, &configErr)
	})
}

func TestEffectiveValues(t *testing.T) {
	commissionOverride := 2.5
	minOverride := int64(25000)

	tests := []struct {
		name               string
		settings           *domain.BranchWalletSettings
		config             *domain.WalletConfig
		expectedPercent    float64
		expectedMinAmount  int64
		expectedFrequency  string
	}{
		{
			name:              "Branch override wins",
			settings:          &domain.BranchWalletSettings{CommissionOverride: &commissionOverride, MinSettlementOverride: &minOverride},
			config:            &domain.WalletConfig{DefaultCommissionPercent: 5, MinSettlementAmount: 50000, DefaultSettlementFrequency: domain.FrequencyWeekly},
			expectedPercent:   2.5,
			expectedMinAmount: 25000,
			expectedFrequency: domain.FrequencyWeekly,
		},
		{
			name:              "Global default fills the gaps",
			settings:          &domain.BranchWalletSettings{},
			config:            &domain.WalletConfig{DefaultCommissionPercent: 8, MinSettlementAmount: 60000, DefaultSettlementFrequency: domain.FrequencyDaily},
			expectedPercent:   8,
			expectedMinAmount: 60000,
			expectedFrequency: domain.FrequencyDaily,
		},
		{
			name:              "Compiled-in fallback when nothing is configured",
			settings:          nil,
			config:            nil,
			expectedPercent:   DefaultCommissionPercent,
			expectedMinAmount: DefaultMinSettlement,
			expectedFrequency: DefaultFrequency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			repo.EXPECT().GetBranchSettings(gomock.Any(), 7).Return(tt.settings, nil).Times(3)
			repo.EXPECT().GetConfig(gomock.Any()).Return(tt.config, nil).Times(3)

			percent, err := service.EffectiveCommissionPercent(context.Background(), 7)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedPercent, percent)

			minAmount, err := service.EffectiveMinSettlement(context.Background(), 7)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMinAmount, minAmount)

			frequency, err := service.EffectiveFrequency(context.Background(), 7)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedFrequency, frequency)
		})
	}
}

func TestUpdateBranchSettings(t *testing.T) {
	t.Run("Valid settings are saved", func(t *testing.T) {
		service, repo := NewMock(t)
		method := domain.PayoutMethodGCash
		settings := &domain.BranchWalletSettings{BranchID: 7, PayoutMethod: &method}
		repo.EXPECT().UpsertBranchSettings(gomock.Any(), settings).Return(settings, nil)

		saved, err := service.UpdateBranchSettings(context.Background(), settings)
		assert.NoError(t, err)
		assert.Equal(t, settings, saved)
	})

	t.Run("Rejects an unknown payout method", func(t *testing.T) {
		service, _ := NewMock(t)
		method := "cheque"
		_, err := service.UpdateBranchSettings(context.Background(), &domain.BranchWalletSettings{BranchID: 7, PayoutMethod: &method})
		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "INVALID_PAYOUT_METHOD", validationErr.Code)
	})

	t.Run("Rejects an out-of-range commission override", func(t *testing.T) {
		service, _ := NewMock(t)
		percent := -1.0
		_, err := service.UpdateBranchSettings(context.Background(), &domain.BranchWalletSettings{BranchID: 7, CommissionOverride: &percent})
		assert.Error(t, err)
	})
}
