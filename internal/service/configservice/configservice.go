package configservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/branchpay/walletcore/internal/domain"
	"github.com/branchpay/walletcore/pkg/bonus"
	"github.com/branchpay/walletcore/pkg/vault"
)

type Repo interface {
	GetConfig(ctx context.Context) (*domain.WalletConfig, error)
	UpsertConfig(ctx context.Context, config *domain.WalletConfig) (*domain.WalletConfig, error)
	GetBranchSettings(ctx context.Context, branchID int) (*domain.BranchWalletSettings, error)
	UpsertBranchSettings(ctx context.Context, settings *domain.BranchWalletSettings) (*domain.BranchWalletSettings, error)
	ListBranchSettings(ctx context.Context) ([]domain.BranchWalletSettings, error)
}

// Platform-wide fallbacks used until a configuration row exists.
const (
	DefaultCommissionPercent   = 5.0
	DefaultFrequency           = domain.FrequencyWeekly
	DefaultMinSettlement int64 = 50000
)

type Service struct {
	repo          Repo
	encryptionKey string
}

func New(repo Repo, encryptionKey string) (*Service, error) {
	if !vault.IsValidKey(encryptionKey) {
		return nil, vault.ErrInvalidKey
	}
	return &Service{
		repo:          repo,
		encryptionKey: encryptionKey,
	}, nil
}

// SecretUpdate says what to do with a stored secret on save: keep the
// current ciphertext or replace it with a new plaintext value.
type SecretUpdate struct {
	replace bool
	value   string
}

func KeepSecret() SecretUpdate {
	return SecretUpdate{}
}

func ReplaceSecret(value string) SecretUpdate {
	return SecretUpdate{replace: true, value: value}
}

// UpdateConfigParams carries a configuration save. Secrets arrive as
// plaintext and are encrypted before they touch the database.
type UpdateConfigParams struct {
	GatewayPublicKey           string
	GatewaySecretKey           SecretUpdate
	GatewayWebhookSecret       SecretUpdate
	IsTestMode                 bool
	DefaultCommissionPercent   float64
	DefaultSettlementFrequency string
	MinSettlementAmount        int64
	BonusTiers                 []bonus.Tier
	MonthlyBonusCap            int64
}

// MaskedConfig is the admin-facing view of the configuration. Secrets
// are reduced to a set/unset flag and a tail for recognition.
type MaskedConfig struct {
	GatewayPublicKey           string
	SecretKeyMasked            string
	WebhookSecretSet           bool
	IsTestMode                 bool
	DefaultCommissionPercent   float64
	DefaultSettlementFrequency string
	MinSettlementAmount        int64
	BonusTiers                 []bonus.Tier
	MonthlyBonusCap            int64
}

// GetMaskedConfig returns the configuration with secrets masked. A
// missing configuration row yields the platform defaults.
func (s *Service) GetMaskedConfig(ctx context.Context) (*MaskedConfig, error) {
	config, err := s.repo.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return &MaskedConfig{
			DefaultCommissionPercent:   DefaultCommissionPercent,
			DefaultSettlementFrequency: DefaultFrequency,
			MinSettlementAmount:        DefaultMinSettlement,
			BonusTiers:                 bonus.DefaultTiers,
			IsTestMode:                 true,
		}, nil
	}

	masked := &MaskedConfig{
		GatewayPublicKey:           config.GatewayPublicKey,
		WebhookSecretSet:           config.GatewayWebhookSecret != "",
		IsTestMode:                 config.IsTestMode,
		DefaultCommissionPercent:   config.DefaultCommissionPercent,
		DefaultSettlementFrequency: config.DefaultSettlementFrequency,
		MinSettlementAmount:        config.MinSettlementAmount,
		BonusTiers:                 config.Tiers(),
		MonthlyBonusCap:            config.MonthlyBonusCap,
	}
	if config.GatewaySecretKey != "" {
		secret, err := vault.DecryptField(config.GatewaySecretKey, s.encryptionKey)
		if err != nil {
			return nil, err
		}
		masked.SecretKeyMasked = maskSecret(secret)
	}
	return masked, nil
}

func maskSecret(secret string) string {
	if len(secret) <= 4 {
		return "••••"
	}
	return "••••" + secret[len(secret)-4:]
}

// UpdateConfig saves the platform configuration. Only a super admin
// may call it; the handler enforces that too, but secrets warrant the
// second check.
func (s *Service) UpdateConfig(ctx context.Context, actorRole string, params UpdateConfigParams) (*MaskedConfig, error) {
	if actorRole != domain.RoleSuperAdmin {
		return nil, domain.ErrPermissionDenied
	}
	if err := ValidateTiers(params.BonusTiers); err != nil {
		return nil, err
	}
	if err := validateDefaults(params); err != nil {
		return nil, err
	}

	current, err := s.repo.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	next := &domain.WalletConfig{
		GatewayPublicKey:           params.GatewayPublicKey,
		IsTestMode:                 params.IsTestMode,
		DefaultCommissionPercent:   params.DefaultCommissionPercent,
		DefaultSettlementFrequency: params.DefaultSettlementFrequency,
		MinSettlementAmount:        params.MinSettlementAmount,
		BonusTiers:                 params.BonusTiers,
		MonthlyBonusCap:            params.MonthlyBonusCap,
	}

	next.GatewaySecretKey, err = s.applySecret(params.GatewaySecretKey, current, func(c *domain.WalletConfig) string { return c.GatewaySecretKey })
	if err != nil {
		return nil, err
	}
	next.GatewayWebhookSecret, err = s.applySecret(params.GatewayWebhookSecret, current, func(c *domain.WalletConfig) string { return c.GatewayWebhookSecret })
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.UpsertConfig(ctx, next); err != nil {
		return nil, err
	}
	zap.L().Info("wallet config updated", zap.Bool("testMode", next.IsTestMode))
	return s.GetMaskedConfig(ctx)
}

func (s *Service) applySecret(update SecretUpdate, current *domain.WalletConfig, pick func(*domain.WalletConfig) string) (string, error) {
	if !update.replace {
		if current == nil {
			return "", nil
		}
		return pick(current), nil
	}
	if update.value == "" {
		return "", nil
	}
	return vault.EncryptField(update.value, s.encryptionKey)
}

func validateDefaults(params UpdateConfigParams) error {
	if params.DefaultCommissionPercent < 0 || params.DefaultCommissionPercent > 100 {
		return domain.NewValidationError("INVALID_COMMISSION", "commission percent must be between 0 and 100")
	}
	if !validFrequency(params.DefaultSettlementFrequency) {
		return domain.NewValidationError("INVALID_FREQUENCY", "unknown settlement frequency")
	}
	if params.MinSettlementAmount < 0 {
		return domain.NewValidationError("INVALID_MIN_SETTLEMENT", "minimum settlement amount cannot be negative")
	}
	if params.MonthlyBonusCap < 0 {
		return domain.NewValidationError("INVALID_BONUS_CAP", "monthly bonus cap cannot be negative")
	}
	return nil
}

func validFrequency(frequency string) bool {
	switch frequency {
	case domain.FrequencyDaily, domain.FrequencyWeekly, domain.FrequencyManual:
		return true
	}
	return false
}

// ValidateTiers enforces positive unique thresholds and non-negative
// bonuses.
func ValidateTiers(tiers []bonus.Tier) error {
	seen := make(map[int64]bool, len(tiers))
	for _, tier := range tiers {
		if tier.MinAmount <= 0 {
			return domain.NewValidationError("INVALID_TIERS", "tier thresholds must be positive")
		}
		if tier.Bonus < 0 {
			return domain.NewValidationError("INVALID_TIERS", "tier bonuses cannot be negative")
		}
		if seen[tier.MinAmount] {
			return domain.NewValidationError("INVALID_TIERS", "tier thresholds must be unique")
		}
		seen[tier.MinAmount] = true
	}
	return nil
}

// DecryptedSecretKey hands the gateway secret to internal callers. It
// never crosses the HTTP surface.
func (s *Service) DecryptedSecretKey(ctx context.Context) (string, error) {
	config, err := s.repo.GetConfig(ctx)
	if err != nil {
		return "", err
	}
	if config == nil || config.GatewaySecretKey == "" {
		return "", &domain.ConfigError{Message: "gateway secret key is not configured"}
	}
	return vault.DecryptField(config.GatewaySecretKey, s.encryptionKey)
}

// DecryptedWebhookSecret is the HMAC key for webhook verification.
func (s *Service) DecryptedWebhookSecret(ctx context.Context) (string, error) {
	config, err := s.repo.GetConfig(ctx)
	if err != nil {
		return "", err
	}
	if config == nil || config.GatewayWebhookSecret == "" {
		return "", &domain.ConfigError{Message: "gateway webhook secret is not configured"}
	}
	return vault.DecryptField(config.GatewayWebhookSecret, s.encryptionKey)
}

// resolve picks the branch override when present, then the global
// value, then the compiled-in fallback.
func resolve[T any](override, global *T, fallback T) T {
	if override != nil {
		return *override
	}
	if global != nil {
		return *global
	}
	return fallback
}

func (s *Service) effective(ctx context.Context, branchID int) (*domain.BranchWalletSettings, *domain.WalletConfig, error) {
	settings, err := s.repo.GetBranchSettings(ctx, branchID)
	if err != nil {
		return nil, nil, err
	}
	config, err := s.repo.GetConfig(ctx)
	if err != nil {
		return nil, nil, err
	}
	return settings, config, nil
}

func (s *Service) EffectiveCommissionPercent(ctx context.Context, branchID int) (float64, error) {
	settings, config, err := s.effective(ctx, branchID)
	if err != nil {
		return 0, err
	}
	var override, global *float64
	if settings != nil {
		override = settings.CommissionOverride
	}
	if config != nil {
		global = &config.DefaultCommissionPercent
	}
	return resolve(override, global, DefaultCommissionPercent), nil
}

func (s *Service) EffectiveFrequency(ctx context.Context, branchID int) (string, error) {
	settings, config, err := s.effective(ctx, branchID)
	if err != nil {
		return "", err
	}
	var override, global *string
	if settings != nil {
		override = settings.SettlementFrequency
	}
	if config != nil {
		global = &config.DefaultSettlementFrequency
	}
	return resolve(override, global, DefaultFrequency), nil
}

func (s *Service) EffectiveMinSettlement(ctx context.Context, branchID int) (int64, error) {
	settings, config, err := s.effective(ctx, branchID)
	if err != nil {
		return 0, err
	}
	var override, global *int64
	if settings != nil {
		override = settings.MinSettlementOverride
	}
	if config != nil {
		global = &config.MinSettlementAmount
	}
	return resolve(override, global, DefaultMinSettlement), nil
}

func (s *Service) GetConfig(ctx context.Context) (*domain.WalletConfig, error) {
	return s.repo.GetConfig(ctx)
}

func (s *Service) GetBranchSettings(ctx context.Context, branchID int) (*domain.BranchWalletSettings, error) {
	return s.repo.GetBranchSettings(ctx, branchID)
}

func (s *Service) ListBranchSettings(ctx context.Context) ([]domain.BranchWalletSettings, error) {
	return s.repo.ListBranchSettings(ctx)
}

// UpdateBranchSettings validates and saves per-branch overrides.
func (s *Service) UpdateBranchSettings(ctx context.Context, settings *domain.BranchWalletSettings) (*domain.BranchWalletSettings, error) {
	if settings.CommissionOverride != nil && (*settings.CommissionOverride < 0 || *settings.CommissionOverride > 100) {
		return nil, domain.NewValidationError("INVALID_COMMISSION", "commission percent must be between 0 and 100")
	}
	if settings.SettlementFrequency != nil && !validFrequency(*settings.SettlementFrequency) {
		return nil, domain.NewValidationError("INVALID_FREQUENCY", "unknown settlement frequency")
	}
	if settings.MinSettlementOverride != nil && *settings.MinSettlementOverride < 0 {
		return nil, domain.NewValidationError("INVALID_MIN_SETTLEMENT", "minimum settlement amount cannot be negative")
	}
	if settings.PayoutMethod != nil && !validPayoutMethod(*settings.PayoutMethod) {
		return nil, domain.NewValidationError("INVALID_PAYOUT_METHOD", "unknown payout method")
	}
	return s.repo.UpsertBranchSettings(ctx, settings)
}

func validPayoutMethod(method string) bool {
	switch method {
	case domain.PayoutMethodBank, domain.PayoutMethodGCash, domain.PayoutMethodMaya:
		return true
	}
	return false
}
