package configrepo

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"

	"github.com/branchpay/walletcore/internal/domain"
	"github.com/branchpay/walletcore/internal/pg"
	"github.com/branchpay/walletcore/pkg/bonus"
	"go.uber.org/zap"
)

const configColumns = `id, gateway_public_key, gateway_secret_key, gateway_webhook_secret, is_test_mode, default_commission_percent, default_settlement_frequency, min_settlement_amount, bonus_tiers, monthly_bonus_cap, created_at, updated_at`

const settingsColumns = `id, branch_id, commission_override, settlement_frequency, min_settlement_override, payout_method, payout_account_number, payout_account_name, payout_bank_name, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanConfig(row pg.RowScanner) (*domain.WalletConfig, error) {
	var c domain.WalletConfig
	var tiersJSON []byte
	err := row.Scan(&c.ID, &c.GatewayPublicKey, &c.GatewaySecretKey, &c.GatewayWebhookSecret,
		&c.IsTestMode, &c.DefaultCommissionPercent, &c.DefaultSettlementFrequency,
		&c.MinSettlementAmount, &tiersJSON, &c.MonthlyBonusCap, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(tiersJSON) > 0 {
		if err := json.Unmarshal(tiersJSON, &c.BonusTiers); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

// GetConfig returns the singleton configuration row, or nil when the
// platform has not been configured yet.
func (r *Repository) GetConfig(ctx context.Context) (*domain.WalletConfig, error) {
	query := `
        SELECT ` + configColumns + `
        FROM wallet_config
        ORDER BY id
        LIMIT 1
    `
	config, err := scanConfig(r.db.QueryRow(ctx, query))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get wallet config", zap.Error(err))
		return nil, err
	}
	return config, nil
}

// UpsertConfig inserts the configuration row on first save and updates
// it in place afterwards, keeping the table a singleton.
func (r *Repository) UpsertConfig(ctx context.Context, config *domain.WalletConfig) (*domain.WalletConfig, error) {
	tiers := config.BonusTiers
	if tiers == nil {
		tiers = []bonus.Tier{}
	}
	tiersJSON, err := json.Marshal(tiers)
	if err != nil {
		return nil, err
	}

	existing, err := r.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		query := `
            INSERT INTO wallet_config (gateway_public_key, gateway_secret_key, gateway_webhook_secret, is_test_mode, default_commission_percent, default_settlement_frequency, min_settlement_amount, bonus_tiers, monthly_bonus_cap)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
            RETURNING ` + configColumns + `
        `
		created, err := scanConfig(r.db.QueryRow(ctx, query,
			config.GatewayPublicKey, config.GatewaySecretKey, config.GatewayWebhookSecret,
			config.IsTestMode, config.DefaultCommissionPercent, config.DefaultSettlementFrequency,
			config.MinSettlementAmount, tiersJSON, config.MonthlyBonusCap))
		if err != nil {
			zap.L().Error("failed to insert wallet config", zap.Error(err))
			return nil, err
		}
		return created, nil
	}

	query := `
        UPDATE wallet_config
        SET gateway_public_key = $1, gateway_secret_key = $2, gateway_webhook_secret = $3,
            is_test_mode = $4, default_commission_percent = $5, default_settlement_frequency = $6,
            min_settlement_amount = $7, bonus_tiers = $8, monthly_bonus_cap = $9, updated_at = now()
        WHERE id = $10
        RETURNING ` + configColumns + `
    `
	updated, err := scanConfig(r.db.QueryRow(ctx, query,
		config.GatewayPublicKey, config.GatewaySecretKey, config.GatewayWebhookSecret,
		config.IsTestMode, config.DefaultCommissionPercent, config.DefaultSettlementFrequency,
		config.MinSettlementAmount, tiersJSON, config.MonthlyBonusCap, existing.ID))
	if err != nil {
		zap.L().Error("failed to update wallet config", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func scanSettings(row pg.RowScanner) (*domain.BranchWalletSettings, error) {
	var s domain.BranchWalletSettings
	err := row.Scan(&s.ID, &s.BranchID, &s.CommissionOverride, &s.SettlementFrequency,
		&s.MinSettlementOverride, &s.PayoutMethod, &s.PayoutAccountNumber,
		&s.PayoutAccountName, &s.PayoutBankName, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) GetBranchSettings(ctx context.Context, branchID int) (*domain.BranchWalletSettings, error) {
	query := `
        SELECT ` + settingsColumns + `
        FROM branch_wallet_settings
        WHERE branch_id = $1
    `
	settings, err := scanSettings(r.db.QueryRow(ctx, query, branchID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get branch settings", zap.Error(err))
		return nil, err
	}
	return settings, nil
}

func (r *Repository) UpsertBranchSettings(ctx context.Context, settings *domain.BranchWalletSettings) (*domain.BranchWalletSettings, error) {
	query := `
        INSERT INTO branch_wallet_settings (branch_id, commission_override, settlement_frequency, min_settlement_override, payout_method, payout_account_number, payout_account_name, payout_bank_name)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (branch_id) DO UPDATE
        SET commission_override = EXCLUDED.commission_override,
            settlement_frequency = EXCLUDED.settlement_frequency,
            min_settlement_override = EXCLUDED.min_settlement_override,
            payout_method = EXCLUDED.payout_method,
            payout_account_number = EXCLUDED.payout_account_number,
            payout_account_name = EXCLUDED.payout_account_name,
            payout_bank_name = EXCLUDED.payout_bank_name,
            updated_at = now()
        RETURNING ` + settingsColumns + `
    `
	saved, err := scanSettings(r.db.QueryRow(ctx, query,
		settings.BranchID, settings.CommissionOverride, settings.SettlementFrequency,
		settings.MinSettlementOverride, settings.PayoutMethod, settings.PayoutAccountNumber,
		settings.PayoutAccountName, settings.PayoutBankName))
	if err != nil {
		zap.L().Error("failed to upsert branch settings", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

func (r *Repository) ListBranchSettings(ctx context.Context) ([]domain.BranchWalletSettings, error) {
	query := `
        SELECT ` + settingsColumns + `
        FROM branch_wallet_settings
        ORDER BY branch_id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list branch settings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var all []domain.BranchWalletSettings
	for rows.Next() {
		settings, err := scanSettings(rows)
		if err != nil {
			zap.L().Error("failed to scan branch settings row", zap.Error(err))
			return nil, err
		}
		all = append(all, *settings)
	}

	return all, nil
}
