package walletrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/branchpay/walletcore/internal/domain"
	"github.com/branchpay/walletcore/internal/pg"
	"go.uber.org/zap"
)

const walletColumns = `id, owner_id, main_balance, bonus_balance, currency, bonus_given_this_month, bonus_month_start, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanWallet(row pg.RowScanner) (*domain.Wallet, error) {
	var w domain.Wallet
	err := row.Scan(&w.ID, &w.OwnerID, &w.MainBalance, &w.BonusBalance, &w.Currency,
		&w.BonusGivenThisMonth, &w.BonusMonthStart, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repository) GetByOwner(ctx context.Context, ownerID int) (*domain.Wallet, error) {
	query := `
        SELECT ` + walletColumns + `
        FROM wallets
        WHERE owner_id = $1
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, ownerID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// GetByOwnerForUpdate locks the wallet row for the duration of the
// surrounding transaction, serializing concurrent top-ups and debits.
func (r *Repository) GetByOwnerForUpdate(ctx context.Context, ownerID int) (*domain.Wallet, error) {
	query := `
        SELECT ` + walletColumns + `
        FROM wallets
        WHERE owner_id = $1
        FOR UPDATE
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, ownerID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to lock wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) Create(ctx context.Context, ownerID int, currency string, monthStart time.Time) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (owner_id, main_balance, bonus_balance, currency, bonus_given_this_month, bonus_month_start)
        VALUES ($1, 0, 0, $2, 0, $3)
        RETURNING ` + walletColumns + `
    `
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, ownerID, currency, monthStart))
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) Update(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error) {
	query := `
        UPDATE wallets
        SET main_balance = $1, bonus_balance = $2, bonus_given_this_month = $3, bonus_month_start = $4, updated_at = now()
        WHERE owner_id = $5
        RETURNING ` + walletColumns + `
    `
	updated, err := scanWallet(r.db.QueryRow(ctx, query,
		wallet.MainBalance, wallet.BonusBalance, wallet.BonusGivenThisMonth, wallet.BonusMonthStart, wallet.OwnerID))
	if err != nil {
		zap.L().Error("failed to update wallet", zap.Error(err))
		return nil, err
	}
	return updated, nil
}
