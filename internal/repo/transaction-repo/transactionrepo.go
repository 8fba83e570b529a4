package transactionrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/branchpay/walletcore/internal/domain"
	"github.com/branchpay/walletcore/internal/pg"
	"go.uber.org/zap"
)

const txColumns = `id, owner_id, type, amount, bonus_amount, status, reference, description, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanTransaction(row pg.RowScanner) (*domain.WalletTransaction, error) {
	var t domain.WalletTransaction
	err := row.Scan(&t.ID, &t.OwnerID, &t.Type, &t.Amount, &t.BonusAmount, &t.Status,
		&t.Reference, &t.Description, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) Create(ctx context.Context, tx *domain.WalletTransaction) (*domain.WalletTransaction, error) {
	query := `
        INSERT INTO wallet_transactions (owner_id, type, amount, bonus_amount, status, reference, description)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + txColumns + `
    `
	created, err := scanTransaction(r.db.QueryRow(ctx, query,
		tx.OwnerID, tx.Type, tx.Amount, tx.BonusAmount, tx.Status, tx.Reference, tx.Description))
	if err != nil {
		zap.L().Error("failed to create wallet transaction", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// GetByReference is the idempotency lookup for gateway events.
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.WalletTransaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM wallet_transactions
        WHERE reference = $1
    `
	tx, err := scanTransaction(r.db.QueryRow(ctx, query, reference))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get transaction by reference", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

// MarkCompleted finalizes a pending top-up, recording the bonus that
// was granted with it.
func (r *Repository) MarkCompleted(ctx context.Context, id int, bonusAmount float64) error {
	query := `
        UPDATE wallet_transactions
        SET status = $1, bonus_amount = $2, updated_at = now()
        WHERE id = $3 AND status = $4
    `
	tag, err := r.db.Exec(ctx, query, domain.TransactionStatusCompleted, bonusAmount, id, domain.TransactionStatusPending)
	if err != nil {
		zap.L().Error("failed to complete transaction", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repository) MarkFailed(ctx context.Context, id int) error {
	query := `
        UPDATE wallet_transactions
        SET status = $1, updated_at = now()
        WHERE id = $2 AND status = $3
    `
	tag, err := r.db.Exec(ctx, query, domain.TransactionStatusFailed, id, domain.TransactionStatusPending)
	if err != nil {
		zap.L().Error("failed to mark transaction failed", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID int, limit uint32) ([]domain.WalletTransaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM wallet_transactions
        WHERE owner_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, ownerID, limit)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.WalletTransaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, *tx)
	}

	return transactions, nil
}

// FindPendingTopUps returns pending top-ups created after cutoff.
// Older pendings are left alone so a late webhook can still land.
func (r *Repository) FindPendingTopUps(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.WalletTransaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM wallet_transactions
        WHERE type = $1 AND status = $2 AND created_at >= $3
        ORDER BY created_at
        LIMIT $4
    `
	rows, err := r.db.Query(ctx, query, domain.TransactionTypeTopUp, domain.TransactionStatusPending, cutoff, limit)
	if err != nil {
		zap.L().Error("failed to find pending top-ups", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.WalletTransaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, *tx)
	}

	return transactions, nil
}
