package earningrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/branchpay/walletcore/internal/domain"
	"github.com/branchpay/walletcore/internal/pg"
	"go.uber.org/zap"
)

const earningColumns = `id, branch_id, reference, customer_id, service_name, gross_amount, commission_percent, commission_amount, net_amount, settlement_id, status, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanEarning(row pg.RowScanner) (*domain.BranchEarning, error) {
	var e domain.BranchEarning
	err := row.Scan(&e.ID, &e.BranchID, &e.Reference, &e.CustomerID, &e.ServiceName,
		&e.GrossAmount, &e.CommissionPercent, &e.CommissionAmount, &e.NetAmount,
		&e.SettlementID, &e.Status, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) Create(ctx context.Context, earning *domain.BranchEarning) (*domain.BranchEarning, error) {
	query := `
        INSERT INTO branch_wallet_earnings (branch_id, reference, customer_id, service_name, gross_amount, commission_percent, commission_amount, net_amount, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING ` + earningColumns + `
    `
	created, err := scanEarning(r.db.QueryRow(ctx, query,
		earning.BranchID, earning.Reference, earning.CustomerID, earning.ServiceName,
		earning.GrossAmount, earning.CommissionPercent, earning.CommissionAmount, earning.NetAmount,
		earning.Status))
	if err != nil {
		zap.L().Error("failed to create earning record", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.BranchEarning, error) {
	query := `
        SELECT ` + earningColumns + `
        FROM branch_wallet_earnings
        WHERE id = $1
    `
	earning, err := scanEarning(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get earning", zap.Error(err))
		return nil, err
	}
	return earning, nil
}

func (r *Repository) listQuery(ctx context.Context, query string, args ...any) ([]domain.BranchEarning, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to list earnings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var earnings []domain.BranchEarning
	for rows.Next() {
		earning, err := scanEarning(rows)
		if err != nil {
			zap.L().Error("failed to scan earning row", zap.Error(err))
			return nil, err
		}
		earnings = append(earnings, *earning)
	}

	return earnings, nil
}

func (r *Repository) ListByBranch(ctx context.Context, branchID int, limit uint32) ([]domain.BranchEarning, error) {
	query := `
        SELECT ` + earningColumns + `
        FROM branch_wallet_earnings
        WHERE branch_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	return r.listQuery(ctx, query, branchID, limit)
}

func (r *Repository) ListBySettlement(ctx context.Context, settlementID int) ([]domain.BranchEarning, error) {
	query := `
        SELECT ` + earningColumns + `
        FROM branch_wallet_earnings
        WHERE settlement_id = $1
        ORDER BY created_at
    `
	return r.listQuery(ctx, query, settlementID)
}

// PendingTotalByBranch aggregates the branch's unsettled earnings.
func (r *Repository) PendingTotalByBranch(ctx context.Context, branchID int) (*domain.PendingEarningsTotal, error) {
	query := `
        SELECT COUNT(*), COALESCE(SUM(gross_amount), 0), COALESCE(SUM(commission_amount), 0), COALESCE(SUM(net_amount), 0)
        FROM branch_wallet_earnings
        WHERE branch_id = $1 AND status = $2 AND settlement_id IS NULL
    `
	var total domain.PendingEarningsTotal
	err := r.db.QueryRow(ctx, query, branchID, domain.EarningStatusPending).
		Scan(&total.Count, &total.TotalGross, &total.TotalCommission, &total.TotalNet)
	if err != nil {
		zap.L().Error("failed to total pending earnings", zap.Error(err))
		return nil, err
	}
	return &total, nil
}

// LinkToSettlement attaches all unlinked pending earnings of a branch
// to a settlement request.
func (r *Repository) LinkToSettlement(ctx context.Context, branchID, settlementID int) (int64, error) {
	query := `
        UPDATE branch_wallet_earnings
        SET settlement_id = $1
        WHERE branch_id = $2 AND status = $3 AND settlement_id IS NULL
    `
	tag, err := r.db.Exec(ctx, query, settlementID, branchID, domain.EarningStatusPending)
	if err != nil {
		zap.L().Error("failed to link earnings to settlement", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ReleaseBySettlement detaches earnings from a rejected settlement so
// they can join a future one.
func (r *Repository) ReleaseBySettlement(ctx context.Context, settlementID int) (int64, error) {
	query := `
        UPDATE branch_wallet_earnings
        SET settlement_id = NULL, status = $1
        WHERE settlement_id = $2
    `
	tag, err := r.db.Exec(ctx, query, domain.EarningStatusPending, settlementID)
	if err != nil {
		zap.L().Error("failed to release settlement earnings", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// MarkSettledBySettlement flips the settlement's earnings to settled.
// Only the settlement completion path calls this.
func (r *Repository) MarkSettledBySettlement(ctx context.Context, settlementID int) (int64, error) {
	query := `
        UPDATE branch_wallet_earnings
        SET status = $1
        WHERE settlement_id = $2 AND status = $3
    `
	tag, err := r.db.Exec(ctx, query, domain.EarningStatusSettled, settlementID, domain.EarningStatusPending)
	if err != nil {
		zap.L().Error("failed to mark earnings settled", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
