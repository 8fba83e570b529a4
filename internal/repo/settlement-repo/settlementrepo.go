package settlementrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/branchpay/walletcore/internal/domain"
	"github.com/branchpay/walletcore/internal/pg"
	"go.uber.org/zap"
)

const settlementColumns = `id, branch_id, requested_by, amount, earnings_count, payout_method, payout_account_number, payout_account_name, payout_bank_name, status, approved_by, approved_at, processed_by, processing_started_at, rejected_by, rejected_at, completed_by, completed_at, rejection_reason, transfer_reference, notes, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanSettlement(row pg.RowScanner) (*domain.BranchSettlement, error) {
	var s domain.BranchSettlement
	err := row.Scan(&s.ID, &s.BranchID, &s.RequestedBy, &s.Amount, &s.EarningsCount,
		&s.PayoutMethod, &s.PayoutAccountNumber, &s.PayoutAccountName, &s.PayoutBankName,
		&s.Status, &s.ApprovedBy, &s.ApprovedAt, &s.ProcessedBy, &s.ProcessingStartedAt,
		&s.RejectedBy, &s.RejectedAt, &s.CompletedBy, &s.CompletedAt,
		&s.RejectionReason, &s.TransferReference, &s.Notes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Create(ctx context.Context, settlement *domain.BranchSettlement) (*domain.BranchSettlement, error) {
	query := `
        INSERT INTO branch_settlements (branch_id, requested_by, amount, earnings_count, payout_method, payout_account_number, payout_account_name, payout_bank_name, status, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING ` + settlementColumns + `
    `
	created, err := scanSettlement(r.db.QueryRow(ctx, query,
		settlement.BranchID, settlement.RequestedBy, settlement.Amount, settlement.EarningsCount,
		settlement.PayoutMethod, settlement.PayoutAccountNumber, settlement.PayoutAccountName,
		settlement.PayoutBankName, domain.SettlementStatusPending, settlement.Notes))
	if err != nil {
		zap.L().Error("failed to create settlement request", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.BranchSettlement, error) {
	query := `
        SELECT ` + settlementColumns + `
        FROM branch_settlements
        WHERE id = $1
    `
	settlement, err := scanSettlement(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get settlement", zap.Error(err))
		return nil, err
	}
	return settlement, nil
}

// FindActiveByBranch returns the branch's in-flight settlement, if any.
// A branch may have at most one settlement outside a terminal status.
func (r *Repository) FindActiveByBranch(ctx context.Context, branchID int) (*domain.BranchSettlement, error) {
	query := `
        SELECT ` + settlementColumns + `
        FROM branch_settlements
        WHERE branch_id = $1 AND status IN ($2, $3, $4)
        ORDER BY created_at DESC
        LIMIT 1
    `
	settlement, err := scanSettlement(r.db.QueryRow(ctx, query, branchID,
		domain.SettlementStatusPending, domain.SettlementStatusApproved, domain.SettlementStatusProcessing))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find active settlement", zap.Error(err))
		return nil, err
	}
	return settlement, nil
}

func (r *Repository) listQuery(ctx context.Context, query string, args ...any) ([]domain.BranchSettlement, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to list settlements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var settlements []domain.BranchSettlement
	for rows.Next() {
		settlement, err := scanSettlement(rows)
		if err != nil {
			zap.L().Error("failed to scan settlement row", zap.Error(err))
			return nil, err
		}
		settlements = append(settlements, *settlement)
	}

	return settlements, nil
}

func (r *Repository) ListByBranch(ctx context.Context, branchID int, limit uint32) ([]domain.BranchSettlement, error) {
	query := `
        SELECT ` + settlementColumns + `
        FROM branch_settlements
        WHERE branch_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	return r.listQuery(ctx, query, branchID, limit)
}

func (r *Repository) ListByStatus(ctx context.Context, status string, limit uint32) ([]domain.BranchSettlement, error) {
	query := `
        SELECT ` + settlementColumns + `
        FROM branch_settlements
        WHERE status = $1
        ORDER BY created_at
        LIMIT $2
    `
	return r.listQuery(ctx, query, status, limit)
}

// transition flips status from → to with a guard on the current value.
// Returns false when the row was not in the expected status, which the
// caller maps to a transition error against the re-read state.
func (r *Repository) transition(ctx context.Context, query string, args ...any) (bool, error) {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to transition settlement", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) Approve(ctx context.Context, id, approvedBy int) (bool, error) {
	query := `
        UPDATE branch_settlements
        SET status = $1, approved_by = $2, approved_at = now(), updated_at = now()
        WHERE id = $3 AND status = $4
    `
	return r.transition(ctx, query, domain.SettlementStatusApproved, approvedBy, id, domain.SettlementStatusPending)
}

func (r *Repository) MarkProcessing(ctx context.Context, id, processedBy int) (bool, error) {
	query := `
        UPDATE branch_settlements
        SET status = $1, processed_by = $2, processing_started_at = now(), updated_at = now()
        WHERE id = $3 AND status = $4
    `
	return r.transition(ctx, query, domain.SettlementStatusProcessing, processedBy, id, domain.SettlementStatusApproved)
}

func (r *Repository) Complete(ctx context.Context, id, completedBy int, transferReference string) (bool, error) {
	query := `
        UPDATE branch_settlements
        SET status = $1, completed_by = $2, completed_at = now(), transfer_reference = $3, updated_at = now()
        WHERE id = $4 AND status = $5
    `
	return r.transition(ctx, query, domain.SettlementStatusCompleted, completedBy, transferReference, id, domain.SettlementStatusProcessing)
}

// Reject is allowed from any non-terminal status, so the guard matches
// the three live states rather than a single expected one.
func (r *Repository) Reject(ctx context.Context, id, rejectedBy int, reason string) (bool, error) {
	query := `
        UPDATE branch_settlements
        SET status = $1, rejected_by = $2, rejected_at = now(), rejection_reason = $3, updated_at = now()
        WHERE id = $4 AND status IN ($5, $6, $7)
    `
	return r.transition(ctx, query, domain.SettlementStatusRejected, rejectedBy, reason, id,
		domain.SettlementStatusPending, domain.SettlementStatusApproved, domain.SettlementStatusProcessing)
}
