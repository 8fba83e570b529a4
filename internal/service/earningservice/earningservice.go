package earningservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/branchpay/walletcore/internal/domain"
	"github.com/branchpay/walletcore/pkg/commission"
)

type Repo interface {
	Create(ctx context.Context, earning *domain.BranchEarning) (*domain.BranchEarning, error)
	GetByID(ctx context.Context, id int) (*domain.BranchEarning, error)
	ListByBranch(ctx context.Context, branchID int, limit uint32) ([]domain.BranchEarning, error)
	ListBySettlement(ctx context.Context, settlementID int) ([]domain.BranchEarning, error)
	PendingTotalByBranch(ctx context.Context, branchID int) (*domain.PendingEarningsTotal, error)
	LinkToSettlement(ctx context.Context, branchID, settlementID int) (int64, error)
	ReleaseBySettlement(ctx context.Context, settlementID int) (int64, error)
	MarkSettledBySettlement(ctx context.Context, settlementID int) (int64, error)
}

// CommissionResolver yields the percent the platform keeps for a
// branch, after applying any branch-level override.
type CommissionResolver interface {
	EffectiveCommissionPercent(ctx context.Context, branchID int) (float64, error)
}

type Service struct {
	repo       Repo
	commission CommissionResolver
}

func New(repo Repo, resolver CommissionResolver) *Service {
	return &Service{
		repo:       repo,
		commission: resolver,
	}
}

// RecordEarningParams describes a completed customer payment at a
// branch. GrossAmount is in minor units.
type RecordEarningParams struct {
	BranchID    int
	Reference   string
	CustomerID  int
	ServiceName string
	GrossAmount int64
}

// RecordEarning splits a branch sale into commission and net and
// stores it as a pending earning awaiting settlement.
func (s *Service) RecordEarning(ctx context.Context, params RecordEarningParams) (*domain.BranchEarning, error) {
	percent, err := s.commission.EffectiveCommissionPercent(ctx, params.BranchID)
	if err != nil {
		return nil, err
	}

	split, err := commission.Split(params.GrossAmount, percent)
	if err != nil {
		return nil, domain.NewValidationError("INVALID_EARNING", err.Error())
	}

	earning, err := s.repo.Create(ctx, &domain.BranchEarning{
		BranchID:          params.BranchID,
		Reference:         params.Reference,
		CustomerID:        params.CustomerID,
		ServiceName:       params.ServiceName,
		GrossAmount:       params.GrossAmount,
		CommissionPercent: percent,
		CommissionAmount:  split.CommissionAmount,
		NetAmount:         split.NetAmount,
		Status:            domain.EarningStatusPending,
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("earning recorded",
		zap.Int("branchID", params.BranchID),
		zap.Int64("gross", params.GrossAmount),
		zap.Int64("net", split.NetAmount))
	return earning, nil
}

func (s *Service) GetEarning(ctx context.Context, id int) (*domain.BranchEarning, error) {
	earning, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if earning == nil {
		return nil, domain.ErrNotFound
	}
	return earning, nil
}

func (s *Service) ListEarnings(ctx context.Context, branchID int, limit uint32) ([]domain.BranchEarning, error) {
	return s.repo.ListByBranch(ctx, branchID, limit)
}

// PendingTotal sums the branch's unsettled earnings, the figure a
// settlement request would cover.
func (s *Service) PendingTotal(ctx context.Context, branchID int) (*domain.PendingEarningsTotal, error) {
	return s.repo.PendingTotalByBranch(ctx, branchID)
}
