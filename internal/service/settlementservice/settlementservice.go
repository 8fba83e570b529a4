package settlementservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/branchpay/walletcore/internal/domain"
	"github.com/branchpay/walletcore/internal/pg"
)

type SettlementRepo interface {
	Create(ctx context.Context, settlement *domain.BranchSettlement) (*domain.BranchSettlement, error)
	GetByID(ctx context.Context, id int) (*domain.BranchSettlement, error)
	FindActiveByBranch(ctx context.Context, branchID int) (*domain.BranchSettlement, error)
	ListByBranch(ctx context.Context, branchID int, limit uint32) ([]domain.BranchSettlement, error)
	ListByStatus(ctx context.Context, status string, limit uint32) ([]domain.BranchSettlement, error)
	Approve(ctx context.Context, id, approvedBy int) (bool, error)
	MarkProcessing(ctx context.Context, id, processedBy int) (bool, error)
	Complete(ctx context.Context, id, completedBy int, transferReference string) (bool, error)
	Reject(ctx context.Context, id, rejectedBy int, reason string) (bool, error)
}

type EarningRepo interface {
	PendingTotalByBranch(ctx context.Context, branchID int) (*domain.PendingEarningsTotal, error)
	ListBySettlement(ctx context.Context, settlementID int) ([]domain.BranchEarning, error)
	LinkToSettlement(ctx context.Context, branchID, settlementID int) (int64, error)
	ReleaseBySettlement(ctx context.Context, settlementID int) (int64, error)
	MarkSettledBySettlement(ctx context.Context, settlementID int) (int64, error)
}

// SettingsResolver supplies the branch's payout profile and the
// minimum settlement amount after overrides.
type SettingsResolver interface {
	EffectiveMinSettlement(ctx context.Context, branchID int) (int64, error)
	GetBranchSettings(ctx context.Context, branchID int) (*domain.BranchWalletSettings, error)
}

type Service struct {
	settlementRepo SettlementRepo
	earningRepo    EarningRepo
	settings       SettingsResolver
	txManager      pg.TXManager
}

func New(settlementRepo SettlementRepo, earningRepo EarningRepo, settings SettingsResolver, txManager pg.TXManager) *Service {
	return &Service{
		settlementRepo: settlementRepo,
		earningRepo:    earningRepo,
		settings:       settings,
		txManager:      txManager,
	}
}

// Request opens a settlement for everything the branch has pending.
// The settlement amount is the sum of net amounts; payout details are
// frozen from the branch settings at request time.
func (s *Service) Request(ctx context.Context, branchID, requestedBy int, notes string) (*domain.BranchSettlement, error) {
	active, err := s.settlementRepo.FindActiveByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, domain.NewValidationError("SETTLEMENT_IN_FLIGHT", "a settlement request is already in progress")
	}

	total, err := s.earningRepo.PendingTotalByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if total.Count == 0 {
		return nil, domain.NewValidationError("NO_PENDING_EARNINGS", "no earnings to settle")
	}

	minAmount, err := s.settings.EffectiveMinSettlement(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if total.TotalNet < minAmount {
		return nil, domain.NewValidationError("BELOW_MINIMUM", "pending earnings are below the minimum settlement amount")
	}

	settings, err := s.settings.GetBranchSettings(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if err := validatePayout(settings); err != nil {
		return nil, err
	}

	var settlement *domain.BranchSettlement
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		settlement, err = s.settlementRepo.Create(ctx, &domain.BranchSettlement{
			BranchID:            branchID,
			RequestedBy:         requestedBy,
			Amount:              total.TotalNet,
			EarningsCount:       total.Count,
			PayoutMethod:        *settings.PayoutMethod,
			PayoutAccountNumber: *settings.PayoutAccountNumber,
			PayoutAccountName:   *settings.PayoutAccountName,
			PayoutBankName:      settings.PayoutBankName,
			Notes:               notes,
		})
		if err != nil {
			return err
		}

		linked, err := s.earningRepo.LinkToSettlement(ctx, branchID, settlement.ID)
		if err != nil {
			return err
		}
		// The settlement row was written from the totals read before
		// this transaction. If the link swept a different number of
		// earnings, something landed in between and the stored amount
		// no longer matches the linked rows; roll everything back.
		if int(linked) != total.Count {
			zap.L().Warn("settlement link count diverged from totalled count, rolling back",
				zap.Int("settlementID", settlement.ID),
				zap.Int64("linked", linked),
				zap.Int("expected", total.Count))
			return domain.NewValidationError("EARNINGS_CHANGED", "pending earnings changed while the request was being prepared, try again")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("settlement requested",
		zap.Int("branchID", branchID),
		zap.Int("settlementID", settlement.ID),
		zap.Int64("amount", settlement.Amount))
	return settlement, nil
}

// Readiness answers "can this branch request a settlement right now",
// collecting every blocker instead of stopping at the first.
type Readiness struct {
	CanRequest    bool
	Blockers      []string
	PendingTotal  *domain.PendingEarningsTotal
	MinSettlement int64
}

func (s *Service) Readiness(ctx context.Context, branchID int) (*Readiness, error) {
	total, err := s.earningRepo.PendingTotalByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	minAmount, err := s.settings.EffectiveMinSettlement(ctx, branchID)
	if err != nil {
		return nil, err
	}

	readiness := &Readiness{PendingTotal: total, MinSettlement: minAmount}

	active, err := s.settlementRepo.FindActiveByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		readiness.Blockers = append(readiness.Blockers, "SETTLEMENT_IN_FLIGHT")
	}
	if total.Count == 0 {
		readiness.Blockers = append(readiness.Blockers, "NO_PENDING_EARNINGS")
	} else if total.TotalNet < minAmount {
		readiness.Blockers = append(readiness.Blockers, "BELOW_MINIMUM")
	}

	settings, err := s.settings.GetBranchSettings(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if err := validatePayout(settings); err != nil {
		readiness.Blockers = append(readiness.Blockers, "PAYOUT_NOT_CONFIGURED")
	}

	readiness.CanRequest = len(readiness.Blockers) == 0
	return readiness, nil
}

func validatePayout(settings *domain.BranchWalletSettings) error {
	if settings == nil || settings.PayoutMethod == nil {
		return domain.NewValidationError("PAYOUT_NOT_CONFIGURED", "set a payout method before requesting a settlement")
	}
	if settings.PayoutAccountNumber == nil || settings.PayoutAccountName == nil {
		return domain.NewValidationError("PAYOUT_NOT_CONFIGURED", "payout account details are incomplete")
	}
	if *settings.PayoutMethod == domain.PayoutMethodBank && settings.PayoutBankName == nil {
		return domain.NewValidationError("PAYOUT_NOT_CONFIGURED", "bank payouts need a bank name")
	}
	return nil
}

// Approve moves pending → approved.
func (s *Service) Approve(ctx context.Context, id, approvedBy int) (*domain.BranchSettlement, error) {
	moved, err := s.settlementRepo.Approve(ctx, id, approvedBy)
	if err != nil {
		return nil, err
	}
	return s.afterTransition(ctx, id, moved, domain.SettlementStatusApproved)
}

// MarkProcessing moves approved → processing once the transfer has
// started.
func (s *Service) MarkProcessing(ctx context.Context, id, processedBy int) (*domain.BranchSettlement, error) {
	moved, err := s.settlementRepo.MarkProcessing(ctx, id, processedBy)
	if err != nil {
		return nil, err
	}
	return s.afterTransition(ctx, id, moved, domain.SettlementStatusProcessing)
}

// Complete moves processing → completed and settles every earning
// attached to the settlement, in one transaction.
func (s *Service) Complete(ctx context.Context, id, completedBy int, transferReference string) (*domain.BranchSettlement, error) {
	var moved bool
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		moved, err = s.settlementRepo.Complete(ctx, id, completedBy, transferReference)
		if err != nil {
			return err
		}
		if !moved {
			return nil
		}
		_, err = s.earningRepo.MarkSettledBySettlement(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.afterTransition(ctx, id, moved, domain.SettlementStatusCompleted)
}

// Reject works from any live status and releases the linked earnings
// back into the pending pool.
func (s *Service) Reject(ctx context.Context, id, rejectedBy int, reason string) (*domain.BranchSettlement, error) {
	if reason == "" {
		return nil, domain.NewValidationError("MISSING_REASON", "a rejection reason is required")
	}

	var moved bool
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		moved, err = s.settlementRepo.Reject(ctx, id, rejectedBy, reason)
		if err != nil {
			return err
		}
		if !moved {
			return nil
		}
		_, err = s.earningRepo.ReleaseBySettlement(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.afterTransition(ctx, id, moved, domain.SettlementStatusRejected)
}

// afterTransition re-reads the settlement and, when the guarded update
// matched nothing, reports the transition that was actually refused.
func (s *Service) afterTransition(ctx context.Context, id int, moved bool, to string) (*domain.BranchSettlement, error) {
	settlement, err := s.settlementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if settlement == nil {
		return nil, domain.ErrNotFound
	}
	if !moved {
		return nil, &domain.TransitionError{From: settlement.Status, To: to}
	}
	zap.L().Info("settlement transitioned",
		zap.Int("settlementID", id),
		zap.String("status", to))
	return settlement, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.BranchSettlement, error) {
	settlement, err := s.settlementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if settlement == nil {
		return nil, domain.ErrNotFound
	}
	return settlement, nil
}

func (s *Service) ListByBranch(ctx context.Context, branchID int, limit uint32) ([]domain.BranchSettlement, error) {
	return s.settlementRepo.ListByBranch(ctx, branchID, limit)
}

func (s *Service) ListByStatus(ctx context.Context, status string, limit uint32) ([]domain.BranchSettlement, error) {
	if _, ok := domain.SettlementTransitions[status]; !ok {
		return nil, domain.NewValidationError("INVALID_STATUS", "unknown settlement status")
	}
	return s.settlementRepo.ListByStatus(ctx, status, limit)
}

// Earnings lists the earnings attached to a settlement.
func (s *Service) Earnings(ctx context.Context, settlementID int) ([]domain.BranchEarning, error) {
	if _, err := s.Get(ctx, settlementID); err != nil {
		return nil, err
	}
	return s.earningRepo.ListBySettlement(ctx, settlementID)
}
