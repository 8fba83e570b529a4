package walletservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/branchpay/walletcore/internal/domain"
	"github.com/branchpay/walletcore/internal/pg"
	"github.com/branchpay/walletcore/pkg/bonus"
	"github.com/branchpay/walletcore/pkg/money"
)

type WalletRepo interface {
	GetByOwner(ctx context.Context, ownerID int) (*domain.Wallet, error)
	GetByOwnerForUpdate(ctx context.Context, ownerID int) (*domain.Wallet, error)
	Create(ctx context.Context, ownerID int, currency string, monthStart time.Time) (*domain.Wallet, error)
	Update(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.WalletTransaction) (*domain.WalletTransaction, error)
	GetByReference(ctx context.Context, reference string) (*domain.WalletTransaction, error)
	MarkCompleted(ctx context.Context, id int, bonusAmount float64) error
	MarkFailed(ctx context.Context, id int) error
	ListByOwner(ctx context.Context, ownerID int, limit uint32) ([]domain.WalletTransaction, error)
	FindPendingTopUps(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.WalletTransaction, error)
}

type PromoRepo interface {
	FindActive(ctx context.Context, at time.Time) ([]domain.Promotion, error)
	CountUsage(ctx context.Context, promoID, ownerID int) (int, error)
	CreateUsage(ctx context.Context, promoID, ownerID, transactionID int) error
	IncrementUsage(ctx context.Context, promoID int) error
}

type ConfigRepo interface {
	GetConfig(ctx context.Context) (*domain.WalletConfig, error)
}

const defaultCurrency = "PHP"

type Service struct {
	walletRepo WalletRepo
	txRepo     TransactionRepo
	promoRepo  PromoRepo
	configRepo ConfigRepo
	txManager  pg.TXManager
}

func New(walletRepo WalletRepo, txRepo TransactionRepo, promoRepo PromoRepo, configRepo ConfigRepo, txManager pg.TXManager) *Service {
	return &Service{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		promoRepo:  promoRepo,
		configRepo: configRepo,
		txManager:  txManager,
	}
}

// TopUpParams describes a confirmed gateway payment to credit.
// Amount is in minor units.
type TopUpParams struct {
	OwnerID     int
	Amount      int64
	Reference   string
	OwnerTier   string
	ApplyBonus  bool
	Description string
}

// TopUpResult reports what a credit did to the wallet.
type TopUpResult struct {
	Wallet      *domain.Wallet
	Transaction *domain.WalletTransaction
	TierBonus   int64
	PromoBonus  int64
	WasLimited  bool
	Replayed    bool

	promo *domain.Promotion
}

// DebitResult reports how a payment was split across the two buckets.
type DebitResult struct {
	Wallet      *domain.Wallet
	Transaction *domain.WalletTransaction
	FromBonus   int64
	FromMain    int64
}

// BalanceCheck is the read-only answer to "can this wallet pay X".
type BalanceCheck struct {
	CanPay    bool
	Total     int64
	FromBonus int64
	FromMain  int64
	Shortfall int64
}

// GetWallet returns the owner's wallet, creating an empty one on first
// touch.
func (s *Service) GetWallet(ctx context.Context, ownerID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}
	return s.walletRepo.Create(ctx, ownerID, defaultCurrency, bonus.MonthStart(time.Now()))
}

// CreditTopUp applies a confirmed payment to the wallet: principal to
// the main balance, tier and promotion bonuses to the bonus balance.
// It is idempotent on the gateway reference; replaying a completed
// reference returns the original outcome without touching balances.
func (s *Service) CreditTopUp(ctx context.Context, params TopUpParams) (*TopUpResult, error) {
	if params.Amount <= 0 {
		return nil, domain.NewValidationError("INVALID_AMOUNT", "top-up amount must be positive")
	}

	var result *TopUpResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		result, err = s.creditTopUp(ctx, params)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) creditTopUp(ctx context.Context, params TopUpParams) (*TopUpResult, error) {
	var pending *domain.WalletTransaction
	if params.Reference != "" {
		existing, err := s.txRepo.GetByReference(ctx, params.Reference)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			switch existing.Status {
			case domain.TransactionStatusCompleted:
				wallet, err := s.walletRepo.GetByOwner(ctx, existing.OwnerID)
				if err != nil {
					return nil, err
				}
				return &TopUpResult{Wallet: wallet, Transaction: existing, Replayed: true}, nil
			case domain.TransactionStatusPending:
				pending = existing
			case domain.TransactionStatusFailed:
				return nil, domain.NewValidationError("REFERENCE_FAILED", "payment reference already failed")
			}
		}
	}

	wallet, err := s.walletRepo.GetByOwnerForUpdate(ctx, params.OwnerID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		wallet, err = s.walletRepo.Create(ctx, params.OwnerID, defaultCurrency, bonus.MonthStart(time.Now()))
		if err != nil {
			return nil, err
		}
	}

	config, err := s.configRepo.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if bonus.MonthRolledOver(wallet.BonusMonthStart, now) {
		wallet.BonusGivenThisMonth = 0
		wallet.BonusMonthStart = bonus.MonthStart(now)
	}

	result := &TopUpResult{}
	if params.ApplyBonus {
		var monthlyCap int64
		if config != nil {
			monthlyCap = config.MonthlyBonusCap
		}
		capped := bonus.CappedBonus(params.Amount, monthlyCap, wallet.BonusGivenThisMonth, config.Tiers())
		result.TierBonus = capped.Bonus
		result.WasLimited = capped.WasLimited
		wallet.BonusGivenThisMonth = capped.NewGivenThisMonth

		promo, promoBonus, err := s.bestPromotion(ctx, params, now)
		if err != nil {
			return nil, err
		}
		result.PromoBonus = promoBonus
		// usage is recorded once the transaction row exists
		result.promo = promo
	}

	totalBonus := result.TierBonus + result.PromoBonus
	wallet.MainBalance += params.Amount
	wallet.BonusBalance += totalBonus

	wallet, err = s.walletRepo.Update(ctx, wallet)
	if err != nil {
		return nil, err
	}
	result.Wallet = wallet

	if pending != nil {
		if err := s.txRepo.MarkCompleted(ctx, pending.ID, money.ToMajor(totalBonus)); err != nil {
			return nil, err
		}
		pending.Status = domain.TransactionStatusCompleted
		pending.BonusAmount = money.ToMajor(totalBonus)
		result.Transaction = pending
	} else {
		tx, err := s.txRepo.Create(ctx, &domain.WalletTransaction{
			OwnerID:     params.OwnerID,
			Type:        domain.TransactionTypeTopUp,
			Amount:      money.ToMajor(params.Amount),
			BonusAmount: money.ToMajor(totalBonus),
			Status:      domain.TransactionStatusCompleted,
			Reference:   params.Reference,
			Description: params.Description,
		})
		if err != nil {
			return nil, err
		}
		result.Transaction = tx
	}

	if result.promo != nil {
		if err := s.promoRepo.CreateUsage(ctx, result.promo.ID, params.OwnerID, result.Transaction.ID); err != nil {
			return nil, err
		}
		if err := s.promoRepo.IncrementUsage(ctx, result.promo.ID); err != nil {
			return nil, err
		}
	}

	zap.L().Info("wallet credited",
		zap.Int("ownerID", params.OwnerID),
		zap.Int64("amount", params.Amount),
		zap.Int64("bonus", totalBonus))
	return result, nil
}

// bestPromotion picks the single richest live promotion the owner
// qualifies for. At most one promotion applies per top-up.
func (s *Service) bestPromotion(ctx context.Context, params TopUpParams, now time.Time) (*domain.Promotion, int64, error) {
	promos, err := s.promoRepo.FindActive(ctx, now)
	if err != nil {
		return nil, 0, err
	}
	for i := range promos {
		promo := &promos[i]
		if params.Amount < promo.MinAmount {
			continue
		}
		if promo.RequiredTier != nil && *promo.RequiredTier != params.OwnerTier {
			continue
		}
		if promo.PerUserLimit > 0 {
			used, err := s.promoRepo.CountUsage(ctx, promo.ID, params.OwnerID)
			if err != nil {
				return nil, 0, err
			}
			if used >= promo.PerUserLimit {
				continue
			}
		}
		return promo, promo.Bonus, nil
	}
	return nil, 0, nil
}

// Debit charges the wallet, spending the bonus balance first. The
// ledger row stores the charge as a negative amount.
func (s *Service) Debit(ctx context.Context, ownerID int, amount int64, description string) (*DebitResult, error) {
	if amount <= 0 {
		return nil, domain.NewValidationError("INVALID_AMOUNT", "debit amount must be positive")
	}

	var result *DebitResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.walletRepo.GetByOwnerForUpdate(ctx, ownerID)
		if err != nil {
			return err
		}
		if wallet == nil {
			return &domain.InsufficientBalanceError{Shortfall: amount}
		}
		if wallet.TotalBalance() < amount {
			return &domain.InsufficientBalanceError{Shortfall: amount - wallet.TotalBalance()}
		}

		fromBonus := min64(wallet.BonusBalance, amount)
		fromMain := amount - fromBonus
		wallet.BonusBalance -= fromBonus
		wallet.MainBalance -= fromMain

		wallet, err = s.walletRepo.Update(ctx, wallet)
		if err != nil {
			return err
		}

		tx, err := s.txRepo.Create(ctx, &domain.WalletTransaction{
			OwnerID:     ownerID,
			Type:        domain.TransactionTypePayment,
			Amount:      -money.ToMajor(amount),
			BonusAmount: money.ToMajor(fromBonus),
			Status:      domain.TransactionStatusCompleted,
			Description: description,
		})
		if err != nil {
			return err
		}

		result = &DebitResult{
			Wallet:      wallet,
			Transaction: tx,
			FromBonus:   fromBonus,
			FromMain:    fromMain,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("wallet debited",
		zap.Int("ownerID", ownerID),
		zap.Int64("amount", amount),
		zap.Int64("fromBonus", result.FromBonus))
	return result, nil
}

// CheckBalance answers whether the wallet can cover amount, using the
// same bonus-first split a real debit would, without writing anything.
func (s *Service) CheckBalance(ctx context.Context, ownerID int, amount int64) (*BalanceCheck, error) {
	if amount <= 0 {
		return nil, domain.NewValidationError("INVALID_AMOUNT", "amount must be positive")
	}

	wallet, err := s.walletRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return &BalanceCheck{Shortfall: amount}, nil
	}

	check := &BalanceCheck{Total: wallet.TotalBalance()}
	if check.Total < amount {
		check.Shortfall = amount - check.Total
		return check, nil
	}
	check.CanPay = true
	check.FromBonus = min64(wallet.BonusBalance, amount)
	check.FromMain = amount - check.FromBonus
	return check, nil
}

// CreatePendingTopUp records a checkout session that has not been paid
// yet. The webhook or reconciler later completes or fails it.
func (s *Service) CreatePendingTopUp(ctx context.Context, ownerID int, amount int64, reference, description string) (*domain.WalletTransaction, error) {
	if amount <= 0 {
		return nil, domain.NewValidationError("INVALID_AMOUNT", "top-up amount must be positive")
	}
	if reference == "" {
		return nil, domain.NewValidationError("MISSING_REFERENCE", "a gateway reference is required")
	}

	existing, err := s.txRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewValidationError("DUPLICATE_REFERENCE", "reference already recorded")
	}

	if _, err := s.GetWallet(ctx, ownerID); err != nil {
		return nil, err
	}

	return s.txRepo.Create(ctx, &domain.WalletTransaction{
		OwnerID:     ownerID,
		Type:        domain.TransactionTypeTopUp,
		Amount:      money.ToMajor(amount),
		Status:      domain.TransactionStatusPending,
		Reference:   reference,
		Description: description,
	})
}

// FailTopUp marks a pending top-up failed after the gateway reported
// the payment dead.
func (s *Service) FailTopUp(ctx context.Context, reference string) error {
	tx, err := s.txRepo.GetByReference(ctx, reference)
	if err != nil {
		return err
	}
	if tx == nil {
		return domain.ErrNotFound
	}
	if tx.Status != domain.TransactionStatusPending {
		return nil
	}
	return s.txRepo.MarkFailed(ctx, tx.ID)
}

// PendingTopUps lists pending top-ups younger than cutoff, for the
// reconciler to poll against the gateway.
func (s *Service) PendingTopUps(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.WalletTransaction, error) {
	return s.txRepo.FindPendingTopUps(ctx, cutoff, limit)
}

func (s *Service) ListTransactions(ctx context.Context, ownerID int, limit uint32) ([]domain.WalletTransaction, error) {
	return s.txRepo.ListByOwner(ctx, ownerID, limit)
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
