package domain

import (
	"time"

	"github.com/branchpay/walletcore/pkg/bonus"
)

// All monetary fields suffixed with Amount/Balance/Cap are integers in
// minor units (centavos). WalletTransaction.Amount is the one
// exception: a signed major-unit figure kept for display, derived from
// and never driving balance arithmetic.

const (
	TransactionTypeTopUp   = "topup"
	TransactionTypePayment = "payment"

	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"

	EarningStatusPending = "pending"
	EarningStatusSettled = "settled"

	SettlementStatusPending    = "pending"
	SettlementStatusApproved   = "approved"
	SettlementStatusProcessing = "processing"
	SettlementStatusCompleted  = "completed"
	SettlementStatusRejected   = "rejected"

	PayoutMethodBank  = "bank"
	PayoutMethodGCash = "gcash"
	PayoutMethodMaya  = "maya"

	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
	FrequencyManual = "manual"

	RoleSuperAdmin  = "super_admin"
	RoleBranchAdmin = "branch_admin"
	RoleCustomer    = "customer"
)

// SettlementTransitions is the settlement state machine. A transition
// absent from this table is invalid; completed and rejected are
// terminal.
var SettlementTransitions = map[string][]string{
	SettlementStatusPending:    {SettlementStatusApproved, SettlementStatusRejected},
	SettlementStatusApproved:   {SettlementStatusProcessing, SettlementStatusRejected},
	SettlementStatusProcessing: {SettlementStatusCompleted, SettlementStatusRejected},
	SettlementStatusCompleted:  {},
	SettlementStatusRejected:   {},
}

// ValidSettlementTransition reports whether from → to is allowed.
func ValidSettlementTransition(from, to string) bool {
	for _, next := range SettlementTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Wallet struct {
	ID                  int       `db:"id"`
	OwnerID             int       `db:"owner_id"`
	MainBalance         int64     `db:"main_balance"`
	BonusBalance        int64     `db:"bonus_balance"`
	Currency            string    `db:"currency"`
	BonusGivenThisMonth int64     `db:"bonus_given_this_month"`
	BonusMonthStart     time.Time `db:"bonus_month_start"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}

// TotalBalance is the spendable balance across both buckets.
func (w *Wallet) TotalBalance() int64 {
	return w.MainBalance + w.BonusBalance
}

// WalletTransaction is an append-only ledger record. Status is the only
// mutable field and only moves pending → completed/failed.
type WalletTransaction struct {
	ID          int       `db:"id"`
	OwnerID     int       `db:"owner_id"`
	Type        string    `db:"type"`
	Amount      float64   `db:"amount"`
	BonusAmount float64   `db:"bonus_amount"`
	Status      string    `db:"status"`
	Reference   string    `db:"reference"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// BranchEarning records one branch revenue event. Invariant:
// CommissionAmount + NetAmount == GrossAmount exactly.
type BranchEarning struct {
	ID                int       `db:"id"`
	BranchID          int       `db:"branch_id"`
	Reference         string    `db:"reference"`
	CustomerID        int       `db:"customer_id"`
	ServiceName       string    `db:"service_name"`
	GrossAmount       int64     `db:"gross_amount"`
	CommissionPercent float64   `db:"commission_percent"`
	CommissionAmount  int64     `db:"commission_amount"`
	NetAmount         int64     `db:"net_amount"`
	SettlementID      *int      `db:"settlement_id"`
	Status            string    `db:"status"`
	CreatedAt         time.Time `db:"created_at"`
}

// PendingEarningsTotal aggregates a branch's unsettled earnings.
type PendingEarningsTotal struct {
	Count           int
	TotalGross      int64
	TotalCommission int64
	TotalNet        int64
}

type BranchSettlement struct {
	ID                  int        `db:"id"`
	BranchID            int        `db:"branch_id"`
	RequestedBy         int        `db:"requested_by"`
	Amount              int64      `db:"amount"`
	EarningsCount       int        `db:"earnings_count"`
	PayoutMethod        string     `db:"payout_method"`
	PayoutAccountNumber string     `db:"payout_account_number"`
	PayoutAccountName   string     `db:"payout_account_name"`
	PayoutBankName      *string    `db:"payout_bank_name"`
	Status              string     `db:"status"`
	ApprovedBy          *int       `db:"approved_by"`
	ApprovedAt          *time.Time `db:"approved_at"`
	ProcessedBy         *int       `db:"processed_by"`
	ProcessingStartedAt *time.Time `db:"processing_started_at"`
	RejectedBy          *int       `db:"rejected_by"`
	RejectedAt          *time.Time `db:"rejected_at"`
	CompletedBy         *int       `db:"completed_by"`
	CompletedAt         *time.Time `db:"completed_at"`
	RejectionReason     string     `db:"rejection_reason"`
	TransferReference   string     `db:"transfer_reference"`
	Notes               string     `db:"notes"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

// BranchWalletSettings holds per-branch payout preferences and
// overrides of the global defaults. Nil override means "use global".
type BranchWalletSettings struct {
	ID                    int       `db:"id"`
	BranchID              int       `db:"branch_id"`
	CommissionOverride    *float64  `db:"commission_override"`
	SettlementFrequency   *string   `db:"settlement_frequency"`
	MinSettlementOverride *int64    `db:"min_settlement_override"`
	PayoutMethod          *string   `db:"payout_method"`
	PayoutAccountNumber   *string   `db:"payout_account_number"`
	PayoutAccountName     *string   `db:"payout_account_name"`
	PayoutBankName        *string   `db:"payout_bank_name"`
	CreatedAt             time.Time `db:"created_at"`
	UpdatedAt             time.Time `db:"updated_at"`
}

// WalletConfig is the platform-wide wallet configuration row. The
// gateway secret key and webhook secret are stored encrypted in the
// "<ivBase64>:<ciphertextBase64>" form and never leave the vault
// unmasked.
type WalletConfig struct {
	ID                         int          `db:"id"`
	GatewayPublicKey           string       `db:"gateway_public_key"`
	GatewaySecretKey           string       `db:"gateway_secret_key"`
	GatewayWebhookSecret       string       `db:"gateway_webhook_secret"`
	IsTestMode                 bool         `db:"is_test_mode"`
	DefaultCommissionPercent   float64      `db:"default_commission_percent"`
	DefaultSettlementFrequency string       `db:"default_settlement_frequency"`
	MinSettlementAmount        int64        `db:"min_settlement_amount"`
	BonusTiers                 []bonus.Tier `db:"bonus_tiers"`
	MonthlyBonusCap            int64        `db:"monthly_bonus_cap"`
	CreatedAt                  time.Time    `db:"created_at"`
	UpdatedAt                  time.Time    `db:"updated_at"`
}

// Tiers returns the configured bonus tiers or the defaults.
func (c *WalletConfig) Tiers() []bonus.Tier {
	if c == nil || len(c.BonusTiers) == 0 {
		return bonus.DefaultTiers
	}
	return c.BonusTiers
}

// Promotion is a time-boxed top-up bonus independent of (and additive
// with) the tier bonus. At most one promotion applies per top-up.
type Promotion struct {
	ID           int       `db:"id"`
	Name         string    `db:"name"`
	MinAmount    int64     `db:"min_amount"`
	Bonus        int64     `db:"bonus"`
	RequiredTier *string   `db:"required_tier"`
	UsageLimit   int       `db:"usage_limit"`
	PerUserLimit int       `db:"per_user_limit"`
	UsedCount    int       `db:"used_count"`
	StartsAt     time.Time `db:"starts_at"`
	EndsAt       time.Time `db:"ends_at"`
	CreatedAt    time.Time `db:"created_at"`
}

type PromoUsage struct {
	ID            int       `db:"id"`
	PromoID       int       `db:"promo_id"`
	OwnerID       int       `db:"owner_id"`
	TransactionID int       `db:"transaction_id"`
	CreatedAt     time.Time `db:"created_at"`
}
