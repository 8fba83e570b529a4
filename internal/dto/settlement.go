package dto

import "time"

type SettlementRequestDTO struct {
	Notes string `json:"notes,omitempty" example:"Weekly payout"`
}

type SettlementRejectRequestDTO struct {
	Reason string `json:"reason" example:"Account details do not match"`
}

type SettlementCompleteRequestDTO struct {
	TransferReference string `json:"transferReference" example:"xfer_77"`
}

type SettlementReadinessResponseDTO struct {
	CanRequest    bool     `json:"canRequest" example:"true"`
	Blockers      []string `json:"blockers,omitempty" example:"BELOW_MINIMUM"`
	PendingCount  int      `json:"pendingCount" example:"3"`
	PendingNet    float64  `json:"pendingNet" example:"950"`
	MinSettlement float64  `json:"minSettlement" example:"500"`
}

type SettlementResponseDTO struct {
	ID                  int        `json:"id" example:"31"`
	BranchID            int        `json:"branchId" example:"7"`
	Amount              float64    `json:"amount" example:"950"`
	EarningsCount       int        `json:"earningsCount" example:"3"`
	PayoutMethod        string     `json:"payoutMethod" example:"gcash"`
	PayoutAccountNumber string     `json:"payoutAccountNumber" example:"09171234567"`
	PayoutAccountName   string     `json:"payoutAccountName" example:"Branch Seven"`
	PayoutBankName      *string    `json:"payoutBankName,omitempty" example:"BDO"`
	Status              string     `json:"status" example:"pending"`
	RejectionReason     string     `json:"rejectionReason,omitempty"`
	TransferReference   string     `json:"transferReference,omitempty" example:"xfer_77"`
	Notes               string     `json:"notes,omitempty"`
	ApprovedAt          *time.Time `json:"approvedAt,omitempty"`
	CompletedAt         *time.Time `json:"completedAt,omitempty"`
	RejectedAt          *time.Time `json:"rejectedAt,omitempty"`
	CreatedAt           time.Time  `json:"createdAt" example:"2025-09-15T10:00:00Z"`
}
