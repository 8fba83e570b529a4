package dto

import "time"

// Amounts on the HTTP surface are major units (pesos). They are
// converted to minor units exactly once on the way in.

type TopUpRequestDTO struct {
	Amount      float64 `json:"amount" example:"1000"`
	Description string  `json:"description,omitempty" example:"Wallet top-up"`
}

type TopUpSessionResponseDTO struct {
	Reference   string  `json:"reference" example:"topup_9f1c2d"`
	CheckoutURL string  `json:"checkoutUrl" example:"https://gateway.test/checkout/cs_123"`
	Amount      float64 `json:"amount" example:"1000"`
}

type WalletResponseDTO struct {
	MainBalance  float64 `json:"mainBalance" example:"1000"`
	BonusBalance float64 `json:"bonusBalance" example:"150"`
	TotalBalance float64 `json:"totalBalance" example:"1150"`
	Currency     string  `json:"currency" example:"PHP"`
}

type BalanceCheckRequestDTO struct {
	Amount float64 `json:"amount" example:"40"`
}

type BalanceCheckResponseDTO struct {
	CanPay    bool    `json:"canPay" example:"true"`
	Total     float64 `json:"total" example:"80"`
	FromBonus float64 `json:"fromBonus" example:"30"`
	FromMain  float64 `json:"fromMain" example:"10"`
	Shortfall float64 `json:"shortfall,omitempty" example:"0"`
}

type ChargeRequestDTO struct {
	CustomerID  int     `json:"customerId" example:"42"`
	Amount      float64 `json:"amount" example:"350"`
	ServiceName string  `json:"serviceName" example:"grooming"`
	Description string  `json:"description,omitempty" example:"Full groom package"`
}

type ChargeResponseDTO struct {
	TransactionID int                `json:"transactionId" example:"20"`
	FromBonus     float64            `json:"fromBonus" example:"30"`
	FromMain      float64            `json:"fromMain" example:"320"`
	Wallet        WalletResponseDTO  `json:"wallet"`
	Earning       *EarningResponseDTO `json:"earning,omitempty"`
}

type TransactionResponseDTO struct {
	ID          int       `json:"id" example:"11"`
	Type        string    `json:"type" example:"topup"`
	Amount      float64   `json:"amount" example:"1000"`
	BonusAmount float64   `json:"bonusAmount" example:"150"`
	Status      string    `json:"status" example:"completed"`
	Reference   string    `json:"reference,omitempty" example:"topup_9f1c2d"`
	Description string    `json:"description,omitempty" example:"Wallet top-up"`
	CreatedAt   time.Time `json:"createdAt" example:"2025-09-15T10:00:00Z"`
}

type EarningResponseDTO struct {
	ID                int       `json:"id" example:"50"`
	BranchID          int       `json:"branchId" example:"7"`
	Reference         string    `json:"reference" example:"sale_1"`
	ServiceName       string    `json:"serviceName" example:"grooming"`
	GrossAmount       float64   `json:"grossAmount" example:"350"`
	CommissionPercent float64   `json:"commissionPercent" example:"5"`
	CommissionAmount  float64   `json:"commissionAmount" example:"17.5"`
	NetAmount         float64   `json:"netAmount" example:"332.5"`
	Status            string    `json:"status" example:"pending"`
	CreatedAt         time.Time `json:"createdAt" example:"2025-09-15T10:00:00Z"`
}

type PendingEarningsResponseDTO struct {
	Count           int     `json:"count" example:"3"`
	TotalGross      float64 `json:"totalGross" example:"1000"`
	TotalCommission float64 `json:"totalCommission" example:"50"`
	TotalNet        float64 `json:"totalNet" example:"950"`
}

// WebhookEventDTO is the gateway's payment notification payload.
type WebhookEventDTO struct {
	Type string `json:"type" example:"payment.paid"`
	Data struct {
		Reference string  `json:"reference" example:"topup_9f1c2d"`
		Amount    float64 `json:"amount" example:"1000"`
		OwnerID   int     `json:"ownerId" example:"42"`
	} `json:"data"`
}
