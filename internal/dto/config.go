package dto

// SecretUnchanged is the sentinel a client sends to keep a stored
// secret as-is. Anything else replaces it.
const SecretUnchanged = "___UNCHANGED___"

type BonusTierDTO struct {
	MinAmount float64 `json:"minAmount" example:"500"`
	Bonus     float64 `json:"bonus" example:"50"`
}

type ConfigResponseDTO struct {
	GatewayPublicKey           string         `json:"gatewayPublicKey" example:"pk_test_abc"`
	GatewaySecretKeyMasked     string         `json:"gatewaySecretKeyMasked,omitempty" example:"••••5678"`
	WebhookSecretSet           bool           `json:"webhookSecretSet" example:"true"`
	IsTestMode                 bool           `json:"isTestMode" example:"true"`
	DefaultCommissionPercent   float64        `json:"defaultCommissionPercent" example:"5"`
	DefaultSettlementFrequency string         `json:"defaultSettlementFrequency" example:"weekly"`
	MinSettlementAmount        float64        `json:"minSettlementAmount" example:"500"`
	BonusTiers                 []BonusTierDTO `json:"bonusTiers"`
	MonthlyBonusCap            float64        `json:"monthlyBonusCap" example:"0"`
}

type ConfigUpdateRequestDTO struct {
	GatewayPublicKey           string         `json:"gatewayPublicKey"`
	GatewaySecretKey           string         `json:"gatewaySecretKey" example:"___UNCHANGED___"`
	GatewayWebhookSecret       string         `json:"gatewayWebhookSecret" example:"___UNCHANGED___"`
	IsTestMode                 bool           `json:"isTestMode"`
	DefaultCommissionPercent   float64        `json:"defaultCommissionPercent" example:"5"`
	DefaultSettlementFrequency string         `json:"defaultSettlementFrequency" example:"weekly"`
	MinSettlementAmount        float64        `json:"minSettlementAmount" example:"500"`
	BonusTiers                 []BonusTierDTO `json:"bonusTiers"`
	MonthlyBonusCap            float64        `json:"monthlyBonusCap" example:"0"`
}

type BranchSettingsDTO struct {
	BranchID              int      `json:"branchId" example:"7"`
	CommissionOverride    *float64 `json:"commissionOverride,omitempty" example:"2.5"`
	SettlementFrequency   *string  `json:"settlementFrequency,omitempty" example:"weekly"`
	MinSettlementOverride *float64 `json:"minSettlementOverride,omitempty" example:"250"`
	PayoutMethod          *string  `json:"payoutMethod,omitempty" example:"gcash"`
	PayoutAccountNumber   *string  `json:"payoutAccountNumber,omitempty" example:"09171234567"`
	PayoutAccountName     *string  `json:"payoutAccountName,omitempty" example:"Branch Seven"`
	PayoutBankName        *string  `json:"payoutBankName,omitempty" example:"BDO"`
}
