package config

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/branchpay/walletcore/internal/domain"
	"github.com/branchpay/walletcore/internal/dto"
	"github.com/branchpay/walletcore/internal/service/configservice"
	"github.com/branchpay/walletcore/pkg/bonus"
	"github.com/branchpay/walletcore/pkg/money"
	"github.com/branchpay/walletcore/pkg/principal"
	"github.com/branchpay/walletcore/pkg/utils"
)

type Service interface {
	GetMaskedConfig(ctx context.Context) (*configservice.MaskedConfig, error)
	UpdateConfig(ctx context.Context, actorRole string, params configservice.UpdateConfigParams) (*configservice.MaskedConfig, error)
	GetBranchSettings(ctx context.Context, branchID int) (*domain.BranchWalletSettings, error)
	ListBranchSettings(ctx context.Context) ([]domain.BranchWalletSettings, error)
	UpdateBranchSettings(ctx context.Context, settings *domain.BranchWalletSettings) (*domain.BranchWalletSettings, error)
}

type ConfigHandler struct {
	configService Service
}

func New(configService Service) *ConfigHandler {
	return &ConfigHandler{configService: configService}
}

// GetConfig godoc
//
//	@Summary		Get the platform wallet configuration
//	@Description	Secrets come back masked; only their presence and last characters are revealed.
//	@Tags			Config
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ConfigResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Router			/api/admin/config [get]
func (h *ConfigHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	masked, err := h.configService.GetMaskedConfig(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, configDTO(masked))
}

// UpdateConfig godoc
//
//	@Summary		Update the platform wallet configuration
//	@Description	Send "___UNCHANGED___" in a secret field to keep the stored value.
//	@Tags			Config
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ConfigUpdateRequestDTO	true	"New configuration"
//	@Success		200		{object}	dto.ConfigResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid configuration"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Router			/api/admin/config [put]
func (h *ConfigHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	p, _ := principal.FromContext(r.Context())

	var req dto.ConfigUpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tiers := make([]bonus.Tier, 0, len(req.BonusTiers))
	for _, tier := range req.BonusTiers {
		tiers = append(tiers, bonus.Tier{
			MinAmount: money.ToMinor(tier.MinAmount),
			Bonus:     money.ToMinor(tier.Bonus),
		})
	}

	masked, err := h.configService.UpdateConfig(r.Context(), p.Role, configservice.UpdateConfigParams{
		GatewayPublicKey:           req.GatewayPublicKey,
		GatewaySecretKey:           secretUpdate(req.GatewaySecretKey),
		GatewayWebhookSecret:       secretUpdate(req.GatewayWebhookSecret),
		IsTestMode:                 req.IsTestMode,
		DefaultCommissionPercent:   req.DefaultCommissionPercent,
		DefaultSettlementFrequency: req.DefaultSettlementFrequency,
		MinSettlementAmount:        money.ToMinor(req.MinSettlementAmount),
		BonusTiers:                 tiers,
		MonthlyBonusCap:            money.ToMinor(req.MonthlyBonusCap),
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, configDTO(masked))
}

// GetBranchSettings godoc
//
//	@Summary	Get a branch's settlement overrides and payout details
//	@Tags		Config
//	@Security	BearerAuth
//	@Produce	json
//	@Param		branchId	path		int	true	"Branch ID"
//	@Success	200			{object}	dto.BranchSettingsDTO
//	@Failure	404			{object}	utils.Response	"No settings stored"
//	@Router		/api/admin/branches/{branchId}/settings [get]
func (h *ConfigHandler) GetBranchSettings(w http.ResponseWriter, r *http.Request) {
	branchID, err := strconv.Atoi(chi.URLParam(r, "branchId"))
	if err != nil || branchID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid branch id")
		return
	}

	settings, err := h.configService.GetBranchSettings(r.Context(), branchID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if settings == nil {
		utils.RespondWithError(w, http.StatusNotFound, "no settings for branch")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, branchSettingsDTO(settings))
}

// UpdateBranchSettings godoc
//
//	@Summary	Create or replace a branch's settlement overrides
//	@Tags		Config
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		branchId	path		int						true	"Branch ID"
//	@Param		request		body		dto.BranchSettingsDTO	true	"Overrides; omitted fields fall back to global defaults"
//	@Success	200			{object}	dto.BranchSettingsDTO
//	@Failure	400			{object}	utils.Response	"Invalid overrides"
//	@Router		/api/admin/branches/{branchId}/settings [put]
func (h *ConfigHandler) UpdateBranchSettings(w http.ResponseWriter, r *http.Request) {
	branchID, err := strconv.Atoi(chi.URLParam(r, "branchId"))
	if err != nil || branchID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid branch id")
		return
	}

	var req dto.BranchSettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings := &domain.BranchWalletSettings{
		BranchID:            branchID,
		CommissionOverride:  req.CommissionOverride,
		SettlementFrequency: req.SettlementFrequency,
		PayoutMethod:        req.PayoutMethod,
		PayoutAccountNumber: req.PayoutAccountNumber,
		PayoutAccountName:   req.PayoutAccountName,
		PayoutBankName:      req.PayoutBankName,
	}
	if req.MinSettlementOverride != nil {
		minOverride := money.ToMinor(*req.MinSettlementOverride)
		settings.MinSettlementOverride = &minOverride
	}

	saved, err := h.configService.UpdateBranchSettings(r.Context(), settings)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, branchSettingsDTO(saved))
}

// ListBranchSettings godoc
//
//	@Summary	List every branch's stored settings
//	@Tags		Config
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.BranchSettingsDTO
//	@Failure	403	{object}	utils.Response	"Admin only"
//	@Router		/api/admin/branches/settings [get]
func (h *ConfigHandler) ListBranchSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.configService.ListBranchSettings(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := make([]dto.BranchSettingsDTO, 0, len(settings))
	for i := range settings {
		resp = append(resp, branchSettingsDTO(&settings[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func secretUpdate(field string) configservice.SecretUpdate {
	if field == dto.SecretUnchanged {
		return configservice.KeepSecret()
	}
	return configservice.ReplaceSecret(field)
}

func respondDomainError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrPermissionDenied):
		utils.RespondWithError(w, http.StatusForbidden, "forbidden")
	case errors.As(err, &validationErr):
		utils.RespondWithError(w, http.StatusBadRequest, validationErr.Message)
	default:
		zap.L().Error("config handler error", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func configDTO(masked *configservice.MaskedConfig) dto.ConfigResponseDTO {
	tiers := make([]dto.BonusTierDTO, 0, len(masked.BonusTiers))
	for _, tier := range masked.BonusTiers {
		tiers = append(tiers, dto.BonusTierDTO{
			MinAmount: money.ToMajor(tier.MinAmount),
			Bonus:     money.ToMajor(tier.Bonus),
		})
	}
	return dto.ConfigResponseDTO{
		GatewayPublicKey:           masked.GatewayPublicKey,
		GatewaySecretKeyMasked:     masked.SecretKeyMasked,
		WebhookSecretSet:           masked.WebhookSecretSet,
		IsTestMode:                 masked.IsTestMode,
		DefaultCommissionPercent:   masked.DefaultCommissionPercent,
		DefaultSettlementFrequency: masked.DefaultSettlementFrequency,
		MinSettlementAmount:        money.ToMajor(masked.MinSettlementAmount),
		BonusTiers:                 tiers,
		MonthlyBonusCap:            money.ToMajor(masked.MonthlyBonusCap),
	}
}

func branchSettingsDTO(settings *domain.BranchWalletSettings) dto.BranchSettingsDTO {
	resp := dto.BranchSettingsDTO{
		BranchID:            settings.BranchID,
		CommissionOverride:  settings.CommissionOverride,
		SettlementFrequency: settings.SettlementFrequency,
		PayoutMethod:        settings.PayoutMethod,
		PayoutAccountNumber: settings.PayoutAccountNumber,
		PayoutAccountName:   settings.PayoutAccountName,
		PayoutBankName:      settings.PayoutBankName,
	}
	if settings.MinSettlementOverride != nil {
		minOverride := money.ToMajor(*settings.MinSettlementOverride)
		resp.MinSettlementOverride = &minOverride
	}
	return resp
}
