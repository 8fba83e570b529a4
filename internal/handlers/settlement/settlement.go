package settlement

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
	"github.com/branchpay/walletcore/internal/service/settlementservice"
	"github.com/branchpay/walletcore/pkg/money"
	"github.com/branchpay/walletcore/pkg/principal"
	"github.com/branchpay/walletcore/pkg/utils"
)

const defaultListLimit = 100

type Service interface {
	Request(ctx context.Context, branchID, requestedBy int, notes string) (*domain.BranchSettlement, error)
	Get(ctx context.Context, id int) (*domain.BranchSettlement, error)
	ListByBranch(ctx context.Context, branchID int, limit uint32) ([]domain.BranchSettlement, error)
	ListByStatus(ctx context.Context, status string, limit uint32) ([]domain.BranchSettlement, error)
	Approve(ctx context.Context, id, approvedBy int) (*domain.BranchSettlement, error)
	MarkProcessing(ctx context.Context, id, processedBy int) (*domain.BranchSettlement, error)
	Complete(ctx context.Context, id, completedBy int, transferReference string) (*domain.BranchSettlement, error)
	Reject(ctx context.Context, id, rejectedBy int, reason string) (*domain.BranchSettlement, error)
	Earnings(ctx context.Context, settlementID int) ([]domain.BranchEarning, error)
	Readiness(ctx context.Context, branchID int) (*settlementservice.Readiness, error)
}

type EarningsService interface {
	ListEarnings(ctx context.Context, branchID int, limit uint32) ([]domain.BranchEarning, error)
	PendingTotal(ctx context.Context, branchID int) (*domain.PendingEarningsTotal, error)
}

type SettlementHandler struct {
	settlements Service
	earnings    EarningsService
}

func New(settlements Service, earnings EarningsService) *SettlementHandler {
	return &SettlementHandler{settlements: settlements, earnings: earnings}
}

// Request godoc
//
//	@Summary		Request a settlement for the caller's branch
//	@Description	Freeze all pending earnings of the branch into a new settlement request.
//	@Tags			Settlements
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SettlementRequestDTO	true	"Optional notes"
//	@Success		201		{object}	dto.SettlementResponseDTO
//	@Failure		400		{object}	utils.Response	"Nothing to settle or payout not configured"
//	@Failure		401		{object}	utils.Response	"Not authorized"
//	@Failure		409		{object}	utils.Response	"A settlement is already in flight"
//	@Router			/api/settlements [post]
func (h *SettlementHandler) Request(w http.ResponseWriter, r *http.Request) {
	p, _ := principal.FromContext(r.Context())

	var req dto.SettlementRequestDTO
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	settlement, err := h.settlements.Request(r.Context(), p.BranchID, p.ID, req.Notes)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, settlementDTO(settlement))
}

// ListMine godoc
//
//	@Summary	List the caller branch's settlements
//	@Tags		Settlements
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.SettlementResponseDTO
//	@Failure	401	{object}	utils.Response	"Not authorized"
//	@Router		/api/settlements [get]
func (h *SettlementHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	p, _ := principal.FromContext(r.Context())

	settlements, err := h.settlements.ListByBranch(r.Context(), p.BranchID, defaultListLimit)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, settlementDTOs(settlements))
}

// Readiness godoc
//
//	@Summary		Report whether the caller's branch can request a settlement
//	@Description	Lists every blocker (in-flight settlement, nothing pending, below minimum, payout not configured) instead of failing on the first.
//	@Tags			Settlements
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SettlementReadinessResponseDTO
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Router			/api/settlements/readiness [get]
func (h *SettlementHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	p, _ := principal.FromContext(r.Context())

	readiness, err := h.settlements.Readiness(r.Context(), p.BranchID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SettlementReadinessResponseDTO{
		CanRequest:    readiness.CanRequest,
		Blockers:      readiness.Blockers,
		PendingCount:  readiness.PendingTotal.Count,
		PendingNet:    money.ToMajor(readiness.PendingTotal.TotalNet),
		MinSettlement: money.ToMajor(readiness.MinSettlement),
	})
}

// ListByStatus godoc
//
//	@Summary	List settlements in a given status across branches
//	@Tags		Settlements
//	@Security	BearerAuth
//	@Produce	json
//	@Param		status	query		string	true	"Settlement status"
//	@Success	200		{array}		dto.SettlementResponseDTO
//	@Failure	400		{object}	utils.Response	"Unknown status"
//	@Failure	403		{object}	utils.Response	"Admin only"
//	@Router		/api/admin/settlements [get]
func (h *SettlementHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = domain.SettlementStatusPending
	}

	settlements, err := h.settlements.ListByStatus(r.Context(), status, defaultListLimit)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, settlementDTOs(settlements))
}

// Get godoc
//
//	@Summary	Get a settlement by id
//	@Tags		Settlements
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Settlement ID"
//	@Success	200	{object}	dto.SettlementResponseDTO
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Router		/api/settlements/{id} [get]
func (h *SettlementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	settlement, err := h.settlements.Get(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	p, _ := principal.FromContext(r.Context())
	if p.Role != domain.RoleSuperAdmin && settlement.BranchID != p.BranchID {
		utils.RespondWithError(w, http.StatusNotFound, "not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, settlementDTO(settlement))
}

// Approve godoc
//
//	@Summary	Approve a pending settlement
//	@Tags		Settlements
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Settlement ID"
//	@Success	200	{object}	dto.SettlementResponseDTO
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Failure	409	{object}	utils.Response	"Not in a state that allows approval"
//	@Router		/api/admin/settlements/{id}/approve [post]
func (h *SettlementHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.settlements.Approve)
}

// MarkProcessing godoc
//
//	@Summary	Move an approved settlement into processing
//	@Tags		Settlements
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Settlement ID"
//	@Success	200	{object}	dto.SettlementResponseDTO
//	@Failure	409	{object}	utils.Response	"Not in a state that allows processing"
//	@Router		/api/admin/settlements/{id}/process [post]
func (h *SettlementHandler) MarkProcessing(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.settlements.MarkProcessing)
}

func (h *SettlementHandler) transition(
	w http.ResponseWriter, r *http.Request,
	fn func(ctx context.Context, id, actor int) (*domain.BranchSettlement, error),
) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, _ := principal.FromContext(r.Context())

	settlement, err := fn(r.Context(), id, p.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, settlementDTO(settlement))
}

// Complete godoc
//
//	@Summary		Complete a processing settlement
//	@Description	Record the bank/e-wallet transfer reference and mark every frozen earning as settled.
//	@Tags			Settlements
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Settlement ID"
//	@Param			request	body		dto.SettlementCompleteRequestDTO	true	"Transfer reference"
//	@Success		200		{object}	dto.SettlementResponseDTO
//	@Failure		409		{object}	utils.Response	"Not in a state that allows completion"
//	@Router			/api/admin/settlements/{id}/complete [post]
func (h *SettlementHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, _ := principal.FromContext(r.Context())

	var req dto.SettlementCompleteRequestDTO
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	settlement, err := h.settlements.Complete(r.Context(), id, p.ID, req.TransferReference)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, settlementDTO(settlement))
}

// Reject godoc
//
//	@Summary		Reject a settlement and release its earnings
//	@Tags			Settlements
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Settlement ID"
//	@Param			request	body		dto.SettlementRejectRequestDTO	true	"Rejection reason"
//	@Success		200		{object}	dto.SettlementResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing reason"
//	@Failure		409		{object}	utils.Response	"Already terminal"
//	@Router			/api/admin/settlements/{id}/reject [post]
func (h *SettlementHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, _ := principal.FromContext(r.Context())

	var req dto.SettlementRejectRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settlement, err := h.settlements.Reject(r.Context(), id, p.ID, req.Reason)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, settlementDTO(settlement))
}

// SettlementEarnings godoc
//
//	@Summary	List the earnings frozen into a settlement
//	@Tags		Settlements
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Settlement ID"
//	@Success	200	{array}		dto.EarningResponseDTO
//	@Failure	404	{object}	utils.Response	"Not found"
//	@Router		/api/settlements/{id}/earnings [get]
func (h *SettlementHandler) SettlementEarnings(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	settlement, err := h.settlements.Get(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	p, _ := principal.FromContext(r.Context())
	if p.Role != domain.RoleSuperAdmin && settlement.BranchID != p.BranchID {
		utils.RespondWithError(w, http.StatusNotFound, "not found")
		return
	}

	earnings, err := h.settlements.Earnings(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, earningDTOs(earnings))
}

// ListEarnings godoc
//
//	@Summary	List the caller branch's earnings
//	@Tags		Earnings
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.EarningResponseDTO
//	@Failure	401	{object}	utils.Response	"Not authorized"
//	@Router		/api/earnings [get]
func (h *SettlementHandler) ListEarnings(w http.ResponseWriter, r *http.Request) {
	p, _ := principal.FromContext(r.Context())

	earnings, err := h.earnings.ListEarnings(r.Context(), p.BranchID, defaultListLimit)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, earningDTOs(earnings))
}

// PendingEarnings godoc
//
//	@Summary	Totals of the caller branch's unsettled earnings
//	@Tags		Earnings
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.PendingEarningsResponseDTO
//	@Failure	401	{object}	utils.Response	"Not authorized"
//	@Router		/api/earnings/pending [get]
func (h *SettlementHandler) PendingEarnings(w http.ResponseWriter, r *http.Request) {
	p, _ := principal.FromContext(r.Context())

	total, err := h.earnings.PendingTotal(r.Context(), p.BranchID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PendingEarningsResponseDTO{
		Count:           total.Count,
		TotalGross:      money.ToMajor(total.TotalGross),
		TotalCommission: money.ToMajor(total.TotalCommission),
		TotalNet:        money.ToMajor(total.TotalNet),
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func respondDomainError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	var transitionErr *domain.TransitionError
	switch {
	case errors.As(err, &transitionErr):
		utils.RespondWithError(w, http.StatusConflict, transitionErr.Error())
	case errors.As(err, &validationErr):
		if validationErr.Code == "SETTLEMENT_IN_FLIGHT" || validationErr.Code == "EARNINGS_CHANGED" {
			utils.RespondWithError(w, http.StatusConflict, validationErr.Message)
			return
		}
		utils.RespondWithError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "not found")
	default:
		zap.L().Error("settlement handler error", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func settlementDTO(s *domain.BranchSettlement) dto.SettlementResponseDTO {
	return dto.SettlementResponseDTO{
		ID:                  s.ID,
		BranchID:            s.BranchID,
		Amount:              money.ToMajor(s.Amount),
		EarningsCount:       s.EarningsCount,
		PayoutMethod:        s.PayoutMethod,
		PayoutAccountNumber: s.PayoutAccountNumber,
		PayoutAccountName:   s.PayoutAccountName,
		PayoutBankName:      s.PayoutBankName,
		Status:              s.Status,
		RejectionReason:     s.RejectionReason,
		TransferReference:   s.TransferReference,
		Notes:               s.Notes,
		ApprovedAt:          s.ApprovedAt,
		CompletedAt:         s.CompletedAt,
		RejectedAt:          s.RejectedAt,
		CreatedAt:           s.CreatedAt,
	}
}

func settlementDTOs(settlements []domain.BranchSettlement) []dto.SettlementResponseDTO {
	resp := make([]dto.SettlementResponseDTO, 0, len(settlements))
	for i := range settlements {
		resp = append(resp, settlementDTO(&settlements[i]))
	}
	return resp
}

func earningDTOs(earnings []domain.BranchEarning) []dto.EarningResponseDTO {
	resp := make([]dto.EarningResponseDTO, 0, len(earnings))
	for _, e := range earnings {
		resp = append(resp, dto.EarningResponseDTO{
			ID:                e.ID,
			BranchID:          e.BranchID,
			Reference:         e.Reference,
			ServiceName:       e.ServiceName,
			GrossAmount:       money.ToMajor(e.GrossAmount),
			CommissionPercent: e.CommissionPercent,
			CommissionAmount:  money.ToMajor(e.CommissionAmount),
			NetAmount:         money.ToMajor(e.NetAmount),
			Status:            e.Status,
			CreatedAt:         e.CreatedAt,
		})
	}
	return resp
}
