package wallet

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/branchpay/walletcore/internal/domain"
	"github.com/branchpay/walletcore/internal/dto"
	"github.com/branchpay/walletcore/internal/gateway"
	"github.com/branchpay/walletcore/internal/pg"
	"github.com/branchpay/walletcore/internal/service/earningservice"
	"github.com/branchpay/walletcore/internal/service/walletservice"
	"github.com/branchpay/walletcore/pkg/money"
	"github.com/branchpay/walletcore/pkg/principal"
	"github.com/branchpay/walletcore/pkg/utils"
)

const defaultListLimit = 100

// minTopUpAmount is the gateway's floor for checkout sessions (₱100).
const minTopUpAmount int64 = 10000

type Service interface {
	GetWallet(ctx context.Context, ownerID int) (*domain.Wallet, error)
	CreditTopUp(ctx context.Context, params walletservice.TopUpParams) (*walletservice.TopUpResult, error)
	Debit(ctx context.Context, ownerID int, amount int64, description string) (*walletservice.DebitResult, error)
	CheckBalance(ctx context.Context, ownerID int, amount int64) (*walletservice.BalanceCheck, error)
	CreatePendingTopUp(ctx context.Context, ownerID int, amount int64, reference, description string) (*domain.WalletTransaction, error)
	FailTopUp(ctx context.Context, reference string) error
	ListTransactions(ctx context.Context, ownerID int, limit uint32) ([]domain.WalletTransaction, error)
}

type EarningsService interface {
	RecordEarning(ctx context.Context, params earningservice.RecordEarningParams) (*domain.BranchEarning, error)
}

// WebhookSecrets yields the shared HMAC key for webhook signatures.
type WebhookSecrets interface {
	DecryptedWebhookSecret(ctx context.Context) (string, error)
}

type WalletHandler struct {
	walletService Service
	earnings      EarningsService
	gatewayClient gateway.ClientI
	secrets       WebhookSecrets
	txManager     pg.TXManager
}

func New(walletService Service, earnings EarningsService, gatewayClient gateway.ClientI, secrets WebhookSecrets, txManager pg.TXManager) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		earnings:      earnings,
		gatewayClient: gatewayClient,
		secrets:       secrets,
		txManager:     txManager,
	}
}

// GetWallet godoc
//
//	@Summary		Get wallet balances
//	@Description	Retrieve the main and bonus balances of the authenticated owner's wallet.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Wallet balances"
//	@Failure		401	{object}	utils.Response			"Not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	p, _ := principal.FromContext(r.Context())

	wallet, err := h.walletService.GetWallet(r.Context(), p.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, walletDTO(wallet))
}

// CreateTopUpSession godoc
//
//	@Summary		Open a top-up checkout session
//	@Description	Create a hosted checkout session at the payment gateway and a pending ledger row tied to its reference.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TopUpRequestDTO	true	"Top-up amount in pesos"
//	@Success		201		{object}	dto.TopUpSessionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"Not authorized"
//	@Failure		502		{object}	utils.Response	"Gateway unavailable"
//	@Router			/api/wallet/topup [post]
func (h *WalletHandler) CreateTopUpSession(w http.ResponseWriter, r *http.Request) {
	p, _ := principal.FromContext(r.Context())

	var req dto.TopUpRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Amount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	amount := money.ToMinor(req.Amount)
	if amount < minTopUpAmount {
		utils.RespondWithError(w, http.StatusBadRequest, "minimum top-up is 100.00")
		return
	}
	session, err := h.gatewayClient.CreateCheckout(r.Context(), p.ID, amount, req.Description)
	if err != nil {
		zap.L().Error("failed to create checkout session", zap.Error(err))
		utils.RespondWithError(w, http.StatusBadGateway, "payment gateway unavailable")
		return
	}

	if _, err := h.walletService.CreatePendingTopUp(r.Context(), p.ID, amount, session.Reference, req.Description); err != nil {
		h.respondDomainError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.TopUpSessionResponseDTO{
		Reference:   session.Reference,
		CheckoutURL: session.CheckoutURL,
		Amount:      req.Amount,
	})
}

// CheckBalance godoc
//
//	@Summary		Check whether the wallet can cover an amount
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BalanceCheckRequestDTO	true	"Amount in pesos"
//	@Success		200		{object}	dto.BalanceCheckResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"Not authorized"
//	@Router			/api/wallet/balance-check [post]
func (h *WalletHandler) CheckBalance(w http.ResponseWriter, r *http.Request) {
	p, _ := principal.FromContext(r.Context())

	var req dto.BalanceCheckRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	check, err := h.walletService.CheckBalance(r.Context(), p.ID, money.ToMinor(req.Amount))
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceCheckResponseDTO{
		CanPay:    check.CanPay,
		Total:     money.ToMajor(check.Total),
		FromBonus: money.ToMajor(check.FromBonus),
		FromMain:  money.ToMajor(check.FromMain),
		Shortfall: money.ToMajor(check.Shortfall),
	})
}

// Charge godoc
//
//	@Summary		Charge a customer wallet for a branch sale
//	@Description	Debit the customer's wallet bonus-first and record the branch earning with its commission split.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ChargeRequestDTO	true	"Charge payload"
//	@Success		200		{object}	dto.ChargeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid payload"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		403		{object}	utils.Response	"Not a branch operator"
//	@Router			/api/wallet/charge [post]
func (h *WalletHandler) Charge(w http.ResponseWriter, r *http.Request) {
	p, _ := principal.FromContext(r.Context())

	var req dto.ChargeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ServiceName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "serviceName is required")
		return
	}

	// Debit and earning commit together or not at all; the nested
	// service transactions join the one opened here.
	amount := money.ToMinor(req.Amount)
	var debit *walletservice.DebitResult
	var earning *domain.BranchEarning
	err := h.txManager.Begin(r.Context(), func(ctx context.Context) error {
		var err error
		debit, err = h.walletService.Debit(ctx, req.CustomerID, amount, req.Description)
		if err != nil {
			return err
		}
		earning, err = h.earnings.RecordEarning(ctx, earningservice.RecordEarningParams{
			BranchID:    p.BranchID,
			Reference:   "tx_" + strconv.Itoa(debit.Transaction.ID),
			CustomerID:  req.CustomerID,
			ServiceName: req.ServiceName,
			GrossAmount: amount,
		})
		if err != nil {
			zap.L().Error("charge rolled back, earning could not be recorded",
				zap.Int("transactionID", debit.Transaction.ID), zap.Error(err))
		}
		return err
	})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	earningDTO := earningResponse(earning)
	utils.RespondWithJSON(w, http.StatusOK, dto.ChargeResponseDTO{
		TransactionID: debit.Transaction.ID,
		FromBonus:     money.ToMajor(debit.FromBonus),
		FromMain:      money.ToMajor(debit.FromMain),
		Wallet:        walletDTO(debit.Wallet),
		Earning:       &earningDTO,
	})
}

// GetTransactions godoc
//
//	@Summary		List wallet transactions
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Router			/api/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	p, _ := principal.FromContext(r.Context())

	transactions, err := h.walletService.ListTransactions(r.Context(), p.ID, defaultListLimit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.TransactionResponseDTO, 0, len(transactions))
	for _, tx := range transactions {
		resp = append(resp, dto.TransactionResponseDTO{
			ID:          tx.ID,
			Type:        tx.Type,
			Amount:      tx.Amount,
			BonusAmount: tx.BonusAmount,
			Status:      tx.Status,
			Reference:   tx.Reference,
			Description: tx.Description,
			CreatedAt:   tx.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Webhook godoc
//
//	@Summary		Payment gateway webhook
//	@Description	Receive payment notifications. The request body must carry a valid HMAC-SHA256 signature.
//	@Tags			Wallet
//	@Accept			json
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"Bad signature"
//	@Failure		400	{object}	utils.Response	"Malformed event"
//	@Router			/api/wallet/webhook [post]
func (h *WalletHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "unreadable body")
		return
	}

	if !h.verifySignature(r.Context(), body, r.Header.Get("X-Gateway-Signature")) {
		utils.RespondWithError(w, http.StatusUnauthorized, "invalid signature")
		return
	}

	var event dto.WebhookEventDTO
	if err := json.Unmarshal(body, &event); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "malformed event")
		return
	}

	switch event.Type {
	case gateway.EventPaymentPaid:
		_, err = h.walletService.CreditTopUp(r.Context(), walletservice.TopUpParams{
			OwnerID:    event.Data.OwnerID,
			Amount:     money.ToMinor(event.Data.Amount),
			Reference:  event.Data.Reference,
			ApplyBonus: true,
		})
	case gateway.EventPaymentFailed:
		err = h.walletService.FailTopUp(r.Context(), event.Data.Reference)
		if errors.Is(err, domain.ErrNotFound) {
			err = nil
		}
	default:
		zap.L().Info("ignoring webhook event", zap.String("type", event.Type))
	}
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok"})
}

func (h *WalletHandler) verifySignature(ctx context.Context, body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	secret, err := h.secrets.DecryptedWebhookSecret(ctx)
	if err != nil {
		zap.L().Error("webhook secret unavailable", zap.Error(err))
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (h *WalletHandler) respondDomainError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	var insufficientErr *domain.InsufficientBalanceError
	switch {
	case errors.As(err, &insufficientErr):
		utils.RespondWithError(w, http.StatusPaymentRequired, insufficientErr.Error())
	case errors.As(err, &validationErr):
		utils.RespondWithError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "not found")
	default:
		zap.L().Error("wallet handler error", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func walletDTO(wallet *domain.Wallet) dto.WalletResponseDTO {
	return dto.WalletResponseDTO{
		MainBalance:  money.ToMajor(wallet.MainBalance),
		BonusBalance: money.ToMajor(wallet.BonusBalance),
		TotalBalance: money.ToMajor(wallet.TotalBalance()),
		Currency:     wallet.Currency,
	}
}

func earningResponse(earning *domain.BranchEarning) dto.EarningResponseDTO {
	return dto.EarningResponseDTO{
		ID:                earning.ID,
		BranchID:          earning.BranchID,
		Reference:         earning.Reference,
		ServiceName:       earning.ServiceName,
		GrossAmount:       money.ToMajor(earning.GrossAmount),
		CommissionPercent: earning.CommissionPercent,
		CommissionAmount:  money.ToMajor(earning.CommissionAmount),
		NetAmount:         money.ToMajor(earning.NetAmount),
		Status:            earning.Status,
		CreatedAt:         earning.CreatedAt,
	}
}
