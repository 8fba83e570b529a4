package gateway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/branchpay/walletcore/internal/config"
	"github.com/branchpay/walletcore/internal/domain"
	"github.com/branchpay/walletcore/internal/service/walletservice"
	"github.com/branchpay/walletcore/pkg/money"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var processingReferences sync.Map

// WalletService is the slice of wallet operations the reconciler
// drives: crediting confirmed payments and failing dead ones.
type WalletService interface {
	CreditTopUp(ctx context.Context, params walletservice.TopUpParams) (*walletservice.TopUpResult, error)
	FailTopUp(ctx context.Context, reference string) error
	PendingTopUps(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.WalletTransaction, error)
}

// Reconciler periodically sweeps pending top-ups and settles them
// against the gateway. It is the safety net for missed webhooks.
type Reconciler struct {
	client       ClientI
	wallets      WalletService
	limit        uint32
	pool         jobPool
	pollInterval time.Duration
	pendingTTL   time.Duration
}

func NewReconciler(cfg *config.Config, client ClientI, wallets WalletService) *Reconciler {
	return &Reconciler{
		client:       client,
		wallets:      wallets,
		limit:        1000,
		pool:         newReferencePool(10),
		pollInterval: cfg.ReconcileInterval,
		pendingTTL:   cfg.PendingTopUpTTL,
	}
}

func (r *Reconciler) Start(ctx context.Context) {
	zap.L().Info("Reconciler started",
		zap.Duration("interval", r.pollInterval),
		zap.Duration("pendingTTL", r.pendingTTL))
	go r.run(ctx)
}

func (r *Reconciler) run(ctx context.Context) {
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciler")
			return
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *Reconciler) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-r.pendingTTL)
	pending, err := r.wallets.PendingTopUps(ctx, cutoff, r.limit)
	if err != nil {
		zap.L().Error("Failed to fetch pending top-ups", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, tx := range pending {
		tx := tx

		if _, loaded := processingReferences.LoadOrStore(tx.Reference, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := r.pool.Dispatch(ctx, func() error {
				defer processingReferences.Delete(tx.Reference)
				return r.reconcile(ctx, tx)
			})
			if err != nil {
				processingReferences.Delete(tx.Reference)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error reconciling top-ups", zap.Error(err))
	}
}

func (r *Reconciler) reconcile(ctx context.Context, tx domain.WalletTransaction) error {
	var payment *PaymentStatus
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			payment, err = r.client.CheckPayment(ctx, tx.Reference)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to check payment %s after %d retries: %w", tx.Reference, maxRetries, err)
			}
		}
		break
	}

	switch payment.Status {
	case StatusPaid:
		amount := payment.Amount
		if amount == 0 {
			amount = money.ToMinor(tx.Amount)
		}
		_, err := r.wallets.CreditTopUp(ctx, walletservice.TopUpParams{
			OwnerID:     tx.OwnerID,
			Amount:      amount,
			Reference:   tx.Reference,
			ApplyBonus:  true,
			Description: tx.Description,
		})
		if err != nil {
			return fmt.Errorf("failed to credit reconciled payment %s: %w", tx.Reference, err)
		}
		zap.L().Info("Reconciled paid top-up", zap.String("reference", tx.Reference))
	case StatusFailed, StatusExpired:
		if err := r.wallets.FailTopUp(ctx, tx.Reference); err != nil {
			return fmt.Errorf("failed to fail top-up %s: %w", tx.Reference, err)
		}
		zap.L().Info("Marked dead top-up failed", zap.String("reference", tx.Reference))
	case StatusPending:
		// still in flight, next sweep will look again
	default:
		zap.L().Warn("Unrecognized payment status",
			zap.String("reference", tx.Reference),
			zap.String("status", payment.Status))
	}
	return nil
}
