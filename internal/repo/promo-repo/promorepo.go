package promorepo

import (
	"context"
	"time"

	"github.com/branchpay/walletcore/internal/domain"
	"github.com/branchpay/walletcore/internal/pg"
	"go.uber.org/zap"
)

const promoColumns = `id, name, min_amount, bonus, required_tier, usage_limit, per_user_limit, used_count, starts_at, ends_at, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanPromotion(row pg.RowScanner) (*domain.Promotion, error) {
	var p domain.Promotion
	err := row.Scan(&p.ID, &p.Name, &p.MinAmount, &p.Bonus, &p.RequiredTier,
		&p.UsageLimit, &p.PerUserLimit, &p.UsedCount, &p.StartsAt, &p.EndsAt, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, promo *domain.Promotion) (*domain.Promotion, error) {
	query := `
        INSERT INTO promotions (name, min_amount, bonus, required_tier, usage_limit, per_user_limit, starts_at, ends_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + promoColumns + `
    `
	created, err := scanPromotion(r.db.QueryRow(ctx, query,
		promo.Name, promo.MinAmount, promo.Bonus, promo.RequiredTier,
		promo.UsageLimit, promo.PerUserLimit, promo.StartsAt, promo.EndsAt))
	if err != nil {
		zap.L().Error("failed to create promotion", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// FindActive returns promotions live at the given instant whose global
// usage limit (0 = unlimited) is not exhausted.
func (r *Repository) FindActive(ctx context.Context, at time.Time) ([]domain.Promotion, error) {
	query := `
        SELECT ` + promoColumns + `
        FROM promotions
        WHERE starts_at <= $1 AND ends_at > $1
          AND (usage_limit = 0 OR used_count < usage_limit)
        ORDER BY bonus DESC
    `
	rows, err := r.db.Query(ctx, query, at)
	if err != nil {
		zap.L().Error("failed to find active promotions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var promos []domain.Promotion
	for rows.Next() {
		promo, err := scanPromotion(rows)
		if err != nil {
			zap.L().Error("failed to scan promotion row", zap.Error(err))
			return nil, err
		}
		promos = append(promos, *promo)
	}

	return promos, nil
}

func (r *Repository) CountUsage(ctx context.Context, promoID, ownerID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM promo_usages
        WHERE promo_id = $1 AND owner_id = $2
    `
	var count int
	if err := r.db.QueryRow(ctx, query, promoID, ownerID).Scan(&count); err != nil {
		zap.L().Error("failed to count promo usage", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) CreateUsage(ctx context.Context, promoID, ownerID, transactionID int) error {
	query := `
        INSERT INTO promo_usages (promo_id, owner_id, transaction_id)
        VALUES ($1, $2, $3)
    `
	if _, err := r.db.Exec(ctx, query, promoID, ownerID, transactionID); err != nil {
		zap.L().Error("failed to record promo usage", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) IncrementUsage(ctx context.Context, promoID int) error {
	query := `
        UPDATE promotions
        SET used_count = used_count + 1
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, promoID); err != nil {
		zap.L().Error("failed to increment promo usage", zap.Error(err))
		return err
	}
	return nil
}
