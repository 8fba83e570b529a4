package walletrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/branchpay/walletcore/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func walletRows(w *domain.Wallet) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "owner_id", "main_balance", "bonus_balance", "currency",
		"bonus_given_this_month", "bonus_month_start", "created_at", "updated_at",
	}).AddRow(w.ID, w.OwnerID, w.MainBalance, w.BonusBalance, w.Currency,
		w.BonusGivenThisMonth, w.BonusMonthStart, w.CreatedAt, w.UpdatedAt)
}

func TestRepository_GetByOwner(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	monthStart := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	wallet := &domain.Wallet{
		ID:                  1,
		OwnerID:             42,
		MainBalance:         100000,
		BonusBalance:        15000,
		Currency:            "PHP",
		BonusGivenThisMonth: 15000,
		BonusMonthStart:     monthStart,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	tests := []struct {
		name      string
		ownerID   int
		mockSetup func()
		expectErr bool
		result    *domain.Wallet
	}{
		{
			name:    "Existing owner returns wallet",
			ownerID: 42,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wallets`)).
					WithArgs(42).
					WillReturnRows(walletRows(wallet))
			},
			expectErr: false,
			result:    wallet,
		},
		{
			name:    "Unknown owner returns nil",
			ownerID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wallets`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:    "Database error",
			ownerID: 42,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wallets`)).
					WithArgs(42).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByOwner(context.Background(), tt.ownerID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	monthStart := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	wallet := &domain.Wallet{
		ID:                  1,
		OwnerID:             42,
		MainBalance:         85000,
		BonusBalance:        0,
		Currency:            "PHP",
		BonusGivenThisMonth: 15000,
		BonusMonthStart:     monthStart,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully updates balances",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE wallets`)).
					WithArgs(wallet.MainBalance, wallet.BonusBalance, wallet.BonusGivenThisMonth, wallet.BonusMonthStart, wallet.OwnerID).
					WillReturnRows(walletRows(wallet))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE wallets`)).
					WithArgs(wallet.MainBalance, wallet.BonusBalance, wallet.BonusGivenThisMonth, wallet.BonusMonthStart, wallet.OwnerID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Update(context.Background(), wallet)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, wallet, result)
			}
		})
	}
}
