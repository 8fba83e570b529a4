package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/branchpay/walletcore/internal/pg"
	configrepo "github.com/branchpay/walletcore/internal/repo/config-repo"
	earningrepo "github.com/branchpay/walletcore/internal/repo/earning-repo"
	promorepo "github.com/branchpay/walletcore/internal/repo/promo-repo"
	settlementrepo "github.com/branchpay/walletcore/internal/repo/settlement-repo"
	transactionrepo "github.com/branchpay/walletcore/internal/repo/transaction-repo"
	walletrepo "github.com/branchpay/walletcore/internal/repo/wallet-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.WalletRepo)
	assert.NotNil(t, repo.TransactionRepo)
	assert.NotNil(t, repo.PromoRepo)
	assert.NotNil(t, repo.EarningRepo)
	assert.NotNil(t, repo.SettlementRepo)
	assert.NotNil(t, repo.ConfigRepo)

	assert.IsType(t, &walletrepo.Repository{}, repo.WalletRepo)
	assert.IsType(t, &transactionrepo.Repository{}, repo.TransactionRepo)
	assert.IsType(t, &promorepo.Repository{}, repo.PromoRepo)
	assert.IsType(t, &earningrepo.Repository{}, repo.EarningRepo)
	assert.IsType(t, &settlementrepo.Repository{}, repo.SettlementRepo)
	assert.IsType(t, &configrepo.Repository{}, repo.ConfigRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
