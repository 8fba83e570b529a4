package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/branchpay/walletcore/internal/pg"
	"github.com/branchpay/walletcore/internal/repo"
	"github.com/branchpay/walletcore/internal/service/configservice"
	"github.com/branchpay/walletcore/internal/service/earningservice"
	"github.com/branchpay/walletcore/internal/service/settlementservice"
	"github.com/branchpay/walletcore/internal/service/walletservice"
)

const testEncryptionKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func newRepositories(ctrl *gomock.Controller) *repo.Repositories {
	return &repo.Repositories{
		WalletRepo:      walletservice.NewMockWalletRepo(ctrl),
		TransactionRepo: walletservice.NewMockTransactionRepo(ctrl),
		PromoRepo:       walletservice.NewMockPromoRepo(ctrl),
		EarningRepo:     earningservice.NewMockRepo(ctrl),
		SettlementRepo:  settlementservice.NewMockSettlementRepo(ctrl),
		ConfigRepo:      configservice.NewMockRepo(ctrl),
	}
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := newRepositories(ctrl)
	txManager := pg.NewMockTXManager(ctrl)

	services, err := New(repos, txManager, testEncryptionKey)
	assert.NoError(t, err)

	assert.NotNil(t, services.WalletService)
	assert.NotNil(t, services.EarningService)
	assert.NotNil(t, services.SettlementService)
	assert.NotNil(t, services.ConfigService)
}

func TestNew_BadEncryptionKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services, err := New(newRepositories(ctrl), pg.NewMockTXManager(ctrl), "short")
	assert.Error(t, err)
	assert.Nil(t, services)
}
