package service

import (
	"github.com/branchpay/walletcore/internal/pg"
	"github.com/branchpay/walletcore/internal/repo"
	"github.com/branchpay/walletcore/internal/service/configservice"
	"github.com/branchpay/walletcore/internal/service/earningservice"
	"github.com/branchpay/walletcore/internal/service/settlementservice"
	"github.com/branchpay/walletcore/internal/service/walletservice"
)

type Services struct {
	WalletService     *walletservice.Service
	EarningService    *earningservice.Service
	SettlementService *settlementservice.Service
	ConfigService     *configservice.Service
}

// New wires the service layer. The config service doubles as the
// commission and settlement-settings resolver for the other services.
func New(repo *repo.Repositories, txManager pg.TXManager, encryptionKey string) (*Services, error) {
	configService, err := configservice.New(repo.ConfigRepo, encryptionKey)
	if err != nil {
		return nil, err
	}

	walletService := walletservice.New(repo.WalletRepo, repo.TransactionRepo, repo.PromoRepo, repo.ConfigRepo, txManager)
	earningService := earningservice.New(repo.EarningRepo, configService)
	settlementService := settlementservice.New(repo.SettlementRepo, repo.EarningRepo, configService, txManager)

	return &Services{
		WalletService:     walletService,
		EarningService:    earningService,
		SettlementService: settlementService,
		ConfigService:     configService,
	}, nil
}
