package repo

import (
	"github.com/branchpay/walletcore/internal/pg"
	configrepo "github.com/branchpay/walletcore/internal/repo/config-repo"
	earningrepo "github.com/branchpay/walletcore/internal/repo/earning-repo"
	promorepo "github.com/branchpay/walletcore/internal/repo/promo-repo"
	settlementrepo "github.com/branchpay/walletcore/internal/repo/settlement-repo"
	transactionrepo "github.com/branchpay/walletcore/internal/repo/transaction-repo"
	walletrepo "github.com/branchpay/walletcore/internal/repo/wallet-repo"
	"github.com/branchpay/walletcore/internal/service/configservice"
	"github.com/branchpay/walletcore/internal/service/earningservice"
	"github.com/branchpay/walletcore/internal/service/settlementservice"
	"github.com/branchpay/walletcore/internal/service/walletservice"
)

type Repositories struct {
	WalletRepo      walletservice.WalletRepo
	TransactionRepo walletservice.TransactionRepo
	PromoRepo       walletservice.PromoRepo
	EarningRepo     earningservice.Repo
	SettlementRepo  settlementservice.SettlementRepo
	ConfigRepo      configservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	walletRepo := walletrepo.New(conn)
	transactionRepo := transactionrepo.New(conn)
	promoRepo := promorepo.New(conn)
	earningRepo := earningrepo.New(conn)
	settlementRepo := settlementrepo.New(conn)
	configRepo := configrepo.New(conn)

	return &Repositories{
		WalletRepo:      walletRepo,
		TransactionRepo: transactionRepo,
		PromoRepo:       promoRepo,
		EarningRepo:     earningRepo,
		SettlementRepo:  settlementRepo,
		ConfigRepo:      configRepo,
	}
}
