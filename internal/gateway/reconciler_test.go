package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/branchpay/walletcore/internal/config"
	"github.com/branchpay/walletcore/internal/domain"
	"github.com/branchpay/walletcore/internal/service/walletservice"
)

func newReconcilerMock(t *testing.T) (*Reconciler, *MockClientI, *MockWalletService) {
	ctrl := gomock.NewController(t)
	client := NewMockClientI(ctrl)
	wallets := NewMockWalletService(ctrl)
	cfg := &config.Config{ReconcileInterval: time.Second, PendingTopUpTTL: time.Hour}
	return NewReconciler(cfg, client, wallets), client, wallets
}

func TestReconcile(t *testing.T) {
	pendingTx := domain.WalletTransaction{
		ID:        12,
		OwnerID:   42,
		Type:      domain.TransactionTypeTopUp,
		Amount:    1000,
		Status:    domain.TransactionStatusPending,
		Reference: "topup_abc",
	}

	tests := []struct {
		name        string
		prepareMock func(client *MockClientI, wallets *MockWalletService)
		expectErr   bool
	}{
		{
			name: "Paid payment credits the wallet with bonus",
			prepareMock: func(client *MockClientI, wallets *MockWalletService) {
				client.EXPECT().CheckPayment(gomock.Any(), "topup_abc").Return(&PaymentStatus{
					Reference: "topup_abc", Status: StatusPaid, Amount: 100000, OwnerID: 42,
				}, nil)
				wallets.EXPECT().CreditTopUp(gomock.Any(), walletservice.TopUpParams{
					OwnerID:    42,
					Amount:     100000,
					Reference:  "topup_abc",
					ApplyBonus: true,
				}).Return(&walletservice.TopUpResult{}, nil)
			},
		},
		{
			name: "Paid payment without an amount falls back to the ledger row",
			prepareMock: func(client *MockClientI, wallets *MockWalletService) {
				client.EXPECT().CheckPayment(gomock.Any(), "topup_abc").Return(&PaymentStatus{
					Reference: "topup_abc", Status: StatusPaid, OwnerID: 42,
				}, nil)
				wallets.EXPECT().CreditTopUp(gomock.Any(), walletservice.TopUpParams{
					OwnerID:    42,
					Amount:     100000,
					Reference:  "topup_abc",
					ApplyBonus: true,
				}).Return(&walletservice.TopUpResult{}, nil)
			},
		},
		{
			name: "Failed payment marks the top-up failed",
			prepareMock: func(client *MockClientI, wallets *MockWalletService) {
				client.EXPECT().CheckPayment(gomock.Any(), "topup_abc").Return(&PaymentStatus{
					Reference: "topup_abc", Status: StatusFailed,
				}, nil)
				wallets.EXPECT().FailTopUp(gomock.Any(), "topup_abc").Return(nil)
			},
		},
		{
			name: "Expired payment marks the top-up failed",
			prepareMock: func(client *MockClientI, wallets *MockWalletService) {
				client.EXPECT().CheckPayment(gomock.Any(), "topup_abc").Return(&PaymentStatus{
					Reference: "topup_abc", Status: StatusExpired,
				}, nil)
				wallets.EXPECT().FailTopUp(gomock.Any(), "topup_abc").Return(nil)
			},
		},
		{
			name: "Still pending payment is left alone",
			prepareMock: func(client *MockClientI, wallets *MockWalletService) {
				client.EXPECT().CheckPayment(gomock.Any(), "topup_abc").Return(&PaymentStatus{
					Reference: "topup_abc", Status: StatusPending,
				}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reconciler, client, wallets := newReconcilerMock(t)
			tt.prepareMock(client, wallets)

			err := reconciler.reconcile(context.Background(), pendingTx)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
