package settlementservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/branchpay/walletcore/internal/domain"
	"github.com/branchpay/walletcore/internal/pg"
)

type mocks struct {
	settlementRepo *MockSettlementRepo
	earningRepo    *MockEarningRepo
	settings       *MockSettingsResolver
	txManager      *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		settlementRepo: NewMockSettlementRepo(ctrl),
		earningRepo:    NewMockEarningRepo(ctrl),
		settings:       NewMockSettingsResolver(ctrl),
		txManager:      pg.NewMockTXManager(ctrl),
	}
	service := New(m.settlementRepo, m.earningRepo, m.settings, m.txManager)
	return service, m
}

func passthroughTx(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
}

func strPtr(s string) *string { return &s }

func payoutSettings() *domain.BranchWalletSettings {
	return &domain.BranchWalletSettings{
		BranchID:            7,
		PayoutMethod:        strPtr(domain.PayoutMethodGCash),
		PayoutAccountNumber: strPtr("09171234567"),
		PayoutAccountName:   strPtr("Branch Seven"),
	}
}

func TestRequest(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		check       func(t *testing.T, settlement *domain.BranchSettlement)
		expectedErr string
	}{
		{
			name: "Opens a settlement over all pending earnings",
			prepareMock: func(m *mocks) {
				passthroughTx(m)
				m.settlementRepo.EXPECT().FindActiveByBranch(gomock.Any(), 7).Return(nil, nil)
				m.earningRepo.EXPECT().PendingTotalByBranch(gomock.Any(), 7).Return(&domain.PendingEarningsTotal{
					Count: 3, TotalGross: 100000, TotalCommission: 5000, TotalNet: 95000,
				}, nil)
				m.settings.EXPECT().EffectiveMinSettlement(gomock.Any(), 7).Return(int64(50000), nil)
				m.settings.EXPECT().GetBranchSettings(gomock.Any(), 7).Return(payoutSettings(), nil)
				m.settlementRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, s *domain.BranchSettlement) (*domain.BranchSettlement, error) {
						s.ID = 31
						s.Status = domain.SettlementStatusPending
						return s, nil
					})
				m.earningRepo.EXPECT().LinkToSettlement(gomock.Any(), 7, 31).Return(int64(3), nil)
			},
			check: func(t *testing.T, settlement *domain.BranchSettlement) {
				assert.Equal(t, int64(95000), settlement.Amount)
				assert.Equal(t, 3, settlement.EarningsCount)
				assert.Equal(t, domain.SettlementStatusPending, settlement.Status)
			},
		},
		{
			name: "Rolls back when an earning lands mid-request",
			prepareMock: func(m *mocks) {
				passthroughTx(m)
				m.settlementRepo.EXPECT().FindActiveByBranch(gomock.Any(), 7).Return(nil, nil)
				m.earningRepo.EXPECT().PendingTotalByBranch(gomock.Any(), 7).Return(&domain.PendingEarningsTotal{
					Count: 2, TotalGross: 84000, TotalCommission: 4000, TotalNet: 80000,
				}, nil)
				m.settings.EXPECT().EffectiveMinSettlement(gomock.Any(), 7).Return(int64(50000), nil)
				m.settings.EXPECT().GetBranchSettings(gomock.Any(), 7).Return(payoutSettings(), nil)
				m.settlementRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, s *domain.BranchSettlement) (*domain.BranchSettlement, error) {
						s.ID = 32
						s.Status = domain.SettlementStatusPending
						return s, nil
					})
				m.earningRepo.EXPECT().LinkToSettlement(gomock.Any(), 7, 32).Return(int64(3), nil)
			},
			expectedErr: "EARNINGS_CHANGED",
		},
		{
			name: "Refuses while another settlement is in flight",
			prepareMock: func(m *mocks) {
				m.settlementRepo.EXPECT().FindActiveByBranch(gomock.Any(), 7).Return(&domain.BranchSettlement{
					ID: 30, Status: domain.SettlementStatusApproved,
				}, nil)
			},
			expectedErr: "SETTLEMENT_IN_FLIGHT",
		},
		{
			name: "Refuses with nothing pending",
			prepareMock: func(m *mocks) {
				m.settlementRepo.EXPECT().FindActiveByBranch(gomock.Any(), 7).Return(nil, nil)
				m.earningRepo.EXPECT().PendingTotalByBranch(gomock.Any(), 7).Return(&domain.PendingEarningsTotal{}, nil)
			},
			expectedErr: "NO_PENDING_EARNINGS",
		},
		{
			name: "Refuses below the minimum amount",
			prepareMock: func(m *mocks) {
				m.settlementRepo.EXPECT().FindActiveByBranch(gomock.Any(), 7).Return(nil, nil)
				m.earningRepo.EXPECT().PendingTotalByBranch(gomock.Any(), 7).Return(&domain.PendingEarningsTotal{
					Count: 1, TotalNet: 20000,
				}, nil)
				m.settings.EXPECT().EffectiveMinSettlement(gomock.Any(), 7).Return(int64(50000), nil)
			},
			expectedErr: "BELOW_MINIMUM",
		},
		{
			name: "Refuses without payout details",
			prepareMock: func(m *mocks) {
				m.settlementRepo.EXPECT().FindActiveByBranch(gomock.Any(), 7).Return(nil, nil)
				m.earningRepo.EXPECT().PendingTotalByBranch(gomock.Any(), 7).Return(&domain.PendingEarningsTotal{
					Count: 2, TotalNet: 95000,
				}, nil)
				m.settings.EXPECT().EffectiveMinSettlement(gomock.Any(), 7).Return(int64(50000), nil)
				m.settings.EXPECT().GetBranchSettings(gomock.Any(), 7).Return(nil, nil)
			},
			expectedErr: "PAYOUT_NOT_CONFIGURED",
		},
		{
			name: "Bank payout requires a bank name",
			prepareMock: func(m *mocks) {
				m.settlementRepo.EXPECT().FindActiveByBranch(gomock.Any(), 7).Return(nil, nil)
				m.earningRepo.EXPECT().PendingTotalByBranch(gomock.Any(), 7).Return(&domain.PendingEarningsTotal{
					Count: 2, TotalNet: 95000,
				}, nil)
				m.settings.EXPECT().EffectiveMinSettlement(gomock.Any(), 7).Return(int64(50000), nil)
				settings := payoutSettings()
				settings.PayoutMethod = strPtr(domain.PayoutMethodBank)
				m.settings.EXPECT().GetBranchSettings(gomock.Any(), 7).Return(settings, nil)
			},
			expectedErr: "PAYOUT_NOT_CONFIGURED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			settlement, err := service.Request(context.Background(), 7, 100, "weekly payout")

			if tt.expectedErr != "" {
				var validationErr *domain.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.expectedErr, validationErr.Code)
				assert.Nil(t, settlement)
				return
			}
			assert.NoError(t, err)
			tt.check(t, settlement)
		})
	}
}

func TestTransitions(t *testing.T) {
	t.Run("Approve moves pending to approved", func(t *testing.T) {
		service, m := NewMock(t)
		m.settlementRepo.EXPECT().Approve(gomock.Any(), 31, 9).Return(true, nil)
		m.settlementRepo.EXPECT().GetByID(gomock.Any(), 31).Return(&domain.BranchSettlement{
			ID: 31, Status: domain.SettlementStatusApproved,
		}, nil)

		settlement, err := service.Approve(context.Background(), 31, 9)
		assert.NoError(t, err)
		assert.Equal(t, domain.SettlementStatusApproved, settlement.Status)
	})

	t.Run("Approve on a completed settlement fails", func(t *testing.T) {
		service, m := NewMock(t)
		m.settlementRepo.EXPECT().Approve(gomock.Any(), 31, 9).Return(false, nil)
		m.settlementRepo.EXPECT().GetByID(gomock.Any(), 31).Return(&domain.BranchSettlement{
			ID: 31, Status: domain.SettlementStatusCompleted,
		}, nil)

		_, err := service.Approve(context.Background(), 31, 9)
		var transitionErr *domain.TransitionError
		assert.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, domain.SettlementStatusCompleted, transitionErr.From)
		assert.Equal(t, domain.SettlementStatusApproved, transitionErr.To)
	})

	t.Run("Approve on a missing settlement", func(t *testing.T) {
		service, m := NewMock(t)
		m.settlementRepo.EXPECT().Approve(gomock.Any(), 99, 9).Return(false, nil)
		m.settlementRepo.EXPECT().GetByID(gomock.Any(), 99).Return(nil, nil)

		_, err := service.Approve(context.Background(), 99, 9)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Complete settles the linked earnings", func(t *testing.T) {
		service, m := NewMock(t)
		passthroughTx(m)
		m.settlementRepo.EXPECT().Complete(gomock.Any(), 31, 9, "xfer_77").Return(true, nil)
		m.earningRepo.EXPECT().MarkSettledBySettlement(gomock.Any(), 31).Return(int64(3), nil)
		m.settlementRepo.EXPECT().GetByID(gomock.Any(), 31).Return(&domain.BranchSettlement{
			ID: 31, Status: domain.SettlementStatusCompleted,
		}, nil)

		settlement, err := service.Complete(context.Background(), 31, 9, "xfer_77")
		assert.NoError(t, err)
		assert.Equal(t, domain.SettlementStatusCompleted, settlement.Status)
	})

	t.Run("Reject releases earnings back to pending", func(t *testing.T) {
		service, m := NewMock(t)
		passthroughTx(m)
		m.settlementRepo.EXPECT().Reject(gomock.Any(), 31, 9, "account mismatch").Return(true, nil)
		m.earningRepo.EXPECT().ReleaseBySettlement(gomock.Any(), 31).Return(int64(3), nil)
		m.settlementRepo.EXPECT().GetByID(gomock.Any(), 31).Return(&domain.BranchSettlement{
			ID: 31, Status: domain.SettlementStatusRejected,
		}, nil)

		settlement, err := service.Reject(context.Background(), 31, 9, "account mismatch")
		assert.NoError(t, err)
		assert.Equal(t, domain.SettlementStatusRejected, settlement.Status)
	})

	t.Run("Reject requires a reason", func(t *testing.T) {
		service, _ := NewMock(t)

		_, err := service.Reject(context.Background(), 31, 9, "")
		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "MISSING_REASON", validationErr.Code)
	})

	t.Run("Reject on a terminal settlement leaves earnings alone", func(t *testing.T) {
		service, m := NewMock(t)
		passthroughTx(m)
		m.settlementRepo.EXPECT().Reject(gomock.Any(), 31, 9, "too late").Return(false, nil)
		m.settlementRepo.EXPECT().GetByID(gomock.Any(), 31).Return(&domain.BranchSettlement{
			ID: 31, Status: domain.SettlementStatusCompleted,
		}, nil)

		_, err := service.Reject(context.Background(), 31, 9, "too late")
		var transitionErr *domain.TransitionError
		assert.ErrorAs(t, err, &transitionErr)
	})

	t.Run("MarkProcessing moves approved to processing", func(t *testing.T) {
		service, m := NewMock(t)
		m.settlementRepo.EXPECT().MarkProcessing(gomock.Any(), 31, 9).Return(true, nil)
		m.settlementRepo.EXPECT().GetByID(gomock.Any(), 31).Return(&domain.BranchSettlement{
			ID: 31, Status: domain.SettlementStatusProcessing,
		}, nil)

		settlement, err := service.MarkProcessing(context.Background(), 31, 9)
		assert.NoError(t, err)
		assert.Equal(t, domain.SettlementStatusProcessing, settlement.Status)
	})
}

func TestValidSettlementTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{domain.SettlementStatusPending, domain.SettlementStatusApproved},
		{domain.SettlementStatusPending, domain.SettlementStatusRejected},
		{domain.SettlementStatusApproved, domain.SettlementStatusProcessing},
		{domain.SettlementStatusApproved, domain.SettlementStatusRejected},
		{domain.SettlementStatusProcessing, domain.SettlementStatusCompleted},
		{domain.SettlementStatusProcessing, domain.SettlementStatusRejected},
	}
	for _, tr := range allowed {
		assert.True(t, domain.ValidSettlementTransition(tr.from, tr.to), "%s -> %s", tr.from, tr.to)
	}

	denied := []struct{ from, to string }{
		{domain.SettlementStatusPending, domain.SettlementStatusProcessing},
		{domain.SettlementStatusPending, domain.SettlementStatusCompleted},
		{domain.SettlementStatusApproved, domain.SettlementStatusCompleted},
		{domain.SettlementStatusCompleted, domain.SettlementStatusRejected},
		{domain.SettlementStatusRejected, domain.SettlementStatusPending},
		{domain.SettlementStatusCompleted, domain.SettlementStatusPending},
	}
	for _, tr := range denied {
		assert.False(t, domain.ValidSettlementTransition(tr.from, tr.to), "%s -> %s", tr.from, tr.to)
	}
}

func TestListByStatus(t *testing.T) {
	t.Run("Unknown status is rejected", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.ListByStatus(context.Background(), "paused", 50)
		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("Lists settlements awaiting review", func(t *testing.T) {
		service, m := NewMock(t)
		m.settlementRepo.EXPECT().ListByStatus(gomock.Any(), domain.SettlementStatusPending, uint32(50)).
			Return([]domain.BranchSettlement{{ID: 31}}, nil)

		settlements, err := service.ListByStatus(context.Background(), domain.SettlementStatusPending, 50)
		assert.NoError(t, err)
		assert.Len(t, settlements, 1)
	})
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		expected    []string
		canRequest  bool
	}{
		{
			name: "Ready when nothing blocks",
			prepareMock: func(m *mocks) {
				m.earningRepo.EXPECT().PendingTotalByBranch(gomock.Any(), 7).Return(&domain.PendingEarningsTotal{
					Count: 3, TotalNet: 95000,
				}, nil)
				m.settings.EXPECT().EffectiveMinSettlement(gomock.Any(), 7).Return(int64(50000), nil)
				m.settlementRepo.EXPECT().FindActiveByBranch(gomock.Any(), 7).Return(nil, nil)
				m.settings.EXPECT().GetBranchSettings(gomock.Any(), 7).Return(payoutSettings(), nil)
			},
			canRequest: true,
		},
		{
			name: "Collects every blocker",
			prepareMock: func(m *mocks) {
				m.earningRepo.EXPECT().PendingTotalByBranch(gomock.Any(), 7).Return(&domain.PendingEarningsTotal{
					Count: 1, TotalNet: 10000,
				}, nil)
				m.settings.EXPECT().EffectiveMinSettlement(gomock.Any(), 7).Return(int64(50000), nil)
				m.settlementRepo.EXPECT().FindActiveByBranch(gomock.Any(), 7).Return(&domain.BranchSettlement{
					ID: 30, Status: domain.SettlementStatusPending,
				}, nil)
				m.settings.EXPECT().GetBranchSettings(gomock.Any(), 7).Return(nil, nil)
			},
			expected: []string{"SETTLEMENT_IN_FLIGHT", "BELOW_MINIMUM", "PAYOUT_NOT_CONFIGURED"},
		},
		{
			name: "Nothing pending",
			prepareMock: func(m *mocks) {
				m.earningRepo.EXPECT().PendingTotalByBranch(gomock.Any(), 7).Return(&domain.PendingEarningsTotal{}, nil)
				m.settings.EXPECT().EffectiveMinSettlement(gomock.Any(), 7).Return(int64(50000), nil)
				m.settlementRepo.EXPECT().FindActiveByBranch(gomock.Any(), 7).Return(nil, nil)
				m.settings.EXPECT().GetBranchSettings(gomock.Any(), 7).Return(payoutSettings(), nil)
			},
			expected: []string{"NO_PENDING_EARNINGS"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			readiness, err := service.Readiness(context.Background(), 7)
			assert.NoError(t, err)
			assert.Equal(t, tt.canRequest, readiness.CanRequest)
			assert.Equal(t, tt.expected, readiness.Blockers)
		})
	}
}
