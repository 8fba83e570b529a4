package earningservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/branchpay/walletcore/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockCommissionResolver) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	resolver := NewMockCommissionResolver(ctrl)
	service := New(repo, resolver)
	return service, repo, resolver
}

func TestRecordEarning(t *testing.T) {
	params := RecordEarningParams{
		BranchID:    7,
		Reference:   "sale_1",
		CustomerID:  42,
		ServiceName: "grooming",
		GrossAmount: 333,
	}

	tests := []struct {
		name        string
		prepareMock func(repo *MockRepo, resolver *MockCommissionResolver)
		check       func(t *testing.T, earning *domain.BranchEarning)
		expectErr   bool
	}{
		{
			name: "Splits gross into commission and net",
			prepareMock: func(repo *MockRepo, resolver *MockCommissionResolver) {
				resolver.EXPECT().EffectiveCommissionPercent(gomock.Any(), 7).Return(5.0, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e *domain.BranchEarning) (*domain.BranchEarning, error) {
						e.ID = 50
						return e, nil
					})
			},
			check: func(t *testing.T, earning *domain.BranchEarning) {
				assert.Equal(t, int64(17), earning.CommissionAmount)
				assert.Equal(t, int64(316), earning.NetAmount)
				assert.Equal(t, earning.GrossAmount, earning.CommissionAmount+earning.NetAmount)
				assert.Equal(t, 5.0, earning.CommissionPercent)
				assert.Equal(t, domain.EarningStatusPending, earning.Status)
			},
		},
		{
			name: "Branch override changes the split",
			prepareMock: func(repo *MockRepo, resolver *MockCommissionResolver) {
				resolver.EXPECT().EffectiveCommissionPercent(gomock.Any(), 7).Return(10.0, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e *domain.BranchEarning) (*domain.BranchEarning, error) {
						return e, nil
					})
			},
			check: func(t *testing.T, earning *domain.BranchEarning) {
				assert.Equal(t, int64(33), earning.CommissionAmount)
				assert.Equal(t, int64(300), earning.NetAmount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, resolver := NewMock(t)
			tt.prepareMock(repo, resolver)

			earning, err := service.RecordEarning(context.Background(), params)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			tt.check(t, earning)
		})
	}
}

func TestRecordEarning_NegativeGross(t *testing.T) {
	service, _, resolver := NewMock(t)
	resolver.EXPECT().EffectiveCommissionPercent(gomock.Any(), 7).Return(5.0, nil)

	_, err := service.RecordEarning(context.Background(), RecordEarningParams{
		BranchID:    7,
		GrossAmount: -100,
	})
	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "INVALID_EARNING", validationErr.Code)
}

func TestGetEarning(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		service, repo, _ := NewMock(t)
		repo.EXPECT().GetByID(gomock.Any(), 50).Return(&domain.BranchEarning{ID: 50}, nil)

		earning, err := service.GetEarning(context.Background(), 50)
		assert.NoError(t, err)
		assert.Equal(t, 50, earning.ID)
	})

	t.Run("Missing", func(t *testing.T) {
		service, repo, _ := NewMock(t)
		repo.EXPECT().GetByID(gomock.Any(), 99).Return(nil, nil)

		_, err := service.GetEarning(context.Background(), 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPendingTotal(t *testing.T) {
	service, repo, _ := NewMock(t)
	repo.EXPECT().PendingTotalByBranch(gomock.Any(), 7).Return(&domain.PendingEarningsTotal{
		Count: 2, TotalGross: 1000, TotalCommission: 50, TotalNet: 950,
	}, nil)

	total, err := service.PendingTotal(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, total.TotalGross, total.TotalCommission+total.TotalNet)
}
