package balanceservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/gastos-dev/gastos/internal/domain"
	"github.com/gastos-dev/gastos/pkg/errorspkg"
	"github.com/gastos-dev/gastos/pkg/randompkg"
)

func TestGet(t *testing.T) {
	owner := randompkg.Owner()

	testCases := []struct {
		name       string
		buildStubs func(repo *MockRepo)
		want       domain.Balance
		wantErr    error
	}{
		{
			name: "OK",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Eq(owner)).
					Times(1).
					Return(domain.Balance{ID: 1, Amount: "100.00", Owner: owner}, nil)
			},
			want: domain.Balance{ID: 1, Amount: "100.00", Owner: owner},
		},
		{
			name: "AbsentRowReadsAsZero",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Eq(owner)).
					Times(1).
					Return(domain.Balance{}, domain.ErrBalanceNotFound)
			},
			want: domain.Balance{Amount: "0.00"},
		},
		{
			name: "RepoError",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Eq(owner)).
					Times(1).
					Return(domain.Balance{}, errorspkg.ErrInternal)
			},
			wantErr: errorspkg.ErrInternal,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			service := New(repo)

			got, err := service.Get(context.Background(), owner)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSet(t *testing.T) {
	owner := randompkg.Owner()

	testCases := []struct {
		name       string
		amount     string
		buildStubs func(repo *MockRepo)
		wantErr    error
	}{
		{
			name:   "RoundsToTwoDigits",
			amount: "100.005",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Upsert(gomock.Any(), gomock.Eq("100.01"), gomock.Eq(owner)).
					Times(1).
					Return(domain.Balance{ID: 1, Amount: "100.01", Owner: owner}, nil)
			},
		},
		{
			name:   "NegativeAllowed",
			amount: "-5",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Upsert(gomock.Any(), gomock.Eq("-5.00"), gomock.Eq(owner)).
					Times(1).
					Return(domain.Balance{ID: 1, Amount: "-5.00", Owner: owner}, nil)
			},
		},
		{
			name:   "InvalidAmount",
			amount: "NaN",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrInvalidAmount,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			service := New(repo)

			_, err := service.Set(context.Background(), owner, tc.amount)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestDelete(t *testing.T) {
	owner := randompkg.Owner()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	service := New(repo)

	repo.EXPECT().Delete(gomock.Any(), gomock.Eq(owner)).Times(1).Return(nil)
	require.NoError(t, service.Delete(context.Background(), owner))

	repo.EXPECT().Delete(gomock.Any(), gomock.Eq(owner)).Times(1).Return(domain.ErrBalanceNotFound)
	require.ErrorIs(t, service.Delete(context.Background(), owner), domain.ErrBalanceNotFound)
}
