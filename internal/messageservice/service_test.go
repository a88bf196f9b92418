package messageservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/gastos-dev/gastos/internal/domain"
	"github.com/gastos-dev/gastos/pkg/randompkg"
)

func TestCreate(t *testing.T) {
	owner := randompkg.Owner()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	service := New(repo)

	// OK
	repo.EXPECT().
		Create(gomock.Any(), gomock.Eq(owner), gomock.Eq("hello")).
		Times(1).
		Return(domain.UserMessage{Owner: owner, Message: "hello"}, nil)

	got, err := service.Create(context.Background(), owner, "hello")
	require.NoError(t, err)
	require.Equal(t, "hello", got.Message)

	// Empty
	repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err = service.Create(context.Background(), owner, "   ")
	require.ErrorIs(t, err, domain.ErrEmptyMessage)
}

func TestDelete(t *testing.T) {
	owner := randompkg.Owner()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	service := New(repo)

	repo.EXPECT().Delete(gomock.Any(), gomock.Eq(owner)).Times(1).Return(nil)
	require.NoError(t, service.Delete(context.Background(), owner))
}
