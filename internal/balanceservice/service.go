// Package balanceservice manages business logic layer of the account balance.
package balanceservice

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gastos-dev/gastos/internal/domain"
)

// Repo provides data access layer interface needed by balance service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package balanceservice
type Repo interface {
	Get(ctx context.Context, owner string) (domain.Balance, error)
	Upsert(ctx context.Context, amount, owner string) (domain.Balance, error)
	Delete(ctx context.Context, owner string) error
}

// Service facilitates balance service layer logic.
type Service struct {
	repo Repo
}

// New returns balance service struct to manage balance business logic.
func New(br Repo) *Service {
	return &Service{repo: br}
}

// Get returns the owner's balance. An owner without a balance row reads
// as a zero amount, never as an error.
func (s *Service) Get(ctx context.Context, owner string) (domain.Balance, error) {
	balance, err := s.repo.Get(ctx, owner)
	if err != nil {
		if err == domain.ErrBalanceNotFound {
			return domain.Balance{Amount: "0.00"}, nil
		}

		return balance, err
	}

	return balance, nil
}

// Set creates or updates the owner's balance row. The amount sign is
// unconstrained since expenses may exceed the starting balance.
func (s *Service) Set(ctx context.Context, owner, amount string) (domain.Balance, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return domain.Balance{}, domain.ErrInvalidAmount
	}

	return s.repo.Upsert(ctx, d.Round(2).StringFixed(2), owner)
}

// Delete removes the owner's balance row. The derived balance reads as
// zero afterwards until a new row is set.
func (s *Service) Delete(ctx context.Context, owner string) error {
	return s.repo.Delete(ctx, owner)
}
