// Package expenseservice manages business logic layer of expenses.
package expenseservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gastos-dev/gastos/internal/domain"
)

// Repo provides data access layer interface needed by expense service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package expenseservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateExpenseParams) (domain.Expense, error)
	List(ctx context.Context, owner string) ([]domain.Expense, error)
	Update(ctx context.Context, arg domain.UpdateExpenseParams) (domain.Expense, error)
	Delete(ctx context.Context, id int32, owner string) error
}

// Service facilitates expense service layer logic.
type Service struct {
	repo Repo

	// defaultDateToToday makes Create fill an omitted date with the
	// current UTC calendar day instead of rejecting it.
	defaultDateToToday bool
}

// New returns expense service struct to manage expense business logic.
func New(er Repo, defaultDateToToday bool) *Service {
	return &Service{repo: er, defaultDateToToday: defaultDateToToday}
}

// NormalizeAmount parses the given amount and formats it with exactly 2
// fractional digits, rounding half up. Negative amounts are rejected.
func NormalizeAmount(amount string) (string, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return "", domain.ErrInvalidAmount
	}

	if d.IsNegative() {
		return "", domain.ErrNegativeAmount
	}

	return d.Round(2).StringFixed(2), nil
}

func validDate(date string) error {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return domain.ErrInvalidDate
	}

	return nil
}

// Create validates, normalizes and stores a new expense of the owner.
func (s *Service) Create(ctx context.Context, arg domain.CreateExpenseParams) (domain.Expense, error) {
	amount, err := NormalizeAmount(arg.Amount)
	if err != nil {
		return domain.Expense{}, err
	}

	arg.Amount = amount

	if arg.Date == "" && s.defaultDateToToday {
		arg.Date = time.Now().UTC().Format(domain.DateLayout)
	}

	if err := validDate(arg.Date); err != nil {
		return domain.Expense{}, err
	}

	return s.repo.Create(ctx, arg)
}

// List returns all expenses of the given owner.
func (s *Service) List(ctx context.Context, owner string) ([]domain.Expense, error) {
	return s.repo.List(ctx, owner)
}

// Update fully replaces the owner's expense after the same validation
// as Create. The date is required since this is not a partial patch.
func (s *Service) Update(ctx context.Context, arg domain.UpdateExpenseParams) (domain.Expense, error) {
	amount, err := NormalizeAmount(arg.Amount)
	if err != nil {
		return domain.Expense{}, err
	}

	arg.Amount = amount

	if err := validDate(arg.Date); err != nil {
		return domain.Expense{}, err
	}

	return s.repo.Update(ctx, arg)
}

// Delete removes the owner's expense.
func (s *Service) Delete(ctx context.Context, id int32, owner string) error {
	return s.repo.Delete(ctx, id, owner)
}
