// Package ledger implements the client side view of the expense ledger:
// an explicit store holding the last fetched server state plus the
// totals derived from it.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/gastos-dev/gastos/internal/domain"
)

// Store holds the last fetched server state and the totals derived from
// it. Derived values are never computed from anything but the expenses
// and balance held here, so they cannot diverge from what was fetched.
type Store struct {
	Expenses       []domain.Expense
	Balance        domain.Balance
	TotalCost      decimal.Decimal
	CurrentBalance decimal.Decimal
}

// Totals holds the values derived from a fetched expense set and balance.
type Totals struct {
	TotalCost      decimal.Decimal
	CurrentBalance decimal.Decimal
}

// DeriveTotals computes the total cost and the current balance from the
// given expenses and stored balance. Sums are decimal so many small
// amounts accumulate without binary floating point drift.
func DeriveTotals(expenses []domain.Expense, balance domain.Balance) (Totals, error) {
	totalCost := decimal.Zero

	for _, e := range expenses {
		amount, err := decimal.NewFromString(e.Amount)
		if err != nil {
			return Totals{}, domain.ErrInvalidAmount
		}

		totalCost = totalCost.Add(amount)
	}

	stored := decimal.Zero

	if balance.Amount != "" {
		var err error

		stored, err = decimal.NewFromString(balance.Amount)
		if err != nil {
			return Totals{}, domain.ErrInvalidAmount
		}
	}

	return Totals{
		TotalCost:      totalCost,
		CurrentBalance: stored.Sub(totalCost),
	}, nil
}

// ExpenseForm holds the fields of the expense edit form.
type ExpenseForm struct {
	ID     int32
	Name   string
	Amount string
	Date   string
}

// EditForm pre-populates an edit form from the stored expense with the
// given id. The date string is passed through verbatim so the calendar
// day never shifts with the local timezone.
func (s *Store) EditForm(id int32) (ExpenseForm, bool) {
	for _, e := range s.Expenses {
		if e.ID == id {
			return ExpenseForm{
				ID:     e.ID,
				Name:   e.Name,
				Amount: e.Amount,
				Date:   e.Date,
			}, true
		}
	}

	return ExpenseForm{}, false
}
