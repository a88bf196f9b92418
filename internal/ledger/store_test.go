package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/gastos-dev/gastos/internal/domain"
)

func TestDeriveTotals(t *testing.T) {
	testCases := []struct {
		name               string
		expenses           []domain.Expense
		balance            domain.Balance
		wantTotalCost      string
		wantCurrentBalance string
		wantErr            error
	}{
		{
			name:               "Empty",
			wantTotalCost:      "0.00",
			wantCurrentBalance: "0.00",
		},
		{
			name: "CoffeeScenario",
			expenses: []domain.Expense{
				{ID: 1, Name: "Coffee", Amount: "3.50"},
			},
			balance:            domain.Balance{Amount: "100.00"},
			wantTotalCost:      "3.50",
			wantCurrentBalance: "96.50",
		},
		{
			name: "NoBalanceRow",
			expenses: []domain.Expense{
				{ID: 1, Name: "Lunch", Amount: "25.00"},
			},
			wantTotalCost:      "25.00",
			wantCurrentBalance: "-25.00",
		},
		{
			name: "NegativeBalance",
			expenses: []domain.Expense{
				{ID: 1, Name: "Rent", Amount: "1200.00"},
			},
			balance:            domain.Balance{Amount: "-50.00"},
			wantTotalCost:      "1200.00",
			wantCurrentBalance: "-1250.00",
		},
		{
			name: "MalformedAmount",
			expenses: []domain.Expense{
				{ID: 1, Name: "Bad", Amount: "abc"},
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "MalformedBalance",
			balance: domain.Balance{Amount: "abc"},
			wantErr: domain.ErrInvalidAmount,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			totals, err := DeriveTotals(tc.expenses, tc.balance)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.wantTotalCost, totals.TotalCost.StringFixed(2))
			require.Equal(t, tc.wantCurrentBalance, totals.CurrentBalance.StringFixed(2))
		})
	}
}

// Ten 0.10 expenses must sum to exactly 1.00, not 0.9999999999999999.
func TestDeriveTotalsNoFloatDrift(t *testing.T) {
	var expenses []domain.Expense
	for i := 0; i < 10; i++ {
		expenses = append(expenses, domain.Expense{ID: int32(i + 1), Amount: "0.10"})
	}

	totals, err := DeriveTotals(expenses, domain.Balance{Amount: "1.00"})
	require.NoError(t, err)

	require.True(t, totals.TotalCost.Equal(decimal.NewFromInt(1)),
		"TotalCost = %v, want exactly 1", totals.TotalCost)
	require.True(t, totals.CurrentBalance.IsZero(),
		"CurrentBalance = %v, want exactly 0", totals.CurrentBalance)
}

func TestEditForm(t *testing.T) {
	store := Store{
		Expenses: []domain.Expense{
			{ID: 1, Name: "Coffee", Amount: "3.50", Date: "2024-03-10"},
			{ID: 2, Name: "Lunch", Amount: "25.00", Date: "2024-03-11"},
		},
	}

	form, ok := store.EditForm(1)
	require.True(t, ok)
	require.Equal(t, ExpenseForm{ID: 1, Name: "Coffee", Amount: "3.50", Date: "2024-03-10"}, form)

	// The date string is the stored one, byte for byte.
	require.Equal(t, "2024-03-10", form.Date)

	_, ok = store.EditForm(99)
	require.False(t, ok)
}
