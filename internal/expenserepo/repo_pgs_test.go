package expenserepo

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gastos-dev/gastos/internal/domain"
	"github.com/gastos-dev/gastos/pkg/configpkg"
	"github.com/gastos-dev/gastos/pkg/dbpkg"
	"github.com/gastos-dev/gastos/pkg/randompkg"

	_ "github.com/lib/pq"
)

var (
	dbDriver string
	dbSource string
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbDriver = config.DBDriver
	dbSource = config.DBSource

	os.Exit(m.Run())
}

// setupRepo returns a repo bound to a test transaction that is rolled
// back when the test finishes, so tests never leave rows behind.
func setupRepo(t *testing.T) *RepoPGS {
	t.Helper()

	tx := dbpkg.SetupTX(t, dbDriver, dbSource)

	return NewRepoPGS(tx)
}

func createRandomExpense(t *testing.T, repo *RepoPGS, owner string) domain.Expense {
	t.Helper()

	arg := domain.CreateExpenseParams{
		Name:   randompkg.String(8),
		Amount: randompkg.MoneyAmountBetween(1, 100),
		Date:   randompkg.Date(),
		Owner:  owner,
	}

	expense, err := repo.Create(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, expense)

	require.Equal(t, arg.Name, expense.Name)
	require.Equal(t, arg.Amount, expense.Amount)
	require.Equal(t, arg.Date, expense.Date)
	require.Equal(t, arg.Owner, expense.Owner)

	require.NotZero(t, expense.ID)
	require.NotZero(t, expense.CreatedAt)

	return expense
}

func TestCreate(t *testing.T) {
	repo := setupRepo(t)

	createRandomExpense(t, repo, randompkg.Owner())
}

func TestCreateKeepsDateVerbatim(t *testing.T) {
	repo := setupRepo(t)

	arg := domain.CreateExpenseParams{
		Name:   randompkg.String(8),
		Amount: "3.50",
		Date:   "2024-03-10",
		Owner:  randompkg.Owner(),
	}

	expense, err := repo.Create(context.Background(), arg)
	require.NoError(t, err)
	require.Equal(t, "2024-03-10", expense.Date)

	expenses, err := repo.List(context.Background(), arg.Owner)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	require.Equal(t, "2024-03-10", expenses[0].Date)
}

func TestList(t *testing.T) {
	repo := setupRepo(t)
	owner := randompkg.Owner()

	want := []domain.Expense{
		createRandomExpense(t, repo, owner),
		createRandomExpense(t, repo, owner),
		createRandomExpense(t, repo, owner),
	}

	// Another owner's rows must not leak into the list.
	createRandomExpense(t, repo, randompkg.Owner())

	expenses, err := repo.List(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, expenses, len(want))

	for i, e := range expenses {
		require.Equal(t, want[i].ID, e.ID)
		require.Equal(t, want[i].Amount, e.Amount)
		require.Equal(t, owner, e.Owner)
	}
}

func TestUpdate(t *testing.T) {
	repo := setupRepo(t)
	expense := createRandomExpense(t, repo, randompkg.Owner())

	arg := domain.UpdateExpenseParams{
		ID:     expense.ID,
		Name:   randompkg.String(8),
		Amount: randompkg.MoneyAmountBetween(1, 100),
		Date:   randompkg.Date(),
		Owner:  expense.Owner,
	}

	updated, err := repo.Update(context.Background(), arg)
	require.NoError(t, err)

	require.Equal(t, expense.ID, updated.ID)
	require.Equal(t, arg.Name, updated.Name)
	require.Equal(t, arg.Amount, updated.Amount)
	require.Equal(t, arg.Date, updated.Date)
	require.Equal(t, expense.Owner, updated.Owner)
}

func TestUpdateNotOwned(t *testing.T) {
	repo := setupRepo(t)
	expense := createRandomExpense(t, repo, randompkg.Owner())

	arg := domain.UpdateExpenseParams{
		ID:     expense.ID,
		Name:   "hijack",
		Amount: "1.00",
		Date:   "2024-01-01",
		Owner:  randompkg.Owner(),
	}

	_, err := repo.Update(context.Background(), arg)
	require.ErrorIs(t, err, domain.ErrExpenseNotFound)

	// The row stays unchanged.
	expenses, err := repo.List(context.Background(), expense.Owner)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	require.Equal(t, expense.Name, expenses[0].Name)
	require.Equal(t, expense.Amount, expenses[0].Amount)
}

func TestDelete(t *testing.T) {
	repo := setupRepo(t)
	expense := createRandomExpense(t, repo, randompkg.Owner())

	err := repo.Delete(context.Background(), expense.ID, expense.Owner)
	require.NoError(t, err)

	expenses, err := repo.List(context.Background(), expense.Owner)
	require.NoError(t, err)
	require.Empty(t, expenses)
}

func TestDeleteNotOwned(t *testing.T) {
	repo := setupRepo(t)
	expense := createRandomExpense(t, repo, randompkg.Owner())

	err := repo.Delete(context.Background(), expense.ID, randompkg.Owner())
	require.ErrorIs(t, err, domain.ErrExpenseNotFound)

	expenses, err := repo.List(context.Background(), expense.Owner)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
}
