// Package expenserepo manages repository layer of expenses.
package expenserepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/gastos-dev/gastos/internal/domain"
	"github.com/gastos-dev/gastos/pkg/dbpkg"
	"github.com/gastos-dev/gastos/pkg/errorspkg"
)

// RepoPGS facilitates expense repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns expense RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// The date column is read back as text so the stored calendar day never
// shifts through a timezone aware time.Time.
const createQuery = `
INSERT INTO
    expenses (name, amount, date, owner)
VALUES
    ($1, $2, $3, $4)
RETURNING id, name, amount::text, date::text, owner, created_at
`

// Create inserts the expense and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateExpenseParams) (domain.Expense, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, arg.Name, arg.Amount, arg.Date, arg.Owner)

	var e domain.Expense

	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Amount,
		&e.Date,
		&e.Owner,
		&e.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "expenses_amount_check" {
				return e, domain.ErrNegativeAmount
			}
		}

		return e, errorspkg.ErrInternal
	}

	return e, nil
}

const listQuery = `
SELECT
	id, name, amount::text, date::text, owner, created_at
FROM expenses
WHERE owner = $1
ORDER BY id
`

// List returns all expenses of the given owner ordered by id.
func (r *RepoPGS) List(ctx context.Context, owner string) ([]domain.Expense, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, owner)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Expense{}

	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(&e.ID, &e.Name, &e.Amount, &e.Date, &e.Owner, &e.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, e)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

// Update matches on both id and owner so a caller can never reach
// another owner's row. An absent row and a foreign row fail the same way.
const updateQuery = `
UPDATE expenses
SET name = $1, amount = $2, date = $3
WHERE id = $4 AND owner = $5
RETURNING id, name, amount::text, date::text, owner, created_at
`

// Update fully replaces the expense owned by the given owner.
func (r *RepoPGS) Update(ctx context.Context, arg domain.UpdateExpenseParams) (domain.Expense, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery, arg.Name, arg.Amount, arg.Date, arg.ID, arg.Owner)

	var e domain.Expense

	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Amount,
		&e.Date,
		&e.Owner,
		&e.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return e, domain.ErrExpenseNotFound
		}

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "expenses_amount_check" {
				return e, domain.ErrNegativeAmount
			}
		}

		return e, errorspkg.ErrInternal
	}

	return e, nil
}

const deleteQuery = `
DELETE FROM expenses
WHERE id = $1 AND owner = $2
RETURNING id
`

// Delete removes the expense owned by the given owner.
func (r *RepoPGS) Delete(ctx context.Context, id int32, owner string) error {
	l := zerolog.Ctx(ctx)

	var deletedID int32

	err := r.db.QueryRowContext(ctx, deleteQuery, id, owner).Scan(&deletedID)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return domain.ErrExpenseNotFound
		}

		return errorspkg.ErrInternal
	}

	return nil
}
