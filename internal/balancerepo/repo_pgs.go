// Package balancerepo manages repository layer of the account balance.
package balancerepo

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/gastos-dev/gastos/internal/domain"
	"github.com/gastos-dev/gastos/pkg/dbpkg"
	"github.com/gastos-dev/gastos/pkg/errorspkg"
)

// RepoPGS facilitates balance repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns balance RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const getQuery = `
SELECT
	id, amount::text, owner
FROM balance
WHERE owner = $1
`

// Get returns the balance row of the given owner.
func (r *RepoPGS) Get(ctx context.Context, owner string) (domain.Balance, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, owner)

	var b domain.Balance

	err := row.Scan(
		&b.ID,
		&b.Amount,
		&b.Owner,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return b, domain.ErrBalanceNotFound
		}

		l.Error().Err(err).Send()

		return b, errorspkg.ErrInternal
	}

	return b, nil
}

// A single statement upsert keyed on the owner unique constraint keeps
// the one-row-per-owner invariant under concurrent writes.
const upsertQuery = `
INSERT INTO
	balance (amount, owner)
VALUES
	($1, $2)
ON CONFLICT (owner) DO UPDATE SET amount = EXCLUDED.amount
RETURNING id, amount::text, owner
`

// Upsert creates the owner's balance row or updates its amount.
func (r *RepoPGS) Upsert(ctx context.Context, amount, owner string) (domain.Balance, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, upsertQuery, amount, owner)

	var b domain.Balance

	err := row.Scan(
		&b.ID,
		&b.Amount,
		&b.Owner,
	)

	if err != nil {
		l.Error().Err(err).Send()
		return b, errorspkg.ErrInternal
	}

	return b, nil
}

const deleteQuery = `
DELETE FROM balance
WHERE owner = $1
RETURNING id
`

// Delete removes the owner's balance row.
func (r *RepoPGS) Delete(ctx context.Context, owner string) error {
	l := zerolog.Ctx(ctx)

	var deletedID int32

	err := r.db.QueryRowContext(ctx, deleteQuery, owner).Scan(&deletedID)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.ErrBalanceNotFound
		}

		l.Error().Err(err).Send()

		return errorspkg.ErrInternal
	}

	return nil
}
