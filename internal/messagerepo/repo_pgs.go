// Package messagerepo manages repository layer of user messages.
package messagerepo

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gastos-dev/gastos/internal/domain"
	"github.com/gastos-dev/gastos/pkg/dbpkg"
	"github.com/gastos-dev/gastos/pkg/errorspkg"
)

// RepoPGS facilitates user message repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns user message RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO
	user_messages (owner, message)
VALUES
	($1, $2)
RETURNING owner, message, created_at
`

// Create inserts the owner's message and then returns it.
func (r *RepoPGS) Create(ctx context.Context, owner, message string) (domain.UserMessage, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, owner, message)

	var m domain.UserMessage

	err := row.Scan(
		&m.Owner,
		&m.Message,
		&m.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()
		return m, errorspkg.ErrInternal
	}

	return m, nil
}

const deleteQuery = `
DELETE FROM user_messages
WHERE owner = $1
`

// Delete removes all messages of the given owner. Deleting when no
// message exists is not an error.
func (r *RepoPGS) Delete(ctx context.Context, owner string) error {
	l := zerolog.Ctx(ctx)

	if _, err := r.db.ExecContext(ctx, deleteQuery, owner); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}
