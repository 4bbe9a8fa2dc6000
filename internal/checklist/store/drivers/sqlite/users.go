package sqlite

import (
	"context"
	"database/sql"

	"github.com/tynanfleet/fleetcheck/internal/checklist/domain"
	"github.com/tynanfleet/fleetcheck/pkg/idx"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, created_at, name, username, password_hash`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?)`,
		u.ID.String(),
		toMicros(u.CreatedAt),
		u.Name,
		u.Username,
		u.PasswordHash,
	)
	return mapConstraint(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id idx.ID) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id.String())
	return scanUser(row)
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u         domain.User
		id        string
		createdAt int64
	)
	if err := row.Scan(&id, &createdAt, &u.Name, &u.Username, &u.PasswordHash); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.ID = idx.ID(id)
	u.CreatedAt = fromMicros(createdAt)
	return u, nil
}
