package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/tynanfleet/fleetcheck/internal/checklist/domain"
	"github.com/tynanfleet/fleetcheck/pkg/idx"
)

type entriesRepo struct {
	db dbtx
}

// entryColumns is every non-id column in insertion order. The flag columns
// come from domain.FlagNames so the SQL can never drift from the domain type.
func entryColumns() []string {
	cols := []string{
		"created_at", "user_id",
		"shift", "mechanic", "van_id",
		"odometer", "fuel_level", "notes",
	}
	return append(cols, domain.FlagNames...)
}

func (r *entriesRepo) CreateEntry(ctx context.Context, e domain.Entry) (int64, error) {
	cols := entryColumns()

	var userID sql.NullString
	if !e.UserID.IsZero() {
		userID = sql.NullString{String: e.UserID.String(), Valid: true}
	}

	args := []any{
		toMicros(e.CreatedAt), userID,
		e.Shift, e.Mechanic, e.VanID,
		mapOptionalInt(e.Odometer), mapOptionalInt(e.FuelLevel), e.Notes,
	}
	for _, name := range domain.FlagNames {
		args = append(args, e.Checks.Get(name))
	}

	query := `INSERT INTO checklist_entries (` + strings.Join(cols, ", ") + `)
		VALUES (?` + strings.Repeat(", ?", len(cols)-1) + `)`

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *entriesRepo) ListRecent(ctx context.Context, limit int) ([]domain.Entry, error) {
	// created_at DESC with id ASC within ties keeps insertion order stable
	// among entries sharing a timestamp.
	query := `SELECT id, ` + strings.Join(entryColumns(), ", ") + `
		FROM checklist_entries
		ORDER BY created_at DESC, id ASC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func scanEntry(rows *sql.Rows) (domain.Entry, error) {
	var (
		e         domain.Entry
		createdAt int64
		userID    sql.NullString
		odometer  sql.NullInt64
		fuelLevel sql.NullInt64
		flags     = make([]bool, len(domain.FlagNames))
	)

	dest := []any{
		&e.ID, &createdAt, &userID,
		&e.Shift, &e.Mechanic, &e.VanID,
		&odometer, &fuelLevel, &e.Notes,
	}
	for i := range flags {
		dest = append(dest, &flags[i])
	}

	if err := rows.Scan(dest...); err != nil {
		return domain.Entry{}, err
	}

	e.CreatedAt = fromMicros(createdAt)
	if userID.Valid {
		e.UserID = idx.ID(userID.String)
	}
	e.Odometer = mapNullInt(odometer)
	e.FuelLevel = mapNullInt(fuelLevel)
	for i, name := range domain.FlagNames {
		e.Checks.Set(name, flags[i])
	}

	return e, nil
}
