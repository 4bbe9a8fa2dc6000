package sqlite

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/tynanfleet/fleetcheck/internal/checklist/domain"
)

// guardColumn is one column the additive schema guard expects to exist on
// checklist_entries.
type guardColumn struct {
	name string
	typ  string
	dflt string // empty means no DEFAULT clause (nullable column)
}

// guardColumns is the ordered list of columns added after the base schema:
// the nullable owning-user reference plus every inspection flag.
func guardColumns() []guardColumn {
	cols := []guardColumn{{name: "user_id", typ: "TEXT"}}
	for _, name := range domain.FlagNames {
		cols = append(cols, guardColumn{name: name, typ: "INTEGER", dflt: "0"})
	}
	return cols
}

// EnsureEntryColumns adds every expected column that is missing from
// checklist_entries. Additive only: it never drops or renames. A failure on
// one column is logged and skipped so a partially migrated schema still
// boots; the alternative would be refusing to serve entirely.
func (s *Store) EnsureEntryColumns(ctx context.Context, log *slog.Logger) {
	existing, err := s.tableColumns(ctx, "checklist_entries")
	if err != nil {
		log.Warn("schema guard: could not read table info, attempting all columns", "err", err)
		existing = map[string]struct{}{}
	}

	for _, col := range guardColumns() {
		if _, ok := existing[col.name]; ok {
			continue
		}

		stmt := `ALTER TABLE checklist_entries ADD COLUMN ` + col.name + ` ` + col.typ
		if col.dflt != "" {
			stmt += ` DEFAULT ` + col.dflt
		}

		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			log.Warn("schema guard: could not add column", "column", col.name, "err", err)
			continue
		}
		log.Info("schema guard: added column", "column", col.name)
	}
}

func (s *Store) tableColumns(ctx context.Context, table string) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(ctx, `PRAGMA table_info(`+table+`)`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := make(map[string]struct{})
	for rows.Next() {
		var (
			cid       int
			name      string
			typ       string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dfltValue, &pk); err != nil {
			return nil, err
		}
		cols[name] = struct{}{}
	}
	return cols, rows.Err()
}
