package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"caredash/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteSource reads the dataset from a table in a SQLite database file.
// The file is opened for a single read and closed again; no schema is
// created or migrated.
type SQLiteSource struct {
	path  string
	table string
}

func NewSQLiteSource(path, table string) *SQLiteSource {
	return &SQLiteSource{path: path, table: table}
}

// Column names in the SQL backends mirror the canonical header names in
// snake_case.
var sqlColumns = []string{
	"age", "gender", "medical_condition", "insurance_provider",
	"billing_amount", "date_of_admission",
}

func (s *SQLiteSource) Load(ctx context.Context) (core.Table, error) {
	if _, err := os.Stat(s.path); err != nil {
		return core.Table{}, fmt.Errorf("sqlite dataset %s: %w", s.path, err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return core.Table{}, fmt.Errorf("open sqlite dataset %s: %w", s.path, err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return core.Table{}, fmt.Errorf("ping sqlite dataset %s: %w", s.path, err)
	}

	query := fmt.Sprintf(`SELECT %s FROM %q`, strings.Join(sqlColumns, ", "), s.table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return core.Table{}, fmt.Errorf("query sqlite table %s: %w", s.table, err)
	}
	defer rows.Close()

	var records []core.Record
	for rows.Next() {
		var cells [6]sql.NullString
		if err := rows.Scan(&cells[0], &cells[1], &cells[2], &cells[3], &cells[4], &cells[5]); err != nil {
			return core.Table{}, fmt.Errorf("scan sqlite row: %w", err)
		}
		records = append(records, coerceRecord(func(col string) string {
			for i, c := range Columns {
				if c == col {
					return cells[i].String
				}
			}
			return ""
		}))
	}
	if err := rows.Err(); err != nil {
		return core.Table{}, fmt.Errorf("iterate sqlite rows: %w", err)
	}

	table := core.NewTable(records)
	logLoad(ctx, "sqlite", table)
	return table, nil
}
