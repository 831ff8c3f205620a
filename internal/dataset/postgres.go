package dataset

import (
	"context"
	"fmt"
	"strings"

	"caredash/internal/core"

	"github.com/jackc/pgx/v5"
)

// PostgresSource reads the dataset from a Postgres table with a single
// SELECT. The connection is closed as soon as the rows are drained.
type PostgresSource struct {
	url   string
	table string
}

func NewPostgresSource(url, table string) *PostgresSource {
	return &PostgresSource{url: url, table: table}
}

func (s *PostgresSource) Load(ctx context.Context) (core.Table, error) {
	conn, err := pgx.Connect(ctx, s.url)
	if err != nil {
		return core.Table{}, fmt.Errorf("connect to postgres: %w", err)
	}
	defer conn.Close(ctx)

	// Cast every column to text so coercion behaves identically across
	// backends regardless of the stored column types.
	selects := make([]string, len(sqlColumns))
	for i, c := range sqlColumns {
		selects[i] = pgx.Identifier{c}.Sanitize() + "::text"
	}
	query := fmt.Sprintf(`SELECT %s FROM %s`,
		strings.Join(selects, ", "), pgx.Identifier{s.table}.Sanitize())

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return core.Table{}, fmt.Errorf("query postgres table %s: %w", s.table, err)
	}
	defer rows.Close()

	var records []core.Record
	for rows.Next() {
		cells := make([]*string, 6)
		if err := rows.Scan(&cells[0], &cells[1], &cells[2], &cells[3], &cells[4], &cells[5]); err != nil {
			return core.Table{}, fmt.Errorf("scan postgres row: %w", err)
		}
		records = append(records, coerceRecord(func(col string) string {
			for i, c := range Columns {
				if c == col && cells[i] != nil {
					return *cells[i]
				}
			}
			return ""
		}))
	}
	if err := rows.Err(); err != nil {
		return core.Table{}, fmt.Errorf("iterate postgres rows: %w", err)
	}

	table := core.NewTable(records)
	logLoad(ctx, "postgres", table)
	return table, nil
}
