// Package dataset loads the healthcare records table from one of several
// backends. Every source performs a single read and returns an immutable
// core.Table; nothing here ever writes.
package dataset

import (
	"context"
	"fmt"

	"caredash/internal/config"
	"caredash/internal/core"
)

// Source is a dataset backend. Load runs exactly once at startup; a failure
// aborts the process.
type Source interface {
	Load(ctx context.Context) (core.Table, error)
}

// Open selects a source from the configured backend.
func Open(cfg *config.Config) (Source, error) {
	switch cfg.DatasetBackend {
	case "", "csv":
		return NewCSVSource(cfg.DatasetPath), nil
	case "sqlite":
		return NewSQLiteSource(cfg.DatasetPath, cfg.DatasetTable), nil
	case "postgres":
		return NewPostgresSource(cfg.PostgresURL, cfg.DatasetTable), nil
	case "sheets":
		return NewSheetsSource(cfg.SheetsSpreadsheetID, cfg.SheetsReadRange), nil
	default:
		return nil, fmt.Errorf("unsupported dataset backend: %s", cfg.DatasetBackend)
	}
}
