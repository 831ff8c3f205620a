package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"caredash/internal/core"
)

// Expected column names, as they appear in the source header.
const (
	ColAge       = "Age"
	ColGender    = "Gender"
	ColCondition = "Medical Condition"
	ColProvider  = "Insurance Provider"
	ColBilling   = "Billing Amount"
	ColAdmission = "Date of Admission"
)

// Columns lists the expected columns in canonical order. Extra columns in a
// source are ignored; a missing one fails the load.
var Columns = []string{ColAge, ColGender, ColCondition, ColProvider, ColBilling, ColAdmission}

// headerIndex maps canonical column names to their position in the source
// header. Header cells are matched after trimming, case-insensitively.
func headerIndex(header []string) (map[string]int, error) {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[strings.ToLower(strings.TrimSpace(h))] = i
	}
	idx := make(map[string]int, len(Columns))
	for _, col := range Columns {
		i, ok := byName[strings.ToLower(col)]
		if !ok {
			return nil, fmt.Errorf("missing column %q in dataset header", col)
		}
		idx[col] = i
	}
	return idx, nil
}

// coerceRecord builds a Record from raw cell text. Billing and admission
// cells that fail to parse become missing values; they never fail the load.
func coerceRecord(cell func(col string) string) core.Record {
	age, _ := strconv.Atoi(strings.TrimSpace(cell(ColAge)))
	return core.NewRecord(
		age,
		strings.TrimSpace(cell(ColGender)),
		strings.TrimSpace(cell(ColCondition)),
		strings.TrimSpace(cell(ColProvider)),
		core.ParseAmount(cell(ColBilling)),
		core.ParseDate(cell(ColAdmission)),
	)
}

// rowCell adapts a positional row to the column getter coerceRecord expects.
// Short rows yield empty cells.
func rowCell(idx map[string]int, row []string) func(string) string {
	return func(col string) string {
		i := idx[col]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}
}

// logLoad reports the load outcome once per startup.
func logLoad(ctx context.Context, backend string, table core.Table) {
	missingBilling, missingDate := 0, 0
	for _, r := range table.Records() {
		if !r.Billing.Valid {
			missingBilling++
		}
		if !r.Admission.Valid {
			missingDate++
		}
	}
	slog.InfoContext(ctx, "Dataset loaded",
		"backend", backend,
		"rows", table.Len(),
		"missing_billing", missingBilling,
		"missing_admission_date", missingDate)
}
