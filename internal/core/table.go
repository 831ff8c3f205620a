package core

// Table is the loaded dataset. It is constructed once at startup and never
// mutated afterwards; every handler reads the same underlying rows, so
// concurrent access needs no locking.
type Table struct {
	records []Record
}

// NewTable wraps rows into a Table. The caller hands over ownership of the
// slice and must not modify it afterwards.
func NewTable(records []Record) Table {
	return Table{records: records}
}

// Len is the total row count, including rows with missing fields.
func (t Table) Len() int {
	return len(t.records)
}

// Records exposes the rows for read-only iteration.
func (t Table) Records() []Record {
	return t.records
}

// Genders returns the distinct Gender values in first-seen order.
func (t Table) Genders() []string {
	return t.distinct(func(r Record) string { return r.Gender })
}

// Conditions returns the distinct Medical Condition values in first-seen order.
func (t Table) Conditions() []string {
	return t.distinct(func(r Record) string { return r.Condition })
}

// Providers returns the distinct Insurance Provider values in first-seen order.
func (t Table) Providers() []string {
	return t.distinct(func(r Record) string { return r.Provider })
}

func (t Table) distinct(key func(Record) string) []string {
	seen := make(map[string]struct{}, 8)
	var out []string
	for _, r := range t.records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// FilterGender keeps rows matching the given gender. An empty selection
// means "no filter" and returns the table unchanged.
func (t Table) FilterGender(gender string) Table {
	if gender == "" {
		return t
	}
	return t.filter(func(r Record) bool { return r.Gender == gender })
}

// FilterCondition keeps rows matching the given medical condition. An empty
// selection means "no filter".
func (t Table) FilterCondition(condition string) Table {
	if condition == "" {
		return t
	}
	return t.filter(func(r Record) bool { return r.Condition == condition })
}

// FilterBillingAtMost keeps rows whose billing amount is present and does not
// exceed max. Rows with a missing amount never match.
func (t Table) FilterBillingAtMost(max float64) Table {
	return t.filter(func(r Record) bool { return r.Billing.Valid && r.Billing.Value <= max })
}

func (t Table) filter(keep func(Record) bool) Table {
	var out []Record
	for _, r := range t.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return Table{records: out}
}

// BillingValues collects the present billing amounts, skipping missing cells.
func (t Table) BillingValues() []float64 {
	var out []float64
	for _, r := range t.records {
		if r.Billing.Valid {
			out = append(out, r.Billing.Value)
		}
	}
	return out
}
