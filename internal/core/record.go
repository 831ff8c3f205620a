package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type (
	// Amount is a billing amount in whole currency units. Valid is false
	// when the source cell could not be parsed as a number.
	Amount struct {
		Value float64
		Valid bool
	}

	// Date is an admission date. Valid is false when the source cell could
	// not be parsed as a calendar date.
	Date struct {
		Time  time.Time
		Valid bool
	}

	// YearMonth is the calendar bucket a record's admission date falls in.
	// Valid is false when the admission date itself is missing.
	YearMonth struct {
		Year  int
		Month time.Month
		Valid bool
	}

	// Record is one row of the healthcare dataset.
	Record struct {
		Age       int
		Gender    string
		Condition string
		Provider  string
		Billing   Amount
		Admission Date
		YearMonth YearMonth
	}
)

// ParseAmount coerces a source cell to an Amount. Unparseable text yields a
// missing value, never an error.
func ParseAmount(cell string) Amount {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return Amount{}
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(cell, ",", ""), 64)
	if err != nil {
		return Amount{}
	}
	return Amount{Value: v, Valid: true}
}

// Date layouts accepted by ParseDate, most specific first.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02",
	"01/02/2006",
}

// ParseDate coerces a source cell to a Date. Unparseable text yields a
// missing value, never an error.
func ParseDate(cell string) Date {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return Date{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return Date{Time: t, Valid: true}
		}
	}
	return Date{}
}

// NewRecord builds a Record from already-coerced fields, deriving YearMonth
// from the admission date.
func NewRecord(age int, gender, condition, provider string, billing Amount, admission Date) Record {
	return Record{
		Age:       age,
		Gender:    gender,
		Condition: condition,
		Provider:  provider,
		Billing:   billing,
		Admission: admission,
		YearMonth: admission.YearMonth(),
	}
}

// YearMonth returns the year+month bucket of the date; missing date yields a
// missing bucket.
func (d Date) YearMonth() YearMonth {
	if !d.Valid {
		return YearMonth{}
	}
	return YearMonth{Year: d.Time.Year(), Month: d.Time.Month(), Valid: true}
}

// Before reports chronological order between two valid buckets.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// String renders the bucket as "2024-01". Missing buckets render empty.
func (ym YearMonth) String() string {
	if !ym.Valid {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}
