package core

import (
	"testing"
	"time"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in    string
		value float64
		valid bool
	}{
		{"100", 100, true},
		{"18856.28", 18856.28, true},
		{" 2500.50 ", 2500.5, true},
		{"1,234.56", 1234.56, true},
		{"-12.5", -12.5, true},
		{"", 0, false},
		{"n/a", 0, false},
		{"12.3.4", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		got := ParseAmount(tc.in)
		if got.Valid != tc.valid {
			t.Fatalf("%q: valid=%v, want %v", tc.in, got.Valid, tc.valid)
		}
		if tc.valid && got.Value != tc.value {
			t.Fatalf("%q: value=%v, want %v", tc.in, got.Value, tc.value)
		}
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
		year  int
		month time.Month
	}{
		{"2024-01-31", true, 2024, time.January},
		{"2023-12-05 14:30:00", true, 2023, time.December},
		{"03/15/2022", true, 2022, time.March},
		{"", false, 0, 0},
		{"not a date", false, 0, 0},
		{"2024-13-01", false, 0, 0},
	}
	for _, tc := range cases {
		got := ParseDate(tc.in)
		if got.Valid != tc.valid {
			t.Fatalf("%q: valid=%v, want %v", tc.in, got.Valid, tc.valid)
		}
		if tc.valid && (got.Time.Year() != tc.year || got.Time.Month() != tc.month) {
			t.Fatalf("%q: got %v", tc.in, got.Time)
		}
	}
}

func TestYearMonthDerivation(t *testing.T) {
	r := NewRecord(40, "Male", "Diabetes", "Aetna", ParseAmount("120.5"), ParseDate("2024-02-10"))
	if !r.YearMonth.Valid {
		t.Fatal("expected valid YearMonth for parseable date")
	}
	if r.YearMonth.String() != "2024-02" {
		t.Fatalf("YearMonth=%q, want 2024-02", r.YearMonth.String())
	}

	missing := NewRecord(40, "Male", "Diabetes", "Aetna", ParseAmount("120.5"), ParseDate("bogus"))
	if missing.YearMonth.Valid {
		t.Fatal("expected missing YearMonth for unparseable date")
	}
	if missing.YearMonth.String() != "" {
		t.Fatalf("missing YearMonth rendered %q", missing.YearMonth.String())
	}
}

func TestYearMonthBefore(t *testing.T) {
	a := YearMonth{Year: 2023, Month: time.December, Valid: true}
	b := YearMonth{Year: 2024, Month: time.January, Valid: true}
	c := YearMonth{Year: 2024, Month: time.March, Valid: true}
	if !a.Before(b) || !b.Before(c) || c.Before(a) {
		t.Fatal("YearMonth ordering broken")
	}
}
