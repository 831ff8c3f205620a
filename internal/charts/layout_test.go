package charts

import (
	"testing"

	"caredash/internal/core"
)

func TestBuildLayout(t *testing.T) {
	layout := BuildLayout(testTable())

	if layout.Summary.TotalRecords != 5 {
		t.Fatalf("total records=%d, want 5 (missing cells still count)", layout.Summary.TotalRecords)
	}
	// Mean over the present amounts: (100+200+300+150)/4.
	if layout.Summary.MeanBilling != "187.50" {
		t.Fatalf("mean=%q", layout.Summary.MeanBilling)
	}

	if len(layout.GenderOptions) != 2 || layout.GenderOptions[0].Value != "Male" {
		t.Fatalf("gender options=%v", layout.GenderOptions)
	}
	if len(layout.ConditionOptions) != 3 {
		t.Fatalf("condition options=%v", layout.ConditionOptions)
	}

	s := layout.BillingSlider
	if s.Min != 100 || s.Max != 300 || s.Step != SliderStep {
		t.Fatalf("slider=%+v", s)
	}
	if s.Default != 175 {
		t.Fatalf("slider default=%v, want median 175", s.Default)
	}
	if len(s.Marks) == 0 || s.Marks[0].Label != "$100" {
		t.Fatalf("slider marks=%v", s.Marks)
	}

	if layout.DefaultChartType != string(KindLine) || len(layout.ChartTypes) != 2 {
		t.Fatalf("chart types=%v default=%q", layout.ChartTypes, layout.DefaultChartType)
	}
	if len(layout.Slots) != 5 {
		t.Fatalf("slots=%v", layout.Slots)
	}
}

func TestBuildLayoutNoBillingData(t *testing.T) {
	tbl := core.NewTable([]core.Record{
		core.NewRecord(30, "Male", "Flu", "Aetna", core.ParseAmount("n/a"), core.ParseDate("2023-01-01")),
	})
	layout := BuildLayout(tbl)
	if layout.Summary.MeanBilling != "—" {
		t.Fatalf("mean=%q, want degraded display value", layout.Summary.MeanBilling)
	}
	if len(layout.BillingSlider.Marks) != 0 {
		t.Fatalf("slider marks=%v, want none", layout.BillingSlider.Marks)
	}
}

func TestGroupThousands(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-25000, "-25,000"},
	}
	for _, tc := range cases {
		if got := groupThousands(tc.in); got != tc.want {
			t.Fatalf("%d: got %q, want %q", tc.in, got, tc.want)
		}
	}
}
