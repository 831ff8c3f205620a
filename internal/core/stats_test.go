package core

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestMeanBilling(t *testing.T) {
	got, err := MeanBilling(sampleTable())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 200 {
		t.Fatalf("mean=%v, want 200", got)
	}
}

func TestMeanBillingAllMissing(t *testing.T) {
	tbl := NewTable([]Record{
		NewRecord(30, "Male", "Flu", "Aetna", ParseAmount("x"), ParseDate("2023-01-01")),
		NewRecord(31, "Female", "Flu", "Aetna", ParseAmount(""), ParseDate("2023-01-02")),
	})
	if _, err := MeanBilling(tbl); !errors.Is(err, ErrNoBillingData) {
		t.Fatalf("err=%v, want ErrNoBillingData", err)
	}
}

func TestQuantile(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	cases := []struct {
		q    float64
		want float64
	}{
		{0, 1},
		{0.25, 1.75},
		{0.5, 2.5},
		{0.75, 3.25},
		{1, 4},
	}
	for _, tc := range cases {
		if got := Quantile(values, tc.q); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("q=%v: got %v, want %v", tc.q, got, tc.want)
		}
	}
	if got := Median([]float64{5}); got != 5 {
		t.Fatalf("single-value median=%v", got)
	}
}

func TestBinEdgesAndCounts(t *testing.T) {
	edges := BinEdges(0, 10, 10)
	if len(edges) != 11 || edges[0] != 0 || edges[10] != 10 {
		t.Fatalf("edges=%v", edges)
	}

	counts := BinCounts([]float64{0, 0.5, 1, 5.5, 9.9, 10}, edges)
	if len(counts) != 10 {
		t.Fatalf("counts len=%d", len(counts))
	}
	// Max value lands in the last (right-closed) bin.
	if counts[9] != 2 {
		t.Fatalf("last bin=%d, want 2", counts[9])
	}
	if counts[0] != 2 || counts[1] != 1 || counts[5] != 1 {
		t.Fatalf("counts=%v", counts)
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	if total != 6 {
		t.Fatalf("total counted=%d, want 6", total)
	}
}

func TestNewHistogram(t *testing.T) {
	h := NewHistogram(nil, 10)
	if len(h.Counts) != 0 {
		t.Fatalf("empty histogram has counts: %v", h.Counts)
	}

	h = NewHistogram([]float64{1, 2, 3, 4, 5}, 10)
	if len(h.Counts) != 10 || len(h.Edges) != 11 {
		t.Fatalf("histogram shape: %d counts, %d edges", len(h.Counts), len(h.Edges))
	}
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	if total != 5 {
		t.Fatalf("histogram counted %d values, want 5", total)
	}

	// Degenerate range must still bin the single value.
	h = NewHistogram([]float64{7, 7, 7}, 10)
	total = 0
	for _, c := range h.Counts {
		total += c
	}
	if total != 3 {
		t.Fatalf("degenerate histogram counted %d, want 3", total)
	}
}

func TestProviderBillingDeterminism(t *testing.T) {
	tbl := sampleTable()
	a, _ := MeanBilling(tbl)
	b, _ := MeanBilling(tbl)
	if a != b {
		t.Fatalf("mean not stable: %v vs %v", a, b)
	}
	if !reflect.DeepEqual(tbl.BillingValues(), tbl.BillingValues()) {
		t.Fatal("BillingValues not stable")
	}
}
