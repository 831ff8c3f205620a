package charts

import (
	"fmt"
	"sort"

	"caredash/internal/core"
)

// HistogramBins is the fixed bin count used by both histogram charts.
const HistogramBins = 10

// Slot identifiers, one per chart placeholder on the page.
const (
	SlotAgeDistribution       = "age-distribution"
	SlotConditionDistribution = "condition-distribution"
	SlotInsuranceComparison   = "insurance-comparison"
	SlotBillingDistribution   = "billing-distribution"
	SlotAdmissionTrends       = "admission-trends"
)

// Slots lists the chart placeholders in page order.
var Slots = []string{
	SlotAgeDistribution,
	SlotConditionDistribution,
	SlotInsuranceComparison,
	SlotBillingDistribution,
	SlotAdmissionTrends,
}

var (
	genderPalette    = []string{"#636efa", "#ef553b"}
	conditionPalette = []string{
		"#e41a1c", "#377eb8", "#4daf4a", "#984ea3", "#ff7f00",
		"#ffff33", "#a65628", "#f781bf", "#999999",
	}
)

// Dashboard holds the shared read-only table and exposes the five
// filter-render handlers. Every handler is a pure function of the table and
// the given control values; identical inputs yield identical specs.
type Dashboard struct {
	table core.Table
}

func NewDashboard(table core.Table) *Dashboard {
	return &Dashboard{table: table}
}

// Table exposes the shared dataset reference.
func (d *Dashboard) Table() core.Table {
	return d.table
}

// AgeDistribution renders a 10-bin age histogram of rows matching the
// selected gender (all rows when unselected), one series per gender present.
func (d *Dashboard) AgeDistribution(gender string) Spec {
	const title = "Age Distribution by Gender"
	rows := d.table.FilterGender(gender)
	if rows.Len() == 0 {
		return emptySpec(KindBar, title)
	}

	ages := make([]float64, 0, rows.Len())
	for _, r := range rows.Records() {
		ages = append(ages, float64(r.Age))
	}
	min, max := ages[0], ages[0]
	for _, a := range ages[1:] {
		if a < min {
			min = a
		}
		if a > max {
			max = a
		}
	}
	edges := core.BinEdges(min, max, HistogramBins)
	labels := binLabels(edges, "%.0f")

	spec := Spec{Kind: KindBar, Title: title, XTitle: "Age", YTitle: "Count"}
	for i, g := range rows.Genders() {
		var values []float64
		for _, r := range rows.FilterGender(g).Records() {
			values = append(values, float64(r.Age))
		}
		spec.Series = append(spec.Series, Series{
			Name:  g,
			X:     labels,
			Y:     toFloats(core.BinCounts(values, edges)),
			Color: genderPalette[i%len(genderPalette)],
		})
	}
	return spec
}

// ConditionDistribution renders the share of each medical condition among
// rows matching the selected gender.
func (d *Dashboard) ConditionDistribution(gender string) Spec {
	const title = "Medical Condition Distribution"
	rows := d.table.FilterGender(gender)
	if rows.Len() == 0 {
		return emptySpec(KindPie, title)
	}

	counts := make(map[string]int)
	for _, r := range rows.Records() {
		counts[r.Condition]++
	}
	spec := Spec{Kind: KindPie, Title: title}
	for _, c := range rows.Conditions() {
		spec.Labels = append(spec.Labels, c)
		spec.Values = append(spec.Values, float64(counts[c]))
	}
	return spec
}

// InsuranceComparison renders summed billing per insurance provider, one
// grouped series per medical condition. Rows with a missing billing amount
// contribute nothing to the sums.
func (d *Dashboard) InsuranceComparison(gender string) Spec {
	const title = "Insurance Provider Price Comparison"
	rows := d.table.FilterGender(gender)
	if rows.Len() == 0 {
		return emptySpec(KindBar, title)
	}

	providers := rows.Providers()
	sums := make(map[string]map[string]float64)
	for _, r := range rows.Records() {
		if !r.Billing.Valid {
			continue
		}
		if sums[r.Condition] == nil {
			sums[r.Condition] = make(map[string]float64)
		}
		sums[r.Condition][r.Provider] += r.Billing.Value
	}

	spec := Spec{Kind: KindBar, Title: title, XTitle: "Insurance Provider", YTitle: "Billing Amount", Grouped: true}
	for i, cond := range rows.Conditions() {
		y := make([]float64, len(providers))
		for j, p := range providers {
			y[j] = sums[cond][p]
		}
		spec.Series = append(spec.Series, Series{
			Name:  cond,
			X:     providers,
			Y:     y,
			Color: conditionPalette[i%len(conditionPalette)],
		})
	}
	return spec
}

// BillingDistribution renders a 10-bin histogram of billing amounts at or
// below the slider value, over rows matching the selected gender.
func (d *Dashboard) BillingDistribution(gender string, maxBilling float64) Spec {
	const title = "Billing Amount Distribution"
	rows := d.table.FilterGender(gender).FilterBillingAtMost(maxBilling)
	if rows.Len() == 0 {
		return emptySpec(KindBar, title)
	}

	hist := core.NewHistogram(rows.BillingValues(), HistogramBins)
	return Spec{
		Kind:   KindBar,
		Title:  title,
		XTitle: "Billing Amount",
		YTitle: "Count",
		Series: []Series{{
			X:     binLabels(hist.Edges, "%.0f"),
			Y:     toFloats(hist.Counts),
			Color: genderPalette[0],
		}},
	}
}

// AdmissionTrends counts admissions per year-month bucket for rows matching
// the selected condition, sorted chronologically, rendered as a line or bar
// chart. Rows with a missing admission date are excluded.
func (d *Dashboard) AdmissionTrends(kind Kind, condition string) Spec {
	const title = "Admission Trends Over Time"
	if kind != KindBar {
		kind = KindLine
	}
	rows := d.table.FilterCondition(condition)

	counts := make(map[core.YearMonth]int)
	for _, r := range rows.Records() {
		if r.YearMonth.Valid {
			counts[r.YearMonth]++
		}
	}
	if len(counts) == 0 {
		return emptySpec(kind, title)
	}

	buckets := make([]core.YearMonth, 0, len(counts))
	for ym := range counts {
		buckets = append(buckets, ym)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Before(buckets[j]) })

	series := Series{Color: genderPalette[0]}
	for _, ym := range buckets {
		series.X = append(series.X, ym.String())
		series.Y = append(series.Y, float64(counts[ym]))
	}
	return Spec{Kind: kind, Title: title, XTitle: "Month", YTitle: "Count", Series: []Series{series}}
}

func binLabels(edges []float64, format string) []string {
	labels := make([]string, len(edges)-1)
	for i := range labels {
		labels[i] = fmt.Sprintf(format+" - "+format, edges[i], edges[i+1])
	}
	return labels
}

func toFloats(counts []int) []float64 {
	out := make([]float64, len(counts))
	for i, c := range counts {
		out[i] = float64(c)
	}
	return out
}
