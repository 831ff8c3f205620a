package charts

import (
	"fmt"
	"strconv"

	"caredash/internal/core"
)

// Option is one selectable value of a dropdown or toggle control.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SliderMark is a labeled tick on the billing slider.
type SliderMark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// Slider describes the billing-amount control: full observed range, median
// default, fixed step, quantile marks.
type Slider struct {
	Min     float64      `json:"min"`
	Max     float64      `json:"max"`
	Default float64      `json:"default"`
	Step    float64      `json:"step"`
	Marks   []SliderMark `json:"marks"`
}

// Summary is the header statistics block. MeanBilling is already formatted
// for display; it degrades to a dash when every billing cell is missing.
type Summary struct {
	TotalRecords int    `json:"totalRecords"`
	MeanBilling  string `json:"meanBilling"`
}

// Layout is the static UI description sent to the client once. Everything in
// it derives from the loaded table and never changes afterwards.
type Layout struct {
	Title            string   `json:"title"`
	Summary          Summary  `json:"summary"`
	GenderOptions    []Option `json:"genderOptions"`
	ConditionOptions []Option `json:"conditionOptions"`
	BillingSlider    Slider   `json:"billingSlider"`
	ChartTypes       []Option `json:"chartTypes"`
	DefaultChartType string   `json:"defaultChartType"`
	Slots            []string `json:"slots"`
}

// SliderStep is the billing slider increment in currency units.
const SliderStep = 100

// BuildLayout derives the control definitions and summary statistics from
// the loaded table.
func BuildLayout(table core.Table) Layout {
	layout := Layout{
		Title: "Healthcare Dashboard",
		Summary: Summary{
			TotalRecords: table.Len(),
			MeanBilling:  "—",
		},
		GenderOptions:    options(table.Genders()),
		ConditionOptions: options(table.Conditions()),
		ChartTypes: []Option{
			{Label: "Line Chart", Value: string(KindLine)},
			{Label: "Bar Chart", Value: string(KindBar)},
		},
		DefaultChartType: string(KindLine),
		Slots:            Slots,
	}

	if mean, err := core.MeanBilling(table); err == nil {
		layout.Summary.MeanBilling = fmt.Sprintf("%.2f", mean)
	}

	layout.BillingSlider = buildSlider(table.BillingValues())
	return layout
}

func buildSlider(billing []float64) Slider {
	s := Slider{Step: SliderStep}
	if len(billing) == 0 {
		return s
	}
	s.Min = core.Quantile(billing, 0)
	s.Max = core.Quantile(billing, 1)
	s.Default = core.Median(billing)

	seen := make(map[int64]struct{})
	for _, q := range []float64{0, 0.25, 0.5, 0.75, 1} {
		v := int64(core.Quantile(billing, q))
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		s.Marks = append(s.Marks, SliderMark{Value: float64(v), Label: "$" + groupThousands(v)})
	}
	return s
}

func options(values []string) []Option {
	out := make([]Option, 0, len(values))
	for _, v := range values {
		out = append(out, Option{Label: v, Value: v})
	}
	return out
}

// groupThousands renders 1234567 as "1,234,567".
func groupThousands(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatInt(v, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
