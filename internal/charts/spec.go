// Package charts turns the loaded dataset plus current control values into
// declarative chart specifications rendered client-side.
package charts

// Kind selects the renderer for a chart spec.
type Kind string

const (
	KindBar  Kind = "bar"
	KindLine Kind = "line"
	KindPie  Kind = "pie"
)

// Series is one trace of a bar or line chart. X holds category labels
// (bin ranges, providers, year-month buckets) and Y the value per label.
type Series struct {
	Name  string    `json:"name,omitempty"`
	X     []string  `json:"x"`
	Y     []float64 `json:"y"`
	Color string    `json:"color,omitempty"`
}

// Spec is a render-ready chart description. When Empty is true the filtered
// row set was empty and the client shows a "nothing to display" placeholder
// instead of axes.
type Spec struct {
	Kind    Kind      `json:"kind"`
	Title   string    `json:"title"`
	XTitle  string    `json:"xTitle,omitempty"`
	YTitle  string    `json:"yTitle,omitempty"`
	Empty   bool      `json:"empty"`
	Grouped bool      `json:"grouped,omitempty"`
	Series  []Series  `json:"series,omitempty"`
	Labels  []string  `json:"labels,omitempty"`
	Values  []float64 `json:"values,omitempty"`
}

func emptySpec(kind Kind, title string) Spec {
	return Spec{Kind: kind, Title: title, Empty: true}
}
