// Package http serves the dashboard page and the chart-spec API.
//
// This file parses the filter-control values carried on chart requests.
package http

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"caredash/internal/charts"
)

// ControlValues holds the current state of the four filter controls, as sent
// by the client on every chart request. Zero values mean "unselected".
type ControlValues struct {
	Gender    string
	Condition string
	Billing   float64
	ChartType charts.Kind
}

// parseControlValues extracts control state from query parameters. An absent
// billing value falls back to the slider default; a malformed one is a
// client error.
func parseControlValues(query url.Values, defaultBilling float64) (ControlValues, error) {
	cv := ControlValues{
		Gender:    strings.TrimSpace(query.Get("gender")),
		Condition: strings.TrimSpace(query.Get("condition")),
		Billing:   defaultBilling,
		ChartType: charts.KindLine,
	}

	if v := strings.TrimSpace(query.Get("billing")); v != "" {
		b, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return ControlValues{}, fmt.Errorf("invalid billing value %q", v)
		}
		cv.Billing = b
	}

	switch strings.TrimSpace(query.Get("type")) {
	case "", string(charts.KindLine):
	case string(charts.KindBar):
		cv.ChartType = charts.KindBar
	default:
		return ControlValues{}, fmt.Errorf("invalid chart type %q", query.Get("type"))
	}

	return cv, nil
}

// cacheKey identifies one (chart, control values) combination.
func (cv ControlValues) cacheKey(slot string) string {
	return slot + "|" + cv.Gender + "|" + cv.Condition + "|" +
		strconv.FormatFloat(cv.Billing, 'g', -1, 64) + "|" + string(cv.ChartType)
}
