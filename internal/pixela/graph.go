package pixela

import (
	"fmt"
	"strings"
	"time"
)

// Graph describes a graph to be created: a named, typed time series
// container scoped to one account.
type Graph struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Unit  string `json:"unit"`
	Type  string `json:"type"`
	Color string `json:"color"`
}

// Pixel is one dated, quantified data point within a graph. Quantity is
// passed through as an opaque string; Pixela accepts both int and float
// graphs with string-encoded values.
type Pixel struct {
	Date     string `json:"date"`
	Quantity string `json:"quantity"`
}

// GraphTypes are the value types Pixela accepts for a graph.
var GraphTypes = []string{"int", "float"}

// GraphColors is Pixela's fixed color palette.
var GraphColors = []string{"shibafu", "momiji", "sora", "ichou", "ajisai", "kuro"}

// Validate checks the type and color enumerations. It does not hit the
// network; out-of-range values are rejected before any request is built.
func (g Graph) Validate() error {
	if !contains(GraphTypes, g.Type) {
		return enumError("type", g.Type, GraphTypes)
	}
	if !contains(GraphColors, g.Color) {
		return enumError("color", g.Color, GraphColors)
	}
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// enumError reports an out-of-enumeration value, suggesting the nearest
// valid one when the input looks like a misspelling.
func enumError(field, got string, valid []string) error {
	if s := Closest(got, valid); s != "" {
		return fmt.Errorf("invalid %s %q (did you mean %q? valid values: %s)", field, got, s, strings.Join(valid, ", "))
	}
	return fmt.Errorf("invalid %s %q (valid values: %s)", field, got, strings.Join(valid, ", "))
}

// dateLayout is Pixela's wire format for calendar dates.
const dateLayout = "20060102"

// ValidateDate checks that s is a real calendar date in 8-digit YYYYMMDD
// form. time.Parse rejects out-of-range months and days, so 20250231
// fails here rather than at the API.
func ValidateDate(s string) error {
	if len(s) != len(dateLayout) {
		return fmt.Errorf("date must be in YYYYMMDD form (e.g., 20250831), got %q", s)
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return fmt.Errorf("date must be in YYYYMMDD form (e.g., 20250831), got %q", s)
	}
	return nil
}

// Today returns the current date in Pixela's YYYYMMDD form.
func Today() string {
	return time.Now().Format(dateLayout)
}
