package domain

import "strings"

// Represents a resolved location used both for display and as weather query input.
// Region may be empty; not every country has a modeled state/province.
type Place struct {
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
	Coordinates
}

// Label joins the non-empty parts of the place with ", " for display.
func (p Place) Label() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.City, p.Region, p.Country} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
