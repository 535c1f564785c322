package model

import (
	"fmt"
	"strings"
)

// DoughType is the crust a pizza is made with.
type DoughType int

const (
	DoughNone DoughType = iota
	DoughThin
	DoughPan
	DoughDeepDish
)

var doughNames = map[DoughType]string{
	DoughNone:     "none",
	DoughThin:     "thin",
	DoughPan:      "pan",
	DoughDeepDish: "deep-dish",
}

// String returns the dough name ParseDoughType accepts.
func (d DoughType) String() string {
	if name, ok := doughNames[d]; ok {
		return name
	}
	return fmt.Sprintf("DoughType(%d)", int(d))
}

// ParseDoughType maps a dough name back to its DoughType.
func ParseDoughType(s string) (DoughType, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for d, name := range doughNames {
		if name == want {
			return d, nil
		}
	}
	return DoughNone, fmt.Errorf("unknown dough type: %q", s)
}
