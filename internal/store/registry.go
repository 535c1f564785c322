package store

import (
	"fmt"
	"sort"
	"strings"

	"pizzeria/internal/model"
)

// Region names a store family.
type Region string

const (
	RegionNewYork    Region = "new-york"
	RegionChicago    Region = "chicago"
	RegionCalifornia Region = "california"
)

// Registry maps regions to their creators. It is read-only after construction.
type Registry struct {
	creators map[Region]Creator
}

// NewRegistry creates a registry from the given region/creator pairs.
func NewRegistry(creators map[Region]Creator) *Registry {
	r := &Registry{creators: make(map[Region]Creator, len(creators))}
	for region, c := range creators {
		r.creators[region] = c
	}
	return r
}

// DefaultRegistry returns the three built-in store families.
func DefaultRegistry() *Registry {
	return NewRegistry(map[Region]Creator{
		RegionNewYork:    NewYorkCreator{},
		RegionChicago:    ChicagoCreator{},
		RegionCalifornia: CaliforniaCreator{},
	})
}

// Lookup returns the creator registered for region.
func (r *Registry) Lookup(region Region) (Creator, error) {
	c, ok := r.creators[ParseRegion(string(region))]
	if !ok {
		return nil, fmt.Errorf("region %q: %w", region, model.ErrUnrecognizedVariant)
	}
	return c, nil
}

// Regions lists the registered regions in sorted order.
func (r *Registry) Regions() []Region {
	regions := make([]Region, 0, len(r.creators))
	for region := range r.creators {
		regions = append(regions, region)
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i] < regions[j] })
	return regions
}

// ParseRegion normalizes user input into a Region. It does not check that
// the region is registered; Lookup does that.
func ParseRegion(s string) Region {
	return Region(strings.ToLower(strings.TrimSpace(s)))
}
