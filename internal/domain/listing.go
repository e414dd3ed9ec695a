package domain

import (
	"sort"
	"strings"
)

// Listable is implemented by every entity shown in an ordered public list.
type Listable interface {
	SortOrder() int
	IsVisible() bool
}

// SelectVisibleOrdered drops hidden entities unless includeHidden is set and
// sorts the rest by ascending order. Entities with the same order keep their
// input order. The input slice is not modified.
func SelectVisibleOrdered[T Listable](entities []T, includeHidden bool) []T {
	selected := make([]T, 0, len(entities))
	for _, e := range entities {
		if !includeHidden && !e.IsVisible() {
			continue
		}
		selected = append(selected, e)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].SortOrder() < selected[j].SortOrder()
	})

	return selected
}

// DeriveCityList returns the distinct trimmed city names of providers in the
// order each city is first seen. providers must already be filtered and sorted.
func DeriveCityList(providers []TransportProvider) []string {
	cities := make([]string, 0)
	seen := make(map[string]struct{})

	for _, p := range providers {
		city := strings.TrimSpace(p.City)
		if _, ok := seen[city]; ok {
			continue
		}
		seen[city] = struct{}{}
		cities = append(cities, city)
	}

	return cities
}
