package remote

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// SortTargets returns a copy of targets in stable display order:
// case-insensitive by name, ties broken by ID.
func SortTargets(targets []Target) []Target {
	sorted := make([]Target, len(targets))
	copy(sorted, targets)
	sort.SliceStable(sorted, func(i, j int) bool {
		a := strings.ToLower(sorted[i].Name)
		b := strings.ToLower(sorted[j].Name)
		if a != b {
			return a < b
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// FindTarget returns the target with the given ID, or nil.
func FindTarget(targets []Target, id string) *Target {
	t, ok := lo.Find(targets, func(t Target) bool { return t.ID == id })
	if !ok {
		return nil
	}
	return &t
}

// AdjacentTarget resolves the neighbor of the selected target within the
// available subset of a sorted target list. dir > 0 means the following
// entry ("next"), dir < 0 the preceding one ("previous"). Returns nil
// when the selected target is missing, at the end of the list in that
// direction, or when no alternate target exists.
func AdjacentTarget(targets []Target, selectedID string, dir int) *Target {
	available := lo.Filter(targets, func(t Target, _ int) bool { return t.Available })
	_, idx, ok := lo.FindIndexOf(available, func(t Target) bool { return t.ID == selectedID })
	if !ok || dir == 0 {
		return nil
	}
	var n int
	if dir > 0 {
		n = idx + 1
	} else {
		n = idx - 1
	}
	if n < 0 || n >= len(available) {
		return nil
	}
	t := available[n]
	return &t
}
