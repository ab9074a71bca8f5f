package logic

import (
	"sort"

	"github.com/mattn/go-runewidth"

	"ebrowse/internal/domain"
)

// SortedCPVs returns the keys of index in lexicographic order. This order is
// the list order for the whole session.
func SortedCPVs(index map[string]domain.Package) []string {
	cpvs := make([]string, 0, len(index))
	for cpv := range index {
		cpvs = append(cpvs, cpv)
	}
	sort.Strings(cpvs)
	return cpvs
}

// WidestCPV returns the display width in cells of the widest cpv
func WidestCPV(cpvs []string) int {
	widest := 0
	for _, cpv := range cpvs {
		if w := runewidth.StringWidth(cpv); w > widest {
			widest = w
		}
	}
	return widest
}
