// Package report orders stacking-order records and renders them.
package report

import (
	"cmp"
	"slices"

	"github.com/harrison/zindex-tree/internal/models"
)

// Sort returns a copy of records ordered by numeric value, highest first.
// Values that do not parse as int32 sort as 0. Equal keys keep their input order.
func Sort(records []models.StackingOrderRecord) []models.StackingOrderRecord {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b models.StackingOrderRecord) int {
		return cmp.Compare(b.SortKey(), a.SortKey())
	})
	return out
}
