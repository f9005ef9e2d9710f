package recon

import "strconv"

// Status labels produced by Classify besides signed prefix-count deltas.
const (
	StatusOK           = "OK"
	StatusNotMigrated  = "Not Migrated"
	StatusOldMigration = "Old Migration"
	StatusReview       = "!!REVIEW!!"
)

// Classify derives a neighbor's migration status from its old and new
// state/prefix-count values. Rules are evaluated in order, first match wins:
//
//  1. both values are integers: the delta new-old as a signed decimal ("-2", "0", "15")
//  2. both values are down states (Idle/Active): StatusOK
//  3. no post-migration record (new is NotAvailable): StatusNotMigrated
//  4. old was a down state: StatusOldMigration
//  5. anything else: StatusReview
//
// Up/down durations do not influence the result.
func Classify(oldUpDown, newUpDown, oldState, newState string) string {
	oldCount, oldErr := strconv.Atoi(oldState)
	newCount, newErr := strconv.Atoi(newState)
	if oldErr == nil && newErr == nil {
		return strconv.Itoa(newCount - oldCount)
	}

	switch {
	case isDownState(oldState) && isDownState(newState):
		return StatusOK
	case newState == NotAvailable:
		return StatusNotMigrated
	case isDownState(oldState):
		return StatusOldMigration
	default:
		return StatusReview
	}
}

// isDownState reports whether s is a non-established BGP session state.
func isDownState(s string) bool {
	return s == "Idle" || s == "Active"
}

// Category groups status labels for summaries.
type Category string

const (
	CategoryUnchanged    Category = "unchanged"     // delta "0"
	CategoryDelta        Category = "prefix-delta"  // any other numeric delta
	CategoryBothDown     Category = "both-down"     // StatusOK
	CategoryOldMigration Category = "old-migration" // StatusOldMigration
	CategoryNotMigrated  Category = "not-migrated"  // StatusNotMigrated
	CategoryReview       Category = "review"        // StatusReview
)

// Categories lists every Category in display order.
var Categories = []Category{
	CategoryUnchanged,
	CategoryDelta,
	CategoryBothDown,
	CategoryOldMigration,
	CategoryNotMigrated,
	CategoryReview,
}

// Categorize maps a status label produced by Classify to its Category.
func Categorize(status string) Category {
	switch status {
	case "0":
		return CategoryUnchanged
	case StatusOK:
		return CategoryBothDown
	case StatusOldMigration:
		return CategoryOldMigration
	case StatusNotMigrated:
		return CategoryNotMigrated
	}
	if _, err := strconv.Atoi(status); err == nil {
		return CategoryDelta
	}
	return CategoryReview
}
