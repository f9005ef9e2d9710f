package report

import (
	"strconv"

	"github.com/newtron-network/bgprecon/pkg/recon"
)

// Severity is the colour band of a STATUS cell.
type Severity int

const (
	SeverityGreen Severity = iota
	SeverityYellow
	SeverityRed
)

func (s Severity) String() string {
	switch s {
	case SeverityGreen:
		return "green"
	case SeverityYellow:
		return "yellow"
	case SeverityRed:
		return "red"
	}
	return "unknown"
}

// StatusSeverity maps a status label to its colour band:
//
//	red:    Not Migrated, !!REVIEW!!, or |delta| >= threshold
//	yellow: anything else that is not exactly "0" (OK and Old Migration included)
//	green:  "0"
//
// Labels that are not integers count as a zero delta for the threshold test.
func StatusSeverity(status string, threshold int) Severity {
	delta, err := strconv.Atoi(status)
	if err != nil {
		delta = 0
	}
	if delta < 0 {
		delta = -delta
	}

	switch {
	case status == recon.StatusNotMigrated, status == recon.StatusReview, delta >= threshold:
		return SeverityRed
	case status != "0":
		return SeverityYellow
	default:
		return SeverityGreen
	}
}

// Flagged returns the neighbors whose status is in the red band.
func Flagged(neighbors []recon.EnrichedNeighbor, threshold int) []recon.EnrichedNeighbor {
	var out []recon.EnrichedNeighbor
	for _, n := range neighbors {
		if StatusSeverity(n.Status, threshold) == SeverityRed {
			out = append(out, n)
		}
	}
	return out
}
