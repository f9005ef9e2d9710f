// Package recon correlates pre- and post-migration BGP neighbor exports and
// classifies each neighbor's migration outcome.
package recon

import (
	"fmt"
	"io"
	"time"

	"github.com/newtron-network/bgprecon/pkg/neighbor"
	"github.com/newtron-network/bgprecon/pkg/util"
)

// TimestampLayout formats the run timestamp (YYYYMMDDHHMMSS), which is also
// the report sheet name.
const TimestampLayout = "20060102150405"

// Clock returns the current time. Tests pass a fixed clock.
type Clock func() time.Time

// Sources are the four text exports of one run. NewNeighbors is nil when no
// post-migration export was supplied.
type Sources struct {
	Neighbors    io.Reader
	Interfaces   io.Reader
	VRFs         io.Reader
	NewNeighbors io.Reader
}

// EnrichedNeighbor is one pre-migration neighbor joined with everything the
// other sources say about it. Unresolved fields hold NotAvailable.
type EnrichedNeighbor struct {
	neighbor.Record
	Interface       string
	VRF             string
	NewUpDown       string
	NewStateOrCount string
	Status          string
}

// Result is the output of Run: one EnrichedNeighbor per pre-migration
// record, in input order.
type Result struct {
	Timestamp string
	Neighbors []EnrichedNeighbor
}

// Run parses all sources, resolves interface, VRF, and post-migration state
// for every pre-migration neighbor, and classifies each one. It fails only on
// unreadable or malformed input; unmatched joins resolve to NotAvailable.
func Run(src Sources, clock Clock) (*Result, error) {
	records, err := neighbor.ParseNeighbors(src.Neighbors)
	if err != nil {
		return nil, err
	}
	util.WithSource(string(neighbor.SourceOldNeighbors)).Debugf("parsed %d neighbors", len(records))

	bindings, err := neighbor.ParseInterfaces(src.Interfaces)
	if err != nil {
		return nil, err
	}
	util.WithSource(string(neighbor.SourceOldInterfaces)).Debugf("parsed %d interfaces", len(bindings))

	vrfBindings, err := neighbor.ParseVRFs(src.VRFs)
	if err != nil {
		return nil, err
	}
	util.WithSource(string(neighbor.SourceOldVRFs)).Debugf("parsed %d vrf bindings", len(vrfBindings))

	newRecords, err := neighbor.ParseNewNeighbors(src.NewNeighbors)
	if err != nil {
		return nil, err
	}
	if src.NewNeighbors == nil {
		util.Infof("no post-migration export supplied, every neighbor resolves to %s", NotAvailable)
	} else {
		util.WithSource(string(neighbor.SourceNewNeighbors)).Debugf("parsed %d neighbors", len(newRecords))
	}

	vrfs := NewVRFTable(vrfBindings)
	newStates := NewNewStateTable(newRecords)
	util.WithFields(map[string]interface{}{
		"vrf_neighbors": vrfs.Len(),
		"new_neighbors": newStates.Len(),
	}).Debug("lookup tables built")
	for _, ip := range newStates.Unmatched(records) {
		util.WithSource(string(neighbor.SourceNewNeighbors)).
			Debugf("neighbor %s has no pre-migration record, not reported", ip)
	}

	result := &Result{
		Timestamp: clock().Format(TimestampLayout),
		Neighbors: Enrich(records, NewInterfaceTable(bindings), vrfs, newStates),
	}
	return result, nil
}

// Enrich joins each record against the three lookup tables and classifies it.
func Enrich(records []neighbor.Record, ifaces *InterfaceTable, vrfs *VRFTable, newStates *NewStateTable) []EnrichedNeighbor {
	out := make([]EnrichedNeighbor, 0, len(records))
	for _, r := range records {
		newUpDown, newStateOrCount := newStates.Resolve(r.IP)
		n := EnrichedNeighbor{
			Record:          r,
			Interface:       ifaces.Resolve(r.IP),
			VRF:             vrfs.Resolve(r.IP),
			NewUpDown:       newUpDown,
			NewStateOrCount: newStateOrCount,
		}
		n.Status = Classify(r.UpDown, n.NewUpDown, r.StateOrCount, n.NewStateOrCount)

		if n.Interface == NotAvailable || n.VRF == NotAvailable {
			util.WithField("neighbor", r.IP).Debugf("unresolved join: interface=%s vrf=%s", n.Interface, n.VRF)
		}
		out = append(out, n)
	}
	return out
}

// Summary counts neighbors per status Category.
type Summary struct {
	Total      int
	ByCategory map[Category]int
}

// Summarize tallies a run's neighbors.
func Summarize(neighbors []EnrichedNeighbor) Summary {
	s := Summary{Total: len(neighbors), ByCategory: make(map[Category]int, len(Categories))}
	for _, n := range neighbors {
		s.ByCategory[Categorize(n.Status)]++
	}
	return s
}

// String renders the non-zero counts in Categories order.
func (s Summary) String() string {
	out := fmt.Sprintf("%d neighbors", s.Total)
	for _, c := range Categories {
		if n := s.ByCategory[c]; n > 0 {
			out += fmt.Sprintf(", %s=%d", c, n)
		}
	}
	return out
}
