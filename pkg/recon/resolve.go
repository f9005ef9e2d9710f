package recon

import (
	"github.com/newtron-network/bgprecon/pkg/neighbor"
	"github.com/newtron-network/bgprecon/pkg/util"
)

// NotAvailable is the sentinel for any join that found no match.
const NotAvailable = "N/A"

// ============================================================================
// Interface resolution
// ============================================================================

type interfaceEntry struct {
	name  string
	ip    uint32
	valid bool
}

// InterfaceTable finds the interface facing a neighbor by address adjacency:
// on a point-to-point link the neighbor's IP is the local IP plus or minus one.
type InterfaceTable struct {
	entries []interfaceEntry
}

// NewInterfaceTable keeps bindings in input order, duplicates included.
// Unparseable peer IPs are kept but never match.
func NewInterfaceTable(bindings []neighbor.InterfaceBinding) *InterfaceTable {
	t := &InterfaceTable{entries: make([]interfaceEntry, 0, len(bindings))}
	for _, b := range bindings {
		ip, ok := util.IPv4ToUint32(b.PeerIP)
		if !ok {
			util.WithSource(string(neighbor.SourceOldInterfaces)).
				Debugf("interface %s has non-IPv4 address %q", b.Name, b.PeerIP)
		}
		t.entries = append(t.entries, interfaceEntry{name: b.Name, ip: ip, valid: ok})
	}
	return t
}

// Resolve returns the first interface, in input order, whose address is
// sequential with neighborIP, or NotAvailable.
func (t *InterfaceTable) Resolve(neighborIP string) string {
	ip, ok := util.IPv4ToUint32(neighborIP)
	if !ok {
		return NotAvailable
	}
	for _, e := range t.entries {
		if e.valid && util.SequentialUint32(ip, e.ip) {
			return e.name
		}
	}
	return NotAvailable
}

// ============================================================================
// VRF resolution
// ============================================================================

// VRFTable maps neighbor IP to VRF name by exact match.
type VRFTable struct {
	byIP *lookupTable[string]
}

// NewVRFTable builds the table in input order; a repeated IP takes the VRF
// from its last line.
func NewVRFTable(bindings []neighbor.VRFBinding) *VRFTable {
	t := &VRFTable{byIP: newLookupTable[string](len(bindings))}
	for _, b := range bindings {
		if t.byIP.Put(b.NeighborIP, b.VRF) {
			util.WithSource(string(neighbor.SourceOldVRFs)).
				Debugf("neighbor %s listed more than once, using vrf %s", b.NeighborIP, b.VRF)
		}
	}
	return t
}

// Resolve returns the VRF bound to neighborIP, or NotAvailable.
func (t *VRFTable) Resolve(neighborIP string) string {
	if vrf, ok := t.byIP.Get(neighborIP); ok {
		return vrf
	}
	return NotAvailable
}

// Len returns the number of distinct neighbor IPs.
func (t *VRFTable) Len() int {
	return t.byIP.Len()
}

// ============================================================================
// Post-migration state resolution
// ============================================================================

type newState struct {
	upDown       string
	stateOrCount string
}

// NewStateTable maps neighbor IP to its post-migration up/down and
// state/prefix-count by exact match. An empty table is valid: it is what a
// pre-migration (dry) run uses, and every lookup yields the sentinel pair.
type NewStateTable struct {
	byIP *lookupTable[newState]
}

// NewNewStateTable builds the table in input order; a repeated IP takes the
// values from its last line.
func NewNewStateTable(records []neighbor.NewRecord) *NewStateTable {
	t := &NewStateTable{byIP: newLookupTable[newState](len(records))}
	for _, r := range records {
		if t.byIP.Put(r.IP, newState{upDown: r.UpDown, stateOrCount: r.StateOrCount}) {
			util.WithSource(string(neighbor.SourceNewNeighbors)).
				Debugf("neighbor %s listed more than once, using last entry", r.IP)
		}
	}
	return t
}

// Resolve returns the post-migration up/down and state/prefix-count for
// neighborIP, or NotAvailable for both.
func (t *NewStateTable) Resolve(neighborIP string) (upDown, stateOrCount string) {
	if s, ok := t.byIP.Get(neighborIP); ok {
		return s.upDown, s.stateOrCount
	}
	return NotAvailable, NotAvailable
}

// Len returns the number of distinct neighbor IPs.
func (t *NewStateTable) Len() int {
	return t.byIP.Len()
}

// Unmatched returns post-migration neighbor IPs that no pre-migration record
// carries, in first-seen order. They never appear on the report.
func (t *NewStateTable) Unmatched(records []neighbor.Record) []string {
	known := make(map[string]struct{}, len(records))
	for _, r := range records {
		known[r.IP] = struct{}{}
	}
	var out []string
	for _, ip := range t.byIP.Keys() {
		if _, ok := known[ip]; !ok {
			out = append(out, ip)
		}
	}
	return out
}
