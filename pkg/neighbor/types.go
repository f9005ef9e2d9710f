// Package neighbor parses the router text exports that feed a migration
// reconciliation run: the pre-migration BGP summary, the interface/peer-IP
// table, the neighbor/VRF table, and the optional post-migration summary.
package neighbor

// Source names an input export. It appears in log fields and error messages.
type Source string

const (
	SourceOldNeighbors  Source = "old-neighbors"
	SourceOldInterfaces Source = "old-interfaces"
	SourceOldVRFs       Source = "old-vrfs"
	SourceNewNeighbors  Source = "new-neighbors"
)

// Minimum whitespace-separated fields per line, by source.
const (
	minNeighborFields    = 5
	minInterfaceFields   = 2
	minVRFFields         = 4
	minNewNeighborFields = 3
)

// ============================================================================
// Pre-migration records
// ============================================================================

// Record is one row of the pre-migration BGP summary.
type Record struct {
	IP           string
	AS           string
	UpDown       string // uptime/downtime, or "never"
	StateOrCount string // received prefix count, or a state such as "Idle"
}

// InterfaceBinding maps a local interface to its configured IP.
// The BGP neighbor on that link sits one address away.
type InterfaceBinding struct {
	Name   string
	PeerIP string
}

// VRFBinding assigns a neighbor to a VRF.
type VRFBinding struct {
	NeighborIP string
	VRF        string
}

// ============================================================================
// Post-migration records
// ============================================================================

// NewRecord is one row of the post-migration BGP summary.
type NewRecord struct {
	IP           string
	UpDown       string
	StateOrCount string
}
