package fabric

import "sync"

// NodeType distinguishes a host (channel/fabric) interface from a switch.
type NodeType uint8

const (
	// HostInterface is an end-node port's owning device (an "FI" in the
	// original InfiniBand/OPA terminology).
	HostInterface NodeType = iota
	// Switch is a fabric switching element with a linear forwarding table.
	Switch
)

func (t NodeType) String() string {
	switch t {
	case HostInterface:
		return "HostInterface"
	case Switch:
		return "Switch"
	default:
		return "Unknown"
	}
}

// PortState mirrors the subset of IB/OPA port states relevant to route
// analysis. Only Initialize and above are viable hops; Down and Nop
// (not yet Initialized) ports are never traversed.
type PortState uint8

const (
	PortStateNop PortState = iota
	PortStateDown
	PortStateInitialize
	PortStateArmed
	PortStateActive
)

// Initialized reports whether the port state is at least Initialize —
// the threshold at which a port becomes a viable route hop.
func (s PortState) Initialized() bool { return s >= PortStateInitialize }

// Node is a fabric device: a host interface or a switch.
type Node struct {
	GUID            uint64
	Type            NodeType
	Description     string
	SystemImageGUID uint64

	// Ports is keyed by local port number (0 is the switch management
	// port; >=1 are physical ports). Never nil once returned by New/AddNode.
	Ports map[uint8]*Port

	// Switch holds the LFT when Type == Switch; nil for host interfaces.
	Switch *SwitchData

	// Tier is the fat-tree tier assigned by the tier package, 0 until
	// classified. Mutated in place; cleared by ClearAnalysisData.
	Tier int
}

// SwitchData is a switch's linear forwarding table: FDB[dlid] is the exit
// port number toward dlid, or 0xFF to mean "no route". Entries are valid
// only for 0 < dlid < len(FDB) (LinearFDBSize).
type SwitchData struct {
	FDB []byte
}

// LinearFDBSize is the number of valid DLID entries in the table.
func (s *SwitchData) LinearFDBSize() int {
	if s == nil {
		return 0
	}
	return len(s.FDB)
}

// NoRoute is the LFT sentinel byte meaning "no route for this DLID".
const NoRoute byte = 0xFF

// AnalysisData is the mutable counter block attached to every Port. The
// two counter quadruples correspond to generic tabulation
// (recv/xmit * all/base) and fat-tree tabulation (uplink/downlink *
// all/base); the tabulate package populates one quadruple depending on
// whether it runs in fat-tree mode. The report package reads tiers but
// never writes these counters.
type AnalysisData struct {
	RecvAllPaths  uint64
	RecvBasePaths uint64
	XmitAllPaths  uint64
	XmitBasePaths uint64

	UplinkAllPaths    uint64
	UplinkBasePaths   uint64
	DownlinkAllPaths  uint64
	DownlinkBasePaths uint64
}

// Port is one port of a Node: its identity, LID range, link state, and
// the neighbor Port at the far end of its physical link (nil if
// unconnected or if this is switch port 0, which has no physical link).
type Port struct {
	Node *Node
	Num  uint8

	GUID          uint64
	SubnetPrefix  uint64
	BaseLID       uint16
	LMC           uint8 // 0-7; this port owns 2^LMC consecutive LIDs from BaseLID
	State         PortState
	Neighbor      *Port
	AnalysisData  AnalysisData
}

// LIDRange returns the inclusive [low, high] LID range owned by this
// port given its BaseLID and LMC.
func (p *Port) LIDRange() (low, high uint16) {
	mask := uint16(1<<p.LMC) - 1
	return p.BaseLID, p.BaseLID | mask
}

// OwnsLID reports whether dlid falls within this port's LMC-expanded
// LID range: BaseLID <= dlid <= BaseLID | (2^LMC - 1).
func (p *Port) OwnsLID(dlid uint16) bool {
	low, high := p.LIDRange()
	return dlid >= low && dlid <= high
}

// PathRecord is a synthesized subnet-administration path record between
// two ports. Fields beyond the GIDs and LIDs are deliberately left at
// their zero value, mirroring the original's "unknown, best guess" fields
// (PKey, MTU, Rate, ...) which this analysis never needs.
type PathRecord struct {
	SGIDPrefix, SGIDGUID uint64
	DGIDPrefix, DGIDGUID uint64
	SLID, DLID           uint16
}

// TraceRecord describes one device visited along a route, in the shape
// the subnet manager reports trace-route results (so a callback-built
// trace can double as an SM-style response if ever needed downstream).
type TraceRecord struct {
	NodeType        NodeType
	NodeGUID        uint64
	SystemImageGUID uint64

	// EntryPortID/ExitPortID are the entry/exit Port GUIDs, or 0 when
	// there is no entry (first device) or no exit (last device).
	EntryPortID, ExitPortID uint64
	// EntryPort/ExitPort are the corresponding port numbers, or 0.
	EntryPort, ExitPort uint8
}

// Fabric is the top-level read view over a snapshot: every node keyed by
// GUID. The host-interface/switch split is computed on each call to
// HostInterfaces or Switches; no separate partition is stored.
type Fabric struct {
	mu    sync.RWMutex
	nodes map[uint64]*Node
}

// New returns an empty Fabric snapshot ready for AddNode/AddPort/Link/SetLFT.
func New() *Fabric {
	return &Fabric{nodes: make(map[uint64]*Node)}
}
