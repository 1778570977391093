package fabric

import "errors"

// Sentinel errors for snapshot construction. Analysis-time errors (missing
// LFT, dead-end routes, ...) live in package route, which is where callers
// encounter them; these are purely "you built the snapshot wrong" errors.
var (
	ErrDuplicateNode = errors.New("fabric: node GUID already present")
	ErrDuplicatePort = errors.New("fabric: port number already present on node")
	ErrUnknownNode   = errors.New("fabric: node not present in fabric")
	ErrBadLFT        = errors.New("fabric: LFT may only be set on a switch node")
)

// AddNode registers a new Node of the given type and GUID. Switches get a
// zero-value SwitchData (no LFT) until SetLFT is called; host interfaces
// never carry SwitchData.
func (f *Fabric) AddNode(guid uint64, typ NodeType, description string) (*Node, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.nodes[guid]; exists {
		return nil, ErrDuplicateNode
	}
	n := &Node{
		GUID:        guid,
		Type:        typ,
		Description: description,
		Ports:       make(map[uint8]*Port),
	}
	if typ == Switch {
		n.Switch = &SwitchData{}
	}
	f.nodes[guid] = n

	return n, nil
}

// AddPort registers a new Port on node n with the given local port
// number, GUID, subnet prefix, base LID and LMC. The port starts in
// PortStateActive with no neighbor; use Link to connect two ports, and set
// State directly to take a port out of service.
func (f *Fabric) AddPort(n *Node, num uint8, guid uint64, subnetPrefix uint64, baseLID uint16, lmc uint8) (*Port, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.nodes[n.GUID]; !exists {
		return nil, ErrUnknownNode
	}
	if _, exists := n.Ports[num]; exists {
		return nil, ErrDuplicatePort
	}
	p := &Port{
		Node:         n,
		Num:          num,
		GUID:         guid,
		SubnetPrefix: subnetPrefix,
		BaseLID:      baseLID,
		LMC:          lmc,
		State:        PortStateActive,
	}
	n.Ports[num] = p

	return p, nil
}

// Link connects two physical ports as neighbors of each other. Switch
// port 0 (the virtual management port) must never be linked — it has no
// physical neighbor by definition.
func (f *Fabric) Link(a, b *Port) {
	f.mu.Lock()
	defer f.mu.Unlock()

	a.Neighbor = b
	b.Neighbor = a
}

// SetLFT installs the linear forwarding table for a switch node. fdb[dlid]
// is the exit port number for that DLID, or NoRoute. fdb[0] is unused
// (DLID 0 is never a valid destination) but kept for direct indexing.
func (f *Fabric) SetLFT(n *Node, fdb []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if n.Type != Switch {
		return ErrBadLFT
	}
	if n.Switch == nil {
		n.Switch = &SwitchData{}
	}
	n.Switch.FDB = fdb

	return nil
}
