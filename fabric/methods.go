package fabric

import "sort"

// FindLid returns the Port in the fabric whose LMC-expanded LID range
// contains lid, or nil if no such port exists. Host-interface ports and
// switch port 0 both carry LIDs; physical switch ports (num != 0) never
// do and are skipped.
//
// Complexity: O(nodes * ports); snapshots are small enough (thousands of
// ports) that a linear scan is simpler and just as fast in practice as
// maintaining a secondary LID index that the mutation paths would then
// have to keep consistent.
func (f *Fabric) FindLid(lid uint16) *Port {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, n := range f.nodes {
		for _, p := range n.Ports {
			if n.Type == Switch && p.Num != 0 {
				continue
			}
			if p.BaseLID == 0 {
				continue
			}
			if p.OwnsLID(lid) {
				return p
			}
		}
	}

	return nil
}

// FindNodePort returns node's port numbered portNum, or nil if absent.
func FindNodePort(n *Node, portNum uint8) *Port {
	if n == nil {
		return nil
	}

	return n.Ports[portNum]
}

// Nodes returns every node in the fabric, sorted by GUID ascending for
// deterministic iteration.
func (f *Fabric) Nodes() []*Node {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]*Node, 0, len(f.nodes))
	for _, n := range f.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GUID < out[j].GUID })

	return out
}

// HostInterfaces returns every host-interface node, GUID-sorted.
func (f *Fabric) HostInterfaces() []*Node {
	return f.nodesOfType(HostInterface)
}

// Switches returns every switch node, GUID-sorted.
func (f *Fabric) Switches() []*Node {
	return f.nodesOfType(Switch)
}

func (f *Fabric) nodesOfType(t NodeType) []*Node {
	all := f.Nodes()
	out := make([]*Node, 0, len(all))
	for _, n := range all {
		if n.Type == t {
			out = append(out, n)
		}
	}

	return out
}

// SortedPorts returns every port on n, sorted by port number ascending.
func (n *Node) SortedPorts() []*Port {
	out := make([]*Port, 0, len(n.Ports))
	for _, p := range n.Ports {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Num < out[j].Num })

	return out
}

// ClearAnalysisData resets every port's AnalysisData counters and every
// node's Tier scalar to zero. Tabulate must call this before accumulating
// into fresh counters; Tier classification relies on Tier starting at 0
// ("unassigned").
func (f *Fabric) ClearAnalysisData() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, n := range f.nodes {
		n.Tier = 0
		for _, p := range n.Ports {
			p.AnalysisData = AnalysisData{}
		}
	}
}
