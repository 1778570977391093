package route

import "github.com/ibanalysis/fabricroute/fabric"

// lookupLFT resolves (switch node, dlid) to the port on that switch that
// a packet toward dlid would exit through, or nil if there is no viable
// route. A nil result means: dlid is zero, dlid is out of range for the
// table, the table entry is fabric.NoRoute, the looked-up port doesn't
// exist, the port is not initialized, or (for a non-zero port) the port
// has no physical neighbor.
//
// Management-only (VL15) paths through an Initialize-but-unconnected port
// are deliberately rejected: analysis here targets data-path viability.
func lookupLFT(n *fabric.Node, dlid uint16) *fabric.Port {
	sw := n.Switch
	if sw == nil || dlid == 0 || int(dlid) >= sw.LinearFDBSize() {
		return nil
	}

	portNum := sw.FDB[dlid]
	if portNum == fabric.NoRoute {
		return nil
	}

	p := fabric.FindNodePort(n, portNum)
	if p == nil || !p.State.Initialized() {
		return nil
	}
	if portNum != 0 && p.Neighbor == nil {
		return nil
	}

	return p
}
