package creditloop

import "sort"

// depNode identifies one port as a vertex of the channel-dependency graph.
type depNode struct {
	portGUID uint64
	nodeGUID uint64
	portNum  uint8
}

// depEdge is a directed dependency from one port to another: either an
// intra-switch hop (entry port to exit port on the same node, the
// classic channel dependency) or an inter-device hop across a physical
// link. slid/dlid tag the (SLID, DLID) path that produced the edge.
type depEdge struct {
	to       uint64 // to.portGUID
	slid     uint16
	dlid     uint16
	sameNode bool
}

// depGraph is the fabric-wide channel-dependency graph: directed,
// multi-edge-tolerant (the same two ports can be linked by more than one
// route), keyed by port GUID.
type depGraph struct {
	nodes map[uint64]depNode
	edges map[uint64][]depEdge
}

func newDepGraph() *depGraph {
	return &depGraph{
		nodes: make(map[uint64]depNode),
		edges: make(map[uint64][]depEdge),
	}
}

func (g *depGraph) addNode(n depNode) {
	if _, ok := g.nodes[n.portGUID]; !ok {
		g.nodes[n.portGUID] = n
	}
}

func (g *depGraph) addEdge(from, to depNode, slid, dlid uint16) {
	g.addNode(from)
	g.addNode(to)
	g.edges[from.portGUID] = append(g.edges[from.portGUID], depEdge{
		to:       to.portGUID,
		slid:     slid,
		dlid:     dlid,
		sameNode: from.nodeGUID == to.nodeGUID,
	})
}

func (g *depGraph) inDegree(portGUID uint64) int {
	n := 0
	for _, out := range g.edges {
		for _, e := range out {
			if e.to == portGUID {
				n++
			}
		}
	}
	return n
}

func (g *depGraph) outDegree(portGUID uint64) int {
	return len(g.edges[portGUID])
}

// vertexIDs returns every vertex's port GUID, sorted for deterministic
// iteration.
func (g *depGraph) vertexIDs() []uint64 {
	ids := make([]uint64, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (g *depGraph) vertexCount() int { return len(g.nodes) }

func (g *depGraph) edgeCount() int {
	n := 0
	for _, out := range g.edges {
		n += len(out)
	}
	return n
}

// merge folds other's nodes and edges into g, used to combine the
// per-worker partial graphs a concurrent build produces.
func (g *depGraph) merge(other *depGraph) {
	for id, n := range other.nodes {
		if _, ok := g.nodes[id]; !ok {
			g.nodes[id] = n
		}
	}
	for from, out := range other.edges {
		g.edges[from] = append(g.edges[from], out...)
	}
}

// linkKey identifies one physical (inter-device) link by its endpoint
// port GUIDs.
type linkKey struct {
	from, to uint64
}

// physicalLinkRouteCounts tallies, for every inter-device edge in g (the
// physical links the dependency graph crosses, as opposed to the
// intra-switch channel-dependency edges), how many routes crossed it.
// Returned keys are sorted by (from, to) for deterministic iteration.
func (g *depGraph) physicalLinkRouteCounts() ([]linkKey, map[linkKey]int) {
	counts := make(map[linkKey]int)
	for from, out := range g.edges {
		for _, e := range out {
			if e.sameNode {
				continue
			}
			counts[linkKey{from: from, to: e.to}]++
		}
	}
	keys := make([]linkKey, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].from != keys[j].from {
			return keys[i].from < keys[j].from
		}
		return keys[i].to < keys[j].to
	})
	return keys, counts
}

// removeVertex deletes a vertex and every edge touching it.
func (g *depGraph) removeVertex(portGUID uint64) {
	delete(g.nodes, portGUID)
	delete(g.edges, portGUID)
	for from, out := range g.edges {
		kept := out[:0]
		for _, e := range out {
			if e.to != portGUID {
				kept = append(kept, e)
			}
		}
		g.edges[from] = kept
	}
}
