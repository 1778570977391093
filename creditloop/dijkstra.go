package creditloop

import "container/heap"

// Step is one channel-dependency edge within a detected cycle: a switch
// and the physical in/out ports a route used back-to-back on it.
type Step struct {
	SwitchGUID uint64
	InPort     uint8
	OutPort    uint8
}

// Cycle is one detected credit loop, as a closed sequence of steps.
type Cycle struct {
	Steps []Step
}

// pqItem is a min-heap entry keyed by tentative distance, in the
// teacher's lazy-deletion style: stale entries may remain in the heap
// after a vertex's distance improves, and are skipped on Pop once their
// recorded distance no longer matches the authoritative one.
type pqItem struct {
	vertex uint64
	dist   int
}

type nodePQ []*pqItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// dijkstraFrom computes single-source shortest (unit-weight) distances
// from source over g, returning distances and predecessor links for
// every reached vertex.
func dijkstraFrom(g *depGraph, source uint64) (dist map[uint64]int, prev map[uint64]uint64) {
	dist = map[uint64]int{source: 0}
	prev = map[uint64]uint64{}

	pq := &nodePQ{{vertex: source, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		if item.dist > dist[item.vertex] {
			continue // stale heap entry
		}
		for _, e := range g.edges[item.vertex] {
			nd := item.dist + 1
			if cur, ok := dist[e.to]; !ok || nd < cur {
				dist[e.to] = nd
				prev[e.to] = item.vertex
				heap.Push(pq, &pqItem{vertex: e.to, dist: nd})
			}
		}
	}

	return dist, prev
}

// findCycles runs the all-pairs-via-repeated-single-source search
// described by the teacher's dijkstra package: for every vertex v and
// every direct successor u, the shortest path from u back to v (if any)
// closes a cycle through v. Cycles are deduplicated by canonical vertex
// signature so the same cycle found from different starting vertices is
// reported once.
func findCycles(g *depGraph) []Cycle {
	seen := map[string]bool{}
	var cycles []Cycle

	for _, v := range g.vertexIDs() {
		for _, e := range g.edges[v] {
			u := e.to
			dist, prev := dijkstraFrom(g, u)
			if _, ok := dist[v]; !ok {
				continue
			}

			// reconstructPath returns u, ..., v (v included at the end);
			// drop that trailing v before prepending it as the cycle's
			// start, so the vertex list has no duplicate.
			uToV := reconstructPath(prev, u, v)
			vertices := append([]uint64{v}, uToV[:len(uToV)-1]...)
			sig := canonicalSignature(vertices)
			if seen[sig] {
				continue
			}
			seen[sig] = true

			cycles = append(cycles, Cycle{Steps: extractSteps(g, vertices)})
		}
	}

	return cycles
}

// reconstructPath walks prev backwards from dest to source, returning
// the vertex sequence source, ..., dest (inclusive of both ends).
func reconstructPath(prev map[uint64]uint64, source, dest uint64) []uint64 {
	if source == dest {
		return []uint64{source}
	}
	var reversed []uint64
	for at := dest; ; {
		reversed = append(reversed, at)
		if at == source {
			break
		}
		at = prev[at]
	}
	path := make([]uint64, len(reversed))
	for i, v := range reversed {
		path[len(reversed)-1-i] = v
	}
	return path
}

// extractSteps keeps only the same-node edges along a closed vertex
// sequence (the intra-switch hops that are the actual channel
// dependencies) and reports them as Steps, in cycle order.
func extractSteps(g *depGraph, vertices []uint64) []Step {
	var steps []Step
	n := len(vertices)
	for i := 0; i < n; i++ {
		a := vertices[i]
		b := vertices[(i+1)%n]
		for _, e := range g.edges[a] {
			if e.to == b && e.sameNode {
				na, nb := g.nodes[a], g.nodes[b]
				steps = append(steps, Step{SwitchGUID: na.nodeGUID, InPort: na.portNum, OutPort: nb.portNum})
				break
			}
		}
	}
	return steps
}
