package creditloop

// prune iteratively removes any vertex with zero in-degree or zero
// out-degree, since no such vertex can sit on a cycle. Repeating to a
// fixed point removes chains left dangling by an earlier removal, and
// running it again on an already-pruned graph is a no-op.
func prune(g *depGraph) {
	for {
		var dead []uint64
		for _, id := range g.vertexIDs() {
			if g.inDegree(id) == 0 || g.outDegree(id) == 0 {
				dead = append(dead, id)
			}
		}
		if len(dead) == 0 {
			return
		}
		for _, id := range dead {
			g.removeVertex(id)
		}
	}
}
