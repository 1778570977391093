package creditloop

// split partitions g into its weakly connected components: components
// reachable from one another by following edges in either direction.
// Grounded on the teacher's BFS frontier-expansion shape, generalized
// here to treat every edge as undirected for reachability purposes.
func split(g *depGraph) []*depGraph {
	undirected := make(map[uint64][]uint64, len(g.nodes))
	for from, out := range g.edges {
		for _, e := range out {
			undirected[from] = append(undirected[from], e.to)
			undirected[e.to] = append(undirected[e.to], from)
		}
	}

	visited := make(map[uint64]bool, len(g.nodes))
	var components []*depGraph

	for _, start := range g.vertexIDs() {
		if visited[start] {
			continue
		}

		queue := []uint64{start}
		visited[start] = true
		var members []uint64
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			members = append(members, id)
			for _, next := range undirected[id] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}

		components = append(components, subgraph(g, members))
	}

	return components
}

// subgraph builds the induced subgraph of g over the given vertex set,
// keeping only edges whose endpoints are both members.
func subgraph(g *depGraph, members []uint64) *depGraph {
	memberSet := make(map[uint64]bool, len(members))
	for _, id := range members {
		memberSet[id] = true
	}

	sg := newDepGraph()
	for _, id := range members {
		sg.addNode(g.nodes[id])
	}
	for from, out := range g.edges {
		if !memberSet[from] {
			continue
		}
		for _, e := range out {
			if memberSet[e.to] {
				sg.edges[from] = append(sg.edges[from], e)
			}
		}
	}

	return sg
}
