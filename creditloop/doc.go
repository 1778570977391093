// Package creditloop detects cyclic channel dependencies (credit loops)
// across a fabric's routing: it builds a directed dependency graph from
// every host-to-host route, prunes vertices that can't participate in a
// cycle, splits the remainder into weakly connected components, and runs
// a Dijkstra-based cycle search over each component.
package creditloop
