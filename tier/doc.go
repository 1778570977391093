// Package tier classifies each switch in a fabric into a fat-tree tier by
// distance from the host-interface layer: any switch directly attached to
// a host interface is tier 1, and tier assignment then expands outward one
// frontier at a time exactly like a multi-source breadth-first search
// seeded from every tier-1 switch simultaneously.
package tier
