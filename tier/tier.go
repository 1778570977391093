package tier

import "github.com/ibanalysis/fabricroute/fabric"

// DetermineSwitchTiers assigns fabric.Node.Tier to every switch in f.
// Switches directly neighboring a host interface are tier 1; every other
// switch's tier is one more than the lowest tier of any neighboring
// switch already classified, discovered by expanding outward one frontier
// at a time from the tier-1 set. Switches unreachable from any host
// interface (isolated switch clusters) are left at Tier 0.
//
// Per route.c's own neighbor walk, only a switch's physical ports are
// inspected for fat-tree adjacency — port 0 has no physical neighbor by
// construction, so the apparent absence of "downlink via port 0" here is
// the same fixed point the original model reaches, not a gap introduced
// by this port.
func DetermineSwitchTiers(f *fabric.Fabric) {
	var frontier []*fabric.Node

	for _, host := range f.HostInterfaces() {
		for _, p := range host.SortedPorts() {
			if p.Neighbor == nil || p.Neighbor.Node.Type != fabric.Switch {
				continue
			}
			sw := p.Neighbor.Node
			if sw.Tier == 0 {
				sw.Tier = 1
				frontier = append(frontier, sw)
			}
		}
	}

	for tier := 2; len(frontier) > 0; tier++ {
		var next []*fabric.Node
		for _, sw := range frontier {
			for _, p := range sw.SortedPorts() {
				if p.Neighbor == nil || p.Neighbor.Node.Type != fabric.Switch {
					continue
				}
				neighbor := p.Neighbor.Node
				if neighbor.Tier == 0 {
					neighbor.Tier = tier
					next = append(next, neighbor)
				}
			}
		}
		frontier = next
	}
}
