package tier_test

import (
	"testing"

	"github.com/ibanalysis/fabricroute/fabric"
	"github.com/ibanalysis/fabricroute/tier"
)

// buildThreeTierFabric builds h1 -- sw1 -- sw2 -- sw3 -- h2, classic
// fat-tree shape of depth 3.
func buildThreeTierFabric(t *testing.T) (*fabric.Fabric, map[string]*fabric.Node) {
	t.Helper()
	f := fabric.New()
	nodes := map[string]*fabric.Node{}

	h1, _ := f.AddNode(1, fabric.HostInterface, "h1")
	sw1, _ := f.AddNode(2, fabric.Switch, "sw1")
	sw2, _ := f.AddNode(3, fabric.Switch, "sw2")
	sw3, _ := f.AddNode(4, fabric.Switch, "sw3")
	h2, _ := f.AddNode(5, fabric.HostInterface, "h2")
	nodes["h1"], nodes["sw1"], nodes["sw2"], nodes["sw3"], nodes["h2"] = h1, sw1, sw2, sw3, h2

	h1p, _ := f.AddPort(h1, 1, 0x1, 0xfe80, 1, 0)
	sw1p1, _ := f.AddPort(sw1, 1, 0x2, 0xfe80, 0, 0)
	sw1p2, _ := f.AddPort(sw1, 2, 0x3, 0xfe80, 0, 0)
	sw2p1, _ := f.AddPort(sw2, 1, 0x4, 0xfe80, 0, 0)
	sw2p2, _ := f.AddPort(sw2, 2, 0x5, 0xfe80, 0, 0)
	sw3p1, _ := f.AddPort(sw3, 1, 0x6, 0xfe80, 0, 0)
	sw3p2, _ := f.AddPort(sw3, 2, 0x7, 0xfe80, 0, 0)
	h2p, _ := f.AddPort(h2, 1, 0x8, 0xfe80, 2, 0)

	f.Link(h1p, sw1p1)
	f.Link(sw1p2, sw2p1)
	f.Link(sw2p2, sw3p1)
	f.Link(sw3p2, h2p)

	return f, nodes
}

func TestDetermineSwitchTiers(t *testing.T) {
	f, nodes := buildThreeTierFabric(t)

	tier.DetermineSwitchTiers(f)

	want := map[string]int{"sw1": 1, "sw2": 2, "sw3": 1}
	for name, wantTier := range want {
		if got := nodes[name].Tier; got != wantTier {
			t.Errorf("%s.Tier = %d, want %d", name, got, wantTier)
		}
	}
}

func TestDetermineSwitchTiers_IsolatedSwitchStaysZero(t *testing.T) {
	f, _ := buildThreeTierFabric(t)
	isolated, _ := f.AddNode(99, fabric.Switch, "isolated")

	tier.DetermineSwitchTiers(f)

	if isolated.Tier != 0 {
		t.Errorf("isolated.Tier = %d, want 0", isolated.Tier)
	}
}
