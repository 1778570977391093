package pathrec_test

import (
	"testing"

	"github.com/ibanalysis/fabricroute/fabric"
	"github.com/ibanalysis/fabricroute/pathrec"
)

func TestGenPaths_LMCExpansion(t *testing.T) {
	f := fabric.New()
	h1, _ := f.AddNode(1, fabric.HostInterface, "h1")
	h2, _ := f.AddNode(2, fabric.HostInterface, "h2")
	p1, _ := f.AddPort(h1, 1, 0x10, 0xfe80, 1, 1) // LMC 1 => 2 offsets
	p2, _ := f.AddPort(h2, 1, 0x20, 0xfe80, 4, 0)

	got, err := pathrec.GenPaths(p1, p2)
	if err != nil {
		t.Fatalf("GenPaths: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	want := []struct{ slid, dlid uint16 }{{1, 4}, {1, 5}} // 1|1 == 1, 4|1 == 5
	for i, w := range want {
		if got[i].SLID != w.slid || got[i].DLID != w.dlid {
			t.Errorf("record %d = (slid=%d dlid=%d), want (slid=%d dlid=%d)",
				i, got[i].SLID, got[i].DLID, w.slid, w.dlid)
		}
	}
}

func TestGenPaths_NoLidReturnsEmpty(t *testing.T) {
	f := fabric.New()
	sw, _ := f.AddNode(1, fabric.Switch, "sw")
	h, _ := f.AddNode(2, fabric.HostInterface, "h")
	swp, _ := f.AddPort(sw, 1, 0x10, 0xfe80, 0, 0) // physical switch port: no LID
	hp, _ := f.AddPort(h, 1, 0x20, 0xfe80, 1, 0)

	got, err := pathrec.GenPaths(swp, hp)
	if err != nil {
		t.Fatalf("GenPaths: %v", err)
	}
	if got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
