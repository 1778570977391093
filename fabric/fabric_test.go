package fabric_test

import (
	"testing"

	"github.com/ibanalysis/fabricroute/fabric"
)

func twoHostFabric(t *testing.T) (*fabric.Fabric, *fabric.Port, *fabric.Port) {
	t.Helper()

	f := fabric.New()
	h1, err := f.AddNode(1, fabric.HostInterface, "host1")
	if err != nil {
		t.Fatalf("AddNode h1: %v", err)
	}
	h2, err := f.AddNode(2, fabric.HostInterface, "host2")
	if err != nil {
		t.Fatalf("AddNode h2: %v", err)
	}
	p1, err := f.AddPort(h1, 1, 0x1001, 0xfe80, 1, 0)
	if err != nil {
		t.Fatalf("AddPort p1: %v", err)
	}
	p2, err := f.AddPort(h2, 1, 0x1002, 0xfe80, 2, 0)
	if err != nil {
		t.Fatalf("AddPort p2: %v", err)
	}
	f.Link(p1, p2)

	return f, p1, p2
}

func TestFindLid(t *testing.T) {
	f, p1, p2 := twoHostFabric(t)

	if got := f.FindLid(1); got != p1 {
		t.Errorf("FindLid(1) = %v, want p1", got)
	}
	if got := f.FindLid(2); got != p2 {
		t.Errorf("FindLid(2) = %v, want p2", got)
	}
	if got := f.FindLid(3); got != nil {
		t.Errorf("FindLid(3) = %v, want nil", got)
	}
}

func TestFindLid_LMCRange(t *testing.T) {
	f := fabric.New()
	h, err := f.AddNode(1, fabric.HostInterface, "h")
	if err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	p, err := f.AddPort(h, 1, 0x1, 0xfe80, 4, 1) // LMC 1 => owns 4,5
	if err != nil {
		t.Fatalf("AddPort: %v", err)
	}

	for _, lid := range []uint16{4, 5} {
		if got := f.FindLid(lid); got != p {
			t.Errorf("FindLid(%d) = %v, want p", lid, got)
		}
	}
	if got := f.FindLid(6); got != nil {
		t.Errorf("FindLid(6) = %v, want nil", got)
	}
}

func TestFindNodePort(t *testing.T) {
	f, p1, _ := twoHostFabric(t)
	node := f.HostInterfaces()[0]

	if got := fabric.FindNodePort(node, node.SortedPorts()[0].Num); got == nil {
		t.Fatalf("FindNodePort returned nil for existing port")
	}
	if got := fabric.FindNodePort(node, 99); got != nil {
		t.Errorf("FindNodePort(99) = %v, want nil", got)
	}
	_ = p1
}

func TestDuplicateNodeAndPort(t *testing.T) {
	f := fabric.New()
	n, err := f.AddNode(1, fabric.HostInterface, "h")
	if err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if _, err = f.AddNode(1, fabric.HostInterface, "dup"); err != fabric.ErrDuplicateNode {
		t.Errorf("AddNode dup = %v, want ErrDuplicateNode", err)
	}
	if _, err = f.AddPort(n, 1, 1, 1, 1, 0); err != nil {
		t.Fatalf("AddPort: %v", err)
	}
	if _, err = f.AddPort(n, 1, 2, 1, 2, 0); err != fabric.ErrDuplicatePort {
		t.Errorf("AddPort dup = %v, want ErrDuplicatePort", err)
	}
}

func TestSetLFTRejectsHostInterface(t *testing.T) {
	f := fabric.New()
	n, err := f.AddNode(1, fabric.HostInterface, "h")
	if err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err = f.SetLFT(n, []byte{0, 1}); err != fabric.ErrBadLFT {
		t.Errorf("SetLFT on host = %v, want ErrBadLFT", err)
	}
}

func TestClearAnalysisData(t *testing.T) {
	f, p1, _ := twoHostFabric(t)
	p1.AnalysisData.RecvAllPaths = 42
	p1.Node.Tier = 3

	f.ClearAnalysisData()

	if p1.AnalysisData != (fabric.AnalysisData{}) {
		t.Errorf("AnalysisData not cleared: %+v", p1.AnalysisData)
	}
	if p1.Node.Tier != 0 {
		t.Errorf("Tier not cleared: %d", p1.Node.Tier)
	}
}

func TestNodesSortedByGUID(t *testing.T) {
	f := fabric.New()
	for _, guid := range []uint64{5, 1, 3} {
		if _, err := f.AddNode(guid, fabric.HostInterface, "h"); err != nil {
			t.Fatalf("AddNode(%d): %v", guid, err)
		}
	}

	nodes := f.Nodes()
	want := []uint64{1, 3, 5}
	for i, n := range nodes {
		if n.GUID != want[i] {
			t.Errorf("Nodes()[%d].GUID = %d, want %d", i, n.GUID, want[i])
		}
	}
}
