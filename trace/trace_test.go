package trace_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ibanalysis/fabricroute/fabric"
	"github.com/ibanalysis/fabricroute/route"
	"github.com/ibanalysis/fabricroute/trace"
)

func buildHostSwitchHost(t *testing.T) *fabric.Fabric {
	t.Helper()
	f := fabric.New()
	h1, _ := f.AddNode(1, fabric.HostInterface, "h1")
	sw, _ := f.AddNode(2, fabric.Switch, "sw")
	h2, _ := f.AddNode(3, fabric.HostInterface, "h2")

	h1p, _ := f.AddPort(h1, 1, 0x10, 0xfe80, 1, 0)
	swp1, _ := f.AddPort(sw, 1, 0x20, 0xfe80, 0, 0)
	swp2, _ := f.AddPort(sw, 2, 0x21, 0xfe80, 0, 0)
	h2p, _ := f.AddPort(h2, 1, 0x30, 0xfe80, 2, 0)

	f.Link(h1p, swp1)
	f.Link(swp2, h2p)
	if err := f.SetLFT(sw, []byte{fabric.NoRoute, 1, 2}); err != nil {
		t.Fatalf("SetLFT: %v", err)
	}

	return f
}

func TestGenTraceRoute(t *testing.T) {
	f := buildHostSwitchHost(t)

	got, err := trace.GenTraceRoute(f, 1, 2)
	if err != nil {
		t.Fatalf("GenTraceRoute: %v", err)
	}

	want := []fabric.TraceRecord{
		{NodeType: fabric.HostInterface, NodeGUID: 1, ExitPortID: 0x10, ExitPort: 1},
		{NodeType: fabric.Switch, NodeGUID: 2, EntryPortID: 0x20, EntryPort: 1, ExitPortID: 0x21, ExitPort: 2},
		{NodeType: fabric.HostInterface, NodeGUID: 3, EntryPortID: 0x30, EntryPort: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GenTraceRoute mismatch (-want +got):\n%s", diff)
	}
}

func TestGenTraceRoute_NotFound(t *testing.T) {
	f := buildHostSwitchHost(t)

	_, err := trace.GenTraceRoute(f, 99, 2)
	if !errors.Is(err, route.ErrNotFound) {
		t.Fatalf("GenTraceRoute = %v, want ErrNotFound", err)
	}
}

func TestGenTraceRoute_WithMaxRecordsExceeded(t *testing.T) {
	f := buildHostSwitchHost(t)

	_, err := trace.GenTraceRoute(f, 1, 2, trace.WithMaxRecords(2))
	if !errors.Is(err, route.ErrInsufficientMemory) {
		t.Fatalf("GenTraceRoute = %v, want ErrInsufficientMemory", err)
	}
}

func TestGenTraceRoute_WithMaxRecordsSufficient(t *testing.T) {
	f := buildHostSwitchHost(t)

	got, err := trace.GenTraceRoute(f, 1, 2, trace.WithMaxRecords(3))
	if err != nil {
		t.Fatalf("GenTraceRoute: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len(got) = %d, want 3", len(got))
	}
}

func TestWithMaxRecords_PanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for n <= 0")
		}
	}()
	trace.WithMaxRecords(0)
}

func TestGenTraceRoutePath(t *testing.T) {
	f := buildHostSwitchHost(t)

	got, err := trace.GenTraceRoutePath(f, fabric.PathRecord{SLID: 1, DLID: 2})
	if err != nil {
		t.Fatalf("GenTraceRoutePath: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len(got) = %d, want 3", len(got))
	}
}
