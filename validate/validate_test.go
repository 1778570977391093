package validate_test

import (
	"errors"
	"testing"

	"github.com/ibanalysis/fabricroute/fabric"
	"github.com/ibanalysis/fabricroute/route"
	"github.com/ibanalysis/fabricroute/validate"
)

func buildHostSwitchHost(t *testing.T) (*fabric.Fabric, *fabric.Port, *fabric.Port) {
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

	return f, h1p, h2p
}

func TestRoutes_AllGoodNoCallback(t *testing.T) {
	_, h1p, h2p := buildHostSwitchHost(t)

	called := false
	sum, err := validate.Routes(h1p, h2p, func(p1, p2 *fabric.Port, dlid uint16, isBase bool) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("Routes: %v", err)
	}
	if sum.TotalPaths != 1 || sum.BadPaths != 0 {
		t.Errorf("sum = %+v, want {1 0}", sum)
	}
	if called {
		t.Error("callback invoked for a successful route")
	}
}

func TestRoutes_BadPathInvokesCallback(t *testing.T) {
	f, h1p, h2p := buildHostSwitchHost(t)
	sw := f.Switches()[0]
	if err := f.SetLFT(sw, []byte{fabric.NoRoute, 1, fabric.NoRoute}); err != nil {
		t.Fatalf("SetLFT: %v", err)
	}

	var gotDlid uint16
	sum, err := validate.Routes(h1p, h2p, func(p1, p2 *fabric.Port, dlid uint16, isBase bool) error {
		gotDlid = dlid
		return nil
	})
	if err != nil {
		t.Fatalf("Routes: %v", err)
	}
	if sum.TotalPaths != 1 || sum.BadPaths != 1 {
		t.Errorf("sum = %+v, want {1 1}", sum)
	}
	if gotDlid != h2p.BaseLID {
		t.Errorf("gotDlid = %d, want %d", gotDlid, h2p.BaseLID)
	}
}

func TestRoutes_HopDetailClosesWithNilSentinel(t *testing.T) {
	f, h1p, h2p := buildHostSwitchHost(t)
	sw := f.Switches()[0]
	if err := f.SetLFT(sw, []byte{fabric.NoRoute, 1, fabric.NoRoute}); err != nil {
		t.Fatalf("SetLFT: %v", err)
	}

	var hops []*fabric.Port
	_, err := validate.Routes(h1p, h2p,
		func(p1, p2 *fabric.Port, dlid uint16, isBase bool) error { return nil },
		validate.WithHopDetail(func(port *fabric.Port) error {
			hops = append(hops, port)
			return nil
		}),
	)
	if err != nil {
		t.Fatalf("Routes: %v", err)
	}
	if len(hops) == 0 || hops[len(hops)-1] != nil {
		t.Fatalf("hops = %v, want a trailing nil sentinel", hops)
	}
}

func TestRoutes_UnavailablePropagates(t *testing.T) {
	f, h1p, h2p := buildHostSwitchHost(t)
	sw := f.Switches()[0]
	if err := f.SetLFT(sw, nil); err != nil {
		t.Fatalf("SetLFT: %v", err)
	}

	_, err := validate.Routes(h1p, h2p, nil)
	if !errors.Is(err, route.ErrUnavailable) {
		t.Fatalf("Routes = %v, want ErrUnavailable", err)
	}
}

func TestAllRoutes_CountsAcrossPairs(t *testing.T) {
	f, _, _ := buildHostSwitchHost(t)

	sum, err := validate.AllRoutes(f, nil)
	if err != nil {
		t.Fatalf("AllRoutes: %v", err)
	}
	// LID-bearing ports: h1p, swp (none, port nums !=0 skipped... switch
	// has no port-0 LID here), h2p => effectively 2 ports, 2 ordered pairs.
	if sum.TotalPaths != 2 {
		t.Errorf("TotalPaths = %d, want 2", sum.TotalPaths)
	}
}

func TestAllRoutes_ConcurrentMatchesSequential(t *testing.T) {
	f, _, _ := buildHostSwitchHost(t)

	seq, err := validate.AllRoutes(f, nil)
	if err != nil {
		t.Fatalf("AllRoutes sequential: %v", err)
	}
	par, err := validate.AllRoutes(f, nil, validate.WithConcurrency(4))
	if err != nil {
		t.Fatalf("AllRoutes concurrent: %v", err)
	}
	if seq != par {
		t.Errorf("sequential %+v != concurrent %+v", seq, par)
	}
}

func TestWithConcurrency_PanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for n <= 0")
		}
	}()
	validate.WithConcurrency(0)
}
