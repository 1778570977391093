package tabulate

import (
	"errors"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/ibanalysis/fabricroute/fabric"
	"github.com/ibanalysis/fabricroute/route"
	"github.com/ibanalysis/fabricroute/tier"
)

// Summary is the aggregate result of a tabulation pass.
type Summary struct {
	TotalPaths uint64
	BadPaths   uint64
}

// Route tabulates the single route from slid to dlid against the
// counters of every port it visits, treating it as a base-LID path.
func Route(f *fabric.Fabric, slid, dlid uint16, opts ...Option) error {
	o := buildOptions(opts)
	return route.WalkRoute(f, slid, dlid, callbackFor(o.fatTree, true))
}

// Routes tabulates every LMC-expanded destination from p1 to p2: the base
// walk to p2's base LID, then one walk per additional LMC offset. IB is
// destination-routed, so only p1 itself (not each of its own LMC-expanded
// LIDs) needs to be the walk's starting port.
//
// Returns route.ErrUnavailable immediately if any walk traverses a switch
// with no LFT — the partial Summary at that point is not returned, mirroring
// the "unsound to continue" contract the route package documents.
func Routes(p1, p2 *fabric.Port, opts ...Option) (Summary, error) {
	o := buildOptions(opts)
	cb := callbackFor(o.fatTree, true)

	var sum Summary
	count := uint16(1) << p2.LMC

	if err := route.WalkRoutePort(p1, p2.BaseLID, cb); err != nil {
		if errors.Is(err, route.ErrUnavailable) {
			return Summary{}, err
		}
		sum.TotalPaths++
		sum.BadPaths++
	} else {
		sum.TotalPaths++
	}

	lmcCB := callbackFor(o.fatTree, false)
	for offset := uint16(1); offset < count; offset++ {
		err := route.WalkRoutePort(p1, p2.BaseLID|offset, lmcCB)
		if err != nil {
			if errors.Is(err, route.ErrUnavailable) {
				return Summary{}, err
			}
			sum.TotalPaths++
			sum.BadPaths++
			continue
		}
		sum.TotalPaths++
	}

	return sum, nil
}

// CARoutes tabulates every host-interface-to-host-interface route in f,
// excluding loopback (p1 == p2) paths. It resets f's analysis data before
// accumulating, and runs tier.DetermineSwitchTiers first when WithFatTree
// is given.
//
// With WithConcurrency(n > 1), the outer source-port loop is fanned out
// across n workers; counters are accumulated with sync/atomic, so the
// Summary total is exact regardless of worker count, though which
// ErrUnavailable is surfaced first may vary between runs (the other
// in-flight workers are not proactively cancelled — matching the teacher's
// own "first error wins, cheaply" errgroup convention rather than
// complicating this with cooperative cancellation for a diagnostic tool).
func CARoutes(f *fabric.Fabric, opts ...Option) (Summary, error) {
	o := buildOptions(opts)
	f.ClearAnalysisData()
	if o.fatTree {
		tier.DetermineSwitchTiers(f)
	}

	var ports []*fabric.Port
	for _, n := range f.HostInterfaces() {
		ports = append(ports, n.SortedPorts()...)
	}

	var total, bad uint64

	if o.concurrency <= 1 {
		for _, p1 := range ports {
			for _, p2 := range ports {
				if p1 == p2 {
					continue
				}
				sum, err := Routes(p1, p2, opts...)
				if err != nil {
					return Summary{}, err
				}
				total += sum.TotalPaths
				bad += sum.BadPaths
			}
		}
		return Summary{TotalPaths: total, BadPaths: bad}, nil
	}

	var g errgroup.Group
	g.SetLimit(o.concurrency)
	for _, p1 := range ports {
		p1 := p1
		g.Go(func() error {
			for _, p2 := range ports {
				if p1 == p2 {
					continue
				}
				sum, err := Routes(p1, p2, opts...)
				if err != nil {
					return err
				}
				atomic.AddUint64(&total, sum.TotalPaths)
				atomic.AddUint64(&bad, sum.BadPaths)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	return Summary{TotalPaths: total, BadPaths: bad}, nil
}
