package validate

import (
	"errors"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/ibanalysis/fabricroute/fabric"
	"github.com/ibanalysis/fabricroute/route"
)

// Summary is the aggregate result of a validation pass.
type Summary struct {
	TotalPaths uint64
	BadPaths   uint64
}

// Callback reports one failing route, invoked once per bad (LFT-gap,
// loop, over-length, or wrong-endpoint) walk.
type Callback func(p1, p2 *fabric.Port, dlid uint16, isBase bool) error

// Routes validates every destination LID p2's LMC expansion can reach
// from p1, reporting each failure to callback. Returns route.ErrUnavailable
// immediately if any walk traverses a switch with no LFT.
func Routes(p1, p2 *fabric.Port, callback Callback, opts ...Option) (Summary, error) {
	o := buildOptions(opts)
	count := uint16(1) << p2.LMC

	var sum Summary
	for offset := uint16(0); offset < count; offset++ {
		dlid := p2.BaseLID | offset
		isBase := offset == 0

		err := route.WalkRoutePort(p1, dlid, func(entry, exit *fabric.Port) error { return nil })
		if errors.Is(err, route.ErrUnavailable) {
			return Summary{}, err
		}
		sum.TotalPaths++
		if err == nil {
			continue
		}

		sum.BadPaths++
		if callback != nil {
			if cbErr := callback(p1, p2, dlid, isBase); cbErr != nil {
				return Summary{}, cbErr
			}
		}
		if o.hopDetail != nil {
			_ = route.WalkRoutePort(p1, dlid, func(entry, exit *fabric.Port) error {
				if entry != nil {
					if err := o.hopDetail(entry); err != nil {
						return err
					}
				}
				if exit != nil {
					if err := o.hopDetail(exit); err != nil {
						return err
					}
				}
				return nil
			})
			if err := o.hopDetail(nil); err != nil {
				return Summary{}, err
			}
		}
	}

	return sum, nil
}

// AllRoutes validates every ordered pair of LID-bearing ports in f (host
// interfaces, or switch port 0), excluding loopback (p1 == p2) paths.
//
// With WithConcurrency(n > 1), the outer source-port loop is fanned out
// across n workers; counters are accumulated with sync/atomic, so the
// Summary total is exact regardless of worker count.
func AllRoutes(f *fabric.Fabric, callback Callback, opts ...Option) (Summary, error) {
	o := buildOptions(opts)
	ports := lidBearingPorts(f)

	if o.concurrency <= 1 {
		var sum Summary
		for _, p1 := range ports {
			for _, p2 := range ports {
				if p1 == p2 {
					continue
				}
				s, err := Routes(p1, p2, callback, opts...)
				if err != nil {
					return Summary{}, err
				}
				sum.TotalPaths += s.TotalPaths
				sum.BadPaths += s.BadPaths
			}
		}
		return sum, nil
	}

	var total, bad uint64
	var g errgroup.Group
	g.SetLimit(o.concurrency)
	for _, p1 := range ports {
		p1 := p1
		g.Go(func() error {
			for _, p2 := range ports {
				if p1 == p2 {
					continue
				}
				s, err := Routes(p1, p2, callback, opts...)
				if err != nil {
					return err
				}
				atomic.AddUint64(&total, s.TotalPaths)
				atomic.AddUint64(&bad, s.BadPaths)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	return Summary{TotalPaths: total, BadPaths: bad}, nil
}

func lidBearingPorts(f *fabric.Fabric) []*fabric.Port {
	var ports []*fabric.Port
	for _, n := range f.Nodes() {
		for _, p := range n.SortedPorts() {
			if n.Type == fabric.Switch && p.Num != 0 {
				continue
			}
			ports = append(ports, p)
		}
	}
	return ports
}
