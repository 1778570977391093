package report

import (
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/ibanalysis/fabricroute/fabric"
	"github.com/ibanalysis/fabricroute/route"
)

// Callback reports one crossing of the report port for one (p1, p2, dlid)
// route. isBase is true when dlid is p2's base LID rather than an
// LMC-offset LID. In generic mode, flag is true when the report port was
// this hop's entry (and false for exit); in fat-tree mode (WithFatTree),
// flag is true for an uplink crossing and false for a downlink one.
type Callback func(p1, p2 *fabric.Port, dlid uint16, isBase, flag bool) error

// Routes re-walks every LMC-expanded route from p1 to p2 and invokes
// callback for each hop that crosses reportPort. Since tabulate.Routes is
// expected to have already run and accounted for bad (ErrNotDone) paths,
// this only reports successful crossings; an ErrNotDone walk contributes
// nothing and is not itself an error here.
func Routes(p1, p2, reportPort *fabric.Port, callback Callback, opts ...Option) error {
	o := buildOptions(opts)
	count := uint16(1) << p2.LMC

	walk := func(dlid uint16, isBase bool) error {
		cb := crossingCallback(reportPort, p1, p2, dlid, isBase, o.fatTree, callback)
		err := route.WalkRoutePort(p1, dlid, cb)
		if err != nil && errors.Is(err, route.ErrUnavailable) {
			return err
		}
		return nil
	}

	if err := walk(p2.BaseLID, true); err != nil {
		return err
	}
	for offset := uint16(1); offset < count; offset++ {
		if err := walk(p2.BaseLID|offset, false); err != nil {
			return err
		}
	}

	return nil
}

// CARoutes reports every host-interface-to-host-interface route crossing
// reportPort, excluding loopback (p1 == p2) paths.
//
// With WithConcurrency(n > 1), the outer source-port loop is fanned out
// across n workers; callback is then invoked concurrently and must be
// safe for that.
func CARoutes(f *fabric.Fabric, reportPort *fabric.Port, callback Callback, opts ...Option) error {
	o := buildOptions(opts)

	var ports []*fabric.Port
	for _, n := range f.HostInterfaces() {
		ports = append(ports, n.SortedPorts()...)
	}

	if o.concurrency <= 1 {
		for _, p1 := range ports {
			for _, p2 := range ports {
				if p1 == p2 {
					continue
				}
				if err := Routes(p1, p2, reportPort, callback, opts...); err != nil {
					return err
				}
			}
		}
		return nil
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
				if err := Routes(p1, p2, reportPort, callback, opts...); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func crossingCallback(reportPort, p1, p2 *fabric.Port, dlid uint16, isBase, fatTree bool, callback Callback) route.Callback {
	if fatTree {
		return func(_, exit *fabric.Port) error {
			if exit != reportPort {
				return nil
			}
			isUplink := exit.Neighbor != nil && exit.Node.Tier < exit.Neighbor.Node.Tier
			return callback(p1, p2, dlid, isBase, isUplink)
		}
	}

	return func(entry, exit *fabric.Port) error {
		if entry == reportPort {
			if err := callback(p1, p2, dlid, isBase, true); err != nil {
				return err
			}
		}
		if exit == reportPort {
			if err := callback(p1, p2, dlid, isBase, false); err != nil {
				return err
			}
		}
		return nil
	}
}
