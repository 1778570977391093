package route

import "github.com/ibanalysis/fabricroute/fabric"

// Callback is invoked once per device visited along a walked route.
//
//   - For the originating host interface: entry is nil, exit is the
//     starting port.
//   - For an intermediate switch: both entry and exit are non-nil and
//     belong to the same node.
//   - When a switch's port 0 is the start or end of the route, it is
//     provided as the entry (start case) or exit (end case) alongside the
//     physical port on the other side, mirroring how subnet-manager
//     TraceRoute records report switch-port-0 boundaries.
//   - For the terminal host interface: exit is nil, entry is the last hop.
//
// A nil return continues the walk; any other error aborts it immediately
// and is propagated verbatim as the result of WalkRoutePort/WalkRoute.
type Callback func(entry, exit *fabric.Port) error

// WalkRoute locates the starting port for slid and walks the route it
// would take to dlid, invoking callback once per device. Returns
// ErrNotFound if no port in the fabric owns slid.
func WalkRoute(f *fabric.Fabric, slid, dlid uint16, callback Callback) error {
	start := f.FindLid(slid)
	if start == nil {
		return ErrNotFound
	}

	return WalkRoutePort(start, dlid, callback)
}

// WalkRoutePort walks the route that a packet addressed to dlid would take
// starting from startPort, invoking callback once per device in strict
// source-to-destination order.
//
// Returns nil on success; ErrUnavailable if any traversed switch lacks an
// LFT; ErrNotDone on a dead end, loop, over-length path, or arrival at the
// wrong endpoint; or the first non-nil error returned by callback,
// returned verbatim and halting the walk immediately.
func WalkRoutePort(startPort *fabric.Port, dlid uint16, callback Callback) error {
	portp := startPort

	if portp.Node.Type != fabric.Switch {
		// First device in the route: no entry port, exit is startPort.
		if err := callback(nil, portp); err != nil {
			return err
		}
		portp = portp.Neighbor
		if portp == nil {
			return ErrNotDone
		}
	}

	// The first iteration may legitimately start at a switch's port 0
	// (when startPort was port 0). Arriving at port 0 on any later
	// iteration means we have reached our destination switch.
	var hops []*fabric.Port
	for first := true; portp.Node.Type == fabric.Switch && (first || portp.Num != 0); first = false {
		if len(hops) >= maxHops {
			return ErrNotDone
		}
		for _, h := range hops {
			if h == portp {
				return ErrNotDone
			}
		}
		hops = append(hops, portp)

		node := portp.Node
		if node.Switch == nil || node.Switch.LinearFDBSize() == 0 {
			return ErrUnavailable
		}

		exit := lookupLFT(node, dlid)
		if exit == nil {
			return ErrNotDone
		}

		if err := callback(portp, exit); err != nil {
			return err
		}

		if exit.Node == node && exit.Num == 0 {
			portp = exit
		} else {
			portp = exit.Neighbor
			if portp == nil {
				return ErrNotDone
			}
		}
	}

	// Arrived at the destination of dlid: either a host interface or
	// port 0 of a switch. Verify it actually owns the requested DLID.
	if !portp.OwnsLID(dlid) {
		return ErrNotDone
	}

	if portp.Node.Type != fabric.Switch {
		if err := callback(portp, nil); err != nil {
			return err
		}
	}

	return nil
}
