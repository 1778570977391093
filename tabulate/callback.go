package tabulate

import (
	"sync/atomic"

	"github.com/ibanalysis/fabricroute/fabric"
	"github.com/ibanalysis/fabricroute/route"
)

// genericCallback counts a route's hops against every visited port's
// recv/xmit counters, splitting base-LID paths into the *BasePaths
// variants via atomic adds so it is safe under concurrent tabulation.
func genericCallback(isBase bool) route.Callback {
	return func(entry, exit *fabric.Port) error {
		if entry != nil {
			atomic.AddUint64(&entry.AnalysisData.RecvAllPaths, 1)
			if isBase {
				atomic.AddUint64(&entry.AnalysisData.RecvBasePaths, 1)
			}
		}
		if exit != nil {
			atomic.AddUint64(&exit.AnalysisData.XmitAllPaths, 1)
			if isBase {
				atomic.AddUint64(&exit.AnalysisData.XmitBasePaths, 1)
			}
		}
		return nil
	}
}

// fatTreeCallback classifies each exit hop as uplink (destination tier
// strictly greater than the current switch's tier) or downlink (lower,
// equal, or unknown-neighbor, per the stated approximation — route.c
// treats "no neighbor" the same as downlink and this module preserves
// that rather than inventing a third category it cannot yet classify).
func fatTreeCallback(isBase bool) route.Callback {
	return func(_, exit *fabric.Port) error {
		if exit == nil {
			return nil
		}
		if exit.Neighbor != nil && exit.Node.Tier < exit.Neighbor.Node.Tier {
			atomic.AddUint64(&exit.AnalysisData.UplinkAllPaths, 1)
			if isBase {
				atomic.AddUint64(&exit.AnalysisData.UplinkBasePaths, 1)
			}
		} else {
			atomic.AddUint64(&exit.AnalysisData.DownlinkAllPaths, 1)
			if isBase {
				atomic.AddUint64(&exit.AnalysisData.DownlinkBasePaths, 1)
			}
		}
		return nil
	}
}

func callbackFor(fatTree, isBase bool) route.Callback {
	if fatTree {
		return fatTreeCallback(isBase)
	}
	return genericCallback(isBase)
}
