package trace

import (
	"github.com/ibanalysis/fabricroute/fabric"
	"github.com/ibanalysis/fabricroute/route"
)

// GenTraceRoute resolves the starting port for slid and builds the trace
// to dlid. See GenTraceRoutePort for the record semantics.
func GenTraceRoute(f *fabric.Fabric, slid, dlid uint16, opts ...Option) ([]fabric.TraceRecord, error) {
	start := f.FindLid(slid)
	if start == nil {
		return nil, route.ErrNotFound
	}
	return GenTraceRoutePort(start, dlid, opts...)
}

// GenTraceRoutePort walks the route from startPort to dlid and returns one
// fabric.TraceRecord per device visited, source to destination. Returns
// the partial-build contract: on any error the returned slice is nil, never
// a half-built trace.
func GenTraceRoutePort(startPort *fabric.Port, dlid uint16, opts ...Option) ([]fabric.TraceRecord, error) {
	o := buildOptions(opts)

	var records []fabric.TraceRecord
	err := route.WalkRoutePort(startPort, dlid, func(entry, exit *fabric.Port) error {
		if o.maxRecords > 0 && len(records) >= o.maxRecords {
			return route.ErrInsufficientMemory
		}
		records = append(records, recordFor(entry, exit))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// GenTraceRoutePath builds the trace for a previously synthesized path
// record's SLID/DLID pair.
func GenTraceRoutePath(f *fabric.Fabric, p fabric.PathRecord, opts ...Option) ([]fabric.TraceRecord, error) {
	return GenTraceRoute(f, p.SLID, p.DLID, opts...)
}

func recordFor(entry, exit *fabric.Port) fabric.TraceRecord {
	device := entry
	if device == nil {
		device = exit
	}

	r := fabric.TraceRecord{
		NodeType:        device.Node.Type,
		NodeGUID:        device.Node.GUID,
		SystemImageGUID: device.Node.SystemImageGUID,
	}
	if entry != nil {
		r.EntryPortID = entry.GUID
		r.EntryPort = entry.Num
	}
	if exit != nil {
		r.ExitPortID = exit.GUID
		r.ExitPort = exit.Num
	}

	return r
}
