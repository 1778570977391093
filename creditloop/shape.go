package creditloop

import "github.com/ibanalysis/fabricroute/fabric"

// traceShape classifies how a []fabric.TraceRecord slice relates to a
// complete source-to-destination trace. A subnet manager is occasionally
// known to omit the originating or terminating hop from a trace-route
// response; traceShape names the three cases instead of branching on it
// ad hoc wherever a trace is consumed.
type traceShape int

const (
	// FullTrace has both a head record with no entry port (the true
	// source) and a tail record with no exit port (the true
	// destination).
	FullTrace traceShape = iota
	// MissingHead has no record for the source device: the first
	// record already has a non-zero EntryPortID.
	MissingHead
	// MissingTail has no record for the destination device: the last
	// record already has a non-zero ExitPortID.
	MissingTail
)

// classifyTraceShape inspects records (assumed non-empty) and reports
// which hops, if any, are missing from the head or tail.
func classifyTraceShape(records []fabric.TraceRecord) traceShape {
	head := records[0]
	tail := records[len(records)-1]

	switch {
	case head.EntryPortID != 0:
		return MissingHead
	case tail.ExitPortID != 0:
		return MissingTail
	default:
		return FullTrace
	}
}

// repairTrace normalizes records to FullTrace shape by synthesizing the
// missing head or tail record from the known endpoint ports p1 (source)
// and p2 (destination). FullTrace input is returned unchanged.
func repairTrace(records []fabric.TraceRecord, p1, p2 *fabric.Port) []fabric.TraceRecord {
	switch classifyTraceShape(records) {
	case MissingHead:
		head := fabric.TraceRecord{
			NodeType:        p1.Node.Type,
			NodeGUID:        p1.Node.GUID,
			SystemImageGUID: p1.Node.SystemImageGUID,
			ExitPortID:      p1.GUID,
			ExitPort:        p1.Num,
		}
		out := make([]fabric.TraceRecord, 0, len(records)+1)
		out = append(out, head)
		out = append(out, records...)
		return out
	case MissingTail:
		tail := fabric.TraceRecord{
			NodeType:        p2.Node.Type,
			NodeGUID:        p2.Node.GUID,
			SystemImageGUID: p2.Node.SystemImageGUID,
			EntryPortID:     p2.GUID,
			EntryPort:       p2.Num,
		}
		out := make([]fabric.TraceRecord, 0, len(records)+1)
		out = append(out, records...)
		out = append(out, tail)
		return out
	default:
		return records
	}
}
