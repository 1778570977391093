package route

import "errors"

// Sentinel errors shared by every analysis operation in this module.
// Callers branch on these with errors.Is, never by string comparison.
var (
	// ErrNotFound indicates a WalkRoute call could not locate a starting
	// port for the given source LID.
	ErrNotFound = errors.New("route: starting port not found for LID")

	// ErrNotDone indicates a route could not be traced to completion: a
	// dead end (LFT gap), a loop, an over-length path (>64 hops), or
	// arrival at a port whose LID range does not contain the requested
	// DLID. Counted as a "bad path" by higher-level operations; other
	// pairs continue being analyzed.
	ErrNotDone = errors.New("route: could not trace route to completion")

	// ErrUnavailable indicates a switch traversed along the route has no
	// LFT in the snapshot at all — the analysis is unsound to continue
	// and callers surface this immediately rather than counting it as a
	// single bad path.
	ErrUnavailable = errors.New("route: no forwarding table for a traversed switch")

	// ErrInvalidParameter indicates the caller passed an endpoint of the
	// wrong kind for the requested operation (e.g. a switch physical port
	// where a host interface is required).
	ErrInvalidParameter = errors.New("route: invalid endpoint for this operation")

	// ErrInsufficientMemory indicates a caller-supplied capacity bound
	// (e.g. trace.WithMaxRecords) was exceeded while accumulating a result.
	ErrInsufficientMemory = errors.New("route: result exceeded configured capacity")
)

// maxHops bounds the length of any single route walk. Exceeding it means
// the walk is treated as a loop/over-length failure (ErrNotDone), per the
// fixed 64-hop bound in the invariants.
const maxHops = 64
