// Package route implements the fabric route-walking state machine: given a
// starting port and a destination LID, it resolves the exact sequence of
// switches and ports a packet would traverse by repeatedly consulting each
// switch's linear forwarding table (LFT), and invokes a caller-supplied
// callback once per device visited.
//
// This is the pivot of the analysis core: the trace builder, tabulator,
// reporter, and route validator are all expressed as Callback
// implementations layered on WalkRoutePort, rather than each re-deriving
// the walk. The shared error vocabulary (ErrNotFound, ErrNotDone,
// ErrUnavailable, ErrInvalidParameter, ErrInsufficientMemory) also lives
// here since every other package in this module needs it.
package route
