// Package fabric holds the read-mostly in-memory model of a switched
// fabric snapshot: nodes (host interfaces and switches), their ports,
// inter-port links, and per-switch linear forwarding tables (LFTs).
//
// The snapshot is assembled once (by an external collaborator such as a
// subnet-administration query client or a file-format deserializer — both
// out of scope for this package) and then treated as read-only by every
// analysis in this module, with two narrow exceptions: each Port's
// AnalysisData counters and each Node's Tier scalar are mutated in place
// by the tabulate and tier packages, and reset on demand via
// ClearAnalysisData.
//
// Iteration order is deterministic (nodes and ports are returned sorted
// by GUID/port number) so that downstream analyses and their tests are
// reproducible.
package fabric
