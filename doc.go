// Package fabricroute is the route analysis core of an InfiniBand/OPA-style
// subnet diagnostic tool. Given an in-memory snapshot of a switched fabric
// (package fabric) it answers four families of questions:
//
//   - Trace (package trace): the exact device/port sequence a packet with a
//     given source/destination LID would traverse.
//   - Tabulate (package tabulate): how many routes cross each port, split
//     into up-link/down-link when the fabric is a fat-tree (package tier).
//   - Validate reachability (package validate): which source/destination
//     pairs are unreachable.
//   - Validate absence of credit loops (package creditloop): whether the
//     routing contains a cyclic inter-switch channel dependency that could
//     deadlock a credit-based flow-control network.
//
// package route holds the shared route-walking state machine every other
// package builds on; package pathrec synthesizes the path records that
// creditloop enumerates over.
package fabricroute
