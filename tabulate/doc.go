// Package tabulate aggregates per-port route counters across every
// host-to-host route in a fabric, in generic or fat-tree (uplink/downlink)
// mode, by driving route.WalkRoutePort with counting callbacks.
package tabulate
