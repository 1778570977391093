// Package trace builds SM-style TraceRoute/TracePath records by driving
// route.WalkRoute/WalkRoutePort with a callback that appends one
// fabric.TraceRecord per device visited.
package trace
