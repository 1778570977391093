// Package validate walks every route in a fabric (or between one port
// pair) purely to confirm it completes, reporting failing routes through
// a callback and, optionally, a hop-by-hop detail callback for deeper
// diagnostics on each bad route.
package validate
