// Package report re-walks routes already known (typically after tabulate
// has run) to surface every hop that crosses one specific port of
// interest, invoking a caller-supplied callback for each crossing.
package report
