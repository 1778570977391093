package creditloop

import (
	"strconv"
	"strings"
)

// canonicalSignature reduces a closed vertex sequence to a rotation- and
// direction-independent string key, so the same cycle discovered from
// different starting vertices (or walked in the opposite direction)
// collapses to one entry. Grounded on the teacher's cycle-normalization
// approach in dfs/cycle.go: rotate to start at the minimum element, then
// keep whichever of the forward/reversed rotations sorts first.
func canonicalSignature(vertices []uint64) string {
	n := len(vertices)
	if n == 0 {
		return ""
	}

	forward := rotateToMin(vertices)
	reversed := make([]uint64, n)
	for i, v := range vertices {
		reversed[n-1-i] = v
	}
	reversed = rotateToMin(reversed)

	fsig := signatureOf(forward)
	rsig := signatureOf(reversed)
	if fsig <= rsig {
		return fsig
	}
	return rsig
}

// rotateToMin returns vertices rotated so the minimum-valued element is
// first, preserving relative order.
func rotateToMin(vertices []uint64) []uint64 {
	n := len(vertices)
	minIdx := 0
	for i, v := range vertices {
		if v < vertices[minIdx] {
			minIdx = i
		}
	}
	rotated := make([]uint64, n)
	for i := 0; i < n; i++ {
		rotated[i] = vertices[(minIdx+i)%n]
	}
	return rotated
}

func signatureOf(vertices []uint64) string {
	parts := make([]string, len(vertices))
	for i, v := range vertices {
		parts[i] = strconv.FormatUint(v, 10)
	}
	return strings.Join(parts, ",")
}
