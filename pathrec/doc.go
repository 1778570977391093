// Package pathrec synthesizes plausible subnet-administration PathRecords
// between two ports, standing in for a real SM's PathRecord query so the
// rest of the analysis core has LID pairs to walk routes for.
package pathrec
