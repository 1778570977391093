package creditloop

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ibanalysis/fabricroute/fabric"
	"github.com/ibanalysis/fabricroute/route"
)

// Report is the outcome of one Validate call.
type Report struct {
	RunID         string
	ViewpointGUID uint64
	TotalPaths    uint64
	BadPaths      uint64
	DeadlockFree  bool
	Cycles        []Cycle
}

// progressFrequency matches the original's PROGRESS_FREQ: how many
// host-interface ports elapse between periodic progress log lines at
// default verbosity.
const progressFrequency = 25

// Validate builds the channel-dependency graph for f from viewpointGUID's
// perspective, prunes and splits it, and searches each component for
// credit cycles. viewpointGUID must name a node present in f.
//
// Returns route.ErrNotDone if the fabric has no host interfaces to build
// routes between (insufficient data to say anything about deadlock
// freedom), or route.ErrInvalidParameter if viewpointGUID isn't present.
func Validate(f *fabric.Fabric, viewpointGUID uint64, opts ...Option) (Report, error) {
	o := buildOptions(opts)
	runID := uuid.NewString()

	if !nodeExists(f, viewpointGUID) {
		return Report{}, route.ErrInvalidParameter
	}

	hosts := f.HostInterfaces()
	if len(hosts) == 0 {
		return Report{}, route.ErrNotDone
	}

	start := o.clock()
	o.logger.WithField("run_id", runID).Info("creditloop: validate start")

	built := buildDependencyGraph(f, o, runID)
	g := built.graph

	o.sink.GraphSummary(runID, GraphFull, g.vertexCount(), g.edgeCount(), 1)
	o.sink.FabricSummary(runID, portCount(f), len(f.Switches()), built.totalPaths, built.badPaths)

	prune(g)
	o.sink.GraphSummary(runID, GraphPruned, g.vertexCount(), g.edgeCount(), 1)

	components := split(g)
	o.sink.GraphSummary(runID, GraphSplit, g.vertexCount(), g.edgeCount(), len(components))

	var cycles []Cycle
	for i, c := range components {
		found := findCycles(c)
		o.sink.RouteSummary(runID, i, c.vertexCount(), len(found))

		linkKeys, linkCounts := c.physicalLinkRouteCounts()
		for _, lk := range linkKeys {
			o.sink.LinkSummary(runID, lk.from, lk.to, linkCounts[lk])
		}

		for j, cycle := range found {
			idx := len(cycles) + j
			for _, step := range cycle.Steps {
				o.sink.LinkStepSummary(runID, idx, step)
			}
			o.sink.PathSummary(runID, idx, cycle.Steps)
		}
		cycles = append(cycles, found...)
	}

	o.logger.WithFields(logrus.Fields{
		"run_id":     runID,
		"elapsed_us": o.clock() - start,
	}).Info("creditloop: validate end")

	return Report{
		RunID:         runID,
		ViewpointGUID: viewpointGUID,
		TotalPaths:    built.totalPaths,
		BadPaths:      built.badPaths,
		DeadlockFree:  len(cycles) == 0,
		Cycles:        cycles,
	}, nil
}

func nodeExists(f *fabric.Fabric, guid uint64) bool {
	for _, n := range f.Nodes() {
		if n.GUID == guid {
			return true
		}
	}
	return false
}

func portCount(f *fabric.Fabric) int {
	n := 0
	for _, node := range f.Nodes() {
		n += len(node.Ports)
	}
	return n
}
