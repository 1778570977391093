package creditloop

import "github.com/sirupsen/logrus"

// GraphStage identifies which of the three points in the build pipeline
// a GraphSummary call describes.
type GraphStage int

const (
	GraphFull GraphStage = iota
	GraphPruned
	GraphSplit
)

func (s GraphStage) String() string {
	switch s {
	case GraphFull:
		return "full"
	case GraphPruned:
		return "pruned"
	case GraphSplit:
		return "split"
	default:
		return "unknown"
	}
}

// Sink receives progress and result notifications from Validate. It is
// the Go analogue of the original's seven-callback vtable; every method
// receives RunID so a caller aggregating several sinks can correlate
// calls from one Validate invocation.
type Sink interface {
	// Route is called once per path the build phase processes, good or
	// bad; bad reports why the path was rejected.
	Route(runID string, p1GUID, p2GUID uint64, dlid uint16, bad bool, reason string)

	// FabricSummary reports aggregate counts once the fabric has been
	// walked: total ports, total switches, total paths considered.
	FabricSummary(runID string, ports, switches int, totalPaths, badPaths uint64)

	// GraphSummary reports vertex/edge counts at one of the three build
	// stages (full, pruned, split-into-N-components).
	GraphSummary(runID string, stage GraphStage, vertices, edges, components int)

	// RouteSummary is emitted once per weakly-connected component after
	// its cycle search completes.
	RouteSummary(runID string, componentIndex int, vertices int, cyclesFound int)

	// LinkSummary is emitted once per physical link touched by the
	// dependency graph, reporting how many routes crossed it.
	LinkSummary(runID string, fromPortGUID, toPortGUID uint64, routeCount int)

	// LinkStepSummary is emitted once per edge within a reported cycle.
	LinkStepSummary(runID string, cycleIndex int, step Step)

	// PathSummary closes out one detected cycle with its full step list.
	PathSummary(runID string, cycleIndex int, steps []Step)
}

// DefaultSink logs every call through an embedded *logrus.Logger at a
// level proportional to how noisy the call is: per-route, per-link and
// per-step calls at Debug, fabric/graph/component summaries at Info, and
// each detected cycle (PathSummary) at Warn.
type DefaultSink struct {
	logger *logrus.Logger
}

func NewDefaultSink(logger *logrus.Logger) *DefaultSink {
	return &DefaultSink{logger: logger}
}

func (s *DefaultSink) Route(runID string, p1GUID, p2GUID uint64, dlid uint16, bad bool, reason string) {
	s.logger.WithFields(logrus.Fields{
		"run_id": runID, "p1_guid": p1GUID, "p2_guid": p2GUID, "dlid": dlid, "bad": bad, "reason": reason,
	}).Debug("creditloop: route processed")
}

func (s *DefaultSink) FabricSummary(runID string, ports, switches int, totalPaths, badPaths uint64) {
	s.logger.WithFields(logrus.Fields{
		"run_id": runID, "ports": ports, "switches": switches, "total_paths": totalPaths, "bad_paths": badPaths,
	}).Info("creditloop: fabric summary")
}

func (s *DefaultSink) GraphSummary(runID string, stage GraphStage, vertices, edges, components int) {
	s.logger.WithFields(logrus.Fields{
		"run_id": runID, "stage": stage.String(), "vertices": vertices, "edges": edges, "components": components,
	}).Info("creditloop: graph summary")
}

func (s *DefaultSink) RouteSummary(runID string, componentIndex int, vertices int, cyclesFound int) {
	s.logger.WithFields(logrus.Fields{
		"run_id": runID, "component": componentIndex, "vertices": vertices, "cycles_found": cyclesFound,
	}).Info("creditloop: component summary")
}

func (s *DefaultSink) LinkSummary(runID string, fromPortGUID, toPortGUID uint64, routeCount int) {
	s.logger.WithFields(logrus.Fields{
		"run_id": runID, "from_port_guid": fromPortGUID, "to_port_guid": toPortGUID, "route_count": routeCount,
	}).Debug("creditloop: link summary")
}

func (s *DefaultSink) LinkStepSummary(runID string, cycleIndex int, step Step) {
	s.logger.WithFields(logrus.Fields{
		"run_id": runID, "cycle": cycleIndex, "switch_guid": step.SwitchGUID, "in_port": step.InPort, "out_port": step.OutPort,
	}).Debug("creditloop: cycle step")
}

func (s *DefaultSink) PathSummary(runID string, cycleIndex int, steps []Step) {
	s.logger.WithFields(logrus.Fields{
		"run_id": runID, "cycle": cycleIndex, "step_count": len(steps),
	}).Warn("creditloop: credit cycle detected")
}
