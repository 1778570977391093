package creditloop

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ibanalysis/fabricroute/fabric"
	"github.com/ibanalysis/fabricroute/pathrec"
	"github.com/ibanalysis/fabricroute/route"
	"github.com/ibanalysis/fabricroute/trace"
)

// buildResult carries Phase 1's output plus the counters the top-level
// Report needs, since the graph alone doesn't retain how many paths were
// considered.
type buildResult struct {
	graph      *depGraph
	totalPaths uint64
	badPaths   uint64
}

// buildDependencyGraph walks every host-interface pair's paths, traces
// each, and folds the result into a channel-dependency graph. Structurally
// bad paths (the underlying walk failed) are counted and reported via
// sink but never abort the build.
//
// With WithConcurrency(n > 1), the outer source-port loop is fanned out
// across n workers, each accumulating into its own partial graph (a
// depGraph isn't safe for concurrent writers); the partials are merged
// once every worker completes. Counters use sync/atomic so the totals are
// exact regardless of worker count.
func buildDependencyGraph(f *fabric.Fabric, o *Options, runID string) buildResult {
	index := nodeIndex(f)

	var sources []*fabric.Port
	for _, n := range f.HostInterfaces() {
		sources = append(sources, n.SortedPorts()...)
	}
	allPorts := sources

	var result buildResult

	if o.concurrency <= 1 {
		g := newDepGraph()
		result.graph = g
		for i, p1 := range sources {
			for _, p2 := range allPorts {
				if p1 == p2 {
					continue
				}
				processPair(f, g, index, p1, p2, o, runID, &result)
			}
			logBuildProgress(o, runID, i+1, len(sources))
		}
		return result
	}

	var total, bad uint64
	var processed int64
	var mergeMu sync.Mutex
	merged := newDepGraph()
	var eg errgroup.Group
	eg.SetLimit(o.concurrency)

	for _, p1 := range sources {
		p1 := p1
		eg.Go(func() error {
			local := newDepGraph()
			var partial buildResult
			partial.graph = local
			for _, p2 := range allPorts {
				if p1 == p2 {
					continue
				}
				processPair(f, local, index, p1, p2, o, runID, &partial)
			}
			atomic.AddUint64(&total, partial.totalPaths)
			atomic.AddUint64(&bad, partial.badPaths)

			mergeMu.Lock()
			merged.merge(local)
			mergeMu.Unlock()

			logBuildProgress(o, runID, int(atomic.AddInt64(&processed, 1)), len(sources))
			return nil
		})
	}
	_ = eg.Wait() // processPair never returns an error to propagate

	result.graph = merged
	result.totalPaths = total
	result.badPaths = bad
	return result
}

func processPair(f *fabric.Fabric, g *depGraph, index map[uint64]*fabric.Node, p1, p2 *fabric.Port, o *Options, runID string, result *buildResult) {
	paths, err := pathrec.GenPaths(p1, p2)
	if err != nil || len(paths) == 0 {
		return
	}

	for _, path := range paths {
		result.totalPaths++

		records, err := trace.GenTraceRoutePath(f, path)
		if err != nil {
			result.badPaths++
			o.sink.Route(runID, p1.GUID, p2.GUID, path.DLID, true, badPathReason(err))
			continue
		}

		records = repairTrace(records, p1, p2)
		if bad, reason := structurallyBad(records); bad {
			result.badPaths++
			o.sink.Route(runID, p1.GUID, p2.GUID, path.DLID, true, reason)
			continue
		}

		o.sink.Route(runID, p1.GUID, p2.GUID, path.DLID, false, "")
		foldRecords(g, index, records, path.SLID, path.DLID)
	}
}

func badPathReason(err error) string {
	switch {
	case errors.Is(err, route.ErrUnavailable):
		return "missing LFT"
	case errors.Is(err, route.ErrNotDone):
		return "dead end, loop, or wrong endpoint"
	case errors.Is(err, route.ErrNotFound):
		return "no start port for SLID"
	default:
		return err.Error()
	}
}

// structurallyBad reports whether a (post-repair) trace is internally
// inconsistent, and why. A good trace has a head record with no entry, a
// tail record with no exit, and every interior record carrying both.
func structurallyBad(records []fabric.TraceRecord) (bool, string) {
	if len(records) == 0 {
		return true, "empty trace"
	}
	if records[0].EntryPortID != 0 {
		return true, "missing head after repair"
	}
	if records[len(records)-1].ExitPortID != 0 {
		return true, "missing tail after repair"
	}
	for i, r := range records {
		isHead := i == 0
		isTail := i == len(records)-1
		if !isHead && r.EntryPortID == 0 {
			return true, "interior record missing entry port"
		}
		if !isTail && r.ExitPortID == 0 {
			return true, "interior record missing exit port"
		}
	}
	return false, ""
}

// foldRecords adds the dependency edges implied by one trace: an
// intra-switch edge for every record's entry->exit pair, and an
// inter-device edge linking each record's exit to the next record's
// entry.
func foldRecords(g *depGraph, index map[uint64]*fabric.Node, records []fabric.TraceRecord, slid, dlid uint16) {
	var prevExit *fabric.Port

	for _, r := range records {
		node := index[r.NodeGUID]
		if node == nil {
			continue
		}

		var entry, exit *fabric.Port
		if r.EntryPortID != 0 {
			entry = fabric.FindNodePort(node, r.EntryPort)
		}
		if r.ExitPortID != 0 {
			exit = fabric.FindNodePort(node, r.ExitPort)
		}

		if entry != nil && exit != nil {
			g.addEdge(depNodeOf(entry), depNodeOf(exit), slid, dlid)
		}
		if prevExit != nil && entry != nil {
			g.addEdge(depNodeOf(prevExit), depNodeOf(entry), slid, dlid)
		}

		prevExit = exit
	}
}

func depNodeOf(p *fabric.Port) depNode {
	return depNode{portGUID: p.GUID, nodeGUID: p.Node.GUID, portNum: p.Num}
}

// logBuildProgress reports "Processed X of Y Nodes" every progressFrequency
// source ports, matching the original's periodic low-verbosity progress
// marker.
func logBuildProgress(o *Options, runID string, processed, total int) {
	if processed%progressFrequency != 0 && processed != total {
		return
	}
	o.logger.WithFields(logrus.Fields{
		"run_id":    runID,
		"processed": processed,
		"total":     total,
	}).Info("creditloop: build progress")
}

func nodeIndex(f *fabric.Fabric) map[uint64]*fabric.Node {
	idx := make(map[uint64]*fabric.Node)
	for _, n := range f.Nodes() {
		idx[n.GUID] = n
	}
	return idx
}
