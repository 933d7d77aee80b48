// Package relax drives the main relaxation loop: given events and
// assertions, it rebuilds the constraint graph from scratch each
// iteration, propagates it, and — while infeasible — discards the
// lowest-confidence assertion in the reported witness, until the network
// is feasible or no further assertion can be removed.
//
// Grounded on github.com/katalvlaran/lvlath/dfs's cycle-detection package:
// the same shape of "sorted-once priority list, deterministic tie-break,
// bounded iteration, collect-and-report" loop that dfs.DetectCycles uses
// for canonicalizing cycles, generalized here from "detect and report" to
// "detect, discard the weakest contributor, and retry."
package relax

import (
	"sort"

	"github.com/temporalgraph/chronosolve/allen"
	"github.com/temporalgraph/chronosolve/config"
	"github.com/temporalgraph/chronosolve/propagate"
	"github.com/temporalgraph/chronosolve/stn"
	"github.com/temporalgraph/chronosolve/temporal"
)

// virtualSource is the reserved vertex name propagate.Propagate treats as
// its single source. It can never collide with a real endpoint variable,
// which is always "<eventID>_start" or "<eventID>_end".
const virtualSource = "__chronosolve_source__"

// Outcome is the result of one Relax call: the final graph and
// propagation result (Propagation.Feasible unless the last witness held no
// removable assertion, or the iteration cap ran out right after a discard
// and before the reduced network was propagated again), the assertion IDs
// discarded in removal order (with the size
// of the witness cycle each was pulled from, aligned by index), the
// assertion IDs that survived, and how many rebuild iterations ran.
type Outcome struct {
	Graph                *stn.Graph
	Propagation          *propagate.Result
	Discarded            []string
	DiscardedWitnessSize []int
	Surviving            []string
	Iterations           int
}

// Relax repairs the constraint network formed by events and assertions,
// discarding assertions in ascending-confidence priority order until
// feasible. events and assertions are assumed already filtered to Enabled
// == true; Relax does not re-filter them.
func Relax(events []temporal.Event, assertions []temporal.Assertion, cfg config.Constants) *Outcome {
	priority := priorityRank(assertions)

	surviving := make(map[string]bool, len(assertions))
	for _, a := range assertions {
		surviving[a.ID] = true
	}

	var discarded []string
	var witnessSizes []int
	var graph *stn.Graph
	var prop *propagate.Result

	iterationCap := cfg.RelaxIterationCap
	if n := len(assertions); n > 0 && n < iterationCap {
		iterationCap = n
	}
	if iterationCap < 1 {
		iterationCap = 1
	}

	iterations := 0
	for iterations < iterationCap {
		iterations++

		current := survivingAssertions(assertions, surviving)
		graph = buildGraph(events, current, cfg)
		prop = propagate.Propagate(graph, virtualSource)

		if prop.Feasible {
			break
		}

		victim, ok := weakestInWitness(prop.CycleOriginIDs, surviving, priority)
		if !ok {
			break // intrinsic: nothing removable remains in this witness
		}

		surviving[victim] = false
		discarded = append(discarded, victim)
		witnessSizes = append(witnessSizes, len(prop.CycleOriginIDs))
	}

	return &Outcome{
		Graph:                graph,
		Propagation:          prop,
		Discarded:            discarded,
		DiscardedWitnessSize: witnessSizes,
		Surviving:            survivingIDs(assertions, surviving),
		Iterations:           iterations,
	}
}

// buildGraph compiles events and assertions into a fresh stn.Graph with
// the virtual source already injected, ready for propagate.Propagate.
func buildGraph(events []temporal.Event, assertions []temporal.Assertion, cfg config.Constants) *stn.Graph {
	g := stn.New()

	for _, e := range events {
		for _, c := range allen.CompileEvent(e, cfg.Mu) {
			g.InsertEdge(c.From, c.To, c.Bound, stn.OriginInternal)
		}
	}

	for _, a := range assertions {
		constraints, err := allen.Compile(a, cfg.Epsilon)
		if err != nil {
			// Unrecognized relation: a programmer error per spec.md §4.1,
			// not a condition well-formed input can trigger. The host
			// (package host) recovers and restarts on exactly this panic.
			panic(err)
		}
		for _, c := range constraints {
			g.InsertEdge(c.From, c.To, c.Bound, a.ID)
		}
	}

	g.InjectVirtualSource(virtualSource)

	return g
}

// priorityRank maps each assertion ID to its position in the list sorted
// ascending by confidence weight (speculation first), ties broken by
// reverse input order (the later-listed assertion ranks first). A smaller
// rank means "discard sooner."
func priorityRank(assertions []temporal.Assertion) map[string]int {
	ordered := make([]int, len(assertions))
	for i := range ordered {
		ordered[i] = i
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		wi := assertions[ordered[i]].Confidence.Weight()
		wj := assertions[ordered[j]].Confidence.Weight()
		if wi != wj {
			return wi < wj
		}
		return ordered[i] > ordered[j]
	})

	rank := make(map[string]int, len(assertions))
	for r, idx := range ordered {
		rank[assertions[idx].ID] = r
	}

	return rank
}

// weakestInWitness picks the still-surviving assertion ID in witnessIDs
// with the smallest priority rank (i.e. the weakest confidence tier,
// latest input order on ties). Returns ok == false if no witness ID is
// still surviving.
func weakestInWitness(witnessIDs []string, surviving map[string]bool, rank map[string]int) (string, bool) {
	best := ""
	bestRank := -1
	for _, id := range witnessIDs {
		if !surviving[id] {
			continue
		}
		if bestRank == -1 || rank[id] < bestRank {
			best = id
			bestRank = rank[id]
		}
	}

	return best, bestRank != -1
}

// survivingAssertions filters assertions down to those still marked
// surviving, preserving original order.
func survivingAssertions(assertions []temporal.Assertion, surviving map[string]bool) []temporal.Assertion {
	out := make([]temporal.Assertion, 0, len(assertions))
	for _, a := range assertions {
		if surviving[a.ID] {
			out = append(out, a)
		}
	}

	return out
}

// survivingIDs returns the IDs of assertions still marked surviving,
// preserving original order.
func survivingIDs(assertions []temporal.Assertion, surviving map[string]bool) []string {
	out := make([]string, 0, len(assertions))
	for _, a := range assertions {
		if surviving[a.ID] {
			out = append(out, a.ID)
		}
	}

	return out
}
