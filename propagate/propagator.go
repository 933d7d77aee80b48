// Package propagate runs single-source shortest paths over an stn.Graph
// and certifies feasibility: either every vertex has a finite distance from
// the virtual source, or a negative-weight cycle exists and propagate
// extracts one witness — an ordered cycle of edges plus the assertion IDs
// that contributed to it.
//
// The algorithm is the classical Bellman-Ford schedule with one extra pass
// for negative-cycle detection, grounded on dijkstra's "runner holds the
// mutable state for a single execution" shape (github.com/katalvlaran/lvlath/
// dijkstra/dijkstra.go) generalized from a non-negative-weight priority
// queue to the negative-weight-capable relax-every-edge-each-round schedule
// described in spec.md §4.3, and on the retrieved bellman_ford.go example's
// deterministic "sorted nodes, sorted edges" iteration discipline.
package propagate

import (
	"math"

	"github.com/temporalgraph/chronosolve/stn"
)

// Result is the outcome of one Propagate call. When Feasible is true,
// Distances holds the shortest distance from the source to every vertex
// and Predecessors records, for each vertex, the predecessor vertex used to
// reach it (empty string for the source and for unreached vertices). When
// Feasible is false, CycleEdges holds one witness negative cycle in
// traversal order and CycleOriginIDs holds the distinct non-internal
// assertion IDs that contributed an edge to it.
type Result struct {
	Feasible       bool
	Distances      map[string]float64
	Predecessors   map[string]string
	CycleEdges     []*stn.Edge
	CycleOriginIDs []string
}

// predEntry records the edge used to relax a vertex: From is the
// predecessor vertex, Edge is the relaxing edge itself.
type predEntry struct {
	from string
	edge *stn.Edge
}

// Propagate computes shortest-path distances from source over g. Precondition:
// g already contains source (normally via InjectVirtualSource) and source
// reaches every other vertex with a zero-weight edge, so every vertex is
// reachable and a negative cycle anywhere in g is detectable from source.
func Propagate(g *stn.Graph, source string) *Result {
	vertices := g.Vertices()
	edges := g.Edges()

	dist := make(map[string]float64, len(vertices))
	pred := make(map[string]predEntry, len(vertices))
	for _, v := range vertices {
		dist[v] = math.Inf(1)
	}
	dist[source] = 0

	// Steps 1-2: relax every edge, up to |V|-1 rounds, stopping early once a
	// full round makes no progress.
	for i := 0; i < len(vertices)-1; i++ {
		changed := false
		for _, e := range edges {
			if relax(dist, pred, e) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	// Step 3: one more pass. Any edge that still relaxes certifies a
	// negative cycle reachable from source; record the first such target
	// (in deterministic edge order) as the witness vertex.
	witness := ""
	for _, e := range edges {
		if wouldRelax(dist, e) {
			witness = e.To
			break
		}
	}

	if witness == "" {
		return &Result{Feasible: true, Distances: dist, Predecessors: predecessorMap(pred)}
	}

	cycleEdges, originIDs := extractCycle(vertices, pred, witness)

	return &Result{Feasible: false, CycleEdges: cycleEdges, CycleOriginIDs: originIDs}
}

// relax attempts to improve dist[e.To] via e. Returns true if it did.
// Additions involving +Inf short-circuit: a +Inf source distance can never
// produce an improvement, so no arithmetic is attempted on it.
func relax(dist map[string]float64, pred map[string]predEntry, e *stn.Edge) bool {
	du := dist[e.From]
	if math.IsInf(du, 1) {
		return false
	}
	candidate := du + e.Weight
	if candidate < dist[e.To] {
		dist[e.To] = candidate
		pred[e.To] = predEntry{from: e.From, edge: e}
		return true
	}

	return false
}

// wouldRelax reports whether e still offers an improvement, without
// mutating dist/pred. Used for the negative-cycle detection pass.
func wouldRelax(dist map[string]float64, e *stn.Edge) bool {
	du := dist[e.From]
	if math.IsInf(du, 1) {
		return false
	}

	return du+e.Weight < dist[e.To]
}

// extractCycle walks the predecessor chain from witness |V| times to land
// strictly inside a negative cycle, then walks once more collecting edges
// until the walk closes, per spec.md §4.3.
func extractCycle(vertices []string, pred map[string]predEntry, witness string) ([]*stn.Edge, []string) {
	x := witness
	for i := 0; i < len(vertices); i++ {
		entry, ok := pred[x]
		if !ok {
			break // defensive: should not happen given the reachability precondition
		}
		x = entry.from
	}

	var edges []*stn.Edge
	cur := x
	for {
		entry, ok := pred[cur]
		if !ok {
			break
		}
		edges = append(edges, entry.edge)
		cur = entry.from
		if cur == x {
			break
		}
	}

	// edges were collected walking backward from x; reverse to present
	// them in forward traversal order around the cycle.
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	seen := make(map[string]struct{}, len(edges))
	var originIDs []string
	for _, e := range edges {
		if e.Origin == stn.OriginInternal || e.Origin == stn.OriginVirtualSource {
			continue
		}
		if _, ok := seen[e.Origin]; ok {
			continue
		}
		seen[e.Origin] = struct{}{}
		originIDs = append(originIDs, e.Origin)
	}

	return edges, originIDs
}

// predecessorMap flattens the internal predEntry map into the vertex ->
// predecessor-vertex map the feasible branch of Result exposes.
func predecessorMap(pred map[string]predEntry) map[string]string {
	out := make(map[string]string, len(pred))
	for v, entry := range pred {
		out[v] = entry.from
	}

	return out
}
