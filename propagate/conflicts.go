package propagate

import "github.com/temporalgraph/chronosolve/stn"

// maxFindIterations bounds FindAllConflicts independently of relax's own
// iteration cap: it is a diagnostic helper, not part of the hot solve path,
// so a generous fixed ceiling is simpler than threading a config value
// through it.
const maxFindIterations = 1000

// FindAllConflicts is the exploratory counterpart to relax.Relax, named in
// spec.md's Design Note "Provenance-tagged edges vs. rebuild": where relax
// rebuilds the graph from scratch on every iteration, FindAllConflicts
// mutates one cloned graph in place via Graph.RemoveByOrigin, repeatedly
// peeling off one witness's contributing assertions at a time. It returns
// every distinct conflicting assertion-ID set it observed, for diagnostics
// that want to see all of the contradictions in one input rather than only
// the ones relax actually had to repair (relax stops as soon as the graph
// becomes feasible; a later, already-resolved conflict that happened to
// share no assertions with an earlier one is invisible to it).
func FindAllConflicts(g *stn.Graph, source string) [][]string {
	work := g.Clone()

	var conflicts [][]string
	for i := 0; i < maxFindIterations; i++ {
		result := Propagate(work, source)
		if result.Feasible {
			break
		}
		if len(result.CycleOriginIDs) == 0 {
			break // intrinsic: no removable assertion can resolve this witness
		}

		conflicts = append(conflicts, result.CycleOriginIDs)
		for _, id := range result.CycleOriginIDs {
			work.RemoveByOrigin(id)
		}
	}

	return conflicts
}
