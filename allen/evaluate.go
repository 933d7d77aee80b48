package allen

import (
	"math"

	"github.com/temporalgraph/chronosolve/temporal"
)

// relTol is the floating-point slack Holds allows beyond eps itself, to
// absorb the rounding a Bellman-Ford shortest-path solve can introduce. It
// is unrelated to eps: eps is the domain-level strict-inequality slack
// Compile bakes into the constraints, while relTol only guards against solved
// coordinates landing a few ULPs short of the bound they were built to
// satisfy.
const relTol = 1e-9

// Holds is the evaluation counterpart to Compile: given a relation and the
// solved endpoint coordinates of its source and target event, it reports
// whether the relation actually holds, using the same before/equal shape
// Compile's switch uses to build constraints in the first place. It never
// returns an error for an unrecognized relation; an unrecognized relation
// simply does not hold.
func Holds(rel temporal.Relation, source, target temporal.Coordinate, eps float64) bool {
	As, Ae := source.Start, source.End
	Bs, Be := target.Start, target.End

	before := func(earlier, later float64) bool { return later-earlier >= eps-relTol }
	equal := func(a, b float64) bool { return math.Abs(a-b) <= relTol }

	switch rel {
	case temporal.Before:
		return before(Ae, Bs)

	case temporal.After:
		return before(Be, As)

	case temporal.Meets:
		return equal(Ae, Bs)

	case temporal.MetBy:
		return equal(As, Be)

	case temporal.Overlaps:
		return before(As, Bs) && before(Bs, Ae) && before(Ae, Be)

	case temporal.OverlappedBy:
		return before(Bs, As) && before(As, Be) && before(Be, Ae)

	case temporal.Starts:
		return equal(As, Bs) && before(Ae, Be)

	case temporal.StartedBy:
		return equal(As, Bs) && before(Be, Ae)

	case temporal.Finishes:
		return before(Bs, As) && equal(Ae, Be)

	case temporal.FinishedBy:
		return before(As, Bs) && equal(Ae, Be)

	case temporal.During:
		return before(Bs, As) && before(Ae, Be)

	case temporal.Contains:
		return before(As, Bs) && before(Be, Ae)

	case temporal.Equals:
		return equal(As, Bs) && equal(Ae, Be)

	default:
		return false
	}
}
