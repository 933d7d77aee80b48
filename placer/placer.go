// Package placer converts shortest-path distances from propagate (or, in
// the fallback case, nothing at all) into display coordinates on a
// configured scale, enforcing a minimum visual width for intervals and a
// padded display range.
//
// No pack example addresses this narrow a concern (map a solved range onto
// a padded display range); normalize below is plain arithmetic with no
// third-party library or teacher file to ground it on.
package placer

import (
	"math"

	"github.com/temporalgraph/chronosolve/config"
	"github.com/temporalgraph/chronosolve/temporal"
)

// Place converts distances (vertex name -> shortest distance from the
// virtual source) into one Coordinate per event, in events' input order.
// An event whose start or end distance is +Inf or missing is unplaceable
// and omitted from the result, per spec.md §4.5 step 1 and Open Question
// (a).
func Place(events []temporal.Event, distances map[string]float64, cfg config.Constants) []temporal.Coordinate {
	lo, hi, ok := bounds(events, distances)

	out := make([]temporal.Coordinate, 0, len(events))
	for _, e := range events {
		start, okStart := finite(distances, temporal.StartVar(e.ID))
		end, okEnd := finite(distances, temporal.EndVar(e.ID))
		if !okStart || !okEnd {
			continue
		}

		var ns, ne float64
		if !ok || hi == lo {
			// Degenerate: no finite spread to normalize against (every
			// finite distance is equal); collapse to the range midpoint.
			mid := cfg.Pad + (cfg.Scale-2*cfg.Pad)/2
			ns, ne = mid, mid
		} else {
			ns = normalize(start, lo, hi, cfg)
			ne = normalize(end, lo, hi, cfg)
		}

		out = append(out, shape(e, ns, ne, cfg))
	}

	return out
}

// PlaceFallback spaces events evenly across the padded display range,
// ignoring any distances: the range is cut into one equal slot per event
// and each event is centered in its slot. Used when there are no assertions
// to satisfy, or when relaxation could not reach a feasible network
// (spec.md §4.5 "Fallback placement"). Intervals occupy 80% of the
// inter-event spacing.
func PlaceFallback(events []temporal.Event, cfg config.Constants) []temporal.Coordinate {
	n := len(events)
	out := make([]temporal.Coordinate, 0, n)
	if n == 0 {
		return out
	}

	usable := cfg.Scale - 2*cfg.Pad
	if n == 1 {
		mid := cfg.Pad + usable/2
		return append(out, shape(events[0], mid, mid, cfg))
	}

	step := usable / float64(n)
	for i, e := range events {
		center := cfg.Pad + step*(float64(i)+0.5)
		switch e.Duration {
		case temporal.Instant:
			out = append(out, temporal.Coordinate{EventID: e.ID, Start: center, End: center})
		default:
			half := (step * 0.8) / 2
			out = append(out, shape(e, center-half, center+half, cfg))
		}
	}

	return out
}

// shape applies instant/interval display rules to a pair of normalized
// coordinates: instants collapse to their start; intervals are extended
// upward to meet the minimum display width if normalization left them
// narrower than that.
func shape(e temporal.Event, start, end float64, cfg config.Constants) temporal.Coordinate {
	if e.Duration == temporal.Instant {
		return temporal.Coordinate{EventID: e.ID, Start: start, End: start}
	}
	if end-start < cfg.MinDisplayWidth {
		end = start + cfg.MinDisplayWidth
	}

	return temporal.Coordinate{EventID: e.ID, Start: start, End: end}
}

// normalize maps v from [lo, hi] onto [pad, scale-pad].
func normalize(v, lo, hi float64, cfg config.Constants) float64 {
	return cfg.Pad + (v-lo)/(hi-lo)*(cfg.Scale-2*cfg.Pad)
}

// bounds scans every event's start/end distance and returns the minimum
// and maximum finite value found, and whether any finite value existed at
// all.
func bounds(events []temporal.Event, distances map[string]float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, e := range events {
		for _, v := range []string{temporal.StartVar(e.ID), temporal.EndVar(e.ID)} {
			d, present := finite(distances, v)
			if !present {
				continue
			}
			ok = true
			if d < lo {
				lo = d
			}
			if d > hi {
				hi = d
			}
		}
	}

	return lo, hi, ok
}

// finite looks up name in distances and reports whether the value is
// present and not +Inf (distances never contain -Inf by construction).
func finite(distances map[string]float64, name string) (float64, bool) {
	d, ok := distances[name]
	if !ok || math.IsInf(d, 1) {
		return 0, false
	}

	return d, true
}
