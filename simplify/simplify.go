// Package simplify implements the greedy duct-path reduction pass of
// github.com/katalvlaran/ductroute.
package simplify

import (
	"github.com/katalvlaran/ductroute/building"
	"github.com/katalvlaran/ductroute/energy"
	"github.com/katalvlaran/ductroute/route"
)

// Optimize attempts to lower the energy of every routed path and returns
// the results in the same order. Each path gets one greedy reduction
// pass; the reduced candidate replaces the original only when its dense
// expansion prices strictly below the original's dense expansion under
// model. Replaced results carry the saving in EnergySaved; untouched
// results carry EnergySaved 0. Optimize never increases a path's cost.
//
// The input slice is not mutated; results are returned by value.
func Optimize(g *building.Grid, model energy.Model, results []route.PathResult) []route.PathResult {
	if g == nil {
		return nil
	}
	out := make([]route.PathResult, 0, len(results))
	for _, pr := range results {
		candidate := reduce(g, pr.Path)
		originalCost := model.Cost(pr.Path.Dense())
		candidateCost := model.Cost(candidate.Dense())

		opt := pr
		if candidateCost < originalCost {
			opt.Path = candidate
			opt.Steps = len(candidate)
			opt.EnergyCost = candidateCost
			opt.EnergySaved = originalCost - candidateCost
		} else {
			opt.EnergySaved = 0
		}
		out = append(out, opt)
	}
	return out
}

// reduce performs the greedy left-to-right waypoint elimination. The
// first waypoint is always kept; each interior waypoint is dropped when
// the last kept waypoint reaches the next input waypoint directly; the
// final waypoint is always kept.
func reduce(g *building.Grid, path route.Path) route.Path {
	if len(path) <= 2 {
		return path
	}

	kept := route.Path{path[0]}
	for i := 1; i < len(path)-1; i++ {
		if CanGoDirect(g, kept[len(kept)-1], path[i+1]) {
			continue
		}
		kept = append(kept, path[i])
	}
	return append(kept, path[len(path)-1])
}

// CanGoDirect reports whether a duct may run straight from a to b: both
// on the same floor, sharing a row or a column, with every cell strictly
// between them valid (in-bounds, non-Wall). Floor changes and diagonal
// lines are never direct.
func CanGoDirect(g *building.Grid, a, b building.Position) bool {
	if a.Floor != b.Floor {
		return false
	}
	if a.Row != b.Row && a.Col != b.Col {
		return false
	}

	if a.Row == b.Row {
		lo, hi := minmax(a.Col, b.Col)
		for c := lo + 1; c < hi; c++ {
			if !g.IsValid(a.Floor, a.Row, c) {
				return false
			}
		}
		return true
	}

	lo, hi := minmax(a.Row, b.Row)
	for r := lo + 1; r < hi; r++ {
		if !g.IsValid(a.Floor, r, a.Col) {
			return false
		}
	}
	return true
}

func minmax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}
