package route

import (
	"github.com/katalvlaran/ductroute/building"
)

// horizontalOffsets is the fixed same-floor exploration order:
// row-1 (up), row+1 (down), col-1 (left), col+1 (right).
var horizontalOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// queueItem pairs a frontier position with the full path prefix that
// reached it. Carrying the prefix keeps emission trivial at the cost of
// O(L) copying per enqueue.
type queueItem struct {
	pos  building.Position
	path Path
}

// walker encapsulates mutable state for one target's search.
type walker struct {
	grid    *building.Grid
	opts    *Options
	target  building.Position
	queue   []queueItem
	visited map[building.Position]bool
}

// Route runs an independent breadth-first search from the grid's source
// to every Room cell, applying any number of functional Options.
// Returns ErrGridNil for a nil grid and ErrOptionViolation for bad
// options. A grid without a Source or without Rooms yields an empty
// Result and no error. Unreachable rooms are collected in
// Result.Unreached; they never fail the run.
func Route(g *building.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &Result{}
	source, ok := g.SourcePosition()
	if !ok {
		return res, nil
	}
	targets := g.FindAll(building.Room)
	if len(targets) == 0 {
		return res, nil
	}

	for idx, target := range targets {
		w := &walker{
			grid:    g,
			opts:    &o,
			target:  target,
			queue:   make([]queueItem, 0, 64),
			visited: make(map[building.Position]bool),
		}
		path, err := w.search(source)
		if err != nil {
			return nil, err
		}
		if path == nil {
			o.OnUnreachable(target)
			res.Unreached = append(res.Unreached, target)
			continue
		}
		res.Paths = append(res.Paths, PathResult{
			TargetIndex: idx,
			Target:      target,
			Path:        path,
			Steps:       len(path),
			// BFS paths are unit-step, i.e. already dense.
			EnergyCost: o.Model.Cost(path),
		})
	}

	return res, nil
}

// search runs one BFS from source toward w.target. It returns the
// discovered path, or nil after queue exhaustion, or the context error
// on cancellation.
func (w *walker) search(source building.Position) (Path, error) {
	w.enqueue(source, Path{source})

	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnVisit(item.pos, len(item.path)-1)

		if item.pos == w.target {
			return item.path, nil
		}

		w.enqueueNeighbors(item)
	}
	return nil, nil
}

// enqueue marks p visited and appends it to the queue with its prefix.
func (w *walker) enqueue(p building.Position, prefix Path) {
	w.visited[p] = true
	w.queue = append(w.queue, queueItem{pos: p, path: prefix})
}

// enqueueNeighbors expands item in the fixed exploration order: the four
// same-floor moves first, then stair transitions to every other floor in
// ascending index order.
func (w *walker) enqueueNeighbors(item queueItem) {
	p := item.pos

	for _, d := range horizontalOffsets {
		next := building.Position{Floor: p.Floor, Row: p.Row + d[0], Col: p.Col + d[1]}
		if !w.grid.IsValid(next.Floor, next.Row, next.Col) || w.visited[next] {
			continue
		}
		w.enqueue(next, extend(item.path, next))
	}

	// Floor changes only from a Stair cell, onto the same (row,col) Stair.
	if kind, err := w.grid.KindAtPosition(p); err != nil || kind != building.Stair {
		return
	}
	for f := 0; f < w.grid.Floors(); f++ {
		if f == p.Floor {
			continue
		}
		next := building.Position{Floor: f, Row: p.Row, Col: p.Col}
		if kind, err := w.grid.KindAtPosition(next); err != nil || kind != building.Stair {
			continue
		}
		if w.visited[next] {
			continue
		}
		w.enqueue(next, extend(item.path, next))
	}
}

// extend copies prefix and appends next, so queue entries never share
// backing arrays.
func extend(prefix Path, next building.Position) Path {
	out := make(Path, len(prefix), len(prefix)+1)
	copy(out, prefix)
	return append(out, next)
}
