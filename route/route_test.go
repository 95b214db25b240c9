package route_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/ductroute/building"
	"github.com/katalvlaran/ductroute/energy"
	"github.com/katalvlaran/ductroute/route"
)

const (
	E = building.Empty
	W = building.Wall
	S = building.Source
	R = building.Room
	T = building.Stair
)

func mustGrid(t testing.TB, cells [][][]building.CellKind) *building.Grid {
	t.Helper()
	g, err := building.From3D(cells)
	if err != nil {
		t.Fatalf("From3D error: %v", err)
	}
	return g
}

func pos(f, r, c int) building.Position {
	return building.Position{Floor: f, Row: r, Col: c}
}

// TestRoute_Errors verifies that invalid inputs and options are rejected.
func TestRoute_Errors(t *testing.T) {
	// nil grid
	if _, err := route.Route(nil); !errors.Is(err, route.ErrGridNil) {
		t.Errorf("nil grid: want ErrGridNil, got %v", err)
	}
	// negative model constants are a violation
	g := mustGrid(t, [][][]building.CellKind{{{S, R}}})
	bad := energy.Model{Horizontal: -1}
	if _, err := route.Route(g, route.WithModel(bad)); !errors.Is(err, route.ErrOptionViolation) {
		t.Errorf("negative model: want ErrOptionViolation, got %v", err)
	}
}

// TestRoute_EmptyInputs: a grid without a source or without rooms yields
// an empty result, not an error.
func TestRoute_EmptyInputs(t *testing.T) {
	noSource := mustGrid(t, [][][]building.CellKind{{{E, R}}})
	res, err := route.Route(noSource)
	if err != nil {
		t.Fatalf("no source: unexpected error %v", err)
	}
	if len(res.Paths) != 0 || len(res.Unreached) != 0 {
		t.Errorf("no source: result = %+v; want empty", res)
	}

	noRooms := mustGrid(t, [][][]building.CellKind{{{S, E}}})
	res, err = route.Route(noRooms)
	if err != nil {
		t.Fatalf("no rooms: unexpected error %v", err)
	}
	if len(res.Paths) != 0 || len(res.Unreached) != 0 {
		t.Errorf("no rooms: result = %+v; want empty", res)
	}
}

// TestRoute_CorridorAroundWall reproduces the canonical 3×3 scenario:
// a wall row below the corridor forces the straight top-row path.
func TestRoute_CorridorAroundWall(t *testing.T) {
	g := mustGrid(t, [][][]building.CellKind{
		{
			{S, E, R},
			{W, W, W},
			{E, E, E},
		},
	})
	res, err := route.Route(g)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Paths) != 1 {
		t.Fatalf("got %d paths; want 1", len(res.Paths))
	}
	pr := res.Paths[0]
	wantPath := route.Path{pos(0, 0, 0), pos(0, 0, 1), pos(0, 0, 2)}
	if !reflect.DeepEqual(pr.Path, wantPath) {
		t.Errorf("path = %v; want %v", pr.Path, wantPath)
	}
	if pr.Steps != 3 {
		t.Errorf("steps = %d; want 3", pr.Steps)
	}
	// 2 steps × (0.1 pressure + 1.0 horizontal), no turns
	if got, want := pr.EnergyCost, 2.2; !inDelta(got, want) {
		t.Errorf("energy = %v; want %v", got, want)
	}
	if pr.TargetIndex != 0 || pr.Target != pos(0, 0, 2) {
		t.Errorf("target = %d %v; want 0 (0,0,2)", pr.TargetIndex, pr.Target)
	}
}

// TestRoute_StairTransition: the only way to an upper-floor room is
// through the matching stair pair; the emitted path must contain the
// (0,1,1)→(1,1,1) hop.
func TestRoute_StairTransition(t *testing.T) {
	g := mustGrid(t, [][][]building.CellKind{
		{
			{S, E, E},
			{E, T, E},
			{E, E, E},
		},
		{
			{E, E, E},
			{E, T, E},
			{E, E, R},
		},
	})
	res, err := route.Route(g)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Paths) != 1 {
		t.Fatalf("got %d paths; want 1", len(res.Paths))
	}
	path := res.Paths[0].Path
	hop := -1
	for i := 0; i < len(path)-1; i++ {
		if path[i] == pos(0, 1, 1) && path[i+1] == pos(1, 1, 1) {
			hop = i
			break
		}
	}
	if hop < 0 {
		t.Fatalf("path %v skips the stair pair (0,1,1)→(1,1,1)", path)
	}
	assertWellFormed(t, g, path, pos(0, 0, 0), pos(1, 2, 2))
}

// TestRoute_Unreachable: a fully walled-off room is reported in
// Unreached, fires OnUnreachable, and does not disturb other targets.
func TestRoute_Unreachable(t *testing.T) {
	g := mustGrid(t, [][][]building.CellKind{
		{
			{S, E, W, R}, // room sealed behind the wall column
			{E, E, W, W},
			{E, R, E, E}, // second room reachable around the south side
		},
	})
	var missed []building.Position
	res, err := route.Route(g, route.WithOnUnreachable(func(p building.Position) {
		missed = append(missed, p)
	}))
	if err != nil {
		t.Fatal(err)
	}
	if want := []building.Position{pos(0, 0, 3)}; !reflect.DeepEqual(res.Unreached, want) {
		t.Errorf("Unreached = %v; want %v", res.Unreached, want)
	}
	if !reflect.DeepEqual(missed, res.Unreached) {
		t.Errorf("OnUnreachable saw %v; want %v", missed, res.Unreached)
	}
	if len(res.Paths) != 1 || res.Paths[0].Target != pos(0, 2, 1) {
		t.Fatalf("reachable room missing from Paths: %+v", res.Paths)
	}
	// Unreached room keeps its FindAll index off the emitted result
	if res.Paths[0].TargetIndex != 1 {
		t.Errorf("TargetIndex = %d; want 1", res.Paths[0].TargetIndex)
	}
}

// TestRoute_SealedSource: a source with no valid neighbor reaches
// nothing and errors nowhere.
func TestRoute_SealedSource(t *testing.T) {
	g := mustGrid(t, [][][]building.CellKind{
		{
			{S, W, R},
			{W, W, W},
		},
	})
	res, err := route.Route(g)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Paths) != 0 {
		t.Errorf("sealed source produced paths: %+v", res.Paths)
	}
	if want := []building.Position{pos(0, 0, 2)}; !reflect.DeepEqual(res.Unreached, want) {
		t.Errorf("Unreached = %v; want %v", res.Unreached, want)
	}
}

// TestRoute_MultiTargetOrder: results come back in FindAll(Room) order
// with matching indices.
func TestRoute_MultiTargetOrder(t *testing.T) {
	g := mustGrid(t, [][][]building.CellKind{
		{
			{S, E, R},
			{E, E, E},
			{R, E, R},
		},
	})
	res, err := route.Route(g)
	if err != nil {
		t.Fatal(err)
	}
	wantTargets := []building.Position{pos(0, 0, 2), pos(0, 2, 0), pos(0, 2, 2)}
	if len(res.Paths) != len(wantTargets) {
		t.Fatalf("got %d paths; want %d", len(res.Paths), len(wantTargets))
	}
	for i, pr := range res.Paths {
		if pr.TargetIndex != i || pr.Target != wantTargets[i] {
			t.Errorf("path %d: target = %d %v; want %d %v", i, pr.TargetIndex, pr.Target, i, wantTargets[i])
		}
		assertWellFormed(t, g, pr.Path, pos(0, 0, 0), wantTargets[i])
	}
}

// TestRoute_VisitHookAndDeterminism: two runs visit identical sequences.
func TestRoute_VisitHookAndDeterminism(t *testing.T) {
	g := mustGrid(t, [][][]building.CellKind{
		{
			{S, E, E},
			{E, W, E},
			{E, E, R},
		},
	})
	record := func() []building.Position {
		var seen []building.Position
		_, err := route.Route(g, route.WithOnVisit(func(p building.Position, _ int) {
			seen = append(seen, p)
		}))
		if err != nil {
			t.Fatal(err)
		}
		return seen
	}
	first, second := record(), record()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("visit order not deterministic:\n%v\n%v", first, second)
	}
	if len(first) == 0 || first[0] != pos(0, 0, 0) {
		t.Errorf("first visit = %v; want source (0,0,0)", first)
	}
}

// TestRoute_Cancellation verifies that a cancelled context halts routing.
func TestRoute_Cancellation(t *testing.T) {
	// one long corridor, room at the far end
	row := make([]building.CellKind, 64)
	row[0] = S
	row[len(row)-1] = R
	g := mustGrid(t, [][][]building.CellKind{{row}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := route.Route(g, route.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancellation: want context.Canceled, got %v", err)
	}
}

// assertWellFormed checks the structural path invariants: endpoints, and
// every consecutive pair either a valid same-floor unit move or a
// stair-to-stair hop at identical (row, col).
func assertWellFormed(t *testing.T, g *building.Grid, path route.Path, source, target building.Position) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("empty path")
	}
	if path[0] != source {
		t.Errorf("path starts at %v; want %v", path[0], source)
	}
	if last := path[len(path)-1]; last != target {
		t.Errorf("path ends at %v; want %v", last, target)
	}
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		if !g.IsValid(b.Floor, b.Row, b.Col) {
			t.Errorf("step %d lands on invalid cell %v", i, b)
		}
		if a.Floor == b.Floor {
			if abs(a.Row-b.Row)+abs(a.Col-b.Col) != 1 {
				t.Errorf("step %d: %v→%v is not a unit move", i, a, b)
			}
			continue
		}
		if a.Row != b.Row || a.Col != b.Col {
			t.Errorf("step %d: floor change %v→%v shifts (row,col)", i, a, b)
		}
		ka, _ := g.KindAtPosition(a)
		kb, _ := g.KindAtPosition(b)
		if ka != building.Stair || kb != building.Stair {
			t.Errorf("step %d: floor change %v→%v not stair-to-stair", i, a, b)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func inDelta(got, want float64) bool {
	d := got - want
	return d < 1e-9 && d > -1e-9
}
