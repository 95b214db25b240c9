// File: building/example_test.go
package building_test

import (
	"fmt"

	"github.com/katalvlaran/ductroute/building"
)

// ExampleGrid_FindAll demonstrates locating every destination room in a
// single-floor layout.
// Scenario:
//
//   - 3×4 floor: source in the north-west corner, two rooms, one wall run.
//   - FindAll scans row-major, so rooms enumerate left-to-right, top-to-bottom.
func ExampleGrid_FindAll() {
	const (
		E = building.Empty
		W = building.Wall
		S = building.Source
		R = building.Room
	)
	g, _ := building.From3D([][][]building.CellKind{
		{
			{S, E, E, R},
			{E, W, W, E},
			{E, E, R, E},
		},
	})

	for i, room := range g.FindAll(building.Room) {
		fmt.Printf("room %d at %s\n", i+1, room)
	}

	// Output:
	// room 1 at (0,0,3)
	// room 2 at (0,2,2)
}
