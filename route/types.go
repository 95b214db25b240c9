// Package route defines tunable options, result types and sentinel errors
// for duct routing over a building grid.
package route

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/ductroute/building"
	"github.com/katalvlaran/ductroute/energy"
)

// Sentinel errors for Route execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("route: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("route: invalid option supplied")
)

// Path is an ordered sequence of positions from the source toward a room.
// Router output is dense (unit steps); after simplification a Path holds
// only waypoints where direction or floor changes.
type Path []building.Position

// PathResult describes one routed duct. EnergyCost is always the model
// cost of the dense expansion of Path; EnergySaved is non-zero only after
// a successful simplification pass.
type PathResult struct {
	// TargetIndex is the room's position in FindAll(Room) order.
	TargetIndex int
	// Target is the destination room cell.
	Target building.Position
	// Path runs from the source (first element) to Target (last element).
	Path Path
	// Steps is len(Path).
	Steps int
	// EnergyCost is the energy of Path's dense expansion.
	EnergyCost float64
	// EnergySaved is the cost reduction achieved by simplification, if any.
	EnergySaved float64
}

// Result holds the outcome of one routing run:
//   - Paths: one PathResult per reachable room, in target order.
//   - Unreached: rooms no duct can reach, in target order.
type Result struct {
	Paths     []PathResult
	Unreached []building.Position
}

// Option configures Route behavior via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when Route is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize routing.
type Options struct {
	// Ctx allows cancellation and deadlines, checked between dequeues.
	Ctx context.Context

	// Model prices the discovered paths.
	Model energy.Model

	// OnVisit is called on every dequeue with the position and its BFS
	// depth from the source.
	OnVisit func(p building.Position, depth int)

	// OnUnreachable is called once per room whose search exhausts the
	// queue without reaching it.
	OnUnreachable func(target building.Position)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - energy.DefaultModel()
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Model:         energy.DefaultModel(),
		OnVisit:       func(building.Position, int) {},
		OnUnreachable: func(building.Position) {},
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithModel replaces the default energy model used to price paths.
// Negative constants are rejected as ErrOptionViolation.
func WithModel(m energy.Model) Option {
	return func(o *Options) {
		if m.Horizontal < 0 || m.VerticalUp < 0 || m.VerticalDown < 0 ||
			m.Turn < 0 || m.BasePressure < 0 {
			o.err = fmt.Errorf("%w: energy model constants must be non-negative (%+v)", ErrOptionViolation, m)
			return
		}
		o.Model = m
	}
}

// WithOnVisit registers a callback to run on every dequeue.
func WithOnVisit(fn func(p building.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnUnreachable registers a callback to run for each unreachable room.
func WithOnUnreachable(fn func(target building.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnUnreachable = fn
		}
	}
}
