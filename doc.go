// Package ductroute plans air-conditioning duct installations through
// multi-floor buildings — from a text blueprint to routed, costed,
// rendered pipe runs.
//
// 🚀 What is ductroute?
//
//	A small, synchronous library plus CLI that brings together:
//		• building  — the read-only 3D grid model (walls, rooms, stairs, source)
//		• layout    — the tolerant text-blueprint loader
//		• route     — per-room breadth-first duct routing with hooks
//		• energy    — the deterministic energy-cost model
//		• simplify  — the greedy waypoint-reduction pass
//		• blueprint — ASCII floor plans, legends and path reports
//
// ✨ Why choose ductroute?
//
//   - Deterministic – fixed exploration order, pure cost function,
//     identical output on every run
//   - Honest about failure – unreachable rooms are reported, not fatal
//   - Clean boundary – the core returns structured data; every string
//     lives in the blueprint package
//
// Pipeline at a glance:
//
//	layout.Load ──▶ route.Route ──▶ simplify.Optimize ──▶ blueprint.Render
//	                    │
//	                    └── energy.Model prices every path, uniformly on
//	                        dense cell-by-cell expansions
//
// Quick ASCII example, one floor:
//
//	S ─ ┐ ·
//	· █ │ ·
//	· █ └ R
//
//	a duct leaving the source S, bending around the wall █ into room R.
//
// Route is hop-count-shortest (classic BFS), deliberately not
// minimum-energy; simplify trims what greedy straight-line skips can
// trim and never makes a path more expensive. See each package's doc.go
// for contracts, complexity and error semantics.
package ductroute
