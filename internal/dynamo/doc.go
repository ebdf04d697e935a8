// Package dynamo provides the core primitives shared by the simulation and
// the render loop.
//
// The package defines the boundary with the graphics collaborator:
//
//   - [Point], [Rect]: integer screen geometry
//   - [Surface]: primitive 2D drawing target (lines, outlines, polylines)
//   - [Input]: source of [Event] values (quit, key down, mouse button down)
//
// Both interfaces are implemented by the raylib backend in internal/gui and
// by in-memory fakes in tests.
//
// # Errors
//
// Every error in gravbox is fatal. The sentinels in this package let callers
// tell which side of the pipeline failed with [errors.Is].
//
// # Thread Safety
//
// Surface and Input are owned by the render loop and must not be shared with
// the simulation worker.
package dynamo
