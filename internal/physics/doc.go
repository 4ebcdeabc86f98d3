// Package physics implements the curve-following marble core.
//
// A [Marble] free-falls under gravity until a curve comes within its path
// threshold, then snaps onto it and follows the local tangent:
//
//   - [DerivativeY] / [DerivativeX]: central-difference slope estimation
//   - [PathVelocity]: per-kind tangent velocity, point-cloud based for
//     implicit curves
//   - [ClosestPoint]: bounded nearest-point search per curve kind
//   - [SelectPath]: lookahead scoring of simultaneously eligible paths
//     against uncollected stars
//   - [Marble.Update]: the per-tick state machine blending free-fall and
//     path-constrained motion
//
// # Failure policy
//
// Curves signal undefined points with NaN. Every estimate that touches a
// curve degrades to a safe default on non-finite input (zero slope,
// (speed, 0) tangent, skipped sample), so a tick never fails and never
// writes a non-finite velocity.
package physics
