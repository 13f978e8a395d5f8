// Package builder provides deterministic fixture meshes for the reconstruction
// packages, using the same functional-options composition as a graph builder:
//
//	m, err := builder.BuildMesh(
//		[]builder.BuilderOption{builder.WithQuads()},
//		builder.Grid(4, 4),
//		builder.Torus(6, 8),
//	)
//
// Each Constructor allocates its own vertex block, so composing several
// constructors yields a disjoint union in argument order.
//
// Fixtures and their topology:
//
//   - Triangle():          one face, a disk (χ = 1).
//   - Fan(n):              n triangles round a hub, a disk (χ = 1).
//   - Grid(rows, cols):    open lattice, a disk (χ = 1).
//   - Cylinder(r, s):      annulus, two boundary loops (χ = 0).
//   - Torus(r, s):         closed with one handle (χ = 0).
//   - PlatonicSolid(name): closed sphere (χ = 2).
//
// Options:
//
//   - WithQuads():                 keep quad cells instead of splitting them.
//   - WithReversedOrientation():   emit faces clockwise.
//
// Errors: ErrTooFewVertices, ErrOptionViolation, ErrConstructFailed.
package builder
