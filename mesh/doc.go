// Package mesh provides the immutable polygon-mesh connectivity consumed by
// the region-reconstruction packages.
//
// A Mesh is a fixed graph of vertices, edges and faces with dense integer
// identifiers. It is assembled from face-vertex lists:
//
//	b := mesh.NewBuilder()
//	first, _ := b.AddVertices(3)
//	b.AddFace(first, first+1, first+2)
//	m, err := b.Build()
//
// Edges are derived from face sides and oriented like the first half-edge
// that introduced them, which gives every face a ±1 relation to each of its
// sides (see package boundary).
//
// Everything downstream depends only on the Connectivity interface, so a
// caller with its own half-edge structure can plug it in directly.
//
// Errors:
//
//	ErrTooFewVertices          - face with < 3 corners, or empty vertex batch.
//	ErrVertexNotFound          - face corner outside the allocated range.
//	ErrDegenerateFace          - face repeats a corner.
//	ErrNonManifoldEdge         - edge shared by more than two faces.
//	ErrInconsistentOrientation - neighbouring faces disagree on orientation.
package mesh
