// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Element identifiers, the read-only Connectivity contract and the
//       immutable Mesh value produced by Builder.
// Determinism:
//   - Identifiers are dense, 0-based and assigned in insertion order.
//   - Incidence lists (VertexEdges, EdgeFaces) are sorted ascending.
//   - Face queries (FaceVertices, FaceEdges) follow the face's cyclic order.
// Concurrency:
//   - A built Mesh is never mutated; concurrent readers need no locking.

package mesh

import "errors"

// Sentinel errors for mesh construction and queries.
var (
	// ErrTooFewVertices indicates a face with fewer than three corners, or a
	// non-positive vertex batch size.
	ErrTooFewVertices = errors.New("mesh: too few vertices")

	// ErrVertexNotFound indicates a reference to a vertex the builder never allocated.
	ErrVertexNotFound = errors.New("mesh: vertex not found")

	// ErrDegenerateFace indicates a face that repeats one of its corners.
	ErrDegenerateFace = errors.New("mesh: degenerate face")

	// ErrNonManifoldEdge indicates an edge shared by more than two faces.
	ErrNonManifoldEdge = errors.New("mesh: non-manifold edge")

	// ErrInconsistentOrientation indicates two faces traversing a shared edge
	// in the same direction.
	ErrInconsistentOrientation = errors.New("mesh: inconsistent face orientation")
)

// VertexID identifies a vertex (0-simplex) of a Mesh.
type VertexID int

// EdgeID identifies an edge (1-simplex) of a Mesh.
type EdgeID int

// FaceID identifies a face (2-cell) of a Mesh.
type FaceID int

// Connectivity is the read-only incidence surface consumed by the simplicial
// operators, the reconstructor and the boundary operator.
//
// Contract:
//   - Identifiers are in [0, Count) for their kind; behavior on other values is
//     implementation-defined (Mesh returns empty results).
//   - VertexEdges and EdgeFaces are sorted ascending.
//   - FaceEdges(f)[i] joins FaceVertices(f)[i] and FaceVertices(f)[(i+1)%n].
//   - EdgeVertices reports the edge's orientation: first → second.
//   - Returned slices are owned by the caller.
type Connectivity interface {
	VertexCount() int
	EdgeCount() int
	FaceCount() int

	// VertexEdges returns the edges incident to v.
	VertexEdges(v VertexID) []EdgeID
	// EdgeFaces returns the (at most two) faces incident to e.
	EdgeFaces(e EdgeID) []FaceID
	// EdgeVertices returns the oriented endpoints of e.
	EdgeVertices(e EdgeID) (first, second VertexID)
	// FaceEdges returns the boundary edges of f in cyclic order.
	FaceEdges(f FaceID) []EdgeID
	// FaceVertices returns the corners of f in cyclic order.
	FaceVertices(f FaceID) []VertexID
}

// edgeKey is the unordered endpoint pair of an edge, normalized lo < hi.
type edgeKey struct {
	lo, hi VertexID
}

func makeEdgeKey(u, v VertexID) edgeKey {
	if u > v {
		u, v = v, u
	}
	return edgeKey{lo: u, hi: v}
}

// Mesh is an immutable polygon mesh connectivity graph.
//
// Edges are derived from face boundaries; each edge is oriented like the
// first half-edge that introduced it while building.
type Mesh struct {
	vertexEdges [][]EdgeID     // v → incident edges (asc)
	edgeEnds    [][2]VertexID  // e → (first, second)
	edgeFaces   [][]FaceID     // e → incident faces (asc)
	faceVerts   [][]VertexID   // f → corners (cyclic)
	faceEdges   [][]EdgeID     // f → sides (cyclic, aligned with faceVerts)
	edgeIndex   map[edgeKey]EdgeID
}

// Stats is a read-only snapshot of element counts.
type Stats struct {
	Vertices      int
	Edges         int
	Faces         int
	BoundaryEdges int
	// Euler is V - E + F of the whole mesh.
	Euler int
}

// compile-time check
var _ Connectivity = (*Mesh)(nil)
