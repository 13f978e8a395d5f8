// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Incremental, validating construction of an immutable Mesh from
//       face-vertex polygon lists.
// Determinism:
//   - Vertex IDs follow AddVertices order, face IDs follow AddFace order.
//   - Edge IDs follow first appearance while walking faces in ID order and
//     each face's corners in cyclic order.

package mesh

import (
	"fmt"
	"sort"
)

const (
	methodAddVertices = "AddVertices"
	methodAddFace     = "AddFace"
	methodBuild       = "Build"
	minFaceCorners    = 3
)

// Builder accumulates vertices and faces and assembles a Mesh.
// A Builder is not safe for concurrent use.
type Builder struct {
	nVerts int
	faces  [][]VertexID
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// VertexCount returns the number of vertices allocated so far.
func (b *Builder) VertexCount() int {
	return b.nVerts
}

// FaceCount returns the number of faces added so far.
func (b *Builder) FaceCount() int {
	return len(b.faces)
}

// AddVertices allocates n new vertices and returns the ID of the first one;
// the batch occupies [first, first+n).
//
// Errors:
//   - ErrTooFewVertices if n < 1.
func (b *Builder) AddVertices(n int) (VertexID, error) {
	if n < 1 {
		return 0, fmt.Errorf("%s: n=%d: %w", methodAddVertices, n, ErrTooFewVertices)
	}
	first := VertexID(b.nVerts)
	b.nVerts += n

	return first, nil
}

// AddFace appends a face whose corners are given in cyclic order and returns
// its ID. The corner slice is copied.
//
// Errors:
//   - ErrTooFewVertices if fewer than three corners are given.
//   - ErrVertexNotFound if a corner was never allocated.
//   - ErrDegenerateFace if a corner repeats.
func (b *Builder) AddFace(corners ...VertexID) (FaceID, error) {
	if len(corners) < minFaceCorners {
		return 0, fmt.Errorf("%s: %d corners: %w", methodAddFace, len(corners), ErrTooFewVertices)
	}
	seen := make(map[VertexID]struct{}, len(corners))
	for _, v := range corners {
		if v < 0 || int(v) >= b.nVerts {
			return 0, fmt.Errorf("%s: vertex %d of %d: %w", methodAddFace, v, b.nVerts, ErrVertexNotFound)
		}
		if _, dup := seen[v]; dup {
			return 0, fmt.Errorf("%s: vertex %d repeated: %w", methodAddFace, v, ErrDegenerateFace)
		}
		seen[v] = struct{}{}
	}
	f := FaceID(len(b.faces))
	b.faces = append(b.faces, append([]VertexID(nil), corners...))

	return f, nil
}

// Build assembles the Mesh. The Builder may keep being used afterwards;
// later additions do not affect meshes already built.
//
// Errors:
//   - ErrNonManifoldEdge if an edge would be shared by more than two faces.
//   - ErrInconsistentOrientation if two faces traverse an edge the same way.
//
// Complexity: O(V + Σ|face|) time and space.
func (b *Builder) Build() (*Mesh, error) {
	m := &Mesh{
		vertexEdges: make([][]EdgeID, b.nVerts),
		faceVerts:   make([][]VertexID, len(b.faces)),
		faceEdges:   make([][]EdgeID, len(b.faces)),
		edgeIndex:   make(map[edgeKey]EdgeID),
	}

	for fi, corners := range b.faces {
		f := FaceID(fi)
		n := len(corners)
		m.faceVerts[f] = append([]VertexID(nil), corners...)
		sides := make([]EdgeID, n)

		for i := 0; i < n; i++ {
			tail, head := corners[i], corners[(i+1)%n]
			key := makeEdgeKey(tail, head)

			e, ok := m.edgeIndex[key]
			if !ok {
				// New edge: oriented like this half-edge.
				e = EdgeID(len(m.edgeEnds))
				m.edgeIndex[key] = e
				m.edgeEnds = append(m.edgeEnds, [2]VertexID{tail, head})
				m.edgeFaces = append(m.edgeFaces, nil)
				m.vertexEdges[tail] = append(m.vertexEdges[tail], e)
				m.vertexEdges[head] = append(m.vertexEdges[head], e)
			} else {
				switch {
				case len(m.edgeFaces[e]) >= 2:
					return nil, fmt.Errorf("%s: edge %d (%d,%d) at face %d: %w",
						methodBuild, e, key.lo, key.hi, f, ErrNonManifoldEdge)
				case m.edgeEnds[e][0] == tail:
					// The first face used tail→head as well.
					return nil, fmt.Errorf("%s: edge %d (%d→%d) at face %d: %w",
						methodBuild, e, tail, head, f, ErrInconsistentOrientation)
				}
			}
			m.edgeFaces[e] = append(m.edgeFaces[e], f)
			sides[i] = e
		}
		m.faceEdges[f] = sides
	}

	// Incidence lists are appended in ID order already; sort anyway so the
	// ascending contract does not depend on the assembly order above.
	for v := range m.vertexEdges {
		es := m.vertexEdges[v]
		sort.Slice(es, func(i, j int) bool { return es[i] < es[j] })
	}

	return m, nil
}

// FromPolygons builds a Mesh with nVerts vertices and the given faces, each a
// list of vertex indices in cyclic order.
func FromPolygons(nVerts int, faces [][]int) (*Mesh, error) {
	b := NewBuilder()
	if _, err := b.AddVertices(nVerts); err != nil {
		return nil, fmt.Errorf("FromPolygons: %w", err)
	}
	for i, face := range faces {
		corners := make([]VertexID, len(face))
		for j, v := range face {
			corners[j] = VertexID(v)
		}
		if _, err := b.AddFace(corners...); err != nil {
			return nil, fmt.Errorf("FromPolygons: face %d: %w", i, err)
		}
	}

	return b.Build()
}
