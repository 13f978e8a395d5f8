// File: methods.go
// Role: Read-only incidence queries over a built Mesh.
// Determinism:
//   - Every query returns a fresh slice; order documented on Connectivity.
//   - Out-of-range identifiers yield empty results rather than panics.

package mesh

// VertexCount returns |V|.
func (m *Mesh) VertexCount() int { return len(m.vertexEdges) }

// EdgeCount returns |E|.
func (m *Mesh) EdgeCount() int { return len(m.edgeEnds) }

// FaceCount returns |F|.
func (m *Mesh) FaceCount() int { return len(m.faceVerts) }

// HasVertex reports whether v is a vertex of m.
func (m *Mesh) HasVertex(v VertexID) bool { return v >= 0 && int(v) < len(m.vertexEdges) }

// HasEdge reports whether e is an edge of m.
func (m *Mesh) HasEdge(e EdgeID) bool { return e >= 0 && int(e) < len(m.edgeEnds) }

// HasFace reports whether f is a face of m.
func (m *Mesh) HasFace(f FaceID) bool { return f >= 0 && int(f) < len(m.faceVerts) }

// VertexEdges returns the edges incident to v, ascending.
func (m *Mesh) VertexEdges(v VertexID) []EdgeID {
	if !m.HasVertex(v) {
		return nil
	}
	return append([]EdgeID(nil), m.vertexEdges[v]...)
}

// EdgeFaces returns the faces incident to e, ascending. Boundary edges have
// exactly one incident face.
func (m *Mesh) EdgeFaces(e EdgeID) []FaceID {
	if !m.HasEdge(e) {
		return nil
	}
	return append([]FaceID(nil), m.edgeFaces[e]...)
}

// EdgeVertices returns the oriented endpoints of e. For an unknown edge both
// results are -1.
func (m *Mesh) EdgeVertices(e EdgeID) (first, second VertexID) {
	if !m.HasEdge(e) {
		return -1, -1
	}
	ends := m.edgeEnds[e]
	return ends[0], ends[1]
}

// FaceEdges returns the sides of f in cyclic order.
func (m *Mesh) FaceEdges(f FaceID) []EdgeID {
	if !m.HasFace(f) {
		return nil
	}
	return append([]EdgeID(nil), m.faceEdges[f]...)
}

// FaceVertices returns the corners of f in cyclic order.
func (m *Mesh) FaceVertices(f FaceID) []VertexID {
	if !m.HasFace(f) {
		return nil
	}
	return append([]VertexID(nil), m.faceVerts[f]...)
}

// EdgeBetween returns the edge joining u and v, if any. Orientation is ignored.
//
// Complexity: O(1).
func (m *Mesh) EdgeBetween(u, v VertexID) (EdgeID, bool) {
	e, ok := m.edgeIndex[makeEdgeKey(u, v)]
	return e, ok
}

// IsBoundaryEdge reports whether e has exactly one incident face.
func (m *Mesh) IsBoundaryEdge(e EdgeID) bool {
	return m.HasEdge(e) && len(m.edgeFaces[e]) == 1
}

// Stats returns element counts and the Euler characteristic of the mesh.
//
// Complexity: O(E).
func (m *Mesh) Stats() Stats {
	st := Stats{
		Vertices: m.VertexCount(),
		Edges:    m.EdgeCount(),
		Faces:    m.FaceCount(),
	}
	for _, fs := range m.edgeFaces {
		if len(fs) == 1 {
			st.BoundaryEdges++
		}
	}
	st.Euler = st.Vertices - st.Edges + st.Faces

	return st
}
