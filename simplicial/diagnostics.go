// File: diagnostics.go
// Role: Read-only structural checks over a Subset: downward closure,
//       face connectivity and isolated vertices.

package simplicial

import "github.com/katalvlaran/meshdisk/mesh"

// IsClosed reports whether s is downward closed: every side of a member face
// and every endpoint of a member edge is also a member.
func IsClosed(m mesh.Connectivity, s *Subset) bool {
	for _, f := range s.Faces() {
		for _, e := range m.FaceEdges(f) {
			if !s.HasEdge(e) {
				return false
			}
		}
	}
	for _, e := range s.Edges() {
		first, second := m.EdgeVertices(e)
		if !s.HasVertex(first) || !s.HasVertex(second) {
			return false
		}
	}
	return true
}

// FaceComponents partitions the faces of s into groups connected through
// shared edges. Components are ordered by their smallest face and each
// component is ascending. Faces touching only at a vertex land in different
// components.
//
// Time:   O(F · k) for F member faces with k sides each.
// Memory: O(F).
func FaceComponents(m mesh.Connectivity, s *Subset) [][]mesh.FaceID {
	faces := s.Faces()
	seen := make(map[mesh.FaceID]bool, len(faces))
	var comps [][]mesh.FaceID

	for _, f0 := range faces {
		if seen[f0] {
			continue
		}
		// BFS to collect component
		queue := []mesh.FaceID{f0}
		seen[f0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, e := range m.FaceEdges(queue[qi]) {
				for _, g := range m.EdgeFaces(e) {
					if !seen[g] && s.HasFace(g) {
						seen[g] = true
						queue = append(queue, g)
					}
				}
			}
		}
		comps = append(comps, FromFaces(queue...).Faces())
	}

	return comps
}

// IsolatedVertices returns the member vertices with no member edge incident
// to them, ascending.
func IsolatedVertices(m mesh.Connectivity, s *Subset) []mesh.VertexID {
	var out []mesh.VertexID
	for _, v := range s.Vertices() {
		isolated := true
		for _, e := range m.VertexEdges(v) {
			if s.HasEdge(e) {
				isolated = false
				break
			}
		}
		if isolated {
			out = append(out, v)
		}
	}
	return out
}
