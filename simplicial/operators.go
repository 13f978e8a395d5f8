// SPDX-License-Identifier: MIT
//
// File: operators.go
// Role: One-hop simplicial operators Star and Closure, their composition
//       GrowDisk, and the Euler characteristic.
// Policy:
//   - Star and Closure never mutate their input and only ever add members,
//     so S ⊆ Star(S), S ⊆ Closure(S), S ⊆ GrowDisk(S).
//   - Each operator is a single pass, never a fixed point; convergence is the
//     caller's loop.

package simplicial

import "github.com/katalvlaran/meshdisk/mesh"

// Star returns St(S) as a new Subset:
//
//	(a) every edge incident to a vertex of S is added;
//	(b) every face incident to an edge of the result of (a) is added.
//
// Vertices are left unchanged.
//
// Complexity: O((|V|·deg + |E|) · log n) with tree-backed sets.
func Star(m mesh.Connectivity, s *Subset) *Subset {
	out := s.Clone()

	for _, v := range out.Vertices() {
		out.AddEdges(m.VertexEdges(v)...)
	}
	// Edges() snapshots after (a), so just-added edges contribute faces.
	for _, e := range out.Edges() {
		out.AddFaces(m.EdgeFaces(e)...)
	}

	return out
}

// Closure returns Cl(S) as a new Subset:
//
//	(a) every side of a face of S is added;
//	(b) both endpoints of every edge of the result of (a) are added.
//
// The result is downward closed with respect to the faces and edges of S.
func Closure(m mesh.Connectivity, s *Subset) *Subset {
	out := s.Clone()

	for _, f := range out.Faces() {
		out.AddEdges(m.FaceEdges(f)...)
	}
	for _, e := range out.Edges() {
		first, second := m.EdgeVertices(e)
		out.AddVertices(first, second)
	}

	return out
}

// GrowDisk replaces *s with Cl(St(S)), the unit of region expansion.
// It reports whether s gained any member; since growth is monotone, false
// means s is a fixed point of GrowDisk.
func GrowDisk(m mesh.Connectivity, s *Subset) bool {
	before := s.Size()
	*s = *Closure(m, Star(m, s))

	return s.Size() != before
}

// EulerCharacteristic returns χ(S) = |V| - |E| + |F|.
//
// For a connected patch with no handles and exactly one boundary loop χ = 1.
// χ alone cannot tell a handle from a compensating extra hole.
func EulerCharacteristic(s *Subset) int {
	v, e, f := s.Counts()
	return v - e + f
}
