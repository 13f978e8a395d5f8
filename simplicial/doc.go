// Package simplicial implements the simplicial-subset algebra used to grow
// and shrink mesh regions.
//
// A Subset selects vertices (0-simplices), edges (1-simplices) and faces
// (2-cells) of a mesh.Connectivity. Members are kept in ordered sets, so
// every snapshot is ascending by identifier and algorithms that sweep a
// Subset are reproducible.
//
// Operators:
//
//   - Star(m, S):    S plus incident edges of its vertices, then incident
//     faces of the resulting edges (one hop outward).
//   - Closure(m, S): S plus sides of its faces, then endpoints of the
//     resulting edges (one hop downward).
//   - GrowDisk(m, S): S ← Closure(Star(S)), in place.
//   - EulerCharacteristic(S): |V| - |E| + |F|.
//
// Diagnostics IsClosed, FaceComponents and IsolatedVertices inspect a Subset
// without changing it.
//
// Subset is not safe for concurrent mutation. The mesh is only read.
package simplicial
