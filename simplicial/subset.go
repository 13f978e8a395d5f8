// SPDX-License-Identifier: MIT
//
// File: subset.go
// Role: Subset, a mutable selection of vertices, edges and faces of one mesh,
//       with total set-algebra operations.
// Determinism:
//   - Vertices(), Edges(), Faces() return ascending snapshots.
//   - Equality ignores insertion order.
// Concurrency:
//   - Not safe for concurrent mutation; one owner per Subset. Clone to share.
// Invariants:
//   - Members are unique per kind.
//   - Downward closure is NOT enforced here; Closure establishes it and
//     IsClosed checks it. Transient non-closed states are legal.

package simplicial

import (
	"fmt"

	"github.com/katalvlaran/meshdisk/mesh"
)

// Subset is a collection of vertex, edge and face identifiers.
// The zero value is an empty Subset ready to use.
type Subset struct {
	vertices idSet[mesh.VertexID]
	edges    idSet[mesh.EdgeID]
	faces    idSet[mesh.FaceID]
}

// New returns an empty Subset.
func New() *Subset {
	return &Subset{}
}

// NewSubset returns a Subset holding the given vertices, edges and faces.
// Duplicates collapse.
func NewSubset(vs []mesh.VertexID, es []mesh.EdgeID, fs []mesh.FaceID) *Subset {
	return &Subset{
		vertices: newIDSet(vs...),
		edges:    newIDSet(es...),
		faces:    newIDSet(fs...),
	}
}

// FromVertices returns a Subset holding only the given vertices.
func FromVertices(vs ...mesh.VertexID) *Subset { return NewSubset(vs, nil, nil) }

// FromEdges returns a Subset holding only the given edges.
func FromEdges(es ...mesh.EdgeID) *Subset { return NewSubset(nil, es, nil) }

// FromFaces returns a Subset holding only the given faces.
func FromFaces(fs ...mesh.FaceID) *Subset { return NewSubset(nil, nil, fs) }

// Clone returns a deep copy of s. A nil s clones to an empty Subset.
func (s *Subset) Clone() *Subset {
	if s == nil {
		return New()
	}
	return &Subset{
		vertices: s.vertices.clone(),
		edges:    s.edges.clone(),
		faces:    s.faces.clone(),
	}
}

// --- vertices ---------------------------------------------------------------

// AddVertex inserts v; a no-op if present.
func (s *Subset) AddVertex(v mesh.VertexID) { s.vertices.add(v) }

// AddVertices inserts every v in vs.
func (s *Subset) AddVertices(vs ...mesh.VertexID) { s.vertices.add(vs...) }

// DeleteVertex removes v; a no-op if absent.
func (s *Subset) DeleteVertex(v mesh.VertexID) { s.vertices.remove(v) }

// DeleteVertices removes every v in vs.
func (s *Subset) DeleteVertices(vs ...mesh.VertexID) { s.vertices.remove(vs...) }

// HasVertex reports membership of v.
func (s *Subset) HasVertex(v mesh.VertexID) bool { return s != nil && s.vertices.has(v) }

// Vertices returns the member vertices in ascending order.
func (s *Subset) Vertices() []mesh.VertexID {
	if s == nil {
		return nil
	}
	return s.vertices.values()
}

// --- edges ------------------------------------------------------------------

// AddEdge inserts e; a no-op if present.
func (s *Subset) AddEdge(e mesh.EdgeID) { s.edges.add(e) }

// AddEdges inserts every e in es.
func (s *Subset) AddEdges(es ...mesh.EdgeID) { s.edges.add(es...) }

// DeleteEdge removes e; a no-op if absent.
func (s *Subset) DeleteEdge(e mesh.EdgeID) { s.edges.remove(e) }

// DeleteEdges removes every e in es.
func (s *Subset) DeleteEdges(es ...mesh.EdgeID) { s.edges.remove(es...) }

// HasEdge reports membership of e.
func (s *Subset) HasEdge(e mesh.EdgeID) bool { return s != nil && s.edges.has(e) }

// Edges returns the member edges in ascending order.
func (s *Subset) Edges() []mesh.EdgeID {
	if s == nil {
		return nil
	}
	return s.edges.values()
}

// --- faces ------------------------------------------------------------------

// AddFace inserts f; a no-op if present.
func (s *Subset) AddFace(f mesh.FaceID) { s.faces.add(f) }

// AddFaces inserts every f in fs.
func (s *Subset) AddFaces(fs ...mesh.FaceID) { s.faces.add(fs...) }

// DeleteFace removes f; a no-op if absent.
func (s *Subset) DeleteFace(f mesh.FaceID) { s.faces.remove(f) }

// DeleteFaces removes every f in fs.
func (s *Subset) DeleteFaces(fs ...mesh.FaceID) { s.faces.remove(fs...) }

// HasFace reports membership of f.
func (s *Subset) HasFace(f mesh.FaceID) bool { return s != nil && s.faces.has(f) }

// Faces returns the member faces in ascending order.
func (s *Subset) Faces() []mesh.FaceID {
	if s == nil {
		return nil
	}
	return s.faces.values()
}

// --- whole-subset algebra ---------------------------------------------------

// AddSubset merges o into s (union in place). A nil o is a no-op.
func (s *Subset) AddSubset(o *Subset) {
	if o == nil {
		return
	}
	s.AddVertices(o.Vertices()...)
	s.AddEdges(o.Edges()...)
	s.AddFaces(o.Faces()...)
}

// DeleteSubset removes every member of o from s (difference in place).
func (s *Subset) DeleteSubset(o *Subset) {
	if o == nil {
		return
	}
	s.DeleteVertices(o.Vertices()...)
	s.DeleteEdges(o.Edges()...)
	s.DeleteFaces(o.Faces()...)
}

// Equals reports whether s and o hold exactly the same vertices, edges and
// faces. A nil Subset equals an empty one.
func (s *Subset) Equals(o *Subset) bool {
	if s == nil {
		s = New()
	}
	if o == nil {
		o = New()
	}
	return s.vertices.equals(o.vertices) &&
		s.edges.equals(o.edges) &&
		s.faces.equals(o.faces)
}

// Contains reports whether s ⊇ o.
func (s *Subset) Contains(o *Subset) bool {
	if o == nil {
		return true
	}
	if s == nil {
		s = New()
	}
	return s.vertices.containsAll(o.vertices) &&
		s.edges.containsAll(o.edges) &&
		s.faces.containsAll(o.faces)
}

// Counts returns |V|, |E| and |F|.
func (s *Subset) Counts() (v, e, f int) {
	if s == nil {
		return 0, 0, 0
	}
	return s.vertices.len(), s.edges.len(), s.faces.len()
}

// Size returns |V| + |E| + |F|.
func (s *Subset) Size() int {
	v, e, f := s.Counts()
	return v + e + f
}

// IsEmpty reports whether s has no members.
func (s *Subset) IsEmpty() bool { return s.Size() == 0 }

// String renders the counts, e.g. "Subset{V:3 E:3 F:1}".
func (s *Subset) String() string {
	v, e, f := s.Counts()
	return fmt.Sprintf("Subset{V:%d E:%d F:%d}", v, e, f)
}
