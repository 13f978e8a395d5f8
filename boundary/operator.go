// SPDX-License-Identifier: MIT
// Package boundary: signed face×edge boundary operator.
//
// Sign convention:
//   - +1 when the face traverses the edge from its first to its second
//     vertex (mesh.EdgeVertices order), −1 when it traverses it backwards.
//   - Summing the rows of a face set cancels every interior edge of a
//     consistently oriented patch; what remains is the oriented boundary.
//
// Storage is sparse: one row per face holding exactly its sides, in the
// face's cyclic order.
//
// Complexity:
//   - NewOperator: O(Σ face degree) time and space.
//   - At: O(face degree). Apply: O(k·d + b log b) for k faces of degree d
//     and b surviving edges.

package boundary

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/meshdisk/mesh"
)

// forwardMark and backwardMark are the two non-zero operator entries.
const (
	forwardMark  = +1
	backwardMark = -1
)

// Entry is one non-zero coefficient of a signed edge vector.
type Entry struct {
	Edge  mesh.EdgeID
	Value int
}

// Operator is the signed boundary matrix ∂ of a mesh: rows are faces,
// columns are edges.
type Operator struct {
	rows  [][]Entry
	edges int
}

// NewOperator builds the boundary operator of m.
// Errors: ErrMeshNil.
func NewOperator(m mesh.Connectivity) (*Operator, error) {
	if m == nil {
		return nil, fmt.Errorf("NewOperator: %w", ErrMeshNil)
	}

	rows := make([][]Entry, m.FaceCount())
	for f := range rows {
		corners := m.FaceVertices(mesh.FaceID(f))
		sides := m.FaceEdges(mesh.FaceID(f))
		row := make([]Entry, len(sides))
		for i, e := range sides {
			first, _ := m.EdgeVertices(e)
			sign := backwardMark
			if corners[i] == first {
				sign = forwardMark
			}
			row[i] = Entry{Edge: e, Value: sign}
		}
		rows[f] = row
	}

	return &Operator{rows: rows, edges: m.EdgeCount()}, nil
}

// Rows returns the number of faces.
func (op *Operator) Rows() int { return len(op.rows) }

// Cols returns the number of edges.
func (op *Operator) Cols() int { return op.edges }

// At returns ∂[f][e]: ±1 if e is a side of f, otherwise 0.
// Errors: ErrUnknownFace, ErrUnknownEdge.
func (op *Operator) At(f mesh.FaceID, e mesh.EdgeID) (int, error) {
	if f < 0 || int(f) >= len(op.rows) {
		return 0, fmt.Errorf("At: face %d not in [0,%d): %w", f, len(op.rows), ErrUnknownFace)
	}
	if e < 0 || int(e) >= op.edges {
		return 0, fmt.Errorf("At: edge %d not in [0,%d): %w", e, op.edges, ErrUnknownEdge)
	}
	for _, en := range op.rows[f] {
		if en.Edge == e {
			return en.Value, nil
		}
	}
	return 0, nil
}

// Apply returns xᵀ∂ for the indicator vector x of faces: the signed sum of
// their rows, zeros dropped, sorted by edge. Repeated faces count once.
// Errors: ErrUnknownFace.
func (op *Operator) Apply(faces []mesh.FaceID) ([]Entry, error) {
	seen := make(map[mesh.FaceID]bool, len(faces))
	sum := make(map[mesh.EdgeID]int)
	for _, f := range faces {
		if f < 0 || int(f) >= len(op.rows) {
			return nil, fmt.Errorf("Apply: face %d not in [0,%d): %w", f, len(op.rows), ErrUnknownFace)
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		for _, en := range op.rows[f] {
			sum[en.Edge] += en.Value
		}
	}

	out := make([]Entry, 0, len(sum))
	for e, v := range sum {
		if v != 0 {
			out = append(out, Entry{Edge: e, Value: v})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Edge < out[j].Edge })

	return out, nil
}
