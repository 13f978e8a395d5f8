// SPDX-License-Identifier: MIT
// Package boundary: half-edges and boundary loop stitching.

package boundary

import (
	"fmt"

	"github.com/katalvlaran/meshdisk/mesh"
)

// HalfEdge is an edge together with a direction of travel.
type HalfEdge struct {
	Edge mesh.EdgeID
	Tail mesh.VertexID
	Head mesh.VertexID
}

// HalfEdges orients every non-zero entry of op.Apply(faces) by its sign.
// The result is sorted by edge.
// Errors: ErrMeshNil, ErrUnknownFace, and ErrAmbiguousBoundary when a
// coefficient is not ±1 (faces of inconsistent orientation).
func HalfEdges(m mesh.Connectivity, op *Operator, faces []mesh.FaceID) ([]HalfEdge, error) {
	if m == nil || op == nil {
		return nil, fmt.Errorf("HalfEdges: %w", ErrMeshNil)
	}
	entries, err := op.Apply(faces)
	if err != nil {
		return nil, fmt.Errorf("HalfEdges: %w", err)
	}

	out := make([]HalfEdge, 0, len(entries))
	for _, en := range entries {
		first, second := m.EdgeVertices(en.Edge)
		switch en.Value {
		case forwardMark:
			out = append(out, HalfEdge{Edge: en.Edge, Tail: first, Head: second})
		case backwardMark:
			out = append(out, HalfEdge{Edge: en.Edge, Tail: second, Head: first})
		default:
			return nil, fmt.Errorf("HalfEdges: edge %d has coefficient %d: %w", en.Edge, en.Value, ErrAmbiguousBoundary)
		}
	}
	return out, nil
}

// Loop stitches the boundary of faces into one ordered cycle:
// loop[i].Head == loop[i+1].Tail, and the last head is the first tail.
// The walk starts at the smallest tail vertex. A face set without boundary
// (empty or closed) yields an empty loop.
//
// Errors:
//   - ErrMeshNil, ErrUnknownFace for invalid input.
//   - ErrAmbiguousBoundary when two boundary half-edges share a tail or a head.
//   - ErrOpenBoundary when the chain reaches a vertex with no continuation.
//   - ErrMultipleLoops when the cycle closes with half-edges left over.
//
// Complexity: O(k·d + b log b) for k faces of degree d and b boundary edges.
func Loop(m mesh.Connectivity, faces []mesh.FaceID) ([]HalfEdge, error) {
	op, err := NewOperator(m)
	if err != nil {
		return nil, fmt.Errorf("Loop: %w", err)
	}
	hes, err := HalfEdges(m, op, faces)
	if err != nil {
		return nil, fmt.Errorf("Loop: %w", err)
	}
	if len(hes) == 0 {
		return nil, nil
	}

	byTail := make(map[mesh.VertexID]HalfEdge, len(hes))
	start := hes[0].Tail
	for _, he := range hes {
		if _, dup := byTail[he.Tail]; dup {
			return nil, fmt.Errorf("Loop: vertex %d: %w", he.Tail, ErrAmbiguousBoundary)
		}
		byTail[he.Tail] = he
		if he.Tail < start {
			start = he.Tail
		}
	}

	out := make([]HalfEdge, 0, len(hes))
	visited := make(map[mesh.VertexID]bool, len(hes))
	cur := start
	for {
		he, ok := byTail[cur]
		if !ok {
			return nil, fmt.Errorf("Loop: no half-edge leaves vertex %d: %w", cur, ErrOpenBoundary)
		}
		visited[cur] = true
		out = append(out, he)
		cur = he.Head
		if cur == start {
			break
		}
		if visited[cur] {
			return nil, fmt.Errorf("Loop: vertex %d entered twice: %w", cur, ErrAmbiguousBoundary)
		}
	}

	if len(out) < len(hes) {
		return nil, fmt.Errorf("Loop: cycle of %d closes with %d half-edges unused: %w",
			len(out), len(hes)-len(out), ErrMultipleLoops)
	}
	return out, nil
}

// Vertices lists the tail of every half-edge of loop, in walk order.
func Vertices(loop []HalfEdge) []mesh.VertexID {
	out := make([]mesh.VertexID, len(loop))
	for i, he := range loop {
		out[i] = he.Tail
	}
	return out
}
