// SPDX-License-Identifier: MIT
// Package boundary: sentinel error set.
// Every message is prefixed with "boundary: "; callers match with errors.Is.
// Context is added at the call site with fmt.Errorf("Method: ...: %w", ErrX).

package boundary

import "errors"

var (
	// ErrMeshNil indicates that a nil mesh was passed.
	ErrMeshNil = errors.New("boundary: mesh is nil")

	// ErrUnknownFace indicates a face id outside [0, FaceCount).
	ErrUnknownFace = errors.New("boundary: unknown face id")

	// ErrUnknownEdge indicates an edge id outside [0, EdgeCount).
	ErrUnknownEdge = errors.New("boundary: unknown edge id")

	// ErrAmbiguousBoundary indicates that the boundary cannot be walked as a
	// single simple cycle: two boundary half-edges leave (or enter) the same
	// vertex, as at a pinch point where faces meet only at a corner.
	ErrAmbiguousBoundary = errors.New("boundary: ambiguous boundary at vertex")

	// ErrOpenBoundary indicates a boundary chain that stops at a vertex with
	// no outgoing half-edge.
	ErrOpenBoundary = errors.New("boundary: boundary chain is open")

	// ErrMultipleLoops indicates that the walk closed before every boundary
	// half-edge was used.
	ErrMultipleLoops = errors.New("boundary: more than one boundary loop")
)
