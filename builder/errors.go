// SPDX-License-Identifier: MIT
// Package: meshdisk/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("Grid: rows=1: builder: ...").
//   • Constructors never panic; option constructors may (programmer error).

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum
// (e.g. Fan(n<3), Grid(rows<2), Torus(rings<3)).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrOptionViolation indicates an invalid parameter value that is not a size,
// such as an unknown Platonic solid name.
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrConstructFailed indicates the underlying mesh builder rejected the
// emitted topology, or a nil constructor was supplied.
var ErrConstructFailed = errors.New("builder: construction failed")
