// SPDX-License-Identifier: MIT
// Package: meshdisk/builder
//
// impl_grid.go: Grid, Cylinder and Torus, quad lattices with 0, 1 or 2
// wrapped directions.
//
// Indexing (row-major, within the constructor's vertex block):
//   • vertex(r, c) = first + r*cols + c
//   • cell (r, c) = vertex(r,c) → vertex(r,c+1) → vertex(r+1,c+1) → vertex(r+1,c)
//   • unless WithQuads, each cell splits along vertex(r,c)–vertex(r+1,c+1).
//
// Topology:
//   • Grid      open sheet, a disk (χ = 1).
//   • Cylinder  columns wrap: an annulus with two boundary loops (χ = 0).
//   • Torus     rows and columns wrap: closed genus-1 surface (χ = 0).

package builder

import (
	"fmt"

	"github.com/katalvlaran/meshdisk/mesh"
)

const (
	methodGrid     = "Grid"
	methodCylinder = "Cylinder"
	methodTorus    = "Torus"

	minGridDim  = 2 // vertices per side of an open direction
	minWrapSize = 3 // vertices around a wrapped direction (no parallel edges)
)

// Grid builds a rows×cols vertex sheet ((rows-1)×(cols-1) cells).
// Requires rows, cols ≥ 2. Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(b *mesh.Builder, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: %dx%d below %d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		return lattice(b, cfg, methodGrid, rows, cols, false, false)
	}
}

// Cylinder builds rings stacked rows of segments vertices, wrapping around
// each ring. Requires rings ≥ 2, segments ≥ 3. Complexity: O(rings·segments).
func Cylinder(rings, segments int) Constructor {
	return func(b *mesh.Builder, cfg builderConfig) error {
		if rings < minGridDim || segments < minWrapSize {
			return fmt.Errorf("%s: rings=%d segments=%d: %w", methodCylinder, rings, segments, ErrTooFewVertices)
		}
		return lattice(b, cfg, methodCylinder, rings, segments, false, true)
	}
}

// Torus builds a rings×segments lattice wrapping in both directions.
// Requires rings, segments ≥ 3. Complexity: O(rings·segments).
func Torus(rings, segments int) Constructor {
	return func(b *mesh.Builder, cfg builderConfig) error {
		if rings < minWrapSize || segments < minWrapSize {
			return fmt.Errorf("%s: rings=%d segments=%d: %w", methodTorus, rings, segments, ErrTooFewVertices)
		}
		return lattice(b, cfg, methodTorus, rings, segments, true, true)
	}
}

// lattice emits the cells of a rows×cols vertex block, wrapping rows and/or
// columns as requested. Cells are emitted row by row, left to right.
func lattice(b *mesh.Builder, cfg builderConfig, method string, rows, cols int, wrapRows, wrapCols bool) error {
	first, err := b.AddVertices(rows * cols)
	if err != nil {
		return fmt.Errorf("%s: %v: %w", method, err, ErrConstructFailed)
	}
	at := func(r, c int) mesh.VertexID {
		return first + mesh.VertexID((r%rows)*cols+c%cols)
	}

	cellRows, cellCols := rows-1, cols-1
	if wrapRows {
		cellRows = rows
	}
	if wrapCols {
		cellCols = cols
	}

	for r := 0; r < cellRows; r++ {
		for c := 0; c < cellCols; c++ {
			if err = emitQuad(b, cfg, method, at(r, c), at(r, c+1), at(r+1, c+1), at(r+1, c)); err != nil {
				return err
			}
		}
	}
	return nil
}
