// SPDX-License-Identifier: MIT
// Package: meshdisk/builder
//
// variants_platonic.go: canonical face tables for PlatonicSolid.
//
// Every table lists faces counter-clockwise as seen from outside, so each
// edge is traversed once in each direction (closed, orientable, χ = 2).

package builder

// PlatonicName enumerates the supported solids.
type PlatonicName string

// Supported solids. The dodecahedron is omitted: its pentagons add nothing a
// cube's quads do not already exercise.
const (
	Tetrahedron PlatonicName = "Tetrahedron"
	Cube        PlatonicName = "Cube"
	Octahedron  PlatonicName = "Octahedron"
	Icosahedron PlatonicName = "Icosahedron"
)

// platonicVertexCounts maps each solid to its vertex count.
var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron: 4,
	Cube:        8,
	Octahedron:  6,
	Icosahedron: 12,
}

// platonicFaces maps each solid to its outward-oriented faces.
var platonicFaces = map[PlatonicName][][]int{
	Tetrahedron: {
		{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2},
	},
	// vertex i = x + 2y + 4z on the unit cube
	Cube: {
		{0, 2, 3, 1}, {4, 5, 7, 6},
		{0, 1, 5, 4}, {2, 6, 7, 3},
		{0, 4, 6, 2}, {1, 3, 7, 5},
	},
	// ±x = 0,1; ±y = 2,3; ±z = 4,5
	Octahedron: {
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	},
	Icosahedron: {
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	},
}
