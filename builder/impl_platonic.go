// SPDX-License-Identifier: MIT
// Package: meshdisk/builder
//
// impl_platonic.go: PlatonicSolid(name) for closed genus-0 surfaces.
//
// Contract:
//   • Unknown name → ErrOptionViolation.
//   • Vertices are allocated as one block in table order; faces follow the
//     table in variants_platonic.go.
//   • Cube faces are quads and honor WithQuads like the lattices do.

package builder

import (
	"fmt"

	"github.com/katalvlaran/meshdisk/mesh"
)

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid builds the named solid's surface.
// Complexity: O(V+F) with V ≤ 12, F ≤ 20.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(b *mesh.Builder, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		faces, ok := platonicFaces[name]
		if !ok {
			return fmt.Errorf("%s: missing face table for %q: %w", methodPlatonicSolid, name, ErrConstructFailed)
		}

		first, err := b.AddVertices(n)
		if err != nil {
			return fmt.Errorf("%s: %v: %w", methodPlatonicSolid, err, ErrConstructFailed)
		}
		for _, face := range faces {
			corners := make([]mesh.VertexID, len(face))
			for i, v := range face {
				corners[i] = first + mesh.VertexID(v)
			}
			if len(corners) == 4 {
				err = emitQuad(b, cfg, methodPlatonicSolid, corners[0], corners[1], corners[2], corners[3])
			} else {
				err = emit(b, cfg, methodPlatonicSolid, corners...)
			}
			if err != nil {
				return err
			}
		}
		return nil
	}
}

// ParsePlatonicName resolves a case-sensitive solid name.
func ParsePlatonicName(s string) (PlatonicName, error) {
	name := PlatonicName(s)
	if _, ok := platonicVertexCounts[name]; !ok {
		return "", fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, s, ErrOptionViolation)
	}
	return name, nil
}
