// SPDX-License-Identifier: MIT
// Package: meshdisk/builder
//
// impl_fan.go: Triangle() and Fan(n), the smallest disk fixtures.
//
// Layout:
//   • Triangle: vertices 0,1,2; one face (0,1,2).
//   • Fan: hub first, rim first+1..first+n; face i = (hub, rim i, rim i+1 mod n).
//
// Both are topological disks: Euler characteristic 1, one boundary loop.

package builder

import (
	"fmt"

	"github.com/katalvlaran/meshdisk/mesh"
)

const (
	methodTriangle = "Triangle"
	methodFan      = "Fan"
	minFanBlades   = 3
)

// Triangle builds a single triangle spanning three fresh vertices.
func Triangle() Constructor {
	return func(b *mesh.Builder, cfg builderConfig) error {
		first, err := b.AddVertices(3)
		if err != nil {
			return fmt.Errorf("%s: %v: %w", methodTriangle, err, ErrConstructFailed)
		}
		return emit(b, cfg, methodTriangle, first, first+1, first+2)
	}
}

// Fan builds a closed triangle fan of n blades around a hub vertex (n ≥ 3).
// Complexity: O(n).
func Fan(n int) Constructor {
	return func(b *mesh.Builder, cfg builderConfig) error {
		if n < minFanBlades {
			return fmt.Errorf("%s: n=%d < %d: %w", methodFan, n, minFanBlades, ErrTooFewVertices)
		}
		hub, err := b.AddVertices(n + 1)
		if err != nil {
			return fmt.Errorf("%s: %v: %w", methodFan, err, ErrConstructFailed)
		}
		rim := func(i int) mesh.VertexID { return hub + 1 + mesh.VertexID(i%n) }
		for i := 0; i < n; i++ {
			if err = emit(b, cfg, methodFan, hub, rim(i), rim(i+1)); err != nil {
				return err
			}
		}
		return nil
	}
}
