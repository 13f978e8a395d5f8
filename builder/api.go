// SPDX-License-Identifier: MIT
// Package: meshdisk/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMesh(bopts, cons...). Creates a mesh.Builder,
//     resolves cfg, runs cons in order, then assembles the Mesh.
//   - Constructors allocate their own vertex block, so several constructors
//     compose into a disjoint union with no shared vertices.
//   - Determinism: same options and constructor order ⇒ identical meshes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/meshdisk/mesh"
)

// Constructor appends one connected fixture to b using the resolved config.
// Constructors validate parameters first and return sentinel errors.
type Constructor func(b *mesh.Builder, cfg builderConfig) error

// BuildMesh resolves bopts, applies every constructor in order to a fresh
// mesh.Builder and returns the assembled Mesh.
//
// Errors:
//   - ErrConstructFailed for a nil constructor or a mesh assembly failure.
//   - Constructor sentinels (ErrTooFewVertices, ErrOptionViolation), wrapped
//     with "BuildMesh: %w".
func BuildMesh(bopts []BuilderOption, cons ...Constructor) (*mesh.Mesh, error) {
	b := mesh.NewBuilder()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMesh: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildMesh: %w", err)
		}
	}

	m, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("BuildMesh: %v: %w", err, ErrConstructFailed)
	}

	return m, nil
}

// emit adds one face honoring cfg.reversed.
func emit(b *mesh.Builder, cfg builderConfig, method string, corners ...mesh.VertexID) error {
	if cfg.reversed {
		for i, j := 0, len(corners)-1; i < j; i, j = i+1, j-1 {
			corners[i], corners[j] = corners[j], corners[i]
		}
	}
	if _, err := b.AddFace(corners...); err != nil {
		return fmt.Errorf("%s: %v: %w", method, err, ErrConstructFailed)
	}
	return nil
}

// emitQuad adds the counter-clockwise quad a-b-c-d, split along a-c unless
// cfg.quads is set.
func emitQuad(b *mesh.Builder, cfg builderConfig, method string, a, bb, c, d mesh.VertexID) error {
	if cfg.quads {
		return emit(b, cfg, method, a, bb, c, d)
	}
	if err := emit(b, cfg, method, a, bb, c); err != nil {
		return err
	}
	return emit(b, cfg, method, a, c, d)
}
