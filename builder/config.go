// SPDX-License-Identifier: MIT
// Package: meshdisk/builder
//
// config.go: internal configuration, deterministic defaults and options.
//
// Deterministic defaults:
//   • quads    = false  (quad cells are split into two triangles)
//   • reversed = false  (faces are emitted counter-clockwise)

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	quads    bool // emit quad cells as quads instead of triangle pairs
	reversed bool // flip every face's cyclic order
}

// BuilderOption mutates a builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithQuads keeps quadrilateral cells (Grid, Cylinder, Torus, Cube) as
// four-sided faces instead of splitting them along a diagonal.
func WithQuads() BuilderOption {
	return func(c *builderConfig) { c.quads = true }
}

// WithReversedOrientation emits every face in clockwise order. Connectivity
// is unchanged; edge orientations and boundary signs flip.
func WithReversedOrientation() BuilderOption {
	return func(c *builderConfig) { c.reversed = true }
}

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
