// File: types.go
// Role: Options, hooks, sentinel errors and the Result of a reconstruction.

package reconstruct

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/meshdisk/mesh"
	"github.com/katalvlaran/meshdisk/simplicial"
)

// Sentinel errors for reconstruction.
var (
	// ErrMeshNil is returned if a nil mesh is passed.
	ErrMeshNil = errors.New("reconstruct: mesh is nil")

	// ErrEmptySeeds is returned when the seed vertex set is empty.
	ErrEmptySeeds = errors.New("reconstruct: seed vertex set is empty")

	// ErrSeedOutOfRange is returned when a seed is not a vertex of the mesh.
	ErrSeedOutOfRange = errors.New("reconstruct: seed vertex out of range")

	// ErrRegionNil is returned when Grow or Shrink receive a nil region.
	ErrRegionNil = errors.New("reconstruct: region is nil")

	// ErrDiskNotReachable is returned when growth cannot reach a single
	// boundary loop (χ = 1): either the step bound was exhausted or growth
	// stopped adding elements.
	ErrDiskNotReachable = errors.New("reconstruct: disk not reachable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reconstruct: invalid option supplied")
)

// Option configures reconstruction via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// reconstruction runs.
type Option func(*Options)

// Options holds parameters and callbacks for one reconstruction.
type Options struct {
	// Ctx allows cancellation; checked once per growth step and once per
	// shrink sweep.
	Ctx context.Context

	// MaxGrowSteps bounds Phase 1. Zero selects the default bound of
	// |V|+|E|+|F|+1 for the mesh, which growth can never legitimately exceed.
	MaxGrowSteps int

	// OnGrow is called after every growth step with the step number (from 1)
	// and the region's new Euler characteristic.
	OnGrow func(step, chi int)

	// OnCommit is called after every committed face removal with the removed
	// face and the new region. The region must not be mutated.
	OnCommit func(f mesh.FaceID, region *simplicial.Subset)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - the default growth bound (MaxGrowSteps == 0)
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		MaxGrowSteps: 0,
		OnGrow:       func(int, int) {},
		OnCommit:     func(mesh.FaceID, *simplicial.Subset) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxGrowSteps bounds the number of growth steps.
//
//	n > 0:  at most n steps
//	n == 0: default bound
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxGrowSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxGrowSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxGrowSteps = n
	}
}

// WithOnGrow registers a callback run after each growth step.
func WithOnGrow(fn func(step, chi int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGrow = fn
		}
	}
}

// WithOnCommit registers a callback run after each committed shrink.
func WithOnCommit(fn func(f mesh.FaceID, region *simplicial.Subset)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCommit = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o, o.err
}

// Result holds the outcome of DetermineDiskRegion:
//   - Region:    the reconstructed disk (downward closed, contains every seed).
//   - Chi:       Euler characteristic of Region (1 on success).
//   - GrowSteps: GrowDisk applications in Phase 1.
//   - Commits:   faces removed in Phase 2.
//   - Sweeps:    Phase 2 sweeps, including the final no-change sweep.
type Result struct {
	Region    *simplicial.Subset
	Chi       int
	GrowSteps int
	Commits   int
	Sweeps    int
}
