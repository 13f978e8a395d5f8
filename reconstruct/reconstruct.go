package reconstruct

import (
	"fmt"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/meshdisk/mesh"
	"github.com/katalvlaran/meshdisk/simplicial"
)

// diskChi is the Euler characteristic of a hole-free, handle-free patch with
// exactly one boundary loop.
const diskChi = 1

// reconstructor encapsulates the per-call state. It is never shared.
type reconstructor struct {
	mesh   mesh.Connectivity
	opts   Options
	seeds  []mesh.VertexID
	isSeed map[mesh.VertexID]bool
}

// DetermineDiskRegion reconstructs the disk region of m around seeds.
//
// Phase 1 (Grow) starts from the seed vertices and applies GrowDisk until
// χ = 1. Phase 2 (Shrink) then removes redundant faces, sweeping faces in
// ascending order and restarting after each committed removal, until a sweep
// commits nothing.
//
// Returns ErrMeshNil, ErrEmptySeeds, ErrSeedOutOfRange or ErrOptionViolation
// for invalid input, ErrDiskNotReachable when growth cannot reach χ = 1, or
// the context error on cancellation.
func DetermineDiskRegion(m mesh.Connectivity, seeds []mesh.VertexID, opts ...Option) (*Result, error) {
	r, err := newReconstructor(m, opts)
	if err != nil {
		return nil, err
	}
	if err = r.setSeeds(seeds); err != nil {
		return nil, err
	}

	region := simplicial.FromVertices(r.seeds...)
	res := &Result{Region: region}

	if res.GrowSteps, err = r.grow(region); err != nil {
		return nil, err
	}
	chi0 := simplicial.EulerCharacteristic(region)

	if res.Commits, res.Sweeps, err = r.shrink(region, chi0); err != nil {
		return nil, err
	}
	res.Chi = simplicial.EulerCharacteristic(region)

	klog.V(2).Infof("reconstruct: %d seeds -> %v chi=%d (grow=%d commits=%d sweeps=%d)",
		len(r.seeds), region, res.Chi, res.GrowSteps, res.Commits, res.Sweeps)

	return res, nil
}

// Grow runs Phase 1 on region in place and returns the number of GrowDisk
// steps taken. A region already at χ = 1 is left untouched.
func Grow(m mesh.Connectivity, region *simplicial.Subset, opts ...Option) (int, error) {
	if region == nil {
		return 0, ErrRegionNil
	}
	r, err := newReconstructor(m, opts)
	if err != nil {
		return 0, err
	}
	return r.grow(region)
}

// Shrink runs Phase 2 on region in place, preserving χ = chi0 and coverage of
// seeds, and returns the number of committed removals and sweeps. Running it
// again on its own output commits nothing.
func Shrink(m mesh.Connectivity, region *simplicial.Subset, seeds []mesh.VertexID, chi0 int, opts ...Option) (commits, sweeps int, err error) {
	if region == nil {
		return 0, 0, ErrRegionNil
	}
	r, err := newReconstructor(m, opts)
	if err != nil {
		return 0, 0, err
	}
	if err = r.setSeeds(seeds); err != nil {
		return 0, 0, err
	}
	return r.shrink(region, chi0)
}

// newReconstructor validates the mesh and options.
func newReconstructor(m mesh.Connectivity, opts []Option) (*reconstructor, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return &reconstructor{mesh: m, opts: o}, nil
}

// setSeeds validates, deduplicates and sorts the seed vertices.
func (r *reconstructor) setSeeds(seeds []mesh.VertexID) error {
	if len(seeds) == 0 {
		return ErrEmptySeeds
	}

	r.seeds = simplicial.FromVertices(seeds...).Vertices()
	r.isSeed = make(map[mesh.VertexID]bool, len(r.seeds))
	n := r.mesh.VertexCount()
	for _, v := range r.seeds {
		if v < 0 || int(v) >= n {
			return fmt.Errorf("reconstruct: seed %d not in [0,%d): %w", v, n, ErrSeedOutOfRange)
		}
		r.isSeed[v] = true
	}
	return nil
}

// grow applies GrowDisk until χ = 1, the step bound is hit, or growth stalls.
func (r *reconstructor) grow(region *simplicial.Subset) (int, error) {
	maxSteps := r.opts.MaxGrowSteps
	if maxSteps == 0 {
		maxSteps = r.mesh.VertexCount() + r.mesh.EdgeCount() + r.mesh.FaceCount() + 1
	}

	chi := simplicial.EulerCharacteristic(region)
	step := 0
	for chi != diskChi {
		// cancellation check (once per step)
		if err := r.opts.Ctx.Err(); err != nil {
			return step, err
		}
		if step >= maxSteps {
			return step, fmt.Errorf("reconstruct: chi=%d after %d steps: %w", chi, step, ErrDiskNotReachable)
		}

		changed := simplicial.GrowDisk(r.mesh, region)
		step++
		chi = simplicial.EulerCharacteristic(region)
		r.opts.OnGrow(step, chi)
		klog.V(3).Infof("reconstruct: grow step %d: %v chi=%d", step, region, chi)

		if !changed {
			// GrowDisk is monotone: no change now means no change ever.
			return step, fmt.Errorf("reconstruct: growth stalled at chi=%d after %d steps: %w",
				chi, step, ErrDiskNotReachable)
		}
	}

	return step, nil
}

// shrink performs sweeps until one commits nothing.
//
// Each sweep walks an ascending snapshot of the region's faces. A face with
// more than one seed corner is skipped. Otherwise the candidate is the region
// without the face, its sides and its corners, re-closed; it is committed if
// every seed survives and χ is still chi0, and the sweep restarts.
func (r *reconstructor) shrink(region *simplicial.Subset, chi0 int) (commits, sweeps int, err error) {
	for {
		// cancellation check (once per sweep)
		if err = r.opts.Ctx.Err(); err != nil {
			return commits, sweeps, err
		}
		sweeps++

		committed := false
		for _, f := range region.Faces() {
			if r.seedCorners(f) > 1 {
				continue
			}
			cand := r.withoutFace(region, f)
			if !r.covers(cand) {
				continue
			}
			if simplicial.EulerCharacteristic(cand) != chi0 {
				continue
			}

			*region = *cand
			commits++
			committed = true
			r.opts.OnCommit(f, region)
			klog.V(3).Infof("reconstruct: removed face %d: %v", f, region)
			break
		}

		if !committed {
			return commits, sweeps, nil
		}
	}
}

// seedCorners counts the seed vertices among f's corners.
func (r *reconstructor) seedCorners(f mesh.FaceID) int {
	n := 0
	for _, v := range r.mesh.FaceVertices(f) {
		if r.isSeed[v] {
			n++
		}
	}
	return n
}

// withoutFace returns Closure(region - f - sides(f) - corners(f)).
// Closure re-admits every side and corner still needed by a remaining face.
func (r *reconstructor) withoutFace(region *simplicial.Subset, f mesh.FaceID) *simplicial.Subset {
	cand := region.Clone()
	cand.DeleteFace(f)
	cand.DeleteEdges(r.mesh.FaceEdges(f)...)
	cand.DeleteVertices(r.mesh.FaceVertices(f)...)

	return simplicial.Closure(r.mesh, cand)
}

// covers reports whether every seed is a vertex of s.
func (r *reconstructor) covers(s *simplicial.Subset) bool {
	for _, v := range r.seeds {
		if !s.HasVertex(v) {
			return false
		}
	}
	return true
}
