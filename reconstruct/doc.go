// Package reconstruct turns a seed vertex set into a minimal topological disk
// of a mesh.
//
// What
//
//   - Phase 1 (Grow): start from the seed vertices and apply
//     simplicial.GrowDisk until the Euler characteristic is 1, the cheap
//     stand-in for "exactly one boundary loop".
//   - Phase 2 (Shrink): sweep the region's faces in ascending order; remove a
//     face (with its sides and corners, then re-close) when
//     – the face touches at most one seed,
//     – every seed is still a vertex afterwards, and
//     – χ is unchanged.
//     The first accepted removal ends the sweep; the next sweep starts on the
//     new region. A sweep with no removal ends the phase.
//
// Guarantees
//
//   - On success χ(Region) == 1, every seed is in Region, and Region is
//     downward closed.
//   - Deterministic: identical inputs give identical regions.
//   - Termination: growth stops with ErrDiskNotReachable when it stalls or
//     exceeds the step bound (WithMaxGrowSteps), e.g. when a handle or an
//     unfillable hole surrounds the seeds.
//
// Known limitations
//
//   - χ cannot distinguish a handle from a compensating extra hole.
//   - The shrink rules may leave faces that meet only at a vertex (several
//     face components); dropping the coverage rule instead could isolate a
//     seed. Use simplicial.FaceComponents to detect the former.
//
// Usage
//
//	res, err := reconstruct.DetermineDiskRegion(m, seeds,
//		reconstruct.WithMaxGrowSteps(64),
//		reconstruct.WithOnGrow(func(step, chi int) { /* ... */ }),
//	)
//	if errors.Is(err, reconstruct.ErrDiskNotReachable) {
//		// seeds sit on topology that is not a disk
//	}
//
// Concurrency: a call owns its region; the mesh is only read, so separate
// calls may share a mesh across goroutines.
package reconstruct
