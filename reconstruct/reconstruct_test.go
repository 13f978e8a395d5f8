package reconstruct_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshdisk/builder"
	"github.com/katalvlaran/meshdisk/mesh"
	"github.com/katalvlaran/meshdisk/reconstruct"
	"github.com/katalvlaran/meshdisk/simplicial"
)

func mustMesh(t *testing.T, cons ...builder.Constructor) *mesh.Mesh {
	t.Helper()
	m, err := builder.BuildMesh(nil, cons...)
	require.NoError(t, err)
	return m
}

func edgesBetween(t *testing.T, m *mesh.Mesh, pairs ...[2]mesh.VertexID) []mesh.EdgeID {
	t.Helper()
	out := make([]mesh.EdgeID, 0, len(pairs))
	for _, p := range pairs {
		e, ok := m.EdgeBetween(p[0], p[1])
		require.True(t, ok, "edge %v", p)
		out = append(out, e)
	}
	return out
}

func TestErrors(t *testing.T) {
	m := mustMesh(t, builder.Triangle())

	_, err := reconstruct.DetermineDiskRegion(nil, []mesh.VertexID{0})
	assert.ErrorIs(t, err, reconstruct.ErrMeshNil)

	_, err = reconstruct.DetermineDiskRegion(m, nil)
	assert.ErrorIs(t, err, reconstruct.ErrEmptySeeds)

	_, err = reconstruct.DetermineDiskRegion(m, []mesh.VertexID{0, 3})
	assert.ErrorIs(t, err, reconstruct.ErrSeedOutOfRange)

	_, err = reconstruct.DetermineDiskRegion(m, []mesh.VertexID{-1})
	assert.ErrorIs(t, err, reconstruct.ErrSeedOutOfRange)

	_, err = reconstruct.DetermineDiskRegion(m, []mesh.VertexID{0}, reconstruct.WithMaxGrowSteps(-1))
	assert.ErrorIs(t, err, reconstruct.ErrOptionViolation)

	_, err = reconstruct.Grow(m, nil)
	assert.ErrorIs(t, err, reconstruct.ErrRegionNil)

	_, _, err = reconstruct.Shrink(m, nil, []mesh.VertexID{0}, 1)
	assert.ErrorIs(t, err, reconstruct.ErrRegionNil)

	_, _, err = reconstruct.Shrink(m, simplicial.New(), nil, 1)
	assert.ErrorIs(t, err, reconstruct.ErrEmptySeeds)
}

// Scenario A: the whole triangle is the answer after exactly one growth step.
func TestSingleTriangle(t *testing.T) {
	m := mustMesh(t, builder.Triangle())

	var chis []int
	res, err := reconstruct.DetermineDiskRegion(m, []mesh.VertexID{2, 0, 1},
		reconstruct.WithOnGrow(func(_, chi int) { chis = append(chis, chi) }))
	require.NoError(t, err)

	assert.Equal(t, []int{1}, chis)
	assert.Equal(t, 1, res.GrowSteps)
	assert.Equal(t, 0, res.Commits, "the only face touches three seeds")
	assert.Equal(t, 1, res.Sweeps)
	assert.Equal(t, 1, res.Chi)

	whole := simplicial.NewSubset([]mesh.VertexID{0, 1, 2}, []mesh.EdgeID{0, 1, 2}, []mesh.FaceID{0})
	assert.True(t, res.Region.Equals(whole))
}

func TestSingleSeedNeedsNoGrowth(t *testing.T) {
	m := mustMesh(t, builder.Cylinder(3, 6))

	res, err := reconstruct.DetermineDiskRegion(m, []mesh.VertexID{4})
	require.NoError(t, err)
	assert.Equal(t, 0, res.GrowSteps)
	assert.Equal(t, 0, res.Commits)
	assert.Equal(t, 1, res.Sweeps)
	assert.True(t, res.Region.Equals(simplicial.FromVertices(4)))
}

// Scenario B: two adjacent seeds start at χ = 2 and need at least one step.
func TestAdjacentSeeds(t *testing.T) {
	m := mustMesh(t, builder.Grid(5, 5))
	seeds := []mesh.VertexID{6, 7}
	_, shared := m.EdgeBetween(6, 7)
	require.True(t, shared)
	require.Equal(t, 2, simplicial.EulerCharacteristic(simplicial.FromVertices(seeds...)))

	res, err := reconstruct.DetermineDiskRegion(m, seeds)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.GrowSteps, 1)
	assert.Equal(t, 1, res.Chi)
	assert.True(t, res.Region.HasVertex(6) && res.Region.HasVertex(7))
	assert.True(t, simplicial.IsClosed(m, res.Region))
}

// Fan of six blades, seeds on rim vertices 1 and 3. Growth yields blades
// {0,1,2,5}; shrinking drops blade 0, then blade 1, and keeps the two blades
// 2 and 5 that meet only at the hub.
func TestFanShrinkLeavesPinchedRegion(t *testing.T) {
	m := mustMesh(t, builder.Fan(6))

	var removed []mesh.FaceID
	res, err := reconstruct.DetermineDiskRegion(m, []mesh.VertexID{1, 3},
		reconstruct.WithOnCommit(func(f mesh.FaceID, _ *simplicial.Subset) { removed = append(removed, f) }))
	require.NoError(t, err)

	assert.Equal(t, 1, res.GrowSteps)
	assert.Equal(t, []mesh.FaceID{0, 1}, removed)
	assert.Equal(t, 2, res.Commits)
	assert.Equal(t, 3, res.Sweeps)

	want := simplicial.NewSubset(
		[]mesh.VertexID{0, 1, 3, 4, 6},
		edgesBetween(t, m, [2]mesh.VertexID{0, 1}, [2]mesh.VertexID{0, 3}, [2]mesh.VertexID{0, 4},
			[2]mesh.VertexID{0, 6}, [2]mesh.VertexID{3, 4}, [2]mesh.VertexID{6, 1}),
		[]mesh.FaceID{2, 5},
	)
	assert.True(t, res.Region.Equals(want), "got V=%v E=%v F=%v",
		res.Region.Vertices(), res.Region.Edges(), res.Region.Faces())
	assert.Len(t, simplicial.FaceComponents(m, res.Region), 2)
}

// Scenario C: a torus has no disk containing every vertex; growth reaches the
// closed surface (χ = 0) and stalls instead of hanging.
func TestTorusIsNotReachable(t *testing.T) {
	m := mustMesh(t, builder.Torus(4, 4))
	all := make([]mesh.VertexID, m.VertexCount())
	for i := range all {
		all[i] = mesh.VertexID(i)
	}

	var chis []int
	_, err := reconstruct.DetermineDiskRegion(m, all,
		reconstruct.WithOnGrow(func(_, chi int) { chis = append(chis, chi) }))
	require.ErrorIs(t, err, reconstruct.ErrDiskNotReachable)
	assert.Equal(t, []int{0, 0}, chis)

	_, err = reconstruct.DetermineDiskRegion(m, all, reconstruct.WithMaxGrowSteps(1))
	require.ErrorIs(t, err, reconstruct.ErrDiskNotReachable)
}

// A boundary ring of a cylinder grows into an annulus and never becomes a disk.
func TestCylinderRingIsNotReachable(t *testing.T) {
	m := mustMesh(t, builder.Cylinder(3, 6))

	var chis []int
	_, err := reconstruct.DetermineDiskRegion(m, []mesh.VertexID{0, 1, 2, 3, 4, 5},
		reconstruct.WithOnGrow(func(_, chi int) { chis = append(chis, chi) }))
	require.ErrorIs(t, err, reconstruct.ErrDiskNotReachable)
	assert.Equal(t, []int{0, 0, 0}, chis)
}

func TestStepBound(t *testing.T) {
	m := mustMesh(t, builder.Grid(6, 6))
	seeds := []mesh.VertexID{0, 35}

	_, err := reconstruct.DetermineDiskRegion(m, seeds, reconstruct.WithMaxGrowSteps(1))
	require.ErrorIs(t, err, reconstruct.ErrDiskNotReachable)

	res, err := reconstruct.DetermineDiskRegion(m, seeds)
	require.NoError(t, err)
	assert.Greater(t, res.GrowSteps, 1)
}

func TestCancellation(t *testing.T) {
	m := mustMesh(t, builder.Grid(4, 4))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := reconstruct.DetermineDiskRegion(m, []mesh.VertexID{0, 15}, reconstruct.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestGrowLeavesDiskUntouched(t *testing.T) {
	m := mustMesh(t, builder.Fan(5))
	region := simplicial.FromVertices(0)

	steps, err := reconstruct.Grow(m, region)
	require.NoError(t, err)
	assert.Equal(t, 0, steps)
	assert.True(t, region.Equals(simplicial.FromVertices(0)))
}
