package reconstruct_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/meshdisk/builder"
	"github.com/katalvlaran/meshdisk/mesh"
	"github.com/katalvlaran/meshdisk/reconstruct"
	"github.com/katalvlaran/meshdisk/simplicial"
)

type propertyCase struct {
	name  string
	cons  builder.Constructor
	opts  []builder.BuilderOption
	seeds []mesh.VertexID
}

// PropertySuite checks the invariants every successful reconstruction keeps,
// on disk-shaped meshes where Phase 1 always converges.
type PropertySuite struct {
	suite.Suite
	cases []propertyCase
}

func (s *PropertySuite) SetupSuite() {
	s.cases = []propertyCase{
		{name: "fan/hub+rim", cons: builder.Fan(6), seeds: []mesh.VertexID{0, 1}},
		{name: "fan/opposite-rim", cons: builder.Fan(8), seeds: []mesh.VertexID{1, 5}},
		{name: "grid/interior", cons: builder.Grid(6, 6), seeds: []mesh.VertexID{14}},
		{name: "grid/pair", cons: builder.Grid(6, 6), seeds: []mesh.VertexID{14, 15}},
		{name: "grid/triple", cons: builder.Grid(6, 6), seeds: []mesh.VertexID{7, 8, 14}},
		{name: "grid/corners", cons: builder.Grid(5, 5), seeds: []mesh.VertexID{0, 24}},
		{name: "grid/quads", cons: builder.Grid(5, 5), opts: []builder.BuilderOption{builder.WithQuads()}, seeds: []mesh.VertexID{6, 8}},
		{name: "grid/reversed", cons: builder.Grid(5, 5), opts: []builder.BuilderOption{builder.WithReversedOrientation()}, seeds: []mesh.VertexID{6, 18}},
		{name: "cylinder/one-seed", cons: builder.Cylinder(4, 6), seeds: []mesh.VertexID{8}},
	}
}

func (s *PropertySuite) run(c propertyCase) (*mesh.Mesh, *reconstruct.Result, []int) {
	m, err := builder.BuildMesh(c.opts, c.cons)
	s.Require().NoError(err)

	var chis []int
	res, err := reconstruct.DetermineDiskRegion(m, c.seeds,
		reconstruct.WithOnGrow(func(_, chi int) { chis = append(chis, chi) }),
		reconstruct.WithOnCommit(func(f mesh.FaceID, region *simplicial.Subset) {
			// shrink safety: every committed region keeps χ, the seeds and closure
			s.Equal(1, simplicial.EulerCharacteristic(region), "commit %d", f)
			s.False(region.HasFace(f))
			for _, v := range c.seeds {
				s.True(region.HasVertex(v), "seed %d lost at commit %d", v, f)
			}
			s.True(simplicial.IsClosed(m, region))
		}),
	)
	s.Require().NoError(err)
	return m, res, chis
}

func (s *PropertySuite) TestConvergence() {
	for _, c := range s.cases {
		_, res, chis := s.run(c)
		s.Equal(1, res.Chi, c.name)
		s.Equal(res.GrowSteps, len(chis), c.name)
		if len(chis) > 0 {
			s.Equal(1, chis[len(chis)-1], "%s: growth ends at χ = 1", c.name)
		}
	}
}

func (s *PropertySuite) TestSeedsAndClosure() {
	for _, c := range s.cases {
		m, res, _ := s.run(c)
		for _, v := range c.seeds {
			s.True(res.Region.HasVertex(v), "%s: seed %d", c.name, v)
		}
		s.True(simplicial.IsClosed(m, res.Region), c.name)
	}
}

func (s *PropertySuite) TestShrinkIsIdempotent() {
	for _, c := range s.cases {
		m, res, _ := s.run(c)
		again := res.Region.Clone()
		commits, sweeps, err := reconstruct.Shrink(m, again, c.seeds, res.Chi)
		s.Require().NoError(err)
		s.Equal(0, commits, c.name)
		s.Equal(1, sweeps, c.name)
		s.True(again.Equals(res.Region), c.name)
	}
}

func (s *PropertySuite) TestDeterministic() {
	for _, c := range s.cases {
		_, a, _ := s.run(c)
		_, b, _ := s.run(c)
		s.True(a.Region.Equals(b.Region), c.name)
		s.Equal(a.Commits, b.Commits, c.name)
	}
}

func TestPropertySuite(t *testing.T) {
	suite.Run(t, new(PropertySuite))
}

// Growing a region already contained in a larger one stays contained in the
// larger one's growth.
func TestGrowDiskMonotoneUnderReconstruct(t *testing.T) {
	m, err := builder.BuildMesh(nil, builder.Grid(6, 6))
	require.NoError(t, err)

	small := simplicial.FromVertices(14)
	large := simplicial.FromVertices(14, 21)
	for step := 1; step <= 3; step++ {
		simplicial.GrowDisk(m, small)
		simplicial.GrowDisk(m, large)
		require.True(t, large.Contains(small), fmt.Sprintf("step %d", step))
	}
}
