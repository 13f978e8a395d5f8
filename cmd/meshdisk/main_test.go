package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshdisk/builder"
	"github.com/katalvlaran/meshdisk/reconstruct"
	"github.com/katalvlaran/meshdisk/seedio"
)

func TestParseFixture(t *testing.T) {
	cases := []struct {
		spec      string
		v, e, f   int
		wantError bool
	}{
		{spec: "triangle", v: 3, e: 3, f: 1},
		{spec: "fan:5", v: 6, e: 10, f: 5},
		{spec: "Grid:3x4", v: 12, e: 23, f: 12},
		{spec: "cylinder:3x4", v: 12, e: 28, f: 16},
		{spec: "torus:3x4", v: 12, e: 36, f: 24},
		{spec: "platonic:Octahedron", v: 6, e: 12, f: 8},
		{spec: "grid:3", wantError: true},
		{spec: "fan:many", wantError: true},
		{spec: "platonic:Dodecahedron", wantError: true},
		{spec: "klein", wantError: true},
	}
	for _, c := range cases {
		t.Run(c.spec, func(t *testing.T) {
			cons, err := parseFixture(c.spec)
			if c.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			m, err := builder.BuildMesh(nil, cons)
			require.NoError(t, err)
			assert.Equal(t, c.v, m.VertexCount())
			assert.Equal(t, c.e, m.EdgeCount())
			assert.Equal(t, c.f, m.FaceCount())
		})
	}
}

func TestRunTriangle(t *testing.T) {
	var out bytes.Buffer
	err := run(config{meshSpec: "triangle", boundary: true}, strings.NewReader("v 2\nv 0\nv 1\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "v 0\nv 1\nv 2\ne 0\ne 1\ne 2\nf 0\nb 0 1 2\n", out.String())
}

func TestRunPinchedRegionSkipsBoundary(t *testing.T) {
	var out bytes.Buffer
	err := run(config{meshSpec: "fan:6", boundary: true}, strings.NewReader("v 1\nv 3\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "f 2\nf 5\n")
	assert.NotContains(t, out.String(), "b ")
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer

	err := run(config{meshSpec: "triangle"}, strings.NewReader("v 3\n"), &out)
	assert.ErrorIs(t, err, seedio.ErrSeedOutOfRange)

	all := "v 0\nv 1\nv 2\nv 3\nv 4\nv 5\nv 6\nv 7\nv 8\n"
	err = run(config{meshSpec: "torus:3x3"}, strings.NewReader(all), &out)
	assert.ErrorIs(t, err, reconstruct.ErrDiskNotReachable)

	err = run(config{meshSpec: "triangle"}, strings.NewReader(""), &out)
	assert.ErrorIs(t, err, reconstruct.ErrEmptySeeds)

	err = run(config{meshSpec: "fan:2"}, strings.NewReader("v 0\n"), &out)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	assert.Empty(t, out.String())
}
