package seedio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshdisk/mesh"
	"github.com/katalvlaran/meshdisk/seedio"
	"github.com/katalvlaran/meshdisk/simplicial"
)

func TestRead(t *testing.T) {
	in := "v 7\n\n  v 2 trailing words\r\nvn 0 0 1\n# comment\nv 7\nf 1 2 3\nv 0"
	seeds, err := seedio.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []mesh.VertexID{0, 2, 7}, seeds)
}

func TestReadEmpty(t *testing.T) {
	seeds, err := seedio.Read(strings.NewReader("\n\n"))
	require.NoError(t, err)
	assert.Empty(t, seeds)
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		opts []seedio.ReadOption
		want error
	}{
		{"missing index", "v 1\nv\n", nil, seedio.ErrBadIndex},
		{"not a number", "v x\n", nil, seedio.ErrBadIndex},
		{"negative", "v -3\n", nil, seedio.ErrBadIndex},
		{"out of range", "v 2\nv 4\n", []seedio.ReadOption{seedio.WithVertexCount(4)}, seedio.ErrSeedOutOfRange},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := seedio.Read(strings.NewReader(c.in), c.opts...)
			require.ErrorIs(t, err, c.want)
		})
	}

	seeds, err := seedio.Read(strings.NewReader("v 3\n"), seedio.WithVertexCount(4))
	require.NoError(t, err)
	assert.Equal(t, []mesh.VertexID{3}, seeds)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seeds.txt")
	require.NoError(t, os.WriteFile(path, []byte("v 5\nv 1\n"), 0o600))

	seeds, err := seedio.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []mesh.VertexID{1, 5}, seeds)

	_, err = seedio.ReadFile(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteRegion(t *testing.T) {
	region := simplicial.NewSubset([]mesh.VertexID{3, 1}, []mesh.EdgeID{4}, []mesh.FaceID{2, 0})

	var buf bytes.Buffer
	require.NoError(t, seedio.WriteRegion(&buf, region))
	assert.Equal(t, "v 1\nv 3\ne 4\nf 0\nf 2\n", buf.String())

	// a written region reads back as its vertex set
	seeds, err := seedio.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, region.Vertices(), seeds)
}
