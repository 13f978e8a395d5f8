package seedio

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/meshdisk/mesh"
	"github.com/katalvlaran/meshdisk/simplicial"
)

var (
	// ErrBadIndex is returned for a "v" line whose index is missing, not an
	// integer, or negative.
	ErrBadIndex       = errors.New("seedio: bad vertex index")
	// ErrSeedOutOfRange is returned when WithVertexCount is set and an index
	// is not below it.
	ErrSeedOutOfRange = errors.New("seedio: seed vertex out of range")
)

const (
	tagVertex = "v"
	tagEdge   = "e"
	tagFace   = "f"
)

type readConfig struct {
	vertexCount int // < 0: unchecked
}

// ReadOption configures Read and ReadFile.
type ReadOption func(*readConfig)

// WithVertexCount rejects seeds outside [0, n) with ErrSeedOutOfRange.
func WithVertexCount(n int) ReadOption {
	return func(cfg *readConfig) {
		cfg.vertexCount = n
	}
}

// Read parses a seed file and returns its distinct "v <index>" entries in
// ascending order. Blank lines and lines with any other leading word are
// ignored; extra words after the index are ignored.
func Read(r io.Reader, opts ...ReadOption) ([]mesh.VertexID, error) {
	cfg := readConfig{vertexCount: -1}
	for _, opt := range opts {
		opt(&cfg)
	}

	file, err := parseSeedFile.Parse("", r)
	if err != nil {
		return nil, errors.Wrap(err, "seedio: parse")
	}

	seeds := simplicial.New()
	for _, line := range file.Lines {
		if line.Tag != tagVertex {
			continue
		}
		if len(line.Args) == 0 {
			return nil, errors.Wrapf(ErrBadIndex, "line %d: missing index", line.Pos.Line)
		}
		idx, err := strconv.Atoi(line.Args[0])
		if err != nil || idx < 0 {
			return nil, errors.Wrapf(ErrBadIndex, "line %d: %q", line.Pos.Line, line.Args[0])
		}
		if cfg.vertexCount >= 0 && idx >= cfg.vertexCount {
			return nil, errors.Wrapf(ErrSeedOutOfRange, "line %d: %d not in [0,%d)", line.Pos.Line, idx, cfg.vertexCount)
		}
		seeds.AddVertex(mesh.VertexID(idx))
	}

	return seeds.Vertices(), nil
}

// ReadFile is Read on the named file.
func ReadFile(pathname string, opts ...ReadOption) ([]mesh.VertexID, error) {
	f, err := os.Open(pathname)
	if err != nil {
		return nil, errors.Wrap(err, "seedio: open")
	}
	defer f.Close()

	seeds, err := Read(f, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", pathname)
	}
	return seeds, nil
}

// WriteRegion writes s as "v i", "e i" and "f i" lines, vertices first, each
// kind ascending. Read on the output returns the region's vertices.
func WriteRegion(w io.Writer, s *simplicial.Subset) error {
	bw := bufio.NewWriter(w)
	for _, v := range s.Vertices() {
		writeLine(bw, tagVertex, int(v))
	}
	for _, e := range s.Edges() {
		writeLine(bw, tagEdge, int(e))
	}
	for _, f := range s.Faces() {
		writeLine(bw, tagFace, int(f))
	}
	return errors.Wrap(bw.Flush(), "seedio: write")
}

func writeLine(bw *bufio.Writer, tag string, id int) {
	bw.WriteString(tag)
	bw.WriteByte(' ')
	bw.WriteString(strconv.Itoa(id))
	bw.WriteByte('\n')
}
