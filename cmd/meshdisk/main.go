// Command meshdisk reconstructs the disk region around a seed vertex set on a
// fixture mesh and prints it in seed-file format.
//
//	meshdisk -mesh grid:8x8 -seeds seeds.txt -boundary
//	echo "v 0" | meshdisk -mesh fan:6
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/meshdisk/boundary"
	"github.com/katalvlaran/meshdisk/builder"
	"github.com/katalvlaran/meshdisk/mesh"
	"github.com/katalvlaran/meshdisk/reconstruct"
	"github.com/katalvlaran/meshdisk/seedio"
	"github.com/katalvlaran/meshdisk/simplicial"
)

type config struct {
	meshSpec  string
	seedsPath string
	maxSteps  int
	boundary  bool
	quads     bool
}

func main() {
	var cfg config

	fset := flag.NewFlagSet("meshdisk", flag.ExitOnError)
	fset.StringVar(&cfg.meshSpec, "mesh", "triangle", "fixture: triangle, fan:N, grid:RxC, cylinder:RxS, torus:RxS, platonic:Cube")
	fset.StringVar(&cfg.seedsPath, "seeds", "", "seed file (default stdin)")
	fset.IntVar(&cfg.maxSteps, "max-steps", 0, "growth step bound (0 = mesh size)")
	fset.BoolVar(&cfg.boundary, "boundary", false, "also print the boundary loop as a \"b\" line")
	fset.BoolVar(&cfg.quads, "quads", false, "keep lattice cells as quads")

	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	fset.Parse(os.Args[1:])

	err := run(cfg, os.Stdin, os.Stdout)
	if err != nil {
		klog.Errorf("meshdisk: %v", err)
	}
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg config, stdin io.Reader, stdout io.Writer) error {
	cons, err := parseFixture(cfg.meshSpec)
	if err != nil {
		return err
	}
	var bopts []builder.BuilderOption
	if cfg.quads {
		bopts = append(bopts, builder.WithQuads())
	}
	m, err := builder.BuildMesh(bopts, cons)
	if err != nil {
		return err
	}
	st := m.Stats()
	klog.V(1).Infof("mesh %s: V=%d E=%d F=%d boundary=%d chi=%d",
		cfg.meshSpec, st.Vertices, st.Edges, st.Faces, st.BoundaryEdges, st.Euler)

	var seeds []mesh.VertexID
	if cfg.seedsPath == "" {
		seeds, err = seedio.Read(stdin, seedio.WithVertexCount(m.VertexCount()))
	} else {
		seeds, err = seedio.ReadFile(cfg.seedsPath, seedio.WithVertexCount(m.VertexCount()))
	}
	if err != nil {
		return err
	}

	res, err := reconstruct.DetermineDiskRegion(m, seeds,
		reconstruct.WithMaxGrowSteps(cfg.maxSteps),
		reconstruct.WithOnGrow(func(step, chi int) {
			klog.V(2).Infof("grow step %d: chi=%d", step, chi)
		}),
	)
	if err != nil {
		return err
	}
	klog.V(1).Infof("region %v after %d grow steps, %d removals", res.Region, res.GrowSteps, res.Commits)

	if comps := simplicial.FaceComponents(m, res.Region); len(comps) > 1 {
		klog.Warningf("region has %d face components joined only at vertices", len(comps))
	}
	if iso := simplicial.IsolatedVertices(m, res.Region); len(iso) > 0 && res.Region.Size() > len(iso) {
		klog.Warningf("region has isolated vertices %v", iso)
	}

	if err = seedio.WriteRegion(stdout, res.Region); err != nil {
		return err
	}
	if cfg.boundary {
		loop, err := boundary.Loop(m, res.Region.Faces())
		if err != nil {
			klog.Warningf("no boundary loop: %v", err)
			return nil
		}
		return writeLoop(stdout, loop)
	}
	return nil
}

func writeLoop(w io.Writer, loop []boundary.HalfEdge) error {
	parts := make([]string, 0, len(loop)+1)
	parts = append(parts, "b")
	for _, v := range boundary.Vertices(loop) {
		parts = append(parts, strconv.Itoa(int(v)))
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}

// parseFixture maps a -mesh value to a builder constructor.
func parseFixture(spec string) (builder.Constructor, error) {
	kind, arg, _ := strings.Cut(strings.TrimSpace(spec), ":")
	kind = strings.ToLower(kind)
	switch kind {
	case "triangle":
		return builder.Triangle(), nil
	case "fan":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("fixture %q: blade count: %w", spec, err)
		}
		return builder.Fan(n), nil
	case "grid", "cylinder", "torus":
		a, b, err := parseDims(arg)
		if err != nil {
			return nil, fmt.Errorf("fixture %q: %w", spec, err)
		}
		switch kind {
		case "grid":
			return builder.Grid(a, b), nil
		case "cylinder":
			return builder.Cylinder(a, b), nil
		}
		return builder.Torus(a, b), nil
	case "platonic":
		name, err := builder.ParsePlatonicName(arg)
		if err != nil {
			return nil, fmt.Errorf("fixture %q: %w", spec, err)
		}
		return builder.PlatonicSolid(name), nil
	}
	return nil, fmt.Errorf("unknown fixture %q", spec)
}

// parseDims parses "AxB".
func parseDims(s string) (int, int, error) {
	as, bs, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("dimensions %q are not of the form AxB", s)
	}
	a, err := strconv.Atoi(as)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(bs)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
