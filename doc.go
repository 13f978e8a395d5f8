// Package meshdisk extracts a topological disk from a polygon mesh: given a
// few seed vertices, it finds a small connected patch containing them that
// has exactly one boundary loop.
//
// What is inside?
//
//	mesh/        Connectivity interface and an immutable face-vertex Mesh
//	builder/     deterministic fixture meshes (fan, grid, cylinder, torus, platonic solids)
//	simplicial/  vertex/edge/face subsets, Star, Closure, GrowDisk, Euler characteristic
//	reconstruct/ two-phase grow/shrink disk reconstruction
//	boundary/    signed boundary operator and boundary loop stitching
//	seedio/      "v <index>" seed files in, regions out
//	cmd/meshdisk command-line driver
//
// Quick example: on a fan of four triangles round hub 0, seeds {0, 1} grow
// to the whole fan (χ = 1); shrinking then peels blades 1 and 2 and keeps
// blades 0 and 3, the two that share rim vertex 1.
//
//	go get github.com/katalvlaran/meshdisk
package meshdisk
