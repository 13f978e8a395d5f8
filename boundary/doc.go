// Package boundary computes the oriented boundary of a face set.
//
// Operator is the sparse signed face×edge matrix ∂ of a mesh. Applying it to
// the indicator vector of a face set cancels interior edges and leaves the
// boundary edges with the sign of their traversal. Loop stitches those
// half-edges into a single ordered cycle, failing fast on pinch points,
// open chains and extra loops instead of guessing.
//
// Typical use is rendering or exporting the rim of a reconstructed disk:
//
//	loop, err := boundary.Loop(m, res.Region.Faces())
//	if err != nil { /* ErrAmbiguousBoundary, ErrMultipleLoops, ... */ }
//	fmt.Println(boundary.Vertices(loop))
package boundary
