package reconstruct_test

import (
	"fmt"

	"github.com/katalvlaran/meshdisk/builder"
	"github.com/katalvlaran/meshdisk/mesh"
	"github.com/katalvlaran/meshdisk/reconstruct"
)

// ExampleDetermineDiskRegion reconstructs the disk spanned by the hub of a
// six-blade fan and one rim vertex. Growth covers the whole fan; shrinking
// peels blades until only the two blades at rim vertex 1 remain.
func ExampleDetermineDiskRegion() {
	m, err := builder.BuildMesh(nil, builder.Fan(6))
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	res, err := reconstruct.DetermineDiskRegion(m, []mesh.VertexID{0, 1})
	if err != nil {
		fmt.Println("reconstruct:", err)
		return
	}

	fmt.Printf("grow=%d commits=%d sweeps=%d chi=%d\n", res.GrowSteps, res.Commits, res.Sweeps, res.Chi)
	fmt.Println("faces:", res.Region.Faces())
	fmt.Println("vertices:", res.Region.Vertices())
	// Output:
	// grow=1 commits=4 sweeps=5 chi=1
	// faces: [0 5]
	// vertices: [0 1 2 6]
}
