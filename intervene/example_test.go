package intervene_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/causal/core"
	"github.com/katalvlaran/causal/intervene"
)

// ExampleDo severs the confounding arrow into the treatment. Graph:
//
//	   Age
//	   / \
//	  v   v
//	Trt → Out       do(Trt) removes Age → Trt
func ExampleDo() {
	g, _ := core.FromEdges(
		[2]string{"Age", "Trt"},
		[2]string{"Age", "Out"},
		[2]string{"Trt", "Out"},
	)

	m, _ := intervene.Do(g, "Trt")

	before, _ := g.Parents("Trt")
	after, _ := m.Parents("Trt")
	fmt.Println("parents(Trt) before:", strings.Join(before, " "))
	fmt.Println("parents(Trt) after:", len(after))

	outParents, _ := m.Parents("Out")
	fmt.Println("parents(Out) after:", strings.Join(outParents, " "))

	// Output:
	// parents(Trt) before: Age
	// parents(Trt) after: 0
	// parents(Out) after: Age Trt
}
