package render

import (
	"fmt"
	"strings"
)

// ComposeSolution merges ordered solution steps and a final answer into a
// single LaTeX fragment: a right-aligned two-column array with one labeled
// row per step and a boldfaced answer row.
//
// A single step is labeled "Work:" to distinguish one intermediate
// computation from a numbered derivation; two or more steps are labeled
// "Step 1:", "Step 2:", ... in input order. An empty steps slice produces
// only the answer row. The last row carries no trailing row terminator.
func ComposeSolution(steps []string, answer string) string {
	var rows []string

	switch {
	case len(steps) == 1:
		rows = append(rows, fmt.Sprintf(`\mathrm{Work:} & %s \\`, steps[0]))
	case len(steps) > 1:
		for i, step := range steps {
			rows = append(rows, fmt.Sprintf(`\mathrm{Step\;%d:} & %s \\`, i+1, step))
		}
	}

	rows = append(rows, fmt.Sprintf(`\mathrm{Answer:} & \mathbf{%s}`, answer))

	return "\\begin{array}{rl}\n" + strings.Join(rows, "\n") + "\n\\end{array}"
}
