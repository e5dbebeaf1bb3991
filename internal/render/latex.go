package render

import "strings"

// StripDelimiters removes surrounding $$ or $ if the whole string is
// wrapped in them. The mathtext engine expects raw LaTeX without outer
// delimiters.
func StripDelimiters(latex string) string {
	latex = strings.TrimSpace(latex)
	if strings.HasPrefix(latex, "$$") && strings.HasSuffix(latex, "$$") && len(latex) >= 4 {
		return strings.TrimSpace(latex[2 : len(latex)-2])
	}
	if strings.HasPrefix(latex, "$") && strings.HasSuffix(latex, "$") && len(latex) > 2 {
		return strings.TrimSpace(latex[1 : len(latex)-1])
	}
	return latex
}

// splitRows breaks an expression into the rows the local engine renders
// individually. Composed solution layouts (see ComposeSolution) lose their
// array wrapper, row terminators and column separators, since the engine
// has no alignment support; plain multi-line input is split on newlines so
// step-per-line solutions render stacked, matching the remote layout.
func splitRows(expr string) []string {
	s := strings.TrimSpace(expr)
	s = strings.TrimPrefix(s, `\begin{array}{rl}`)
	s = strings.TrimSuffix(s, `\end{array}`)

	var rows []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimSpace(strings.TrimSuffix(line, `\\`))
		// The engine cannot align on &; separate columns with a space.
		line = strings.ReplaceAll(line, " & ", `\;`)
		line = strings.ReplaceAll(line, "&", `\;`)
		line = StripDelimiters(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	return rows
}
