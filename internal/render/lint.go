package render

import (
	"fmt"
	"strings"
)

// LintResult is the outcome of a best-effort syntax check.
type LintResult struct {
	Valid    bool     `json:"valid"`
	Warnings []string `json:"warnings"`
	Errors   []string `json:"errors"`
}

// unsupportedFragments are LaTeX constructs the rendering engines reject;
// mathtext covers standard math only, not full document LaTeX.
var unsupportedFragments = []string{
	`\begin{tikzpicture}`,
	`\usepackage`,
	`\documentclass`,
	`\chemfig`,
}

// Lint performs static checks on an expression without rendering it.
// It catches the common failure modes (empty input, unbalanced $
// delimiters, document-level commands) but is deliberately shallow:
// the rendering engine remains the arbiter of validity.
func Lint(expr string) *LintResult {
	res := &LintResult{
		Warnings: []string{},
		Errors:   []string{},
	}

	if strings.TrimSpace(expr) == "" {
		res.Errors = append(res.Errors, "empty expression")
		return res
	}

	if len(expr) > MaxExpressionLength {
		res.Errors = append(res.Errors,
			fmt.Sprintf("expression too long (%d chars, max %d)", len(expr), MaxExpressionLength))
	}

	if strings.Count(expr, "$")%2 != 0 {
		res.Errors = append(res.Errors,
			"unbalanced $ delimiters; wrap math in matching $ or $$")
	}

	for _, frag := range unsupportedFragments {
		if strings.Contains(expr, frag) {
			res.Errors = append(res.Errors,
				fmt.Sprintf("%q is not supported; use standard math LaTeX only", frag))
		}
	}

	if strings.Contains(expr, `\frac`) && !strings.Contains(expr, "{") {
		res.Warnings = append(res.Warnings,
			`\frac requires two brace arguments: \frac{numerator}{denominator}`)
	}

	res.Valid = len(res.Errors) == 0
	return res
}
