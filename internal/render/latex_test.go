package render

import (
	"strings"
	"testing"
)

func TestStripDelimiters(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"display math", "$$x^2$$", "x^2"},
		{"inline math", "$x^2$", "x^2"},
		{"no delimiters", "x^2", "x^2"},
		{"whitespace around", "  $$ x^2 $$  ", "x^2"},
		{"inner dollars kept", `$a$ and $b$`, `a$ and $b`},
		{"lone dollar", "$", "$"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripDelimiters(tt.in); got != tt.want {
				t.Errorf("StripDelimiters(%q): got %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitRows_PlainExpression(t *testing.T) {
	rows := splitRows("x^2+y^2=z^2")
	if len(rows) != 1 || rows[0] != "x^2+y^2=z^2" {
		t.Errorf("got %v", rows)
	}
}

func TestSplitRows_MultiLine(t *testing.T) {
	rows := splitRows("2x+4=10\n2x=6\n\nx=3")
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %v", rows)
	}
	if rows[0] != "2x+4=10" || rows[2] != "x=3" {
		t.Errorf("got %v", rows)
	}
}

func TestSplitRows_ComposedSolution(t *testing.T) {
	doc := ComposeSolution([]string{"2x+4=10", "2x=6"}, "x=3")
	rows := splitRows(doc)

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d: %v", len(rows), rows)
	}
	for _, row := range rows {
		if strings.Contains(row, "&") {
			t.Errorf("column separator should be removed: %q", row)
		}
		if strings.HasSuffix(row, `\\`) {
			t.Errorf("row terminator should be removed: %q", row)
		}
		if strings.Contains(row, "begin{array}") || strings.Contains(row, "end{array}") {
			t.Errorf("environment wrapper should be removed: %q", row)
		}
	}
	if !strings.Contains(rows[2], `\mathbf{x=3}`) {
		t.Errorf("answer row should keep the bold answer: %q", rows[2])
	}
}

func TestSplitRows_DelimitedLines(t *testing.T) {
	rows := splitRows("$a=1$\n$$b=2$$")
	if len(rows) != 2 || rows[0] != "a=1" || rows[1] != "b=2" {
		t.Errorf("got %v", rows)
	}
}

func TestSplitRows_Empty(t *testing.T) {
	if rows := splitRows(""); len(rows) != 0 {
		t.Errorf("empty input should yield no rows, got %v", rows)
	}
}
