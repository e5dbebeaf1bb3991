package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Rendering defaults. DPI and font size match the values the rendering
// engine was tuned against; SolutionDPI is the higher default used for
// composed multi-step layouts where small labels need to stay legible.
const (
	DefaultDPI      = 150
	SolutionDPI     = 200
	DefaultFontSize = 14

	DefaultForeground = "black"
	DefaultBackground = "white"

	// MaxExpressionLength is the upper bound the lint tool enforces on a
	// single expression.
	MaxExpressionLength = 10000
)

// Theme names accepted by the tools.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Style carries the per-request rendering parameters.
//
// Foreground and Background are color names or #RRGGBB hex strings; they
// are resolved via ParseColor at render time.
type Style struct {
	DPI        int
	FontSize   float64
	Foreground string
	Background string
}

// DefaultStyle returns the style used when a tool call supplies nothing:
// 150 DPI, 14pt, black on white.
func DefaultStyle() Style {
	return Style{
		DPI:        DefaultDPI,
		FontSize:   DefaultFontSize,
		Foreground: DefaultForeground,
		Background: DefaultBackground,
	}
}

// WithTheme returns a copy of s with foreground and background set for the
// named theme. Unknown theme names leave the colors untouched.
func (s Style) WithTheme(theme string) Style {
	switch strings.ToLower(theme) {
	case ThemeDark:
		s.Background = "#1e1e2e"
		s.Foreground = "#cdd6f4"
	case ThemeLight:
		s.Background = DefaultBackground
		s.Foreground = DefaultForeground
	}
	return s
}

// namedColors maps the color names the remote renderer understands to hex
// values the local renderer can use, so both backends accept the same
// vocabulary.
var namedColors = map[string]string{
	"white":   "#FFFFFF",
	"black":   "#000000",
	"red":     "#FF0000",
	"green":   "#008000",
	"blue":    "#0000FF",
	"yellow":  "#FFFF00",
	"cyan":    "#00FFFF",
	"magenta": "#FF00FF",
	"orange":  "#FFA500",
	"purple":  "#800080",
	"gray":    "#808080",
	"grey":    "#808080",
}

// ParseColor resolves a color name or #RRGGBB hex string.
func ParseColor(s string) (colorful.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[name]; ok {
		name = strings.ToLower(hex)
	}
	if !strings.HasPrefix(name, "#") {
		return colorful.Color{}, fmt.Errorf("unknown color %q", s)
	}
	c, err := colorful.Hex(name)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// toNRGBA converts a colorful.Color to a fully opaque color.NRGBA.
func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
