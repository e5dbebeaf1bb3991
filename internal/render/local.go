package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
	"github.com/go-latex/latex/drawtex/drawimg"
	"github.com/go-latex/latex/mtex"
	"github.com/lucasb-eyer/go-colorful"
)

// supersample is the oversampling factor for engine output. The engine
// draws hard glyph edges; rendering at a multiple of the requested DPI and
// downscaling smooths them.
const supersample = 2

// Local renders in-process with a mathtext engine. No network dependency;
// a malformed expression surfaces as an error, never as a fallback,
// because no locator exists in this mode.
type Local struct{}

// NewLocal creates a local renderer.
func NewLocal() *Local {
	return &Local{}
}

// Render rasterizes the expression. Multi-row input (newline-separated
// lines or a composed solution layout) is rendered row by row and stacked
// vertically on a padded canvas.
func (l *Local) Render(_ context.Context, expr string, style Style) (*Result, error) {
	fg, err := ParseColor(style.Foreground)
	if err != nil {
		return nil, err
	}
	bg, err := ParseColor(style.Background)
	if err != nil {
		return nil, err
	}

	rows := splitRows(expr)
	if len(rows) == 0 {
		rows = []string{`\;`}
	}

	imgs := make([]image.Image, 0, len(rows))
	for _, row := range rows {
		img, err := l.renderRow(row, style, fg, bg)
		if err != nil {
			return nil, fmt.Errorf("render %q: %w", row, err)
		}
		imgs = append(imgs, img)
	}

	canvas := stackRows(imgs, style.DPI, bg)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}

	return &Result{Image: buf.Bytes(), MIMEType: "image/png"}, nil
}

// renderRow rasterizes a single row: engine render at supersampled DPI,
// downscale, then map the black-on-white engine output onto the requested
// colors.
func (l *Local) renderRow(row string, style Style, fg, bg colorful.Color) (image.Image, error) {
	size := style.FontSize
	if size <= 0 {
		size = DefaultFontSize
	}

	var buf bytes.Buffer
	dst := drawimg.NewRenderer(&buf)
	if err := mtex.Render(dst, "$"+row+"$", size, float64(style.DPI*supersample), nil); err != nil {
		return nil, err
	}

	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode engine output: %w", err)
	}

	w := img.Bounds().Dx() / supersample
	h := img.Bounds().Dy() / supersample
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img = transform.Resize(img, w, h, transform.Linear)

	return recolor(img, fg, bg), nil
}

// recolor maps each pixel's luminance onto a blend between foreground
// (dark source pixels) and background (light source pixels).
func recolor(img image.Image, fg, bg colorful.Color) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			t := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 0xffff
			if a == 0 {
				// Transparent engine pixels are background.
				t = 1
			}
			out.SetNRGBA(x-bounds.Min.X, y-bounds.Min.Y, toNRGBA(fg.BlendRgb(bg, t)))
		}
	}
	return out
}

// stackRows pastes row images top to bottom, centered horizontally, on a
// background canvas with DPI-proportional padding.
func stackRows(rows []image.Image, dpi int, bg colorful.Color) image.Image {
	pad := dpi * 3 / 10
	gap := dpi / 10

	var maxW, totalH int
	for _, r := range rows {
		if w := r.Bounds().Dx(); w > maxW {
			maxW = w
		}
		totalH += r.Bounds().Dy()
	}
	totalH += gap * (len(rows) - 1)

	canvas := imaging.New(maxW+2*pad, totalH+2*pad, toNRGBA(bg))

	y := pad
	for _, r := range rows {
		x := pad + (maxW-r.Bounds().Dx())/2
		canvas = imaging.Paste(canvas, r, image.Pt(x, y))
		y += r.Bounds().Dy() + gap
	}
	return canvas
}
