package render

import "context"

// Result is the outcome of a render call. Exactly one of the two variants
// is populated:
//
//   - Image + MIMEType: the rendered bytes (success)
//   - Fallback: the locator the caller can still dereference after a
//     remote fetch failed (degraded success)
//
// Local-mode engine failures are returned as errors instead, since no
// fallback locator exists there.
type Result struct {
	Image    []byte
	MIMEType string
	Fallback string
}

// OK reports whether the result carries image bytes.
func (r *Result) OK() bool {
	return len(r.Image) > 0
}

// Renderer turns a LaTeX expression plus style parameters into a Result.
// The backend (remote endpoint or local engine) is selected once at
// process configuration time; callers depend only on this interface.
type Renderer interface {
	Render(ctx context.Context, expr string, style Style) (*Result, error)
}
