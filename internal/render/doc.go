// Package render turns LaTeX math expressions into PNG images.
//
// The package offers two interchangeable rendering backends behind the
// Renderer interface:
//
//   - Remote: builds a request URL for an external rendering endpoint
//     (codecogs-style \dpi{}/\color{} directives) and fetches the image
//     over HTTP. Transport failures degrade to a fallback locator rather
//     than an error, so callers can always hand out a usable reference.
//   - Local: renders in-process with a mathtext engine, no network
//     dependency. Engine failures are real errors; there is no locator
//     to fall back to.
//
// A Render call produces a Result holding exactly one of PNG bytes or a
// fallback locator, never both.
//
// Beyond the backends, the package contains the solution composer
// (multi-step derivations laid out as a labeled two-column array), the
// style model (DPI, font size, theme colors), and a best-effort syntax
// lint for expressions.
//
// Expressions are treated as opaque text: no grammar validation happens
// here, the rendering engine itself is the arbiter of validity.
package render
