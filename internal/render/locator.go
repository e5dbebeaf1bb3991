package render

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultEndpoint is the public rendering endpoint used when no override
// is configured. It accepts a percent-encoded LaTeX expression as its
// query string and answers with a PNG.
const DefaultEndpoint = "https://latex.codecogs.com/png.image"

// BuildLocator builds a dereferenceable image URL for the expression
// against the default endpoint.
func BuildLocator(expr string, dpi int, color string) string {
	return BuildLocatorURL(DefaultEndpoint, expr, dpi, color)
}

// BuildLocatorURL prefixes the expression with the endpoint's resolution
// and color directives, percent-encodes the whole string, and appends it
// to the endpoint as the query component.
//
// Any text is encodable, so this never fails; an empty expression still
// yields a syntactically valid (if semantically empty) URL.
func BuildLocatorURL(endpoint, expr string, dpi int, color string) string {
	raw := fmt.Sprintf(`\dpi{%d}\color{%s} %s`, dpi, color, expr)
	return endpoint + "?" + encodeQuery(raw)
}

// encodeQuery percent-encodes s for use as a URL query component,
// encoding spaces as %20 rather than '+' since the rendering endpoint
// treats '+' as a literal plus sign.
func encodeQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
