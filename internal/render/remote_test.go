package render

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
)

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// testPNG encodes a small solid image as PNG bytes.
func testPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, color.RGBA{0, 0, 0, 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestRemote_Render_Success(t *testing.T) {
	payload := testPNG(t)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(payload)
	}))
	defer ts.Close()

	r := NewRemote(ts.URL)
	res, err := r.Render(context.Background(), "x^2", DefaultStyle())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !res.OK() {
		t.Fatalf("expected image variant, got fallback %q", res.Fallback)
	}
	if res.Fallback != "" {
		t.Error("image variant must not carry a fallback locator")
	}
	if res.MIMEType != "image/png" {
		t.Errorf("MIMEType: got %s", res.MIMEType)
	}
	if !bytes.HasPrefix(res.Image, pngSignature) {
		t.Error("image bytes should start with the PNG signature")
	}
}

func TestRemote_Render_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	r := NewRemote(ts.URL)
	style := DefaultStyle()
	res, err := r.Render(context.Background(), "x^2", style)

	// Transport failures never raise; they degrade to the fallback.
	if err != nil {
		t.Fatalf("Render should not error on 500: %v", err)
	}
	if res.OK() {
		t.Fatal("expected fallback variant")
	}

	want := BuildLocatorURL(ts.URL, "x^2", style.DPI, style.Foreground)
	if res.Fallback != want {
		t.Errorf("Fallback: got %s, want %s", res.Fallback, want)
	}
	if len(res.Image) != 0 || res.MIMEType != "" {
		t.Error("fallback variant must not carry image data")
	}
}

func TestRemote_Render_ConnectionRefused(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close() // nothing listening anymore

	r := NewRemote(url)
	res, err := r.Render(context.Background(), "a+b", DefaultStyle())
	if err != nil {
		t.Fatalf("Render should not error on connection failure: %v", err)
	}
	if res.OK() {
		t.Fatal("expected fallback variant")
	}
	if res.Fallback == "" {
		t.Fatal("fallback locator must be populated")
	}
}

func TestRemote_Render_EmptyBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	r := NewRemote(ts.URL)
	res, err := r.Render(context.Background(), "x", DefaultStyle())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if res.OK() {
		t.Error("an empty body is not a usable image; expected fallback")
	}
}

func TestNewRemote_DefaultEndpoint(t *testing.T) {
	r := NewRemote("")
	if r.Endpoint != DefaultEndpoint {
		t.Errorf("Endpoint: got %s, want %s", r.Endpoint, DefaultEndpoint)
	}
	if r.Client == nil || r.Client.Timeout == 0 {
		t.Error("remote client must carry an explicit timeout")
	}
}

func TestResult_ExactlyOneVariant(t *testing.T) {
	img := &Result{Image: testPNG(t), MIMEType: "image/png"}
	if !img.OK() || img.Fallback != "" {
		t.Error("image result should populate only the image variant")
	}

	fb := &Result{Fallback: "https://example.com/render?x"}
	if fb.OK() || len(fb.Image) != 0 {
		t.Error("fallback result should populate only the locator variant")
	}
}
