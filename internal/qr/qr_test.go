package qr

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestHandler_ReturnsPNG(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/qr?url=https://example.com/checkin", nil)
	w := httptest.NewRecorder()
	Handler()(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Result().StatusCode)
	}
	if ct := w.Result().Header.Get("Content-Type"); ct != "image/png" {
		t.Fatalf("expected image/png, got %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), pngMagic) {
		t.Fatal("expected PNG magic bytes")
	}
}

func TestHandler_MissingURL(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/qr", nil)
	w := httptest.NewRecorder()
	Handler()(w, req)

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 without url, got %d", w.Result().StatusCode)
	}
}
