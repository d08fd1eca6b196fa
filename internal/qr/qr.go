package qr

import (
	"net/http"

	qrcode "github.com/skip2/go-qrcode"
)

const imageSize = 256

// Handler renders a PNG QR code for a caller-supplied URL, used for event
// check-in links.
func Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url := r.URL.Query().Get("url")
		if url == "" {
			http.Error(w, "url parameter required", http.StatusBadRequest)
			return
		}
		png, err := qrcode.Encode(url, qrcode.Medium, imageSize)
		if err != nil {
			http.Error(w, "failed to encode qr code", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(png)
	}
}
