// internal/adapters/in/http/handlers/engraving_handler.go
package handlers

import (
	"context"
	"io"
	"log"
	"net/http"
	"strings"
)

// LogoUploader stores a customer engraving logo and returns its public URL.
type LogoUploader interface {
	UploadLogo(ctx context.Context, filename, contentType string, src io.Reader) (string, error)
}

// EngravingHandler accepts multipart logo uploads for engraved items.
// The returned URL goes into the cart line's logoRef; the raw bytes never
// touch the cart blob.
type EngravingHandler struct {
	uploader LogoUploader
}

func NewEngravingHandler(uploader LogoUploader) http.Handler {
	return &EngravingHandler{uploader: uploader}
}

func (h *EngravingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || strings.TrimSuffix(r.URL.Path, "/") != "/engravings/logo" {
		methodNotAllowed(w)
		return
	}

	if err := r.ParseMultipartForm(8 << 20); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		writeErr(w, http.StatusBadRequest, "logo file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")

	url, err := h.uploader.UploadLogo(r.Context(), header.Filename, contentType, file)
	if err != nil {
		if strings.Contains(err.Error(), "unsupported content type") {
			writeErr(w, http.StatusUnsupportedMediaType, "unsupported logo type")
			return
		}
		log.Printf("[engraving_h] upload logo: %v", err)
		writeErr(w, http.StatusBadGateway, "logo upload failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"logoUrl": url})
}
