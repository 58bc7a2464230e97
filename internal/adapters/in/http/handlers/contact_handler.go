// internal/adapters/in/http/handlers/contact_handler.go
package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"coutellerie/internal/application/usecase"
)

// ContactHandler accepts contact-form submissions.
type ContactHandler struct {
	uc *usecase.ContactUsecase
}

func NewContactHandler(uc *usecase.ContactUsecase) http.Handler {
	return &ContactHandler{uc: uc}
}

func (h *ContactHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || strings.TrimSuffix(r.URL.Path, "/") != "/contact" {
		methodNotAllowed(w)
		return
	}

	var msg usecase.ContactMessage
	if err := readJSON(r, &msg); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}

	if err := h.uc.Send(r.Context(), msg); err != nil {
		switch {
		case errors.Is(err, usecase.ErrContactInvalidArgument),
			errors.Is(err, usecase.ErrContactInvalidEmail):
			writeErr(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("[contact_h] send: %v", err)
			writeErr(w, http.StatusBadGateway, "mail delivery failed")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}
