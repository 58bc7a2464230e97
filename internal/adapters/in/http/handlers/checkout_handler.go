// internal/adapters/in/http/handlers/checkout_handler.go
package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"coutellerie/internal/adapters/in/http/middleware"
	"coutellerie/internal/application/usecase"
)

// CheckoutHandler opens hosted payment sessions for the current cart.
type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase) http.Handler {
	return &CheckoutHandler{uc: uc}
}

func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || strings.TrimSuffix(r.URL.Path, "/") != "/checkout/sessions" {
		methodNotAllowed(w)
		return
	}

	key := middleware.CartSessionID(r)
	if key == "" {
		writeErr(w, http.StatusInternalServerError, "cart session missing")
		return
	}

	sessionID, err := h.uc.Checkout(r.Context(), key)
	if err != nil {
		h.writeCheckoutErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"sessionId": sessionID})
}

func (h *CheckoutHandler) writeCheckoutErr(w http.ResponseWriter, err error) {
	var stale *usecase.StaleCartError
	switch {
	case errors.Is(err, usecase.ErrCheckoutCartEmpty):
		writeErr(w, http.StatusBadRequest, "cart is empty")

	case errors.As(err, &stale):
		// the cart has already been cleared by the usecase
		writeJSON(w, http.StatusConflict, map[string]any{
			"error":   "cart_outdated",
			"message": stale.Message,
			"details": stale.Details,
		})

	default:
		log.Printf("[checkout_h] create session: %v", err)
		writeErr(w, http.StatusBadGateway, "checkout unavailable")
	}
}
