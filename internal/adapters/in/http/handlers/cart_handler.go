// internal/adapters/in/http/handlers/cart_handler.go
package handlers

import (
	"net/http"
	"strings"

	"coutellerie/internal/adapters/in/http/middleware"
	"coutellerie/internal/application/usecase"
	cartdom "coutellerie/internal/domain/cart"
)

// CartHandler serves the shopper's cart under /cart.
type CartHandler struct {
	uc *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) http.Handler {
	return &CartHandler{uc: uc}
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := middleware.CartSessionID(r)
	if key == "" {
		writeErr(w, http.StatusInternalServerError, "cart session missing")
		return
	}

	path := strings.TrimSuffix(r.URL.Path, "/")

	switch {
	case r.Method == http.MethodGet && path == "/cart":
		writeJSON(w, http.StatusOK, h.uc.Get(r.Context(), key))

	case r.Method == http.MethodDelete && path == "/cart":
		writeJSON(w, http.StatusOK, h.uc.Clear(r.Context(), key))

	case r.Method == http.MethodPost && path == "/cart/items":
		h.addItem(w, r, key)

	case r.Method == http.MethodPut && strings.HasPrefix(path, "/cart/items/"):
		h.updateQuantity(w, r, key, strings.TrimPrefix(path, "/cart/items/"))

	case r.Method == http.MethodDelete && strings.HasPrefix(path, "/cart/items/"):
		id := strings.TrimPrefix(path, "/cart/items/")
		writeJSON(w, http.StatusOK, h.uc.RemoveItem(r.Context(), key, id))

	default:
		methodNotAllowed(w)
	}
}

// POST /cart/items
//
// Adding an id already in the cart replaces that line: quantity back to 1,
// the new engraving and price win.
func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request, key string) {
	var item cartdom.LineItem
	if err := readJSON(r, &item); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if strings.TrimSpace(item.ID) == "" {
		writeErr(w, http.StatusBadRequest, "item id is required")
		return
	}
	writeJSON(w, http.StatusOK, h.uc.AddItem(r.Context(), key, item))
}

// PUT /cart/items/{id}
func (h *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request, key, id string) {
	id = strings.TrimSpace(id)
	if id == "" {
		writeErr(w, http.StatusBadRequest, "item id is required")
		return
	}
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := readJSON(r, &body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	writeJSON(w, http.StatusOK, h.uc.UpdateQuantity(r.Context(), key, id, body.Quantity))
}
