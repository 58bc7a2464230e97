// internal/adapters/out/http/checkout_session_client_test.go
package httpout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coutellerie/internal/application/usecase"
	cartdom "coutellerie/internal/domain/cart"
)

func TestCreateSessionOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/checkout/sessions", r.URL.Path)

		var req checkoutSessionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Items, 1)
		assert.Equal(t, "p1", req.Items[0].ID)
		assert.Equal(t, 2, req.Items[0].Quantity)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id": "cs_123", "url": "https://pay.example.com/cs_123"}`)
	}))
	defer srv.Close()

	c := NewCheckoutSessionClient(srv.URL)
	id, err := c.CreateSession(context.Background(), []cartdom.LineItem{
		{ID: "p1", Name: "Couteau", UnitPrice: 42, Quantity: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_123", id)
}

func TestCreateSessionStaleCart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, `{"error": "cart_outdated", "message": "Votre panier n'est plus à jour",
		                "details": ["p1: prix modifié"]}`)
	}))
	defer srv.Close()

	c := NewCheckoutSessionClient(srv.URL)
	_, err := c.CreateSession(context.Background(), []cartdom.LineItem{{ID: "p1", Quantity: 1}})

	var stale *usecase.StaleCartError
	require.ErrorAs(t, err, &stale)
	assert.Equal(t, "Votre panier n'est plus à jour", stale.Message)
	assert.Equal(t, []string{"p1: prix modifié"}, stale.Details)
}

func TestCreateSessionOtherConflictIsNotStale(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, `{"error": "duplicate_session"}`)
	}))
	defer srv.Close()

	c := NewCheckoutSessionClient(srv.URL)
	_, err := c.CreateSession(context.Background(), []cartdom.LineItem{{ID: "p1", Quantity: 1}})

	require.Error(t, err)
	var stale *usecase.StaleCartError
	assert.False(t, errors.As(err, &stale))
}

func TestCreateSessionServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewCheckoutSessionClient(srv.URL)
	_, err := c.CreateSession(context.Background(), []cartdom.LineItem{{ID: "p1", Quantity: 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=502")
}
