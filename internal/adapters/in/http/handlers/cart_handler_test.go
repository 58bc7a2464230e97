// internal/adapters/in/http/handlers/cart_handler_test.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coutellerie/internal/adapters/in/http/middleware"
	"coutellerie/internal/application/usecase"
	cartdom "coutellerie/internal/domain/cart"
)

type memCartRepo struct {
	blobs map[string][]cartdom.LineItem
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{blobs: map[string][]cartdom.LineItem{}}
}

func (r *memCartRepo) Load(_ context.Context, key string) ([]cartdom.LineItem, error) {
	items, ok := r.blobs[key]
	if !ok {
		return nil, cartdom.ErrNotFound
	}
	return items, nil
}

func (r *memCartRepo) Save(_ context.Context, key string, items []cartdom.LineItem) error {
	r.blobs[key] = items
	return nil
}

func (r *memCartRepo) Delete(_ context.Context, key string) error {
	delete(r.blobs, key)
	return nil
}

// newCartServer wires the handler behind the session middleware, the way the
// router does.
func newCartServer(t *testing.T) *httptest.Server {
	t.Helper()
	uc := usecase.NewCartUsecase(newMemCartRepo())
	srv := httptest.NewServer(middleware.CartSession(NewCartHandler(uc)))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, client *http.Client, method, url, body string) (*http.Response, usecase.CartView) {
	t.Helper()
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	res, err := client.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var view usecase.CartView
	_ = json.NewDecoder(res.Body).Decode(&view)
	return res, view
}

func cookieClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func TestCartHandlerFlow(t *testing.T) {
	srv := newCartServer(t)
	client := cookieClient(t)

	// empty cart, cookie minted
	res, view := doJSON(t, client, http.MethodGet, srv.URL+"/cart", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 0, view.TotalItems)

	// add an item
	res, view = doJSON(t, client, http.MethodPost, srv.URL+"/cart/items",
		`{"id":"p1","name":"Couteau","price":19.9,"ageRestricted":true}`)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].Quantity)
	assert.True(t, view.HasAgeRestrictedItems)

	// bump quantity
	res, view = doJSON(t, client, http.MethodPut, srv.URL+"/cart/items/p1", `{"quantity":3}`)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 3, view.TotalItems)
	assert.InDelta(t, 59.7, view.TotalPrice, 1e-9)

	// re-adding the same id replaces the line, quantity back to 1
	_, view = doJSON(t, client, http.MethodPost, srv.URL+"/cart/items",
		`{"id":"p1","name":"Couteau","price":21.5}`)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].Quantity)
	assert.Equal(t, 21.5, view.Items[0].UnitPrice)

	// remove, then clear stays empty
	_, view = doJSON(t, client, http.MethodDelete, srv.URL+"/cart/items/p1", "")
	assert.Empty(t, view.Items)
	res, view = doJSON(t, client, http.MethodDelete, srv.URL+"/cart", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Empty(t, view.Items)
}

func TestCartHandlerSessionsAreIsolated(t *testing.T) {
	srv := newCartServer(t)

	alice := cookieClient(t)
	bob := cookieClient(t)

	_, view := doJSON(t, alice, http.MethodPost, srv.URL+"/cart/items", `{"id":"p1","price":10}`)
	require.Len(t, view.Items, 1)

	_, view = doJSON(t, bob, http.MethodGet, srv.URL+"/cart", "")
	assert.Empty(t, view.Items)
}

func TestCartHandlerRejectsBadInput(t *testing.T) {
	srv := newCartServer(t)
	client := cookieClient(t)

	res, _ := doJSON(t, client, http.MethodPost, srv.URL+"/cart/items", `{"name":"no id"}`)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = doJSON(t, client, http.MethodPost, srv.URL+"/cart/items", `{broken`)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = doJSON(t, client, http.MethodPatch, srv.URL+"/cart", "")
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}

func TestCartHandlerSetsSessionCookie(t *testing.T) {
	srv := newCartServer(t)

	res, err := http.Get(srv.URL + "/cart")
	require.NoError(t, err)
	res.Body.Close()

	var found bool
	for _, c := range res.Cookies() {
		if c.Name == middleware.CartCookieName && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "expected %s cookie", middleware.CartCookieName)
}
