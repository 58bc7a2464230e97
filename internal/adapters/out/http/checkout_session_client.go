// internal/adapters/out/http/checkout_session_client.go
package httpout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"coutellerie/internal/application/usecase"
	cartdom "coutellerie/internal/domain/cart"
)

// CheckoutSessionClient calls the payment backend that revalidates the cart
// against live catalog data and opens a hosted payment session.
type CheckoutSessionClient struct {
	baseURL string
	client  *http.Client
}

// baseURL example:
// - Cloud Run: https://xxxxx.europe-west1.run.app
// - local: http://localhost:8080
func NewCheckoutSessionClient(baseURL string) *CheckoutSessionClient {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	return &CheckoutSessionClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type checkoutSessionRequest struct {
	Items []cartdom.LineItem `json:"items"`
}

type checkoutSessionResponse struct {
	ID      string   `json:"id"`
	URL     string   `json:"url,omitempty"`
	Error   string   `json:"error,omitempty"`
	Message string   `json:"message,omitempty"`
	Details []string `json:"details,omitempty"`
}

// CreateSession implements CheckoutUsecase's outbound port.
//
// A 409 with error="cart_outdated" means the backend re-priced the cart and
// found it stale; that comes back as *usecase.StaleCartError so the caller
// can reset local state.
func (c *CheckoutSessionClient) CreateSession(ctx context.Context, items []cartdom.LineItem) (string, error) {
	if c == nil {
		return "", fmt.Errorf("checkout session client is nil")
	}
	if c.baseURL == "" {
		return "", fmt.Errorf("checkout session client baseURL is empty")
	}

	url := c.baseURL + "/api/checkout/sessions"

	b, _ := json.Marshal(checkoutSessionRequest{Items: items})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(res.Body, 1<<20))

	var parsed checkoutSessionResponse
	_ = json.Unmarshal(body, &parsed)

	switch {
	case res.StatusCode == http.StatusOK || res.StatusCode == http.StatusCreated:
		if strings.TrimSpace(parsed.ID) == "" {
			return "", fmt.Errorf("checkout session response missing id body=%s", strings.TrimSpace(string(body)))
		}
		return parsed.ID, nil

	case res.StatusCode == http.StatusConflict && parsed.Error == "cart_outdated":
		msg := strings.TrimSpace(parsed.Message)
		if msg == "" {
			msg = "cart is outdated"
		}
		return "", &usecase.StaleCartError{Message: msg, Details: parsed.Details}

	default:
		return "", fmt.Errorf("checkout session call failed status=%d body=%s",
			res.StatusCode, strings.TrimSpace(string(body)))
	}
}
