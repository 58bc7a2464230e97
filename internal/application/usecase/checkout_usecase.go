// internal/application/usecase/checkout_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	cartdom "coutellerie/internal/domain/cart"
)

var (
	ErrCheckoutCartEmpty      = errors.New("checkout: cart is empty")
	ErrCheckoutCreatorMissing = errors.New("checkout: session creator is not configured")
	ErrCheckoutCartUCMissing  = errors.New("checkout: cart usecase is not configured")
)

// StaleCartError is the provider's signal that a cart line no longer matches
// server-side product/price truth. It is the one external condition that
// forces an internal mutation: the cart is cleared so the shopper re-selects.
type StaleCartError struct {
	Message string
	Details []string
}

func (e *StaleCartError) Error() string {
	if e == nil {
		return "checkout: stale cart"
	}
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = "cart is outdated"
	}
	return "checkout: " + msg
}

// CheckoutSessionCreator is the outbound port to the hosted payment
// provider: it creates a checkout session for the given line items and
// returns the session id to redirect to. A stale cart is reported as
// *StaleCartError.
type CheckoutSessionCreator interface {
	CreateSession(ctx context.Context, items []cartdom.LineItem) (string, error)
}

// CheckoutUsecase hands the committed cart off to the payment provider.
// The cart contents are passed as-is; this service interprets nothing of
// the response beyond "stale cart" versus any other failure.
type CheckoutUsecase struct {
	cartUC  *CartUsecase
	creator CheckoutSessionCreator
}

func NewCheckoutUsecase(cartUC *CartUsecase, creator CheckoutSessionCreator) *CheckoutUsecase {
	return &CheckoutUsecase{cartUC: cartUC, creator: creator}
}

// Checkout creates a payment session for the cart under key.
//
//   - stale cart (provider 409 / cart_outdated): the cart is cleared and the
//     *StaleCartError is returned for the UI to surface with details;
//   - any other failure: the cart is left untouched and the error returned.
func (uc *CheckoutUsecase) Checkout(ctx context.Context, key string) (string, error) {
	if uc.cartUC == nil {
		return "", ErrCheckoutCartUCMissing
	}
	if uc.creator == nil {
		return "", ErrCheckoutCreatorMissing
	}

	view := uc.cartUC.Get(ctx, key)
	if len(view.Items) == 0 {
		return "", ErrCheckoutCartEmpty
	}

	sessionID, err := uc.creator.CreateSession(ctx, view.Items)
	if err != nil {
		var stale *StaleCartError
		if errors.As(err, &stale) {
			log.Printf("[checkout_uc] stale cart key=%q details=%d (clearing cart)", key, len(stale.Details))
			uc.cartUC.Clear(ctx, key)
			return "", stale
		}
		log.Printf("[checkout_uc] session creation failed key=%q err=%v (cart untouched)", key, err)
		return "", fmt.Errorf("checkout: create session: %w", err)
	}

	log.Printf("[checkout_uc] session created key=%q items=%d total=%.2f", key, view.TotalItems, view.TotalPrice)
	return sessionID, nil
}
