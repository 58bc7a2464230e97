// internal/application/usecase/cart_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	cartdom "coutellerie/internal/domain/cart"
)

// CartView is the render-ready projection of one cart: the line items plus
// every derived value, recomputed on each call.
type CartView struct {
	Items                 []cartdom.LineItem `json:"items"`
	TotalItems            int                `json:"totalItems"`
	TotalPrice            float64            `json:"totalPrice"`
	HasAgeRestrictedItems bool               `json:"hasAgeRestrictedItems"`
}

// CartUsecase coordinates cart mutations against the durable local store.
//
// Persistence is strictly best-effort: a failing read yields an empty cart,
// a failing write is logged and swallowed. Cart operations themselves never
// fail; that is the contract the storefront UI is written against.
type CartUsecase struct {
	repo cartdom.Repository

	// one shopper mutates one cart at a time in practice; the mutex only
	// guards against overlapping HTTP requests on the same key
	mu sync.Mutex
}

func NewCartUsecase(repo cartdom.Repository) *CartUsecase {
	return &CartUsecase{repo: repo}
}

// Get returns the current view for key, rehydrating from storage.
func (uc *CartUsecase) Get(ctx context.Context, key string) CartView {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return viewOf(uc.load(ctx, key))
}

// AddItem inserts (or replaces, same product id) a line with quantity 1.
func (uc *CartUsecase) AddItem(ctx context.Context, key string, item cartdom.LineItem) CartView {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	c := uc.load(ctx, key)
	if strings.TrimSpace(item.ID) == "" {
		log.Printf("[cart_uc] add-item skipped: empty product id key=%q", key)
		return viewOf(c)
	}
	c.Add(item)
	uc.persist(ctx, key, c)
	return viewOf(c)
}

// RemoveItem deletes the line for id; absent id is a no-op.
func (uc *CartUsecase) RemoveItem(ctx context.Context, key, id string) CartView {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	c := uc.load(ctx, key)
	c.Remove(id)
	uc.persist(ctx, key, c)
	return viewOf(c)
}

// UpdateQuantity sets the quantity for id; qty <= 0 removes the line.
func (uc *CartUsecase) UpdateQuantity(ctx context.Context, key, id string, qty int) CartView {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	c := uc.load(ctx, key)
	c.SetQuantity(id, qty)
	uc.persist(ctx, key, c)
	return viewOf(c)
}

// Clear empties the cart.
func (uc *CartUsecase) Clear(ctx context.Context, key string) CartView {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	c := uc.load(ctx, key)
	c.Clear()
	uc.persist(ctx, key, c)
	return viewOf(c)
}

// load rehydrates the cart for key. Corrupt or unreadable state degrades to
// an empty cart; the shopper never sees a persistence failure.
func (uc *CartUsecase) load(ctx context.Context, key string) *cartdom.Cart {
	items, err := uc.repo.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, cartdom.ErrNotFound) {
			log.Printf("[cart_uc] load failed key=%q err=%v (falling back to empty cart)", key, err)
		}
		return cartdom.NewCart(nil)
	}
	return cartdom.NewCart(items)
}

func (uc *CartUsecase) persist(ctx context.Context, key string, c *cartdom.Cart) {
	if err := uc.repo.Save(ctx, key, c.Serializable()); err != nil {
		log.Printf("[cart_uc] save failed key=%q items=%d err=%v (state kept in memory only)", key, c.Len(), err)
	}
}

func viewOf(c *cartdom.Cart) CartView {
	return CartView{
		Items:                 c.Items(),
		TotalItems:            c.TotalItems(),
		TotalPrice:            c.TotalPrice(),
		HasAgeRestrictedItems: c.HasAgeRestrictedItems(),
	}
}
