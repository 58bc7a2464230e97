// internal/domain/cart/repository_port.go
package cart

import (
	"context"
	"errors"
)

var (
	// ErrNotFound means no blob has ever been stored under the key.
	ErrNotFound = errors.New("cart: not found")
)

// Repository is the outbound port for the durable local key/value store the
// cart survives reloads in. Implementations store the serialized line-item
// list under an opaque key (one key per shopper session).
type Repository interface {
	Load(ctx context.Context, key string) ([]LineItem, error)
	Save(ctx context.Context, key string, items []LineItem) error
	Delete(ctx context.Context, key string) error
}
