// internal/adapters/in/http/router.go
package httpin

import (
	"net/http"

	"coutellerie/internal/adapters/in/http/handlers"
	"coutellerie/internal/adapters/in/http/middleware"
	catalogquery "coutellerie/internal/application/query/catalog"
	"coutellerie/internal/application/usecase"
)

// RouterDeps collects all usecases (and other dependencies) injected from main.
type RouterDeps struct {
	CartUC     *usecase.CartUsecase
	CheckoutUC *usecase.CheckoutUsecase
	ContactUC  *usecase.ContactUsecase

	ProductSource handlers.ProductSource
	ContentSource handlers.ContentSource
	CatalogQuery  *catalogquery.CatalogQuery

	LogoUploader handlers.LogoUploader

	// AllowedOrigin is the storefront frontend origin for CORS.
	AllowedOrigin string
}

// NewRouter sets up HTTP routing for all storefront endpoints.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Health check (always on)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Mount only what has its dependencies wired.
	if deps.ProductSource != nil && deps.CatalogQuery != nil {
		mux.Handle("/products", handlers.NewCatalogHandler(deps.ProductSource, deps.CatalogQuery))
		mux.Handle("/products/", handlers.NewCatalogHandler(deps.ProductSource, deps.CatalogQuery))
	}

	if deps.ContentSource != nil {
		content := handlers.NewContentHandler(deps.ContentSource)
		mux.Handle("/news", content)
		mux.Handle("/news/", content)
		mux.Handle("/legal-pages", content)
		mux.Handle("/legal-pages/", content)
		mux.Handle("/homepage", content)
		mux.Handle("/settings", content)
	}

	if deps.CartUC != nil {
		cart := handlers.NewCartHandler(deps.CartUC)
		mux.Handle("/cart", cart)
		mux.Handle("/cart/", cart)
	}

	if deps.CheckoutUC != nil {
		mux.Handle("/checkout/", handlers.NewCheckoutHandler(deps.CheckoutUC))
	}

	if deps.LogoUploader != nil {
		mux.Handle("/engravings/", handlers.NewEngravingHandler(deps.LogoUploader))
	}

	if deps.ContactUC != nil {
		mux.Handle("/contact", handlers.NewContactHandler(deps.ContactUC))
	}

	// Chain order matters: CORS answers preflights before anything else,
	// Recover catches panics from everything inside, the session cookie is
	// attached before any handler runs.
	var h http.Handler = middleware.CartSession(mux)
	h = middleware.Recover(h)
	h = middleware.CORS(deps.AllowedOrigin)(h)
	return h
}
