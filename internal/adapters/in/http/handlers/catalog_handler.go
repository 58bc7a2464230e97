// internal/adapters/in/http/handlers/catalog_handler.go
package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	catalogquery "coutellerie/internal/application/query/catalog"
	catalogdom "coutellerie/internal/domain/catalog"
)

// ProductSource is the read side of the catalog (the CMS client in
// production, a fake in tests).
type ProductSource interface {
	GetProducts(ctx context.Context) ([]catalogdom.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*catalogdom.Product, error)
	GetFeaturedProducts(ctx context.Context, limit int) ([]catalogdom.Product, error)
}

// CatalogHandler serves the filtered product grid under /products.
type CatalogHandler struct {
	source ProductSource
	query  *catalogquery.CatalogQuery
}

func NewCatalogHandler(source ProductSource, query *catalogquery.CatalogQuery) http.Handler {
	return &CatalogHandler{source: source, query: query}
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	path := strings.TrimSuffix(r.URL.Path, "/")

	switch {
	case path == "/products":
		h.list(w, r)
	case path == "/products/featured":
		h.featured(w, r)
	case strings.HasPrefix(path, "/products/"):
		h.bySlug(w, r, strings.TrimPrefix(path, "/products/"))
	default:
		writeErr(w, http.StatusNotFound, "not_found")
	}
}

// selectionFromQuery builds the filter selection the grid request encodes.
// The setters run top-down so the hierarchy invariant holds even for
// hand-crafted URLs (a brand without its category context is dropped).
func selectionFromQuery(r *http.Request) catalogquery.Selection {
	q := r.URL.Query()

	sel := catalogquery.NewSelection()
	sel.SetSearch(q.Get("q"))
	sel.SetCategory(q.Get("category"))
	sel.SetSubCategory(q.Get("subCategory"))
	for _, b := range splitCSV(q.Get("brands")) {
		sel.ToggleBrand(b)
	}
	sel.SetFlags(catalogquery.Flags{
		PromoOnly:          parseBool(q.Get("promo")),
		LimitedEditionOnly: parseBool(q.Get("limitedEdition")),
		EndOfSeriesOnly:    parseBool(q.Get("endOfSeries")),
	})
	sel.SetSort(catalogquery.ParseSortKey(q.Get("sort")))
	sel.SetPage(parseIntDefault(q.Get("page"), 1))
	return sel
}

// GET /products
func (h *CatalogHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.source.GetProducts(ctx)
	if err != nil {
		log.Printf("[catalog_h] list products: %v", err)
		writeErr(w, http.StatusBadGateway, "catalog unavailable")
		return
	}

	result := h.query.Apply(products, selectionFromQuery(r))
	writeJSON(w, http.StatusOK, result)
}

// GET /products/featured
func (h *CatalogHandler) featured(w http.ResponseWriter, r *http.Request) {
	products, err := h.source.GetFeaturedProducts(r.Context(), parseIntDefault(r.URL.Query().Get("limit"), 6))
	if err != nil {
		log.Printf("[catalog_h] featured products: %v", err)
		writeErr(w, http.StatusBadGateway, "catalog unavailable")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// GET /products/{slug}
func (h *CatalogHandler) bySlug(w http.ResponseWriter, r *http.Request, slug string) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		writeErr(w, http.StatusBadRequest, "invalid slug")
		return
	}

	p, err := h.source.GetProductBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, catalogdom.ErrNotFound) {
			writeErr(w, http.StatusNotFound, "not_found")
			return
		}
		log.Printf("[catalog_h] product by slug %q: %v", slug, err)
		writeErr(w, http.StatusBadGateway, "catalog unavailable")
		return
	}
	writeJSON(w, http.StatusOK, p)
}
