// internal/adapters/in/http/handlers/content_handler.go
package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	contentdom "coutellerie/internal/domain/content"
)

// ContentSource is the read side for editorial content (the CMS client in
// production, a fake in tests).
type ContentSource interface {
	GetNews(ctx context.Context, limit int) ([]contentdom.News, error)
	GetNewsBySlug(ctx context.Context, slug string) (*contentdom.News, error)
	GetLegalPages(ctx context.Context) ([]contentdom.LegalPage, error)
	GetLegalPageBySlug(ctx context.Context, slug string) (*contentdom.LegalPage, error)
	GetHomepage(ctx context.Context) (*contentdom.Homepage, error)
	GetSettings(ctx context.Context) (*contentdom.Settings, error)
}

// ContentHandler serves the CMS-driven pages: news, legal pages, homepage
// copy and site settings.
type ContentHandler struct {
	source ContentSource
}

func NewContentHandler(source ContentSource) http.Handler {
	return &ContentHandler{source: source}
}

func (h *ContentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	path := strings.TrimSuffix(r.URL.Path, "/")

	switch {
	case path == "/news":
		h.respond(w, func(ctx context.Context) (any, error) {
			return h.source.GetNews(ctx, parseIntDefault(r.URL.Query().Get("limit"), 0))
		}, r)
	case strings.HasPrefix(path, "/news/"):
		slug := strings.TrimPrefix(path, "/news/")
		h.respond(w, func(ctx context.Context) (any, error) {
			return h.source.GetNewsBySlug(ctx, slug)
		}, r)
	case path == "/legal-pages":
		h.respond(w, func(ctx context.Context) (any, error) {
			return h.source.GetLegalPages(ctx)
		}, r)
	case strings.HasPrefix(path, "/legal-pages/"):
		slug := strings.TrimPrefix(path, "/legal-pages/")
		h.respond(w, func(ctx context.Context) (any, error) {
			return h.source.GetLegalPageBySlug(ctx, slug)
		}, r)
	case path == "/homepage":
		h.respond(w, func(ctx context.Context) (any, error) {
			return h.source.GetHomepage(ctx)
		}, r)
	case path == "/settings":
		h.respond(w, func(ctx context.Context) (any, error) {
			return h.source.GetSettings(ctx)
		}, r)
	default:
		writeErr(w, http.StatusNotFound, "not_found")
	}
}

func (h *ContentHandler) respond(w http.ResponseWriter, fetch func(context.Context) (any, error), r *http.Request) {
	v, err := fetch(r.Context())
	if err != nil {
		if errors.Is(err, contentdom.ErrNotFound) {
			writeErr(w, http.StatusNotFound, "not_found")
			return
		}
		log.Printf("[content_h] %s: %v", r.URL.Path, err)
		writeErr(w, http.StatusBadGateway, "content unavailable")
		return
	}
	writeJSON(w, http.StatusOK, v)
}
