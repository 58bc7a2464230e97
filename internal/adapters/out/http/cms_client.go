// internal/adapters/out/http/cms_client.go
package httpout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	catalogdom "coutellerie/internal/domain/catalog"
	contentdom "coutellerie/internal/domain/content"
)

// errStatusNotFound marks an HTTP 404 from the CMS; public methods map it
// to the domain-level not-found sentinels.
var errStatusNotFound = errors.New("cms: not found")

// CMSClient talks to the headless CMS over its REST API. Every collection
// response comes wrapped in a {data, meta} envelope; single types wrap a
// single object the same way.
type CMSClient struct {
	baseURL    string
	apiToken   string
	merchantID string
	client     *http.Client
}

// NewCMSClient builds a client for the CMS at baseURL. merchantID scopes
// product listings to this shop's merchant account; the CMS API cannot
// filter on it server-side, so listings filter client-side.
func NewCMSClient(baseURL, apiToken, merchantID string) *CMSClient {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	return &CMSClient{
		baseURL:    baseURL,
		apiToken:   strings.TrimSpace(apiToken),
		merchantID: strings.TrimSpace(merchantID),
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta struct {
		Pagination struct {
			Page      int `json:"page"`
			PageSize  int `json:"pageSize"`
			PageCount int `json:"pageCount"`
			Total     int `json:"total"`
		} `json:"pagination"`
	} `json:"meta"`
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// getEnvelope performs a GET against path with query values and returns the
// decoded envelope.
func (c *CMSClient) getEnvelope(ctx context.Context, path string, q url.Values) (*envelope, error) {
	if c == nil || c.baseURL == "" {
		return nil, fmt.Errorf("cms: client is not configured")
	}

	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cms: GET %s: %w", path, err)
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(res.Body, 8<<20))

	if res.StatusCode == http.StatusNotFound {
		return nil, errStatusNotFound
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cms: GET %s status=%d body=%s",
			path, res.StatusCode, strings.TrimSpace(string(body)))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("cms: GET %s decode: %w", path, err)
	}
	if env.Error.Status != 0 {
		return nil, fmt.Errorf("cms: GET %s error status=%d message=%s",
			path, env.Error.Status, env.Error.Message)
	}
	return &env, nil
}

// get is getEnvelope for callers that only need the data payload.
func (c *CMSClient) get(ctx context.Context, path string, q url.Values) (json.RawMessage, error) {
	env, err := c.getEnvelope(ctx, path, q)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// productDoc carries the merchant relation the domain type does not keep.
type productDoc struct {
	catalogdom.Product
	Merchant *struct {
		DocumentID string `json:"documentId"`
		Name       string `json:"name"`
	} `json:"merchant"`
}

func (c *CMSClient) belongsToMerchant(doc productDoc) bool {
	if c.merchantID == "" {
		return true
	}
	return doc.Merchant != nil && doc.Merchant.DocumentID == c.merchantID
}

func defaultProductQuery() url.Values {
	q := url.Values{}
	q.Set("populate[images]", "true")
	q.Set("populate[category]", "true")
	q.Set("populate[subCategory][populate][category]", "true")
	q.Set("populate[brand]", "true")
	q.Set("populate[engravings]", "true")
	q.Set("populate[merchant]", "true")
	q.Set("pagination[pageSize]", "100")
	return q
}

// GetProducts fetches the full product catalog for this merchant. The CMS
// pages at 100; pages are walked until the envelope reports the last one.
func (c *CMSClient) GetProducts(ctx context.Context) ([]catalogdom.Product, error) {
	var out []catalogdom.Product
	for page := 1; ; page++ {
		q := defaultProductQuery()
		q.Set("pagination[page]", strconv.Itoa(page))

		env, err := c.getEnvelope(ctx, "/api/products", q)
		if err != nil {
			return nil, err
		}
		var docs []productDoc
		if err := json.Unmarshal(env.Data, &docs); err != nil {
			return nil, fmt.Errorf("cms: GET /api/products decode data: %w", err)
		}
		for _, d := range docs {
			if c.belongsToMerchant(d) {
				out = append(out, d.Product)
			}
		}

		if env.Meta.Pagination.PageCount == 0 || page >= env.Meta.Pagination.PageCount {
			break
		}
	}
	return out, nil
}

// GetProductBySlug looks a product up by slug, falling back to documentId
// for links minted before slugs existed.
func (c *CMSClient) GetProductBySlug(ctx context.Context, slug string) (*catalogdom.Product, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, catalogdom.ErrNotFound
	}

	for _, field := range []string{"slug", "documentId"} {
		q := defaultProductQuery()
		q.Set(fmt.Sprintf("filters[%s][$eq]", field), slug)

		data, err := c.get(ctx, "/api/products", q)
		if err != nil {
			if errors.Is(err, errStatusNotFound) {
				continue
			}
			return nil, err
		}
		var docs []productDoc
		if err := json.Unmarshal(data, &docs); err != nil {
			return nil, fmt.Errorf("cms: product by %s decode: %w", field, err)
		}
		for _, d := range docs {
			if c.belongsToMerchant(d) {
				p := d.Product
				return &p, nil
			}
		}
	}
	return nil, catalogdom.ErrNotFound
}

// GetFeaturedProducts returns up to limit products flagged for the home page.
func (c *CMSClient) GetFeaturedProducts(ctx context.Context, limit int) ([]catalogdom.Product, error) {
	if limit <= 0 {
		limit = 6
	}
	q := defaultProductQuery()
	q.Set("filters[featured][$eq]", "true")
	q.Set("pagination[pageSize]", strconv.Itoa(limit))

	data, err := c.get(ctx, "/api/products", q)
	if err != nil {
		return nil, err
	}
	var docs []productDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("cms: featured products decode: %w", err)
	}
	out := make([]catalogdom.Product, 0, len(docs))
	for _, d := range docs {
		if c.belongsToMerchant(d) && len(out) < limit {
			out = append(out, d.Product)
		}
	}
	return out, nil
}

// GetNews lists news articles, newest first. limit<=0 means all.
func (c *CMSClient) GetNews(ctx context.Context, limit int) ([]contentdom.News, error) {
	q := url.Values{}
	q.Set("populate", "*")
	q.Set("sort", "publishedAt:desc")
	if limit > 0 {
		q.Set("pagination[pageSize]", strconv.Itoa(limit))
	}

	data, err := c.get(ctx, "/api/news-articles", q)
	if err != nil {
		return nil, err
	}
	var out []contentdom.News
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("cms: news decode: %w", err)
	}
	return out, nil
}

func (c *CMSClient) GetNewsBySlug(ctx context.Context, slug string) (*contentdom.News, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, contentdom.ErrNotFound
	}
	q := url.Values{}
	q.Set("populate", "*")
	q.Set("filters[slug][$eq]", slug)

	data, err := c.get(ctx, "/api/news-articles", q)
	if err != nil {
		return nil, err
	}
	var out []contentdom.News
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("cms: news by slug decode: %w", err)
	}
	if len(out) == 0 {
		return nil, contentdom.ErrNotFound
	}
	return &out[0], nil
}

// GetLegalPages lists the legal/editorial pages (CGV, mentions, etc).
func (c *CMSClient) GetLegalPages(ctx context.Context) ([]contentdom.LegalPage, error) {
	q := url.Values{}
	q.Set("pagination[pageSize]", "50")

	data, err := c.get(ctx, "/api/legal-pages", q)
	if err != nil {
		return nil, err
	}
	var out []contentdom.LegalPage
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("cms: legal pages decode: %w", err)
	}
	return out, nil
}

func (c *CMSClient) GetLegalPageBySlug(ctx context.Context, slug string) (*contentdom.LegalPage, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, contentdom.ErrNotFound
	}
	q := url.Values{}
	q.Set("filters[slug][$eq]", slug)

	data, err := c.get(ctx, "/api/legal-pages", q)
	if err != nil {
		return nil, err
	}
	var out []contentdom.LegalPage
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("cms: legal page by slug decode: %w", err)
	}
	if len(out) == 0 {
		return nil, contentdom.ErrNotFound
	}
	return &out[0], nil
}

// GetHomepage fetches the home page single type.
func (c *CMSClient) GetHomepage(ctx context.Context) (*contentdom.Homepage, error) {
	q := url.Values{}
	q.Set("populate[heroImage]", "true")
	q.Set("populate[featuredProducts][populate]", "*")

	data, err := c.get(ctx, "/api/homepage", q)
	if err != nil {
		if errors.Is(err, errStatusNotFound) {
			return nil, contentdom.ErrNotFound
		}
		return nil, err
	}
	var out contentdom.Homepage
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("cms: homepage decode: %w", err)
	}
	return &out, nil
}

// GetSettings fetches the site settings single type (contact details,
// social links, banner).
func (c *CMSClient) GetSettings(ctx context.Context) (*contentdom.Settings, error) {
	q := url.Values{}
	q.Set("populate", "*")

	data, err := c.get(ctx, "/api/setting", q)
	if err != nil {
		if errors.Is(err, errStatusNotFound) {
			return nil, contentdom.ErrNotFound
		}
		return nil, err
	}
	var out contentdom.Settings
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("cms: settings decode: %w", err)
	}
	return &out, nil
}
