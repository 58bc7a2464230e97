// internal/application/query/catalog/catalog_query.go
package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	catalogdom "coutellerie/internal/domain/catalog"
)

// PageSize is the fixed number of products per grid page.
const PageSize = 25

// Result is one computed view of the catalog for a committed selection.
type Result struct {
	Products []catalogdom.Product `json:"products"`

	TotalMatches int `json:"totalMatches"`
	Page         int `json:"page"`
	TotalPages   int `json:"totalPages"`

	// Option narrowing: the sub-categories / brands that remain meaningful
	// given the higher-level selections already made. Computed from the
	// product set restricted only by ancestors, never from the fully
	// filtered list, so the shopper always sees what else exists.
	AvailableSubCategories []catalogdom.SubCategory `json:"availableSubCategories"`
	AvailableBrands        []catalogdom.Brand       `json:"availableBrands"`
}

// CatalogQuery turns (all products, selection) into the filtered, sorted and
// paginated grid view. It holds no state beyond the collator; every call is
// a pure synchronous computation over the snapshot it is given.
type CatalogQuery struct {
	collator *collate.Collator
}

// NewCatalogQuery builds the query with French collation, so "Écrin" and
// "Ecrin" order the way a French shopper expects.
func NewCatalogQuery() *CatalogQuery {
	return &CatalogQuery{collator: collate.New(language.French)}
}

// Apply runs the filter pipeline in its fixed order:
// search → category → sub-category → brands → flags → sort → paginate.
// The products slice is treated as an immutable snapshot.
func (q *CatalogQuery) Apply(products []catalogdom.Product, sel Selection) Result {
	filtered := make([]catalogdom.Product, 0, len(products))
	keywords := searchKeywords(sel.Search)

	for _, p := range products {
		if !matchesKeywords(p, keywords) {
			continue
		}
		if sel.Category != "" && (p.Category == nil || p.Category.Slug != sel.Category) {
			continue
		}
		if sel.SubCategory != "" && (p.SubCategory == nil || p.SubCategory.Slug != sel.SubCategory) {
			continue
		}
		if len(sel.Brands) > 0 && (p.Brand == nil || !sel.HasBrand(p.Brand.Slug)) {
			continue
		}
		if sel.Flags.PromoOnly && !p.IsPromo {
			continue
		}
		if sel.Flags.LimitedEditionOnly && !p.LimitedEdition {
			continue
		}
		if sel.Flags.EndOfSeriesOnly && !p.EndOfSeries {
			continue
		}
		filtered = append(filtered, p)
	}

	q.sortProducts(filtered, sel.Sort)

	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	page := sel.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result{
		Products:               filtered[start:end],
		TotalMatches:           total,
		Page:                   page,
		TotalPages:             totalPages,
		AvailableSubCategories: q.AvailableSubCategories(products, sel),
		AvailableBrands:        q.AvailableBrands(products, sel),
	}
}

// AvailableSubCategories lists the sub-categories appearing on at least one
// product of the selected category. Sub-category, brand and search filters
// are deliberately ignored: options narrow by ancestors only.
// No category selected means no sub-category options.
func (q *CatalogQuery) AvailableSubCategories(products []catalogdom.Product, sel Selection) []catalogdom.SubCategory {
	if sel.Category == "" {
		return []catalogdom.SubCategory{}
	}
	seen := map[string]catalogdom.SubCategory{}
	for _, p := range products {
		if p.Category == nil || p.Category.Slug != sel.Category {
			continue
		}
		if p.SubCategory == nil || p.SubCategory.Slug == "" {
			continue
		}
		if _, ok := seen[p.SubCategory.Slug]; !ok {
			seen[p.SubCategory.Slug] = *p.SubCategory
		}
	}
	out := make([]catalogdom.SubCategory, 0, len(seen))
	for _, sc := range seen {
		out = append(out, sc)
	}
	sort.Slice(out, func(i, j int) bool {
		return q.collator.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

// AvailableBrands lists the brands co-occurring with the current taxonomy
// context: the selected sub-category when there is one, else the selected
// category. Without any category context brands are not offered at all.
func (q *CatalogQuery) AvailableBrands(products []catalogdom.Product, sel Selection) []catalogdom.Brand {
	if sel.Category == "" && sel.SubCategory == "" {
		return []catalogdom.Brand{}
	}
	seen := map[string]catalogdom.Brand{}
	for _, p := range products {
		if sel.SubCategory != "" {
			if p.SubCategory == nil || p.SubCategory.Slug != sel.SubCategory {
				continue
			}
		} else if p.Category == nil || p.Category.Slug != sel.Category {
			continue
		}
		if p.Brand == nil || p.Brand.Slug == "" {
			continue
		}
		if _, ok := seen[p.Brand.Slug]; !ok {
			seen[p.Brand.Slug] = *p.Brand
		}
	}
	out := make([]catalogdom.Brand, 0, len(seen))
	for _, b := range seen {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return q.collator.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

func (q *CatalogQuery) sortProducts(products []catalogdom.Product, key SortKey) {
	switch key {
	case SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return q.collator.CompareString(products[i].Name, products[j].Name) > 0
		})
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	default: // SortNameAsc
		sort.SliceStable(products, func(i, j int) bool {
			return q.collator.CompareString(products[i].Name, products[j].Name) < 0
		})
	}
}

// searchKeywords lowercases and splits the query on whitespace; an empty
// query yields no keywords (no filter).
func searchKeywords(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// matchesKeywords requires every keyword to be a substring of the product's
// searchable text (AND semantics).
func matchesKeywords(p catalogdom.Product, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	text := strings.ToLower(p.SearchableText())
	for _, kw := range keywords {
		if !strings.Contains(text, kw) {
			return false
		}
	}
	return true
}
