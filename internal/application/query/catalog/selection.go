// internal/application/query/catalog/selection.go
package catalog

import (
	"sort"
	"strings"
)

// SortKey enumerates the supported orderings of the product grid.
type SortKey string

const (
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// ParseSortKey maps a raw value to a SortKey, defaulting to name-asc.
// Sort input comes from a closed enumeration, so anything unknown simply
// falls back to the default instead of erroring.
func ParseSortKey(raw string) SortKey {
	switch SortKey(strings.TrimSpace(raw)) {
	case SortNameDesc:
		return SortNameDesc
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	default:
		return SortNameAsc
	}
}

// Flags are the special product toggles; each active flag filters on the
// corresponding boolean product field, AND-combined with the others.
type Flags struct {
	PromoOnly          bool `json:"promoOnly,omitempty"`
	LimitedEditionOnly bool `json:"limitedEditionOnly,omitempty"`
	EndOfSeriesOnly    bool `json:"endOfSeriesOnly,omitempty"`
}

// Selection is one committed (or drafted) set of filter choices.
//
// The taxonomy selections form a strict hierarchy: picking a category
// invalidates the sub-category and brand choices below it, and picking a
// sub-category invalidates the brand choices. Mutations go through the
// setter methods so that invariant (and the page-1 reset on any upstream
// change) always holds.
type Selection struct {
	Category    string   `json:"category,omitempty"`
	SubCategory string   `json:"subCategory,omitempty"`
	Brands      []string `json:"brands,omitempty"`
	Search      string   `json:"search,omitempty"`
	Flags       Flags    `json:"flags,omitempty"`
	Sort        SortKey  `json:"sort,omitempty"`
	Page        int      `json:"page,omitempty"`
}

// NewSelection returns the empty selection (no filters, name-asc, page 1).
func NewSelection() Selection {
	return Selection{Sort: SortNameAsc, Page: 1}
}

// SetCategory selects a category slug ("" clears it). Sub-category and
// brand selections are reset either way.
func (s *Selection) SetCategory(slug string) {
	s.Category = strings.TrimSpace(slug)
	s.SubCategory = ""
	s.Brands = nil
	s.Page = 1
}

// SetSubCategory selects a sub-category slug ("" clears it); brand
// selections are reset.
func (s *Selection) SetSubCategory(slug string) {
	s.SubCategory = strings.TrimSpace(slug)
	s.Brands = nil
	s.Page = 1
}

// ToggleBrand adds the brand slug to the set, or removes it when present.
func (s *Selection) ToggleBrand(slug string) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return
	}
	for i, b := range s.Brands {
		if b == slug {
			s.Brands = append(s.Brands[:i], s.Brands[i+1:]...)
			s.Page = 1
			return
		}
	}
	s.Brands = append(s.Brands, slug)
	s.Page = 1
}

// HasBrand reports membership of slug in the brand set.
func (s Selection) HasBrand(slug string) bool {
	for _, b := range s.Brands {
		if b == slug {
			return true
		}
	}
	return false
}

// SetSearch sets the free-text query; the empty string means "no filter".
func (s *Selection) SetSearch(q string) {
	s.Search = strings.TrimSpace(q)
	s.Page = 1
}

// SetFlags replaces the flag toggles.
func (s *Selection) SetFlags(f Flags) {
	s.Flags = f
	s.Page = 1
}

// SetSort changes the sort key.
func (s *Selection) SetSort(k SortKey) {
	s.Sort = k
	s.Page = 1
}

// SetPage moves to the requested page; the engine clamps it to the valid
// range at apply time.
func (s *Selection) SetPage(p int) {
	if p < 1 {
		p = 1
	}
	s.Page = p
}

// ClearFilters resets every taxonomy/flag/search choice but keeps the sort.
func (s *Selection) ClearFilters() {
	s.Category = ""
	s.SubCategory = ""
	s.Brands = nil
	s.Search = ""
	s.Flags = Flags{}
	s.Page = 1
}

// IsZero reports whether the selection filters nothing.
func (s Selection) IsZero() bool {
	return s.Category == "" && s.SubCategory == "" && len(s.Brands) == 0 &&
		s.Search == "" && s.Flags == Flags{}
}

// clone returns a deep copy (Brands is the only reference field).
func (s Selection) clone() Selection {
	cp := s
	if s.Brands != nil {
		cp.Brands = make([]string, len(s.Brands))
		copy(cp.Brands, s.Brands)
	}
	return cp
}

// equalSelections compares two selections, treating the brand sets as
// unordered.
func equalSelections(a, b Selection) bool {
	if a.Category != b.Category || a.SubCategory != b.SubCategory ||
		a.Search != b.Search || a.Flags != b.Flags ||
		a.Sort != b.Sort || a.Page != b.Page {
		return false
	}
	if len(a.Brands) != len(b.Brands) {
		return false
	}
	ab := append([]string(nil), a.Brands...)
	bb := append([]string(nil), b.Brands...)
	sort.Strings(ab)
	sort.Strings(bb)
	for i := range ab {
		if ab[i] != bb[i] {
			return false
		}
	}
	return true
}
