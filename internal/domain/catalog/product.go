// internal/domain/catalog/product.go
package catalog

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when a product lookup matches nothing.
var ErrNotFound = errors.New("catalog: not found")

// RichTextChild is one leaf of a CMS rich-text block.
type RichTextChild struct {
	Type   string `json:"type"`
	Text   string `json:"text"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
}

// RichTextBlock is one paragraph-level node of a CMS rich-text field.
type RichTextBlock struct {
	Type     string          `json:"type"`
	Children []RichTextChild `json:"children"`
}

// RichText is a CMS rich-text field. The CMS serializes it either as a plain
// string or as an array of blocks, so unmarshalling accepts both.
type RichText struct {
	Plain  string
	Blocks []RichTextBlock
}

func (rt *RichText) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "" || trimmed == "null" {
		*rt = RichText{}
		return nil
	}
	if strings.HasPrefix(trimmed, "\"") {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*rt = RichText{Plain: s}
		return nil
	}
	var blocks []RichTextBlock
	if err := json.Unmarshal(b, &blocks); err != nil {
		return err
	}
	*rt = RichText{Blocks: blocks}
	return nil
}

func (rt RichText) MarshalJSON() ([]byte, error) {
	if rt.Blocks != nil {
		return json.Marshal(rt.Blocks)
	}
	return json.Marshal(rt.Plain)
}

// String flattens the rich text into a single plain string
// (blocks joined by newline).
func (rt RichText) String() string {
	if rt.Blocks == nil {
		return rt.Plain
	}
	lines := make([]string, 0, len(rt.Blocks))
	for _, blk := range rt.Blocks {
		var sb strings.Builder
		for _, c := range blk.Children {
			sb.WriteString(c.Text)
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// MediaFormat is one pre-rendered size of a CMS media asset.
type MediaFormat struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Media is a CMS-managed image.
type Media struct {
	ID              int                    `json:"id"`
	DocumentID      string                 `json:"documentId"`
	Name            string                 `json:"name"`
	AlternativeText string                 `json:"alternativeText,omitempty"`
	URL             string                 `json:"url"`
	Formats         map[string]MediaFormat `json:"formats,omitempty"`
}

// Category is a top-level taxonomy node.
type Category struct {
	ID            int           `json:"id"`
	DocumentID    string        `json:"documentId"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description,omitempty"`
	SubCategories []SubCategory `json:"subCategories,omitempty"`
	Brands        []Brand       `json:"brands,omitempty"`
}

// SubCategory is a second-level taxonomy node; Category is its parent.
type SubCategory struct {
	ID          int       `json:"id"`
	DocumentID  string    `json:"documentId"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Category    *Category `json:"category,omitempty"`
}

// Brand is the manufacturer taxonomy. The CMS maintains category/sub-category
// associations on the brand, but availability in the filter panel is derived
// from the live product list, not from these.
type Brand struct {
	ID            int           `json:"id"`
	DocumentID    string        `json:"documentId"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description,omitempty"`
	Categories    []Category    `json:"categories,omitempty"`
	SubCategories []SubCategory `json:"subCategories,omitempty"`
}

// EngravingOption is a paid per-product customization offered by the CMS.
type EngravingOption struct {
	ID            int      `json:"id"`
	DocumentID    string   `json:"documentId"`
	Title         string   `json:"title"`
	Description   RichText `json:"description,omitempty"`
	Price         float64  `json:"price"`
	AllowText     bool     `json:"allowText"`
	TextMaxLength int      `json:"textMaxLength"`
	AllowLogo     bool     `json:"allowLogo"`
}

// Product is the catalog entity as delivered by the CMS. Read-only for this
// service; prices are decimal major currency units.
type Product struct {
	ID             int               `json:"id"`
	DocumentID     string            `json:"documentId"`
	Name           string            `json:"name"`
	Slug           string            `json:"slug,omitempty"`
	Description    RichText          `json:"description,omitempty"`
	Price          float64           `json:"price"`
	Images         []Media           `json:"images,omitempty"`
	AgeRestricted  bool              `json:"ageRestricted,omitempty"`
	Featured       bool              `json:"featured,omitempty"`
	IsPromo        bool              `json:"isPromo,omitempty"`
	LimitedEdition bool              `json:"limitedEdition,omitempty"`
	EndOfSeries    bool              `json:"endOfSeries,omitempty"`
	Engravings     []EngravingOption `json:"engravings,omitempty"`
	Category       *Category         `json:"category,omitempty"`
	SubCategory    *SubCategory      `json:"subCategory,omitempty"`
	Brand          *Brand            `json:"brand,omitempty"`
	CreatedAt      time.Time         `json:"createdAt,omitzero"`
	UpdatedAt      time.Time         `json:"updatedAt,omitzero"`
	PublishedAt    time.Time         `json:"publishedAt,omitzero"`
}

// CategoryName returns the category display name ("" when unset).
func (p Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

// SubCategoryName returns the sub-category display name ("" when unset).
func (p Product) SubCategoryName() string {
	if p.SubCategory == nil {
		return ""
	}
	return p.SubCategory.Name
}

// BrandName returns the brand display name ("" when unset).
func (p Product) BrandName() string {
	if p.Brand == nil {
		return ""
	}
	return p.Brand.Name
}

// SearchableText joins every text facet a keyword search should see:
// name, taxonomy names and the flattened description.
func (p Product) SearchableText() string {
	return strings.Join([]string{
		p.Name,
		p.CategoryName(),
		p.SubCategoryName(),
		p.BrandName(),
		p.Description.String(),
	}, " ")
}
