// internal/domain/content/content.go
package content

import (
	"errors"
	"time"

	catalogdom "coutellerie/internal/domain/catalog"
)

// ErrNotFound is returned when a content lookup matches nothing.
var ErrNotFound = errors.New("content: not found")

// News is a CMS news article shown on the storefront.
type News struct {
	ID          int                 `json:"id"`
	DocumentID  string              `json:"documentId"`
	Title       string              `json:"title"`
	Slug        string              `json:"slug"`
	Excerpt     string              `json:"excerpt,omitempty"`
	Content     catalogdom.RichText `json:"content,omitempty"`
	Image       *catalogdom.Media   `json:"image,omitempty"`
	StartDate   time.Time           `json:"startDate,omitzero"`
	EndDate     time.Time           `json:"endDate,omitzero"`
	PublishedAt time.Time           `json:"publishedAt,omitzero"`
}

// LegalPage is a CMS legal/informational page (CGV, mentions légales, ...).
type LegalPage struct {
	ID             int                 `json:"id"`
	DocumentID     string              `json:"documentId"`
	Title          string              `json:"title"`
	Slug           string              `json:"slug"`
	SEOTitle       string              `json:"seoTitle,omitempty"`
	SEODescription string              `json:"seoDescription,omitempty"`
	SEOKeywords    string              `json:"seoKeywords,omitempty"`
	Content        catalogdom.RichText `json:"content,omitempty"`
	Order          int                 `json:"order"`
}

// Homepage is the CMS-driven homepage copy.
type Homepage struct {
	ID                   int                  `json:"id"`
	DocumentID           string               `json:"documentId"`
	HeroTitle            string               `json:"heroTitle"`
	HeroSubtitle         string               `json:"heroSubtitle,omitempty"`
	HeroButtonText       string               `json:"heroButtonText,omitempty"`
	WelcomeTitle         string               `json:"welcomeTitle,omitempty"`
	WelcomeText          catalogdom.RichText  `json:"welcomeText,omitempty"`
	FeaturedSectionTitle string               `json:"featuredSectionTitle,omitempty"`
	FeaturedProducts     []catalogdom.Product `json:"featuredProducts,omitempty"`
	NewsSectionTitle     string               `json:"newsSectionTitle,omitempty"`
	SEOTitle             string               `json:"seoTitle,omitempty"`
	SEODescription       string               `json:"seoDescription,omitempty"`
	SEOKeywords          string               `json:"seoKeywords,omitempty"`
}

// SocialLinks groups the optional social profiles of the shop.
type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

// Settings is the CMS-driven site configuration (name, contacts, keys).
type Settings struct {
	ID                int               `json:"id"`
	DocumentID        string            `json:"documentId"`
	SiteName          string            `json:"siteName"`
	SiteEmail         string            `json:"siteEmail,omitempty"`
	ContactPhone      string            `json:"contactPhone,omitempty"`
	Address           string            `json:"address,omitempty"`
	Logo              *catalogdom.Media `json:"logo,omitempty"`
	Favicon           *catalogdom.Media `json:"favicon,omitempty"`
	StripePublicKey   string            `json:"stripePublicKey,omitempty"`
	SocialLinks       *SocialLinks      `json:"socialLinks,omitempty"`
	GoogleAnalyticsID string            `json:"googleAnalyticsId,omitempty"`
}
