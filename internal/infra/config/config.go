// internal/infra/config/config.go
package config

import "os"

// Config holds the environment configuration of the storefront service.
type Config struct {
	Port string

	// Headless CMS
	CMSBaseURL  string
	CMSAPIToken string
	// MerchantID scopes product listings to this shop's merchant account.
	MerchantID string

	// Payment backend that opens hosted checkout sessions.
	CheckoutBaseURL string

	// Engraving logo storage
	GCSBucket string
	GCPCreds  string

	// GCP project used for Secret Manager lookups.
	GCPProjectID string

	// Contact form mail
	SendGridAPIKey   string
	ContactFromEmail string
	ContactToEmail   string
	ShopName         string

	// Frontend origin allowed by CORS.
	AllowedOrigin string

	// Directory the per-session cart blobs live in.
	CartDataDir string
}

// Load reads the environment and returns the Config. Values missing here may
// still be resolved later through Secret Manager (see the DI container).
func Load() *Config {
	return &Config{
		Port: getenvDefault("PORT", "8080"),

		CMSBaseURL:  getenvDefault("CMS_BASE_URL", "http://localhost:1337"),
		CMSAPIToken: os.Getenv("CMS_API_TOKEN"),
		MerchantID:  os.Getenv("MERCHANT_ID"),

		CheckoutBaseURL: os.Getenv("CHECKOUT_BASE_URL"),

		GCSBucket:    os.Getenv("GCS_BUCKET"),
		GCPCreds:     os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		GCPProjectID: os.Getenv("GCP_PROJECT_ID"),

		SendGridAPIKey:   os.Getenv("SENDGRID_API_KEY"),
		ContactFromEmail: os.Getenv("CONTACT_FROM_EMAIL"),
		ContactToEmail:   os.Getenv("CONTACT_TO_EMAIL"),
		ShopName:         getenvDefault("SHOP_NAME", "Coutellerie"),

		AllowedOrigin: getenvDefault("ALLOWED_ORIGIN", "http://localhost:3000"),

		CartDataDir: getenvDefault("CART_DATA_DIR", "data/carts"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
