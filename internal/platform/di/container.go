// internal/platform/di/container.go
package di

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	httpin "coutellerie/internal/adapters/in/http"
	"coutellerie/internal/adapters/out/gcs"
	httpout "coutellerie/internal/adapters/out/http"
	"coutellerie/internal/adapters/out/localstore"
	"coutellerie/internal/adapters/out/mail"
	catalogquery "coutellerie/internal/application/query/catalog"
	"coutellerie/internal/application/usecase"
	"coutellerie/internal/infra/config"
)

// Container wires every adapter and usecase of the storefront and owns the
// clients that need closing.
type Container struct {
	cfg *config.Config

	storageClient *storage.Client
	smClient      *secretmanager.Client

	handler http.Handler
}

// NewContainer builds the full dependency graph. Optional pieces (logo
// upload, contact mail, checkout) degrade to unmounted routes when their
// configuration is missing; the cart and catalog are mandatory.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, errors.New("di: config is nil")
	}
	c := &Container{cfg: cfg}

	var clientOpts []option.ClientOption
	if cfg.GCPCreds != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(cfg.GCPCreds))
	}

	// Secret Manager (optional; only needed when env lacks API keys)
	if cfg.GCPProjectID != "" {
		sm, err := secretmanager.NewClient(ctx, clientOpts...)
		if err != nil {
			log.Printf("[di] WARN: secretmanager init failed: %v (env-only config)", err)
		} else {
			c.smClient = sm
		}
	}

	// Cart store (mandatory)
	cartStore, err := localstore.NewCartStore(cfg.CartDataDir)
	if err != nil {
		return nil, fmt.Errorf("di: cart store: %w", err)
	}
	cartUC := usecase.NewCartUsecase(cartStore)

	// CMS (mandatory)
	cms := httpout.NewCMSClient(cfg.CMSBaseURL, cfg.CMSAPIToken, cfg.MerchantID)

	deps := httpin.RouterDeps{
		CartUC:        cartUC,
		ProductSource: cms,
		ContentSource: cms,
		CatalogQuery:  catalogquery.NewCatalogQuery(),
		AllowedOrigin: cfg.AllowedOrigin,
	}

	// Checkout (optional)
	if base := c.resolve(ctx, cfg.CheckoutBaseURL, "checkout-base-url"); base != "" {
		creator := httpout.NewCheckoutSessionClient(base)
		deps.CheckoutUC = usecase.NewCheckoutUsecase(cartUC, creator)
	} else {
		log.Printf("[di] checkout disabled (CHECKOUT_BASE_URL not set)")
	}

	// Engraving logo upload (optional)
	if cfg.GCSBucket != "" {
		sc, err := storage.NewClient(ctx, clientOpts...)
		if err != nil {
			log.Printf("[di] WARN: storage init failed: %v (logo upload disabled)", err)
		} else {
			c.storageClient = sc
			deps.LogoUploader = gcs.NewLogoRepositoryGCS(sc, cfg.GCSBucket)
		}
	} else {
		log.Printf("[di] logo upload disabled (GCS_BUCKET not set)")
	}

	// Contact mail (optional)
	apiKey := c.resolve(ctx, cfg.SendGridAPIKey, "sendgrid-api-key")
	if apiKey != "" && cfg.ContactFromEmail != "" && cfg.ContactToEmail != "" {
		client := mail.NewSendGridClient(apiKey, cfg.ShopName)
		mailer := mail.NewContactMailer(client, cfg.ContactFromEmail, cfg.ContactToEmail)
		deps.ContactUC = usecase.NewContactUsecase(mailer)
	} else {
		log.Printf("[di] contact mail disabled (sendgrid key or addresses not set)")
	}

	c.handler = httpin.NewRouter(deps)
	return c, nil
}

// resolve returns the env value when set, else tries Secret Manager under
// secretID. Misses are not fatal; the caller decides what an empty value
// means.
func (c *Container) resolve(ctx context.Context, envValue, secretID string) string {
	if envValue != "" {
		return envValue
	}
	if c.smClient == nil {
		return ""
	}
	p := &apiKeySecretProviderSM{sm: c.smClient, projectID: c.cfg.GCPProjectID}
	v, err := p.Lookup(ctx, secretID)
	if err != nil {
		if !errors.Is(err, ErrSecretNotFound) {
			log.Printf("[di] WARN: secret %q lookup failed: %v", secretID, err)
		}
		return ""
	}
	log.Printf("[di] secret %q resolved from Secret Manager", secretID)
	return v
}

// Handler returns the fully wired HTTP handler.
func (c *Container) Handler() http.Handler {
	return c.handler
}

// Close releases the GCP clients.
func (c *Container) Close() error {
	var first error
	if c.storageClient != nil {
		if err := c.storageClient.Close(); err != nil && first == nil {
			first = err
		}
		c.storageClient = nil
	}
	if c.smClient != nil {
		if err := c.smClient.Close(); err != nil && first == nil {
			first = err
		}
		c.smClient = nil
	}
	return first
}
