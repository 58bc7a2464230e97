// internal/platform/di/secret_provider_sm.go
package di

import (
	"context"
	"errors"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrSecretNotFound means the secret (or version) does not exist; callers
// fall back to their env value or disable the feature.
var ErrSecretNotFound = errors.New("di: secret not found")

// apiKeySecretProviderSM resolves API keys from Secret Manager when the env
// does not carry them (production deployments keep SendGrid and checkout
// credentials there).
type apiKeySecretProviderSM struct {
	sm        *secretmanager.Client
	projectID string
}

func (p *apiKeySecretProviderSM) Lookup(ctx context.Context, secretID string) (string, error) {
	if p == nil || p.sm == nil {
		return "", errors.New("di: secret provider not configured")
	}
	prj := strings.TrimSpace(p.projectID)
	if prj == "" {
		return "", errors.New("di: projectID is empty")
	}
	id := strings.TrimSpace(secretID)
	if id == "" {
		return "", errors.New("di: secretID is empty")
	}

	name := "projects/" + prj + "/secrets/" + id + "/versions/latest"
	resp, err := p.sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", ErrSecretNotFound
		}
		return "", errors.New("di: AccessSecretVersion failed (" + name + "): " + err.Error())
	}
	if resp == nil || resp.Payload == nil {
		return "", errors.New("di: empty secret payload (" + name + ")")
	}
	return strings.TrimSpace(string(resp.Payload.Data)), nil
}
