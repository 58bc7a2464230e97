// internal/adapters/out/gcs/logo_repository_gcs.go
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// MaxLogoBytes caps uploaded engraving logos at 5 MiB.
const MaxLogoBytes = 5 << 20

// LogoRepositoryGCS stores customer-supplied engraving logos in GCS.
//
// Layout (single bucket):
// - bucket: <shop>-engravings
// - objectPath: engravings/{yyyy}/{MM}/{uuid}<ext>
//
// Public access:
//   - The bucket carries IAM "allUsers: Storage Object Viewer" (uniform
//     access), so uploaded objects are publicly readable without per-object
//     ACL changes and PublicURL works directly.
type LogoRepositoryGCS struct {
	Client *storage.Client
	Bucket string
	// Optional: if empty, uses https://storage.googleapis.com
	PublicBaseURL string

	now func() time.Time
}

func NewLogoRepositoryGCS(client *storage.Client, bucket string) *LogoRepositoryGCS {
	return &LogoRepositoryGCS{
		Client:        client,
		Bucket:        strings.TrimSpace(bucket),
		PublicBaseURL: "https://storage.googleapis.com",
		now:           time.Now,
	}
}

var allowedLogoTypes = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/svg+xml": ".svg",
	"image/webp":    ".webp",
}

// UploadLogo streams one logo into the bucket and returns its public URL.
// The object name is minted here; the original filename only survives as
// metadata.
func (r *LogoRepositoryGCS) UploadLogo(ctx context.Context, filename, contentType string, src io.Reader) (string, error) {
	if r == nil || r.Client == nil {
		return "", errors.New("logo_repository_gcs: storage client is nil")
	}
	bucket := strings.TrimSpace(r.Bucket)
	if bucket == "" {
		return "", errors.New("logo_repository_gcs: bucket is empty")
	}

	ct := strings.TrimSpace(strings.ToLower(contentType))
	ext, ok := allowedLogoTypes[ct]
	if !ok {
		return "", fmt.Errorf("logo_repository_gcs: unsupported content type %q", contentType)
	}

	ts := r.now().UTC()
	objectPath := fmt.Sprintf("engravings/%04d/%02d/%s%s",
		ts.Year(), ts.Month(), uuid.NewString(), ext)

	w := r.Client.Bucket(bucket).Object(objectPath).NewWriter(ctx)
	w.ContentType = ct
	w.ChunkSize = 0
	w.Metadata = map[string]string{
		"uploadedAt":   ts.Format(time.RFC3339),
		"originalName": path.Base(strings.TrimSpace(filename)),
	}

	if _, err := io.Copy(w, io.LimitReader(src, MaxLogoBytes)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("logo_repository_gcs: write: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("logo_repository_gcs: close: %w", err)
	}

	return r.publicURL(bucket, objectPath), nil
}

// Delete removes a previously uploaded logo; absent objects are fine.
func (r *LogoRepositoryGCS) Delete(ctx context.Context, objectPath string) error {
	if r == nil || r.Client == nil {
		return errors.New("logo_repository_gcs: storage client is nil")
	}
	obj := strings.TrimSpace(objectPath)
	if obj == "" {
		return nil
	}
	if err := r.Client.Bucket(r.Bucket).Object(obj).Delete(ctx); err != nil && err != storage.ErrObjectNotExist {
		return err
	}
	return nil
}

// publicURL builds the public URL for an object. Works while the bucket is
// publicly readable via uniform IAM access.
func (r *LogoRepositoryGCS) publicURL(bucket, objectPath string) string {
	base := strings.TrimSpace(r.PublicBaseURL)
	if base == "" {
		base = "https://storage.googleapis.com"
	}
	// Encode path but keep "/" separators.
	parts := strings.Split(objectPath, "/")
	for i := range parts {
		parts[i] = url.PathEscape(parts[i])
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(base, "/"), bucket, strings.Join(parts, "/"))
}
