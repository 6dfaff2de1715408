// Package assets resolves public URLs for generated media and removes a project's stored files.
package assets

import (
	"context"
	"fmt"
	"strings"

	"realartist-backend/internal/config"
)

// Store is the object storage seen by handlers and the generation simulator.
type Store interface {
	// PublicURL returns the public address of an object path such as "voices/voice_1.wav".
	PublicURL(path string) string
	// DeleteProjectAssets removes every object under the project's prefix.
	DeleteProjectAssets(ctx context.Context, userID, projectID int64) error
}

// ProjectPrefix is the storage prefix holding one project's files.
func ProjectPrefix(userID, projectID int64) string {
	return fmt.Sprintf("users/%d/projects/%d/", userID, projectID)
}

// New selects the store named by cfg.AssetBackend.
func New(cfg *config.Config) (Store, error) {
	switch cfg.AssetBackend {
	case config.AssetBackendSupabase:
		return NewSupabaseStore(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseStorageBucket)
	case config.AssetBackendS3:
		return NewS3Store(cfg.S3)
	case config.AssetBackendStatic, "":
		return NewStaticStore(cfg.AssetPublicBaseURL), nil
	default:
		return nil, fmt.Errorf("unknown asset backend %q", cfg.AssetBackend)
	}
}

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
