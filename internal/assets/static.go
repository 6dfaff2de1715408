package assets

import "context"

// StaticStore only builds URLs under a fixed base; nothing is ever stored, so deletes are no-ops.
type StaticStore struct {
	baseURL string
}

func NewStaticStore(baseURL string) *StaticStore {
	return &StaticStore{baseURL: baseURL}
}

func (s *StaticStore) PublicURL(path string) string {
	return joinURL(s.baseURL, path)
}

func (s *StaticStore) DeleteProjectAssets(ctx context.Context, userID, projectID int64) error {
	return nil
}
