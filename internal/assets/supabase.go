package assets

import (
	"context"
	"fmt"
	"strings"

	storage "github.com/supabase-community/storage-go"
	"github.com/supabase-community/supabase-go"
)

// bucketClient lists and removes object paths inside one bucket.
type bucketClient interface {
	List(bucket, prefix string) ([]string, error)
	Remove(bucket string, paths []string) error
}

// storageGoClient adapts the storage-go client to bucketClient.
type storageGoClient struct {
	client *storage.Client
}

func (c storageGoClient) List(bucket, prefix string) ([]string, error) {
	files, err := c.client.ListFiles(bucket, prefix, storage.FileSearchOptions{
		Limit: 1000,
	})
	if err != nil {
		return nil, err
	}
	names := make([]string, len(files))
	for i, file := range files {
		names[i] = file.Name
	}
	return names, nil
}

func (c storageGoClient) Remove(bucket string, paths []string) error {
	_, err := c.client.RemoveFile(bucket, paths)
	return err
}

type SupabaseStore struct {
	client  bucketClient
	bucket  string
	baseURL string
}

func NewSupabaseStore(supabaseURL, serviceRoleKey, bucket string) (*SupabaseStore, error) {
	baseURL := strings.TrimRight(supabaseURL, "/")
	client, err := supabase.NewClient(baseURL, serviceRoleKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}
	return newSupabaseStore(storageGoClient{client: client.Storage}, bucket, baseURL), nil
}

func newSupabaseStore(client bucketClient, bucket, baseURL string) *SupabaseStore {
	return &SupabaseStore{client: client, bucket: bucket, baseURL: baseURL}
}

func (s *SupabaseStore) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, strings.TrimLeft(path, "/"))
}

func (s *SupabaseStore) DeleteProjectAssets(ctx context.Context, userID, projectID int64) error {
	prefix := ProjectPrefix(userID, projectID)

	names, err := s.client.List(s.bucket, prefix)
	if err != nil {
		return fmt.Errorf("failed to list files: %w", err)
	}
	if len(names) == 0 {
		return nil
	}

	filePaths := make([]string, len(names))
	for i, name := range names {
		filePaths[i] = prefix + name
	}
	if err := s.client.Remove(s.bucket, filePaths); err != nil {
		return fmt.Errorf("failed to delete files: %w", err)
	}
	return nil
}
