package assets

import "realartist-backend/internal/config"

type BucketClient = bucketClient
type ObjectAPI = objectAPI

func NewSupabaseStoreWithClient(client BucketClient, bucket, baseURL string) *SupabaseStore {
	return newSupabaseStore(client, bucket, baseURL)
}

func NewS3StoreWithClient(cfg config.S3Config, client ObjectAPI) *S3Store {
	return newS3Store(cfg, client)
}
