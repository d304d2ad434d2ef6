package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MediaStorage stores listing media in a MinIO (S3-compatible) bucket and
// hands back public URLs.
type MediaStorage struct {
	client *minio.Client
	bucket string
}

func NewMediaStorage(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MediaStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for endpoint %s: %w", endpoint, err)
	}

	err = client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{})
	if err != nil {
		exists, errBucketExists := client.BucketExists(context.Background(), bucket)
		if errBucketExists != nil || !exists {
			return nil, fmt.Errorf("failed to make/verify bucket %s: (make: %v / exists_check: %v)", bucket, err, errBucketExists)
		}
	}
	log.Printf("Media storage ready, bucket %s at %s", bucket, endpoint)

	return &MediaStorage{client: client, bucket: bucket}, nil
}

// Upload stores the file under a fresh uuid key, keeping the original
// extension, and returns the object's public URL.
func (s *MediaStorage) Upload(ctx context.Context, originalFileName string, data []byte) (string, error) {
	ext := filepath.Ext(originalFileName)
	objectKey := fmt.Sprintf("media/%s%s", uuid.New().String(), ext)
	contentType := http.DetectContentType(data)

	_, err := s.client.PutObject(ctx, s.bucket, objectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", objectKey, s.bucket, err)
	}

	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucket, objectKey), nil
}
