// Package storage wraps the MinIO client for PDF object storage.
//
// Uploaded PDFs are stored under a per-user prefix and served to readers
// through presigned GET URLs, so the API never streams file bytes itself.
package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// PresignTTL is how long a generated view URL stays valid.
const PresignTTL = time.Hour

// ObjectStore stores and serves book PDFs.
type ObjectStore struct {
	client *minio.Client
	bucket string
}

// New connects to MinIO and ensures the bucket exists.
func New(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool) (*ObjectStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %q: %w", bucket, err)
		}
		log.Printf("📦 Created storage bucket %q", bucket)
	}

	return &ObjectStore{client: client, bucket: bucket}, nil
}

// Put uploads an object and returns its storage key unchanged.
func (s *ObjectStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %q: %w", key, err)
	}
	return nil
}

// PresignGet returns a time-limited URL for reading an object.
func (s *ObjectStore) PresignGet(ctx context.Context, key string) (string, time.Time, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, PresignTTL, url.Values{})
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to presign %q: %w", key, err)
	}
	return u.String(), time.Now().Add(PresignTTL), nil
}

// Delete removes an object. Missing objects are not an error.
func (s *ObjectStore) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// PublicURL builds the direct object URL, used as a fallback when
// presigning fails on buckets with a public read policy.
func (s *ObjectStore) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), s.bucket, key)
}
