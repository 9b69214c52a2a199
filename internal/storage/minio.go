package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"

	"github.com/fleetdesk/FleetDesk/internal/config"
)

// ImageStore keeps driver photos in a MinIO bucket.
type ImageStore struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

// NewImageStore connects to MinIO and makes sure the bucket exists.
func NewImageStore(cfg *config.Config, log *logrus.Logger) (*ImageStore, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		log.WithError(err).Warn("failed to check bucket existence")
	} else if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			log.WithError(err).Warn("failed to create bucket")
		} else {
			log.WithField("bucket", cfg.MinioBucket).Info("created bucket")
		}
	}

	return &ImageStore{
		client:   client,
		bucket:   cfg.MinioBucket,
		endpoint: cfg.MinioEndpoint,
		useSSL:   cfg.MinioUseSSL,
	}, nil
}

// Put uploads an image and returns its public URL. Object names are prefixed
// with a UUID so repeated uploads of the same filename never collide.
func (s *ImageStore) Put(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error) {
	objectName := fmt.Sprintf("%s_%s", uuid.NewString(), filename)
	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, objectName), nil
}

// Remove deletes the object behind a URL previously returned by Put. A URL
// from another store (or garbage) is ignored.
func (s *ImageStore) Remove(ctx context.Context, url string) error {
	prefix := fmt.Sprintf("//%s/%s/", s.endpoint, s.bucket)
	idx := strings.Index(url, prefix)
	if idx < 0 {
		return nil
	}
	objectName := url[idx+len(prefix):]
	return s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
}
