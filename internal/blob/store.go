// Package blob wraps the object store that holds uploaded media. Every
// object is owned by exactly one entity; replacing a reference stores the
// new object before the old one is removed.
package blob

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store is a content-addressed media store backed by a MinIO/S3 bucket.
type Store struct {
	client   *minio.Client
	bucket   string
	endpoint string
	secure   bool
}

type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

func New(ctx context.Context, opts Options) (*Store, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create object store client: %w", err)
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return &Store{
		client:   client,
		bucket:   opts.Bucket,
		endpoint: opts.Endpoint,
		secure:   opts.UseSSL,
	}, nil
}

// Put streams an object into the bucket and returns its public URL.
// The key should be unique per entity, e.g. "avatars/<userID>.png".
func (s *Store) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return s.ObjectURL(key), nil
}

// Remove deletes an object by its key or public URL. Removing a missing
// object is not an error.
func (s *Store) Remove(ctx context.Context, keyOrURL string) error {
	key := s.KeyFromURL(keyOrURL)
	if key == "" {
		return nil
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %s: %w", key, err)
	}
	return nil
}

// ObjectURL builds the public URL for a stored object.
func (s *Store) ObjectURL(key string) string {
	scheme := "http"
	if s.secure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, key)
}

// KeyFromURL extracts the object key from a URL previously produced by
// ObjectURL. A bare key passes through unchanged.
func (s *Store) KeyFromURL(keyOrURL string) string {
	if !strings.Contains(keyOrURL, "://") {
		return keyOrURL
	}
	u, err := url.Parse(keyOrURL)
	if err != nil {
		return ""
	}
	p := strings.TrimPrefix(u.Path, "/")
	p = strings.TrimPrefix(p, s.bucket+"/")
	return p
}

// ExtensionFor maps an uploaded content type to the stored file suffix.
func ExtensionFor(contentType string) (string, error) {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/webp":
		return ".webp", nil
	case "video/mp4":
		return ".mp4", nil
	case "video/webm":
		return ".webm", nil
	default:
		return "", fmt.Errorf("unsupported media type: %s", contentType)
	}
}

// Key builds a namespaced object key, e.g. Key("avatars", id, ".png").
func Key(prefix, id, ext string) string {
	return path.Join(prefix, id) + ext
}
