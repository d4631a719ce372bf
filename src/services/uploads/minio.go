package uploads

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioHost เก็บไฟล์ไว้ใน bucket ของ S3-compatible storage
type MinioHost struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func normaliseEndpoint(raw string) (endpoint string, secure bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, fmt.Errorf("empty endpoint")
	}

	// รับได้ทั้ง "minio:9000" และ "https://minio:9000"
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", false, err
		}
		if u.Host == "" {
			return "", false, fmt.Errorf("invalid endpoint")
		}
		if u.Path != "" && u.Path != "/" {
			return "", false, fmt.Errorf("endpoint must not contain a path")
		}
		return u.Host, u.Scheme == "https", nil
	}
	return raw, false, nil
}

func NewMinioHost(ctx context.Context, rawEndpoint, accessKey, secretKey, bucket, publicURL string) (*MinioHost, error) {
	endpoint, secure, err := normaliseEndpoint(rawEndpoint)
	if err != nil {
		return nil, err
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("minio bucket does not exist: %s", bucket)
	}

	if publicURL == "" {
		scheme := "http"
		if secure {
			scheme = "https"
		}
		publicURL = scheme + "://" + endpoint
	}
	return &MinioHost{client: client, bucket: bucket, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

func (h *MinioHost) Upload(ctx context.Context, folder string, kind Kind, file File) (Asset, error) {
	key := objectKey(folder, file.Name)
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := h.client.PutObject(ctx, h.bucket, key, file.Body, file.Size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"kind": string(kind)},
	})
	if err != nil {
		return Asset{}, fmt.Errorf("minio put: %w", err)
	}
	return Asset{URL: objectURL(h.publicURL, h.bucket, key), PublicID: key, Kind: kind}, nil
}

func (h *MinioHost) Delete(ctx context.Context, asset Asset) error {
	if err := h.client.RemoveObject(ctx, h.bucket, asset.PublicID, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("minio remove: %w", err)
	}
	return nil
}

// objectKey keeps only the base name of the client supplied filename.
func objectKey(folder, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" {
		name = "file"
	}
	return path.Join(folder, uuid.NewString()+"-"+name)
}

func objectURL(base, bucket, key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return base + "/" + url.PathEscape(bucket) + "/" + strings.Join(segments, "/")
}
