package uploads

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/config"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// CloudinaryHost อัปโหลดไฟล์ไปที่ Cloudinary
type CloudinaryHost struct {
	cld *cloudinary.Cloudinary
}

// CloudinaryOption tweaks the Cloudinary configuration before the client is built.
type CloudinaryOption func(*config.Configuration)

// WithUploadPrefix points the client at another API host (used by tests).
func WithUploadPrefix(prefix string) CloudinaryOption {
	return func(c *config.Configuration) {
		c.API.UploadPrefix = prefix
	}
}

func NewCloudinaryHost(cloudName, apiKey, apiSecret string, opts ...CloudinaryOption) (*CloudinaryHost, error) {
	cfg, err := config.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config: %w", err)
	}
	for _, opt := range opts {
		opt(cfg)
	}

	cld, err := cloudinary.NewFromConfiguration(*cfg)
	if err != nil {
		return nil, fmt.Errorf("cloudinary client: %w", err)
	}
	return &CloudinaryHost{cld: cld}, nil
}

func (h *CloudinaryHost) Upload(ctx context.Context, folder string, kind Kind, file File) (Asset, error) {
	params := uploader.UploadParams{
		PublicID:     publicID(kind, file.Name),
		Folder:       folder,
		ResourceType: string(kind),
	}

	resp, err := h.cld.Upload.Upload(ctx, file.Body, params)
	if err != nil {
		return Asset{}, fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.Error.Message != "" {
		return Asset{}, fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}
	if resp.SecureURL == "" {
		return Asset{}, errors.New("cloudinary upload: empty secure_url")
	}

	// Cloudinary ตัดสินประเภทเองจาก endpoint auto ต้องลบด้วยประเภทที่มันเก็บจริง
	stored := kind
	if resp.ResourceType != "" {
		stored = Kind(resp.ResourceType)
	}
	if stored != kind {
		log.Warnf("⚠️ cloudinary stored %q as %s, requested %s", file.Name, stored, kind)
	}

	return Asset{URL: resp.SecureURL, PublicID: resp.PublicID, Kind: stored}, nil
}

func (h *CloudinaryHost) Delete(ctx context.Context, asset Asset) error {
	resp, err := h.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     asset.PublicID,
		ResourceType: string(asset.Kind),
	})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	if resp.Error.Message != "" {
		return fmt.Errorf("cloudinary destroy: %s", resp.Error.Message)
	}
	return nil
}

// publicID returns a fresh asset name. Raw assets keep their extension
// because Cloudinary serves raw files by public id only.
func publicID(kind Kind, filename string) string {
	id := uuid.NewString()
	if kind != KindRaw {
		return id
	}
	if ext := strings.ToLower(path.Ext(filename)); ext != "" {
		return id + ext
	}
	return id
}
