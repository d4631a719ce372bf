package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/sync/errgroup"

	"membership-form-backend/src/metrics"
)

// Kind บอกประเภทไฟล์ที่ส่งไปยัง media host
type Kind string

const (
	KindRaw   Kind = "raw"
	KindImage Kind = "image"
)

var ErrEmptyFile = errors.New("uploaded file is empty")

// File ไฟล์ที่แนบมากับฟอร์ม
type File struct {
	Name        string
	Size        int64
	ContentType string
	Body        io.Reader
}

// Asset ไฟล์ที่อัปโหลดสำเร็จแล้ว
type Asset struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Kind     Kind   `json:"kind"`
}

// MediaHost external service that stores files and returns a durable URL.
type MediaHost interface {
	Upload(ctx context.Context, folder string, kind Kind, file File) (Asset, error)
	Delete(ctx context.Context, asset Asset) error
}

// Purger takes care of assets that were uploaded for a request that failed.
type Purger interface {
	Purge(ctx context.Context, assets ...Asset)
}

// Result URLs ของไฟล์ที่อัปโหลด (nil ถ้าไม่ได้แนบมา)
type Result struct {
	CV    *Asset
	Image *Asset
}

// Assets returns the uploaded assets in CV, image order.
func (r Result) Assets() []Asset {
	var out []Asset
	if r.CV != nil {
		out = append(out, *r.CV)
	}
	if r.Image != nil {
		out = append(out, *r.Image)
	}
	return out
}

type Service struct {
	host        MediaHost
	purger      Purger
	cvFolder    string
	imageFolder string
	metrics     *metrics.Metrics
}

func NewService(host MediaHost, purger Purger, cvFolder, imageFolder string, m *metrics.Metrics) *Service {
	return &Service{
		host:        host,
		purger:      purger,
		cvFolder:    cvFolder,
		imageFolder: imageFolder,
		metrics:     m,
	}
}

// UploadAll ส่ง CV และรูปภาพไปยัง media host พร้อมกัน แล้วรอจนครบทั้งคู่
// ถ้าอันใดอันหนึ่งล้มเหลว อันที่สำเร็จแล้วจะถูกส่งให้ purger ลบทิ้ง
func (s *Service) UploadAll(ctx context.Context, cv, image *File) (Result, error) {
	var res Result
	g, gctx := errgroup.WithContext(ctx)

	if cv != nil {
		g.Go(func() error {
			asset, err := s.upload(gctx, s.cvFolder, KindRaw, *cv)
			if err != nil {
				return fmt.Errorf("upload cvPortfolio: %w", err)
			}
			res.CV = &asset
			return nil
		})
	}
	if image != nil {
		g.Go(func() error {
			asset, err := s.upload(gctx, s.imageFolder, KindImage, *image)
			if err != nil {
				return fmt.Errorf("upload image: %w", err)
			}
			res.Image = &asset
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if done := res.Assets(); len(done) > 0 {
			s.Purge(context.WithoutCancel(ctx), done...)
		}
		return Result{}, err
	}
	return res, nil
}

// Purge hands assets of a failed request to the configured purger.
func (s *Service) Purge(ctx context.Context, assets ...Asset) {
	if len(assets) == 0 {
		return
	}
	if s.purger == nil {
		for _, a := range assets {
			log.Warnf("⚠️ orphaned %s asset left on media host: %s", a.Kind, a.URL)
		}
		return
	}
	s.purger.Purge(ctx, assets...)
}

func (s *Service) upload(ctx context.Context, folder string, kind Kind, file File) (Asset, error) {
	if file.Size == 0 {
		s.metrics.ObserveUpload(string(kind), metrics.OutcomeRejected)
		return Asset{}, ErrEmptyFile
	}
	asset, err := s.host.Upload(ctx, folder, kind, file)
	if err != nil {
		s.metrics.ObserveUpload(string(kind), metrics.OutcomeFailure)
		return Asset{}, err
	}
	s.metrics.ObserveUpload(string(kind), metrics.OutcomeSuccess)
	log.Infof("📤 uploaded %s %q to %s", kind, file.Name, asset.URL)
	return asset, nil
}

// OpenFormFile เปิดไฟล์จาก multipart header; ผู้เรียกต้อง Close เมื่อใช้เสร็จ
func OpenFormFile(fh *multipart.FileHeader) (*File, io.Closer, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	return &File{
		Name:        fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
		Body:        src,
	}, src, nil
}
