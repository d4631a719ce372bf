package members

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2/log"

	"membership-form-backend/src/metrics"
	"membership-form-backend/src/models"
	"membership-form-backend/src/services/uploads"
)

// Attachments ไฟล์ที่แนบมากับฟอร์ม (nil = ไม่ได้แนบ)
type Attachments struct {
	CVPortfolio *uploads.File
	Image       *uploads.File
}

type Service struct {
	store   Store
	uploads *uploads.Service
	metrics *metrics.Metrics
}

func NewService(store Store, up *uploads.Service, m *metrics.Metrics) *Service {
	return &Service{store: store, uploads: up, metrics: m}
}

// Create decode ฟอร์ม -> อัปโหลดไฟล์ -> บันทึก 1 document
// การบันทึกเกิดขึ้นหลังจากทุกขั้นตอนก่อนหน้าสำเร็จเท่านั้น
func (s *Service) Create(ctx context.Context, form models.MemberForm, files Attachments) (*models.Member, error) {
	member, err := Decode(form)
	if err != nil {
		s.metrics.ObserveSubmission(metrics.OutcomeInvalid)
		return nil, err
	}

	res, err := s.uploads.UploadAll(ctx, files.CVPortfolio, files.Image)
	if err != nil {
		s.metrics.ObserveSubmission(outcomeOf(err))
		return nil, err
	}
	if res.CV != nil {
		member.CVPortfolioURL = &res.CV.URL
	}
	if res.Image != nil {
		member.ImageURL = &res.Image.URL
	}

	if err := s.store.Insert(ctx, member); err != nil {
		s.uploads.Purge(context.WithoutCancel(ctx), res.Assets()...)
		s.metrics.ObserveSubmission(metrics.OutcomeFailure)
		return nil, fmt.Errorf("store member: %w", err)
	}

	s.metrics.ObserveSubmission(metrics.OutcomeSuccess)
	return member, nil
}

// List คืนสมาชิกทั้งหมดตามลำดับของ storage (ไม่ sort)
func (s *Service) List(ctx context.Context) ([]models.Member, error) {
	members, err := s.store.FindAll(ctx)
	if err != nil {
		log.Errorf("❌ Error fetching members: %v", err)
		return nil, err
	}
	if members == nil {
		members = []models.Member{}
	}
	return members, nil
}

func outcomeOf(err error) string {
	if errors.Is(err, uploads.ErrEmptyFile) {
		return metrics.OutcomeInvalid
	}
	return metrics.OutcomeFailure
}
