package members

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"membership-form-backend/src/models"
)

// ErrInvalidForm ข้อมูลในฟอร์มไม่ถูกต้อง (ฝั่ง client)
var ErrInvalidForm = errors.New("invalid member form")

var validate = validator.New()

// Decode แปลงฟอร์มเป็น Member โดยยังไม่มีการอัปโหลดหรือบันทึกใดๆ
func Decode(form models.MemberForm) (*models.Member, error) {
	interests, err := decodeList("interests", form.Interests)
	if err != nil {
		return nil, err
	}
	languages, err := decodeList("languages", form.Languages)
	if err != nil {
		return nil, err
	}
	social, err := decodeSocialMedia(form.SocialMedia)
	if err != nil {
		return nil, err
	}

	member := &models.Member{
		FullName:                  form.FullName,
		UID:                       form.UID,
		Department:                form.Department,
		Year:                      form.Year,
		Semester:                  form.Semester,
		Email:                     form.Email,
		PhoneNumber:               form.PhoneNumber,
		TechnicalSkills:           form.TechnicalSkills,
		SoftSkills:                form.SoftSkills,
		Certifications:            form.Certifications,
		ExtracurricularActivities: form.ExtracurricularActivities,
		PreviousPositions:         form.PreviousPositions,
		Achievements:              form.Achievements,
		Interests:                 interests,
		PreferredRole:             form.PreferredRole,
		SocialMedia:               social,
		Languages:                 languages,
		SpecialSkills:             form.SpecialSkills,
		Suggestions:               form.Suggestions,
		Feedback:                  form.Feedback,
	}

	if err := validate.Struct(member); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidForm, describe(err))
	}
	return member, nil
}

// decodeList empty or absent input is an empty list, never nil.
func decodeList(field, raw string) ([]string, error) {
	out := []string{}
	if strings.TrimSpace(raw) == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("%w: %s must be a JSON array of strings: %v", ErrInvalidForm, field, err)
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

func decodeSocialMedia(raw string) (models.SocialMedia, error) {
	var social models.SocialMedia
	if strings.TrimSpace(raw) == "" {
		return social, nil
	}
	if err := json.Unmarshal([]byte(raw), &social); err != nil {
		return models.SocialMedia{}, fmt.Errorf("%w: socialMedia must be a JSON object: %v", ErrInvalidForm, err)
	}
	return social, nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}
