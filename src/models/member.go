package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member ข้อมูลใบสมัครสมาชิก 1 รายการ (immutable หลังบันทึก)
type Member struct {
	ID                        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName                  *string            `bson:"fullName,omitempty" json:"fullName,omitempty" validate:"omitempty,max=200"`
	UID                       *string            `bson:"UID,omitempty" json:"UID,omitempty" validate:"omitempty,max=100"`
	Department                *string            `bson:"department,omitempty" json:"department,omitempty" validate:"omitempty,max=200"`
	Year                      *string            `bson:"year,omitempty" json:"year,omitempty" validate:"omitempty,max=50"`
	Semester                  *string            `bson:"semester,omitempty" json:"semester,omitempty" validate:"omitempty,max=50"`
	Email                     *string            `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,max=320"`
	PhoneNumber               *string            `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty" validate:"omitempty,max=50"`
	TechnicalSkills           *string            `bson:"technicalSkills,omitempty" json:"technicalSkills,omitempty" validate:"omitempty,max=5000"`
	SoftSkills                *string            `bson:"softSkills,omitempty" json:"softSkills,omitempty" validate:"omitempty,max=5000"`
	Certifications            *string            `bson:"certifications,omitempty" json:"certifications,omitempty" validate:"omitempty,max=5000"`
	ExtracurricularActivities *string            `bson:"extracurricularActivities,omitempty" json:"extracurricularActivities,omitempty" validate:"omitempty,max=5000"`
	PreviousPositions         *string            `bson:"previousPositions,omitempty" json:"previousPositions,omitempty" validate:"omitempty,max=5000"`
	Achievements              *string            `bson:"achievements,omitempty" json:"achievements,omitempty" validate:"omitempty,max=5000"`
	Interests                 []string           `bson:"interests" json:"interests" validate:"max=50,dive,max=200"`
	PreferredRole             *string            `bson:"preferredRole,omitempty" json:"preferredRole,omitempty" validate:"omitempty,max=200"`
	SocialMedia               SocialMedia        `bson:"socialMedia" json:"socialMedia"`
	Languages                 []string           `bson:"languages" json:"languages" validate:"max=50,dive,max=200"`
	SpecialSkills             *string            `bson:"specialSkills,omitempty" json:"specialSkills,omitempty" validate:"omitempty,max=5000"`
	Suggestions               *string            `bson:"suggestions,omitempty" json:"suggestions,omitempty" validate:"omitempty,max=5000"`
	Feedback                  *string            `bson:"feedback,omitempty" json:"feedback,omitempty" validate:"omitempty,max=5000"`
	CVPortfolioURL            *string            `bson:"cvPortfolioUrl,omitempty" json:"cvPortfolioUrl"`
	ImageURL                  *string            `bson:"imageUrl,omitempty" json:"imageUrl"`
	CreatedAt                 time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}

type SocialMedia struct {
	LinkedIn *string `bson:"linkedIn,omitempty" json:"linkedIn,omitempty" validate:"omitempty,max=500"`
	GitHub   *string `bson:"github,omitempty" json:"github,omitempty" validate:"omitempty,max=500"`
}

// MemberForm ค่าที่ส่งมาจากฟอร์ม ทุกช่องเป็นข้อความ
// interests, languages และ socialMedia เป็น JSON ที่ serialize มาแล้ว
type MemberForm struct {
	FullName                  *string `form:"fullName" json:"fullName"`
	UID                       *string `form:"UID" json:"UID"`
	Department                *string `form:"department" json:"department"`
	Year                      *string `form:"year" json:"year"`
	Semester                  *string `form:"semester" json:"semester"`
	Email                     *string `form:"email" json:"email"`
	PhoneNumber               *string `form:"phoneNumber" json:"phoneNumber"`
	TechnicalSkills           *string `form:"technicalSkills" json:"technicalSkills"`
	SoftSkills                *string `form:"softSkills" json:"softSkills"`
	Certifications            *string `form:"certifications" json:"certifications"`
	ExtracurricularActivities *string `form:"extracurricularActivities" json:"extracurricularActivities"`
	PreviousPositions         *string `form:"previousPositions" json:"previousPositions"`
	Achievements              *string `form:"achievements" json:"achievements"`
	Interests                 string  `form:"interests" json:"interests"`
	PreferredRole             *string `form:"preferredRole" json:"preferredRole"`
	SocialMedia               string  `form:"socialMedia" json:"socialMedia"`
	Languages                 string  `form:"languages" json:"languages"`
	SpecialSkills             *string `form:"specialSkills" json:"specialSkills"`
	Suggestions               *string `form:"suggestions" json:"suggestions"`
	Feedback                  *string `form:"feedback" json:"feedback"`
}

// SubmissionResponse ผลลัพธ์ของ POST /api/members
type SubmissionResponse struct {
	Message string  `json:"message"`
	Data    *Member `json:"data"`
}
