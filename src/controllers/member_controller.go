package controllers

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"membership-form-backend/src/models"
	"membership-form-backend/src/services/members"
	"membership-form-backend/src/services/uploads"
	"membership-form-backend/src/utils"
)

const (
	fieldCVPortfolio = "cvPortfolio"
	fieldImage       = "image"
)

type MemberController struct {
	svc *members.Service
}

func NewMemberController(svc *members.Service) *MemberController {
	return &MemberController{svc: svc}
}

// CreateMember godoc
// @Summary      Submit a membership form
// @Description  Stores one member record. interests and languages are JSON arrays of strings, socialMedia is a JSON object {linkedIn, github}.
// @Tags         members
// @Accept       multipart/form-data
// @Produce      json
// @Param        fullName     formData  string  false  "Full name"
// @Param        UID          formData  string  false  "University ID"
// @Param        interests    formData  string  false  "JSON array of strings"
// @Param        languages    formData  string  false  "JSON array of strings"
// @Param        socialMedia  formData  string  false  "JSON object"
// @Param        cvPortfolio  formData  file    false  "CV / portfolio document"
// @Param        image        formData  file    false  "Profile image"
// @Success      200  {object}  models.SubmissionResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/members [post]
func (mc *MemberController) CreateMember(c *fiber.Ctx) error {
	var form models.MemberForm
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&form); err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form data: "+err.Error())
		}
	}

	cv, closeCV, err := attachment(c, fieldCVPortfolio)
	if err != nil {
		log.Errorf("❌ Error reading %s: %v", fieldCVPortfolio, err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error saving member data")
	}
	defer closeCV()

	image, closeImage, err := attachment(c, fieldImage)
	if err != nil {
		log.Errorf("❌ Error reading %s: %v", fieldImage, err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error saving member data")
	}
	defer closeImage()

	member, err := mc.svc.Create(c.UserContext(), form, members.Attachments{CVPortfolio: cv, Image: image})
	if err != nil {
		if errors.Is(err, members.ErrInvalidForm) || errors.Is(err, uploads.ErrEmptyFile) {
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		log.Errorf("❌ Error saving member data: %v", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error saving member data")
	}

	return c.Status(fiber.StatusOK).JSON(models.SubmissionResponse{
		Message: "Member data saved successfully!",
		Data:    member,
	})
}

// GetMembers godoc
// @Summary      List members
// @Description  Every stored member record, in storage order.
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Member
// @Failure      401  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/users [get]
func (mc *MemberController) GetMembers(c *fiber.Ctx) error {
	list, err := mc.svc.List(c.UserContext())
	if err != nil {
		return utils.HandleErrorDetail(c, fiber.StatusInternalServerError, "Server Error", err)
	}
	return c.Status(fiber.StatusOK).JSON(list)
}

// attachment returns the named file part, or nil when it was not sent.
// The returned close func is always safe to call.
func attachment(c *fiber.Ctx, field string) (*uploads.File, func(), error) {
	noop := func() {}
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, noop, nil
	}
	// browsers send an empty part when no file was chosen
	if fh.Filename == "" && fh.Size == 0 {
		return nil, noop, nil
	}

	file, closer, err := uploads.OpenFormFile(fh)
	if err != nil {
		return nil, noop, err
	}
	return file, closeQuietly(closer), nil
}

func closeQuietly(c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			log.Warnf("⚠️ close upload: %v", err)
		}
	}
}
