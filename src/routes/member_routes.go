package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"membership-form-backend/src/controllers"
	"membership-form-backend/src/middleware"
	"membership-form-backend/src/utils"
)

// MemberRoutes กำหนดเส้นทางสำหรับ Member API
func MemberRoutes(router fiber.Router, deps Dependencies) {
	ctrl := controllers.NewMemberController(deps.Members)

	create := []fiber.Handler{}
	if deps.RateLimitPerMinute > 0 {
		create = append(create, limiter.New(limiter.Config{
			Max:        deps.RateLimitPerMinute,
			Expiration: time.Minute,
			Storage:    deps.LimiterStorage,
			LimitReached: func(c *fiber.Ctx) error {
				return utils.HandleError(c, fiber.StatusTooManyRequests, "Too many submissions, please try again later")
			},
		}))
	}
	create = append(create, ctrl.CreateMember)

	router.Post("/members", create...)                                                // บันทึกใบสมัคร
	router.Get("/users", middleware.OptionalAuthJWT(deps.JWTSecret), ctrl.GetMembers) // ดึงสมาชิกทั้งหมด
}
