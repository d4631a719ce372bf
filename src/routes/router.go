package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"

	"membership-form-backend/src/metrics"
	"membership-form-backend/src/services/members"
)

// Dependencies ทุกอย่างที่ routes ต้องใช้ สร้างครั้งเดียวใน main
type Dependencies struct {
	Members            *members.Service
	Metrics            *metrics.Metrics
	AllowedOrigins     string
	JWTSecret          string
	RateLimitPerMinute int
	LimiterStorage     fiber.Storage
}

// InitMiddleware ติดตั้ง middleware ระดับ app
func InitMiddleware(app *fiber.App, deps Dependencies) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     deps.AllowedOrigins,
		AllowMethods:     "GET,POST,PATCH,OPTIONS",
		AllowHeaders:     "Content-Type, Authorization",
		AllowCredentials: true,
	}))
}

func InitRoutes(app *fiber.App, deps Dependencies) {
	MemberRoutes(app.Group("/api"), deps)

	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
