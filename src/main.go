package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "membership-form-backend/docs"
	"membership-form-backend/src/config"
	"membership-form-backend/src/database"
	"membership-form-backend/src/jobs"
	"membership-form-backend/src/metrics"
	"membership-form-backend/src/routes"
	"membership-form-backend/src/services/members"
	"membership-form-backend/src/services/uploads"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
)

// @title                       Membership Form API
// @version                     1.0
// @description                 Membership registration submissions with CV and image uploads.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// เชื่อมต่อกับ MongoDB
	mongoClient, err := database.ConnectMongoDB(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	host, err := newMediaHost(ctx, cfg)
	if err != nil {
		log.Fatalf("Error configuring media host: %v", err)
	}

	redisClient, err := database.NewRedisClient(ctx, cfg.RedisURI)
	if err != nil {
		log.Fatalf("Error connecting to redis: %v", err)
	}

	var purger uploads.Purger = jobs.NewInlinePurger(host)
	var limiterStorage fiber.Storage
	if redisClient != nil {
		defer redisClient.Close()
		limiterStorage = database.NewRedisStorage(redisClient, "limiter:")

		asynqClient := database.NewAsynqClient(redisClient.Options())
		defer asynqClient.Close()
		purger = jobs.NewQueuePurger(asynqClient)

		worker := startWorker(redisClient.Options(), host)
		defer worker.Shutdown()
	}

	m := metrics.New()
	store := members.NewMongoStore(database.MembersCollection(mongoClient, cfg.MongoDatabase, cfg.MongoCollection))
	uploadSvc := uploads.NewService(host, purger, cfg.CVFolder, cfg.ImageFolder, m)

	deps := routes.Dependencies{
		Members:            members.NewService(store, uploadSvc, m),
		Metrics:            m,
		AllowedOrigins:     cfg.CORSOrigins(),
		JWTSecret:          cfg.JWTSecret,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		LimiterStorage:     limiterStorage,
	}

	// สร้าง app instance
	app := fiber.New(fiber.Config{
		AppName:   "membership-form-backend",
		BodyLimit: cfg.BodyLimitMB * 1024 * 1024,
	})
	routes.InitMiddleware(app, deps)
	routes.InitRoutes(app, deps)

	go func() {
		<-ctx.Done()
		log.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Errorf("shutdown: %v", err)
		}
	}()

	// เริ่มเซิร์ฟเวอร์
	log.Info("Server is running on port " + cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Errorf("listen: %v", err)
	}
}

func newMediaHost(ctx context.Context, cfg *config.Config) (uploads.MediaHost, error) {
	switch cfg.MediaDriver {
	case config.DriverMinio:
		return uploads.NewMinioHost(ctx, cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioPublicURL)
	default:
		return uploads.NewCloudinaryHost(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	}
}

func startWorker(opts *redis.Options, host uploads.MediaHost) *jobs.Worker {
	worker := jobs.NewWorker(database.AsynqConnOpt(opts), jobs.NewPurgeHandler(host))
	if err := worker.Start(); err != nil {
		log.Fatalf("%v", err)
	}
	return worker
}
