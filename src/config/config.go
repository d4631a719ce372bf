package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

const (
	DriverCloudinary = "cloudinary"
	DriverMinio      = "minio"
)

// Config ค่าตั้งค่าทั้งหมดของ service โหลดครั้งเดียวตอน start แล้ว inject ต่อ
type Config struct {
	Port            string `validate:"required"`
	MongoURI        string `validate:"required"`
	MongoDatabase   string `validate:"required"`
	MongoCollection string `validate:"required"`

	AllowedOrigins []string `validate:"min=1,dive,required,ne=*"`

	MediaDriver         string `validate:"oneof=cloudinary minio"`
	CloudinaryCloudName string `validate:"required_if=MediaDriver cloudinary"`
	CloudinaryAPIKey    string `validate:"required_if=MediaDriver cloudinary"`
	CloudinaryAPISecret string `validate:"required_if=MediaDriver cloudinary"`
	MinioEndpoint       string `validate:"required_if=MediaDriver minio"`
	MinioAccessKey      string `validate:"required_if=MediaDriver minio"`
	MinioSecretKey      string `validate:"required_if=MediaDriver minio"`
	MinioBucket         string `validate:"required_if=MediaDriver minio"`
	MinioPublicURL      string `validate:"omitempty,url"`
	CVFolder            string `validate:"required"`
	ImageFolder         string `validate:"required"`

	RedisURI  string
	JWTSecret string

	BodyLimitMB        int `validate:"min=1"`
	RateLimitPerMinute int `validate:"min=0"`
}

// Load อ่าน .env (ถ้ามี) แล้วตามด้วย environment ของ process
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn("⚠️ Warning: No .env file found")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds and validates a Config from the given lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	env := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	bodyLimit, err := strconv.Atoi(env("BODY_LIMIT_MB", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid BODY_LIMIT_MB: %w", err)
	}
	rateLimit, err := strconv.Atoi(env("RATE_LIMIT_PER_MINUTE", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE: %w", err)
	}

	cfg := &Config{
		Port:            env("PORT", env("APP_URI", "8888")),
		MongoURI:        env("MONGODB_URI", getenv("MONGO_URI")),
		MongoDatabase:   env("MONGO_DATABASE", "MembershipDB"),
		MongoCollection: env("MONGO_COLLECTION", "members"),
		AllowedOrigins:  splitList(env("ALLOWED_ORIGINS", "https://membershipform-omega.vercel.app")),

		MediaDriver:         strings.ToLower(env("MEDIA_DRIVER", DriverCloudinary)),
		CloudinaryCloudName: getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: getenv("CLOUDINARY_API_SECRET"),
		MinioEndpoint:       getenv("MINIO_ENDPOINT"),
		MinioAccessKey:      getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey:      getenv("MINIO_SECRET_KEY"),
		MinioBucket:         getenv("MINIO_BUCKET"),
		MinioPublicURL:      getenv("MINIO_PUBLIC_URL"),
		CVFolder:            env("CV_FOLDER", "Uploads"),
		ImageFolder:         env("IMAGE_FOLDER", "Images"),

		RedisURI:  getenv("REDIS_URI"),
		JWTSecret: getenv("JWT_SECRET"),

		BodyLimitMB:        bodyLimit,
		RateLimitPerMinute: rateLimit,
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// CORSOrigins returns the allow-list in the comma separated form Fiber expects.
func (c *Config) CORSOrigins() string {
	return strings.Join(c.AllowedOrigins, ",")
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
