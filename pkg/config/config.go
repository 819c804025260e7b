package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	JWTSecret string
	JWTExpiry time.Duration

	DatabaseDSN string

	AWSRegion     string
	S3BucketName  string
	S3ImagePrefix string
	OCRFunction   string
	LLMFunction   string
	PresignExpiry time.Duration

	MaxUploadSizeMB   int64
	MaxFilesPerUpload int
	AllowedImageTypes []string

	ReminderCheckInterval time.Duration

	CORSOrigins []string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTExpiry: getDuration("JWT_EXPIRY", 24*time.Hour),

		DatabaseDSN: getEnv("DATABASE_DSN", "host=localhost user=letteron password=letteron dbname=letteron port=5432 sslmode=disable"),

		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		S3BucketName:  getEnv("S3_BUCKET_NAME", "letteron-images"),
		S3ImagePrefix: getEnv("S3_IMAGE_PREFIX", "letters/"),
		OCRFunction:   getEnv("OCR_FUNCTION_NAME", "LetterOnOCRHandler"),
		LLMFunction:   getEnv("LLM_FUNCTION_NAME", "LetterOnLLMHandler"),
		PresignExpiry: getDuration("PRESIGN_EXPIRY", time.Hour),

		MaxUploadSizeMB:   getInt64("MAX_UPLOAD_SIZE_MB", 1),
		MaxFilesPerUpload: getInt("MAX_FILES_PER_UPLOAD", 3),
		AllowedImageTypes: getList("ALLOWED_IMAGE_TYPES", "image/jpeg,image/jpg,image/png,image/webp"),

		ReminderCheckInterval: getDuration("REMINDER_CHECK_INTERVAL", 60*time.Second),

		CORSOrigins: getList("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
	}

	// Every session token is signed with this secret, refuse to start weak
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("JWT_SECRET must be set and at least 32 characters long")
	}

	return cfg
}

// MaxUploadSizeBytes is the per-file limit in bytes.
func (c *Config) MaxUploadSizeBytes() int64 {
	return c.MaxUploadSizeMB * 1024 * 1024
}

func (c *Config) IsAllowedImageType(contentType string) bool {
	for _, t := range c.AllowedImageTypes {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
