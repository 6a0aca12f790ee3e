package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port       int
	AdminToken string
	UploadDir  string

	MongoURI  string
	MongoDB   string
	RedisAddr string

	ConsulAddress string
	AllowOrigins  string

	RateLimitRPS   int
	RateLimitBurst int
	FeedCacheTTL   time.Duration
}

// Load reads configuration from environment variables. A .env file is
// loaded when present but is not required.
func Load() *AppConfig {
	godotenv.Load()

	config := &AppConfig{
		Port:           getEnvAsInt("PORT", 4000),
		AdminToken:     getEnv("ADMIN_TOKEN", ""),
		UploadDir:      getEnv("UPLOAD_DIR", "/data/uploads"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "rooftop"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		ConsulAddress:  getEnv("CONSUL_ADDRESS", ""),
		AllowOrigins:   getEnv("ALLOW_ORIGINS", "http://localhost:3000"),
		RateLimitRPS:   getEnvAsInt("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", 20),
		FeedCacheTTL:   time.Duration(getEnvAsInt("FEED_CACHE_TTL_SECONDS", 30)) * time.Second,
	}

	if config.AdminToken == "" {
		// With no admin token configured every mutating request is rejected.
		log.Println("ADMIN_TOKEN is not set; note creation, deletion and uploads are disabled")
	}

	return config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
