package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI string
	MongoDB  string
	Port     string

	JWTSecret string

	S3Bucket string
	S3Region string

	// Level assigned to a synthesized admin profile when a role-bearing user
	// has no detailed admin record. Defaults to "senior" to match the data
	// already in production; set to "junior" for least privilege.
	AdminFallbackLevel string

	LogLevel  string
	LogFormat string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := Config{
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:            getEnv("MONGO_DB", "cifan2025"),
		Port:               getEnv("PORT", "8000"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		S3Bucket:           getEnv("S3_BUCKET", "cifan-submissions"),
		S3Region:           getEnv("S3_REGION", "ap-southeast-1"),
		AdminFallbackLevel: getEnv("ADMIN_FALLBACK_LEVEL", "senior"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "json"),
	}
	return cfg
}
