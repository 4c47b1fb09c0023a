package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Twilio   TwilioConfig
	Keys     APIKeys
	Storage  StorageConfig
	Images   ImageConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	APIKey             string
}

type DatabaseConfig struct {
	Connection string
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

type APIKeys struct {
	OpenAI  string
	SerpAPI string
	Fashn   string
}

type StorageConfig struct {
	Region string
	Bucket string
}

type ImageConfig struct {
	TTL             time.Duration
	CleanupInterval time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			APIKey:             getEnv("APP_API_KEY", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Twilio: TwilioConfig{
			AccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
			FromNumber: getEnv("TWILIO_FROM_NUMBER", ""),
		},
		Keys: APIKeys{
			OpenAI:  getEnv("OPENAI_API_KEY", ""),
			SerpAPI: getEnv("SERPAPI_API_KEY", ""),
			Fashn:   getEnv("FASHN_API_KEY", ""),
		},
		Storage: StorageConfig{
			Region: getEnv("AWS_REGION", "ap-south-1"),
			Bucket: getEnv("AWS_BUCKET_NAME", ""),
		},
		Images: ImageConfig{
			TTL:             getEnvAsDuration("IMAGE_TTL", 4*time.Hour),
			CleanupInterval: getEnvAsDuration("IMAGE_CLEANUP_INTERVAL", 30*time.Minute),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
