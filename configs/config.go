package config

import (
	"os"
	"strconv"
)

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

type Config struct {
	PostgresURI         string
	RedisURI            string
	OpenAIKey           string
	OpenAIModel         string
	CompletionTimeoutS  int
	RenderServiceURL    string
	RenderDelayS        int
	PublishTimeoutS     int
	GoogleClientID      string
	GoogleClientSecret  string
	YoutubeRefreshToken string
	R2                  R2
	SecretKey           string
	CookieName          string
	APIKey              string
	FrontendURL         string
}

func LoadConfig() *Config {
	return &Config{
		PostgresURI:         getEnv("POSTGRES_URI", ""),
		RedisURI:            getEnv("REDIS_URI", "127.0.0.1:6379"),
		OpenAIKey:           getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:         getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		CompletionTimeoutS:  getEnvInt("COMPLETION_TIMEOUT_SECONDS", 30),
		RenderServiceURL:    getEnv("RENDER_SERVICE_URL", ""),
		RenderDelayS:        getEnvInt("RENDER_DELAY_SECONDS", 3),
		PublishTimeoutS:     getEnvInt("PUBLISH_TIMEOUT_SECONDS", 120),
		GoogleClientID:      getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret:  getEnv("GOOGLE_CLIENT_SECRET", ""),
		YoutubeRefreshToken: getEnv("YOUTUBE_REFRESH_TOKEN", ""),
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
		SecretKey:   getEnv("SECRET_KEY", ""),
		CookieName:  getEnv("COOKIE_NAME", "autoshorts_session"),
		APIKey:      getEnv("API_KEY", ""),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
