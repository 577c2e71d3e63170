package configs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type ConfigStruct struct {
	Port                      string
	WaitForRedisConnectionSec int
	RedisUrl                  string
	RedisPassword             string
	MongodbDatabaseUrl        string
	MongodbDatabaseName       string
	TmdbBaseUrl               string
	TmdbApiKey                string
	TmdbImageBaseUrl          string
	CorsAllowedOrigins        []string
	SentryDns                 string
	SentryRelease             string
	PrintErrors               bool
	Domain                    string
}

var configs = ConfigStruct{}

func GetConfigs() ConfigStruct {
	return configs
}

func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	configs.Port = os.Getenv("PORT")
	configs.RedisUrl = os.Getenv("REDIS_URL")
	configs.RedisPassword = os.Getenv("REDIS_PASSWORD")
	configs.MongodbDatabaseUrl = os.Getenv("MONGODB_DATABASE_URL")
	configs.MongodbDatabaseName = os.Getenv("MONGODB_DATABASE_NAME")
	configs.TmdbBaseUrl = os.Getenv("TMDB_BASE_URL")
	if configs.TmdbBaseUrl == "" {
		configs.TmdbBaseUrl = "https://api.themoviedb.org/3"
	}
	configs.TmdbApiKey = os.Getenv("TMDB_API_KEY")
	configs.TmdbImageBaseUrl = os.Getenv("TMDB_IMAGE_BASE_URL")
	if configs.TmdbImageBaseUrl == "" {
		configs.TmdbImageBaseUrl = "https://image.tmdb.org/t/p/original"
	}
	configs.WaitForRedisConnectionSec, _ = strconv.Atoi(os.Getenv("WAIT_REDIS_CONNECTION_SEC"))
	configs.CorsAllowedOrigins = strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), "---")
	for i := range configs.CorsAllowedOrigins {
		configs.CorsAllowedOrigins[i] = strings.TrimSpace(configs.CorsAllowedOrigins[i])
	}
	configs.SentryDns = os.Getenv("SENTRY_DNS")
	configs.SentryRelease = os.Getenv("SENTRY_RELEASE")
	configs.PrintErrors = os.Getenv("PRINT_ERRORS") == "true"
	configs.Domain = os.Getenv("DOMAIN")
}
