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
	AccessTokenSecret         string
	AccessTokenExpireHour     int
	WaitForRedisConnectionSec int
	RedisUrl                  string
	RedisPassword             string
	MongodbDatabaseUrl        string
	MongodbDatabaseName       string
	RabbitmqUrl               string
	ActivityExchange          string
	CorsAllowedOrigins        []string
	SentryDns                 string
	SentryRelease             string
	PrintErrors               bool
	LogLevel                  string
	LogJson                   bool
	LogRequests               bool
	RequestTimeoutSec         int
	DbUrl                     string
	DbAutoMigrate             bool
}

var configs = ConfigStruct{
	Port:                  "5220",
	AccessTokenExpireHour: 24 * 7,
	ActivityExchange:      "movie_activity",
	LogLevel:              "info",
	RequestTimeoutSec:     10,
	DbAutoMigrate:         true,
}

func GetConfigs() ConfigStruct {
	return configs
}

func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	if port := os.Getenv("PORT"); port != "" {
		configs.Port = port
	}
	configs.DbUrl = os.Getenv("POSTGRES_DATABASE_URL")
	configs.DbAutoMigrate = os.Getenv("DB_AUTO_MIGRATE") != "false"
	configs.AccessTokenSecret = os.Getenv("ACCESS_TOKEN_SECRET")
	if hours, err := strconv.Atoi(os.Getenv("ACCESS_TOKEN_EXPIRE_HOUR")); err == nil && hours > 0 {
		configs.AccessTokenExpireHour = hours
	}
	configs.RedisUrl = os.Getenv("REDIS_URL")
	configs.RedisPassword = os.Getenv("REDIS_PASSWORD")
	configs.WaitForRedisConnectionSec, _ = strconv.Atoi(os.Getenv("WAIT_REDIS_CONNECTION_SEC"))
	configs.MongodbDatabaseUrl = os.Getenv("MONGODB_DATABASE_URL")
	configs.MongodbDatabaseName = os.Getenv("MONGODB_DATABASE_NAME")
	configs.RabbitmqUrl = os.Getenv("RABBITMQ_URL")
	if exchange := os.Getenv("ACTIVITY_EXCHANGE"); exchange != "" {
		configs.ActivityExchange = exchange
	}
	configs.CorsAllowedOrigins = splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))
	configs.SentryDns = os.Getenv("SENTRY_DNS")
	configs.SentryRelease = os.Getenv("SENTRY_RELEASE")
	configs.PrintErrors = os.Getenv("PRINT_ERRORS") == "true"
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		configs.LogLevel = level
	}
	configs.LogJson = os.Getenv("LOG_JSON") == "true"
	configs.LogRequests = os.Getenv("LOG_REQUESTS") == "true"
	if sec, err := strconv.Atoi(os.Getenv("REQUEST_TIMEOUT_SEC")); err == nil && sec > 0 {
		configs.RequestTimeoutSec = sec
	}
}

func splitOrigins(value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{}
	}
	origins := strings.Split(value, "---")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}
