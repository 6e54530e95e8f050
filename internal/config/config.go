package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config is the full process configuration, read once at startup and passed
// into whatever needs it.
type Config struct {
	AppEnv string
	Port   string

	// DatabaseURL takes precedence over the discrete DB_* variables. The
	// persistent store is only used when AppEnv is "production"; development
	// runs on the in-memory backend.
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	DBTimezone  string

	// RedisURL, when set, moves session records to Redis.
	RedisURL string

	SessionSecret string
	MapsAPIKey    string
	LogFile       string
}

// Load reads .env (if present) and the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "8080"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "password"),
		DBName:      getEnv("DB_NAME", "shuttle"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
		DBTimezone:  getEnv("DB_TIMEZONE", "UTC"),

		RedisURL: os.Getenv("REDIS_URL"),

		SessionSecret: getEnv("SESSION_SECRET", "bus-tracking-app-secret"),
		MapsAPIKey:    os.Getenv("MAPS_API_KEY"),
		LogFile:       getEnv("LOG_FILE", "./logs/app.log"),
	}
}

// getEnv reads an environment variable or returns the provided default.
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
