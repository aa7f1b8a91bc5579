package confs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Env            string
	Port           string
	DBDriver       string
	DatabaseURL    string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	LogSQL         bool
	AllowedOrigins []string
}

// LoadConfig loads environment variables from .env.<APP_ENV> and .env if
// present, then reads the settings with their defaults.
func LoadConfig() (*Config, error) {
	env := getEnv("APP_ENV", "development")
	loadEnvFile(".env." + env)
	loadEnvFile(".env")

	cfg := &Config{
		Env:         getEnv("APP_ENV", env),
		Port:        getEnv("PORT", "9090"),
		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DatabaseURL: os.Getenv("DB_URL"),
		DBHost:      os.Getenv("DB_HOST"),
		DBPort:      os.Getenv("DB_PORT"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		LogSQL:      getBool("DB_LOG_SQL", false),
	}
	cfg.AllowedOrigins = splitList(getEnv("CORS_ORIGINS", "*"))
	return cfg, nil
}

// AllowAllOrigins reports whether CORS is open to every origin.
func (c *Config) AllowAllOrigins() bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return len(c.AllowedOrigins) == 0
}

func loadEnvFile(name string) {
	// Missing files are expected; only report files that exist but fail to parse.
	if err := godotenv.Load(name); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load %s: %v", name, err)
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
