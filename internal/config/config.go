package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the service reads from the environment. It is
// built once at startup and passed by reference; nothing else in the tree
// reads environment variables.
type Config struct {
	AppPort string

	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBMaxIdleConns int
	DBMaxOpenConns int
	DBConnLifetime time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	HMACSecret string
	LogLevel   string
}

// Load reads configuration from the environment, loading a .env file first
// if one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppPort:        getEnv("APP_PORT", "3000"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBName:         getEnv("DB_NAME", "walletsync"),
		DBMaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 10),
		DBMaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 100),
		DBConnLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getIntEnv("REDIS_DB", 0),
		HMACSecret:     getEnv("HMAC_SECRET", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

// DSN renders the Postgres connection string for gorm.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func getEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

func getIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
