package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration

	// VerificationWindow is how long a claimed lead must wait before a
	// sales rep may convert it. Admins bypass the window.
	VerificationWindow time.Duration

	CronSpec string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        getEnv("DATABASE_URL", "merchflow.db"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTTTL:             time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		VerificationWindow: time.Duration(getEnvInt("LEAD_VERIFICATION_HOURS", 72)) * time.Hour,
		CronSpec:           getEnv("JOBS_CRON_SPEC", "0 9 * * *"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d", key, raw, defaultValue)
		return defaultValue
	}
	return v
}
