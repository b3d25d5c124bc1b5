package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret      string
	AccessTokenTTL = 24 * time.Hour
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET", "change-me-in-production")
	if os.Getenv("JWT_SECRET") == "" {
		log.Println("[WARN] JWT_SECRET not set, using insecure default")
	}

	if ttl := GetEnv("ACCESS_TOKEN_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			AccessTokenTTL = d
		} else {
			log.Printf("[WARN] invalid ACCESS_TOKEN_TTL %q, keeping %s", ttl, AccessTokenTTL)
		}
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
